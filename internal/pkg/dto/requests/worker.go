package requests

type RegisterWorker struct {
	Name      string `json:"name" validate:"required,max=100"`
	AshaID    string `json:"asha_id" validate:"required,max=50"`
	Mobile    string `json:"mobile" validate:"required,max=20"`
	Education string `json:"education" validate:"max=100"`
	Years     string `json:"years"`
	Village   string `json:"village" validate:"max=100"`
	Password  string `json:"password" validate:"required,password"`
}

type LoginWorker struct {
	Mobile   string `json:"mobile" validate:"required,max=20"`
	Password string `json:"password" validate:"required"`
}

// UpdateWorker carries the allow-listed profile changes. Empty fields are
// left untouched; Photo takes a base64 payload (optionally a data URL).
type UpdateWorker struct {
	Name      string `json:"name" validate:"max=100"`
	AshaID    string `json:"asha_id" validate:"max=50"`
	Mobile    string `json:"mobile" validate:"max=20"`
	Education string `json:"education" validate:"max=100"`
	Years     string `json:"years"`
	Village   string `json:"village" validate:"max=100"`
	Photo     string `json:"photo"`
	Password  string `json:"password" validate:"omitempty,password"`
}
