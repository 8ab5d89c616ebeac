package requests

type CreatePatient struct {
	Username string `json:"username" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"required,max=20"`
}

type SearchPatient struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
}

type RecordDisease struct {
	Disease      string `json:"disease" validate:"required,max=200"`
	WorkerName   string `json:"worker_name"`
	WorkerAshaID string `json:"worker_asha_id"`
	WorkerMobile string `json:"worker_mobile"`
}
