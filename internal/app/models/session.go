package models

type Session struct {
	SessionID string `json:"session_id"`
	WorkerID  string `json:"worker_id"`
	AshaID    string `json:"asha_id"`
	Name      string `json:"name"`
	Mobile    string `json:"mobile"`
}
