package responses

import "arogya-service/internal/app/models"

type WorkerResult struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Worker  *models.Worker `json:"worker,omitempty"`
}

// LoginResult carries the session token on success; the worker's password
// hash is never serialized (the model strips it from JSON).
type LoginResult struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Token   string         `json:"token,omitempty"`
	Worker  *models.Worker `json:"worker,omitempty"`
}
