package models

import "time"

// AuthResponse is returned by register and login: the freshly issued bearer
// token alongside the public fields of the account.
type AuthResponse struct {
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// UserResponse wraps a single user for profile endpoints.
type UserResponse struct {
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}

// MessageResponse carries a bare informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateRecordResponse is returned by POST /api/registros.
type CreateRecordResponse struct {
	OK       bool      `json:"ok"`
	ID       int64     `json:"id"`
	CreadoEn time.Time `json:"creado_en"`
}

// ListRecordsResponse is returned by GET /api/registros.
type ListRecordsResponse struct {
	Items []Record `json:"items"`
}
