package models

// RegisterRequest is the body of POST /api/auth/register.
// Validation tags follow go-playground/validator conventions.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the body of PUT /api/auth/profile.
// The minimum length is checked after trimming in the service layer.
type UpdateProfileRequest struct {
	Username string `json:"username" validate:"required"`
}

// ChangePasswordRequest is the body of POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// CreateRecordRequest is the body of POST /api/registros.
//
// Lng and Lat are pointers so that "missing" and "zero" are distinguishable:
// a coordinate of 0 is perfectly valid input.
type CreateRecordRequest struct {
	Lng   *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
	Lat   *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Texto *string  `json:"texto" validate:"omitempty,max=500"`
	Tipo  *string  `json:"tipo" validate:"omitempty,max=100"`
}
