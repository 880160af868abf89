package dto

// PutUserRequest represents the body of PUT /hello/:username
type PutUserRequest struct {
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
}

// MessageResponse represents the birthday greeting
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse represents a stored user record
type UserResponse struct {
	Username    string `json:"username"`
	DateOfBirth string `json:"date_of_birth"`
}
