package dto

// Request DTOs

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

// UserSummary is the public shape of a user; the password hash never
// leaves the usecase layer.
type UserSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RegisterResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

type LoginResponse struct {
	Access string      `json:"access"`
	User   UserSummary `json:"user"`
}
