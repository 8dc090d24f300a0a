package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type UserResponseDTO struct {
	ID        int    `json:"id"`
	Email     string `json:"email" example:"hunter@example.com"`
	Name      string `json:"name" example:"Sam Hunter"`
	IsAdmin   bool   `json:"isAdmin"`
	CreatedAt string `json:"createdAt" example:"2025-06-01T12:00:00Z"`
}
