package dto

import "time"

type ApplicationRequestDTO struct {
	FullName string `json:"fullName" validate:"required,min=2,max=255"`
	Phone    string `json:"phone" validate:"required,min=7,max=32"`
	Address  string `json:"address" validate:"required"`
	Details  string `json:"details"`
}

type ApplicationResponseDTO struct {
	ID         int        `json:"id"`
	Status     string     `json:"status" example:"pending"`
	FullName   string     `json:"fullName"`
	Phone      string     `json:"phone"`
	Address    string     `json:"address"`
	Details    string     `json:"details"`
	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type ReviewRequestDTO struct {
	Status string `json:"status" example:"approved"`
}
