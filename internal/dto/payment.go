package dto

import "time"

// PaymentMethodRequestDTO is discriminated by Type; each type requires its
// own field subset, re-validated server-side.
type PaymentMethodRequestDTO struct {
	Type          string `json:"type" validate:"required,oneof=bank cashapp paypal"`
	AccountHolder string `json:"accountHolder" validate:"required_if=Type bank,omitempty,max=255"`
	RoutingNumber string `json:"routingNumber" validate:"required_if=Type bank,omitempty,numeric,len=9"`
	AccountNumber string `json:"accountNumber" validate:"required_if=Type bank,omitempty,numeric,min=4,max=17"`
	Cashtag       string `json:"cashtag" validate:"required_if=Type cashapp,omitempty,startswith=$,min=2,max=64"`
	PaypalEmail   string `json:"paypalEmail" validate:"required_if=Type paypal,omitempty,email"`
}

type PaymentMethodResponseDTO struct {
	ID        int       `json:"id"`
	Type      string    `json:"type" example:"bank"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type PayoutResponseDTO struct {
	ID              int       `json:"id"`
	Month           int       `json:"month" example:"6"`
	Year            int       `json:"year" example:"2025"`
	AmountCents     int64     `json:"amountCents" example:"512"`
	Status          string    `json:"status" example:"pending"`
	PaymentMethodID *int      `json:"paymentMethodId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type PayoutRunResponseDTO struct {
	Month      int   `json:"month"`
	Year       int   `json:"year"`
	Selected   int   `json:"selected"`
	Created    int   `json:"created"`
	TotalCents int64 `json:"totalCents"`
}
