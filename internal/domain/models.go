package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

type Application struct {
	ID         int        `db:"id"`
	UserID     int        `db:"user_id"`
	FullName   string     `db:"full_name"`
	Phone      string     `db:"phone"`
	Address    string     `db:"address"`
	Details    string     `db:"details"`
	Status     string     `db:"status"`
	ReviewedBy *int       `db:"reviewed_by"`
	ReviewedAt *time.Time `db:"reviewed_at"`
	CreatedAt  time.Time  `db:"created_at"`
}

// QrCode is a claimed physical sticker. Ownership is assigned at claim time
// and never transferred. Earnings are kept in cents so that
// TotalEarningsCents == TotalScans * ScanRewardCents holds exactly.
type QrCode struct {
	ID                   int       `db:"id"`
	ClaimCode            string    `db:"claim_code"`
	UserID               int       `db:"user_id"`
	PlacementDescription string    `db:"placement_description"`
	TotalScans           int64     `db:"total_scans"`
	TotalEarningsCents   int64     `db:"total_earnings_cents"`
	IsActive             bool      `db:"is_active"`
	ClaimedAt            time.Time `db:"claimed_at"`
}

// Scan is an append-only event; rows are never updated or deleted.
type Scan struct {
	ID        uuid.UUID `db:"id"`
	QrCodeID  int       `db:"qr_code_id"`
	ScannedAt time.Time `db:"scanned_at"`
	SourceIP  string    `db:"source_ip"`
	UserAgent string    `db:"user_agent"`
}

type PaymentMethod struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	Type          string    `db:"type"`
	AccountHolder string    `db:"account_holder"`
	RoutingNumber string    `db:"routing_number"`
	AccountNumber string    `db:"account_number"`
	Cashtag       string    `db:"cashtag"`
	PaypalEmail   string    `db:"paypal_email"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
}

type MonthlyPayout struct {
	ID              int       `db:"id"`
	UserID          int       `db:"user_id"`
	Month           int       `db:"month"`
	Year            int       `db:"year"`
	AmountCents     int64     `db:"amount_cents"`
	Status          string    `db:"status"`
	PaymentMethodID *int      `db:"payment_method_id"`
	CreatedAt       time.Time `db:"created_at"`
}

type NotificationPreference struct {
	ID              int        `db:"id"`
	UserID          int        `db:"user_id"`
	LastDismissedAt *time.Time `db:"last_dismissed_at"`
}

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

const (
	PaymentMethodBank    = "bank"
	PaymentMethodCashapp = "cashapp"
	PaymentMethodPaypal  = "paypal"
)

const PayoutStatusPending = "pending"

// UserEarnings is a payout-selection aggregate: the sum of a user's earnings
// across all their stickers, active and inactive.
type UserEarnings struct {
	UserID             int   `db:"user_id"`
	TotalEarningsCents int64 `db:"total_earnings_cents"`
}
