package payoutrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/scanhive/scanhive/internal/domain"
	"github.com/scanhive/scanhive/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// AggregateEligible sums earnings per user across all stickers, active and
// inactive, and keeps users at or above the threshold. Deactivated stickers
// deliberately still count toward payouts even though dashboard stats skip
// them.
func (r *Repository) AggregateEligible(ctx context.Context, thresholdCents int64) ([]domain.UserEarnings, error) {
	query := `
        SELECT user_id, SUM(total_earnings_cents) AS total_earnings_cents
        FROM qr_codes
        GROUP BY user_id
        HAVING SUM(total_earnings_cents) >= $1
        ORDER BY user_id ASC
    `
	rows, err := r.db.Query(ctx, query, thresholdCents)
	if err != nil {
		zap.L().Error("can't aggregate earnings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var earnings []domain.UserEarnings
	for rows.Next() {
		var e domain.UserEarnings
		if err := rows.Scan(&e.UserID, &e.TotalEarningsCents); err != nil {
			zap.L().Error("can't scan earnings row", zap.Error(err))
			return nil, err
		}
		earnings = append(earnings, e)
	}
	return earnings, nil
}

// Create inserts a payout row for (user, month, year). The unique constraint
// makes re-runs idempotent: an existing row is left untouched and created is
// false.
func (r *Repository) Create(ctx context.Context, payout *domain.MonthlyPayout) (bool, error) {
	query := `
		INSERT INTO monthly_payouts (user_id, month, year, amount_cents, status, payment_method_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, month, year) DO NOTHING
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, payout.UserID, payout.Month, payout.Year,
		payout.AmountCents, payout.Status, payout.PaymentMethodID).
		Scan(&payout.ID, &payout.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		zap.L().Error("can't create payout", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) ([]domain.MonthlyPayout, error) {
	query := `
        SELECT id, user_id, month, year, amount_cents, status, payment_method_id, created_at
        FROM monthly_payouts
        WHERE user_id = $1
        ORDER BY year DESC, month DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.MonthlyPayout
	for rows.Next() {
		var p domain.MonthlyPayout
		err := rows.Scan(&p.ID, &p.UserID, &p.Month, &p.Year, &p.AmountCents, &p.Status, &p.PaymentMethodID, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, p)
	}
	return payouts, nil
}
