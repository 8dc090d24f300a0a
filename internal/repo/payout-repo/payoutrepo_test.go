package payoutrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/scanhive/scanhive/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_AggregateEligible(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Users at threshold returned", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"user_id", "total_earnings_cents"}).
			AddRow(1, int64(512)).
			AddRow(4, int64(500))
		mock.ExpectQuery(regexp.QuoteMeta("HAVING SUM(total_earnings_cents) >= $1")).
			WithArgs(domain.PayoutThresholdCents).
			WillReturnRows(rows)

		earnings, err := repo.AggregateEligible(context.Background(), domain.PayoutThresholdCents)
		assert.NoError(t, err)
		assert.Len(t, earnings, 2)
		assert.Equal(t, int64(500), earnings[1].TotalEarningsCents)
	})

	t.Run("Nobody eligible", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("HAVING SUM(total_earnings_cents) >= $1")).
			WithArgs(domain.PayoutThresholdCents).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "total_earnings_cents"}))

		earnings, err := repo.AggregateEligible(context.Background(), domain.PayoutThresholdCents)
		assert.NoError(t, err)
		assert.Empty(t, earnings)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("HAVING SUM(total_earnings_cents) >= $1")).
			WithArgs(domain.PayoutThresholdCents).
			WillReturnError(errors.New("database error"))

		earnings, err := repo.AggregateEligible(context.Background(), domain.PayoutThresholdCents)
		assert.Error(t, err)
		assert.Nil(t, earnings)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 6, 30, 23, 0, 0, 0, time.UTC)
	methodID := 3

	payout := &domain.MonthlyPayout{
		UserID:          1,
		Month:           6,
		Year:            2025,
		AmountCents:     512,
		Status:          domain.PayoutStatusPending,
		PaymentMethodID: &methodID,
	}

	t.Run("Payout created", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO monthly_payouts (user_id, month, year, amount_cents, status, payment_method_id)")).
			WithArgs(1, 6, 2025, int64(512), domain.PayoutStatusPending, &methodID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(9, createdAt))

		created, err := repo.Create(context.Background(), payout)
		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 9, payout.ID)
	})

	t.Run("Existing month is left untouched", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO monthly_payouts (user_id, month, year, amount_cents, status, payment_method_id)")).
			WithArgs(1, 6, 2025, int64(512), domain.PayoutStatusPending, &methodID).
			WillReturnError(pgx.ErrNoRows)

		created, err := repo.Create(context.Background(), payout)
		assert.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO monthly_payouts (user_id, month, year, amount_cents, status, payment_method_id)")).
			WithArgs(1, 6, 2025, int64(512), domain.PayoutStatusPending, &methodID).
			WillReturnError(errors.New("database error"))

		created, err := repo.Create(context.Background(), payout)
		assert.Error(t, err)
		assert.False(t, created)
	})
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 6, 30, 23, 0, 0, 0, time.UTC)
	methodID := 3

	t.Run("History returned newest first", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "month", "year", "amount_cents", "status", "payment_method_id", "created_at"}).
			AddRow(9, 1, 6, 2025, int64(512), domain.PayoutStatusPending, &methodID, createdAt).
			AddRow(7, 1, 5, 2025, int64(505), domain.PayoutStatusPending, &methodID, createdAt)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
			WithArgs(1).
			WillReturnRows(rows)

		payouts, err := repo.GetByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, payouts, 2)
		assert.Equal(t, int64(505), payouts[1].AmountCents)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		payouts, err := repo.GetByUserID(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, payouts)
	})
}
