package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/scanhive/scanhive/internal/domain"
	"github.com/scanhive/scanhive/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)

	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	repo := New(mockDB, txManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	method := &domain.PaymentMethod{
		UserID:        1,
		Type:          domain.PaymentMethodBank,
		AccountHolder: "Sam Hunter",
		RoutingNumber: "021000021",
		AccountNumber: "000123456789",
	}

	t.Run("Method saved and prior ones deactivated", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE payment_methods")).
			WithArgs(1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payment_methods (user_id, type, account_holder, routing_number, account_number, cashtag, paypal_email)")).
			WithArgs(1, domain.PaymentMethodBank, "Sam Hunter", "021000021", "000123456789", "", "").
			WillReturnRows(pgxmock.NewRows([]string{"id", "is_active", "created_at"}).AddRow(3, true, createdAt))

		saved, err := repo.Save(context.Background(), method)
		assert.NoError(t, err)
		assert.Equal(t, 3, saved.ID)
		assert.True(t, saved.IsActive)
	})

	t.Run("Deactivate fails", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE payment_methods")).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		saved, err := repo.Save(context.Background(), method)
		assert.Error(t, err)
		assert.Nil(t, saved)
	})

	t.Run("Insert fails", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE payment_methods")).
			WithArgs(1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payment_methods (user_id, type, account_holder, routing_number, account_number, cashtag, paypal_email)")).
			WithArgs(1, domain.PaymentMethodBank, "Sam Hunter", "021000021", "000123456789", "", "").
			WillReturnError(errors.New("database error"))

		saved, err := repo.Save(context.Background(), method)
		assert.Error(t, err)
		assert.Nil(t, saved)
	})
}

func TestRepository_GetActiveByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Active method found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "type", "account_holder", "routing_number", "account_number", "cashtag", "paypal_email", "is_active", "created_at"}).
			AddRow(3, 1, domain.PaymentMethodCashapp, "Sam Hunter", "", "", "$samhunter", "", true, createdAt)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND is_active = TRUE")).
			WithArgs(1).
			WillReturnRows(rows)

		method, err := repo.GetActiveByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentMethodCashapp, method.Type)
		assert.Equal(t, "$samhunter", method.Cashtag)
	})

	t.Run("No active method", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND is_active = TRUE")).
			WithArgs(1).
			WillReturnError(pgx.ErrNoRows)

		method, err := repo.GetActiveByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Nil(t, method)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND is_active = TRUE")).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		method, err := repo.GetActiveByUserID(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, method)
	})
}
