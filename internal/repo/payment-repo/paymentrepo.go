package paymentrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/scanhive/scanhive/internal/domain"
	"github.com/scanhive/scanhive/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const paymentMethodColumns = `id, user_id, type, account_holder, routing_number, account_number, cashtag, paypal_email, is_active, created_at`

func scanPaymentMethod(row pgx.Row) (*domain.PaymentMethod, error) {
	var m domain.PaymentMethod
	err := row.Scan(&m.ID, &m.UserID, &m.Type, &m.AccountHolder, &m.RoutingNumber,
		&m.AccountNumber, &m.Cashtag, &m.PaypalEmail, &m.IsActive, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Save deactivates every prior method for the user and inserts the new one as
// the single active method. Both statements run in one transaction.
func (r *Repository) Save(ctx context.Context, method *domain.PaymentMethod) (*domain.PaymentMethod, error) {
	deactivateQuery := `
		UPDATE payment_methods
		SET is_active = FALSE
		WHERE user_id = $1 AND is_active = TRUE
	`
	insertQuery := `
		INSERT INTO payment_methods (user_id, type, account_holder, routing_number, account_number, cashtag, paypal_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, is_active, created_at
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, deactivateQuery, method.UserID); err != nil {
			zap.L().Error("can't deactivate prior payment methods", zap.Error(err))
			return err
		}
		err := r.db.QueryRow(ctx, insertQuery, method.UserID, method.Type, method.AccountHolder,
			method.RoutingNumber, method.AccountNumber, method.Cashtag, method.PaypalEmail).
			Scan(&method.ID, &method.IsActive, &method.CreatedAt)
		if err != nil {
			zap.L().Error("can't save payment method", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return method, nil
}

func (r *Repository) GetActiveByUserID(ctx context.Context, userID int) (*domain.PaymentMethod, error) {
	query := `
        SELECT ` + paymentMethodColumns + `
        FROM payment_methods
        WHERE user_id = $1 AND is_active = TRUE
    `
	method, err := scanPaymentMethod(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get active payment method", zap.Error(err))
		return nil, err
	}
	return method, nil
}
