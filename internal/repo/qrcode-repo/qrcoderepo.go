package qrcoderepo

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

const qrCodeColumns = `id, claim_code, user_id, placement_description, total_scans, total_earnings_cents, is_active, claimed_at`

func scanQrCode(row pgx.Row) (*domain.QrCode, error) {
	var qr domain.QrCode
	err := row.Scan(&qr.ID, &qr.ClaimCode, &qr.UserID, &qr.PlacementDescription,
		&qr.TotalScans, &qr.TotalEarningsCents, &qr.IsActive, &qr.ClaimedAt)
	if err != nil {
		return nil, err
	}
	return &qr, nil
}

func (r *Repository) FindByClaimCode(ctx context.Context, claimCode string) (*domain.QrCode, error) {
	query := `
        SELECT ` + qrCodeColumns + `
        FROM qr_codes
        WHERE claim_code = $1
    `
	qr, err := scanQrCode(r.db.QueryRow(ctx, query, claimCode))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find qr code by claim code", zap.Error(err))
		return nil, err
	}
	return qr, nil
}

// Insert relies on the unique constraint on claim_code as the backstop
// against concurrent claims: a conflicting insert returns nil without error.
func (r *Repository) Insert(ctx context.Context, qr *domain.QrCode) (*domain.QrCode, error) {
	query := `
		INSERT INTO qr_codes (claim_code, user_id, placement_description, claimed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (claim_code) DO NOTHING
		RETURNING ` + qrCodeColumns + `
	`
	inserted, err := scanQrCode(r.db.QueryRow(ctx, query, qr.ClaimCode, qr.UserID, qr.PlacementDescription, qr.ClaimedAt))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't insert qr code", zap.Error(err))
		return nil, err
	}
	return inserted, nil
}

func (r *Repository) FindActiveByUserID(ctx context.Context, userID int) ([]domain.QrCode, error) {
	query := `
        SELECT ` + qrCodeColumns + `
        FROM qr_codes
        WHERE user_id = $1 AND is_active = TRUE
        ORDER BY claimed_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get qr codes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var qrCodes []domain.QrCode
	for rows.Next() {
		qr, err := scanQrCode(rows)
		if err != nil {
			zap.L().Error("can't scan qr code row", zap.Error(err))
			return nil, err
		}
		qrCodes = append(qrCodes, *qr)
	}
	return qrCodes, nil
}

// Deactivate soft-deletes a sticker. Returns false when the sticker does not
// exist, belongs to another user, or is already inactive.
func (r *Repository) Deactivate(ctx context.Context, id, userID int) (bool, error) {
	query := `
		UPDATE qr_codes
		SET is_active = FALSE
		WHERE id = $1 AND user_id = $2 AND is_active = TRUE
	`
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		zap.L().Error("can't deactivate qr code", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
