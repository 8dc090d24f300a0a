package scanrepo

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

// RecordScan appends the scan event and bumps the sticker totals in one
// transaction; concurrent scans on the same sticker must not lose increments.
// Returns nil when the sticker does not exist or is inactive, in which case
// no scan row is written.
func (r *Repository) RecordScan(ctx context.Context, scan *domain.Scan) (*domain.QrCode, error) {
	incrementQuery := `
		UPDATE qr_codes
		SET total_scans = total_scans + 1, total_earnings_cents = total_earnings_cents + $1
		WHERE id = $2 AND is_active = TRUE
		RETURNING id, claim_code, user_id, placement_description, total_scans, total_earnings_cents, is_active, claimed_at
	`
	insertQuery := `
		INSERT INTO scans (id, qr_code_id, scanned_at, source_ip, user_agent)
		VALUES ($1, $2, $3, $4, $5)
	`

	var qr domain.QrCode
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, incrementQuery, domain.ScanRewardCents, scan.QrCodeID)
		err := row.Scan(&qr.ID, &qr.ClaimCode, &qr.UserID, &qr.PlacementDescription,
			&qr.TotalScans, &qr.TotalEarningsCents, &qr.IsActive, &qr.ClaimedAt)
		if err != nil {
			if err != pgx.ErrNoRows {
				zap.L().Error("can't increment qr code totals", zap.Error(err))
			}
			return err
		}

		_, err = r.db.Exec(ctx, insertQuery, scan.ID, scan.QrCodeID, scan.ScannedAt, scan.SourceIP, scan.UserAgent)
		if err != nil {
			zap.L().Error("can't save scan", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &qr, nil
}

func (r *Repository) FindByQrCodeID(ctx context.Context, qrCodeID int) ([]domain.Scan, error) {
	query := `
        SELECT id, qr_code_id, scanned_at, source_ip, user_agent
        FROM scans
        WHERE qr_code_id = $1
        ORDER BY scanned_at DESC
    `
	rows, err := r.db.Query(ctx, query, qrCodeID)
	if err != nil {
		zap.L().Error("can't get scans", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var scans []domain.Scan
	for rows.Next() {
		var scan domain.Scan
		err := rows.Scan(&scan.ID, &scan.QrCodeID, &scan.ScannedAt, &scan.SourceIP, &scan.UserAgent)
		if err != nil {
			zap.L().Error("can't scan scan row", zap.Error(err))
			return nil, err
		}
		scans = append(scans, scan)
	}
	return scans, nil
}
