package scanservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/scanhive/scanhive/internal/domain"
	"github.com/scanhive/scanhive/internal/metrics"
)

type Repo interface {
	RecordScan(ctx context.Context, scan *domain.Scan) (*domain.QrCode, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var ErrQrCodeNotFoundOrInactive = errors.New("not found or inactive")

// Record appends a scan event and accrues the per-scan reward. Scans against
// unknown or deactivated stickers are dropped, not queued. Every accepted
// POST counts; there is no dedup by IP.
func (s *Service) Record(ctx context.Context, qrCodeID int, sourceIP, userAgent string) (*domain.Scan, error) {
	scan := &domain.Scan{
		ID:        uuid.New(),
		QrCodeID:  qrCodeID,
		ScannedAt: time.Now(),
		SourceIP:  sourceIP,
		UserAgent: userAgent,
	}

	qr, err := s.repo.RecordScan(ctx, scan)
	if err != nil {
		zap.L().Error("can't record scan", zap.Error(err))
		return nil, err
	}
	if qr == nil {
		metrics.ScansRejected.Inc()
		return nil, ErrQrCodeNotFoundOrInactive
	}

	metrics.ScansRecorded.Inc()
	zap.L().Info("scan recorded",
		zap.Int("qr_code_id", qrCodeID),
		zap.Int64("total_scans", qr.TotalScans),
	)
	return scan, nil
}
