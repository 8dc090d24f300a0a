package statsservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/scanhive/scanhive/internal/domain"
)

type Repo interface {
	FindActiveByUserID(ctx context.Context, userID int) ([]domain.QrCode, error)
}

// Service recomputes dashboard stats from the active sticker set on every
// call; nothing is cached.
type Service struct {
	qrCodeRepo Repo
}

func New(qrCodeRepo Repo) *Service {
	return &Service{
		qrCodeRepo: qrCodeRepo,
	}
}

func (s *Service) GetUserStats(ctx context.Context, userID int) (*domain.UserStats, error) {
	active, err := s.qrCodeRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get active qr codes", zap.Error(err))
		return nil, err
	}
	stats := domain.ComputeStats(active)
	return &stats, nil
}
