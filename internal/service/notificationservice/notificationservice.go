package notificationservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/scanhive/scanhive/internal/domain"
)

type Repo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.NotificationPreference, error)
	UpsertDismissedAt(ctx context.Context, userID int, dismissedAt time.Time) (*domain.NotificationPreference, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Get returns the user's preference; a user who never dismissed the reminder
// gets an empty preference rather than an error.
func (s *Service) Get(ctx context.Context, userID int) (*domain.NotificationPreference, error) {
	pref, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get notification preference", zap.Error(err))
		return nil, err
	}
	if pref == nil {
		return &domain.NotificationPreference{UserID: userID}, nil
	}
	return pref, nil
}

func (s *Service) Dismiss(ctx context.Context, userID int) (*domain.NotificationPreference, error) {
	pref, err := s.repo.UpsertDismissedAt(ctx, userID, time.Now())
	if err != nil {
		zap.L().Error("can't dismiss notification", zap.Error(err))
		return nil, err
	}
	return pref, nil
}
