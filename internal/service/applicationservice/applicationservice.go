package applicationservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/scanhive/scanhive/internal/domain"
)

type Repo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.Application, error)
	FindByID(ctx context.Context, id int) (*domain.Application, error)
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Application, error)
	Review(ctx context.Context, id int, status string, reviewerID int, reviewedAt time.Time) (*domain.Application, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrApplicationExists   = errors.New("application already exists")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyReviewed     = errors.New("application already reviewed")
	ErrInvalidReviewStatus = errors.New("invalid review status")
)

// Submit creates the user's application in pending state. One application per
// user, enforced by a pre-check at submission time.
func (s *Service) Submit(ctx context.Context, userID int, fullName, phone, address, details string) (*domain.Application, error) {
	existing, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("application already exists", zap.Int("user_id", userID))
		return nil, ErrApplicationExists
	}

	app := &domain.Application{
		UserID:   userID,
		FullName: fullName,
		Phone:    phone,
		Address:  address,
		Details:  details,
		Status:   domain.ApplicationStatusPending,
	}
	created, err := s.repo.Create(ctx, app)
	if err != nil {
		zap.L().Error("can't save application", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetForUser(ctx context.Context, userID int) (*domain.Application, error) {
	app, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get application", zap.Error(err))
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	return app, nil
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]domain.Application, error) {
	apps, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		zap.L().Error("can't list applications", zap.Error(err))
		return nil, err
	}
	return apps, nil
}

// Review resolves a pending application. Reviews are terminal: once an
// application is approved or rejected there is no re-review path.
func (s *Service) Review(ctx context.Context, id int, status string, reviewerID int) (*domain.Application, error) {
	if status != domain.ApplicationStatusApproved && status != domain.ApplicationStatusRejected {
		return nil, ErrInvalidReviewStatus
	}

	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	if app.Status != domain.ApplicationStatusPending {
		zap.L().Info("application already reviewed", zap.Int("id", id), zap.String("status", app.Status))
		return nil, ErrAlreadyReviewed
	}

	reviewed, err := s.repo.Review(ctx, id, status, reviewerID, time.Now())
	if err != nil {
		zap.L().Error("can't review application", zap.Error(err))
		return nil, err
	}
	if reviewed == nil {
		// the row was pending a moment ago, so a concurrent review won
		zap.L().Info("application reviewed concurrently", zap.Int("id", id))
		return nil, ErrAlreadyReviewed
	}
	zap.L().Info("application reviewed", zap.Int("id", id), zap.String("status", status), zap.Int("reviewer", reviewerID))
	return reviewed, nil
}
