package qrcodeservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/scanhive/scanhive/internal/domain"
	"github.com/scanhive/scanhive/pkg/validate"
)

type Repo interface {
	FindByClaimCode(ctx context.Context, claimCode string) (*domain.QrCode, error)
	Insert(ctx context.Context, qr *domain.QrCode) (*domain.QrCode, error)
	FindActiveByUserID(ctx context.Context, userID int) ([]domain.QrCode, error)
	Deactivate(ctx context.Context, id, userID int) (bool, error)
}

type ApplicationRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.Application, error)
}

type StatsProvider interface {
	GetUserStats(ctx context.Context, userID int) (*domain.UserStats, error)
}

type Service struct {
	repo            Repo
	applicationRepo ApplicationRepo
	stats           StatsProvider
}

func New(repo Repo, applicationRepo ApplicationRepo, stats StatsProvider) *Service {
	return &Service{
		repo:            repo,
		applicationRepo: applicationRepo,
		stats:           stats,
	}
}

var (
	ErrInvalidClaimCode       = errors.New("invalid claim code")
	ErrApplicationNotApproved = errors.New("application not approved")
	ErrAlreadyClaimed         = errors.New("already claimed")
	ErrTierLimitReached       = errors.New("tier limit reached")
	ErrQrCodeNotFound         = errors.New("qr code not found")
)

// Claim runs the claim preconditions in order, each a hard failure: approved
// application, unclaimed code, active sticker count below the tier limit.
// The pre-existence check is a fast-path error only; the unique constraint on
// claim_code is what actually prevents a double claim under concurrency.
func (s *Service) Claim(ctx context.Context, userID int, claimCode, placementDescription string) (*domain.QrCode, error) {
	if !validate.IsClaimCode(claimCode) {
		return nil, ErrInvalidClaimCode
	}
	claimCode = validate.NormalizeClaimCode(claimCode)

	app, err := s.applicationRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if app == nil || app.Status != domain.ApplicationStatusApproved {
		return nil, ErrApplicationNotApproved
	}

	existing, err := s.repo.FindByClaimCode(ctx, claimCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("claim code already taken", zap.String("claim_code", claimCode))
		return nil, ErrAlreadyClaimed
	}

	stats, err := s.stats.GetUserStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stats.ActiveStickers >= domain.MaxStickersForTier(stats.CurrentTier) {
		zap.L().Info("tier limit reached",
			zap.Int("user_id", userID),
			zap.Int("tier", stats.CurrentTier),
			zap.Int("active_stickers", stats.ActiveStickers),
		)
		return nil, ErrTierLimitReached
	}

	qr := &domain.QrCode{
		ClaimCode:            claimCode,
		UserID:               userID,
		PlacementDescription: placementDescription,
		ClaimedAt:            time.Now(),
	}
	inserted, err := s.repo.Insert(ctx, qr)
	if err != nil {
		zap.L().Error("can't insert qr code", zap.Error(err))
		return nil, err
	}
	if inserted == nil {
		// lost the race to a concurrent claim
		return nil, ErrAlreadyClaimed
	}

	zap.L().Info("sticker claimed", zap.String("claim_code", claimCode), zap.Int("user_id", userID))
	return inserted, nil
}

func (s *Service) ListActive(ctx context.Context, userID int) ([]domain.QrCode, error) {
	qrCodes, err := s.repo.FindActiveByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get qr codes", zap.Error(err))
		return nil, err
	}
	return qrCodes, nil
}

func (s *Service) Deactivate(ctx context.Context, userID, id int) error {
	ok, err := s.repo.Deactivate(ctx, id, userID)
	if err != nil {
		zap.L().Error("can't deactivate qr code", zap.Error(err))
		return err
	}
	if !ok {
		return ErrQrCodeNotFound
	}
	return nil
}
