package paymentservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/scanhive/scanhive/internal/domain"
)

type MethodRepo interface {
	Save(ctx context.Context, method *domain.PaymentMethod) (*domain.PaymentMethod, error)
	GetActiveByUserID(ctx context.Context, userID int) (*domain.PaymentMethod, error)
}

type PayoutRepo interface {
	AggregateEligible(ctx context.Context, thresholdCents int64) ([]domain.UserEarnings, error)
	Create(ctx context.Context, payout *domain.MonthlyPayout) (bool, error)
	GetByUserID(ctx context.Context, userID int) ([]domain.MonthlyPayout, error)
}

type Service struct {
	methodRepo MethodRepo
	payoutRepo PayoutRepo
}

func New(methodRepo MethodRepo, payoutRepo PayoutRepo) *Service {
	return &Service{
		methodRepo: methodRepo,
		payoutRepo: payoutRepo,
	}
}

var ErrPaymentMethodNotFound = errors.New("payment method not found")

// SaveMethod stores the method as the user's single active one; any prior
// methods are soft-deactivated, history is retained.
func (s *Service) SaveMethod(ctx context.Context, method *domain.PaymentMethod) (*domain.PaymentMethod, error) {
	saved, err := s.methodRepo.Save(ctx, method)
	if err != nil {
		zap.L().Error("can't save payment method", zap.Error(err))
		return nil, err
	}
	zap.L().Info("payment method saved", zap.Int("user_id", method.UserID), zap.String("type", method.Type))
	return saved, nil
}

func (s *Service) GetActiveMethod(ctx context.Context, userID int) (*domain.PaymentMethod, error) {
	method, err := s.methodRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get payment method", zap.Error(err))
		return nil, err
	}
	if method == nil {
		return nil, ErrPaymentMethodNotFound
	}
	return method, nil
}

func (s *Service) GetPayouts(ctx context.Context, userID int) ([]domain.MonthlyPayout, error) {
	payouts, err := s.payoutRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get payouts", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}
