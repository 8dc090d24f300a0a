package payouts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/scanhive/scanhive/internal/config"
	"github.com/scanhive/scanhive/internal/domain"
	"github.com/scanhive/scanhive/internal/metrics"
	"github.com/scanhive/scanhive/internal/service/paymentservice"
	"github.com/scanhive/scanhive/pkg/clients"
)

// RunSummary describes one payout selector run.
type RunSummary struct {
	Month      int   `json:"month"`
	Year       int   `json:"year"`
	Selected   int   `json:"selected"`
	Created    int   `json:"created"`
	TotalCents int64 `json:"total_cents"`
}

type Service struct {
	webhookURL    string
	payoutRepo    paymentservice.PayoutRepo
	methodRepo    paymentservice.MethodRepo
	client        clients.HTTPClientI
	workerPool    WorkerPoolI
	checkInterval time.Duration

	mu      sync.Mutex
	lastRun string
}

func New(cfg *config.Config, payoutRepo paymentservice.PayoutRepo, methodRepo paymentservice.MethodRepo, client clients.HTTPClientI) *Service {
	return &Service{
		webhookURL:    cfg.PayoutWebhook,
		payoutRepo:    payoutRepo,
		methodRepo:    methodRepo,
		client:        client,
		workerPool:    NewWorkerPool(10),
		checkInterval: cfg.PayoutInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("payout service started")
	go s.run(ctx)
}

// run wakes up periodically and fires the selector on the last day of each
// month. Re-running within a month is harmless because payout inserts are
// idempotent, but the lastRun guard avoids creating noise on every tick.
func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping payout service")
			return
		case <-ticker.C:
			s.runIfDue(ctx, time.Now())
		}
	}
}

// runIfDue marks the month done only after RunOnce succeeds, so a failed
// month-end run stays due and is retried on the next tick.
func (s *Service) runIfDue(ctx context.Context, now time.Time) {
	if !isLastDayOfMonth(now) {
		return
	}
	key := now.Format("2006-01")
	s.mu.Lock()
	done := s.lastRun == key
	s.mu.Unlock()
	if done {
		return
	}
	if _, err := s.RunOnce(ctx, now); err != nil {
		zap.L().Error("payout run failed", zap.Error(err))
		return
	}
	s.mu.Lock()
	s.lastRun = key
	s.mu.Unlock()
}

// RunOnce selects every user whose summed earnings across all stickers meet
// the threshold and records one payout per user for the month. The sum spans
// inactive stickers too; only dashboard stats filter on the active flag.
func (s *Service) RunOnce(ctx context.Context, now time.Time) (*RunSummary, error) {
	month, year := int(now.Month()), now.Year()

	eligible, err := s.payoutRepo.AggregateEligible(ctx, domain.PayoutThresholdCents)
	if err != nil {
		zap.L().Error("can't aggregate earnings for payout", zap.Error(err))
		return nil, err
	}

	var created, total atomic.Int64
	var wg sync.WaitGroup
	var g errgroup.Group
	for _, e := range eligible {
		e := e
		wg.Add(1)
		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer wg.Done()
				ok, err := s.createPayout(ctx, e, month, year)
				if err != nil {
					return err
				}
				if ok {
					created.Add(1)
					total.Add(e.TotalEarningsCents)
					metrics.PayoutsCreated.Inc()
				}
				return nil
			})
			if err != nil {
				wg.Done()
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("error scheduling payout tasks", zap.Error(err))
	}
	wg.Wait()

	summary := &RunSummary{
		Month:      month,
		Year:       year,
		Selected:   len(eligible),
		Created:    int(created.Load()),
		TotalCents: total.Load(),
	}
	zap.L().Info("payout run complete",
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("selected", summary.Selected),
		zap.Int("created", summary.Created),
		zap.Int64("total_cents", summary.TotalCents),
	)

	s.notifyWebhook(summary)
	return summary, nil
}

// createPayout records the disbursement with the user's active payment method
// at the time of the run; a user without one still gets a payout row with a
// null method.
func (s *Service) createPayout(ctx context.Context, e domain.UserEarnings, month, year int) (bool, error) {
	method, err := s.methodRepo.GetActiveByUserID(ctx, e.UserID)
	if err != nil {
		return false, fmt.Errorf("can't get payment method for user %d: %w", e.UserID, err)
	}

	payout := &domain.MonthlyPayout{
		UserID:      e.UserID,
		Month:       month,
		Year:        year,
		AmountCents: e.TotalEarningsCents,
		Status:      domain.PayoutStatusPending,
	}
	if method != nil {
		payout.PaymentMethodID = &method.ID
	}

	created, err := s.payoutRepo.Create(ctx, payout)
	if err != nil {
		return false, fmt.Errorf("can't create payout for user %d: %w", e.UserID, err)
	}
	if !created {
		zap.L().Info("payout already recorded for month, skipping",
			zap.Int("user_id", e.UserID), zap.Int("month", month), zap.Int("year", year))
	}
	return created, nil
}

// notifyWebhook is fire-and-forget: a delivery failure is logged and never
// retried, payout rows are already committed.
func (s *Service) notifyWebhook(summary *RunSummary) {
	if s.webhookURL == "" {
		return
	}
	body, err := json.Marshal(summary)
	if err != nil {
		zap.L().Error("can't marshal payout summary", zap.Error(err))
		return
	}
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	statusCode, _, err := s.client.Post(s.webhookURL, headers, body)
	if err != nil {
		zap.L().Error("can't notify payout webhook", zap.Error(err))
		return
	}
	if statusCode >= http.StatusBadRequest {
		zap.L().Warn("payout webhook rejected summary", zap.Int("status", statusCode))
	}
}

func isLastDayOfMonth(now time.Time) bool {
	return now.AddDate(0, 0, 1).Day() == 1
}
