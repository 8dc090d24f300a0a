package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/scanhive/scanhive/internal/config"
	"github.com/scanhive/scanhive/internal/handlers"
	"github.com/scanhive/scanhive/internal/payouts"
	"github.com/scanhive/scanhive/internal/pg"
	"github.com/scanhive/scanhive/internal/repo"
	"github.com/scanhive/scanhive/internal/service"
	"github.com/scanhive/scanhive/pkg/auth"
	"github.com/scanhive/scanhive/pkg/clients"
	"github.com/scanhive/scanhive/pkg/logger"
	"github.com/scanhive/scanhive/pkg/secrets"
)

const jwtSecretName = "jwt_signing_key"

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	ext  *payouts.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	jwtService, err := buildJWTService(ctx, cfg)
	if err != nil {
		zap.L().Error("secret store failed: ", zap.Error(err))
		return fmt.Errorf("can't load signing key: %w", err)
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, jwtService)
	a.ext = payouts.New(cfg, a.repo.PayoutRepo, a.repo.PaymentRepo, clients.NewHTTPClient())
	a.api = handlers.New(a.srv, a.ext, jwtService)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startPayoutScheduler(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// buildJWTService pulls the signing key from the ops-managed secret store.
// A missing key is a startup failure, not a fallback.
func buildJWTService(ctx context.Context, cfg *config.Config) (*auth.JWTService, error) {
	store, err := secrets.New(cfg.RedisAddress)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	key, err := store.Get(ctx, jwtSecretName)
	if err != nil {
		return nil, fmt.Errorf("can't read %s: %w", jwtSecretName, err)
	}
	return auth.NewJWTService([]byte(key)), nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startPayoutScheduler(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.ext.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
