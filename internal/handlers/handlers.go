package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/scanhive/scanhive/docs"
	applicationhandlers "github.com/scanhive/scanhive/internal/handlers/applications"
	authhandlers "github.com/scanhive/scanhive/internal/handlers/auth"
	paymenthandlers "github.com/scanhive/scanhive/internal/handlers/payments"
	qrcodehandlers "github.com/scanhive/scanhive/internal/handlers/qrcodes"
	scanhandlers "github.com/scanhive/scanhive/internal/handlers/scans"
	userhandlers "github.com/scanhive/scanhive/internal/handlers/users"
	"github.com/scanhive/scanhive/internal/service"
	"github.com/scanhive/scanhive/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ApplicationHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type QrCodeHandler interface {
	Claim(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type ScanHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
	GetNotifications(w http.ResponseWriter, r *http.Request)
	DismissNotifications(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	SaveMethod(w http.ResponseWriter, r *http.Request)
	GetMethod(w http.ResponseWriter, r *http.Request)
	GetPayouts(w http.ResponseWriter, r *http.Request)
	RunPayouts(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	ApplicationHandler ApplicationHandler
	QrCodeHandler      QrCodeHandler
	ScanHandler        ScanHandler
	UserHandler        UserHandler
	PaymentHandler     PaymentHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, payoutRunner paymenthandlers.PayoutRunner, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		ApplicationHandler: applicationhandlers.New(s.ApplicationService),
		QrCodeHandler:      qrcodehandlers.New(s.QrCodeService),
		ScanHandler:        scanhandlers.New(s.ScanService),
		UserHandler:        userhandlers.New(s.StatsService, s.NotificationService, s.UsersService),
		PaymentHandler:     paymenthandlers.New(s.PaymentService, payoutRunner),
		jwtService:         jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		// scans come from anonymous passers-by, no token required
		r.Post("/scans/{qrCodeID}", h.ScanHandler.Record)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))

			r.Route("/applications", func(r chi.Router) {
				r.Post("/", h.ApplicationHandler.Submit)
				r.Get("/me", h.ApplicationHandler.GetMine)
			})
			r.Route("/qr-codes", func(r chi.Router) {
				r.Get("/", h.QrCodeHandler.List)
				r.Post("/claim", h.QrCodeHandler.Claim)
				r.Delete("/{id}", h.QrCodeHandler.Deactivate)
			})
			r.Route("/users/me", func(r chi.Router) {
				r.Get("/stats", h.UserHandler.GetStats)
				r.Get("/notifications", h.UserHandler.GetNotifications)
				r.Post("/notifications/dismiss", h.UserHandler.DismissNotifications)
			})
			r.Route("/payment-methods", func(r chi.Router) {
				r.Post("/", h.PaymentHandler.SaveMethod)
				r.Get("/", h.PaymentHandler.GetMethod)
			})
			r.Get("/payouts", h.PaymentHandler.GetPayouts)

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminOnly)
				r.Get("/users", h.UserHandler.ListUsers)
				r.Get("/applications", h.ApplicationHandler.List)
				r.Patch("/applications/{id}/review", h.ApplicationHandler.Review)
				r.Post("/payouts/run", h.PaymentHandler.RunPayouts)
			})
		})
	})

	return r
}
