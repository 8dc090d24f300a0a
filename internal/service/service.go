package service

import (
	"github.com/scanhive/scanhive/internal/handlers/applications"
	"github.com/scanhive/scanhive/internal/handlers/auth"
	"github.com/scanhive/scanhive/internal/handlers/payments"
	"github.com/scanhive/scanhive/internal/handlers/qrcodes"
	"github.com/scanhive/scanhive/internal/handlers/scans"
	"github.com/scanhive/scanhive/internal/handlers/users"

	pkgauth "github.com/scanhive/scanhive/pkg/auth"

	"github.com/scanhive/scanhive/internal/repo"
	applicationservice "github.com/scanhive/scanhive/internal/service/applicationservice"
	authservice "github.com/scanhive/scanhive/internal/service/authservice"
	notificationservice "github.com/scanhive/scanhive/internal/service/notificationservice"
	paymentservice "github.com/scanhive/scanhive/internal/service/paymentservice"
	qrcodeservice "github.com/scanhive/scanhive/internal/service/qrcodeservice"
	scanservice "github.com/scanhive/scanhive/internal/service/scanservice"
	statsservice "github.com/scanhive/scanhive/internal/service/statsservice"
)

type Services struct {
	AuthService         auth.Service
	ApplicationService  applications.Service
	QrCodeService       qrcodes.Service
	ScanService         scans.Service
	StatsService        users.StatsService
	NotificationService users.NotificationService
	UsersService        users.UsersService
	PaymentService      payments.Service
}

func New(repo *repo.Repositories, jwtService pkgauth.JWTServiceInterface) *Services {
	statsService := statsservice.New(repo.QrCodeRepo)
	qrCodeService := qrcodeservice.New(repo.QrCodeRepo, repo.ApplicationRepo, statsService)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService)
	applicationService := applicationservice.New(repo.ApplicationRepo)
	scanService := scanservice.New(repo.ScanRepo)
	paymentService := paymentservice.New(repo.PaymentRepo, repo.PayoutRepo)
	notificationService := notificationservice.New(repo.NotificationRepo)

	return &Services{
		AuthService:         authService,
		ApplicationService:  applicationService,
		QrCodeService:       qrCodeService,
		ScanService:         scanService,
		StatsService:        statsService,
		NotificationService: notificationService,
		UsersService:        authService,
		PaymentService:      paymentService,
	}
}
