package repo

import (
	"github.com/scanhive/scanhive/internal/pg"
	applicationrepo "github.com/scanhive/scanhive/internal/repo/application-repo"
	notificationrepo "github.com/scanhive/scanhive/internal/repo/notification-repo"
	paymentrepo "github.com/scanhive/scanhive/internal/repo/payment-repo"
	payoutrepo "github.com/scanhive/scanhive/internal/repo/payout-repo"
	qrcoderepo "github.com/scanhive/scanhive/internal/repo/qrcode-repo"
	scanrepo "github.com/scanhive/scanhive/internal/repo/scan-repo"
	userrepo "github.com/scanhive/scanhive/internal/repo/user-repo"
	"github.com/scanhive/scanhive/internal/service/applicationservice"
	"github.com/scanhive/scanhive/internal/service/authservice"
	"github.com/scanhive/scanhive/internal/service/notificationservice"
	"github.com/scanhive/scanhive/internal/service/paymentservice"
	"github.com/scanhive/scanhive/internal/service/qrcodeservice"
	"github.com/scanhive/scanhive/internal/service/scanservice"
)

type Repositories struct {
	UserRepo         authservice.Repo
	ApplicationRepo  applicationservice.Repo
	QrCodeRepo       qrcodeservice.Repo
	ScanRepo         scanservice.Repo
	PaymentRepo      paymentservice.MethodRepo
	PayoutRepo       paymentservice.PayoutRepo
	NotificationRepo notificationservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	applicationRepo := applicationrepo.New(conn)
	qrCodeRepo := qrcoderepo.New(conn)
	scanRepo := scanrepo.New(conn, txManager)
	paymentRepo := paymentrepo.New(conn, txManager)
	payoutRepo := payoutrepo.New(conn)
	notificationRepo := notificationrepo.New(conn)

	return &Repositories{
		UserRepo:         userRepo,
		ApplicationRepo:  applicationRepo,
		QrCodeRepo:       qrCodeRepo,
		ScanRepo:         scanRepo,
		PaymentRepo:      paymentRepo,
		PayoutRepo:       payoutRepo,
		NotificationRepo: notificationRepo,
	}
}
