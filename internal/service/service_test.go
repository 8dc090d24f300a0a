package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/scanhive/scanhive/internal/repo"
	"github.com/scanhive/scanhive/internal/service/applicationservice"
	"github.com/scanhive/scanhive/internal/service/authservice"
	"github.com/scanhive/scanhive/internal/service/notificationservice"
	"github.com/scanhive/scanhive/internal/service/paymentservice"
	"github.com/scanhive/scanhive/internal/service/qrcodeservice"
	"github.com/scanhive/scanhive/internal/service/scanservice"
	pkgauth "github.com/scanhive/scanhive/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := authservice.NewMockRepo(ctrl)
	mockApplicationRepo := applicationservice.NewMockRepo(ctrl)
	mockQrCodeRepo := qrcodeservice.NewMockRepo(ctrl)
	mockScanRepo := scanservice.NewMockRepo(ctrl)
	mockPaymentRepo := paymentservice.NewMockMethodRepo(ctrl)
	mockPayoutRepo := paymentservice.NewMockPayoutRepo(ctrl)
	mockNotificationRepo := notificationservice.NewMockRepo(ctrl)
	jwtService := pkgauth.NewMockJWTServiceInterface(ctrl)

	repos := &repo.Repositories{
		UserRepo:         mockUserRepo,
		ApplicationRepo:  mockApplicationRepo,
		QrCodeRepo:       mockQrCodeRepo,
		ScanRepo:         mockScanRepo,
		PaymentRepo:      mockPaymentRepo,
		PayoutRepo:       mockPayoutRepo,
		NotificationRepo: mockNotificationRepo,
	}

	services := New(repos, jwtService)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.ApplicationService)
	assert.NotNil(t, services.QrCodeService)
	assert.NotNil(t, services.ScanService)
	assert.NotNil(t, services.StatsService)
	assert.NotNil(t, services.NotificationService)
	assert.NotNil(t, services.UsersService)
	assert.NotNil(t, services.PaymentService)
}
