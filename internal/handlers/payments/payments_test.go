package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/scanhive/scanhive/internal/domain"
	"github.com/scanhive/scanhive/internal/dto"
	"github.com/scanhive/scanhive/internal/payouts"
	"github.com/scanhive/scanhive/internal/service/paymentservice"
	"github.com/scanhive/scanhive/pkg/auth"
	"github.com/scanhive/scanhive/pkg/utils"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService, *MockPayoutRunner) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	payoutRunner := NewMockPayoutRunner(ctrl)
	handler := New(service, payoutRunner)
	defer ctrl.Finish()
	return handler, service, payoutRunner
}

func authenticatedRequest(method, target, body string, userID int) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
}

func TestSaveMethodHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Bank method saved",
			body: `{"type":"bank","accountHolder":"Sam Hunter","routingNumber":"021000021","accountNumber":"000123456789"}`,
			prepareMock: func() {
				service.EXPECT().SaveMethod(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, method *domain.PaymentMethod) (*domain.PaymentMethod, error) {
						assert.Equal(t, 1, method.UserID)
						assert.Equal(t, domain.PaymentMethodBank, method.Type)
						method.ID = 3
						method.IsActive = true
						return method, nil
					})
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Cashapp method saved",
			body: `{"type":"cashapp","accountHolder":"Sam Hunter","cashtag":"$samhunter"}`,
			prepareMock: func() {
				service.EXPECT().SaveMethod(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, method *domain.PaymentMethod) (*domain.PaymentMethod, error) {
						method.ID = 4
						method.IsActive = true
						return method, nil
					})
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name:          "Unknown method type",
			body:          `{"type":"crypto","accountHolder":"Sam Hunter"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Internal error",
			body: `{"type":"paypal","accountHolder":"Sam Hunter","paypalEmail":"hunter@example.com"}`,
			prepareMock: func() {
				service.EXPECT().SaveMethod(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authenticatedRequest("POST", "/api/payment-methods", tt.body, 1)
			rr := httptest.NewRecorder()

			handler.SaveMethod(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetMethodHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Active method returned", func(t *testing.T) {
		service.EXPECT().GetActiveMethod(gomock.Any(), 1).
			Return(&domain.PaymentMethod{ID: 3, UserID: 1, Type: domain.PaymentMethodBank, IsActive: true, CreatedAt: createdAt}, nil)

		req := authenticatedRequest("GET", "/api/payment-methods", "", 1)
		rr := httptest.NewRecorder()

		handler.GetMethod(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.PaymentMethodResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, domain.PaymentMethodBank, resp.Type)
	})

	t.Run("No active method", func(t *testing.T) {
		service.EXPECT().GetActiveMethod(gomock.Any(), 1).Return(nil, paymentservice.ErrPaymentMethodNotFound)

		req := authenticatedRequest("GET", "/api/payment-methods", "", 1)
		rr := httptest.NewRecorder()

		handler.GetMethod(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Internal error", func(t *testing.T) {
		service.EXPECT().GetActiveMethod(gomock.Any(), 1).Return(nil, errors.New("database error"))

		req := authenticatedRequest("GET", "/api/payment-methods", "", 1)
		rr := httptest.NewRecorder()

		handler.GetMethod(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetPayoutsHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	createdAt := time.Date(2025, 6, 30, 23, 0, 0, 0, time.UTC)
	methodID := 3

	t.Run("Payout history returned", func(t *testing.T) {
		service.EXPECT().GetPayouts(gomock.Any(), 1).Return([]domain.MonthlyPayout{
			{ID: 9, UserID: 1, Month: 6, Year: 2025, AmountCents: 512, Status: domain.PayoutStatusPending, PaymentMethodID: &methodID, CreatedAt: createdAt},
		}, nil)

		req := authenticatedRequest("GET", "/api/payouts", "", 1)
		rr := httptest.NewRecorder()

		handler.GetPayouts(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.PayoutResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, int64(512), resp[0].AmountCents)
	})

	t.Run("Internal error", func(t *testing.T) {
		service.EXPECT().GetPayouts(gomock.Any(), 1).Return(nil, errors.New("database error"))

		req := authenticatedRequest("GET", "/api/payouts", "", 1)
		rr := httptest.NewRecorder()

		handler.GetPayouts(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestRunPayoutsHandler(t *testing.T) {
	handler, _, payoutRunner := NewMock(t)

	t.Run("Run summary returned", func(t *testing.T) {
		payoutRunner.EXPECT().RunOnce(gomock.Any(), gomock.Any()).
			Return(&payouts.RunSummary{Month: 6, Year: 2025, Selected: 3, Created: 2, TotalCents: 1520}, nil)

		req := authenticatedRequest("POST", "/api/admin/payouts/run", "", 7)
		rr := httptest.NewRecorder()

		handler.RunPayouts(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.PayoutRunResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 2, resp.Created)
		assert.Equal(t, int64(1520), resp.TotalCents)
	})

	t.Run("Internal error", func(t *testing.T) {
		payoutRunner.EXPECT().RunOnce(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		req := authenticatedRequest("POST", "/api/admin/payouts/run", "", 7)
		rr := httptest.NewRecorder()

		handler.RunPayouts(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
