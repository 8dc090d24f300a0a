package qrcodes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/scanhive/scanhive/internal/domain"
	"github.com/scanhive/scanhive/internal/dto"
	"github.com/scanhive/scanhive/internal/service/qrcodeservice"
	"github.com/scanhive/scanhive/pkg/auth"
	"github.com/scanhive/scanhive/pkg/utils"
)

func NewMock(t *testing.T) (*QrCodeHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authenticatedRequest(method, target, body string, userID int) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
}

func TestClaimHandler(t *testing.T) {
	handler, service := NewMock(t)

	validBody := `{"claimCode":"SH-T1-A7F3K9","placementDescription":"Cafe window"}`

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Sticker claimed",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 1, "SH-T1-A7F3K9", "Cafe window").
					Return(&domain.QrCode{ID: 5, ClaimCode: "SH-T1-A7F3K9", UserID: 1, IsActive: true}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Malformed claim code",
			body: `{"claimCode":"BOGUS","placementDescription":"Cafe window"}`,
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 1, "BOGUS", "Cafe window").
					Return(nil, qrcodeservice.ErrInvalidClaimCode)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: qrcodeservice.ErrInvalidClaimCode.Error(),
		},
		{
			name: "Application not approved",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 1, "SH-T1-A7F3K9", "Cafe window").
					Return(nil, qrcodeservice.ErrApplicationNotApproved)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: qrcodeservice.ErrApplicationNotApproved.Error(),
		},
		{
			name: "Code already claimed",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 1, "SH-T1-A7F3K9", "Cafe window").
					Return(nil, qrcodeservice.ErrAlreadyClaimed)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: qrcodeservice.ErrAlreadyClaimed.Error(),
		},
		{
			name: "Tier limit reached",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 1, "SH-T1-A7F3K9", "Cafe window").
					Return(nil, qrcodeservice.ErrTierLimitReached)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: qrcodeservice.ErrTierLimitReached.Error(),
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
			body: validBody,
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 1, "SH-T1-A7F3K9", "Cafe window").
					Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authenticatedRequest("POST", "/api/qr-codes/claim", tt.body, 1)
			rr := httptest.NewRecorder()

			handler.Claim(rr, req)

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

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)
	claimedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Active stickers listed", func(t *testing.T) {
		service.EXPECT().ListActive(gomock.Any(), 1).Return([]domain.QrCode{
			{ID: 5, ClaimCode: "SH-T1-A7F3K9", UserID: 1, TotalScans: 12, TotalEarningsCents: 12, IsActive: true, ClaimedAt: claimedAt},
		}, nil)

		req := authenticatedRequest("GET", "/api/qr-codes", "", 1)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.QrCodeResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, int64(12), resp[0].TotalEarningsCents)
	})

	t.Run("Internal error", func(t *testing.T) {
		service.EXPECT().ListActive(gomock.Any(), 1).Return(nil, errors.New("database error"))

		req := authenticatedRequest("GET", "/api/qr-codes", "", 1)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestDeactivateHandler(t *testing.T) {
	handler, service := NewMock(t)

	withURLParam := func(req *http.Request, key, value string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add(key, value)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Sticker deactivated",
			id:   "5",
			prepareMock: func() {
				service.EXPECT().Deactivate(gomock.Any(), 1, 5).Return(nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name:          "Invalid sticker id",
			id:            "not-a-number",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid sticker id",
		},
		{
			name: "Sticker not found",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().Deactivate(gomock.Any(), 1, 99).Return(qrcodeservice.ErrQrCodeNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: qrcodeservice.ErrQrCodeNotFound.Error(),
		},
		{
			name: "Internal error",
			id:   "5",
			prepareMock: func() {
				service.EXPECT().Deactivate(gomock.Any(), 1, 5).Return(errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authenticatedRequest("DELETE", "/api/qr-codes/"+tt.id, "", 1)
			req = withURLParam(req, "id", tt.id)
			rr := httptest.NewRecorder()

			handler.Deactivate(rr, req)

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
