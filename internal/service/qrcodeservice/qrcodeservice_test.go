package qrcodeservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/scanhive/scanhive/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockApplicationRepo, *MockStatsProvider) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	applicationRepo := NewMockApplicationRepo(ctrl)
	stats := NewMockStatsProvider(ctrl)
	service := New(repo, applicationRepo, stats)
	defer ctrl.Finish()
	return service, repo, applicationRepo, stats
}

func TestClaim(t *testing.T) {
	service, repo, applicationRepo, stats := NewMock(t)

	approved := &domain.Application{ID: 10, UserID: 1, Status: domain.ApplicationStatusApproved}

	tests := []struct {
		name          string
		claimCode     string
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Successful claim",
			claimCode: "SH-T1-A7F3K9",
			prepareMock: func() {
				applicationRepo.EXPECT().FindByUserID(context.Background(), 1).Return(approved, nil)
				repo.EXPECT().FindByClaimCode(context.Background(), "SH-T1-A7F3K9").Return(nil, nil)
				stats.EXPECT().GetUserStats(context.Background(), 1).Return(&domain.UserStats{ActiveStickers: 0, CurrentTier: 1}, nil)
				repo.EXPECT().Insert(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, qr *domain.QrCode) (*domain.QrCode, error) {
					qr.ID = 5
					qr.IsActive = true
					return qr, nil
				})
			},
			expectedError: nil,
		},
		{
			name:      "Lowercase code normalized before lookup",
			claimCode: "sh-t1-a7f3k9",
			prepareMock: func() {
				applicationRepo.EXPECT().FindByUserID(context.Background(), 1).Return(approved, nil)
				repo.EXPECT().FindByClaimCode(context.Background(), "SH-T1-A7F3K9").Return(nil, nil)
				stats.EXPECT().GetUserStats(context.Background(), 1).Return(&domain.UserStats{ActiveStickers: 0, CurrentTier: 1}, nil)
				repo.EXPECT().Insert(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, qr *domain.QrCode) (*domain.QrCode, error) {
					qr.ID = 6
					return qr, nil
				})
			},
			expectedError: nil,
		},
		{
			name:          "Malformed claim code",
			claimCode:     "not-a-code",
			prepareMock:   func() {},
			expectedError: ErrInvalidClaimCode,
		},
		{
			name:      "No application",
			claimCode: "SH-T1-A7F3K9",
			prepareMock: func() {
				applicationRepo.EXPECT().FindByUserID(context.Background(), 1).Return(nil, nil)
			},
			expectedError: ErrApplicationNotApproved,
		},
		{
			name:      "Pending application",
			claimCode: "SH-T1-A7F3K9",
			prepareMock: func() {
				applicationRepo.EXPECT().FindByUserID(context.Background(), 1).Return(&domain.Application{Status: domain.ApplicationStatusPending}, nil)
			},
			expectedError: ErrApplicationNotApproved,
		},
		{
			name:      "Code already claimed",
			claimCode: "SH-T1-A7F3K9",
			prepareMock: func() {
				applicationRepo.EXPECT().FindByUserID(context.Background(), 1).Return(approved, nil)
				repo.EXPECT().FindByClaimCode(context.Background(), "SH-T1-A7F3K9").Return(&domain.QrCode{ID: 3, UserID: 2}, nil)
			},
			expectedError: ErrAlreadyClaimed,
		},
		{
			name:      "Tier limit reached",
			claimCode: "SH-T2-B2C4D6",
			prepareMock: func() {
				applicationRepo.EXPECT().FindByUserID(context.Background(), 1).Return(approved, nil)
				repo.EXPECT().FindByClaimCode(context.Background(), "SH-T2-B2C4D6").Return(nil, nil)
				stats.EXPECT().GetUserStats(context.Background(), 1).Return(&domain.UserStats{ActiveStickers: 2, CurrentTier: 2}, nil)
			},
			expectedError: ErrTierLimitReached,
		},
		{
			name:      "Lost insert race",
			claimCode: "SH-T1-A7F3K9",
			prepareMock: func() {
				applicationRepo.EXPECT().FindByUserID(context.Background(), 1).Return(approved, nil)
				repo.EXPECT().FindByClaimCode(context.Background(), "SH-T1-A7F3K9").Return(nil, nil)
				stats.EXPECT().GetUserStats(context.Background(), 1).Return(&domain.UserStats{ActiveStickers: 0, CurrentTier: 1}, nil)
				repo.EXPECT().Insert(context.Background(), gomock.Any()).Return(nil, nil)
			},
			expectedError: ErrAlreadyClaimed,
		},
		{
			name:      "Database error on insert",
			claimCode: "SH-T1-A7F3K9",
			prepareMock: func() {
				applicationRepo.EXPECT().FindByUserID(context.Background(), 1).Return(approved, nil)
				repo.EXPECT().FindByClaimCode(context.Background(), "SH-T1-A7F3K9").Return(nil, nil)
				stats.EXPECT().GetUserStats(context.Background(), 1).Return(&domain.UserStats{ActiveStickers: 0, CurrentTier: 1}, nil)
				repo.EXPECT().Insert(context.Background(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			qr, err := service.Claim(context.Background(), 1, tt.claimCode, "front window")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, qr)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, qr)
				assert.Equal(t, 1, qr.UserID)
				assert.Equal(t, "SH-T1-A7F3K9", qr.ClaimCode)
			}
		})
	}
}

func TestListActive(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.QrCode
		expectedError error
	}{
		{
			name: "Active stickers listed",
			prepareMock: func() {
				repo.EXPECT().FindActiveByUserID(context.Background(), 1).Return([]domain.QrCode{
					{ID: 1, ClaimCode: "SH-T1-A7F3K9", IsActive: true},
				}, nil)
			},
			expected: []domain.QrCode{
				{ID: 1, ClaimCode: "SH-T1-A7F3K9", IsActive: true},
			},
			expectedError: nil,
		},
		{
			name: "Database error",
			prepareMock: func() {
				repo.EXPECT().FindActiveByUserID(context.Background(), 1).Return(nil, errors.New("database error"))
			},
			expected:      nil,
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			qrCodes, err := service.ListActive(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, qrCodes)
			}
		})
	}
}

func TestDeactivate(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful deactivation",
			prepareMock: func() {
				repo.EXPECT().Deactivate(context.Background(), 5, 1).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name: "Sticker not found or not owned",
			prepareMock: func() {
				repo.EXPECT().Deactivate(context.Background(), 5, 1).Return(false, nil)
			},
			expectedError: ErrQrCodeNotFound,
		},
		{
			name: "Database error",
			prepareMock: func() {
				repo.EXPECT().Deactivate(context.Background(), 5, 1).Return(false, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Deactivate(context.Background(), 1, 5)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
