package applicationservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/scanhive/scanhive/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestSubmit(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedApp   *domain.Application
		expectedError error
	}{
		{
			name: "Successful submission",
			prepareMock: func() {
				repo.EXPECT().FindByUserID(context.Background(), 1).Return(nil, nil)
				repo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, app *domain.Application) (*domain.Application, error) {
					app.ID = 10
					return app, nil
				})
			},
			expectedApp: &domain.Application{
				ID:       10,
				UserID:   1,
				FullName: "Sam Hunter",
				Phone:    "+15550100",
				Address:  "1 Main St",
				Details:  "coffee shop windows",
				Status:   domain.ApplicationStatusPending,
			},
			expectedError: nil,
		},
		{
			name: "Application already exists",
			prepareMock: func() {
				repo.EXPECT().FindByUserID(context.Background(), 1).Return(&domain.Application{ID: 10, UserID: 1}, nil)
			},
			expectedApp:   nil,
			expectedError: ErrApplicationExists,
		},
		{
			name: "Error finding application",
			prepareMock: func() {
				repo.EXPECT().FindByUserID(context.Background(), 1).Return(nil, errors.New("database error"))
			},
			expectedApp:   nil,
			expectedError: errors.New("database error"),
		},
		{
			name: "Error creating application",
			prepareMock: func() {
				repo.EXPECT().FindByUserID(context.Background(), 1).Return(nil, nil)
				repo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedApp:   nil,
			expectedError: errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			app, err := service.Submit(context.Background(), 1, "Sam Hunter", "+15550100", "1 Main St", "coffee shop windows")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedApp, app)
			}
		})
	}
}

func TestGetForUser(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedApp   *domain.Application
		expectedError error
	}{
		{
			name: "Application found",
			prepareMock: func() {
				repo.EXPECT().FindByUserID(context.Background(), 1).Return(&domain.Application{ID: 10, UserID: 1, Status: domain.ApplicationStatusApproved}, nil)
			},
			expectedApp:   &domain.Application{ID: 10, UserID: 1, Status: domain.ApplicationStatusApproved},
			expectedError: nil,
		},
		{
			name: "Application not found",
			prepareMock: func() {
				repo.EXPECT().FindByUserID(context.Background(), 1).Return(nil, nil)
			},
			expectedApp:   nil,
			expectedError: ErrApplicationNotFound,
		},
		{
			name: "Database error",
			prepareMock: func() {
				repo.EXPECT().FindByUserID(context.Background(), 1).Return(nil, errors.New("database error"))
			},
			expectedApp:   nil,
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			app, err := service.GetForUser(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedApp, app)
			}
		})
	}
}

func TestReview(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		status        string
		prepareMock   func()
		expectedApp   *domain.Application
		expectedError error
	}{
		{
			name:   "Successful approval",
			status: domain.ApplicationStatusApproved,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 10).Return(&domain.Application{ID: 10, Status: domain.ApplicationStatusPending}, nil)
				repo.EXPECT().Review(context.Background(), 10, domain.ApplicationStatusApproved, 2, gomock.Any()).DoAndReturn(
					func(ctx context.Context, id int, status string, reviewerID int, reviewedAt time.Time) (*domain.Application, error) {
						return &domain.Application{ID: id, Status: status, ReviewedBy: &reviewerID, ReviewedAt: &reviewedAt}, nil
					})
			},
			expectedApp:   &domain.Application{ID: 10, Status: domain.ApplicationStatusApproved},
			expectedError: nil,
		},
		{
			name:          "Invalid review status",
			status:        "maybe",
			prepareMock:   func() {},
			expectedApp:   nil,
			expectedError: ErrInvalidReviewStatus,
		},
		{
			name:   "Application not found",
			status: domain.ApplicationStatusRejected,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 10).Return(nil, nil)
			},
			expectedApp:   nil,
			expectedError: ErrApplicationNotFound,
		},
		{
			name:   "Already reviewed",
			status: domain.ApplicationStatusApproved,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 10).Return(&domain.Application{ID: 10, Status: domain.ApplicationStatusRejected}, nil)
			},
			expectedApp:   nil,
			expectedError: ErrAlreadyReviewed,
		},
		{
			name:   "Concurrent review wins the update",
			status: domain.ApplicationStatusApproved,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 10).Return(&domain.Application{ID: 10, Status: domain.ApplicationStatusPending}, nil)
				repo.EXPECT().Review(context.Background(), 10, domain.ApplicationStatusApproved, 2, gomock.Any()).Return(nil, nil)
			},
			expectedApp:   nil,
			expectedError: ErrAlreadyReviewed,
		},
		{
			name:   "Database error on update",
			status: domain.ApplicationStatusApproved,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 10).Return(&domain.Application{ID: 10, Status: domain.ApplicationStatusPending}, nil)
				repo.EXPECT().Review(context.Background(), 10, domain.ApplicationStatusApproved, 2, gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedApp:   nil,
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			app, err := service.Review(context.Background(), 10, tt.status, 2)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedApp.ID, app.ID)
				assert.Equal(t, tt.expectedApp.Status, app.Status)
				assert.NotNil(t, app.ReviewedBy)
				assert.NotNil(t, app.ReviewedAt)
			}
		})
	}
}

func TestListByStatus(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedApps  []domain.Application
		expectedError error
	}{
		{
			name: "Pending applications listed",
			prepareMock: func() {
				repo.EXPECT().ListByStatus(context.Background(), domain.ApplicationStatusPending).Return([]domain.Application{
					{ID: 10, Status: domain.ApplicationStatusPending},
					{ID: 11, Status: domain.ApplicationStatusPending},
				}, nil)
			},
			expectedApps: []domain.Application{
				{ID: 10, Status: domain.ApplicationStatusPending},
				{ID: 11, Status: domain.ApplicationStatusPending},
			},
			expectedError: nil,
		},
		{
			name: "Database error",
			prepareMock: func() {
				repo.EXPECT().ListByStatus(context.Background(), domain.ApplicationStatusPending).Return(nil, errors.New("database error"))
			},
			expectedApps:  nil,
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			apps, err := service.ListByStatus(context.Background(), domain.ApplicationStatusPending)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedApps, apps)
			}
		})
	}
}
