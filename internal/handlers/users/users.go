package users

import (
	"context"
	"net/http"
	"time"

	"github.com/scanhive/scanhive/internal/domain"
	"github.com/scanhive/scanhive/internal/dto"
	"github.com/scanhive/scanhive/pkg/auth"
	"github.com/scanhive/scanhive/pkg/utils"
)

type StatsService interface {
	GetUserStats(ctx context.Context, userID int) (*domain.UserStats, error)
}

type NotificationService interface {
	Get(ctx context.Context, userID int) (*domain.NotificationPreference, error)
	Dismiss(ctx context.Context, userID int) (*domain.NotificationPreference, error)
}

type UsersService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type UserHandler struct {
	statsService        StatsService
	notificationService NotificationService
	usersService        UsersService
}

func New(statsService StatsService, notificationService NotificationService, usersService UsersService) *UserHandler {
	return &UserHandler{
		statsService:        statsService,
		notificationService: notificationService,
		usersService:        usersService,
	}
}

// GetStats godoc
//
//	@Summary		Get own dashboard stats
//	@Description	Aggregate earnings, scan count, active sticker count and current tier, recomputed from the caller's active stickers.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.StatsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/me/stats [get]
func (h *UserHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	stats, err := h.statsService.GetUserStats(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StatsResponseDTO{
		TotalScans:         stats.TotalScans,
		TotalEarningsCents: stats.TotalEarningsCents,
		ActiveStickers:     stats.ActiveStickers,
		CurrentTier:        stats.CurrentTier,
	})
}

// GetNotifications godoc
//
//	@Summary		Get notification preference
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.NotificationPreferenceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/me/notifications [get]
func (h *UserHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	pref, err := h.notificationService.Get(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NotificationPreferenceResponseDTO{
		LastDismissedAt: pref.LastDismissedAt,
	})
}

// DismissNotifications godoc
//
//	@Summary		Dismiss the recurring reminder
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.NotificationPreferenceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/me/notifications/dismiss [post]
func (h *UserHandler) DismissNotifications(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	pref, err := h.notificationService.Dismiss(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NotificationPreferenceResponseDTO{
		LastDismissedAt: pref.LastDismissedAt,
	})
}

// ListUsers godoc
//
//	@Summary		List users
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	userList, err := h.usersService.ListUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.UserResponseDTO, len(userList))
	for i, user := range userList {
		response[i] = dto.UserResponseDTO{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt.Format(time.RFC3339),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
