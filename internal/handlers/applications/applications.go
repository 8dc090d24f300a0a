package applications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/scanhive/scanhive/internal/domain"
	"github.com/scanhive/scanhive/internal/dto"
	"github.com/scanhive/scanhive/internal/service/applicationservice"
	"github.com/scanhive/scanhive/pkg/auth"
	"github.com/scanhive/scanhive/pkg/utils"
	"github.com/scanhive/scanhive/pkg/validate"
)

type Service interface {
	Submit(ctx context.Context, userID int, fullName, phone, address, details string) (*domain.Application, error)
	GetForUser(ctx context.Context, userID int) (*domain.Application, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Application, error)
	Review(ctx context.Context, id int, status string, reviewerID int) (*domain.Application, error)
}

type ApplicationHandler struct {
	applicationService Service
}

func New(applicationService Service) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

func toResponseDTO(app *domain.Application) dto.ApplicationResponseDTO {
	return dto.ApplicationResponseDTO{
		ID:         app.ID,
		Status:     app.Status,
		FullName:   app.FullName,
		Phone:      app.Phone,
		Address:    app.Address,
		Details:    app.Details,
		ReviewedAt: app.ReviewedAt,
		CreatedAt:  app.CreatedAt,
	}
}

// Submit godoc
//
//	@Summary		Submit a participation application
//	@Description	Create the caller's application; each user may have at most one.
//	@Tags			Applications
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ApplicationRequestDTO	true	"Application payload"
//	@Success		200		{object}	dto.ApplicationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid body or application already exists"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/applications [post]
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ApplicationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	app, err := h.applicationService.Submit(r.Context(), userID, req.FullName, req.Phone, req.Address, req.Details)
	if err != nil {
		switch {
		case errors.Is(err, applicationservice.ErrApplicationExists):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(app))
}

// GetMine godoc
//
//	@Summary		Get own application
//	@Description	Retrieve the caller's application and its review status.
//	@Tags			Applications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ApplicationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/me [get]
func (h *ApplicationHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	app, err := h.applicationService.GetForUser(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, applicationservice.ErrApplicationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(app))
}

// List godoc
//
//	@Summary		List applications for review
//	@Description	Admin listing of applications filtered by status (default pending).
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Application status"	Enums(pending, approved, rejected)
//	@Success		200		{array}		dto.ApplicationResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/applications [get]
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = domain.ApplicationStatusPending
	}

	apps, err := h.applicationService.ListByStatus(r.Context(), status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ApplicationResponseDTO, len(apps))
	for i, app := range apps {
		app := app
		response[i] = toResponseDTO(&app)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Review godoc
//
//	@Summary		Review an application
//	@Description	Approve or reject a pending application; reviews are terminal.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Application ID"
//	@Param			request	body		dto.ReviewRequestDTO	true	"Review decision"
//	@Success		200		{object}	dto.ApplicationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid status or already reviewed"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Application not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/applications/{id}/review [patch]
func (h *ApplicationHandler) Review(w http.ResponseWriter, r *http.Request) {
	reviewerID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	var req dto.ReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	app, err := h.applicationService.Review(r.Context(), id, req.Status, reviewerID)
	if err != nil {
		switch {
		case errors.Is(err, applicationservice.ErrInvalidReviewStatus):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, applicationservice.ErrAlreadyReviewed):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, applicationservice.ErrApplicationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(app))
}
