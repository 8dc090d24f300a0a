package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/scanhive/scanhive/internal/domain"
	"github.com/scanhive/scanhive/internal/dto"
	"github.com/scanhive/scanhive/internal/payouts"
	"github.com/scanhive/scanhive/internal/service/paymentservice"
	"github.com/scanhive/scanhive/pkg/auth"
	"github.com/scanhive/scanhive/pkg/utils"
	"github.com/scanhive/scanhive/pkg/validate"
)

type Service interface {
	SaveMethod(ctx context.Context, method *domain.PaymentMethod) (*domain.PaymentMethod, error)
	GetActiveMethod(ctx context.Context, userID int) (*domain.PaymentMethod, error)
	GetPayouts(ctx context.Context, userID int) ([]domain.MonthlyPayout, error)
}

type PayoutRunner interface {
	RunOnce(ctx context.Context, now time.Time) (*payouts.RunSummary, error)
}

type PaymentHandler struct {
	paymentService Service
	payoutRunner   PayoutRunner
}

func New(paymentService Service, payoutRunner PayoutRunner) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		payoutRunner:   payoutRunner,
	}
}

// SaveMethod godoc
//
//	@Summary		Save a payment method
//	@Description	Replace the caller's active payment method. Field requirements depend on the method type and are validated server-side.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentMethodRequestDTO	true	"Payment method payload"
//	@Success		200		{object}	dto.PaymentMethodResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payment-methods [post]
func (h *PaymentHandler) SaveMethod(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PaymentMethodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	method := &domain.PaymentMethod{
		UserID:        userID,
		Type:          req.Type,
		AccountHolder: req.AccountHolder,
		RoutingNumber: req.RoutingNumber,
		AccountNumber: req.AccountNumber,
		Cashtag:       req.Cashtag,
		PaypalEmail:   req.PaypalEmail,
	}
	saved, err := h.paymentService.SaveMethod(r.Context(), method)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentMethodResponseDTO{
		ID:        saved.ID,
		Type:      saved.Type,
		IsActive:  saved.IsActive,
		CreatedAt: saved.CreatedAt,
	})
}

// GetMethod godoc
//
//	@Summary		Get the active payment method
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PaymentMethodResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Payment method not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payment-methods [get]
func (h *PaymentHandler) GetMethod(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	method, err := h.paymentService.GetActiveMethod(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrPaymentMethodNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentMethodResponseDTO{
		ID:        method.ID,
		Type:      method.Type,
		IsActive:  method.IsActive,
		CreatedAt: method.CreatedAt,
	})
}

// GetPayouts godoc
//
//	@Summary		List own monthly payouts
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PayoutResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payouts [get]
func (h *PaymentHandler) GetPayouts(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	payoutList, err := h.paymentService.GetPayouts(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PayoutResponseDTO, len(payoutList))
	for i, p := range payoutList {
		response[i] = dto.PayoutResponseDTO{
			ID:              p.ID,
			Month:           p.Month,
			Year:            p.Year,
			AmountCents:     p.AmountCents,
			Status:          p.Status,
			PaymentMethodID: p.PaymentMethodID,
			CreatedAt:       p.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// RunPayouts godoc
//
//	@Summary		Trigger a payout run
//	@Description	Select all users at or above the payout threshold and record one payout each for the current month. Safe to call repeatedly.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PayoutRunResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/payouts/run [post]
func (h *PaymentHandler) RunPayouts(w http.ResponseWriter, r *http.Request) {
	summary, err := h.payoutRunner.RunOnce(r.Context(), time.Now())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PayoutRunResponseDTO{
		Month:      summary.Month,
		Year:       summary.Year,
		Selected:   summary.Selected,
		Created:    summary.Created,
		TotalCents: summary.TotalCents,
	})
}
