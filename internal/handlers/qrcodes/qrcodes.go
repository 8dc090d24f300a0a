package qrcodes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/scanhive/scanhive/internal/domain"
	"github.com/scanhive/scanhive/internal/dto"
	"github.com/scanhive/scanhive/internal/service/qrcodeservice"
	"github.com/scanhive/scanhive/pkg/auth"
	"github.com/scanhive/scanhive/pkg/utils"
	"github.com/scanhive/scanhive/pkg/validate"
)

type Service interface {
	Claim(ctx context.Context, userID int, claimCode, placementDescription string) (*domain.QrCode, error)
	ListActive(ctx context.Context, userID int) ([]domain.QrCode, error)
	Deactivate(ctx context.Context, userID, id int) error
}

type QrCodeHandler struct {
	qrCodeService Service
}

func New(qrCodeService Service) *QrCodeHandler {
	return &QrCodeHandler{
		qrCodeService: qrCodeService,
	}
}

func toResponseDTO(qr *domain.QrCode) dto.QrCodeResponseDTO {
	return dto.QrCodeResponseDTO{
		ID:                   qr.ID,
		ClaimCode:            qr.ClaimCode,
		PlacementDescription: qr.PlacementDescription,
		TotalScans:           qr.TotalScans,
		TotalEarningsCents:   qr.TotalEarningsCents,
		IsActive:             qr.IsActive,
		ClaimedAt:            qr.ClaimedAt,
	}
}

// Claim godoc
//
//	@Summary		Claim a sticker
//	@Description	Take ownership of an unclaimed sticker by its claim code. Requires an approved application and a free slot under the caller's tier limit.
//	@Tags			QrCodes
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ClaimRequestDTO	true	"Claim payload"
//	@Success		200		{object}	dto.QrCodeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid code, already claimed or tier limit reached"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Application not approved"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/qr-codes/claim [post]
func (h *QrCodeHandler) Claim(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ClaimRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	qr, err := h.qrCodeService.Claim(r.Context(), userID, req.ClaimCode, req.PlacementDescription)
	if err != nil {
		switch {
		case errors.Is(err, qrcodeservice.ErrInvalidClaimCode):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, qrcodeservice.ErrApplicationNotApproved):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, qrcodeservice.ErrAlreadyClaimed):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, qrcodeservice.ErrTierLimitReached):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(qr))
}

// List godoc
//
//	@Summary		List own active stickers
//	@Tags			QrCodes
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.QrCodeResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/qr-codes [get]
func (h *QrCodeHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	qrCodes, err := h.qrCodeService.ListActive(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.QrCodeResponseDTO, len(qrCodes))
	for i, qr := range qrCodes {
		qr := qr
		response[i] = toResponseDTO(&qr)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Deactivate godoc
//
//	@Summary		Deactivate a sticker
//	@Description	Soft-delete one of the caller's stickers; it stops counting toward stats and stops accepting scans.
//	@Tags			QrCodes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Sticker ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid sticker id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Sticker not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/qr-codes/{id} [delete]
func (h *QrCodeHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid sticker id")
		return
	}

	if err := h.qrCodeService.Deactivate(r.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, qrcodeservice.ErrQrCodeNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "sticker deactivated"})
}
