package scans

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/scanhive/scanhive/internal/domain"
	"github.com/scanhive/scanhive/internal/service/scanservice"
	"github.com/scanhive/scanhive/pkg/utils"
)

type Service interface {
	Record(ctx context.Context, qrCodeID int, sourceIP, userAgent string) (*domain.Scan, error)
}

type ScanHandler struct {
	scanService Service
}

func New(scanService Service) *ScanHandler {
	return &ScanHandler{
		scanService: scanService,
	}
}

// Record godoc
//
//	@Summary		Record a sticker scan
//	@Description	Unauthenticated endpoint hit when someone scans a sticker. Accrues the per-scan reward to the sticker owner.
//	@Tags			Scans
//	@Produce		json
//	@Param			qrCodeID	path		int	true	"Sticker ID"
//	@Success		201			{object}	utils.Response
//	@Failure		400			{object}	utils.Response	"Invalid sticker id"
//	@Failure		404			{object}	utils.Response	"Sticker not found or inactive"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/scans/{qrCodeID} [post]
func (h *ScanHandler) Record(w http.ResponseWriter, r *http.Request) {
	qrCodeID, err := strconv.Atoi(chi.URLParam(r, "qrCodeID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid sticker id")
		return
	}

	_, err = h.scanService.Record(r.Context(), qrCodeID, r.RemoteAddr, r.UserAgent())
	if err != nil {
		switch {
		case errors.Is(err, scanservice.ErrQrCodeNotFoundOrInactive):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{Message: "scan recorded"})
}
