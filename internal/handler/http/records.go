package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/unesleaf/unesleaf-server/internal/logger"
	"github.com/unesleaf/unesleaf-server/internal/service"
	"github.com/unesleaf/unesleaf-server/internal/store"
	"github.com/unesleaf/unesleaf-server/internal/utils"
	"github.com/unesleaf/unesleaf-server/models"
)

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	var req models.CreateRecordRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	record, err := h.services.RecordService.CreateRecord(ctx, models.Record{
		UserID: userID,
		Lng:    *req.Lng,
		Lat:    *req.Lat,
		Texto:  req.Texto,
		Tipo:   req.Tipo,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCoordinatesOutOfRange):
			utils.WriteError(w, "lng/lat out of range", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrRecordOwnerMissing):
			log.Err(err).Msg("record owner no longer exists")
			utils.WriteError(w, "user no longer exists", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred while creating record")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, models.CreateRecordResponse{
		OK:       true,
		ID:       record.ID,
		CreadoEn: record.CreadoEn,
	}, http.StatusCreated)
}

// listRecords returns the authenticated user's records, newest first. The
// optional "limit" query parameter is clamped by the service; anything
// unparseable falls back to the default.
func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		if parsed, err := strconv.Atoi(rawLimit); err == nil {
			limit = parsed
		}
	}

	records, err := h.services.RecordService.ListRecords(ctx, userID, limit)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred while listing records")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.ListRecordsResponse{Items: records}, http.StatusOK)
}
