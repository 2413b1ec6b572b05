package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/unesleaf/unesleaf-server/internal/logger"
	"github.com/unesleaf/unesleaf-server/internal/service"
	"github.com/unesleaf/unesleaf-server/internal/utils"
)

// listLayers returns the static layer catalog.
func (h *Handler) listLayers(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.LayerService.ListLayers(), http.StatusOK)
}

// getLayerByID renders one catalog layer as a GeoJSON FeatureCollection.
// A non-numeric id behaves like an unknown one: 404, not 400.
func (h *Handler) getLayerByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, "layer not found", http.StatusNotFound)
		return
	}

	featureCollection, err := h.services.LayerService.GetLayerByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLayerNotFound):
			utils.WriteError(w, "layer not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int("layer_id", id).Msg("unexpected error occurred while rendering layer")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(featureCollection)
}
