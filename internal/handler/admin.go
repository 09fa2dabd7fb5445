package handler

import (
	"net/http"

	"github.com/osse101/itemforge/internal/catalog"
	"github.com/osse101/itemforge/internal/logger"
)

// ReloadResponse confirms a catalog reload
type ReloadResponse struct {
	Message string `json:"message"`
	Items   int    `json:"items"`
}

// HandleReloadCatalog re-reads the item catalog. A failed reload keeps the
// previous catalog in service.
func HandleReloadCatalog(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		log.Info("Reloading item catalog")

		if err := svc.Reload(ctx); err != nil {
			log.Error("Failed to reload item catalog", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgReloadConfigFailed)
			return
		}

		items := len(svc.Names())
		log.Info("Item catalog reloaded", "items", items)
		respondJSON(w, http.StatusOK, ReloadResponse{Message: MsgConfigReloadedSuccess, Items: items})
	}
}
