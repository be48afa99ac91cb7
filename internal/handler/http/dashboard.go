package http

import (
	"net/http"

	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/utils"
)

func (h *Handler) dashboardSummary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	summary, err := h.services.DashboardService.Summary(r.Context())
	if err != nil {
		log.Err(err).Msg("dashboard summary failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
