package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/store"
	"github.com/paroquia-on/server/internal/utils"
	"github.com/paroquia-on/server/models"
)

// queryInt64 parses an optional numeric query parameter, returning nil when
// the parameter is absent or not a number.
func queryInt64(r *http.Request, name string) *int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func (h *Handler) listPastorals(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter := store.PastoralFilter{
		CommunityID: queryInt64(r, "comunidade_id"),
		ActiveOnly:  r.URL.Query().Get("ativa") == "true",
	}

	pastorals, err := h.services.PastoralService.List(r.Context(), filter)
	if err != nil {
		log.Err(err).Msg("pastoral listing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, pastorals, http.StatusOK)
}

func (h *Handler) getPastoral(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", codeInvalidID)
		return
	}

	pastoral, err := h.services.PastoralService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("pastoral lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, pastoral, http.StatusOK)
}

func (h *Handler) createPastoral(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var pastoral models.Pastoral
	if err := json.NewDecoder(r.Body).Decode(&pastoral); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeMissingFields)
		return
	}

	created, err := h.services.PastoralService.Create(r.Context(), pastoral)
	if err != nil {
		log.Err(err).Msg("pastoral creation failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updatePastoral(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", codeInvalidID)
		return
	}

	var update models.PastoralUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeMissingFields)
		return
	}

	updated, err := h.services.PastoralService.Update(r.Context(), id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("pastoral update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deletePastoral(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", codeInvalidID)
		return
	}

	if err := h.services.PastoralService.Delete(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("pastoral deletion failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
