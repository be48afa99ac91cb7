package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/store"
	"github.com/paroquia-on/server/internal/utils"
	"github.com/paroquia-on/server/models"
)

// parseIDParam reads a numeric chi URL parameter.
func parseIDParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

func (h *Handler) listCommunities(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter := store.CommunityFilter{City: r.URL.Query().Get("cidade")}

	communities, err := h.services.CommunityService.List(r.Context(), filter)
	if err != nil {
		log.Err(err).Msg("community listing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, communities, http.StatusOK)
}

func (h *Handler) getCommunity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", codeInvalidID)
		return
	}

	community, err := h.services.CommunityService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("community lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, community, http.StatusOK)
}

func (h *Handler) createCommunity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var community models.Community
	if err := json.NewDecoder(r.Body).Decode(&community); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeMissingFields)
		return
	}

	created, err := h.services.CommunityService.Create(r.Context(), community)
	if err != nil {
		log.Err(err).Msg("community creation failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateCommunity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", codeInvalidID)
		return
	}

	var update models.CommunityUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeMissingFields)
		return
	}

	updated, err := h.services.CommunityService.Update(r.Context(), id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("community update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCommunity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", codeInvalidID)
		return
	}

	if err := h.services.CommunityService.Delete(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("community deletion failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
