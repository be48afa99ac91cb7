package http

import (
	"encoding/json"
	"net/http"

	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/store"
	"github.com/paroquia-on/server/internal/utils"
	"github.com/paroquia-on/server/models"
)

func (h *Handler) listActions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter := store.ActionFilter{
		PastoralID: queryInt64(r, "pastoral_id"),
		Status:     r.URL.Query().Get("status"),
	}

	actions, err := h.services.ActionService.List(r.Context(), filter)
	if err != nil {
		log.Err(err).Msg("action listing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, actions, http.StatusOK)
}

func (h *Handler) getAction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", codeInvalidID)
		return
	}

	action, err := h.services.ActionService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("action lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, action, http.StatusOK)
}

func (h *Handler) createAction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var action models.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeMissingFields)
		return
	}

	created, err := h.services.ActionService.Create(r.Context(), action)
	if err != nil {
		log.Err(err).Msg("action creation failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateAction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", codeInvalidID)
		return
	}

	var update models.ActionUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeMissingFields)
		return
	}

	updated, err := h.services.ActionService.Update(r.Context(), id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("action update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteAction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", codeInvalidID)
		return
	}

	if err := h.services.ActionService.Delete(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("action deletion failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) suggestObjective(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SuggestObjectiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeMissingFields)
		return
	}

	objective, err := h.services.ActionService.SuggestObjective(r.Context(), req.Theme)
	if err != nil {
		log.Err(err).Str("tema", req.Theme).Msg("objective suggestion failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuggestObjectiveResponse{Objective: objective}, http.StatusOK)
}
