package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/store"
	"github.com/paroquia-on/server/internal/utils"
	"github.com/paroquia-on/server/models"
)

// queryDate parses an optional date query parameter, accepting either a
// plain date or a full RFC 3339 timestamp.
func queryDate(r *http.Request, name string) *time.Time {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	return nil
}

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter := store.EventFilter{
		CommunityID: queryInt64(r, "comunidade_id"),
		From:        queryDate(r, "de"),
		To:          queryDate(r, "ate"),
	}

	events, err := h.services.EventService.List(r.Context(), filter)
	if err != nil {
		log.Err(err).Msg("event listing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, events, http.StatusOK)
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", codeInvalidID)
		return
	}

	event, err := h.services.EventService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("event lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, event, http.StatusOK)
}

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var event models.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeMissingFields)
		return
	}

	created, err := h.services.EventService.Create(r.Context(), event)
	if err != nil {
		log.Err(err).Msg("event creation failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", codeInvalidID)
		return
	}

	var update models.EventUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeMissingFields)
		return
	}

	updated, err := h.services.EventService.Update(r.Context(), id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("event update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", codeInvalidID)
		return
	}

	if err := h.services.EventService.Delete(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("event deletion failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
