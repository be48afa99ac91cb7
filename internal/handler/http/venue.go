package http

import (
	"encoding/json"
	"net/http"

	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/utils"
	"github.com/paroquia-on/server/models"
)

func (h *Handler) listVenues(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	venues, err := h.services.VenueService.List(r.Context())
	if err != nil {
		log.Err(err).Msg("venue listing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, venues, http.StatusOK)
}

func (h *Handler) getVenue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", codeInvalidID)
		return
	}

	venue, err := h.services.VenueService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("venue lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, venue, http.StatusOK)
}

func (h *Handler) createVenue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var venue models.Venue
	if err := json.NewDecoder(r.Body).Decode(&venue); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeMissingFields)
		return
	}

	created, err := h.services.VenueService.Create(r.Context(), venue)
	if err != nil {
		log.Err(err).Msg("venue creation failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateVenue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", codeInvalidID)
		return
	}

	var update models.VenueUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeMissingFields)
		return
	}

	updated, err := h.services.VenueService.Update(r.Context(), id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("venue update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteVenue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", codeInvalidID)
		return
	}

	if err := h.services.VenueService.Delete(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("venue deletion failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
