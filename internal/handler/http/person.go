package http

import (
	"encoding/json"
	"net/http"

	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/store"
	"github.com/paroquia-on/server/internal/utils"
	"github.com/paroquia-on/server/models"
)

func (h *Handler) listPeople(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter := store.PersonFilter{
		CommunityID: queryInt64(r, "comunidade_id"),
		Name:        r.URL.Query().Get("nome"),
	}

	people, err := h.services.PersonService.List(r.Context(), filter)
	if err != nil {
		log.Err(err).Msg("person listing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, people, http.StatusOK)
}

func (h *Handler) getPerson(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", codeInvalidID)
		return
	}

	person, err := h.services.PersonService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("person lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, person, http.StatusOK)
}

func (h *Handler) createPerson(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var person models.Person
	if err := json.NewDecoder(r.Body).Decode(&person); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeMissingFields)
		return
	}

	created, err := h.services.PersonService.Create(r.Context(), person)
	if err != nil {
		log.Err(err).Msg("person creation failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updatePerson(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", codeInvalidID)
		return
	}

	var update models.PersonUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeMissingFields)
		return
	}

	updated, err := h.services.PersonService.Update(r.Context(), id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("person update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deletePerson(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", codeInvalidID)
		return
	}

	if err := h.services.PersonService.Delete(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("person deletion failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
