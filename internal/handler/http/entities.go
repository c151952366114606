package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/worldsync/internal/app"
	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/internal/utils"
	"github.com/MKhiriev/worldsync/models"
)

func (h *Handler) listEntities(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.ControlService.ListEntities(r.Context(), serviceAddress(r))
	if err != nil {
		writeError(w, r, "*Handler.listEntities", "error listing entities", err)
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listEntities").Msg("error writing response")
	}
}

func (h *Handler) addEntity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.addEntity").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	resp, err := h.services.ControlService.AddEntity(r.Context(), serviceAddress(r), req)
	if err != nil {
		writeError(w, r, "*Handler.addEntity", "error adding entity", err)
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.addEntity").Msg("error writing response")
	}
}

// updateEntity takes the entity id from the path; an id in the body must
// match it.
func (h *Handler) updateEntity(w http.ResponseWriter, r *http.Request) {
	var req models.EntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateEntity").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	entityID := chi.URLParam(r, "entityID")
	if req.EntityID != "" && req.EntityID != entityID {
		http.Error(w, app.MsgEntityIDMismatch, http.StatusBadRequest)
		return
	}
	req.EntityID = entityID

	if err := h.services.ControlService.UpdateEntity(r.Context(), serviceAddress(r), req); err != nil {
		writeError(w, r, "*Handler.updateEntity", "error updating entity", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeEntity(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ControlService.RemoveEntity(r.Context(), serviceAddress(r), chi.URLParam(r, "entityID")); err != nil {
		writeError(w, r, "*Handler.removeEntity", "error removing entity", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
