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

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req models.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createSession").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.ControlService.CreateSession(r.Context(), serviceAddress(r), req); err != nil {
		writeError(w, r, "*Handler.createSession", "error creating session", err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) destroySession(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ControlService.DestroySession(r.Context(), serviceAddress(r)); err != nil {
		writeError(w, r, "*Handler.destroySession", "error destroying session", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) joinSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.joinSession").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	resp, err := h.services.ControlService.JoinSession(r.Context(), serviceAddress(r), req)
	if err != nil {
		writeError(w, r, "*Handler.joinSession", "error joining session", err)
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.joinSession").Msg("error writing response")
	}
}

func (h *Handler) exitSession(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ControlService.ExitSession(r.Context(), serviceAddress(r)); err != nil {
		writeError(w, r, "*Handler.exitSession", "error exiting session", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// refreshSessionState blocks until the late-join snapshot completes or times
// out and returns the registry as it stands afterwards.
func (h *Handler) refreshSessionState(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.ControlService.RefreshSessionState(r.Context(), serviceAddress(r))
	if err != nil {
		writeError(w, r, "*Handler.refreshSessionState", "error refreshing session state", err)
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.refreshSessionState").Msg("error writing response")
	}
}

func (h *Handler) getUserTag(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.ControlService.GetUserTag(r.Context(), serviceAddress(r), chi.URLParam(r, "clientID"))
	if err != nil {
		writeError(w, r, "*Handler.getUserTag", "error getting user tag", err)
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getUserTag").Msg("error writing response")
	}
}
