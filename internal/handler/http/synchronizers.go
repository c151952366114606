package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/worldsync/internal/app"
	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/internal/utils"
	"github.com/MKhiriev/worldsync/models"
)

func (h *Handler) listSynchronizers(w http.ResponseWriter, r *http.Request) {
	infos := h.services.ControlService.ListSynchronizers(r.Context())
	if infos == nil {
		infos = []models.SynchronizerInfo{}
	}

	if _, err := utils.WriteJSON(w, infos, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listSynchronizers").Msg("error writing response")
	}
}

func (h *Handler) addSynchronizer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AddSynchronizerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.addSynchronizer").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	if req.Transport == "" {
		req.Transport = models.TransportTCP
	}

	info, err := h.services.ControlService.AddSynchronizer(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.addSynchronizer", "error adding synchronizer", err)
		return
	}

	w.Header().Set("Location", "/api/synchronizers/"+req.Host+"/"+strconv.Itoa(req.Port))
	if _, err = utils.WriteJSON(w, info, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.addSynchronizer").Msg("error writing response")
	}
}

func (h *Handler) getSynchronizer(w http.ResponseWriter, r *http.Request) {
	info, err := h.services.ControlService.GetSynchronizer(r.Context(), serviceAddress(r))
	if err != nil {
		writeError(w, r, "*Handler.getSynchronizer", "error getting synchronizer", err)
		return
	}

	if _, err = utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getSynchronizer").Msg("error writing response")
	}
}

func (h *Handler) removeSynchronizer(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ControlService.RemoveSynchronizer(r.Context(), serviceAddress(r)); err != nil {
		writeError(w, r, "*Handler.removeSynchronizer", "error removing synchronizer", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) connect(w http.ResponseWriter, r *http.Request) {
	info, err := h.services.ControlService.Connect(r.Context(), serviceAddress(r))
	if err != nil {
		writeError(w, r, "*Handler.connect", "error connecting synchronizer", err)
		return
	}

	if _, err = utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.connect").Msg("error writing response")
	}
}

func (h *Handler) disconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ControlService.Disconnect(r.Context(), serviceAddress(r)); err != nil {
		writeError(w, r, "*Handler.disconnect", "error disconnecting synchronizer", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
