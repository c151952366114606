package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/worldsync/internal/app"
	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/models"
)

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.sendMessage").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.ControlService.SendMessage(r.Context(), serviceAddress(r), req); err != nil {
		writeError(w, r, "*Handler.sendMessage", "error sending message", err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
