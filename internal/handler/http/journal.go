package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/worldsync/internal/app"
	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/internal/utils"
	"github.com/MKhiriev/worldsync/models"
)

// listJournal serves GET /api/journal. Optional query parameters: service
// (host:port), session_id, kind and limit.
func (h *Handler) listJournal(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := models.JournalFilter{
		Service:   q.Get("service"),
		SessionID: q.Get("session_id"),
		Kind:      models.JournalKind(q.Get("kind")),
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			http.Error(w, app.MsgInvalidLimit, http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	records, err := h.services.JournalService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, "*Handler.listJournal", "error listing journal", err)
		return
	}
	if records == nil {
		records = []models.JournalRecord{}
	}

	resp := models.JournalResponse{Records: records, Length: len(records)}
	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listJournal").Msg("error writing response")
	}
}
