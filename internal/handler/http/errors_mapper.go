package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/internal/registry"
	"github.com/MKhiriev/worldsync/internal/service"
	"github.com/MKhiriev/worldsync/internal/transport"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidRequest:       http.StatusBadRequest,
	service.ErrInvalidAddress:       http.StatusBadRequest,
	service.ErrInvalidSessionID:     http.StatusBadRequest,
	service.ErrInvalidTopic:         http.StatusBadRequest,
	service.ErrInvalidQoS:           http.StatusBadRequest,
	service.ErrInvalidEntity:        http.StatusBadRequest,
	service.ErrUnsupportedTransport: http.StatusBadRequest,

	service.ErrSynchronizerNotFound: http.StatusNotFound,
	service.ErrUnknownParticipant:   http.StatusNotFound,
	registry.ErrUnknownEntity:       http.StatusNotFound,

	service.ErrSynchronizerExists: http.StatusConflict,
	service.ErrSessionExists:      http.StatusConflict,
	service.ErrAlreadyJoined:      http.StatusConflict,
	service.ErrNotConnected:       http.StatusConflict,
	service.ErrAlreadyConnected:   http.StatusConflict,
	service.ErrNoSession:          http.StatusConflict,
	registry.ErrEntityExists:      http.StatusConflict,
	transport.ErrNotConnected:     http.StatusConflict,

	service.ErrSynchronizerClosed: http.StatusGone,

	service.ErrConnectionFailed: http.StatusBadGateway,
	service.ErrJoinFailed:       http.StatusBadGateway,

	service.ErrJournalDisabled: http.StatusServiceUnavailable,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

// statusFromError picks the response status for err. A request that matches
// several sentinels (validation errors wrap the underlying cause) resolves to
// the first status in statusPriority.
func statusFromError(err error) int {
	found := 0
	for target, status := range errorStatusMap {
		if errors.Is(err, target) && (found == 0 || statusPriority[status] < statusPriority[found]) {
			found = status
		}
	}
	if found == 0 {
		return http.StatusInternalServerError
	}
	return found
}

var statusPriority = map[int]int{
	http.StatusBadRequest:          0,
	http.StatusNotFound:            1,
	http.StatusGone:                2,
	http.StatusConflict:            3,
	http.StatusServiceUnavailable:  4,
	http.StatusBadGateway:          5,
	http.StatusGatewayTimeout:      6,
	http.StatusInternalServerError: 7,
}

// writeError logs err under fn and answers with its mapped status.
func writeError(w http.ResponseWriter, r *http.Request, fn, msg string, err error) {
	status := statusFromError(err)
	ev := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		ev = logger.FromRequest(r).Error()
	}
	ev.Err(err).Str("func", fn).Int("status", status).Msg(msg)
	http.Error(w, err.Error(), status)
}
