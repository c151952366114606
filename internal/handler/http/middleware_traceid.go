package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader   = "X-Trace-ID"
	requestIDHeader = "X-Request-ID"

	maxTraceIDLen = 128
)

// withTraceID tags the request logger with a trace id taken from
// X-Trace-ID or X-Request-ID, or a fresh UUID when neither holds a usable
// value, and echoes it in the X-Trace-ID response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := callerTraceID(r)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func callerTraceID(r *http.Request) string {
	for _, header := range []string{traceIDHeader, requestIDHeader} {
		if id := r.Header.Get(header); usableTraceID(id) {
			return id
		}
	}
	return ""
}

// usableTraceID accepts short printable ASCII ids, which keeps log lines
// and response headers well formed.
func usableTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLen {
		return false
	}
	for i := range len(id) {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
