package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/internal/utils"
	"github.com/MKhiriev/worldsync/models"
)

func newBufferLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf).With().Timestamp().Logger()
}

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: newBufferLogger(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	t.Run("header is reused", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
		req.Header.Set(traceIDHeader, "trace-42")
		rr := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rr, req)

		assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))
		assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
	})

	t.Run("request id is used as fallback", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
		req.Header.Set(requestIDHeader, "req-7")
		rr := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rr, req)

		assert.Equal(t, "req-7", rr.Header().Get(traceIDHeader))
	})

	t.Run("unusable header is replaced", func(t *testing.T) {
		for _, bad := range []string{"has space", strings.Repeat("x", maxTraceIDLen+1)} {
			buf.Reset()
			req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
			req.Header.Set(traceIDHeader, bad)
			rr := httptest.NewRecorder()

			h.withTraceID(next).ServeHTTP(rr, req)

			_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
			assert.NoError(t, err, bad)
		}
	})

	t.Run("generated when absent", func(t *testing.T) {
		buf.Reset()
		rr := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))

		traceID := rr.Header().Get(traceIDHeader)
		_, err := uuid.Parse(traceID)
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), traceID)
	})
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: newBufferLogger(&buf)}}

	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging)
	router.Get("/api/synchronizers/{host}/{port}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("brew"))
	})
	router.Post("/api/synchronizers/{host}/{port}/messages", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/synchronizers/a.local/1883", nil))
	out := buf.String()
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"uri":"/api/synchronizers/a.local/1883"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"size":4`)
	assert.Contains(t, out, `"trace_id"`)

	buf.Reset()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/synchronizers/a.local/1883/messages", nil))
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestRoutePattern(t *testing.T) {
	var got string
	router := chi.NewRouter()
	router.Get("/api/synchronizers/{host}/{port}", func(w http.ResponseWriter, r *http.Request) {
		got = routePattern(r)
	})
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/synchronizers/a.local/1883", nil))

	assert.Equal(t, "/api/synchronizers/{host}/{port}", got)
	assert.Equal(t, "unmatched", routePattern(httptest.NewRequest(http.MethodGet, "/x", nil)))
}

func TestResponseWriter(t *testing.T) {
	t.Run("header written once", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}

		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)

		assert.Equal(t, http.StatusCreated, w.status)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("implicit 200 and size accumulates", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}

		_, err := w.Write([]byte("first"))
		require.NoError(t, err)
		_, err = w.Write([]byte("second"))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.status)
		assert.Equal(t, len("firstsecond"), w.size)
		assert.Equal(t, "firstsecond", rr.Body.String())
	})

	t.Run("unwrap", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}

		assert.Same(t, rr, w.Unwrap())
	})
}

func TestWithServiceAddress(t *testing.T) {
	var got models.ServiceAddress
	var ok bool

	router := chi.NewRouter()
	router.Route("/api/synchronizers/{host}/{port}", func(r chi.Router) {
		r.Use(withServiceAddress)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			got, ok = utils.GetServiceAddressFromContext(r.Context())
		})
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/synchronizers/broker.example/8883", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, ok)
	assert.Equal(t, models.ServiceAddress{Host: "broker.example", Port: 8883}, got)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/synchronizers/broker.example/x", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
