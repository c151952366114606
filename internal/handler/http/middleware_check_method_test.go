// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a small chi.Mux with flat and nested routes.
// It intentionally does not use Handler.Init() to avoid service setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("v1"))
	})
	router.Route("/api/synchronizers/{host}/{port}", func(r chi.Router) {
		r.Post("/session", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusCreated) })
		r.Delete("/session", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
		r.Put("/entities/{entityID}", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "flat route", method: http.MethodGet, path: "/api/version", wantStatus: http.StatusOK},
		{name: "nested route POST", method: http.MethodPost, path: "/api/synchronizers/a.local/1883/session", wantStatus: http.StatusCreated},
		{name: "nested route DELETE", method: http.MethodDelete, path: "/api/synchronizers/a.local/1883/session", wantStatus: http.StatusNoContent},
		{name: "nested param route", method: http.MethodPut, path: "/api/synchronizers/a.local/1883/entities/crate", wantStatus: http.StatusNoContent},

		{name: "flat route wrong method", method: http.MethodPost, path: "/api/version", wantStatus: http.StatusNotFound},
		{name: "nested route wrong method", method: http.MethodGet, path: "/api/synchronizers/a.local/1883/session", wantStatus: http.StatusNotFound},
		{name: "nested param route wrong method", method: http.MethodPatch, path: "/api/synchronizers/a.local/1883/entities/crate", wantStatus: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, path: "/api/nonexistent", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	router := buildRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v1", rr.Body.String())
}
