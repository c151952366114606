// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler for [chi.Mux.MethodNotAllowed] that
// answers 404 Not Found instead of chi's default 405, so that callers using
// an unsupported method cannot tell which control routes exist.
//
// The lookup uses [chi.Mux.Match], which descends into mounted subrouters, so
// parameterised routes such as /api/synchronizers/{host}/{port}/session are
// covered. A request whose method does match is handed back to the router.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
