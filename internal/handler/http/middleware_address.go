// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/worldsync/internal/app"
	"github.com/MKhiriev/worldsync/internal/utils"
	"github.com/MKhiriev/worldsync/models"
)

// withServiceAddress reads the {host} and {port} URL parameters of a
// per-synchronizer route and stores the resulting [models.ServiceAddress] in
// the request context. A non-numeric port is rejected with 400 before the
// handler runs.
func withServiceAddress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		port, err := strconv.Atoi(chi.URLParam(r, "port"))
		if err != nil {
			http.Error(w, app.MsgInvalidPort, http.StatusBadRequest)
			return
		}

		addr := models.ServiceAddress{Host: chi.URLParam(r, "host"), Port: port}
		next.ServeHTTP(w, r.WithContext(utils.WithServiceAddress(r.Context(), addr)))
	})
}

// serviceAddress returns the address stored by withServiceAddress.
func serviceAddress(r *http.Request) models.ServiceAddress {
	addr, _ := utils.GetServiceAddressFromContext(r.Context())
	return addr
}
