package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/worldsync/internal/registry"
	"github.com/MKhiriev/worldsync/internal/service"
	"github.com/MKhiriev/worldsync/internal/transport"
	"github.com/MKhiriev/worldsync/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: fmt.Errorf("%w: %w", service.ErrInvalidRequest, validators.ErrInvalidPort), want: http.StatusBadRequest},
		{name: "unknown synchronizer", err: service.ErrSynchronizerNotFound, want: http.StatusNotFound},
		{name: "unknown entity wrapped", err: fmt.Errorf("remove crate: %w", registry.ErrUnknownEntity), want: http.StatusNotFound},
		{name: "entity exists", err: registry.ErrEntityExists, want: http.StatusConflict},
		{name: "transport not connected", err: transport.ErrNotConnected, want: http.StatusConflict},
		{name: "closed", err: service.ErrSynchronizerClosed, want: http.StatusGone},
		{name: "join failed", err: service.ErrJoinFailed, want: http.StatusBadGateway},
		{name: "journal disabled", err: service.ErrJournalDisabled, want: http.StatusServiceUnavailable},
		{name: "deadline", err: context.DeadlineExceeded, want: http.StatusGatewayTimeout},
		{
			name: "connection failed with deadline prefers bad gateway",
			err:  fmt.Errorf("%w: %w", service.ErrConnectionFailed, context.DeadlineExceeded),
			want: http.StatusBadGateway,
		},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
