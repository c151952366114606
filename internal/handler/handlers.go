package handler

import (
	"github.com/MKhiriev/worldsync/internal/config"
	"github.com/MKhiriev/worldsync/internal/handler/http"
	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/internal/service"
)

// Handlers groups the transport handlers of syncd. The control API is
// served over HTTP only.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Str("func", "NewHandlers").Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
