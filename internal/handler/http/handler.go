package http

import (
	"time"

	"github.com/MKhiriev/worldsync/internal/config"
	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/internal/service"
)

type Handler struct {
	services *service.Services
	timeout  time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Str("func", "NewHandler").Msg("http handler created")
	return &Handler{
		services: services,
		timeout:  cfg.RequestTimeout,
		logger:   logger,
	}
}
