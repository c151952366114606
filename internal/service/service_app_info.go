package service

import (
	"context"

	"github.com/MKhiriev/worldsync/internal/config"
	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/models"
)

type appInfoService struct {
	info models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService reports build. The configured version stands in when
// the binary was built without a version stamp.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	info := build.Response()
	if info.Version == models.NotAvailable {
		info.Version = cfg.Version
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return s.info
}
