package service

import (
	"github.com/MKhiriev/worldsync/internal/config"
	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/internal/store"
	"github.com/MKhiriev/worldsync/models"
)

// Services groups the services behind the control API.
type Services struct {
	ControlService ControlService
	JournalService JournalService
	AppInfoService AppInfoService
}

// NewServices wires the services. storages may be nil when the journal is
// disabled. Each wrapper decorates the control service in order.
func NewServices(manager *Manager, storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, log *logger.Logger, wrappers ...ControlServiceWrapper) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, log)
	if err != nil {
		return nil, err
	}

	var repo store.JournalRepository
	if storages != nil {
		repo = storages.JournalRepository
	}

	control := NewControlService(manager, log)
	for _, w := range wrappers {
		control = w.Wrap(control)
	}

	return &Services{
		ControlService: control,
		JournalService: NewJournalService(repo, cfg.Workers, log),
		AppInfoService: appInfo,
	}, nil
}
