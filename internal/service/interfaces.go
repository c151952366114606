package service

import (
	"context"

	"github.com/MKhiriev/worldsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ControlServiceWrapper

// Entity is a caller-side handle of a synchronized world object.
type Entity interface {
	EntityID() string
	EntityState() models.EntityState
}

// ControlService exposes the Manager and its synchronizers to the control
// API. Synchronizers are addressed by (host, port), never by handle.
type ControlService interface {
	AddSynchronizer(ctx context.Context, req models.AddSynchronizerRequest) (models.SynchronizerInfo, error)
	ListSynchronizers(ctx context.Context) []models.SynchronizerInfo
	GetSynchronizer(ctx context.Context, addr models.ServiceAddress) (models.SynchronizerInfo, error)
	RemoveSynchronizer(ctx context.Context, addr models.ServiceAddress) error

	Connect(ctx context.Context, addr models.ServiceAddress) (models.SynchronizerInfo, error)
	Disconnect(ctx context.Context, addr models.ServiceAddress) error

	CreateSession(ctx context.Context, addr models.ServiceAddress, req models.SessionRequest) error
	DestroySession(ctx context.Context, addr models.ServiceAddress) error
	JoinSession(ctx context.Context, addr models.ServiceAddress, req models.SessionRequest) (models.JoinResponse, error)
	ExitSession(ctx context.Context, addr models.ServiceAddress) error
	RefreshSessionState(ctx context.Context, addr models.ServiceAddress) (models.EntitiesResponse, error)

	ListEntities(ctx context.Context, addr models.ServiceAddress) (models.EntitiesResponse, error)
	AddEntity(ctx context.Context, addr models.ServiceAddress, req models.EntityRequest) (models.EntityResponse, error)
	UpdateEntity(ctx context.Context, addr models.ServiceAddress, req models.EntityRequest) error
	RemoveEntity(ctx context.Context, addr models.ServiceAddress, entityID string) error

	SendMessage(ctx context.Context, addr models.ServiceAddress, req models.MessageRequest) error
	GetUserTag(ctx context.Context, addr models.ServiceAddress, clientID string) (models.UserTagResponse, error)
}

// JournalService reads and prunes the event journal.
type JournalService interface {
	List(ctx context.Context, filter models.JournalFilter) ([]models.JournalRecord, error)
	Prune(ctx context.Context) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// ControlServiceWrapper decorates a ControlService, e.g. with request
// validation.
type ControlServiceWrapper interface {
	Wrap(ControlService) ControlService
}
