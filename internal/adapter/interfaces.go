// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the syncd control API.
//
// [ControlAdapter] mirrors the daemon's HTTP routes one method per route so
// that syncctl never builds URLs itself. Non-2xx responses are mapped to the
// sentinel errors in errors.go by mapHTTPError, letting callers use
// [errors.Is] (e.g. [ErrConflict] for 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/worldsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/control_adapter_mock.go -package=mock

// ControlAdapter talks to a running syncd. Synchronizers are addressed by
// their broker (host, port).
type ControlAdapter interface {
	Version(ctx context.Context) (models.VersionResponse, error)

	ListSynchronizers(ctx context.Context) ([]models.SynchronizerInfo, error)
	AddSynchronizer(ctx context.Context, req models.AddSynchronizerRequest) (models.SynchronizerInfo, error)
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

	ListJournal(ctx context.Context, filter models.JournalFilter) (models.JournalResponse, error)
}
