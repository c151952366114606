// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package registry holds the per-session bookkeeping of a synchronizer:
// the EntityRegistry of synchronized entities with its last-writer-wins
// reconciliation, and the SessionRegistry of participants.
//
// Registries are not safe for concurrent use. Their owning synchronizer
// serializes every call. Mutations return Events instead of invoking the
// EntityManager directly, so the owner can dispatch them after releasing
// its lock.
package registry

import "github.com/MKhiriev/worldsync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/entity_manager_mock.go -package=mock

// EntityManager is the collaborator that owns the world representation of
// entities (rendering, physics). It materializes remote entities, fetching
// resourceRefs before acting on a create.
type EntityManager interface {
	OnRemoteEntityCreate(entityID string, state models.EntityState, resourceRefs []string)
	OnRemoteEntityUpdate(entityID string, state models.EntityState)
	OnRemoteEntityDestroy(entityID string)
}

// Event is one change the EntityManager must be told about.
type Event struct {
	Kind   models.EntityKindOp
	Entity models.SynchronizedEntity
}

// Dispatch calls the EntityManager method matching e.Kind. A nil manager
// is ignored.
func (e Event) Dispatch(m EntityManager) {
	if m == nil {
		return
	}

	switch e.Kind {
	case models.EntityCreate:
		m.OnRemoteEntityCreate(e.Entity.ID, e.Entity.State, e.Entity.ResourceRefs)
	case models.EntityUpdate:
		m.OnRemoteEntityUpdate(e.Entity.ID, e.Entity.State)
	case models.EntityDestroy:
		m.OnRemoteEntityDestroy(e.Entity.ID)
	}
}

// DispatchAll dispatches events in order.
func DispatchAll(m EntityManager, events []Event) {
	for _, e := range events {
		e.Dispatch(m)
	}
}
