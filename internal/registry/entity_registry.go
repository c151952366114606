package registry

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/worldsync/models"
)

// EntityRegistry is the source of truth for the entities of the active
// session.
//
// Remote changes are reconciled last-writer-wins by revision. An update
// that arrives before the create of its entity is parked and folded into
// the create. Destroyed ids are remembered until Clear, so a late create
// or update cannot resurrect them.
type EntityRegistry struct {
	entities  map[string]models.SynchronizedEntity
	parked    map[string]models.SynchronizedEntity
	destroyed map[string]struct{}
}

// NewEntityRegistry returns an empty registry.
func NewEntityRegistry() *EntityRegistry {
	return &EntityRegistry{
		entities:  make(map[string]models.SynchronizedEntity),
		parked:    make(map[string]models.SynchronizedEntity),
		destroyed: make(map[string]struct{}),
	}
}

// Apply reconciles a remote entity message. It reports the change the
// EntityManager must see, or false when the message was ignored.
func (r *EntityRegistry) Apply(msg models.EntityMessage) (Event, bool) {
	incoming := msg.Entity.Clone()
	id := incoming.ID

	if _, gone := r.destroyed[id]; gone {
		return Event{}, false
	}

	switch msg.Kind {
	case models.EntityCreate:
		return r.applyCreate(incoming)
	case models.EntityUpdate:
		return r.applyUpdate(incoming)
	case models.EntityDestroy:
		delete(r.parked, id)
		r.destroyed[id] = struct{}{}

		current, ok := r.entities[id]
		if !ok {
			return Event{}, false
		}
		delete(r.entities, id)
		return Event{Kind: models.EntityDestroy, Entity: current}, true
	default:
		return Event{}, false
	}
}

func (r *EntityRegistry) applyCreate(incoming models.SynchronizedEntity) (Event, bool) {
	current, exists := r.entities[incoming.ID]
	if exists {
		if incoming.Revision <= current.Revision {
			return Event{}, false
		}
		current.State = incoming.State
		current.Revision = incoming.Revision
		r.entities[incoming.ID] = current
		return Event{Kind: models.EntityUpdate, Entity: current.Clone()}, true
	}

	if early, ok := r.parked[incoming.ID]; ok {
		delete(r.parked, incoming.ID)
		if early.Revision > incoming.Revision {
			incoming.State = early.State
			incoming.Revision = early.Revision
		}
	}

	r.entities[incoming.ID] = incoming
	return Event{Kind: models.EntityCreate, Entity: incoming.Clone()}, true
}

func (r *EntityRegistry) applyUpdate(incoming models.SynchronizedEntity) (Event, bool) {
	current, exists := r.entities[incoming.ID]
	if !exists {
		if early, ok := r.parked[incoming.ID]; !ok || incoming.Revision > early.Revision {
			r.parked[incoming.ID] = incoming
		}
		return Event{}, false
	}

	if incoming.Revision <= current.Revision {
		return Event{}, false
	}
	current.State = incoming.State
	current.Revision = incoming.Revision
	r.entities[incoming.ID] = current
	return Event{Kind: models.EntityUpdate, Entity: current.Clone()}, true
}

// OnParticipantLeft removes the entities owned by clientID that are marked
// deleteWithOwner and returns their destroy events sorted by id. Other
// entities of that owner stay with a stale owner reference.
func (r *EntityRegistry) OnParticipantLeft(clientID string) []Event {
	var events []Event
	for _, id := range slices.Sorted(maps.Keys(r.entities)) {
		e := r.entities[id]
		if e.OwnerClientID != clientID || !e.DeleteWithOwner {
			continue
		}
		delete(r.entities, id)
		r.destroyed[id] = struct{}{}
		events = append(events, Event{Kind: models.EntityDestroy, Entity: e})
	}
	return events
}

// Insert registers a locally created entity.
func (r *EntityRegistry) Insert(entity models.SynchronizedEntity) error {
	if _, ok := r.entities[entity.ID]; ok {
		return fmt.Errorf("%w: %s", ErrEntityExists, entity.ID)
	}
	if _, gone := r.destroyed[entity.ID]; gone {
		return fmt.Errorf("%w: %s", ErrEntityDestroyed, entity.ID)
	}

	entity = entity.Clone()
	// the parked update stays until the id is removed so Discard can
	// hand it to the next Insert
	if early, ok := r.parked[entity.ID]; ok && early.Revision > entity.Revision {
		entity.Revision = early.Revision
	}
	r.entities[entity.ID] = entity
	return nil
}

// Discard undoes an Insert whose announcement failed. Unlike Remove it
// leaves no tombstone, so the id can be inserted again.
func (r *EntityRegistry) Discard(id string) {
	delete(r.entities, id)
}

// Update replaces the state of a local entity and increments its revision.
func (r *EntityRegistry) Update(id string, state models.EntityState) (models.SynchronizedEntity, error) {
	current, ok := r.entities[id]
	if !ok {
		return models.SynchronizedEntity{}, fmt.Errorf("%w: %s", ErrUnknownEntity, id)
	}

	current.State = state.Clone()
	current.Revision++
	r.entities[id] = current
	return current.Clone(), nil
}

// Restore puts back a previous copy of a held entity, undoing an Update
// whose announcement failed.
func (r *EntityRegistry) Restore(entity models.SynchronizedEntity) {
	if _, ok := r.entities[entity.ID]; ok {
		r.entities[entity.ID] = entity.Clone()
	}
}

// Remove deletes an entity regardless of its owner and remembers the id as
// destroyed.
func (r *EntityRegistry) Remove(id string) (models.SynchronizedEntity, bool) {
	current, ok := r.entities[id]
	delete(r.entities, id)
	delete(r.parked, id)
	r.destroyed[id] = struct{}{}
	return current, ok
}

// Get returns a copy of the entity with id.
func (r *EntityRegistry) Get(id string) (models.SynchronizedEntity, bool) {
	e, ok := r.entities[id]
	if !ok {
		return models.SynchronizedEntity{}, false
	}
	return e.Clone(), true
}

// Len returns the number of entities.
func (r *EntityRegistry) Len() int {
	return len(r.entities)
}

// Snapshot returns copies of all entities sorted by id.
func (r *EntityRegistry) Snapshot() []models.SynchronizedEntity {
	out := make([]models.SynchronizedEntity, 0, len(r.entities))
	for _, e := range r.entities {
		out = append(out, e.Clone())
	}
	slices.SortFunc(out, func(a, b models.SynchronizedEntity) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Clear forgets every entity, parked update and tombstone, returning the
// entities that were held, sorted by id.
func (r *EntityRegistry) Clear() []models.SynchronizedEntity {
	out := r.Snapshot()
	clear(r.entities)
	clear(r.parked)
	clear(r.destroyed)
	return out
}
