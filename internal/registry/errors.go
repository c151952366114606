package registry

import "errors"

var (
	// ErrEntityExists is returned when a local insert reuses a known id.
	ErrEntityExists = errors.New("entity already exists")
	// ErrUnknownEntity is returned for local operations on an id the
	// registry does not hold.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrEntityDestroyed is returned when a local insert reuses the id of
	// an entity destroyed in this session.
	ErrEntityDestroyed = errors.New("entity was destroyed in this session")
)
