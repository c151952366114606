package models

import (
	"errors"
	"fmt"
	"slices"
)

// CurrentSchemaVersion is the EntityState schema version this build writes.
const CurrentSchemaVersion = 1

// EntityKind tags the kind-specific block carried by an EntityState.
type EntityKind string

const (
	EntityGeneric EntityKind = "generic"
	EntityMesh    EntityKind = "mesh"
	EntityLight   EntityKind = "light"
	EntityAudio   EntityKind = "audio"
)

var knownEntityKinds = []EntityKind{EntityGeneric, EntityMesh, EntityLight, EntityAudio}

// Errors returned by EntityState.Validate.
var (
	ErrUnknownEntityKind  = errors.New("unknown entity kind")
	ErrMismatchedKindData = errors.New("kind-specific data does not match entity kind")
	ErrUnsupportedSchema  = errors.New("unsupported entity state schema version")
)

// Vector3 is a position or scale in world space.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Quaternion is a rotation in world space.
type Quaternion struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// Transform places an entity in the world.
type Transform struct {
	Position Vector3    `json:"position"`
	Rotation Quaternion `json:"rotation"`
	Scale    Vector3    `json:"scale"`
}

// IdentityTransform returns a transform at the origin with unit scale.
func IdentityTransform() Transform {
	return Transform{
		Rotation: Quaternion{W: 1},
		Scale:    Vector3{X: 1, Y: 1, Z: 1},
	}
}

// MeshState holds mesh-specific fields.
type MeshState struct {
	Color   string `json:"color,omitempty"`
	Visible bool   `json:"visible"`
}

// LightState holds light-specific fields.
type LightState struct {
	LightType string  `json:"light_type"`
	Color     string  `json:"color,omitempty"`
	Intensity float64 `json:"intensity"`
	Range     float64 `json:"range,omitempty"`
}

// AudioState holds audio-source-specific fields.
type AudioState struct {
	Volume  float64 `json:"volume"`
	Loop    bool    `json:"loop"`
	Playing bool    `json:"playing"`
}

// EntityState is the serializable snapshot mirrored across clients.
//
// Exactly one of Mesh, Light, Audio may be set and it must match Kind.
// Extra carries opaque bytes so that newer peers can add fields older
// peers relay untouched.
type EntityState struct {
	SchemaVersion int         `json:"schema_version"`
	Kind          EntityKind  `json:"kind"`
	Transform     Transform   `json:"transform"`
	Mesh          *MeshState  `json:"mesh,omitempty"`
	Light         *LightState `json:"light,omitempty"`
	Audio         *AudioState `json:"audio,omitempty"`
	Extra         []byte      `json:"extra,omitempty"`
}

// Validate checks the kind tag against the kind-specific blocks.
func (s EntityState) Validate() error {
	if s.SchemaVersion < 0 || s.SchemaVersion > CurrentSchemaVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedSchema, s.SchemaVersion)
	}
	if !slices.Contains(knownEntityKinds, s.Kind) {
		return fmt.Errorf("%w: %q", ErrUnknownEntityKind, s.Kind)
	}

	blocks := map[EntityKind]bool{
		EntityMesh:  s.Mesh != nil,
		EntityLight: s.Light != nil,
		EntityAudio: s.Audio != nil,
	}
	for kind, present := range blocks {
		if present && kind != s.Kind {
			return fmt.Errorf("%w: %s block on %s entity", ErrMismatchedKindData, kind, s.Kind)
		}
	}

	return nil
}

// Clone returns a deep copy of s.
func (s EntityState) Clone() EntityState {
	out := s
	if s.Mesh != nil {
		m := *s.Mesh
		out.Mesh = &m
	}
	if s.Light != nil {
		l := *s.Light
		out.Light = &l
	}
	if s.Audio != nil {
		a := *s.Audio
		out.Audio = &a
	}
	out.Extra = slices.Clone(s.Extra)
	return out
}

// SynchronizedEntity is a world object whose state is mirrored to every
// session participant.
type SynchronizedEntity struct {
	ID              string      `json:"entity_id"`
	OwnerClientID   string      `json:"owner_client_id"`
	DeleteWithOwner bool        `json:"delete_with_owner"`
	ResourceRefs    []string    `json:"resource_refs,omitempty"`
	State           EntityState `json:"state"`
	// Revision increases with every accepted change; the highest wins.
	Revision uint64 `json:"revision"`
}

// Clone returns a deep copy of e.
func (e SynchronizedEntity) Clone() SynchronizedEntity {
	out := e
	out.ResourceRefs = slices.Clone(e.ResourceRefs)
	out.State = e.State.Clone()
	return out
}

// EntityHandle is a plain entity handle: an id plus the current state.
type EntityHandle struct {
	ID    string
	State EntityState
}

// EntityID returns the handle's entity id.
func (h EntityHandle) EntityID() string {
	return h.ID
}

// EntityState returns the handle's current state.
func (h EntityHandle) EntityState() EntityState {
	return h.State
}
