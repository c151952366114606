package registry

import (
	"maps"
	"slices"

	"github.com/MKhiriev/worldsync/models"
)

// SessionRegistry tracks the participants of the active session.
type SessionRegistry struct {
	entities     *EntityRegistry
	participants map[string]string
	// tags keeps the last-known tag of every client seen, including those
	// who already left.
	tags      map[string]string
	onDestroy func()
}

// NewSessionRegistry returns a registry that cleans up entities through
// entities and calls onDestroy, if set, when the session is destroyed.
func NewSessionRegistry(entities *EntityRegistry, onDestroy func()) *SessionRegistry {
	return &SessionRegistry{
		entities:     entities,
		participants: make(map[string]string),
		tags:         make(map[string]string),
		onDestroy:    onDestroy,
	}
}

// OnJoin records clientID as a participant. Joining again updates the tag.
func (s *SessionRegistry) OnJoin(clientID, tag string) {
	s.participants[clientID] = tag
	s.tags[clientID] = tag
}

// OnLeave removes clientID and returns the destroy events of the entities
// that were removed with their owner.
func (s *SessionRegistry) OnLeave(clientID string) []Event {
	delete(s.participants, clientID)
	return s.entities.OnParticipantLeft(clientID)
}

// OnDestroy clears the participants and signals the destroy hook.
func (s *SessionRegistry) OnDestroy() {
	clear(s.participants)
	if s.onDestroy != nil {
		s.onDestroy()
	}
}

// Clear forgets participants and tags without signalling.
func (s *SessionRegistry) Clear() {
	clear(s.participants)
	clear(s.tags)
}

// UserTag returns the last-known tag of clientID.
func (s *SessionRegistry) UserTag(clientID string) (string, bool) {
	tag, ok := s.tags[clientID]
	return tag, ok
}

// IsParticipant reports whether clientID is currently in the session.
func (s *SessionRegistry) IsParticipant(clientID string) bool {
	_, ok := s.participants[clientID]
	return ok
}

// Participants returns the current participants sorted by client id.
func (s *SessionRegistry) Participants() []models.ClientIdentity {
	out := make([]models.ClientIdentity, 0, len(s.participants))
	for _, id := range slices.Sorted(maps.Keys(s.participants)) {
		out = append(out, models.ClientIdentity{ClientID: id, UserTag: s.participants[id]})
	}
	return out
}

// Len returns the number of participants.
func (s *SessionRegistry) Len() int {
	return len(s.participants)
}
