package models

// MessageFamily discriminates the three wire message families.
type MessageFamily string

const (
	FamilyControl     MessageFamily = "control"
	FamilyEntity      MessageFamily = "entity"
	FamilyApplication MessageFamily = "app"
)

// ControlKind enumerates session control messages.
type ControlKind string

const (
	ControlCreate        ControlKind = "create"
	ControlDestroy       ControlKind = "destroy"
	ControlJoin          ControlKind = "join"
	ControlLeave         ControlKind = "leave"
	ControlStateRequest  ControlKind = "state_request"
	ControlStateResponse ControlKind = "state_response"
)

// EntityKindOp enumerates entity-state messages.
type EntityKindOp string

const (
	EntityCreate  EntityKindOp = "create"
	EntityUpdate  EntityKindOp = "update"
	EntityDestroy EntityKindOp = "destroy"
)

// ControlMessage carries session lifecycle and snapshot traffic.
type ControlMessage struct {
	Kind      ControlKind `json:"kind"`
	SessionID string      `json:"session_id"`
	Tag       string      `json:"tag,omitempty"`
	// RequestID correlates a state_response with its state_request.
	RequestID string `json:"request_id,omitempty"`
	// Target is the client a state_response is addressed to.
	Target       string               `json:"target,omitempty"`
	Participants []ClientIdentity     `json:"participants,omitempty"`
	Entities     []SynchronizedEntity `json:"entities,omitempty"`
}

// EntityMessage carries one entity create, update or destroy.
type EntityMessage struct {
	Kind   EntityKindOp       `json:"kind"`
	Entity SynchronizedEntity `json:"entity"`
}

// AppMessage is an arbitrary application payload on a named topic.
type AppMessage struct {
	Topic   string `json:"topic"`
	Payload []byte `json:"payload"`
}

// Message is a decoded transport delivery. Family selects which of
// Control, Entity or App is set.
type Message struct {
	Topic     string
	SessionID string
	Sender    string
	QoS       QoS
	Family    MessageFamily

	Control *ControlMessage
	Entity  *EntityMessage
	App     *AppMessage
}
