package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/worldsync/models"
)

// EnvelopeVersion is the envelope version this build writes and the
// highest it reads.
const EnvelopeVersion = 1

// appKind is the envelope kind of application messages.
const appKind = "message"

// Format is a payload encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// envelope is the payload record shared by every family. cbor falls back
// to the json tags.
type envelope struct {
	Version int                        `json:"v"`
	Kind    string                     `json:"kind"`
	Sender  string                     `json:"sender"`
	Control *models.ControlMessage     `json:"control,omitempty"`
	Entity  *models.SynchronizedEntity `json:"entity,omitempty"`
	Payload []byte                     `json:"payload,omitempty"`
}

// Codec encodes messages for one topic prefix and outbound format.
type Codec struct {
	format Format
	prefix string
}

// New returns a codec writing format ("json" or "cbor") under the topic
// prefix, which may be empty.
func New(format, prefix string) (*Codec, error) {
	f := Format(format)
	if f == "" {
		f = FormatJSON
	}
	if f != FormatJSON && f != FormatCBOR {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &Codec{format: f, prefix: prefix}, nil
}

// Format returns the outbound payload encoding.
func (c *Codec) Format() Format {
	return c.format
}

// Encode returns the topic and payload for msg. msg.Family selects which
// body is used; SessionID and Sender are always required.
func (c *Codec) Encode(msg models.Message) (string, []byte, error) {
	env := envelope{Version: EnvelopeVersion, Sender: msg.Sender}

	var topic string
	switch msg.Family {
	case models.FamilyControl:
		if msg.Control == nil {
			return "", nil, fmt.Errorf("%w: control message without body", ErrMalformedPayload)
		}
		body := *msg.Control
		body.SessionID = msg.SessionID
		env.Kind = string(body.Kind)
		env.Control = &body
		topic = c.ControlTopic(msg.SessionID)
	case models.FamilyEntity:
		if msg.Entity == nil {
			return "", nil, fmt.Errorf("%w: entity message without body", ErrMalformedPayload)
		}
		entity := msg.Entity.Entity
		env.Kind = string(msg.Entity.Kind)
		env.Entity = &entity
		topic = c.EntityTopic(msg.SessionID, entity.ID)
	case models.FamilyApplication:
		if msg.App == nil {
			return "", nil, fmt.Errorf("%w: application message without body", ErrMalformedPayload)
		}
		env.Kind = appKind
		env.Payload = msg.App.Payload
		topic = c.AppTopic(msg.SessionID, msg.App.Topic)
	default:
		return "", nil, fmt.Errorf("%w: family %q", ErrUnknownKind, msg.Family)
	}

	payload, err := c.marshal(env)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return topic, payload, nil
}

// Decode parses a delivery. The payload may be JSON or CBOR regardless of
// the codec's outbound format.
func (c *Codec) Decode(topic string, payload []byte, qos models.QoS) (models.Message, error) {
	route, err := c.ParseTopic(topic)
	if err != nil {
		return models.Message{}, err
	}

	var env envelope
	if err = unmarshal(payload, &env); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if env.Version < 1 || env.Version > EnvelopeVersion {
		return models.Message{}, fmt.Errorf("%w: envelope version %d", ErrMalformedPayload, env.Version)
	}
	if env.Sender == "" {
		return models.Message{}, fmt.Errorf("%w: missing sender", ErrMalformedPayload)
	}

	msg := models.Message{
		Topic:     topic,
		SessionID: route.SessionID,
		Sender:    env.Sender,
		QoS:       qos,
		Family:    route.Family,
	}

	switch route.Family {
	case models.FamilyControl:
		msg.Control, err = decodeControl(env, route)
	case models.FamilyEntity:
		msg.Entity, err = decodeEntity(env, route)
	case models.FamilyApplication:
		if env.Kind != appKind {
			return models.Message{}, fmt.Errorf("%w: %q on application topic", ErrUnknownKind, env.Kind)
		}
		msg.App = &models.AppMessage{Topic: route.Name, Payload: env.Payload}
	}
	if err != nil {
		return models.Message{}, err
	}
	return msg, nil
}

var controlKinds = []models.ControlKind{
	models.ControlCreate,
	models.ControlDestroy,
	models.ControlJoin,
	models.ControlLeave,
	models.ControlStateRequest,
	models.ControlStateResponse,
}

func decodeControl(env envelope, route Route) (*models.ControlMessage, error) {
	kind := models.ControlKind(env.Kind)
	if !slices.Contains(controlKinds, kind) {
		return nil, fmt.Errorf("%w: control %q", ErrUnknownKind, env.Kind)
	}

	body := models.ControlMessage{}
	if env.Control != nil {
		body = *env.Control
	}
	if body.SessionID != "" && body.SessionID != route.SessionID {
		return nil, fmt.Errorf("%w: session %q on topic of %q", ErrMalformedPayload, body.SessionID, route.SessionID)
	}
	body.Kind = kind
	body.SessionID = route.SessionID

	for _, e := range body.Entities {
		if err := e.State.Validate(); err != nil {
			return nil, fmt.Errorf("%w: entity %s: %w", ErrMalformedPayload, e.ID, err)
		}
	}
	return &body, nil
}

var entityKinds = []models.EntityKindOp{models.EntityCreate, models.EntityUpdate, models.EntityDestroy}

func decodeEntity(env envelope, route Route) (*models.EntityMessage, error) {
	kind := models.EntityKindOp(env.Kind)
	if !slices.Contains(entityKinds, kind) {
		return nil, fmt.Errorf("%w: entity %q", ErrUnknownKind, env.Kind)
	}
	if env.Entity == nil {
		return nil, fmt.Errorf("%w: entity message without entity", ErrMalformedPayload)
	}

	entity := *env.Entity
	if entity.ID == "" {
		entity.ID = route.Name
	}
	if entity.ID != route.Name {
		return nil, fmt.Errorf("%w: entity %q on topic of %q", ErrMalformedPayload, entity.ID, route.Name)
	}
	if kind != models.EntityDestroy {
		if err := entity.State.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
	}
	return &models.EntityMessage{Kind: kind, Entity: entity}, nil
}

func (c *Codec) marshal(env envelope) ([]byte, error) {
	if c.format == FormatCBOR {
		return encMode.Marshal(env)
	}
	return json.Marshal(env)
}

// unmarshal decodes JSON when the payload starts with '{' and CBOR
// otherwise. A CBOR map never starts with that byte.
func unmarshal(payload []byte, env *envelope) error {
	trimmed := bytes.TrimLeft(payload, " \t\r\n")
	if len(trimmed) == 0 {
		return errors.New("empty payload")
	}
	if trimmed[0] == '{' {
		return json.Unmarshal(trimmed, env)
	}
	return decMode.Unmarshal(payload, env)
}
