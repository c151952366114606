package codec

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/worldsync/models"
)

const (
	sessionID = "11111111-1111-1111-1111-111111111111"
	clientA   = "aaaaaaaa-0000-0000-0000-000000000001"
)

func meshEntity(id string, rev uint64) models.SynchronizedEntity {
	return models.SynchronizedEntity{
		ID:            id,
		OwnerClientID: clientA,
		ResourceRefs:  []string{"https://assets.example/chair.glb"},
		State: models.EntityState{
			SchemaVersion: models.CurrentSchemaVersion,
			Kind:          models.EntityMesh,
			Transform:     models.IdentityTransform(),
			Mesh:          &models.MeshState{Color: "#ff0000", Visible: true},
		},
		Revision: rev,
	}
}

func newCodec(t *testing.T, format Format, prefix string) *Codec {
	t.Helper()
	c, err := New(string(format), prefix)
	require.NoError(t, err)
	return c
}

// ── New ───────────────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	c, err := New("", "")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, c.Format())

	c, err = New("cbor", "worlds")
	require.NoError(t, err)
	assert.Equal(t, FormatCBOR, c.Format())

	_, err = New("protobuf", "")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

// ── Encode / Decode ───────────────────────────────────────────────────────────

func TestEncodeDecode_AllFamilies(t *testing.T) {
	messages := []models.Message{
		{
			Family:    models.FamilyControl,
			SessionID: sessionID,
			Sender:    clientA,
			Control: &models.ControlMessage{
				Kind:         models.ControlStateResponse,
				RequestID:    "req-1",
				Target:       "bbbbbbbb-0000-0000-0000-000000000002",
				Participants: []models.ClientIdentity{{ClientID: clientA, UserTag: "alice"}},
				Entities:     []models.SynchronizedEntity{meshEntity("e1", 4)},
			},
		},
		{
			Family:    models.FamilyEntity,
			SessionID: sessionID,
			Sender:    clientA,
			Entity:    &models.EntityMessage{Kind: models.EntityUpdate, Entity: meshEntity("e1", 5)},
		},
		{
			Family:    models.FamilyApplication,
			SessionID: sessionID,
			Sender:    clientA,
			App:       &models.AppMessage{Topic: "chat/lobby", Payload: []byte("hello")},
		},
	}

	for _, format := range []Format{FormatJSON, FormatCBOR} {
		c := newCodec(t, format, "worlds")
		for _, msg := range messages {
			t.Run(string(format)+"/"+string(msg.Family), func(t *testing.T) {
				topic, payload, err := c.Encode(msg)
				require.NoError(t, err)

				got, err := c.Decode(topic, payload, models.AtLeastOnce)
				require.NoError(t, err)

				assert.Equal(t, topic, got.Topic)
				assert.Equal(t, sessionID, got.SessionID)
				assert.Equal(t, clientA, got.Sender)
				assert.Equal(t, models.AtLeastOnce, got.QoS)
				assert.Equal(t, msg.Family, got.Family)

				switch msg.Family {
				case models.FamilyControl:
					want := *msg.Control
					want.SessionID = sessionID
					assert.Equal(t, want, *got.Control)
				case models.FamilyEntity:
					assert.Equal(t, *msg.Entity, *got.Entity)
				case models.FamilyApplication:
					assert.Equal(t, *msg.App, *got.App)
				}
			})
		}
	}
}

func TestEncode_Topics(t *testing.T) {
	c := newCodec(t, FormatJSON, "")

	topic, _, err := c.Encode(models.Message{
		Family: models.FamilyEntity, SessionID: sessionID, Sender: clientA,
		Entity: &models.EntityMessage{Kind: models.EntityCreate, Entity: meshEntity("e9", 0)},
	})
	require.NoError(t, err)
	assert.Equal(t, sessionID+"/entity/e9", topic)

	topic, _, err = c.Encode(models.Message{
		Family: models.FamilyControl, SessionID: sessionID, Sender: clientA,
		Control: &models.ControlMessage{Kind: models.ControlJoin, Tag: "alice"},
	})
	require.NoError(t, err)
	assert.Equal(t, sessionID+"/control", topic)
}

func TestEncode_Errors(t *testing.T) {
	c := newCodec(t, FormatJSON, "")

	_, _, err := c.Encode(models.Message{Family: models.FamilyControl, SessionID: sessionID, Sender: clientA})
	assert.ErrorIs(t, err, ErrMalformedPayload)

	_, _, err = c.Encode(models.Message{Family: "telemetry", SessionID: sessionID, Sender: clientA})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

// Peers with different wire formats must understand each other.
func TestDecode_MixedFormats(t *testing.T) {
	jsonCodec := newCodec(t, FormatJSON, "")
	cborCodec := newCodec(t, FormatCBOR, "")

	msg := models.Message{
		Family: models.FamilyApplication, SessionID: sessionID, Sender: clientA,
		App: &models.AppMessage{Topic: "chat", Payload: []byte("hi")},
	}

	topic, payload, err := cborCodec.Encode(msg)
	require.NoError(t, err)
	got, err := jsonCodec.Decode(topic, payload, models.AtMostOnce)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(got.App.Payload))

	topic, payload, err = jsonCodec.Encode(msg)
	require.NoError(t, err)
	got, err = cborCodec.Decode(topic, payload, models.AtMostOnce)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(got.App.Payload))
}

func TestEncode_CBORIsDeterministic(t *testing.T) {
	c := newCodec(t, FormatCBOR, "")
	msg := models.Message{
		Family: models.FamilyEntity, SessionID: sessionID, Sender: clientA,
		Entity: &models.EntityMessage{Kind: models.EntityCreate, Entity: meshEntity("e1", 0)},
	}

	_, first, err := c.Encode(msg)
	require.NoError(t, err)
	_, second, err := c.Encode(msg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecode_Malformed(t *testing.T) {
	c := newCodec(t, FormatJSON, "")
	entityTopic := sessionID + "/entity/e1"

	cborUnknownKind, err := cbor.Marshal(map[string]any{"v": 1, "kind": "teleport", "sender": clientA})
	require.NoError(t, err)

	tests := []struct {
		name    string
		topic   string
		payload string
		want    error
	}{
		{name: "not json or cbor", topic: entityTopic, payload: "\xff\xfe", want: ErrMalformedPayload},
		{name: "empty", topic: entityTopic, payload: "", want: ErrMalformedPayload},
		{name: "truncated json", topic: entityTopic, payload: `{"v":1,`, want: ErrMalformedPayload},
		{name: "missing version", topic: entityTopic, payload: `{"kind":"create","sender":"a"}`, want: ErrMalformedPayload},
		{name: "future version", topic: entityTopic, payload: `{"v":9,"kind":"create","sender":"a"}`, want: ErrMalformedPayload},
		{name: "missing sender", topic: entityTopic, payload: `{"v":1,"kind":"create"}`, want: ErrMalformedPayload},
		{name: "unknown entity kind", topic: entityTopic, payload: string(cborUnknownKind), want: ErrUnknownKind},
		{name: "entity without body", topic: entityTopic, payload: `{"v":1,"kind":"create","sender":"a"}`, want: ErrMalformedPayload},
		{
			name:    "entity id contradicts topic",
			topic:   entityTopic,
			payload: `{"v":1,"kind":"destroy","sender":"a","entity":{"entity_id":"e2"}}`,
			want:    ErrMalformedPayload,
		},
		{
			name:    "state with mismatched kind block",
			topic:   entityTopic,
			payload: `{"v":1,"kind":"update","sender":"a","entity":{"entity_id":"e1","state":{"kind":"light","mesh":{"visible":true}}}}`,
			want:    ErrMalformedPayload,
		},
		{name: "unknown control kind", topic: sessionID + "/control", payload: `{"v":1,"kind":"kick","sender":"a"}`, want: ErrUnknownKind},
		{
			name:    "control for another session",
			topic:   sessionID + "/control",
			payload: `{"v":1,"kind":"join","sender":"a","control":{"session_id":"other"}}`,
			want:    ErrMalformedPayload,
		},
		{name: "app with entity kind", topic: sessionID + "/app/chat", payload: `{"v":1,"kind":"create","sender":"a"}`, want: ErrUnknownKind},
		{name: "unknown topic", topic: sessionID + "/presence", payload: `{"v":1,"kind":"join","sender":"a"}`, want: ErrUnknownTopic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decode(tt.topic, []byte(tt.payload), models.AtLeastOnce)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_EntityIDFromTopic(t *testing.T) {
	c := newCodec(t, FormatJSON, "")

	msg, err := c.Decode(sessionID+"/entity/e1", []byte(`{"v":1,"kind":"destroy","sender":"a","entity":{"revision":3}}`), models.AtLeastOnce)
	require.NoError(t, err)
	assert.Equal(t, "e1", msg.Entity.Entity.ID)
	assert.Equal(t, models.EntityDestroy, msg.Entity.Kind)
}

func TestDecode_IgnoresUnknownFields(t *testing.T) {
	c := newCodec(t, FormatJSON, "")

	msg, err := c.Decode(sessionID+"/control", []byte(`{"v":1,"kind":"leave","sender":"a","presence":{"ttl":3}}`), models.AtLeastOnce)
	require.NoError(t, err)
	assert.Equal(t, models.ControlLeave, msg.Control.Kind)
}
