package transport

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/worldsync/models"
)

type delivery struct {
	topic   string
	payload string
	qos     models.QoS
}

type collector struct {
	mu  sync.Mutex
	got []delivery
}

func (c *collector) handle(topic string, payload []byte, qos models.QoS) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.got = append(c.got, delivery{topic: topic, payload: string(payload), qos: qos})
}

func (c *collector) deliveries() []delivery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]delivery(nil), c.got...)
}

func connected(t *testing.T, b *Broker) *MemoryClient {
	t.Helper()
	c := NewMemoryClient(b)
	require.NoError(t, c.Connect())
	require.Equal(t, models.Connected, c.State())
	return c
}

// ── Connect / Disconnect ──────────────────────────────────────────────────────

func TestMemoryClient_ConnectReportsStates(t *testing.T) {
	b := NewBroker()
	c := NewMemoryClient(b)

	var transitions [][2]models.ConnectionState
	c.SetStateHandler(func(from, to models.ConnectionState) {
		transitions = append(transitions, [2]models.ConnectionState{from, to})
	})

	require.NoError(t, c.Connect())
	c.Disconnect()
	c.Disconnect()

	assert.Equal(t, [][2]models.ConnectionState{
		{models.Disconnected, models.Connecting},
		{models.Connecting, models.Connected},
		{models.Connected, models.Disconnected},
	}, transitions)
	assert.Equal(t, 0, b.Clients())
}

func TestMemoryClient_RefusedConnectFaults(t *testing.T) {
	b := NewBroker()
	b.RefuseConnections(true)
	c := NewMemoryClient(b)

	require.NoError(t, c.Connect())
	assert.Equal(t, models.Faulted, c.State())
	assert.ErrorIs(t, c.Publish("a", nil, models.AtMostOnce), ErrNotConnected)

	b.RefuseConnections(false)
	require.NoError(t, c.Connect())
	assert.Equal(t, models.Connected, c.State())
}

func TestMemoryClient_FailDropsSubscriptions(t *testing.T) {
	b := NewBroker()
	c := connected(t, b)
	require.NoError(t, c.Subscribe("a/#", models.AtLeastOnce, nil, func(string, []byte, models.QoS) {}))

	c.Fail()

	assert.Equal(t, models.Faulted, c.State())
	assert.Empty(t, c.Subscriptions())
	assert.Equal(t, 0, b.Clients())
}

// ── Subscribe / Publish ───────────────────────────────────────────────────────

func TestMemoryClient_FanOutWithWildcards(t *testing.T) {
	b := NewBroker()
	pub := connected(t, b)
	a, z := connected(t, b), connected(t, b)

	var ca, cz collector
	require.NoError(t, a.Subscribe("s1/entity/+", models.AtLeastOnce, nil, ca.handle))
	require.NoError(t, z.Subscribe("s2/#", models.ExactlyOnce, nil, cz.handle))

	require.NoError(t, pub.Publish("s1/entity/e1", []byte("x"), models.ExactlyOnce))
	require.NoError(t, pub.Publish("s2/app/chat", []byte("y"), models.AtMostOnce))

	assert.Equal(t, []delivery{{"s1/entity/e1", "x", models.AtLeastOnce}}, ca.deliveries())
	assert.Equal(t, []delivery{{"s2/app/chat", "y", models.AtMostOnce}}, cz.deliveries())
}

func TestMemoryClient_LoopbackToPublisher(t *testing.T) {
	b := NewBroker()
	c := connected(t, b)

	var col collector
	require.NoError(t, c.Subscribe("s/app/#", models.AtMostOnce, nil, col.handle))
	require.NoError(t, c.Publish("s/app/chat", []byte("hello"), models.AtMostOnce))

	assert.Len(t, col.deliveries(), 1)
}

func TestMemoryClient_SubscribeAck(t *testing.T) {
	c := connected(t, NewBroker())

	var acked bool
	require.NoError(t, c.Subscribe("a", models.AtLeastOnce, func(err error) {
		assert.NoError(t, err)
		acked = true
	}, func(string, []byte, models.QoS) {}))
	assert.True(t, acked)
}

func TestMemoryClient_Unsubscribe(t *testing.T) {
	b := NewBroker()
	c := connected(t, b)

	var col collector
	require.NoError(t, c.Subscribe("a", models.AtLeastOnce, nil, col.handle))
	require.NoError(t, c.Subscribe("b", models.AtLeastOnce, nil, col.handle))

	var acked bool
	require.NoError(t, c.Unsubscribe(func(error) { acked = true }, "a", "b"))
	require.NoError(t, c.Publish("a", nil, models.AtLeastOnce))

	assert.True(t, acked)
	assert.Empty(t, col.deliveries())
	assert.Empty(t, c.Subscriptions())
}

func TestMemoryClient_PayloadIsCopied(t *testing.T) {
	b := NewBroker()
	c := connected(t, b)

	var col collector
	require.NoError(t, c.Subscribe("a", models.AtMostOnce, nil, col.handle))

	payload := []byte("abc")
	require.NoError(t, c.Publish("a", payload, models.AtMostOnce))
	payload[0] = 'z'

	assert.Equal(t, "abc", col.deliveries()[0].payload)
}

func TestMemoryClient_Errors(t *testing.T) {
	c := NewMemoryClient(NewBroker())
	noop := func(string, []byte, models.QoS) {}

	assert.ErrorIs(t, c.Subscribe("a", models.AtMostOnce, nil, noop), ErrNotConnected)
	assert.ErrorIs(t, c.Unsubscribe(nil, "a"), ErrNotConnected)

	require.NoError(t, c.Connect())
	assert.ErrorIs(t, c.Subscribe("a/#/b", models.AtMostOnce, nil, noop), ErrInvalidFilter)
	assert.ErrorIs(t, c.Subscribe("a", models.Reserved, nil, noop), ErrInvalidQoS)
	assert.ErrorIs(t, c.Publish("a/+", nil, models.AtMostOnce), ErrInvalidTopic)
	assert.ErrorIs(t, c.Publish("a", nil, models.Reserved), ErrInvalidQoS)
}

func TestBroker_Factory(t *testing.T) {
	f := NewBroker().Factory()

	c, err := f(models.SynchronizationService{Host: "h", Port: 1, TransportKind: models.TransportWebSocket})
	require.NoError(t, err)
	assert.IsType(t, &MemoryClient{}, c)

	_, err = f(models.SynchronizationService{Host: "h", Port: 1, TransportKind: "quic"})
	assert.ErrorIs(t, err, ErrUnsupportedTransport)
}
