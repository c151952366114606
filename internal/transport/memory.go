package transport

import (
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/worldsync/models"
)

// Broker is an in-process publish/subscribe broker with MQTT wildcard
// semantics. Deliveries are synchronous: Publish returns after every
// matching handler has been called.
type Broker struct {
	mu      sync.RWMutex
	clients map[*MemoryClient]struct{}
	refuse  bool
}

// NewBroker returns an empty broker.
func NewBroker() *Broker {
	return &Broker{clients: make(map[*MemoryClient]struct{})}
}

// Factory returns a transport factory whose clients all attach to b.
func (b *Broker) Factory() Factory {
	return func(svc models.SynchronizationService) (Client, error) {
		if !svc.TransportKind.Supported() {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedTransport, svc.TransportKind)
		}
		return NewMemoryClient(b), nil
	}
}

// RefuseConnections makes subsequent Connect calls fault instead of
// connecting.
func (b *Broker) RefuseConnections(refuse bool) {
	b.mu.Lock()
	b.refuse = refuse
	b.mu.Unlock()
}

// Clients returns the number of connected clients.
func (b *Broker) Clients() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

func (b *Broker) attach(c *MemoryClient) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.refuse {
		return false
	}
	b.clients[c] = struct{}{}
	return true
}

func (b *Broker) detach(c *MemoryClient) {
	b.mu.Lock()
	delete(b.clients, c)
	b.mu.Unlock()
}

func (b *Broker) publish(topic string, payload []byte, qos models.QoS) {
	b.mu.RLock()
	targets := make([]*MemoryClient, 0, len(b.clients))
	for c := range b.clients {
		targets = append(targets, c)
	}
	b.mu.RUnlock()

	for _, c := range targets {
		c.deliver(topic, payload, qos)
	}
}

type memorySubscription struct {
	qos     models.QoS
	handler MessageHandler
}

// MemoryClient is a Client attached to a Broker.
type MemoryClient struct {
	broker *Broker

	mu           sync.Mutex
	state        models.ConnectionState
	subs         map[string]memorySubscription
	stateHandler StateHandler
}

// NewMemoryClient returns a disconnected client of broker.
func NewMemoryClient(broker *Broker) *MemoryClient {
	return &MemoryClient{
		broker: broker,
		subs:   make(map[string]memorySubscription),
	}
}

func (c *MemoryClient) SetStateHandler(handler StateHandler) {
	c.mu.Lock()
	c.stateHandler = handler
	c.mu.Unlock()
}

// Connect attaches the client to its broker. A refusing broker moves the
// client to Faulted.
func (c *MemoryClient) Connect() error {
	if c.State() == models.Connected {
		return nil
	}

	c.setState(models.Connecting)
	if !c.broker.attach(c) {
		c.setState(models.Faulted)
		return nil
	}
	c.setState(models.Connected)
	return nil
}

func (c *MemoryClient) Disconnect() {
	c.drop(models.Disconnected)
}

// Fail simulates a transport fault: the client leaves the broker, loses
// its subscriptions and moves to Faulted.
func (c *MemoryClient) Fail() {
	c.drop(models.Faulted)
}

func (c *MemoryClient) drop(to models.ConnectionState) {
	c.broker.detach(c)

	c.mu.Lock()
	clear(c.subs)
	c.mu.Unlock()

	c.setState(to)
}

func (c *MemoryClient) Subscribe(filter string, qos models.QoS, onAck func(error), onMessage MessageHandler) error {
	if !ValidFilter(filter) {
		return fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}
	if !qos.Valid() {
		return ErrInvalidQoS
	}

	c.mu.Lock()
	if c.state != models.Connected {
		c.mu.Unlock()
		return ErrNotConnected
	}
	c.subs[filter] = memorySubscription{qos: qos, handler: onMessage}
	c.mu.Unlock()

	if onAck != nil {
		onAck(nil)
	}
	return nil
}

func (c *MemoryClient) Unsubscribe(onAck func(error), filters ...string) error {
	c.mu.Lock()
	if c.state != models.Connected {
		c.mu.Unlock()
		return ErrNotConnected
	}
	for _, f := range filters {
		delete(c.subs, f)
	}
	c.mu.Unlock()

	if onAck != nil {
		onAck(nil)
	}
	return nil
}

func (c *MemoryClient) Publish(topic string, payload []byte, qos models.QoS) error {
	if !ValidTopic(topic) {
		return fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
	}
	if !qos.Valid() {
		return ErrInvalidQoS
	}
	if c.State() != models.Connected {
		return ErrNotConnected
	}

	c.broker.publish(topic, slices.Clone(payload), qos)
	return nil
}

// State returns the current connection state.
func (c *MemoryClient) State() models.ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscriptions returns the active filters, sorted.
func (c *MemoryClient) Subscriptions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, 0, len(c.subs))
	for f := range c.subs {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

func (c *MemoryClient) deliver(topic string, payload []byte, qos models.QoS) {
	c.mu.Lock()
	var matched []memorySubscription
	for filter, sub := range c.subs {
		if MatchTopic(filter, topic) {
			matched = append(matched, sub)
		}
	}
	c.mu.Unlock()

	for _, sub := range matched {
		sub.handler(topic, payload, min(qos, sub.qos))
	}
}

func (c *MemoryClient) setState(to models.ConnectionState) {
	c.mu.Lock()
	from := c.state
	if from == to {
		c.mu.Unlock()
		return
	}
	c.state = to
	handler := c.stateHandler
	c.mu.Unlock()

	if handler != nil {
		handler(from, to)
	}
}
