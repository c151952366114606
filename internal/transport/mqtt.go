package transport

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/models"
)

// subackFailure is the SUBACK return code for a refused subscription.
const subackFailure = 0x80

// disconnectQuiesce is how long Disconnect lets in-flight work finish, in
// milliseconds.
const disconnectQuiesce = 250

// MQTTOptions configures broker connections made by NewMQTTClient.
type MQTTOptions struct {
	ClientIDPrefix     string
	KeepAlive          time.Duration
	ConnectTimeout     time.Duration
	InsecureSkipVerify bool
	// WebSocketPath is the HTTP path of the broker's WebSocket endpoint.
	WebSocketPath string
}

// NewMQTTFactory returns a Factory building MQTT clients with opts.
func NewMQTTFactory(opts MQTTOptions, log *logger.Logger) Factory {
	return func(svc models.SynchronizationService) (Client, error) {
		return NewMQTTClient(svc, opts, log)
	}
}

// MQTTClient is a Client backed by eclipse/paho.mqtt.golang.
//
// Automatic reconnection is disabled: a lost connection moves the client
// to Faulted and the caller decides whether to connect again.
type MQTTClient struct {
	client mqtt.Client
	logger *logger.Logger

	mu           sync.Mutex
	state        models.ConnectionState
	stateHandler StateHandler
}

// NewMQTTClient configures, but does not connect, a client for svc.
func NewMQTTClient(svc models.SynchronizationService, opts MQTTOptions, log *logger.Logger) (*MQTTClient, error) {
	brokerURL, err := BrokerURL(svc, opts.WebSocketPath)
	if err != nil {
		return nil, err
	}

	c := &MQTTClient{
		logger: log.ForService(svc.Address().String()),
	}

	clientOpts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID(opts.ClientIDPrefix)).
		SetCleanSession(true).
		SetAutoReconnect(false).
		SetConnectRetry(false).
		SetResumeSubs(false).
		SetOrderMatters(true).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			c.logger.Warn().Err(err).Str("func", "MQTTClient.onConnectionLost").Msg("broker connection lost")
			c.setState(models.Faulted)
		})

	if opts.KeepAlive > 0 {
		clientOpts.SetKeepAlive(opts.KeepAlive)
	}
	if opts.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(opts.ConnectTimeout)
	}

	var tlsConfig *tls.Config
	if svc.UseTLS {
		tlsConfig = &tls.Config{
			ServerName:         svc.Host,
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: opts.InsecureSkipVerify, //nolint:gosec // opt-in for development brokers
		}
		clientOpts.SetTLSConfig(tlsConfig)
	}
	if svc.TransportKind == models.TransportWebSocket {
		clientOpts.SetCustomOpenConnectionFn(dialWebSocket(tlsConfig, opts.ConnectTimeout))
	}

	c.client = mqtt.NewClient(clientOpts)
	return c, nil
}

// BrokerURL returns the paho broker URL for svc: tcp:// or ssl:// for TCP,
// ws:// or wss:// with wsPath for WebSocket.
func BrokerURL(svc models.SynchronizationService, wsPath string) (string, error) {
	var scheme string
	switch svc.TransportKind {
	case models.TransportTCP:
		scheme = "tcp"
		if svc.UseTLS {
			scheme = "ssl"
		}
	case models.TransportWebSocket:
		scheme = "ws"
		if svc.UseTLS {
			scheme = "wss"
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedTransport, svc.TransportKind)
	}

	u := url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(svc.Host, strconv.Itoa(svc.Port)),
	}
	if svc.TransportKind == models.TransportWebSocket {
		u.Path = "/" + strings.TrimPrefix(wsPath, "/")
	}
	return u.String(), nil
}

func clientID(prefix string) string {
	if prefix == "" {
		return uuid.NewString()
	}
	return prefix + "-" + uuid.NewString()
}

func (c *MQTTClient) SetStateHandler(handler StateHandler) {
	c.mu.Lock()
	c.stateHandler = handler
	c.mu.Unlock()
}

// Connect starts the broker handshake and returns immediately.
func (c *MQTTClient) Connect() error {
	c.mu.Lock()
	busy := c.state == models.Connecting || c.state == models.Connected
	c.mu.Unlock()
	if busy {
		return nil
	}

	c.setState(models.Connecting)
	token := c.client.Connect()
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			c.logger.Error().Err(err).Str("func", "MQTTClient.Connect").Msg("broker handshake failed")
			c.setState(models.Faulted)
			return
		}
		if c.State() == models.Disconnected {
			// Disconnect won the race with the handshake.
			c.client.Disconnect(0)
			return
		}
		c.setState(models.Connected)
	}()
	return nil
}

func (c *MQTTClient) Disconnect() {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()
	if state == models.Disconnected {
		return
	}

	if c.client.IsConnectionOpen() {
		c.client.Disconnect(disconnectQuiesce)
	}
	c.setState(models.Disconnected)
}

func (c *MQTTClient) Subscribe(filter string, qos models.QoS, onAck func(error), onMessage MessageHandler) error {
	if !ValidFilter(filter) {
		return fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}
	if !qos.Valid() {
		return ErrInvalidQoS
	}
	if !c.client.IsConnectionOpen() {
		return ErrNotConnected
	}

	token := c.client.Subscribe(filter, byte(qos), func(_ mqtt.Client, m mqtt.Message) {
		onMessage(m.Topic(), m.Payload(), models.QoS(m.Qos()))
	})
	go func() {
		token.Wait()
		err := token.Error()
		if st, ok := token.(*mqtt.SubscribeToken); ok && err == nil {
			for f, code := range st.Result() {
				if code == subackFailure {
					err = fmt.Errorf("broker refused subscription %q", f)
				}
			}
		}
		if onAck != nil {
			onAck(err)
		}
	}()
	return nil
}

func (c *MQTTClient) Unsubscribe(onAck func(error), filters ...string) error {
	if !c.client.IsConnectionOpen() {
		return ErrNotConnected
	}

	token := c.client.Unsubscribe(filters...)
	go func() {
		token.Wait()
		if onAck != nil {
			onAck(token.Error())
		}
	}()
	return nil
}

func (c *MQTTClient) Publish(topic string, payload []byte, qos models.QoS) error {
	if !ValidTopic(topic) {
		return fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
	}
	if !qos.Valid() {
		return ErrInvalidQoS
	}
	if !c.client.IsConnectionOpen() {
		return ErrNotConnected
	}

	token := c.client.Publish(topic, byte(qos), false, payload)
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			c.logger.Warn().Err(err).Str("func", "MQTTClient.Publish").Str("topic", topic).Msg("publish failed")
		}
	}()
	return nil
}

// State returns the current connection state.
func (c *MQTTClient) State() models.ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *MQTTClient) setState(to models.ConnectionState) {
	c.mu.Lock()
	from := c.state
	if from == to {
		c.mu.Unlock()
		return
	}
	c.state = to
	handler := c.stateHandler
	c.mu.Unlock()

	c.logger.Debug().Str("func", "MQTTClient.setState").
		Stringer("from", from).Stringer("to", to).Msg("connection state changed")
	if handler != nil {
		handler(from, to)
	}
}
