package transport

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gorilla/websocket"
)

// mqttSubprotocol is the WebSocket subprotocol MQTT brokers negotiate.
const mqttSubprotocol = "mqtt"

// dialWebSocket returns a paho connection opener that tunnels MQTT over a
// gorilla/websocket connection.
func dialWebSocket(tlsConfig *tls.Config, handshakeTimeout time.Duration) mqtt.OpenConnectionFunc {
	return func(uri *url.URL, options mqtt.ClientOptions) (net.Conn, error) {
		dialer := websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
			TLSClientConfig:  tlsConfig,
			Subprotocols:     []string{mqttSubprotocol},
		}

		ws, resp, err := dialer.Dial(uri.String(), options.HTTPHeaders)
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}
		if err != nil {
			return nil, fmt.Errorf("websocket dial %s: %w", uri.Redacted(), err)
		}
		return newWSConn(ws), nil
	}
}

// wsConn adapts a message-oriented websocket.Conn to the byte stream
// net.Conn paho reads MQTT packets from. Every Write is one binary message.
type wsConn struct {
	*websocket.Conn

	rmu    sync.Mutex
	reader io.Reader

	wmu sync.Mutex
}

func newWSConn(ws *websocket.Conn) *wsConn {
	return &wsConn{Conn: ws}
}

func (c *wsConn) Read(p []byte) (int, error) {
	c.rmu.Lock()
	defer c.rmu.Unlock()

	for {
		if c.reader == nil {
			_, r, err := c.NextReader()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					return 0, io.EOF
				}
				return 0, err
			}
			c.reader = r
		}

		n, err := c.reader.Read(p)
		if errors.Is(err, io.EOF) {
			c.reader = nil
			if n > 0 {
				return n, nil
			}
			continue
		}
		return n, err
	}
}

func (c *wsConn) Write(p []byte) (int, error) {
	c.wmu.Lock()
	defer c.wmu.Unlock()

	if err := c.WriteMessage(websocket.BinaryMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (c *wsConn) SetDeadline(t time.Time) error {
	if err := c.SetReadDeadline(t); err != nil {
		return err
	}
	return c.SetWriteDeadline(t)
}
