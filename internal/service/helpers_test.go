package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/worldsync/internal/config"
	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/internal/transport"
	"github.com/MKhiriev/worldsync/models"
)

const (
	testSessionID = "6f1c1f0e-3d4b-4f7a-9a5e-2b8c1d0e9f11"
	otherSession  = "0b6a3c55-8a42-4f7e-b1f4-6b1b2e8f3c77"
	waitTimeout   = 2 * time.Second
)

// harness is a manager whose synchronizers share one in-process broker.
type harness struct {
	t       *testing.T
	broker  *transport.Broker
	manager *Manager
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	cfg := config.Defaults().Sync
	cfg.SnapshotTimeout = 300 * time.Millisecond

	broker := transport.NewBroker()
	m, err := NewManager(broker.Factory(), cfg, logger.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		// managers are mocks owned by the test; keep teardown from calling them
		for _, s := range m.Synchronizers() {
			s.SetEntityManager(nil)
		}
		m.Close()
	})
	return &harness{t: t, broker: broker, manager: m}
}

// add returns a disconnected synchronizer for host.
func (h *harness) add(host string) *Synchronizer {
	h.t.Helper()

	s, err := h.manager.AddSynchronizer(host, 1883, false, models.TransportTCP)
	require.NoError(h.t, err)
	return s
}

// connected returns a connected synchronizer for host.
func (h *harness) connected(host string) *Synchronizer {
	h.t.Helper()

	s := h.add(host)
	done := make(chan struct{})
	require.NoError(h.t, s.Connect(func() { close(done) }))
	waitClosed(h.t, done)
	require.Equal(h.t, models.StateConnected, s.State())
	return s
}

// joined returns a synchronizer of host that joined testSessionID.
func (h *harness) joined(host, userTag string) (*Synchronizer, string) {
	h.t.Helper()

	s := h.connected(host)
	return s, join(h.t, s, testSessionID, userTag)
}

// join joins sessionID and waits for onJoined.
func join(t *testing.T, s *Synchronizer, sessionID, userTag string) string {
	t.Helper()

	got := make(chan string, 1)
	clientID, err := s.JoinSession(sessionID, userTag, func(id string) { got <- id })
	require.NoError(t, err)
	require.NotEmpty(t, clientID)

	select {
	case id := <-got:
		require.Equal(t, clientID, id)
	case <-time.After(waitTimeout):
		t.Fatal("onJoined was not called")
	}
	return clientID
}

// settle flushes the sequencers in order, twice, so that messages bounced
// between them (requests and their answers) are processed.
func settle(syncs ...*Synchronizer) {
	for range 2 {
		for _, s := range syncs {
			s.Flush()
		}
	}
}

func waitClosed(t *testing.T, ch <-chan struct{}) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for callback")
	}
}

func memoryClient(t *testing.T, s *Synchronizer) *transport.MemoryClient {
	t.Helper()

	c, ok := s.client.(*transport.MemoryClient)
	require.True(t, ok)
	return c
}

func meshState(x float64) models.EntityState {
	return models.EntityState{
		SchemaVersion: models.CurrentSchemaVersion,
		Kind:          models.EntityMesh,
		Transform: models.Transform{
			Position: models.Vector3{X: x},
			Rotation: models.Quaternion{W: 1},
			Scale:    models.Vector3{X: 1, Y: 1, Z: 1},
		},
		Mesh: &models.MeshState{Color: "#aa5500", Visible: true},
	}
}

func handle(id string, x float64) models.EntityHandle {
	return models.EntityHandle{ID: id, State: meshState(x)}
}
