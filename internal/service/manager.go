package service

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/worldsync/internal/codec"
	"github.com/MKhiriev/worldsync/internal/config"
	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/internal/metrics"
	"github.com/MKhiriev/worldsync/internal/transport"
	"github.com/MKhiriev/worldsync/models"
)

// Manager owns the synchronizers of the process, at most one per
// (host, port). It is constructed explicitly and injected where needed.
type Manager struct {
	factory transport.Factory
	codec   *codec.Codec
	opts    SyncOptions
	logger  *logger.Logger

	mu      sync.RWMutex
	syncs   map[models.ServiceAddress]*Synchronizer
	onAdded []func(*Synchronizer)
}

// NewManager returns an empty manager building transport clients with
// factory.
func NewManager(factory transport.Factory, cfg config.Sync, log *logger.Logger) (*Manager, error) {
	c, err := codec.New(cfg.WireFormat, cfg.TopicPrefix)
	if err != nil {
		return nil, err
	}

	return &Manager{
		factory: factory,
		codec:   c,
		opts:    NewSyncOptions(cfg),
		logger:  log,
		syncs:   make(map[models.ServiceAddress]*Synchronizer),
	}, nil
}

// OnSynchronizerAdded registers a hook called with every synchronizer the
// manager creates, before AddSynchronizer returns.
func (m *Manager) OnSynchronizerAdded(hook func(*Synchronizer)) {
	m.mu.Lock()
	m.onAdded = append(m.onAdded, hook)
	m.mu.Unlock()
}

// AddSynchronizer creates a disconnected synchronizer for the broker at
// host:port.
func (m *Manager) AddSynchronizer(host string, port int, useTLS bool, kind models.TransportKind) (*Synchronizer, error) {
	svc := models.SynchronizationService{
		Host:          host,
		Port:          port,
		UseTLS:        useTLS,
		TransportKind: kind,
	}
	log := m.logger.ForService(svc.Address().String())

	if host == "" || port < 1 || port > 65535 {
		log.Error().Str("func", "Manager.AddSynchronizer").Msg("invalid service address")
		return nil, fmt.Errorf("%w: %s", ErrInvalidAddress, svc.Address())
	}
	if !kind.Supported() {
		log.Error().Str("func", "Manager.AddSynchronizer").Str("transport", string(kind)).Msg("unsupported transport")
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTransport, kind)
	}

	m.mu.Lock()
	if _, ok := m.syncs[svc.Address()]; ok {
		m.mu.Unlock()
		log.Error().Str("func", "Manager.AddSynchronizer").Msg("synchronizer already exists")
		return nil, ErrSynchronizerExists
	}

	client, err := m.factory(svc)
	if err != nil {
		m.mu.Unlock()
		log.Error().Err(err).Str("func", "Manager.AddSynchronizer").Msg("failed to build transport client")
		return nil, fmt.Errorf("transport client: %w", err)
	}

	s := NewSynchronizer(svc, client, m.codec, m.opts, m.logger)
	m.syncs[svc.Address()] = s
	hooks := slices.Clone(m.onAdded)
	metrics.SetSynchronizers(len(m.syncs))
	m.mu.Unlock()

	for _, hook := range hooks {
		hook(s)
	}

	log.Info().Str("func", "Manager.AddSynchronizer").Str("transport", string(kind)).Bool("tls", useTLS).Msg("synchronizer added")
	return s, nil
}

// GetSynchronizer returns the synchronizer for host:port, or nil.
func (m *Manager) GetSynchronizer(host string, port int) *Synchronizer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.syncs[models.ServiceAddress{Host: host, Port: port}]
}

// RemoveSynchronizer disconnects and discards the synchronizer for
// host:port. It is a no-op when there is none.
func (m *Manager) RemoveSynchronizer(host string, port int) {
	addr := models.ServiceAddress{Host: host, Port: port}

	m.mu.Lock()
	s, ok := m.syncs[addr]
	delete(m.syncs, addr)
	metrics.SetSynchronizers(len(m.syncs))
	m.mu.Unlock()

	if !ok {
		return
	}
	s.Close()
	m.logger.ForService(addr.String()).Info().Str("func", "Manager.RemoveSynchronizer").Msg("synchronizer removed")
}

// Synchronizers returns every synchronizer sorted by address.
func (m *Manager) Synchronizers() []*Synchronizer {
	m.mu.RLock()
	out := make([]*Synchronizer, 0, len(m.syncs))
	for _, s := range m.syncs {
		out = append(out, s)
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Synchronizer) int {
		return cmp.Or(
			cmp.Compare(a.address.Host, b.address.Host),
			cmp.Compare(a.address.Port, b.address.Port),
		)
	})
	return out
}

// Close disconnects and discards every synchronizer.
func (m *Manager) Close() {
	m.mu.Lock()
	syncs := m.syncs
	m.syncs = make(map[models.ServiceAddress]*Synchronizer)
	metrics.SetSynchronizers(0)
	m.mu.Unlock()

	for _, s := range syncs {
		s.Close()
	}
	m.logger.Info().Str("func", "Manager.Close").Int("synchronizers", len(syncs)).Msg("manager closed")
}
