// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/worldsync/internal/codec"
	"github.com/MKhiriev/worldsync/internal/config"
	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/internal/metrics"
	"github.com/MKhiriev/worldsync/internal/registry"
	"github.com/MKhiriev/worldsync/internal/transport"
	"github.com/MKhiriev/worldsync/internal/workers"
	"github.com/MKhiriev/worldsync/models"
)

// defaultSnapshotTimeout applies when SyncOptions.SnapshotTimeout is unset.
const defaultSnapshotTimeout = 2 * time.Second

// MessageListener receives inbound application messages.
type MessageListener func(topic, senderClientID string, payload []byte)

// SyncOptions holds the per-synchronizer settings derived from config.Sync.
type SyncOptions struct {
	ControlQoS      models.QoS
	EntityQoS       models.QoS
	AppQoS          models.QoS
	SnapshotTimeout time.Duration
}

// NewSyncOptions clamps the configured QoS levels: control and entity
// traffic is never sent below At-Least-Once.
func NewSyncOptions(cfg config.Sync) SyncOptions {
	opts := SyncOptions{
		ControlQoS:      qosFromInt(cfg.ControlQoS).AtLeast(models.AtLeastOnce),
		EntityQoS:       qosFromInt(cfg.EntityQoS).AtLeast(models.AtLeastOnce),
		AppQoS:          qosFromInt(cfg.AppQoS).AtLeast(models.AtMostOnce),
		SnapshotTimeout: cfg.SnapshotTimeout,
	}
	if opts.SnapshotTimeout <= 0 {
		opts.SnapshotTimeout = defaultSnapshotTimeout
	}
	return opts
}

func qosFromInt(v int) models.QoS {
	if v < 0 || v > int(models.ExactlyOnce) {
		return models.Reserved
	}
	return models.QoS(v)
}

type snapshotRequest struct {
	onComplete func()
	timer      *time.Timer
}

// joinAcks counts the subscription acknowledgements of one join.
type joinAcks struct {
	remaining int
	done      bool
}

// Synchronizer owns one broker connection and the session on it.
//
// Public operations validate and mutate state under mu and hand payloads
// to the transport. Everything the transport reports (deliveries, acks,
// state changes) runs on the sequencer, so the registries see one writer
// at a time. EntityManager and listener callbacks run on the sequencer
// after mu is released and may call back into the Synchronizer.
type Synchronizer struct {
	client     transport.Client
	codec      *codec.Codec
	opts       SyncOptions
	seq        *workers.Sequencer
	logger     *logger.Logger
	address    models.ServiceAddress
	instanceID string

	mu             sync.Mutex
	svc            models.SynchronizationService
	session        *models.Session
	epoch          uint64
	connGen        uint64
	entities       *registry.EntityRegistry
	sessions       *registry.SessionRegistry
	manager        registry.EntityManager
	listeners      []MessageListener
	pendingConnect func()
	snapshots      map[string]*snapshotRequest
	destroyEvents  []registry.Event
	closed         bool
}

// NewSynchronizer returns a disconnected synchronizer for svc that talks
// through client.
func NewSynchronizer(svc models.SynchronizationService, client transport.Client, c *codec.Codec, opts SyncOptions, log *logger.Logger) *Synchronizer {
	svc.ConnectionState = models.Disconnected
	s := &Synchronizer{
		client:     client,
		codec:      c,
		opts:       opts,
		address:    svc.Address(),
		instanceID: uuid.NewString(),
		svc:        svc,
		entities:   registry.NewEntityRegistry(),
		snapshots:  make(map[string]*snapshotRequest),
	}
	s.logger = log.ForService(s.address.String())
	s.seq = workers.NewSequencer(s.logger)
	s.sessions = registry.NewSessionRegistry(s.entities, func() {
		s.destroyEvents = append(s.destroyEvents, s.teardownLocked()...)
	})
	s.seq.Start()
	return s
}

// Address returns the (host, port) key of the synchronizer.
func (s *Synchronizer) Address() models.ServiceAddress {
	return s.address
}

// Service returns a copy of the service description with the current
// connection state.
func (s *Synchronizer) Service() models.SynchronizationService {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.svc
}

// State returns the externally observable state.
func (s *Synchronizer) State() models.SynchronizerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Synchronizer) stateLocked() models.SynchronizerState {
	switch s.svc.ConnectionState {
	case models.Connecting:
		return models.StateConnecting
	case models.Connected:
		if s.session != nil && s.session.Joined() {
			return models.StateInSession
		}
		return models.StateConnected
	case models.Faulted:
		return models.StateFaulted
	default:
		return models.StateDisconnected
	}
}

// Session returns the recorded session with its current participants.
func (s *Synchronizer) Session() (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return models.Session{}, false
	}
	out := *s.session
	out.Participants = s.sessions.Participants()
	return out, true
}

// Entities returns the entity registry contents sorted by id.
func (s *Synchronizer) Entities() []models.SynchronizedEntity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entities.Snapshot()
}

// Entity returns one entity of the registry.
func (s *Synchronizer) Entity(id string) (models.SynchronizedEntity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entities.Get(id)
}

// SetEntityManager installs the collaborator notified of remote entity
// changes. A nil manager disables notifications.
func (s *Synchronizer) SetEntityManager(m registry.EntityManager) {
	s.mu.Lock()
	s.manager = m
	s.mu.Unlock()
}

// AddMessageListener registers l for every inbound application message.
func (s *Synchronizer) AddMessageListener(l MessageListener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// GetUserTag returns the last-known tag of a participant, including one
// that already left.
func (s *Synchronizer) GetUserTag(clientID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.UserTag(clientID)
}

// Connect starts connecting to the broker. onConnected, which may be nil,
// runs once if the connection succeeds and never if it faults.
func (s *Synchronizer) Connect(onConnected func()) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSynchronizerClosed
	}
	if st := s.svc.ConnectionState; st == models.Connecting || st == models.Connected {
		s.mu.Unlock()
		s.logger.Error().Str("func", "Synchronizer.Connect").Stringer("state", st).Msg("connect called twice")
		return ErrAlreadyConnected
	}
	s.connGen++
	gen := s.connGen
	s.pendingConnect = onConnected
	s.svc.ConnectionState = models.Connecting
	s.mu.Unlock()

	s.client.SetStateHandler(func(_, to models.ConnectionState) {
		s.seq.Submit(func() { s.onTransportState(gen, to) })
	})
	if err := s.client.Connect(); err != nil {
		s.mu.Lock()
		if gen == s.connGen {
			s.pendingConnect = nil
			s.svc.ConnectionState = models.Faulted
		}
		s.mu.Unlock()
		s.logger.Error().Err(err).Str("func", "Synchronizer.Connect").Msg("failed to start connecting")
		return fmt.Errorf("connect: %w", err)
	}

	s.logger.Info().Str("func", "Synchronizer.Connect").Msg("connecting to broker")
	return nil
}

// onTransportState applies a transport state change. It runs on the
// sequencer; changes reported for an earlier Connect are ignored.
func (s *Synchronizer) onTransportState(gen uint64, to models.ConnectionState) {
	s.mu.Lock()
	if gen != s.connGen || s.closed {
		s.mu.Unlock()
		return
	}

	var (
		onConnected func()
		events      []registry.Event
	)
	from := s.svc.ConnectionState
	switch to {
	case models.Connected:
		if from != models.Connecting {
			s.mu.Unlock()
			return
		}
		s.svc.ConnectionState = models.Connected
		onConnected = s.pendingConnect
		s.pendingConnect = nil
	case models.Disconnected, models.Faulted:
		if from == models.Disconnected {
			s.mu.Unlock()
			return
		}
		s.pendingConnect = nil
		events = s.teardownLocked()
		s.svc.ConnectionState = to
	default:
		s.mu.Unlock()
		return
	}
	manager := s.manager
	s.mu.Unlock()

	if to == models.Faulted {
		s.logger.Error().Str("func", "Synchronizer.onTransportState").Stringer("from", from).Msg("broker connection faulted")
	} else {
		s.logger.Info().Str("func", "Synchronizer.onTransportState").Stringer("from", from).Stringer("to", to).Msg("connection state changed")
	}

	registry.DispatchAll(manager, events)
	if onConnected != nil {
		onConnected()
	}
}

// Disconnect closes the broker connection and clears the session and
// entity state. It is idempotent.
func (s *Synchronizer) Disconnect() {
	s.mu.Lock()
	if s.svc.ConnectionState == models.Disconnected && s.session == nil {
		s.mu.Unlock()
		return
	}
	s.connGen++
	s.pendingConnect = nil
	if s.session != nil && s.session.Joined() && s.svc.ConnectionState == models.Connected {
		s.publishLeaveLocked()
	}
	events := s.teardownLocked()
	s.svc.ConnectionState = models.Disconnected
	manager := s.manager
	s.mu.Unlock()

	s.client.Disconnect()
	s.dispatch(manager, events)
	s.logger.Info().Str("func", "Synchronizer.Disconnect").Msg("disconnected from broker")
}

// Close disconnects and stops the sequencer once the work queued so far
// has run. A closed synchronizer cannot connect again.
func (s *Synchronizer) Close() {
	s.Disconnect()

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.seq.Submit(s.seq.Stop)
	metrics.ForgetService(s.address.String())
}

// CreateSession announces a new session on the broker and records it
// without joining.
func (s *Synchronizer) CreateSession(sessionID, tag string) error {
	id, err := canonicalSessionID(sessionID)
	if err != nil {
		s.logger.Error().Err(err).Str("func", "Synchronizer.CreateSession").Msg("invalid session id")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.svc.ConnectionState != models.Connected {
		s.logger.Error().Str("func", "Synchronizer.CreateSession").Msg("create session while not connected")
		return ErrNotConnected
	}
	if s.session != nil {
		s.logger.Error().Str("func", "Synchronizer.CreateSession").Str("session_id", s.session.ID).Msg("session already recorded")
		return ErrSessionExists
	}

	s.session = &models.Session{ID: id, Tag: tag}
	err = s.publishLocked(models.Message{
		Family:    models.FamilyControl,
		SessionID: id,
		Control:   &models.ControlMessage{Kind: models.ControlCreate, Tag: tag},
	})
	if err != nil {
		s.session = nil
		return err
	}

	s.logger.ForSession(id, "").Info().Str("func", "Synchronizer.CreateSession").Str("tag", tag).Msg("session created")
	return nil
}

// JoinSession subscribes to the session topics and returns the client id
// assigned to this process. onJoined, which may be nil, runs once after
// every subscription is acknowledged and the join is announced, unless
// the session was left or torn down in the meantime.
func (s *Synchronizer) JoinSession(sessionID, userTag string, onJoined func(clientID string)) (string, error) {
	id, err := canonicalSessionID(sessionID)
	if err != nil {
		s.logger.Error().Err(err).Str("func", "Synchronizer.JoinSession").Msg("invalid session id")
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.svc.ConnectionState != models.Connected {
		s.logger.Error().Str("func", "Synchronizer.JoinSession").Msg("join while not connected")
		return "", ErrNotConnected
	}
	recorded := s.session != nil
	if recorded {
		if s.session.Joined() {
			s.logger.Error().Str("func", "Synchronizer.JoinSession").Str("session_id", s.session.ID).Msg("already joined")
			return "", ErrAlreadyJoined
		}
		if s.session.ID != id {
			s.logger.Error().Str("func", "Synchronizer.JoinSession").Str("session_id", s.session.ID).Msg("another session is recorded")
			return "", ErrSessionExists
		}
	} else {
		s.session = &models.Session{ID: id}
	}

	clientID := uuid.NewString()
	s.session.LocalClientID = clientID
	s.epoch++
	epoch := s.epoch
	s.sessions.OnJoin(clientID, userTag)

	filters := s.codec.SessionFilters(id)
	levels := []models.QoS{s.opts.ControlQoS, s.opts.EntityQoS, models.ExactlyOnce}
	acks := &joinAcks{remaining: len(filters)}
	for i, filter := range filters {
		onAck := func(err error) {
			s.seq.Submit(func() { s.onJoinAck(epoch, acks, err, userTag, onJoined) })
		}
		if err = s.client.Subscribe(filter, levels[i], onAck, s.onDelivery); err != nil {
			if i > 0 {
				_ = s.client.Unsubscribe(nil, filters[:i]...)
			}
			s.sessions.Clear()
			s.epoch++
			if recorded {
				s.session.LocalClientID = ""
			} else {
				s.session = nil
			}
			s.logger.Error().Err(err).Str("func", "Synchronizer.JoinSession").Str("filter", filter).Msg("subscription failed")
			return "", fmt.Errorf("subscribe %s: %w", filter, err)
		}
	}

	s.logger.ForSession(id, clientID).Info().Str("func", "Synchronizer.JoinSession").Str("user_tag", userTag).Msg("joining session")
	return clientID, nil
}

// onJoinAck runs on the sequencer for every subscription ack of a join.
func (s *Synchronizer) onJoinAck(epoch uint64, acks *joinAcks, ackErr error, userTag string, onJoined func(string)) {
	s.mu.Lock()
	if epoch != s.epoch || acks.done || s.session == nil {
		s.mu.Unlock()
		return
	}

	if ackErr != nil {
		acks.done = true
		log := s.logger.ForSession(s.session.ID, s.session.LocalClientID)
		_ = s.client.Unsubscribe(nil, s.codec.SessionFilters(s.session.ID)...)
		events := s.teardownLocked()
		manager := s.manager
		s.mu.Unlock()

		log.Error().Err(ackErr).Str("func", "Synchronizer.onJoinAck").Msg("broker refused a session subscription")
		registry.DispatchAll(manager, events)
		return
	}

	acks.remaining--
	if acks.remaining > 0 {
		s.mu.Unlock()
		return
	}
	acks.done = true

	clientID := s.session.LocalClientID
	err := s.publishLocked(models.Message{
		Family:    models.FamilyControl,
		SessionID: s.session.ID,
		Control:   &models.ControlMessage{Kind: models.ControlJoin, Tag: userTag},
	})
	log := s.logger.ForSession(s.session.ID, clientID)
	s.mu.Unlock()

	if err != nil {
		log.Error().Err(err).Str("func", "Synchronizer.onJoinAck").Msg("failed to announce join")
		return
	}
	log.Info().Str("func", "Synchronizer.onJoinAck").Msg("joined session")
	if onJoined != nil {
		onJoined(clientID)
	}
}

// GetSessionState asks the session peers for a snapshot. onComplete, which
// may be nil, runs once after the first answer has been applied, or after
// SnapshotTimeout when no peer answers. It never runs if the session is
// torn down first.
func (s *Synchronizer) GetSessionState(onComplete func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || !s.session.Joined() {
		s.logger.Error().Str("func", "Synchronizer.GetSessionState").Msg("no joined session")
		return ErrNoSession
	}

	requestID := uuid.NewString()
	req := &snapshotRequest{onComplete: onComplete}
	req.timer = time.AfterFunc(s.opts.SnapshotTimeout, func() {
		s.seq.Submit(func() { s.completeSnapshot(requestID, nil) })
	})
	s.snapshots[requestID] = req

	err := s.publishLocked(models.Message{
		Family:    models.FamilyControl,
		SessionID: s.session.ID,
		Control:   &models.ControlMessage{Kind: models.ControlStateRequest, RequestID: requestID},
	})
	if err != nil {
		req.timer.Stop()
		delete(s.snapshots, requestID)
		return err
	}
	return nil
}

// completeSnapshot finishes a pending request, applying resp when a peer
// answered. Requests already completed or torn down are ignored.
func (s *Synchronizer) completeSnapshot(requestID string, resp *models.ControlMessage) {
	s.mu.Lock()
	req, ok := s.snapshots[requestID]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.snapshots, requestID)
	req.timer.Stop()

	var events []registry.Event
	if resp != nil && s.session != nil {
		for _, e := range resp.Entities {
			if ev, applied := s.entities.Apply(models.EntityMessage{Kind: models.EntityCreate, Entity: e}); applied {
				events = append(events, ev)
			}
		}
		for _, p := range resp.Participants {
			if p.ClientID != s.session.LocalClientID {
				s.sessions.OnJoin(p.ClientID, p.UserTag)
			}
		}
		if s.session.Tag == "" {
			s.session.Tag = resp.Tag
		}
		s.observeEntitiesLocked()
	}
	manager := s.manager
	s.mu.Unlock()

	if resp == nil {
		s.logger.Debug().Str("func", "Synchronizer.completeSnapshot").Str("request_id", requestID).Msg("no peer answered the state request")
	}
	registry.DispatchAll(manager, events)
	if req.onComplete != nil {
		req.onComplete()
	}
}

// ExitSession announces the leave, unsubscribes and clears the local
// session, participant and entity state.
func (s *Synchronizer) ExitSession() error {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		s.logger.Error().Str("func", "Synchronizer.ExitSession").Msg("exit without an active session")
		return ErrNoSession
	}

	log := s.logger.ForSession(s.session.ID, s.session.LocalClientID)
	if s.session.Joined() && s.svc.ConnectionState == models.Connected {
		s.publishLeaveLocked()
	}
	events := s.teardownLocked()
	manager := s.manager
	s.mu.Unlock()

	s.dispatch(manager, events)
	log.Info().Str("func", "Synchronizer.ExitSession").Msg("left session")
	return nil
}

// DestroySession announces the destruction of the session and clears all
// local session and entity state, whether or not this process joined.
func (s *Synchronizer) DestroySession() error {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		s.logger.Error().Str("func", "Synchronizer.DestroySession").Msg("destroy without an active session")
		return ErrNoSession
	}

	log := s.logger.ForSession(s.session.ID, s.session.LocalClientID)
	if s.svc.ConnectionState == models.Connected {
		err := s.publishLocked(models.Message{
			Family:    models.FamilyControl,
			SessionID: s.session.ID,
			Control:   &models.ControlMessage{Kind: models.ControlDestroy},
		})
		if err != nil {
			log.Warn().Err(err).Str("func", "Synchronizer.DestroySession").Msg("failed to announce destroy")
		}
		if s.session.Joined() {
			s.unsubscribeLocked()
		}
	}
	events := s.teardownLocked()
	manager := s.manager
	s.mu.Unlock()

	s.dispatch(manager, events)
	log.Info().Str("func", "Synchronizer.DestroySession").Msg("session destroyed")
	return nil
}

// AddSynchronizedEntity registers a locally owned entity and announces it
// to the session.
func (s *Synchronizer) AddSynchronizedEntity(entity Entity, deleteWithOwner bool, resourceRefs ...string) error {
	state, err := validEntity(entity)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || !s.session.Joined() {
		s.logger.Error().Str("func", "Synchronizer.AddSynchronizedEntity").Msg("no joined session")
		return ErrNoSession
	}

	err = s.entities.Insert(models.SynchronizedEntity{
		ID:              entity.EntityID(),
		OwnerClientID:   s.session.LocalClientID,
		DeleteWithOwner: deleteWithOwner,
		ResourceRefs:    slices.Clone(resourceRefs),
		State:           state,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("func", "Synchronizer.AddSynchronizedEntity").Str("entity_id", entity.EntityID()).Msg("failed to register entity")
		return err
	}
	s.observeEntitiesLocked()

	stored, _ := s.entities.Get(entity.EntityID())
	err = s.publishLocked(models.Message{
		Family:    models.FamilyEntity,
		SessionID: s.session.ID,
		Entity:    &models.EntityMessage{Kind: models.EntityCreate, Entity: stored},
	})
	if err != nil {
		s.entities.Discard(stored.ID)
		s.observeEntitiesLocked()
		return err
	}
	return nil
}

// UpdateSynchronizedEntity replaces the state of a registered entity,
// increments its revision and announces the update.
func (s *Synchronizer) UpdateSynchronizedEntity(entity Entity) error {
	state, err := validEntity(entity)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || !s.session.Joined() {
		s.logger.Error().Str("func", "Synchronizer.UpdateSynchronizedEntity").Msg("no joined session")
		return ErrNoSession
	}

	previous, _ := s.entities.Get(entity.EntityID())
	updated, err := s.entities.Update(entity.EntityID(), state)
	if err != nil {
		s.logger.Error().Err(err).Str("func", "Synchronizer.UpdateSynchronizedEntity").Str("entity_id", entity.EntityID()).Msg("failed to update entity")
		return err
	}

	err = s.publishLocked(models.Message{
		Family:    models.FamilyEntity,
		SessionID: s.session.ID,
		Entity:    &models.EntityMessage{Kind: models.EntityUpdate, Entity: updated},
	})
	if err != nil {
		s.entities.Restore(previous)
		return err
	}
	return nil
}

// RemoveSynchronizedEntity removes an entity, whoever owns it, and
// announces the removal.
func (s *Synchronizer) RemoveSynchronizedEntity(entity Entity) error {
	if entity == nil || entity.EntityID() == "" {
		return ErrInvalidEntity
	}
	id := entity.EntityID()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || !s.session.Joined() {
		s.logger.Error().Str("func", "Synchronizer.RemoveSynchronizedEntity").Msg("no joined session")
		return ErrNoSession
	}
	if _, ok := s.entities.Get(id); !ok {
		s.logger.Error().Str("func", "Synchronizer.RemoveSynchronizedEntity").Str("entity_id", id).Msg("entity is not registered")
		return fmt.Errorf("%w: %s", registry.ErrUnknownEntity, id)
	}

	removed, _ := s.entities.Remove(id)
	s.observeEntitiesLocked()
	removed.Revision++
	return s.publishLocked(models.Message{
		Family:    models.FamilyEntity,
		SessionID: s.session.ID,
		Entity:    &models.EntityMessage{Kind: models.EntityDestroy, Entity: removed},
	})
}

// SendMessage publishes an application message with the default
// application QoS.
func (s *Synchronizer) SendMessage(topic string, payload []byte) error {
	return s.SendMessageQoS(topic, payload, s.opts.AppQoS)
}

// SendMessageQoS publishes an application message with qos.
func (s *Synchronizer) SendMessageQoS(topic string, payload []byte, qos models.QoS) error {
	if !transport.ValidTopic(topic) {
		return fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
	}
	if !qos.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidQoS, qos)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || !s.session.Joined() {
		s.logger.Error().Str("func", "Synchronizer.SendMessageQoS").Msg("no joined session")
		return ErrNoSession
	}

	return s.publishQoSLocked(models.Message{
		Family:    models.FamilyApplication,
		SessionID: s.session.ID,
		App:       &models.AppMessage{Topic: topic, Payload: slices.Clone(payload)},
	}, qos)
}

// publishLocked encodes and publishes msg with the QoS of its family.
func (s *Synchronizer) publishLocked(msg models.Message) error {
	qos := s.opts.AppQoS
	switch msg.Family {
	case models.FamilyControl:
		qos = s.opts.ControlQoS
	case models.FamilyEntity:
		qos = s.opts.EntityQoS
	}
	return s.publishQoSLocked(msg, qos)
}

func (s *Synchronizer) publishQoSLocked(msg models.Message, qos models.QoS) error {
	msg.Sender = s.senderLocked()
	topic, payload, err := s.codec.Encode(msg)
	if err != nil {
		s.logger.Error().Err(err).Str("func", "Synchronizer.publish").Msg("failed to encode message")
		return err
	}
	if err = s.client.Publish(topic, payload, qos); err != nil {
		s.logger.Error().Err(err).Str("func", "Synchronizer.publish").Str("topic", topic).Msg("failed to publish message")
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	metrics.MessagePublished(string(msg.Family))
	return nil
}

func (s *Synchronizer) publishLeaveLocked() {
	err := s.publishLocked(models.Message{
		Family:    models.FamilyControl,
		SessionID: s.session.ID,
		Control:   &models.ControlMessage{Kind: models.ControlLeave},
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "Synchronizer.publishLeave").Msg("failed to announce leave")
	}
	s.unsubscribeLocked()
}

func (s *Synchronizer) unsubscribeLocked() {
	if err := s.client.Unsubscribe(nil, s.codec.SessionFilters(s.session.ID)...); err != nil {
		s.logger.Warn().Err(err).Str("func", "Synchronizer.unsubscribe").Msg("failed to unsubscribe session topics")
	}
}

// senderLocked is the local client id once joined and the instance id
// before that.
func (s *Synchronizer) senderLocked() string {
	if s.session != nil && s.session.Joined() {
		return s.session.LocalClientID
	}
	return s.instanceID
}

// teardownLocked forgets the session and its entities and invalidates
// pending join and snapshot callbacks. It returns destroy events for the
// entities this process did not own.
func (s *Synchronizer) teardownLocked() []registry.Event {
	local := ""
	if s.session != nil {
		local = s.session.LocalClientID
	}

	var events []registry.Event
	for _, e := range s.entities.Clear() {
		if local != "" && e.OwnerClientID == local {
			continue
		}
		events = append(events, registry.Event{Kind: models.EntityDestroy, Entity: e})
	}

	s.sessions.Clear()
	s.session = nil
	s.epoch++
	for id, req := range s.snapshots {
		req.timer.Stop()
		delete(s.snapshots, id)
	}
	s.observeEntitiesLocked()
	return events
}

func (s *Synchronizer) observeEntitiesLocked() {
	metrics.SetEntities(s.address.String(), s.entities.Len())
}

// dispatch notifies the EntityManager on the sequencer.
func (s *Synchronizer) dispatch(manager registry.EntityManager, events []registry.Event) {
	if manager == nil || len(events) == 0 {
		return
	}
	s.seq.Submit(func() { registry.DispatchAll(manager, events) })
}

// Flush blocks until the work queued on the sequencer before the call has
// run. It must not be called from an EntityManager or listener callback.
func (s *Synchronizer) Flush() {
	s.seq.Flush()
}

func canonicalSessionID(sessionID string) (string, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidSessionID, sessionID)
	}
	return id.String(), nil
}

// validEntityID reports whether id can be a single topic level.
func validEntityID(id string) bool {
	return id != "" && !strings.ContainsAny(id, "/+#\x00")
}

func validEntity(entity Entity) (models.EntityState, error) {
	if entity == nil || entity.EntityID() == "" {
		return models.EntityState{}, fmt.Errorf("%w: missing entity id", ErrInvalidEntity)
	}
	if !validEntityID(entity.EntityID()) {
		return models.EntityState{}, fmt.Errorf("%w: id %q is not a single topic level", ErrInvalidEntity, entity.EntityID())
	}
	state := entity.EntityState()
	if err := state.Validate(); err != nil {
		return models.EntityState{}, fmt.Errorf("%w: %w", ErrInvalidEntity, err)
	}
	return state.Clone(), nil
}
