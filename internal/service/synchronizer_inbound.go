package service

import (
	"errors"
	"slices"

	"github.com/MKhiriev/worldsync/internal/codec"
	"github.com/MKhiriev/worldsync/internal/metrics"
	"github.com/MKhiriev/worldsync/internal/registry"
	"github.com/MKhiriev/worldsync/models"
)

// onDelivery is the transport message handler of every session
// subscription. It only queues the delivery.
func (s *Synchronizer) onDelivery(topic string, payload []byte, qos models.QoS) {
	s.seq.Submit(func() { s.handleDelivery(topic, payload, qos) })
}

// handleDelivery decodes and applies one delivery on the sequencer.
func (s *Synchronizer) handleDelivery(topic string, payload []byte, qos models.QoS) {
	msg, err := s.codec.Decode(topic, payload, qos)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "Synchronizer.handleDelivery").Str("topic", topic).Msg("dropping undecodable message")
		metrics.MessageDropped(dropReason(err))
		return
	}
	metrics.MessageReceived(string(msg.Family))

	s.mu.Lock()
	if s.session == nil || !s.session.Joined() || msg.SessionID != s.session.ID {
		s.mu.Unlock()
		metrics.MessageDropped(metrics.ReasonNoSession)
		return
	}
	// Application messages loop back so local listeners see their own.
	if msg.Family != models.FamilyApplication && s.isLocalSenderLocked(msg.Sender) {
		s.mu.Unlock()
		metrics.MessageDropped(metrics.ReasonEcho)
		return
	}

	var after func()
	switch msg.Family {
	case models.FamilyControl:
		after = s.handleControlLocked(msg)
	case models.FamilyEntity:
		after = s.handleEntityLocked(msg)
	case models.FamilyApplication:
		after = s.handleAppLocked(msg)
	}
	s.mu.Unlock()

	if after != nil {
		after()
	}
}

func (s *Synchronizer) isLocalSenderLocked(sender string) bool {
	return sender == s.instanceID || sender == s.session.LocalClientID
}

func (s *Synchronizer) handleControlLocked(msg models.Message) func() {
	ctl := msg.Control
	log := s.logger.ForSession(s.session.ID, s.session.LocalClientID)

	switch ctl.Kind {
	case models.ControlCreate:
		if s.session.Tag == "" {
			s.session.Tag = ctl.Tag
		}
		return nil

	case models.ControlDestroy:
		log.Info().Str("func", "Synchronizer.handleControl").Str("sender", msg.Sender).Msg("session destroyed by peer")
		s.unsubscribeLocked()
		s.sessions.OnDestroy()
		events := s.destroyEvents
		s.destroyEvents = nil
		return s.dispatchLater(events)

	case models.ControlJoin:
		s.sessions.OnJoin(msg.Sender, ctl.Tag)
		log.Debug().Str("func", "Synchronizer.handleControl").Str("participant", msg.Sender).Msg("participant joined")
		return nil

	case models.ControlLeave:
		events := s.sessions.OnLeave(msg.Sender)
		s.observeEntitiesLocked()
		log.Debug().Str("func", "Synchronizer.handleControl").Str("participant", msg.Sender).
			Int("removed_entities", len(events)).Msg("participant left")
		return s.dispatchLater(events)

	case models.ControlStateRequest:
		err := s.publishLocked(models.Message{
			Family:    models.FamilyControl,
			SessionID: s.session.ID,
			Control: &models.ControlMessage{
				Kind:         models.ControlStateResponse,
				RequestID:    ctl.RequestID,
				Target:       msg.Sender,
				Tag:          s.session.Tag,
				Participants: s.sessions.Participants(),
				Entities:     s.entities.Snapshot(),
			},
		})
		if err != nil {
			log.Warn().Err(err).Str("func", "Synchronizer.handleControl").Msg("failed to answer state request")
		}
		return nil

	case models.ControlStateResponse:
		if ctl.Target != s.session.LocalClientID {
			return nil
		}
		return func() { s.completeSnapshot(ctl.RequestID, ctl) }
	}
	return nil
}

func (s *Synchronizer) handleEntityLocked(msg models.Message) func() {
	ev, applied := s.entities.Apply(*msg.Entity)
	if !applied {
		metrics.MessageDropped(metrics.ReasonStale)
		return nil
	}
	s.observeEntitiesLocked()

	manager := s.manager
	return func() { ev.Dispatch(manager) }
}

func (s *Synchronizer) handleAppLocked(msg models.Message) func() {
	listeners := slices.Clone(s.listeners)
	if len(listeners) == 0 {
		return nil
	}

	app := msg.App
	return func() {
		for _, l := range listeners {
			l(app.Topic, msg.Sender, app.Payload)
		}
	}
}

func (s *Synchronizer) dispatchLater(events []registry.Event) func() {
	if len(events) == 0 {
		return nil
	}
	manager := s.manager
	return func() { registry.DispatchAll(manager, events) }
}

func dropReason(err error) string {
	switch {
	case errors.Is(err, codec.ErrUnknownTopic):
		return metrics.ReasonUnknownTopic
	case errors.Is(err, codec.ErrUnknownKind):
		return metrics.ReasonUnknownKind
	default:
		return metrics.ReasonMalformed
	}
}
