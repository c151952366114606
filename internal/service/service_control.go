package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/models"
)

// pollInterval is how often a waiting control call re-checks for a
// failure that has no callback of its own.
const pollInterval = 50 * time.Millisecond

type controlService struct {
	manager *Manager
	newID   func() string
	logger  *logger.Logger
}

// NewControlService exposes manager to the control API.
func NewControlService(manager *Manager, log *logger.Logger) ControlService {
	return &controlService{
		manager: manager,
		newID:   newEntityID,
		logger:  log,
	}
}

// newEntityID returns a version 7 UUID, so entities the daemon names list
// in creation order. A random one is used if the clock read fails.
func newEntityID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (c *controlService) lookup(ctx context.Context, addr models.ServiceAddress) (*Synchronizer, error) {
	s := c.manager.GetSynchronizer(addr.Host, addr.Port)
	if s == nil {
		logger.FromContext(ctx).Debug().Str("func", "controlService.lookup").Str("service", addr.String()).Msg("synchronizer not found")
		return nil, ErrSynchronizerNotFound
	}
	return s, nil
}

func (c *controlService) AddSynchronizer(ctx context.Context, req models.AddSynchronizerRequest) (models.SynchronizerInfo, error) {
	s, err := c.manager.AddSynchronizer(req.Host, req.Port, req.UseTLS, req.Transport)
	if err != nil {
		return models.SynchronizerInfo{}, err
	}
	return synchronizerInfo(s), nil
}

func (c *controlService) ListSynchronizers(ctx context.Context) []models.SynchronizerInfo {
	syncs := c.manager.Synchronizers()
	out := make([]models.SynchronizerInfo, 0, len(syncs))
	for _, s := range syncs {
		out = append(out, synchronizerInfo(s))
	}
	return out
}

func (c *controlService) GetSynchronizer(ctx context.Context, addr models.ServiceAddress) (models.SynchronizerInfo, error) {
	s, err := c.lookup(ctx, addr)
	if err != nil {
		return models.SynchronizerInfo{}, err
	}
	return synchronizerInfo(s), nil
}

func (c *controlService) RemoveSynchronizer(ctx context.Context, addr models.ServiceAddress) error {
	if _, err := c.lookup(ctx, addr); err != nil {
		return err
	}
	c.manager.RemoveSynchronizer(addr.Host, addr.Port)
	return nil
}

// Connect starts connecting and waits until the broker accepts the
// connection, the connection faults or ctx ends.
func (c *controlService) Connect(ctx context.Context, addr models.ServiceAddress) (models.SynchronizerInfo, error) {
	s, err := c.lookup(ctx, addr)
	if err != nil {
		return models.SynchronizerInfo{}, err
	}

	connected := make(chan struct{})
	if err = s.Connect(func() { close(connected) }); err != nil {
		return synchronizerInfo(s), err
	}

	err = await(ctx, connected, func() bool { return s.State() == models.StateFaulted }, ErrConnectionFailed)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "controlService.Connect").Str("service", addr.String()).Msg("connect did not complete")
	}
	return synchronizerInfo(s), err
}

func (c *controlService) Disconnect(ctx context.Context, addr models.ServiceAddress) error {
	s, err := c.lookup(ctx, addr)
	if err != nil {
		return err
	}
	s.Disconnect()
	return nil
}

func (c *controlService) CreateSession(ctx context.Context, addr models.ServiceAddress, req models.SessionRequest) error {
	s, err := c.lookup(ctx, addr)
	if err != nil {
		return err
	}
	return s.CreateSession(req.SessionID, req.Tag)
}

func (c *controlService) DestroySession(ctx context.Context, addr models.ServiceAddress) error {
	s, err := c.lookup(ctx, addr)
	if err != nil {
		return err
	}
	return s.DestroySession()
}

// JoinSession joins and waits until every subscription is acknowledged.
func (c *controlService) JoinSession(ctx context.Context, addr models.ServiceAddress, req models.SessionRequest) (models.JoinResponse, error) {
	s, err := c.lookup(ctx, addr)
	if err != nil {
		return models.JoinResponse{}, err
	}

	joined := make(chan struct{})
	clientID, err := s.JoinSession(req.SessionID, req.Tag, func(string) { close(joined) })
	if err != nil {
		return models.JoinResponse{}, err
	}

	err = await(ctx, joined, func() bool {
		sess, ok := s.Session()
		return !ok || sess.LocalClientID != clientID
	}, ErrJoinFailed)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "controlService.JoinSession").Str("service", addr.String()).Msg("join did not complete")
		return models.JoinResponse{}, err
	}
	return models.JoinResponse{ClientID: clientID}, nil
}

func (c *controlService) ExitSession(ctx context.Context, addr models.ServiceAddress) error {
	s, err := c.lookup(ctx, addr)
	if err != nil {
		return err
	}
	return s.ExitSession()
}

// RefreshSessionState requests a snapshot from the session peers, waits
// for it and returns the resulting registry.
func (c *controlService) RefreshSessionState(ctx context.Context, addr models.ServiceAddress) (models.EntitiesResponse, error) {
	s, err := c.lookup(ctx, addr)
	if err != nil {
		return models.EntitiesResponse{}, err
	}

	done := make(chan struct{})
	if err = s.GetSessionState(func() { close(done) }); err != nil {
		return models.EntitiesResponse{}, err
	}

	err = await(ctx, done, func() bool {
		sess, ok := s.Session()
		return !ok || !sess.Joined()
	}, ErrNoSession)
	if err != nil {
		return models.EntitiesResponse{}, err
	}
	return entitiesResponse(s.Entities()), nil
}

func (c *controlService) ListEntities(ctx context.Context, addr models.ServiceAddress) (models.EntitiesResponse, error) {
	s, err := c.lookup(ctx, addr)
	if err != nil {
		return models.EntitiesResponse{}, err
	}
	return entitiesResponse(s.Entities()), nil
}

// AddEntity registers a daemon-owned entity. An empty EntityID is replaced
// by a generated time-ordered UUID.
func (c *controlService) AddEntity(ctx context.Context, addr models.ServiceAddress, req models.EntityRequest) (models.EntityResponse, error) {
	s, err := c.lookup(ctx, addr)
	if err != nil {
		return models.EntityResponse{}, err
	}

	id := req.EntityID
	if id == "" {
		id = c.newID()
	}
	if err = s.AddSynchronizedEntity(models.EntityHandle{ID: id, State: req.State}, req.DeleteWithOwner, req.ResourceRefs...); err != nil {
		return models.EntityResponse{}, err
	}
	return models.EntityResponse{EntityID: id}, nil
}

func (c *controlService) UpdateEntity(ctx context.Context, addr models.ServiceAddress, req models.EntityRequest) error {
	s, err := c.lookup(ctx, addr)
	if err != nil {
		return err
	}
	return s.UpdateSynchronizedEntity(models.EntityHandle{ID: req.EntityID, State: req.State})
}

func (c *controlService) RemoveEntity(ctx context.Context, addr models.ServiceAddress, entityID string) error {
	s, err := c.lookup(ctx, addr)
	if err != nil {
		return err
	}
	return s.RemoveSynchronizedEntity(models.EntityHandle{ID: entityID})
}

func (c *controlService) SendMessage(ctx context.Context, addr models.ServiceAddress, req models.MessageRequest) error {
	s, err := c.lookup(ctx, addr)
	if err != nil {
		return err
	}
	if req.QoS != nil {
		return s.SendMessageQoS(req.Topic, []byte(req.Payload), *req.QoS)
	}
	return s.SendMessage(req.Topic, []byte(req.Payload))
}

func (c *controlService) GetUserTag(ctx context.Context, addr models.ServiceAddress, clientID string) (models.UserTagResponse, error) {
	s, err := c.lookup(ctx, addr)
	if err != nil {
		return models.UserTagResponse{}, err
	}

	tag, ok := s.GetUserTag(clientID)
	if !ok {
		return models.UserTagResponse{}, ErrUnknownParticipant
	}
	return models.UserTagResponse{ClientID: clientID, UserTag: tag}, nil
}

// await blocks until done is closed, failed reports true (failure is then
// returned) or ctx ends.
func await(ctx context.Context, done <-chan struct{}, failed func() bool, failure error) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if failed() {
				// the callback may have fired in the same instant
				select {
				case <-done:
					return nil
				default:
					return failure
				}
			}
		}
	}
}

func synchronizerInfo(s *Synchronizer) models.SynchronizerInfo {
	svc := s.Service()
	info := models.SynchronizerInfo{
		Address:   svc.Address().String(),
		Host:      svc.Host,
		Port:      svc.Port,
		UseTLS:    svc.UseTLS,
		Transport: svc.TransportKind,
		State:     s.State(),
		Entities:  len(s.Entities()),
	}
	if sess, ok := s.Session(); ok {
		info.Session = &sess
	}
	return info
}

func entitiesResponse(entities []models.SynchronizedEntity) models.EntitiesResponse {
	return models.EntitiesResponse{Entities: entities, Length: len(entities)}
}
