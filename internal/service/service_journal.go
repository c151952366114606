package service

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"github.com/MKhiriev/worldsync/internal/config"
	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/internal/store"
	"github.com/MKhiriev/worldsync/models"
)

const (
	defaultJournalLimit = 100
	maxJournalLimit     = 1000

	// journalWriteTimeout bounds one journal write made from the sequencer.
	journalWriteTimeout = 5 * time.Second
)

type journalService struct {
	repo      store.JournalRepository
	retention time.Duration
	now       func() time.Time
	logger    *logger.Logger
}

// NewJournalService returns a JournalService over repo. A nil repo yields
// a service whose calls fail with ErrJournalDisabled.
func NewJournalService(repo store.JournalRepository, cfg config.Workers, log *logger.Logger) JournalService {
	return &journalService{
		repo:      repo,
		retention: cfg.JournalRetention,
		now:       time.Now,
		logger:    log,
	}
}

func (j *journalService) List(ctx context.Context, filter models.JournalFilter) ([]models.JournalRecord, error) {
	if j.repo == nil {
		return nil, ErrJournalDisabled
	}

	switch {
	case filter.Limit == 0:
		filter.Limit = defaultJournalLimit
	case filter.Limit > maxJournalLimit:
		filter.Limit = maxJournalLimit
	}
	return j.repo.List(ctx, filter)
}

// Prune deletes records older than the configured retention. A zero
// retention keeps everything.
func (j *journalService) Prune(ctx context.Context) (int64, error) {
	if j.repo == nil {
		return 0, ErrJournalDisabled
	}
	if j.retention <= 0 {
		return 0, nil
	}

	n, err := j.repo.Prune(ctx, j.now().Add(-j.retention))
	if err != nil {
		j.logger.Err(err).Str("func", "journalService.Prune").Msg("failed to prune journal")
		return 0, err
	}
	if n > 0 {
		j.logger.Info().Str("func", "journalService.Prune").Int64("pruned", n).Msg("journal pruned")
	}
	return n, nil
}

// JournalingEntityManager is the daemon's EntityManager: it records every
// remote entity change, and every application message it hears, in the
// event journal.
type JournalingEntityManager struct {
	repo   store.JournalRepository
	sync   *Synchronizer
	logger *logger.Logger
}

// NewJournalingEntityManager returns a manager journaling the events of s.
// Call Attach to install it.
func NewJournalingEntityManager(repo store.JournalRepository, s *Synchronizer, log *logger.Logger) *JournalingEntityManager {
	return &JournalingEntityManager{
		repo:   repo,
		sync:   s,
		logger: log.ForService(s.Address().String()),
	}
}

// Attach makes j the entity manager and a message listener of its
// synchronizer.
func (j *JournalingEntityManager) Attach() {
	j.sync.SetEntityManager(j)
	j.sync.AddMessageListener(j.OnMessage)
}

func (j *JournalingEntityManager) OnRemoteEntityCreate(entityID string, state models.EntityState, resourceRefs []string) {
	rec := j.entityRecord(models.JournalEntityCreate, entityID, state)
	if len(resourceRefs) > 0 {
		j.logger.Debug().Str("func", "JournalingEntityManager.OnRemoteEntityCreate").
			Str("entity_id", entityID).Strs("resource_refs", slices.Clone(resourceRefs)).Msg("entity references resources")
	}
	j.append(rec)
}

func (j *JournalingEntityManager) OnRemoteEntityUpdate(entityID string, state models.EntityState) {
	j.append(j.entityRecord(models.JournalEntityUpdate, entityID, state))
}

func (j *JournalingEntityManager) OnRemoteEntityDestroy(entityID string) {
	j.append(models.JournalRecord{
		Service:   j.sync.Address().String(),
		SessionID: j.sessionID(),
		EntityID:  entityID,
		Kind:      models.JournalEntityDestroy,
	})
}

// OnMessage journals an application message. It has the MessageListener
// signature.
func (j *JournalingEntityManager) OnMessage(topic, senderClientID string, payload []byte) {
	j.append(models.JournalRecord{
		Service:   j.sync.Address().String(),
		SessionID: j.sessionID(),
		Topic:     topic,
		Kind:      models.JournalAppMessage,
		Sender:    senderClientID,
		Payload:   slices.Clone(payload),
	})
}

func (j *JournalingEntityManager) entityRecord(kind models.JournalKind, entityID string, state models.EntityState) models.JournalRecord {
	rec := models.JournalRecord{
		Service:   j.sync.Address().String(),
		SessionID: j.sessionID(),
		EntityID:  entityID,
		Kind:      kind,
	}
	if e, ok := j.sync.Entity(entityID); ok {
		rec.Sender = e.OwnerClientID
		rec.Revision = e.Revision
	}
	if payload, err := json.Marshal(state); err == nil {
		rec.Payload = payload
	}
	return rec
}

func (j *JournalingEntityManager) sessionID() string {
	if sess, ok := j.sync.Session(); ok {
		return sess.ID
	}
	return ""
}

func (j *JournalingEntityManager) append(rec models.JournalRecord) {
	rec.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), journalWriteTimeout)
	defer cancel()

	if err := j.repo.Append(ctx, rec); err != nil {
		j.logger.Err(err).Str("func", "JournalingEntityManager.append").
			Str("kind", string(rec.Kind)).Str("entity_id", rec.EntityID).Msg("failed to journal event")
	}
}
