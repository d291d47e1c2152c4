package repository

import (
	"context"
	"fmt"

	"laundry-booking/internal/booking"
	"laundry-booking/internal/metrics"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

type SessionRepository interface {
	Create(ctx context.Context, id uuid.UUID, session *booking.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) int
}

// sessionRepository keeps sessions in a bounded LRU. The least recently
// used session is dropped once the cache is full.
type sessionRepository struct {
	cache *lru.Cache[uuid.UUID, *booking.Session]
	log   *zap.Logger
}

func NewSessionRepository(size int, log *zap.Logger) (SessionRepository, error) {
	log = log.With(zap.String("repository", "session"))

	cache, err := lru.NewWithEvict(size, func(id uuid.UUID, _ *booking.Session) {
		metrics.SessionClosed()
		log.Debug("Session dropped", zap.String("session_id", id.String()))
	})
	if err != nil {
		log.Error("Failed to create session cache", zap.Error(err), zap.Int("size", size))
		return nil, fmt.Errorf("create session cache of size %d: %w", size, err)
	}

	return &sessionRepository{
		cache: cache,
		log:   log,
	}, nil
}

func (r *sessionRepository) Create(ctx context.Context, id uuid.UUID, session *booking.Session) error {
	if session == nil {
		return fmt.Errorf("create session %s: nil session", id)
	}
	if exists, _ := r.cache.ContainsOrAdd(id, session); exists {
		return fmt.Errorf("create session %s: already exists", id)
	}

	metrics.SessionOpened()
	return nil
}

// FindByID returns nil, nil when the session is unknown or was evicted.
func (r *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Session, error) {
	session, ok := r.cache.Get(id)
	if !ok {
		return nil, nil
	}
	return session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if !r.cache.Remove(id) {
		return fmt.Errorf("session %s not found", id)
	}
	return nil
}

func (r *sessionRepository) Count(ctx context.Context) int {
	return r.cache.Len()
}
