package bolt

import (
	"context"
	"time"

	"github.com/mentorhub/backend/domain"
	"github.com/mentorhub/backend/repository"
)

type sessionRepository struct {
	store *Store
}

// NewSessionRepository returns a Bolt-backed implementation of
// SessionRepository. The active-user record survives restarts.
func NewSessionRepository(store *Store) repository.SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Get(ctx context.Context) (*domain.Session, error) {
	var session domain.Session
	found, err := r.store.read(keyActiveUser, &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *domain.Session) error {
	if session == nil || session.UserID == "" {
		return domain.ErrInvalidPayload
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	return r.store.write(keyActiveUser, session)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.store.delete(keyActiveUser)
}
