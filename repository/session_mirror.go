package repository

import (
	"context"

	"github.com/mentorhub/backend/domain"
)

type mirroredSessionRepository struct {
	primary SessionRepository
	mirror  SessionRepository
}

// NewMirroredSessionRepository layers a fast mirror (Redis) over the
// authoritative store. Reads prefer the mirror; writes go to the primary
// first and are mirrored best-effort.
func NewMirroredSessionRepository(primary, mirror SessionRepository) SessionRepository {
	return &mirroredSessionRepository{primary: primary, mirror: mirror}
}

func (r *mirroredSessionRepository) Get(ctx context.Context) (*domain.Session, error) {
	if session, err := r.mirror.Get(ctx); err == nil {
		return session, nil
	}
	session, err := r.primary.Get(ctx)
	if err != nil {
		return nil, err
	}
	_ = r.mirror.Save(ctx, session)
	return session, nil
}

func (r *mirroredSessionRepository) Save(ctx context.Context, session *domain.Session) error {
	if err := r.primary.Save(ctx, session); err != nil {
		return err
	}
	_ = r.mirror.Save(ctx, session)
	return nil
}

func (r *mirroredSessionRepository) Clear(ctx context.Context) error {
	if err := r.primary.Clear(ctx); err != nil {
		return err
	}
	_ = r.mirror.Clear(ctx)
	return nil
}
