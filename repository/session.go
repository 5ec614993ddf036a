package repository

import (
	"context"

	"github.com/mentorhub/backend/domain"
)

// SessionRepository holds the single active-user record. Get returns
// domain.ErrSessionNotFound when nobody is logged in.
type SessionRepository interface {
	Get(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Clear(ctx context.Context) error
}
