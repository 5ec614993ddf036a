package repository

import (
	"context"

	"github.com/mentorhub/backend/domain"
)

type MentorRepository interface {
	List(ctx context.Context) ([]domain.MentorCredential, error)
	GetByID(ctx context.Context, id string) (*domain.MentorCredential, error)
	GetByName(ctx context.Context, name string) (*domain.MentorCredential, error)
	Add(ctx context.Context, mentor *domain.MentorCredential) error
}
