package repository

import (
	"context"

	"github.com/mentorhub/backend/domain"
)

// MenteeRepository persists the mentee roster. Mutations rewrite the whole
// record set so every update is atomic from the caller's perspective.
type MenteeRepository interface {
	List(ctx context.Context) ([]domain.MenteeProfile, error)
	ListByMentor(ctx context.Context, mentorID string) ([]domain.MenteeProfile, error)
	GetByID(ctx context.Context, id string) (*domain.MenteeProfile, error)
	GetByRegistration(ctx context.Context, registrationNumber string) (*domain.MenteeProfile, error)
	Add(ctx context.Context, mentee *domain.MenteeProfile) error
	Update(ctx context.Context, mentee *domain.MenteeProfile) error
}
