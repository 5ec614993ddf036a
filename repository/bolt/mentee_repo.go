package bolt

import (
	"context"

	"github.com/mentorhub/backend/domain"
	"github.com/mentorhub/backend/repository"
)

type menteeRepository struct {
	store *Store
}

// NewMenteeRepository returns a Bolt-backed implementation of MenteeRepository.
func NewMenteeRepository(store *Store) repository.MenteeRepository {
	return &menteeRepository{store: store}
}

func (r *menteeRepository) List(ctx context.Context) ([]domain.MenteeProfile, error) {
	var mentees []domain.MenteeProfile
	if _, err := r.store.read(keyMentees, &mentees); err != nil {
		return nil, err
	}
	return mentees, nil
}

func (r *menteeRepository) ListByMentor(ctx context.Context, mentorID string) ([]domain.MenteeProfile, error) {
	mentees, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	owned := make([]domain.MenteeProfile, 0, len(mentees))
	for _, m := range mentees {
		if m.MentorID == mentorID {
			owned = append(owned, m)
		}
	}
	return owned, nil
}

func (r *menteeRepository) GetByID(ctx context.Context, id string) (*domain.MenteeProfile, error) {
	mentees, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range mentees {
		if mentees[i].ID == id {
			return &mentees[i], nil
		}
	}
	return nil, domain.ErrMenteeNotFound
}

func (r *menteeRepository) GetByRegistration(ctx context.Context, registrationNumber string) (*domain.MenteeProfile, error) {
	mentees, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range mentees {
		if mentees[i].RegistrationNumber == registrationNumber {
			return &mentees[i], nil
		}
	}
	return nil, domain.ErrMenteeNotFound
}

func (r *menteeRepository) Add(ctx context.Context, mentee *domain.MenteeProfile) error {
	if mentee == nil || mentee.ID == "" || mentee.RegistrationNumber == "" {
		return domain.ErrInvalidPayload
	}
	mentees, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range mentees {
		if mentees[i].RegistrationNumber == mentee.RegistrationNumber {
			return domain.ErrDuplicateRegistration
		}
	}
	return r.store.write(keyMentees, append(mentees, *mentee))
}

func (r *menteeRepository) Update(ctx context.Context, mentee *domain.MenteeProfile) error {
	if mentee == nil || mentee.ID == "" {
		return domain.ErrInvalidPayload
	}
	mentees, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range mentees {
		if mentees[i].ID == mentee.ID {
			mentees[i] = *mentee
			return r.store.write(keyMentees, mentees)
		}
	}
	return domain.ErrMenteeNotFound
}
