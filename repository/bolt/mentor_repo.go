package bolt

import (
	"context"

	"github.com/mentorhub/backend/domain"
	"github.com/mentorhub/backend/repository"
)

type mentorRepository struct {
	store *Store
}

// NewMentorRepository returns a Bolt-backed implementation of MentorRepository.
func NewMentorRepository(store *Store) repository.MentorRepository {
	return &mentorRepository{store: store}
}

func (r *mentorRepository) List(ctx context.Context) ([]domain.MentorCredential, error) {
	var mentors []domain.MentorCredential
	if _, err := r.store.read(keyMentors, &mentors); err != nil {
		return nil, err
	}
	return mentors, nil
}

func (r *mentorRepository) GetByID(ctx context.Context, id string) (*domain.MentorCredential, error) {
	mentors, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range mentors {
		if mentors[i].ID == id {
			return &mentors[i], nil
		}
	}
	return nil, domain.ErrMentorNotFound
}

func (r *mentorRepository) GetByName(ctx context.Context, name string) (*domain.MentorCredential, error) {
	mentors, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range mentors {
		if mentors[i].Name == name {
			return &mentors[i], nil
		}
	}
	return nil, domain.ErrMentorNotFound
}

func (r *mentorRepository) Add(ctx context.Context, mentor *domain.MentorCredential) error {
	if mentor == nil || mentor.ID == "" || mentor.Name == "" {
		return domain.ErrInvalidPayload
	}
	mentors, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range mentors {
		if mentors[i].Name == mentor.Name {
			return domain.NewError(domain.ErrCodeConflict, "mentor name already registered")
		}
	}
	return r.store.write(keyMentors, append(mentors, *mentor))
}
