package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mentorhub/backend/domain"
	"github.com/mentorhub/backend/repository"
)

type UseCase struct {
	mentors  repository.MentorRepository
	mentees  repository.MenteeRepository
	sessions repository.SessionRepository
	logger   *zap.Logger
}

func New(mentors repository.MentorRepository, mentees repository.MenteeRepository, sessions repository.SessionRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		mentors:  mentors,
		mentees:  mentees,
		sessions: sessions,
		logger:   logger,
	}
}

// LoginMentor validates mentor credentials. An unknown name auto-registers a
// new mentor with the supplied credentials and logs them in; a known name
// succeeds only when the password matches. Auto-registration lives in a
// single named operation so it can be swapped for real signup later.
func (uc *UseCase) LoginMentor(ctx context.Context, name, password string) (*domain.Session, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "name and password are required")
	}

	mentor, err := uc.mentors.GetByName(ctx, name)
	switch {
	case err == nil:
		if !mentor.Matches(password) {
			uc.logger.Warn("mentor login rejected", zap.String("name", name))
			return nil, domain.ErrInvalidCredentials
		}
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		mentor, err = uc.registerMentor(ctx, name, password)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return uc.openSession(ctx, mentor.User)
}

// registerMentor creates a mentor credential for a name seen for the first
// time. This is the deliberate login/signup conflation the product ships
// with; keep it isolated here.
func (uc *UseCase) registerMentor(ctx context.Context, name, password string) (*domain.MentorCredential, error) {
	mentor := &domain.MentorCredential{
		User: domain.User{
			ID:        uuid.NewString(),
			Name:      name,
			Type:      domain.UserTypeMentor,
			CreatedAt: time.Now(),
		},
		Password: password,
	}
	if err := uc.mentors.Add(ctx, mentor); err != nil {
		return nil, err
	}
	uc.logger.Info("mentor auto-registered", zap.String("mentor_id", mentor.ID))
	return mentor, nil
}

// LoginMentee succeeds iff a mentee with the registration number exists.
func (uc *UseCase) LoginMentee(ctx context.Context, registrationNumber string) (*domain.Session, error) {
	registrationNumber = strings.TrimSpace(registrationNumber)
	if registrationNumber == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "registration number is required")
	}

	mentee, err := uc.mentees.GetByRegistration(ctx, registrationNumber)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	return uc.openSession(ctx, mentee.User)
}

// Logout clears the active session only; stored profiles are untouched.
func (uc *UseCase) Logout(ctx context.Context) error {
	return uc.sessions.Clear(ctx)
}

// Current resolves the active session. A session whose user no longer exists
// in the stored record sets is cleared and reported as absent, forcing the
// caller back to login.
func (uc *UseCase) Current(ctx context.Context) (*domain.Session, error) {
	session, err := uc.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}

	switch session.UserType {
	case domain.UserTypeMentor:
		_, err = uc.mentors.GetByID(ctx, session.UserID)
	case domain.UserTypeMentee:
		_, err = uc.mentees.GetByID(ctx, session.UserID)
	default:
		err = domain.ErrSessionNotFound
	}
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			uc.logger.Warn("active session references missing user, forcing logout",
				zap.String("user_id", session.UserID))
			_ = uc.sessions.Clear(ctx)
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (uc *UseCase) openSession(ctx context.Context, user domain.User) (*domain.Session, error) {
	session := &domain.Session{
		UserID:    user.ID,
		UserName:  user.Name,
		UserType:  user.Type,
		CreatedAt: time.Now(),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	uc.logger.Info("session opened",
		zap.String("user_id", user.ID),
		zap.String("user_type", string(user.Type)))
	return session, nil
}
