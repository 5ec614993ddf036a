package roster

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
	mentors repository.MentorRepository
	mentees repository.MenteeRepository
	logger  *zap.Logger
}

func New(mentors repository.MentorRepository, mentees repository.MenteeRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		mentors: mentors,
		mentees: mentees,
		logger:  logger,
	}
}

// AddMentee registers a new mentee under the owning mentor. Registration
// numbers are unique across all mentees; a duplicate fails validation without
// mutating the roster.
func (uc *UseCase) AddMentee(ctx context.Context, mentorID, name, registrationNumber string) (*domain.MenteeProfile, error) {
	name = strings.TrimSpace(name)
	registrationNumber = strings.TrimSpace(registrationNumber)
	if name == "" || registrationNumber == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "name and registration number are required")
	}

	if _, err := uc.mentors.GetByID(ctx, mentorID); err != nil {
		return nil, err
	}
	if _, err := uc.mentees.GetByRegistration(ctx, registrationNumber); err == nil {
		return nil, domain.ErrDuplicateRegistration
	} else if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return nil, err
	}

	mentee := &domain.MenteeProfile{
		User: domain.User{
			ID:        uuid.NewString(),
			Name:      name,
			Type:      domain.UserTypeMentee,
			CreatedAt: time.Now(),
		},
		RegistrationNumber: registrationNumber,
		MentorID:           mentorID,
		DevelopmentPlan:    []domain.DevelopmentActivity{},
	}
	if err := uc.mentees.Add(ctx, mentee); err != nil {
		return nil, err
	}
	uc.logger.Info("mentee registered",
		zap.String("mentee_id", mentee.ID),
		zap.String("mentor_id", mentorID))
	return mentee, nil
}

func (uc *UseCase) ListByMentor(ctx context.Context, mentorID string) ([]domain.MenteeProfile, error) {
	return uc.mentees.ListByMentor(ctx, mentorID)
}

func (uc *UseCase) Get(ctx context.Context, menteeID string) (*domain.MenteeProfile, error) {
	return uc.mentees.GetByID(ctx, menteeID)
}

// ComparisonRow pairs the self and mentor answers for one survey question.
type ComparisonRow struct {
	QuestionID int    `json:"question_id"`
	Text       string `json:"text"`
	Category   string `json:"category"`
	Self       int    `json:"self"`
	Mentor     int    `json:"mentor"`
}

// Comparison projects the two completed assessments of a mentee side by
// side. Both surveys must have been submitted.
func (uc *UseCase) Comparison(ctx context.Context, menteeID string) ([]ComparisonRow, error) {
	mentee, err := uc.mentees.GetByID(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	if len(mentee.SurveyAnswers) != len(domain.SurveyQuestions) || len(mentee.MentorSurveyAnswers) != len(domain.SurveyQuestions) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "both assessments must be completed before comparing")
	}

	rows := make([]ComparisonRow, len(domain.SurveyQuestions))
	for i, q := range domain.SurveyQuestions {
		rows[i] = ComparisonRow{
			QuestionID: q.ID,
			Text:       q.Text,
			Category:   q.Category,
			Self:       mentee.SurveyAnswers[i],
			Mentor:     mentee.MentorSurveyAnswers[i],
		}
	}
	return rows, nil
}
