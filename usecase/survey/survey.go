package survey

import (
	"context"

	"go.uber.org/zap"

	"github.com/mentorhub/backend/domain"
	"github.com/mentorhub/backend/repository"
)

type UseCase struct {
	mentees repository.MenteeRepository
	logger  *zap.Logger
}

func New(mentees repository.MenteeRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{mentees: mentees, logger: logger}
}

// Questions exposes the fixed questionnaire.
func (uc *UseCase) Questions() []domain.SurveyQuestion {
	return domain.SurveyQuestions
}

// SubmitSelfAssessment stores a mentee's own answers as-is. Self-assessments
// never trigger scoring; only the mentor's assessment does.
func (uc *UseCase) SubmitSelfAssessment(ctx context.Context, menteeID string, answers []int) (*domain.MenteeProfile, error) {
	if err := domain.ValidateAnswers(answers); err != nil {
		return nil, err
	}

	mentee, err := uc.mentees.GetByID(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	mentee.SurveyAnswers = answers
	if err := uc.mentees.Update(ctx, mentee); err != nil {
		return nil, err
	}
	uc.logger.Info("self-assessment stored", zap.String("mentee_id", menteeID))
	return mentee, nil
}
