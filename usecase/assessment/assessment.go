package assessment

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

// Result carries the score breakdown and the level the thresholds suggest.
// The mentor may still override the level before confirming.
type Result struct {
	Answers        []int                    `json:"answers"`
	TotalScore     int                      `json:"total_score"`
	Percentage     float64                  `json:"percentage"`
	SuggestedLevel domain.MaturityLevelInfo `json:"suggested_level"`
}

// Assess scores a mentor's completed assessment of a mentee. Nothing is
// stored; the caller confirms separately.
func (uc *UseCase) Assess(ctx context.Context, menteeID string, answers []int) (*Result, error) {
	if _, err := uc.mentees.GetByID(ctx, menteeID); err != nil {
		return nil, err
	}
	suggested, err := domain.SuggestLevel(answers)
	if err != nil {
		return nil, err
	}
	total, percentage := domain.ScoreAnswers(answers)
	return &Result{
		Answers:        answers,
		TotalScore:     total,
		Percentage:     percentage,
		SuggestedLevel: suggested,
	}, nil
}

// Confirm commits the mentor's answers and the final (possibly overridden)
// level onto the mentee record in a single update. Re-assessment overwrites
// both fields; no survey history is retained.
func (uc *UseCase) Confirm(ctx context.Context, menteeID string, answers []int, finalLevel int) (*domain.MenteeProfile, error) {
	if err := domain.ValidateAnswers(answers); err != nil {
		return nil, err
	}
	info, ok := domain.LevelByNumber(finalLevel)
	if !ok {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown maturity level")
	}

	mentee, err := uc.mentees.GetByID(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	mentee.MentorSurveyAnswers = answers
	mentee.MaturityLevel = &info
	if err := uc.mentees.Update(ctx, mentee); err != nil {
		return nil, err
	}
	uc.logger.Info("maturity level confirmed",
		zap.String("mentee_id", menteeID),
		zap.Int("level", info.Level))
	return mentee, nil
}

// Tips returns the coaching focus for an assessed mentee.
func (uc *UseCase) Tips(ctx context.Context, menteeID string) (*domain.MaturityTips, error) {
	mentee, err := uc.mentees.GetByID(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	if !mentee.Assessed() {
		return nil, domain.ErrNotAssessed
	}
	tips, ok := domain.TipsForLevel(mentee.MaturityLevel.Level)
	if !ok {
		return nil, domain.ErrNotAssessed
	}
	return &tips, nil
}
