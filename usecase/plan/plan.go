package plan

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mentorhub/backend/domain"
	"github.com/mentorhub/backend/repository"
	"github.com/mentorhub/backend/usecase"
)

type UseCase struct {
	mentees   repository.MenteeRepository
	suggester usecase.Suggester
	logger    *zap.Logger
}

// New builds the plan use case. A nil suggester disables AI suggestions.
func New(mentees repository.MenteeRepository, suggester usecase.Suggester, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		mentees:   mentees,
		suggester: suggester,
		logger:    logger,
	}
}

// ActivityDraft is the mentor's input for a new activity. Steps arrive as
// newline-separated free text.
type ActivityDraft struct {
	Title       string
	Description string
	StepsText   string
	DueDate     string
	Attachment  *domain.PDFAttachment
}

// ActivityPatch merges into an existing activity; nil fields are untouched.
type ActivityPatch struct {
	Title       *string
	Description *string
	StepsText   *string
	DueDate     *string
	Status      *domain.ActivityStatus
	Attachment  *domain.PDFAttachment
}

// AddActivity appends a fresh draft to the mentee's plan.
func (uc *UseCase) AddActivity(ctx context.Context, menteeID string, draft ActivityDraft) (*domain.DevelopmentActivity, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "activity title is required")
	}

	mentee, err := uc.mentees.GetByID(ctx, menteeID)
	if err != nil {
		return nil, err
	}

	activity := domain.DevelopmentActivity{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(draft.Title),
		Description: draft.Description,
		Steps:       domain.SplitSteps(draft.StepsText),
		DueDate:     draft.DueDate,
		Status:      domain.StatusDraft,
		Attachment:  draft.Attachment,
	}
	mentee.DevelopmentPlan = append(mentee.DevelopmentPlan, activity)
	if err := uc.mentees.Update(ctx, mentee); err != nil {
		return nil, err
	}
	return &activity, nil
}

// EditActivity merges the patch into an existing activity by identifier.
func (uc *UseCase) EditActivity(ctx context.Context, menteeID, activityID string, patch ActivityPatch) (*domain.DevelopmentActivity, error) {
	mentee, err := uc.mentees.GetByID(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	activity, found := mentee.Activity(activityID)
	if !found {
		return nil, domain.ErrActivityNotFound
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, domain.NewError(domain.ErrCodeInvalid, "activity title is required")
		}
		activity.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		activity.Description = *patch.Description
	}
	if patch.StepsText != nil {
		activity.Steps = domain.SplitSteps(*patch.StepsText)
	}
	if patch.DueDate != nil {
		activity.DueDate = *patch.DueDate
	}
	if patch.Status != nil {
		if !domain.ValidStatus(*patch.Status) {
			return nil, domain.NewError(domain.ErrCodeInvalid, "unknown activity status")
		}
		activity.Status = *patch.Status
	}
	if patch.Attachment != nil {
		activity.Attachment = patch.Attachment
	}

	if err := uc.mentees.Update(ctx, mentee); err != nil {
		return nil, err
	}
	return activity, nil
}

// DeleteActivity removes a plan entry. Deletion is permitted only while the
// activity is still a draft; this is enforced here, at the data-mutation
// boundary, not just in the UI.
func (uc *UseCase) DeleteActivity(ctx context.Context, menteeID, activityID string) error {
	mentee, err := uc.mentees.GetByID(ctx, menteeID)
	if err != nil {
		return err
	}
	activity, found := mentee.Activity(activityID)
	if !found {
		return domain.ErrActivityNotFound
	}
	if !activity.IsDraft() {
		return domain.ErrActivityNotDraft
	}

	plan := make([]domain.DevelopmentActivity, 0, len(mentee.DevelopmentPlan)-1)
	for _, a := range mentee.DevelopmentPlan {
		if a.ID != activityID {
			plan = append(plan, a)
		}
	}
	mentee.DevelopmentPlan = plan
	return uc.mentees.Update(ctx, mentee)
}

// AdvanceStatus applies a mentee-driven status transition. Only forward
// movement among assigned, in_progress and completed is accepted.
func (uc *UseCase) AdvanceStatus(ctx context.Context, menteeID, activityID string, to domain.ActivityStatus) (*domain.DevelopmentActivity, error) {
	mentee, err := uc.mentees.GetByID(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	activity, found := mentee.Activity(activityID)
	if !found || activity.IsDraft() {
		// Drafts are invisible to mentees, so report them as absent.
		return nil, domain.ErrActivityNotFound
	}
	if !domain.CanAdvance(activity.Status, to) {
		return nil, domain.ErrInvalidTransition
	}

	activity.Status = to
	if err := uc.mentees.Update(ctx, mentee); err != nil {
		return nil, err
	}
	return activity, nil
}

// VisiblePlan returns the mentee-facing plan, which excludes drafts.
func (uc *UseCase) VisiblePlan(ctx context.Context, menteeID string) ([]domain.DevelopmentActivity, error) {
	mentee, err := uc.mentees.GetByID(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	return mentee.VisiblePlan(), nil
}

// GenerateSuggestions asks the suggestion provider for draft activities
// matching the mentee's maturity level and appends them to the plan. A
// disabled provider or any provider failure degrades to zero suggestions;
// nothing is appended and no error reaches the data layer.
func (uc *UseCase) GenerateSuggestions(ctx context.Context, menteeID string) ([]domain.DevelopmentActivity, error) {
	mentee, err := uc.mentees.GetByID(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	if !mentee.Assessed() {
		return nil, domain.ErrNotAssessed
	}
	if uc.suggester == nil {
		uc.logger.Info("suggestion provider disabled, skipping")
		return nil, nil
	}

	suggestions, err := uc.suggester.Suggest(ctx, *mentee.MaturityLevel)
	if err != nil {
		uc.logger.Error("suggestion provider failed", zap.Error(err))
		return nil, nil
	}
	if len(suggestions) == 0 {
		return nil, nil
	}

	added := make([]domain.DevelopmentActivity, 0, len(suggestions))
	for _, s := range suggestions {
		added = append(added, domain.DevelopmentActivity{
			ID:          uuid.NewString(),
			Title:       s.Title,
			Description: s.Description,
			Steps:       s.Steps,
			Status:      domain.StatusDraft,
			IsAI:        true,
		})
	}
	mentee.DevelopmentPlan = append(mentee.DevelopmentPlan, added...)
	if err := uc.mentees.Update(ctx, mentee); err != nil {
		return nil, err
	}
	uc.logger.Info("suggestions appended",
		zap.String("mentee_id", menteeID),
		zap.Int("count", len(added)))
	return added, nil
}
