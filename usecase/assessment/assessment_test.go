package assessment

import (
	"context"
	"reflect"
	"testing"

	"github.com/mentorhub/backend/domain"
)

type fakeMenteeRepo struct {
	mentees []domain.MenteeProfile
}

func (f *fakeMenteeRepo) List(context.Context) ([]domain.MenteeProfile, error) { return f.mentees, nil }

func (f *fakeMenteeRepo) ListByMentor(_ context.Context, mentorID string) ([]domain.MenteeProfile, error) {
	var owned []domain.MenteeProfile
	for _, m := range f.mentees {
		if m.MentorID == mentorID {
			owned = append(owned, m)
		}
	}
	return owned, nil
}

func (f *fakeMenteeRepo) GetByID(_ context.Context, id string) (*domain.MenteeProfile, error) {
	for i := range f.mentees {
		if f.mentees[i].ID == id {
			copy := f.mentees[i]
			return &copy, nil
		}
	}
	return nil, domain.ErrMenteeNotFound
}

func (f *fakeMenteeRepo) GetByRegistration(_ context.Context, reg string) (*domain.MenteeProfile, error) {
	for i := range f.mentees {
		if f.mentees[i].RegistrationNumber == reg {
			return &f.mentees[i], nil
		}
	}
	return nil, domain.ErrMenteeNotFound
}

func (f *fakeMenteeRepo) Add(_ context.Context, mentee *domain.MenteeProfile) error {
	f.mentees = append(f.mentees, *mentee)
	return nil
}

func (f *fakeMenteeRepo) Update(_ context.Context, mentee *domain.MenteeProfile) error {
	for i := range f.mentees {
		if f.mentees[i].ID == mentee.ID {
			f.mentees[i] = *mentee
			return nil
		}
	}
	return domain.ErrMenteeNotFound
}

func repoWithCarlos() *fakeMenteeRepo {
	return &fakeMenteeRepo{mentees: []domain.MenteeProfile{{
		User:               domain.User{ID: "mentee1", Name: "Carlos", Type: domain.UserTypeMentee},
		RegistrationNumber: "12345",
		MentorID:           "mentor1",
	}}}
}

// Mentor "Ana" assesses Carlos with all fours (40/40 = 100%), gets level 5
// suggested, overrides to 3 and confirms.
func TestAssessThenConfirmWithOverride(t *testing.T) {
	repo := repoWithCarlos()
	uc := New(repo, nil)
	ctx := context.Background()
	answers := []int{4, 4, 4, 4, 4, 4, 4, 4, 4, 4}

	result, err := uc.Assess(ctx, "mentee1", answers)
	if err != nil {
		t.Fatalf("Assess() error: %v", err)
	}
	if result.TotalScore != 40 || result.Percentage != 100 {
		t.Errorf("score = %d (%v%%), want 40 (100%%)", result.TotalScore, result.Percentage)
	}
	if result.SuggestedLevel.Level != 5 {
		t.Errorf("suggested level = %d, want 5", result.SuggestedLevel.Level)
	}
	if repo.mentees[0].Assessed() {
		t.Error("Assess() must not persist anything")
	}

	mentee, err := uc.Confirm(ctx, "mentee1", answers, 3)
	if err != nil {
		t.Fatalf("Confirm() error: %v", err)
	}
	if mentee.MaturityLevel == nil || mentee.MaturityLevel.Level != 3 {
		t.Errorf("confirmed level = %+v, want 3", mentee.MaturityLevel)
	}
	if !reflect.DeepEqual(mentee.MentorSurveyAnswers, answers) {
		t.Errorf("mentor answers = %v, want %v", mentee.MentorSurveyAnswers, answers)
	}

	stored := repo.mentees[0]
	if stored.MaturityLevel == nil || stored.MaturityLevel.Level != 3 || !reflect.DeepEqual(stored.MentorSurveyAnswers, answers) {
		t.Errorf("stored record = %+v, want level 3 with answers committed together", stored)
	}
}

func TestConfirmOverwritesPriorAssessment(t *testing.T) {
	repo := repoWithCarlos()
	uc := New(repo, nil)
	ctx := context.Background()

	if _, err := uc.Confirm(ctx, "mentee1", []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, 1); err != nil {
		t.Fatalf("first Confirm() error: %v", err)
	}
	second := []int{3, 3, 3, 3, 3, 3, 3, 3, 3, 3}
	if _, err := uc.Confirm(ctx, "mentee1", second, 4); err != nil {
		t.Fatalf("second Confirm() error: %v", err)
	}

	stored := repo.mentees[0]
	if stored.MaturityLevel.Level != 4 || !reflect.DeepEqual(stored.MentorSurveyAnswers, second) {
		t.Errorf("re-assessment did not overwrite: %+v", stored)
	}
}

func TestConfirmRejectsBadInput(t *testing.T) {
	uc := New(repoWithCarlos(), nil)
	ctx := context.Background()
	answers := []int{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}

	if _, err := uc.Confirm(ctx, "mentee1", []int{2, 2}, 3); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("Confirm(short answers) error = %v, want INVALID", err)
	}
	if _, err := uc.Confirm(ctx, "mentee1", answers, 0); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("Confirm(level 0) error = %v, want INVALID", err)
	}
	if _, err := uc.Confirm(ctx, "ghost", answers, 3); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Errorf("Confirm(unknown mentee) error = %v, want NOT_FOUND", err)
	}
}

func TestTips(t *testing.T) {
	repo := repoWithCarlos()
	uc := New(repo, nil)
	ctx := context.Background()

	if _, err := uc.Tips(ctx, "mentee1"); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("Tips(unassessed) error = %v, want INVALID", err)
	}

	if _, err := uc.Confirm(ctx, "mentee1", []int{3, 3, 3, 3, 3, 3, 3, 3, 3, 3}, 3); err != nil {
		t.Fatalf("Confirm() error: %v", err)
	}
	tips, err := uc.Tips(ctx, "mentee1")
	if err != nil {
		t.Fatalf("Tips() error: %v", err)
	}
	if tips.Title == "" || len(tips.Points) == 0 {
		t.Errorf("Tips() = %+v, want populated focus block", tips)
	}
}
