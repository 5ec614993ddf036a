package plan

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/mentorhub/backend/domain"
)

type fakeMenteeRepo struct {
	mentees []domain.MenteeProfile
	updates int
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
			f.updates++
			return nil
		}
	}
	return domain.ErrMenteeNotFound
}

type stubSuggester struct {
	suggestions []domain.ActivitySuggestion
	err         error
	calls       int
}

func (s *stubSuggester) Suggest(context.Context, domain.MaturityLevelInfo) ([]domain.ActivitySuggestion, error) {
	s.calls++
	return s.suggestions, s.err
}

func seededRepo(activities ...domain.DevelopmentActivity) *fakeMenteeRepo {
	level, _ := domain.LevelByNumber(3)
	return &fakeMenteeRepo{mentees: []domain.MenteeProfile{{
		User:               domain.User{ID: "mentee1", Name: "Carlos", Type: domain.UserTypeMentee},
		RegistrationNumber: "12345",
		MentorID:           "mentor1",
		MaturityLevel:      &level,
		DevelopmentPlan:    activities,
	}}}
}

func TestAddActivityDefaultsToDraft(t *testing.T) {
	repo := seededRepo()
	uc := New(repo, nil, nil)

	activity, err := uc.AddActivity(context.Background(), "mentee1", ActivityDraft{
		Title:     "  Estudar testes  ",
		StepsText: "Ler material\n\nAplicar no projeto\n",
		DueDate:   "2026-10-01",
	})
	if err != nil {
		t.Fatalf("AddActivity() error: %v", err)
	}
	if activity.Status != domain.StatusDraft {
		t.Errorf("status = %q, want draft", activity.Status)
	}
	if activity.ID == "" {
		t.Error("activity got no identifier")
	}
	if activity.Title != "Estudar testes" {
		t.Errorf("title = %q, want trimmed", activity.Title)
	}
	if want := []string{"Ler material", "Aplicar no projeto"}; !reflect.DeepEqual(activity.Steps, want) {
		t.Errorf("steps = %v, want %v", activity.Steps, want)
	}
	if len(repo.mentees[0].DevelopmentPlan) != 1 {
		t.Errorf("plan has %d entries, want 1", len(repo.mentees[0].DevelopmentPlan))
	}
}

func TestAddActivityRequiresTitle(t *testing.T) {
	uc := New(seededRepo(), nil, nil)
	if _, err := uc.AddActivity(context.Background(), "mentee1", ActivityDraft{Title: "  "}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("AddActivity(no title) error = %v, want INVALID", err)
	}
}

func TestEditActivityMergesFields(t *testing.T) {
	repo := seededRepo(domain.DevelopmentActivity{
		ID:     "act1",
		Title:  "Original",
		Steps:  []string{"um"},
		Status: domain.StatusDraft,
	})
	uc := New(repo, nil, nil)

	title := "Atualizado"
	steps := "um\ndois"
	status := domain.StatusAssigned
	updated, err := uc.EditActivity(context.Background(), "mentee1", "act1", ActivityPatch{
		Title:     &title,
		StepsText: &steps,
		Status:    &status,
	})
	if err != nil {
		t.Fatalf("EditActivity() error: %v", err)
	}
	if updated.Title != "Atualizado" || updated.Status != domain.StatusAssigned {
		t.Errorf("updated = %+v", updated)
	}
	if want := []string{"um", "dois"}; !reflect.DeepEqual(updated.Steps, want) {
		t.Errorf("steps = %v, want %v", updated.Steps, want)
	}

	bad := domain.ActivityStatus("archived")
	if _, err := uc.EditActivity(context.Background(), "mentee1", "act1", ActivityPatch{Status: &bad}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("EditActivity(bad status) error = %v, want INVALID", err)
	}
	if _, err := uc.EditActivity(context.Background(), "mentee1", "ghost", ActivityPatch{}); !errors.Is(err, domain.ErrActivityNotFound) {
		t.Errorf("EditActivity(unknown id) error = %v, want ErrActivityNotFound", err)
	}
}

func TestDeleteActivityDraftOnly(t *testing.T) {
	repo := seededRepo(
		domain.DevelopmentActivity{ID: "draft1", Title: "a", Status: domain.StatusDraft},
		domain.DevelopmentActivity{ID: "assigned1", Title: "b", Status: domain.StatusAssigned},
	)
	uc := New(repo, nil, nil)
	ctx := context.Background()

	if err := uc.DeleteActivity(ctx, "mentee1", "assigned1"); !errors.Is(err, domain.ErrActivityNotDraft) {
		t.Fatalf("DeleteActivity(assigned) error = %v, want ErrActivityNotDraft", err)
	}
	if len(repo.mentees[0].DevelopmentPlan) != 2 {
		t.Errorf("rejected delete mutated the plan: %d entries", len(repo.mentees[0].DevelopmentPlan))
	}

	if err := uc.DeleteActivity(ctx, "mentee1", "draft1"); err != nil {
		t.Fatalf("DeleteActivity(draft) error: %v", err)
	}
	if len(repo.mentees[0].DevelopmentPlan) != 1 {
		t.Errorf("plan has %d entries after delete, want 1", len(repo.mentees[0].DevelopmentPlan))
	}
}

func TestAdvanceStatus(t *testing.T) {
	repo := seededRepo(domain.DevelopmentActivity{ID: "act1", Title: "a", Status: domain.StatusAssigned})
	uc := New(repo, nil, nil)
	ctx := context.Background()

	if _, err := uc.AdvanceStatus(ctx, "mentee1", "act1", domain.StatusInProgress); err != nil {
		t.Fatalf("assigned->in_progress error: %v", err)
	}
	if _, err := uc.AdvanceStatus(ctx, "mentee1", "act1", domain.StatusCompleted); err != nil {
		t.Fatalf("in_progress->completed error: %v", err)
	}
	if _, err := uc.AdvanceStatus(ctx, "mentee1", "act1", domain.StatusAssigned); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("completed->assigned error = %v, want ErrInvalidTransition", err)
	}
	if got := repo.mentees[0].DevelopmentPlan[0].Status; got != domain.StatusCompleted {
		t.Errorf("final status = %q, want completed", got)
	}
}

func TestAdvanceStatusHidesDrafts(t *testing.T) {
	repo := seededRepo(domain.DevelopmentActivity{ID: "draft1", Title: "a", Status: domain.StatusDraft})
	uc := New(repo, nil, nil)

	if _, err := uc.AdvanceStatus(context.Background(), "mentee1", "draft1", domain.StatusInProgress); !errors.Is(err, domain.ErrActivityNotFound) {
		t.Errorf("AdvanceStatus(draft) error = %v, want ErrActivityNotFound", err)
	}
}

func TestGenerateSuggestionsAppendsDrafts(t *testing.T) {
	repo := seededRepo()
	suggester := &stubSuggester{suggestions: []domain.ActivitySuggestion{
		{Title: "Mentorar um colega", Description: "Praticar liderança.", Steps: []string{"Escolher colega", "Agendar sessões"}},
		{Title: "Liderar uma retro", Description: "Exercitar facilitação.", Steps: []string{"Preparar pauta", "Facilitar", "Coletar feedback"}},
	}}
	uc := New(repo, suggester, nil)

	added, err := uc.GenerateSuggestions(context.Background(), "mentee1")
	if err != nil {
		t.Fatalf("GenerateSuggestions() error: %v", err)
	}
	if len(added) != 2 {
		t.Fatalf("appended %d activities, want 2", len(added))
	}
	for _, a := range added {
		if a.Status != domain.StatusDraft || !a.IsAI || a.DueDate != "" {
			t.Errorf("suggestion activity = %+v, want draft/isAI/no due date", a)
		}
	}
	if len(repo.mentees[0].DevelopmentPlan) != 2 {
		t.Errorf("plan has %d entries, want 2", len(repo.mentees[0].DevelopmentPlan))
	}
}

func TestGenerateSuggestionsSwallowsProviderFailure(t *testing.T) {
	repo := seededRepo()
	suggester := &stubSuggester{err: errors.New("transport down")}
	uc := New(repo, suggester, nil)

	added, err := uc.GenerateSuggestions(context.Background(), "mentee1")
	if err != nil {
		t.Fatalf("provider failure surfaced: %v", err)
	}
	if len(added) != 0 || repo.updates != 0 {
		t.Errorf("failed call mutated the plan (added=%d, updates=%d)", len(added), repo.updates)
	}
}

func TestGenerateSuggestionsDisabledProvider(t *testing.T) {
	repo := seededRepo()
	uc := New(repo, nil, nil)

	added, err := uc.GenerateSuggestions(context.Background(), "mentee1")
	if err != nil {
		t.Fatalf("disabled provider error: %v", err)
	}
	if added != nil {
		t.Errorf("disabled provider appended %d activities", len(added))
	}
}

func TestGenerateSuggestionsRequiresAssessment(t *testing.T) {
	repo := seededRepo()
	repo.mentees[0].MaturityLevel = nil
	suggester := &stubSuggester{}
	uc := New(repo, suggester, nil)

	if _, err := uc.GenerateSuggestions(context.Background(), "mentee1"); !errors.Is(err, domain.ErrNotAssessed) {
		t.Fatalf("GenerateSuggestions(unassessed) error = %v, want ErrNotAssessed", err)
	}
	if suggester.calls != 0 {
		t.Error("provider was called for an unassessed mentee")
	}
}

func TestVisiblePlanExcludesDrafts(t *testing.T) {
	repo := seededRepo(
		domain.DevelopmentActivity{ID: "d", Status: domain.StatusDraft},
		domain.DevelopmentActivity{ID: "a", Status: domain.StatusAssigned},
	)
	uc := New(repo, nil, nil)

	visible, err := uc.VisiblePlan(context.Background(), "mentee1")
	if err != nil {
		t.Fatalf("VisiblePlan() error: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != "a" {
		t.Errorf("visible = %+v, want only the assigned activity", visible)
	}
}
