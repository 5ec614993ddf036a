package calendar

import (
	"context"
	"testing"
	"time"

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
			return &f.mentees[i], nil
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

func TestMonthGrid(t *testing.T) {
	repo := &fakeMenteeRepo{mentees: []domain.MenteeProfile{
		{
			User:     domain.User{ID: "mentee1", Name: "Carlos"},
			MentorID: "mentor1",
			DevelopmentPlan: []domain.DevelopmentActivity{
				{ID: "a1", Title: "Demo", DueDate: "2026-09-15", Status: domain.StatusAssigned},
				{ID: "a2", Title: "Rascunho", DueDate: "2026-09-15", Status: domain.StatusDraft},
				{ID: "a3", Title: "Fora do mês", DueDate: "2026-10-02", Status: domain.StatusAssigned},
				{ID: "a4", Title: "Sem prazo", DueDate: "", Status: domain.StatusAssigned},
			},
		},
		{
			User:     domain.User{ID: "mentee2", Name: "Beatriz"},
			MentorID: "mentor1",
			DevelopmentPlan: []domain.DevelopmentActivity{
				{ID: "b1", Title: "Legado", DueDate: "2026-09-15T00:00:00Z", Status: domain.StatusInProgress},
			},
		},
		{
			User:     domain.User{ID: "mentee3", Name: "Outro mentor"},
			MentorID: "mentor2",
			DevelopmentPlan: []domain.DevelopmentActivity{
				{ID: "c1", Title: "Invisível", DueDate: "2026-09-15", Status: domain.StatusAssigned},
			},
		},
	}}
	uc := New(repo, nil)

	grid, err := uc.MonthGrid(context.Background(), "mentor1", time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("MonthGrid() error: %v", err)
	}
	if grid.Year != 2026 || grid.Month != time.September {
		t.Errorf("grid for %d-%v, want 2026-September", grid.Year, grid.Month)
	}
	if len(grid.Days) != 30 {
		t.Errorf("len(Days) = %d, want 30", len(grid.Days))
	}
	// September 1st 2026 is a Tuesday.
	if grid.LeadingBlanks != 2 {
		t.Errorf("LeadingBlanks = %d, want 2", grid.LeadingBlanks)
	}

	day15 := grid.Days[14]
	if len(day15.Entries) != 2 {
		t.Fatalf("day 15 has %d entries, want 2 (draft, other-month and other-mentor excluded)", len(day15.Entries))
	}
	for _, e := range day15.Entries {
		if e.Status == domain.StatusDraft {
			t.Errorf("draft bucketed: %+v", e)
		}
		if e.MenteeID == "mentee3" {
			t.Errorf("other mentor's activity bucketed: %+v", e)
		}
	}

	for _, d := range grid.Days {
		if d.Day != 15 && len(d.Entries) != 0 {
			t.Errorf("unexpected entries on day %d: %+v", d.Day, d.Entries)
		}
	}
}

func TestMonthGridForMentee(t *testing.T) {
	repo := &fakeMenteeRepo{mentees: []domain.MenteeProfile{
		{
			User:     domain.User{ID: "mentee1", Name: "Carlos"},
			MentorID: "mentor1",
			DevelopmentPlan: []domain.DevelopmentActivity{
				{ID: "a1", Title: "Demo", DueDate: "2026-09-15", Status: domain.StatusAssigned},
			},
		},
		{
			User:     domain.User{ID: "mentee2", Name: "Beatriz"},
			MentorID: "mentor1",
			DevelopmentPlan: []domain.DevelopmentActivity{
				{ID: "b1", Title: "Apresentação", DueDate: "2026-09-20", Status: domain.StatusInProgress},
			},
		},
	}}
	uc := New(repo, nil)

	// The mentee sees the whole roster of their mentor, peers included.
	grid, err := uc.MonthGridForMentee(context.Background(), "mentee1", time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("MonthGridForMentee() error: %v", err)
	}
	if len(grid.Days[14].Entries) != 1 || grid.Days[14].Entries[0].MenteeID != "mentee1" {
		t.Errorf("day 15 entries = %+v, want mentee1's activity", grid.Days[14].Entries)
	}
	if len(grid.Days[19].Entries) != 1 || grid.Days[19].Entries[0].MenteeID != "mentee2" {
		t.Errorf("day 20 entries = %+v, want peer activity", grid.Days[19].Entries)
	}

	if _, err := uc.MonthGridForMentee(context.Background(), "ghost", time.Now()); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Errorf("unknown mentee error = %v, want NOT_FOUND", err)
	}
}

func TestMonthGridEmptyRoster(t *testing.T) {
	uc := New(&fakeMenteeRepo{}, nil)
	grid, err := uc.MonthGrid(context.Background(), "mentor1", time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("MonthGrid() error: %v", err)
	}
	if len(grid.Days) != 28 {
		t.Errorf("len(Days) = %d, want 28", len(grid.Days))
	}
}
