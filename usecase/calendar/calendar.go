package calendar

import (
	"context"
	"time"

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

// Entry is one activity placed on the grid.
type Entry struct {
	ActivityID string                `json:"activity_id"`
	MenteeID   string                `json:"mentee_id"`
	MenteeName string                `json:"mentee_name"`
	Title      string                `json:"title"`
	Status     domain.ActivityStatus `json:"status"`
}

// Day is one calendar cell.
type Day struct {
	Day     int     `json:"day"`
	Entries []Entry `json:"entries,omitempty"`
}

// Month is the derived month grid. LeadingBlanks is the weekday offset of the
// first day (0 = Sunday) so a renderer can pad the first row.
type Month struct {
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	LeadingBlanks int        `json:"leading_blanks"`
	Days          []Day      `json:"days"`
}

// MonthGrid buckets every non-draft activity across the mentor's full roster
// by the calendar day of its due date. Pure projection, no mutation.
func (uc *UseCase) MonthGrid(ctx context.Context, mentorID string, reference time.Time) (*Month, error) {
	mentees, err := uc.mentees.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	year, month := reference.Year(), reference.Month()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	grid := &Month{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]Day, daysInMonth),
	}
	for i := range grid.Days {
		grid.Days[i].Day = i + 1
	}

	for _, mentee := range mentees {
		for _, activity := range mentee.DevelopmentPlan {
			if activity.Status == domain.StatusDraft {
				continue
			}
			due, ok := parseDueDate(activity.DueDate)
			if !ok || due.Year() != year || due.Month() != month {
				continue
			}
			day := &grid.Days[due.Day()-1]
			day.Entries = append(day.Entries, Entry{
				ActivityID: activity.ID,
				MenteeID:   mentee.ID,
				MenteeName: mentee.Name,
				Title:      activity.Title,
				Status:     activity.Status,
			})
		}
	}
	return grid, nil
}

// MonthGridForMentee resolves the mentee's mentor and projects the same
// roster-wide grid, so mentees see their peers' deadlines alongside their own.
func (uc *UseCase) MonthGridForMentee(ctx context.Context, menteeID string, reference time.Time) (*Month, error) {
	mentee, err := uc.mentees.GetByID(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	return uc.MonthGrid(ctx, mentee.MentorID, reference)
}

// parseDueDate accepts the plain-date form used by the activity editor as
// well as full RFC 3339 timestamps carried over from older records.
func parseDueDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
