package domain

import "strings"

// ActivityStatus is the lifecycle state of a development-plan activity.
type ActivityStatus string

const (
	StatusDraft      ActivityStatus = "draft"
	StatusAssigned   ActivityStatus = "assigned"
	StatusInProgress ActivityStatus = "in_progress"
	StatusCompleted  ActivityStatus = "completed"
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s ActivityStatus) bool {
	switch s {
	case StatusDraft, StatusAssigned, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// PDFAttachment is an optional document linked to an activity.
type PDFAttachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DevelopmentActivity is one entry of a mentee's development plan (PDI).
// Activities start as drafts, visible only to the mentor; once assigned the
// mentee drives the status forward until completion.
type DevelopmentActivity struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Steps       []string       `json:"steps"`
	DueDate     string         `json:"due_date,omitempty"`
	Status      ActivityStatus `json:"status"`
	IsAI        bool           `json:"is_ai,omitempty"`
	Attachment  *PDFAttachment `json:"pdf_attachment,omitempty"`
}

// IsDraft reports whether the activity is still editable and deletable.
func (a *DevelopmentActivity) IsDraft() bool {
	return a != nil && a.Status == StatusDraft
}

// CanAdvance reports whether a mentee may move an activity from one status to
// another. Only forward movement among assigned, in_progress and completed is
// allowed; drafts and regressions are rejected.
func CanAdvance(from, to ActivityStatus) bool {
	switch from {
	case StatusAssigned:
		return to == StatusInProgress || to == StatusCompleted
	case StatusInProgress:
		return to == StatusCompleted
	}
	return false
}

// SplitSteps turns newline-separated free text into an ordered list of
// non-empty steps.
func SplitSteps(text string) []string {
	var steps []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			steps = append(steps, line)
		}
	}
	return steps
}

// ActivitySuggestion is a draft activity proposed by the suggestion service.
type ActivitySuggestion struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}
