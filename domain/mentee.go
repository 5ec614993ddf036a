package domain

// MenteeProfile is the full record of a mentee: identity, survey state,
// assessed maturity level and the development plan owned by their mentor.
type MenteeProfile struct {
	User
	RegistrationNumber  string                `json:"registration_number"`
	MentorID            string                `json:"mentor_id"`
	SurveyAnswers       []int                 `json:"survey_answers,omitempty"`
	MentorSurveyAnswers []int                 `json:"mentor_survey_answers,omitempty"`
	MaturityLevel       *MaturityLevelInfo    `json:"maturity_level,omitempty"`
	DevelopmentPlan     []DevelopmentActivity `json:"development_plan"`
}

// HasSelfAssessment reports whether the mentee already completed the intake
// survey.
func (m *MenteeProfile) HasSelfAssessment() bool {
	return m != nil && len(m.SurveyAnswers) > 0
}

// Assessed reports whether the mentor already committed a maturity level.
func (m *MenteeProfile) Assessed() bool {
	return m != nil && m.MaturityLevel != nil
}

// Activity finds a plan entry by id.
func (m *MenteeProfile) Activity(id string) (*DevelopmentActivity, bool) {
	if m == nil {
		return nil, false
	}
	for i := range m.DevelopmentPlan {
		if m.DevelopmentPlan[i].ID == id {
			return &m.DevelopmentPlan[i], true
		}
	}
	return nil, false
}

// VisiblePlan returns the activities a mentee is allowed to see, which
// excludes drafts.
func (m *MenteeProfile) VisiblePlan() []DevelopmentActivity {
	if m == nil {
		return nil
	}
	visible := make([]DevelopmentActivity, 0, len(m.DevelopmentPlan))
	for _, a := range m.DevelopmentPlan {
		if a.Status != StatusDraft {
			visible = append(visible, a)
		}
	}
	return visible
}
