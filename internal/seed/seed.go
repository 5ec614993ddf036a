// Package seed populates an empty store with demo accounts so the
// application is usable right after a fresh install.
package seed

import (
	"context"

	"go.uber.org/zap"

	"github.com/mentorhub/backend/domain"
	"github.com/mentorhub/backend/repository"
)

// Run inserts the demo mentor and mentees when the store holds no mentors yet.
// A store that already has data is left untouched.
func Run(ctx context.Context, mentors repository.MentorRepository, mentees repository.MenteeRepository, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	existing, err := mentors.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	mentor := &domain.MentorCredential{
		User: domain.User{
			ID:   "mentor1",
			Name: "Ana Silva",
			Type: domain.UserTypeMentor,
		},
		Password: "123",
	}
	if err := mentors.Add(ctx, mentor); err != nil {
		return err
	}

	for _, mentee := range demoMentees(mentor.ID) {
		if err := mentees.Add(ctx, mentee); err != nil {
			return err
		}
	}

	logger.Info("seeded demo data", zap.Int("mentees", 3))
	return nil
}

func demoMentees(mentorID string) []*domain.MenteeProfile {
	level3, _ := domain.LevelByNumber(3)
	return []*domain.MenteeProfile{
		{
			User: domain.User{
				ID:   "mentee1",
				Name: "Carlos Souza",
				Type: domain.UserTypeMentee,
			},
			RegistrationNumber: "12345",
			MentorID:           mentorID,
			SurveyAnswers:      []int{3, 2, 3, 2, 3, 1, 3, 2, 3, 2},
			DevelopmentPlan: []domain.DevelopmentActivity{
				{
					ID:          "act1",
					Title:       "Learn React Hooks",
					Description: "Deep dive into hooks.",
					Steps:       []string{"useState", "useEffect", "useContext"},
					DueDate:     "2024-07-15",
					Status:      domain.StatusInProgress,
				},
				{
					ID:          "act2",
					Title:       "Present project demo",
					Description: "Present to the team.",
					Steps:       []string{"Prepare slides", "Rehearse", "Present"},
					DueDate:     "2024-07-20",
					Status:      domain.StatusAssigned,
				},
			},
		},
		{
			User: domain.User{
				ID:   "mentee2",
				Name: "Beatriz Costa",
				Type: domain.UserTypeMentee,
			},
			RegistrationNumber: "67890",
			MentorID:           mentorID,
			SurveyAnswers:      []int{4, 3, 4, 3, 4, 2, 4, 3, 4, 3},
			DevelopmentPlan:    []domain.DevelopmentActivity{},
		},
		{
			User: domain.User{
				ID:   "mentee3",
				Name: "Daniel Alves",
				Type: domain.UserTypeMentee,
			},
			RegistrationNumber: "54321",
			MentorID:           mentorID,
			MaturityLevel:      &level3,
			DevelopmentPlan:    []domain.DevelopmentActivity{},
		},
	}
}
