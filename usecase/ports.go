package usecase

import (
	"context"

	"github.com/mentorhub/backend/domain"
)

// Suggester abstracts the generative suggestion provider so the plan use case
// stays transport-agnostic and the concrete provider is swappable in tests.
// A nil Suggester means the feature is disabled by configuration.
type Suggester interface {
	Suggest(ctx context.Context, level domain.MaturityLevelInfo) ([]domain.ActivitySuggestion, error)
}
