// Package recommendation contains the goal recommendation use cases.
package recommendation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/domain/entity"
	domainerror "github.com/goaltracker/backend/internal/domain/error"
)

// GenerateInput represents the input for recommendation generation.
type GenerateInput struct {
	UserID uuid.UUID
}

// GenerateOutput represents the output of recommendation generation.
type GenerateOutput struct {
	Recommendations []*entity.RecommendedGoal

	// Source reports which strategy produced the batch, "ai" or "rules".
	Source string
}

// GenerateUseCase produces and persists a batch of three recommendations.
type GenerateUseCase struct {
	profileRepo adapter.ProfileRepository
	recRepo     adapter.RecommendationRepository
	recommender adapter.RecommenderService
}

// NewGenerateUseCase creates a new GenerateUseCase instance.
func NewGenerateUseCase(
	profileRepo adapter.ProfileRepository,
	recRepo adapter.RecommendationRepository,
	recommender adapter.RecommenderService,
) *GenerateUseCase {
	return &GenerateUseCase{
		profileRepo: profileRepo,
		recRepo:     recRepo,
		recommender: recommender,
	}
}

// Execute generates three suggestions from the user's onboarding profile.
// The AI recommender is tried first; any failure there falls back to the
// rule-based strategy, so generation itself never fails once a profile exists.
func (uc *GenerateUseCase) Execute(ctx context.Context, input GenerateInput) (*GenerateOutput, error) {
	profile, err := uc.profileRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProfileNotFound) {
			return nil, domainerror.NewRecommendationError(
				domainerror.ErrCodeProfileRequired,
				"complete the onboarding questionnaire before generating recommendations",
				domainerror.ErrProfileRequired,
			)
		}
		return nil, fmt.Errorf("failed to load onboarding profile: %w", err)
	}

	drafts, source := uc.generateDrafts(ctx, profile)

	recs := make([]*entity.RecommendedGoal, 0, len(drafts))
	for _, d := range drafts {
		category := d.Category
		if !entity.ValidCategory(category) {
			category = entity.CategoryOther
		}
		recs = append(recs, entity.NewRecommendedGoal(
			input.UserID, d.Title, category, d.Description, d.Plan, d.Reasoning,
		))
	}

	if err := uc.recRepo.CreateBatch(ctx, recs); err != nil {
		return nil, fmt.Errorf("failed to store recommendations: %w", err)
	}

	return &GenerateOutput{
		Recommendations: recs,
		Source:          source,
	}, nil
}

// generateDrafts runs the AI strategy when available and falls back to the
// rule engine on any error or short batch.
func (uc *GenerateUseCase) generateDrafts(ctx context.Context, profile *entity.OnboardingProfile) ([]*adapter.RecommendationDraft, string) {
	if uc.recommender != nil && uc.recommender.IsAvailable() {
		drafts, err := uc.recommender.Recommend(ctx, profile)
		if err == nil && len(drafts) >= recommendationCount {
			return drafts[:recommendationCount], "ai"
		}
		slog.Warn("AI recommender unavailable, using rule-based fallback",
			"user_id", profile.UserID,
			"error", err,
		)
	}
	return RuleBasedRecommendations(profile), "rules"
}
