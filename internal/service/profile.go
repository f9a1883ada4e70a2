package service

import (
	"github.com/Rrens/fitsmart/internal/domain"
	"github.com/Rrens/fitsmart/internal/nutrition"
)

// ProfileService computes profiles and meal plans from onboarding answers
type ProfileService struct{}

// NewProfileService creates a new profile service
func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// Compute derives the profile for the answers
func (s *ProfileService) Compute(answers domain.OnboardingAnswers) (*domain.UserProfile, error) {
	profile, err := nutrition.ComputeProfile(answers)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Summarize computes the profile with its meal plan and display labels
func (s *ProfileService) Summarize(answers domain.OnboardingAnswers) (*domain.ProfileSummary, error) {
	profile, err := s.Compute(answers)
	if err != nil {
		return nil, err
	}
	return summarize(*profile), nil
}

// MealPlan recomputes the profile so the plan never trusts client-sent targets
func (s *ProfileService) MealPlan(answers domain.OnboardingAnswers) ([]domain.MealPlanEntry, error) {
	profile, err := s.Compute(answers)
	if err != nil {
		return nil, err
	}
	return nutrition.GenerateMealPlan(*profile), nil
}

func summarize(profile domain.UserProfile) *domain.ProfileSummary {
	return &domain.ProfileSummary{
		Profile:           profile,
		MealPlan:          nutrition.GenerateMealPlan(profile),
		BMICategory:       nutrition.BMICategory(profile.BMI),
		GoalLabel:         nutrition.GoalLabel(profile.Goal),
		ActivityLabel:     nutrition.ActivityLabel(profile.ActivityLevel),
		RestrictionsLabel: nutrition.RestrictionLabels(profile.DietaryRestrictions),
	}
}
