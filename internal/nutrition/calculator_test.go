package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rrens/fitsmart/internal/domain"
)

func baseAnswers() domain.OnboardingAnswers {
	return domain.OnboardingAnswers{
		Name:          "Ana",
		Age:           25,
		Weight:        70,
		Height:        170,
		Sex:           domain.SexMale,
		Goal:          domain.GoalLose,
		ActivityLevel: domain.ActivityModerate,
		MealsPerDay:   3,
	}
}

func TestComputeProfile_Male(t *testing.T) {
	p, err := ComputeProfile(baseAnswers())
	require.NoError(t, err)

	assert.Equal(t, 1700, p.BMR)
	assert.Equal(t, 2635, p.TDEE)
	assert.Equal(t, 2135, p.TargetCalories)
	assert.Equal(t, 10, p.WaterGoal)
	assert.Equal(t, 24.2, p.BMI)
	assert.Equal(t, "Ana", p.Name)
}

func TestComputeProfile_Goals(t *testing.T) {
	tests := []struct {
		goal     domain.Goal
		expected int
	}{
		{domain.GoalLose, 2135},
		{domain.GoalGain, 2935},
		{domain.GoalMaintain, 2635},
		{domain.Goal("unknown"), 2635},
	}

	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			a := baseAnswers()
			a.Goal = tt.goal
			p, err := ComputeProfile(a)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p.TargetCalories)
		})
	}
}

func TestComputeProfile_Female(t *testing.T) {
	a := domain.OnboardingAnswers{
		Age:           30,
		Weight:        60,
		Height:        165,
		Sex:           domain.SexFemale,
		Goal:          domain.GoalMaintain,
		ActivityLevel: domain.ActivityActive,
		MealsPerDay:   4,
	}

	p, err := ComputeProfile(a)
	require.NoError(t, err)

	assert.Equal(t, 1384, p.BMR)
	assert.Equal(t, 2387, p.TDEE)
	assert.Equal(t, 2387, p.TargetCalories)
	assert.Equal(t, 8, p.WaterGoal)
	assert.Equal(t, 22.0, p.BMI)
}

func TestComputeProfile_UnknownActivityFallsBackToSedentary(t *testing.T) {
	a := baseAnswers()
	a.Goal = domain.GoalMaintain

	a.ActivityLevel = "couch"
	unknown, err := ComputeProfile(a)
	require.NoError(t, err)

	a.ActivityLevel = domain.ActivitySedentary
	sedentary, err := ComputeProfile(a)
	require.NoError(t, err)

	assert.Equal(t, sedentary.TDEE, unknown.TDEE)
	assert.Equal(t, 2040, unknown.TDEE)
}

func TestComputeProfile_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.OnboardingAnswers)
	}{
		{"zero weight", func(a *domain.OnboardingAnswers) { a.Weight = 0 }},
		{"negative height", func(a *domain.OnboardingAnswers) { a.Height = -170 }},
		{"zero age", func(a *domain.OnboardingAnswers) { a.Age = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := baseAnswers()
			tt.mutate(&a)
			_, err := ComputeProfile(a)
			assert.ErrorIs(t, err, domain.ErrInvalidProfile)
		})
	}
}

func TestComputeProfile_Deterministic(t *testing.T) {
	a := baseAnswers()
	first, err := ComputeProfile(a)
	require.NoError(t, err)
	second, err := ComputeProfile(a)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTDEE_RoundsOnlyAtExposure(t *testing.T) {
	bmr := BMR(domain.SexMale, 70, 170, 25)
	assert.InDelta(t, 1700.057, bmr, 0.0001)
	assert.InDelta(t, 2635.08835, TDEE(bmr, domain.ActivityModerate), 0.0001)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17.9))
	assert.Equal(t, "Normal weight", BMICategory(24.2))
	assert.Equal(t, "Overweight", BMICategory(25))
	assert.Equal(t, "Obese", BMICategory(31.4))
	assert.Equal(t, "", BMICategory(0))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "No restrictions", RestrictionLabels(nil))
	assert.Equal(t, "Vegan, Gluten-free", RestrictionLabels([]domain.DietaryRestriction{
		domain.RestrictionVegan, domain.RestrictionGluten,
	}))
	assert.Equal(t, "keto", RestrictionLabel("keto"))
	assert.Equal(t, "Lose weight", GoalLabel(domain.GoalLose))
	assert.Equal(t, "Extremely active", ActivityLabel(domain.ActivityVeryActive))
}
