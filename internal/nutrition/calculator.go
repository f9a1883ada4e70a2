// Package nutrition derives daily targets and meal plans from onboarding answers.
package nutrition

import (
	"math"

	"github.com/Rrens/fitsmart/internal/domain"
)

const (
	defaultActivityMultiplier = 1.2

	loseAdjustment = -500
	gainAdjustment = 300

	waterMLPerKg = 35
	glassML      = 250
)

var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// ActivityMultiplier returns the TDEE multiplier for the level,
// falling back to the sedentary value for unknown levels.
func ActivityMultiplier(level domain.ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return defaultActivityMultiplier
}

// BMR computes the revised Harris-Benedict basal metabolic rate in kcal/day
func BMR(sex domain.Sex, weightKg, heightCm float64, age int) float64 {
	a := float64(age)
	if sex == domain.SexMale {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*a
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*a
}

// TDEE scales an unrounded BMR by the activity multiplier
func TDEE(bmr float64, level domain.ActivityLevel) float64 {
	return bmr * ActivityMultiplier(level)
}

// TargetCalories applies the goal adjustment to an unrounded TDEE
func TargetCalories(tdee float64, goal domain.Goal) float64 {
	switch goal {
	case domain.GoalLose:
		return tdee + loseAdjustment
	case domain.GoalGain:
		return tdee + gainAdjustment
	default:
		return tdee
	}
}

// WaterGoal returns the daily water goal in 250ml glasses
func WaterGoal(weightKg float64) int {
	return int(math.Round(weightKg * waterMLPerKg / glassML))
}

// BMI returns the body mass index rounded to one decimal
func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10
}

// ComputeProfile derives the daily targets for the given answers.
// Values are rounded only when exposed on the profile.
func ComputeProfile(answers domain.OnboardingAnswers) (domain.UserProfile, error) {
	if answers.Weight <= 0 || answers.Height <= 0 || answers.Age <= 0 {
		return domain.UserProfile{}, domain.ErrInvalidProfile
	}

	bmr := BMR(answers.Sex, answers.Weight, answers.Height, answers.Age)
	tdee := TDEE(bmr, answers.ActivityLevel)
	target := TargetCalories(tdee, answers.Goal)

	return domain.UserProfile{
		OnboardingAnswers: answers,
		BMR:               round(bmr),
		TDEE:              round(tdee),
		TargetCalories:    round(target),
		WaterGoal:         WaterGoal(answers.Weight),
		BMI:               BMI(answers.Weight, answers.Height),
	}, nil
}

func round(v float64) int {
	return int(math.Round(v))
}
