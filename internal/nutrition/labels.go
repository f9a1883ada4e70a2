package nutrition

import (
	"strings"

	"github.com/Rrens/fitsmart/internal/domain"
)

var restrictionLabels = map[domain.DietaryRestriction]string{
	domain.RestrictionLactose:    "Lactose-free",
	domain.RestrictionGluten:     "Gluten-free",
	domain.RestrictionVegetarian: "Vegetarian",
	domain.RestrictionVegan:      "Vegan",
	domain.RestrictionNuts:       "Nut-free",
	domain.RestrictionSeafood:    "Seafood-free",
	domain.RestrictionEggs:       "Egg-free",
	domain.RestrictionSoy:        "Soy-free",
	domain.RestrictionNone:       "No restrictions",
}

var goalLabels = map[domain.Goal]string{
	domain.GoalLose:     "Lose weight",
	domain.GoalGain:     "Gain muscle",
	domain.GoalMaintain: "Maintain weight",
}

var activityLabels = map[domain.ActivityLevel]string{
	domain.ActivitySedentary:  "Sedentary",
	domain.ActivityLight:      "Lightly active",
	domain.ActivityModerate:   "Moderately active",
	domain.ActivityActive:     "Very active",
	domain.ActivityVeryActive: "Extremely active",
}

// RestrictionLabel returns the display label of a tag; unknown tags pass through
func RestrictionLabel(tag domain.DietaryRestriction) string {
	if label, ok := restrictionLabels[tag]; ok {
		return label
	}
	return string(tag)
}

// RestrictionLabels joins the display labels of the tags
func RestrictionLabels(tags []domain.DietaryRestriction) string {
	if len(tags) == 0 {
		return restrictionLabels[domain.RestrictionNone]
	}
	labels := make([]string, 0, len(tags))
	for _, tag := range tags {
		labels = append(labels, RestrictionLabel(tag))
	}
	return strings.Join(labels, ", ")
}

func GoalLabel(goal domain.Goal) string {
	if label, ok := goalLabels[goal]; ok {
		return label
	}
	return string(goal)
}

func ActivityLabel(level domain.ActivityLevel) string {
	if label, ok := activityLabels[level]; ok {
		return label
	}
	return string(level)
}

// BMICategory buckets a BMI value using the WHO adult ranges
func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return ""
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
