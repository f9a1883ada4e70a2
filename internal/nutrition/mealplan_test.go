package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rrens/fitsmart/internal/domain"
)

func profileWith(target, mealsPerDay int, restrictions ...domain.DietaryRestriction) domain.UserProfile {
	return domain.UserProfile{
		OnboardingAnswers: domain.OnboardingAnswers{
			MealsPerDay:         mealsPerDay,
			DietaryRestrictions: restrictions,
		},
		TargetCalories: target,
	}
}

func names(plan []domain.MealPlanEntry) []string {
	out := make([]string, 0, len(plan))
	for _, e := range plan {
		out = append(out, e.Name)
	}
	return out
}

func TestGenerateMealPlan_SlotCount(t *testing.T) {
	tests := []struct {
		mealsPerDay int
		expected    []string
	}{
		{0, []string{"Breakfast", "Lunch", "Dinner"}},
		{3, []string{"Breakfast", "Lunch", "Dinner"}},
		{4, []string{"Breakfast", "Lunch", "Afternoon snack", "Dinner"}},
		{5, []string{"Breakfast", "Lunch", "Afternoon snack", "Dinner", "Late-night snack"}},
		{6, []string{"Breakfast", "Lunch", "Afternoon snack", "Dinner", "Late-night snack"}},
	}

	for _, tt := range tests {
		t.Run(tt.expected[len(tt.expected)-1], func(t *testing.T) {
			plan := GenerateMealPlan(profileWith(2000, tt.mealsPerDay))
			assert.Equal(t, tt.expected, names(plan))
		})
	}
}

func TestGenerateMealPlan_ThreeMeals(t *testing.T) {
	plan := GenerateMealPlan(profileWith(2135, 3))
	require.Len(t, plan, 3)

	for _, e := range plan {
		assert.Equal(t, 712, e.Calories)
		assert.Equal(t, 53, e.Protein)
		assert.Equal(t, 71, e.Carbs)
		assert.Equal(t, 24, e.Fats)
		assert.NotEmpty(t, e.Foods)
	}
	assert.Equal(t, "07:00 - 08:00", plan[0].Time)
	assert.Equal(t, "12:00 - 13:00", plan[1].Time)
	assert.Equal(t, "19:00 - 20:00", plan[2].Time)
}

func TestGenerateMealPlan_Snacks(t *testing.T) {
	plan := GenerateMealPlan(profileWith(2000, 5))
	require.Len(t, plan, 5)

	breakfast := plan[0]
	assert.Equal(t, 400, breakfast.Calories)
	assert.Equal(t, 30, breakfast.Protein)
	assert.Equal(t, 40, breakfast.Carbs)
	assert.Equal(t, 13, breakfast.Fats)

	afternoon := plan[2]
	assert.Equal(t, "15:00 - 16:00", afternoon.Time)
	assert.Equal(t, 240, afternoon.Calories)
	assert.Equal(t, 18, afternoon.Protein)
	assert.Equal(t, 24, afternoon.Carbs)
	assert.Equal(t, 8, afternoon.Fats)

	late := plan[4]
	assert.Equal(t, "21:30 - 22:00", late.Time)
	assert.Equal(t, 200, late.Calories)
	assert.Equal(t, 15, late.Protein)
	assert.Equal(t, 12, late.Carbs)
	assert.Equal(t, 7, late.Fats)
}

func TestGenerateMealPlan_FourMealsAfternoonSnack(t *testing.T) {
	plan := GenerateMealPlan(profileWith(2000, 4))
	require.Len(t, plan, 4)

	assert.Equal(t, 500, plan[0].Calories)
	assert.Equal(t, 38, plan[0].Protein)
	assert.Equal(t, 50, plan[0].Carbs)
	assert.Equal(t, 17, plan[0].Fats)

	assert.Equal(t, 300, plan[2].Calories)
	assert.Equal(t, 23, plan[2].Protein)
	assert.Equal(t, 30, plan[2].Carbs)
	assert.Equal(t, 10, plan[2].Fats)
}

func TestGenerateMealPlan_Foods(t *testing.T) {
	t.Run("vegan has no animal protein", func(t *testing.T) {
		plan := GenerateMealPlan(profileWith(2000, 5, domain.RestrictionVegan))
		assert.Contains(t, plan[0].Foods, "Oat milk (200ml)")
		assert.Contains(t, plan[1].Foods, "Grilled tofu (100g)")
		assert.Contains(t, plan[3].Foods, "Chickpeas (100g)")
		assert.Equal(t, []string{"Plant milk (200ml)", "1 serving of berries"}, plan[4].Foods)
	})

	t.Run("vegan takes precedence over vegetarian", func(t *testing.T) {
		plan := GenerateMealPlan(profileWith(2000, 3, domain.RestrictionVegetarian, domain.RestrictionVegan))
		assert.Contains(t, plan[1].Foods, "Grilled tofu (100g)")
	})

	t.Run("gluten free swaps bread and rice", func(t *testing.T) {
		plan := GenerateMealPlan(profileWith(2000, 3, domain.RestrictionGluten))
		assert.Equal(t, "2 tapioca crepes", plan[0].Foods[0])
		assert.Equal(t, "150g brown rice", plan[1].Foods[0])
	})

	t.Run("lactose free omnivore", func(t *testing.T) {
		plan := GenerateMealPlan(profileWith(2000, 4, domain.RestrictionLactose))
		assert.Equal(t, "2 slices of whole-grain bread", plan[0].Foods[0])
		assert.Contains(t, plan[0].Foods, "30g lactose-free cheese")
		assert.Contains(t, plan[2].Foods, "Lactose-free yogurt")
		assert.Contains(t, plan[3].Foods, "150g fish or lean meat")
	})

	t.Run("vegetarian", func(t *testing.T) {
		plan := GenerateMealPlan(profileWith(2000, 3, domain.RestrictionVegetarian))
		assert.Contains(t, plan[0].Foods, "2 scrambled eggs with cheese")
		assert.Contains(t, plan[0].Foods, "Coffee with milk")
		assert.Contains(t, plan[2].Foods, "Cottage cheese")
	})
}
