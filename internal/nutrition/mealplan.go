package nutrition

import (
	"math"

	"github.com/Rrens/fitsmart/internal/domain"
)

const (
	defaultMealsPerDay = 3

	proteinShare = 0.30
	carbsShare   = 0.40
	fatsShare    = 0.30

	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9

	afternoonSnackFactor = 0.6
	lateSnackFactor      = 0.5
	lateSnackCarbsFactor = 0.3
)

type slot int

const (
	slotBreakfast slot = iota
	slotLunch
	slotAfternoonSnack
	slotDinner
	slotLateSnack
)

var slotNames = map[slot]string{
	slotBreakfast:      "Breakfast",
	slotLunch:          "Lunch",
	slotAfternoonSnack: "Afternoon snack",
	slotDinner:         "Dinner",
	slotLateSnack:      "Late-night snack",
}

var slotTimes = map[slot]string{
	slotBreakfast:      "07:00 - 08:00",
	slotLunch:          "12:00 - 13:00",
	slotAfternoonSnack: "15:00 - 16:00",
	slotDinner:         "19:00 - 20:00",
	slotLateSnack:      "21:30 - 22:00",
}

type portion struct {
	calories int
	protein  int
	carbs    int
	fats     int
}

func (p portion) scale(factor, carbsFactor float64) portion {
	return portion{
		calories: int(math.Round(float64(p.calories) * factor)),
		protein:  int(math.Round(float64(p.protein) * factor)),
		carbs:    int(math.Round(float64(p.carbs) * carbsFactor)),
		fats:     int(math.Round(float64(p.fats) * factor)),
	}
}

// GenerateMealPlan splits the profile's target calories into daily meal slots.
// Three meals give breakfast, lunch and dinner; four add an afternoon snack
// and five or more add a late-night snack.
func GenerateMealPlan(profile domain.UserProfile) []domain.MealPlanEntry {
	mealsPerDay := profile.MealsPerDay
	if mealsPerDay <= 0 {
		mealsPerDay = defaultMealsPerDay
	}

	target := float64(profile.TargetCalories)
	n := float64(mealsPerDay)
	main := portion{
		calories: int(math.Round(target / n)),
		protein:  int(math.Round(target * proteinShare / kcalPerGramProtein / n)),
		carbs:    int(math.Round(target * carbsShare / kcalPerGramCarbs / n)),
		fats:     int(math.Round(target * fatsShare / kcalPerGramFat / n)),
	}

	flags := dietFlagsFor(profile.OnboardingAnswers)

	slots := []slot{slotBreakfast, slotLunch}
	if mealsPerDay >= 4 {
		slots = append(slots, slotAfternoonSnack)
	}
	slots = append(slots, slotDinner)
	if mealsPerDay >= 5 {
		slots = append(slots, slotLateSnack)
	}

	plan := make([]domain.MealPlanEntry, 0, len(slots))
	for _, s := range slots {
		p := main
		switch s {
		case slotAfternoonSnack:
			p = main.scale(afternoonSnackFactor, afternoonSnackFactor)
		case slotLateSnack:
			p = main.scale(lateSnackFactor, lateSnackCarbsFactor)
		}
		plan = append(plan, domain.MealPlanEntry{
			Name:     slotNames[s],
			Time:     slotTimes[s],
			Calories: p.calories,
			Protein:  p.protein,
			Carbs:    p.carbs,
			Fats:     p.fats,
			Foods:    foodsFor(s, flags),
		})
	}
	return plan
}
