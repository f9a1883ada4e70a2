package domain

// Sex selects the BMR formula branch
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Goal adjusts target calories relative to TDEE
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// ActivityLevel selects the TDEE multiplier
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "veryActive"
)

// WorkoutLocation selects which workout catalog a user sees
type WorkoutLocation string

const (
	LocationHome WorkoutLocation = "home"
	LocationGym  WorkoutLocation = "gym"
	LocationBoth WorkoutLocation = "both"
)

// DietaryRestriction is a tag chosen during onboarding
type DietaryRestriction string

const (
	RestrictionLactose    DietaryRestriction = "lactose"
	RestrictionGluten     DietaryRestriction = "gluten"
	RestrictionVegetarian DietaryRestriction = "vegetarian"
	RestrictionVegan      DietaryRestriction = "vegan"
	RestrictionNuts       DietaryRestriction = "nuts"
	RestrictionSeafood    DietaryRestriction = "seafood"
	RestrictionEggs       DietaryRestriction = "eggs"
	RestrictionSoy        DietaryRestriction = "soy"
	RestrictionNone       DietaryRestriction = "none"
)

// OnboardingAnswers represents the answers collected by the onboarding quiz
type OnboardingAnswers struct {
	Name                string               `json:"name" validate:"max=100"`
	Age                 int                  `json:"age" validate:"required,gt=0,lte=120"`
	Weight              float64              `json:"weight" validate:"required,gt=0,lte=400"`
	Height              float64              `json:"height" validate:"required,gt=0,lte=260"`
	Sex                 Sex                  `json:"sex" validate:"required,oneof=male female"`
	Goal                Goal                 `json:"goal" validate:"required,oneof=lose maintain gain"`
	ActivityLevel       ActivityLevel        `json:"activityLevel" validate:"omitempty,oneof=sedentary light moderate active veryActive"`
	WorkoutLocation     WorkoutLocation      `json:"workoutLocation" validate:"omitempty,oneof=home gym both"`
	DietaryRestrictions []DietaryRestriction `json:"dietaryRestrictions" validate:"omitempty,dive,oneof=lactose gluten vegetarian vegan nuts seafood eggs soy none"`
	Allergies           string               `json:"allergies,omitempty" validate:"max=500"`
	MealsPerDay         int                  `json:"mealsPerDay" validate:"required,min=3,max=6"`
}

// HasRestriction reports whether the given tag was selected
func (a OnboardingAnswers) HasRestriction(r DietaryRestriction) bool {
	for _, tag := range a.DietaryRestrictions {
		if tag == r {
			return true
		}
	}
	return false
}

// RestrictionTags returns the restriction set as plain strings, without "none"
func (a OnboardingAnswers) RestrictionTags() []string {
	tags := make([]string, 0, len(a.DietaryRestrictions))
	for _, r := range a.DietaryRestrictions {
		if r == RestrictionNone {
			continue
		}
		tags = append(tags, string(r))
	}
	return tags
}

// UserProfile is the onboarding answers plus the targets derived from them.
// Derived fields are a pure function of the answers.
type UserProfile struct {
	OnboardingAnswers
	BMR            int     `json:"bmr"`
	TDEE           int     `json:"tdee"`
	TargetCalories int     `json:"targetCalories" validate:"gt=0"`
	WaterGoal      int     `json:"waterGoal"`
	BMI            float64 `json:"bmi"`
}

// MealPlanEntry is one slot of a generated daily meal plan
type MealPlanEntry struct {
	Name     string   `json:"name"`
	Time     string   `json:"time"`
	Calories int      `json:"calories"`
	Protein  int      `json:"protein"`
	Carbs    int      `json:"carbs"`
	Fats     int      `json:"fats"`
	Foods    []string `json:"foods"`
}

// ProfileSummary is the onboarding result shown to the user
type ProfileSummary struct {
	Profile           UserProfile     `json:"profile"`
	MealPlan          []MealPlanEntry `json:"mealPlan"`
	BMICategory       string          `json:"bmiCategory"`
	GoalLabel         string          `json:"goalLabel"`
	ActivityLabel     string          `json:"activityLabel"`
	RestrictionsLabel string          `json:"restrictionsLabel"`
}
