package domain

import "context"

// KeyValueStore holds per-device tracker state.
// Get returns ErrNotFound when the key is absent.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

// Tracker keys
const (
	KeyProfile             = "profile"
	KeyTotalCaloriesBurned = "totalCaloriesBurned"
	KeyCompletedExercises  = "completedExercises"
	KeyWaterIntake         = "waterIntake"
	KeyWaterHistory        = "waterHistory"
	KeyTodayMeals          = "todayMeals"
)

// TrackerKeys lists every key stored per device
var TrackerKeys = []string{
	KeyProfile,
	KeyTotalCaloriesBurned,
	KeyCompletedExercises,
	KeyWaterIntake,
	KeyWaterHistory,
	KeyTodayMeals,
}

// WaterEntry is one logged intake of water
type WaterEntry struct {
	Amount    int    `json:"amount"`
	Time      string `json:"time"`
	Timestamp int64  `json:"timestamp"`
}

// WaterAdd represents a water intake request in 250ml glasses
type WaterAdd struct {
	Amount int `json:"amount" validate:"omitempty,min=1,max=20"`
}

// Hydration summarizes today's water intake
type Hydration struct {
	Intake    int          `json:"intake"`
	Goal      int          `json:"goal"`
	Remaining int          `json:"remaining"`
	IntakeML  int          `json:"intakeMl"`
	GoalML    int          `json:"goalMl"`
	Progress  float64      `json:"progress"`
	Message   string       `json:"message"`
	History   []WaterEntry `json:"history"`
}

// MacroTotals sums the macros of logged meals
type MacroTotals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
}

// DailyProgress is the dashboard view of a device's day
type DailyProgress struct {
	Name              string      `json:"name"`
	TargetCalories    int         `json:"targetCalories"`
	Consumed          MacroTotals `json:"consumed"`
	CaloriesBurned    int         `json:"caloriesBurned"`
	CaloriesRemaining int         `json:"caloriesRemaining"`
	CaloriesProgress  float64     `json:"caloriesProgress"`
	WaterIntake       int         `json:"waterIntake"`
	WaterGoal         int         `json:"waterGoal"`
	WaterProgress     float64     `json:"waterProgress"`
	WorkoutsCompleted int         `json:"workoutsCompleted"`
	MealsLogged       int         `json:"mealsLogged"`
	BMI               float64     `json:"bmi"`
	BMICategory       string      `json:"bmiCategory"`
	BMR               int         `json:"bmr"`
	Goal              string      `json:"goal"`
	ActivityLevel     string      `json:"activityLevel"`
	Restrictions      string      `json:"restrictions"`
}
