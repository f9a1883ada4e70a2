package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Rrens/fitsmart/internal/domain"
	"github.com/Rrens/fitsmart/internal/nutrition"
	"github.com/Rrens/fitsmart/internal/workout"
)

const (
	defaultWaterGoal = 8
	glassML          = 250
	timeLabel        = "15:04"
)

// TrackerService keeps a device's daily counters in a key-value store
type TrackerService struct {
	store    domain.KeyValueStore
	profiles *ProfileService
	now      func() time.Time
}

// NewTrackerService creates a new tracker service
func NewTrackerService(store domain.KeyValueStore, profiles *ProfileService) *TrackerService {
	return &TrackerService{
		store:    store,
		profiles: profiles,
		now:      time.Now,
	}
}

func deviceKey(device uuid.UUID, key string) string {
	return device.String() + ":" + key
}

// load decodes the JSON value of key into v; it reports false when the key is absent
func (s *TrackerService) load(ctx context.Context, device uuid.UUID, key string, v any) (bool, error) {
	data, err := s.store.Get(ctx, deviceKey(device, key))
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (s *TrackerService) save(ctx context.Context, device uuid.UUID, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.store.Set(ctx, deviceKey(device, key), data)
}

func (s *TrackerService) loadInt(ctx context.Context, device uuid.UUID, key string) (int, error) {
	var n int
	if _, err := s.load(ctx, device, key, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// SaveProfile computes and stores the profile of a device
func (s *TrackerService) SaveProfile(ctx context.Context, device uuid.UUID, answers domain.OnboardingAnswers) (*domain.ProfileSummary, error) {
	profile, err := s.profiles.Compute(answers)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, device, domain.KeyProfile, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return summarize(*profile), nil
}

// Profile returns the stored profile or domain.ErrNotFound
func (s *TrackerService) Profile(ctx context.Context, device uuid.UUID) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	found, err := s.load(ctx, device, domain.KeyProfile, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return &profile, nil
}

// MealPlan generates the plan for the stored profile
func (s *TrackerService) MealPlan(ctx context.Context, device uuid.UUID) ([]domain.MealPlanEntry, error) {
	profile, err := s.Profile(ctx, device)
	if err != nil {
		return nil, err
	}
	return nutrition.GenerateMealPlan(*profile), nil
}

// Workouts lists the catalog for the stored workout location with today's completion flags.
// Devices without a profile see every workout.
func (s *TrackerService) Workouts(ctx context.Context, device uuid.UUID) ([]domain.WorkoutStatus, error) {
	location := domain.LocationBoth
	profile, err := s.Profile(ctx, device)
	switch {
	case err == nil:
		location = profile.WorkoutLocation
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	var completed []string
	if _, err := s.load(ctx, device, domain.KeyCompletedExercises, &completed); err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}

	catalog := workout.ForLocation(location)
	out := make([]domain.WorkoutStatus, 0, len(catalog))
	for _, w := range catalog {
		out = append(out, domain.WorkoutStatus{Workout: w, Completed: done[w.ID]})
	}
	return out, nil
}

// CompleteWorkout records a catalog workout once and adds its calories
func (s *TrackerService) CompleteWorkout(ctx context.Context, device uuid.UUID, workoutID string) (*domain.WorkoutSummary, error) {
	w, ok := workout.Find(workoutID)
	if !ok {
		return nil, domain.ErrNotFound
	}

	var completed []string
	if _, err := s.load(ctx, device, domain.KeyCompletedExercises, &completed); err != nil {
		return nil, err
	}
	burned, err := s.loadInt(ctx, device, domain.KeyTotalCaloriesBurned)
	if err != nil {
		return nil, err
	}

	for _, id := range completed {
		if id == workoutID {
			return &domain.WorkoutSummary{CompletedWorkouts: completed, TotalCaloriesBurned: burned}, nil
		}
	}

	completed = append(completed, workoutID)
	burned += w.Calories

	if err := s.save(ctx, device, domain.KeyCompletedExercises, completed); err != nil {
		return nil, err
	}
	if err := s.save(ctx, device, domain.KeyTotalCaloriesBurned, burned); err != nil {
		return nil, err
	}

	log.Debug().Str("device", device.String()).Str("workout", w.Name).Int("calories", w.Calories).Msg("Workout completed")
	return &domain.WorkoutSummary{CompletedWorkouts: completed, TotalCaloriesBurned: burned}, nil
}

// AddCustomWorkout adds the calories of a workout outside the catalog
func (s *TrackerService) AddCustomWorkout(ctx context.Context, device uuid.UUID, custom domain.CustomWorkout) (*domain.WorkoutSummary, error) {
	var completed []string
	if _, err := s.load(ctx, device, domain.KeyCompletedExercises, &completed); err != nil {
		return nil, err
	}
	burned, err := s.loadInt(ctx, device, domain.KeyTotalCaloriesBurned)
	if err != nil {
		return nil, err
	}

	burned += custom.Calories
	if err := s.save(ctx, device, domain.KeyTotalCaloriesBurned, burned); err != nil {
		return nil, err
	}

	if completed == nil {
		completed = []string{}
	}
	return &domain.WorkoutSummary{CompletedWorkouts: completed, TotalCaloriesBurned: burned}, nil
}

// AddWater logs amount glasses, defaulting to one
func (s *TrackerService) AddWater(ctx context.Context, device uuid.UUID, amount int) (*domain.Hydration, error) {
	if amount <= 0 {
		amount = 1
	}

	intake, err := s.loadInt(ctx, device, domain.KeyWaterIntake)
	if err != nil {
		return nil, err
	}
	var history []domain.WaterEntry
	if _, err := s.load(ctx, device, domain.KeyWaterHistory, &history); err != nil {
		return nil, err
	}

	now := s.now()
	intake += amount
	history = append(history, domain.WaterEntry{
		Amount:    amount,
		Time:      now.Format(timeLabel),
		Timestamp: now.UnixMilli(),
	})

	if err := s.save(ctx, device, domain.KeyWaterIntake, intake); err != nil {
		return nil, err
	}
	if err := s.save(ctx, device, domain.KeyWaterHistory, history); err != nil {
		return nil, err
	}

	return s.hydration(ctx, device, intake, history)
}

// RemoveWater takes back one glass and the last history entry; it is a no-op at zero
func (s *TrackerService) RemoveWater(ctx context.Context, device uuid.UUID) (*domain.Hydration, error) {
	intake, err := s.loadInt(ctx, device, domain.KeyWaterIntake)
	if err != nil {
		return nil, err
	}
	var history []domain.WaterEntry
	if _, err := s.load(ctx, device, domain.KeyWaterHistory, &history); err != nil {
		return nil, err
	}

	if intake > 0 {
		intake--
		if len(history) > 0 {
			history = history[:len(history)-1]
		}
		if err := s.save(ctx, device, domain.KeyWaterIntake, intake); err != nil {
			return nil, err
		}
		if err := s.save(ctx, device, domain.KeyWaterHistory, history); err != nil {
			return nil, err
		}
	}

	return s.hydration(ctx, device, intake, history)
}

// Hydration returns today's water intake against the profile's goal
func (s *TrackerService) Hydration(ctx context.Context, device uuid.UUID) (*domain.Hydration, error) {
	intake, err := s.loadInt(ctx, device, domain.KeyWaterIntake)
	if err != nil {
		return nil, err
	}
	var history []domain.WaterEntry
	if _, err := s.load(ctx, device, domain.KeyWaterHistory, &history); err != nil {
		return nil, err
	}
	return s.hydration(ctx, device, intake, history)
}

func (s *TrackerService) waterGoal(ctx context.Context, device uuid.UUID) (int, error) {
	profile, err := s.Profile(ctx, device)
	if errors.Is(err, domain.ErrNotFound) {
		return defaultWaterGoal, nil
	}
	if err != nil {
		return 0, err
	}
	if profile.WaterGoal <= 0 {
		return defaultWaterGoal, nil
	}
	return profile.WaterGoal, nil
}

func (s *TrackerService) hydration(ctx context.Context, device uuid.UUID, intake int, history []domain.WaterEntry) (*domain.Hydration, error) {
	goal, err := s.waterGoal(ctx, device)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []domain.WaterEntry{}
	}

	progress := percent(intake, goal)
	remaining := goal - intake
	if remaining < 0 {
		remaining = 0
	}

	return &domain.Hydration{
		Intake:    intake,
		Goal:      goal,
		Remaining: remaining,
		IntakeML:  intake * glassML,
		GoalML:    goal * glassML,
		Progress:  progress,
		Message:   HydrationMessage(progress),
		History:   history,
	}, nil
}

// HydrationMessage returns the motivational line for a progress percentage
func HydrationMessage(progress float64) string {
	switch {
	case progress <= 0:
		return "Let's get started! Drink your first glass of water."
	case progress < 25:
		return "Great start! Keep it up."
	case progress < 50:
		return "You're on the right track!"
	case progress < 75:
		return "More than halfway there! You can do it!"
	case progress < 100:
		return "Almost there! Just a little more to reach your goal!"
	default:
		return "Congratulations! Goal reached!"
	}
}

// Meals returns today's logged meals
func (s *TrackerService) Meals(ctx context.Context, device uuid.UUID) ([]domain.MealEntry, error) {
	meals := []domain.MealEntry{}
	if _, err := s.load(ctx, device, domain.KeyTodayMeals, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// LogMeal stores a manually entered meal
func (s *TrackerService) LogMeal(ctx context.Context, device uuid.UUID, meal domain.MealCreate) (*domain.MealEntry, error) {
	return s.appendMeal(ctx, device, domain.MealEntry{
		Name:     meal.Name,
		Calories: meal.Calories,
		Protein:  meal.Protein,
		Carbs:    meal.Carbs,
		Fats:     meal.Fats,
	})
}

// LogAnalyzedMeal stores the result of a photo analysis with the original image
func (s *TrackerService) LogAnalyzedMeal(ctx context.Context, device uuid.UUID, result *domain.MealAnalysisResult, image string) (*domain.MealEntry, error) {
	return s.appendMeal(ctx, device, domain.MealEntry{
		Name:         result.FoodName,
		Calories:     result.Calories,
		Protein:      result.Protein,
		Carbs:        result.Carbs,
		Fats:         result.Fats,
		ImageURL:     image,
		AnalyzedByAI: true,
	})
}

func (s *TrackerService) appendMeal(ctx context.Context, device uuid.UUID, entry domain.MealEntry) (*domain.MealEntry, error) {
	meals, err := s.Meals(ctx, device)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entry.ID = now.UnixMilli()
	// Ids are millisecond timestamps; keep them unique within a burst.
	if n := len(meals); n > 0 && meals[n-1].ID >= entry.ID {
		entry.ID = meals[n-1].ID + 1
	}
	entry.Time = now.Format(timeLabel)

	meals = append(meals, entry)
	if err := s.save(ctx, device, domain.KeyTodayMeals, meals); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteMeal removes a logged meal by id
func (s *TrackerService) DeleteMeal(ctx context.Context, device uuid.UUID, mealID int64) error {
	meals, err := s.Meals(ctx, device)
	if err != nil {
		return err
	}

	for i, m := range meals {
		if m.ID == mealID {
			meals = append(meals[:i], meals[i+1:]...)
			return s.save(ctx, device, domain.KeyTodayMeals, meals)
		}
	}
	return domain.ErrNotFound
}

// Progress builds the dashboard view; it requires a stored profile
func (s *TrackerService) Progress(ctx context.Context, device uuid.UUID) (*domain.DailyProgress, error) {
	profile, err := s.Profile(ctx, device)
	if err != nil {
		return nil, err
	}
	meals, err := s.Meals(ctx, device)
	if err != nil {
		return nil, err
	}
	burned, err := s.loadInt(ctx, device, domain.KeyTotalCaloriesBurned)
	if err != nil {
		return nil, err
	}
	water, err := s.loadInt(ctx, device, domain.KeyWaterIntake)
	if err != nil {
		return nil, err
	}
	var completed []string
	if _, err := s.load(ctx, device, domain.KeyCompletedExercises, &completed); err != nil {
		return nil, err
	}

	var consumed domain.MacroTotals
	for _, m := range meals {
		consumed.Calories += m.Calories
		consumed.Protein += m.Protein
		consumed.Carbs += m.Carbs
		consumed.Fats += m.Fats
	}

	waterGoal := profile.WaterGoal
	if waterGoal <= 0 {
		waterGoal = defaultWaterGoal
	}

	return &domain.DailyProgress{
		Name:              profile.Name,
		TargetCalories:    profile.TargetCalories,
		Consumed:          consumed,
		CaloriesBurned:    burned,
		CaloriesRemaining: profile.TargetCalories - consumed.Calories + burned,
		CaloriesProgress:  percent(consumed.Calories, profile.TargetCalories),
		WaterIntake:       water,
		WaterGoal:         waterGoal,
		WaterProgress:     percent(water, waterGoal),
		WorkoutsCompleted: len(completed),
		MealsLogged:       len(meals),
		BMI:               profile.BMI,
		BMICategory:       nutrition.BMICategory(profile.BMI),
		BMR:               profile.BMR,
		Goal:              nutrition.GoalLabel(profile.Goal),
		ActivityLevel:     nutrition.ActivityLabel(profile.ActivityLevel),
		Restrictions:      nutrition.RestrictionLabels(profile.DietaryRestrictions),
	}, nil
}

// Reset deletes every key stored for the device
func (s *TrackerService) Reset(ctx context.Context, device uuid.UUID) error {
	keys := make([]string, 0, len(domain.TrackerKeys))
	for _, k := range domain.TrackerKeys {
		keys = append(keys, deviceKey(device, k))
	}
	return s.store.Delete(ctx, keys...)
}

// percent returns part/total as a percentage with one decimal
func percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

