package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Rrens/fitsmart/internal/domain"
	"github.com/Rrens/fitsmart/internal/repository/memory"
)

var fixedNow = time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)

func newTestTracker(store domain.KeyValueStore) *TrackerService {
	svc := NewTrackerService(store, NewProfileService())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func testAnswers() domain.OnboardingAnswers {
	return domain.OnboardingAnswers{
		Name:            "Ana",
		Age:             25,
		Weight:          70,
		Height:          170,
		Sex:             domain.SexMale,
		Goal:            domain.GoalLose,
		ActivityLevel:   domain.ActivityModerate,
		WorkoutLocation: domain.LocationGym,
		MealsPerDay:     4,
	}
}

func TestTrackerService_Profile(t *testing.T) {
	ctx := context.Background()
	svc := newTestTracker(memory.NewStore())
	device := uuid.New()

	_, err := svc.Profile(ctx, device)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	summary, err := svc.SaveProfile(ctx, device, testAnswers())
	require.NoError(t, err)
	assert.Equal(t, 2135, summary.Profile.TargetCalories)
	assert.Len(t, summary.MealPlan, 4)
	assert.Equal(t, "Normal weight", summary.BMICategory)

	profile, err := svc.Profile(ctx, device)
	require.NoError(t, err)
	assert.Equal(t, summary.Profile, *profile)

	plan, err := svc.MealPlan(ctx, device)
	require.NoError(t, err)
	assert.Equal(t, summary.MealPlan, plan)

	_, err = svc.Profile(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTrackerService_SaveProfile_Invalid(t *testing.T) {
	svc := newTestTracker(memory.NewStore())
	a := testAnswers()
	a.Weight = 0

	_, err := svc.SaveProfile(context.Background(), uuid.New(), a)
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)
}

func TestTrackerService_Workouts(t *testing.T) {
	ctx := context.Background()
	svc := newTestTracker(memory.NewStore())
	device := uuid.New()

	all, err := svc.Workouts(ctx, device)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	_, err = svc.SaveProfile(ctx, device, testAnswers())
	require.NoError(t, err)

	summary, err := svc.CompleteWorkout(ctx, device, "4")
	require.NoError(t, err)
	assert.Equal(t, 350, summary.TotalCaloriesBurned)

	// completing twice does not add calories again
	summary, err = svc.CompleteWorkout(ctx, device, "4")
	require.NoError(t, err)
	assert.Equal(t, 350, summary.TotalCaloriesBurned)
	assert.Equal(t, []string{"4"}, summary.CompletedWorkouts)

	gym, err := svc.Workouts(ctx, device)
	require.NoError(t, err)
	require.Len(t, gym, 3)
	assert.True(t, gym[0].Completed)
	assert.False(t, gym[1].Completed)

	_, err = svc.CompleteWorkout(ctx, device, "99")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	summary, err = svc.AddCustomWorkout(ctx, device, domain.CustomWorkout{Name: "Run", Duration: "30 min", Calories: 280})
	require.NoError(t, err)
	assert.Equal(t, 630, summary.TotalCaloriesBurned)
	assert.Equal(t, []string{"4"}, summary.CompletedWorkouts)
}

func TestTrackerService_Water(t *testing.T) {
	ctx := context.Background()
	svc := newTestTracker(memory.NewStore())
	device := uuid.New()

	h, err := svc.Hydration(ctx, device)
	require.NoError(t, err)
	assert.Equal(t, 8, h.Goal)
	assert.Equal(t, 0, h.Intake)
	assert.Equal(t, HydrationMessage(0), h.Message)
	assert.NotNil(t, h.History)

	// removing at zero is a no-op
	h, err = svc.RemoveWater(ctx, device)
	require.NoError(t, err)
	assert.Equal(t, 0, h.Intake)

	_, err = svc.SaveProfile(ctx, device, testAnswers())
	require.NoError(t, err)

	h, err = svc.AddWater(ctx, device, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Intake)
	assert.Equal(t, 10, h.Goal)

	h, err = svc.AddWater(ctx, device, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, h.Intake)
	assert.Equal(t, 1250, h.IntakeML)
	assert.Equal(t, 2500, h.GoalML)
	assert.Equal(t, 5, h.Remaining)
	assert.Equal(t, 50.0, h.Progress)
	require.Len(t, h.History, 2)
	assert.Equal(t, domain.WaterEntry{Amount: 4, Time: "12:30", Timestamp: fixedNow.UnixMilli()}, h.History[1])

	h, err = svc.RemoveWater(ctx, device)
	require.NoError(t, err)
	assert.Equal(t, 4, h.Intake)
	assert.Len(t, h.History, 1)
}

func TestHydrationMessage(t *testing.T) {
	stages := []float64{0, 10, 30, 60, 90, 100, 140}
	seen := make(map[string]bool)
	for _, p := range stages[:6] {
		seen[HydrationMessage(p)] = true
	}
	assert.Len(t, seen, 6)
	assert.Equal(t, HydrationMessage(100), HydrationMessage(140))
	assert.Equal(t, "Congratulations! Goal reached!", HydrationMessage(stages[6]))
}

func TestTrackerService_Meals(t *testing.T) {
	ctx := context.Background()
	svc := newTestTracker(memory.NewStore())
	device := uuid.New()

	meals, err := svc.Meals(ctx, device)
	require.NoError(t, err)
	assert.Empty(t, meals)

	manual, err := svc.LogMeal(ctx, device, domain.MealCreate{Name: "Oatmeal", Calories: 300, Protein: 10, Carbs: 50, Fats: 6})
	require.NoError(t, err)
	assert.Equal(t, fixedNow.UnixMilli(), manual.ID)
	assert.Equal(t, "12:30", manual.Time)
	assert.False(t, manual.AnalyzedByAI)

	analyzed, err := svc.LogAnalyzedMeal(ctx, device, &domain.MealAnalysisResult{
		FoodName: "Rice and chicken", Calories: 515, Protein: 46, Carbs: 60, Fats: 9,
	}, "data:image/jpeg;base64,AAAA")
	require.NoError(t, err)
	assert.True(t, analyzed.AnalyzedByAI)
	assert.Equal(t, "data:image/jpeg;base64,AAAA", analyzed.ImageURL)
	assert.Equal(t, manual.ID+1, analyzed.ID)

	meals, err = svc.Meals(ctx, device)
	require.NoError(t, err)
	assert.Len(t, meals, 2)

	require.NoError(t, svc.DeleteMeal(ctx, device, manual.ID))
	assert.ErrorIs(t, svc.DeleteMeal(ctx, device, manual.ID), domain.ErrNotFound)

	meals, err = svc.Meals(ctx, device)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "Rice and chicken", meals[0].Name)
}

func TestTrackerService_Progress(t *testing.T) {
	ctx := context.Background()
	svc := newTestTracker(memory.NewStore())
	device := uuid.New()

	_, err := svc.Progress(ctx, device)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.SaveProfile(ctx, device, testAnswers())
	require.NoError(t, err)
	_, err = svc.LogMeal(ctx, device, domain.MealCreate{Name: "Lunch", Calories: 800, Protein: 40, Carbs: 90, Fats: 25})
	require.NoError(t, err)
	_, err = svc.CompleteWorkout(ctx, device, "6")
	require.NoError(t, err)
	_, err = svc.AddWater(ctx, device, 3)
	require.NoError(t, err)

	p, err := svc.Progress(ctx, device)
	require.NoError(t, err)

	assert.Equal(t, 2135, p.TargetCalories)
	assert.Equal(t, 800, p.Consumed.Calories)
	assert.Equal(t, 40, p.Consumed.Protein)
	assert.Equal(t, 400, p.CaloriesBurned)
	assert.Equal(t, 2135-800+400, p.CaloriesRemaining)
	assert.Equal(t, 37.5, p.CaloriesProgress)
	assert.Equal(t, 3, p.WaterIntake)
	assert.Equal(t, 30.0, p.WaterProgress)
	assert.Equal(t, 1, p.WorkoutsCompleted)
	assert.Equal(t, 1, p.MealsLogged)
	assert.Equal(t, "Lose weight", p.Goal)
	assert.Equal(t, "Moderately active", p.ActivityLevel)
	assert.Equal(t, "No restrictions", p.Restrictions)
}

func TestTrackerService_Reset(t *testing.T) {
	store := new(MockKeyValueStore)
	svc := newTestTracker(store)
	device := uuid.New()
	ctx := context.Background()

	store.On("Delete", ctx, mock.MatchedBy(func(keys []string) bool {
		return len(keys) == len(domain.TrackerKeys) && keys[0] == device.String()+":"+domain.KeyProfile
	})).Return(nil)

	require.NoError(t, svc.Reset(ctx, device))
	store.AssertExpectations(t)
}

func TestTrackerService_StoreErrors(t *testing.T) {
	store := new(MockKeyValueStore)
	svc := newTestTracker(store)
	ctx := context.Background()
	boom := errors.New("redis down")

	store.On("Get", ctx, mock.Anything).Return(nil, boom)

	_, err := svc.Hydration(ctx, uuid.New())
	assert.ErrorIs(t, err, boom)

	_, err = svc.Progress(ctx, uuid.New())
	assert.ErrorIs(t, err, boom)
}

func TestTrackerService_CorruptValue(t *testing.T) {
	store := new(MockKeyValueStore)
	svc := newTestTracker(store)
	ctx := context.Background()

	store.On("Get", ctx, mock.Anything).Return([]byte("not json"), nil)

	_, err := svc.Meals(ctx, uuid.New())
	assert.ErrorContains(t, err, "failed to decode")
}
