package domain

// Exercise is one step of a guided workout
type Exercise struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Rest     string `json:"rest"`
	Video    string `json:"video"`
}

// Workout is a catalog routine
type Workout struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Duration  string          `json:"duration"`
	Calories  int             `json:"calories"`
	Level     string          `json:"level"`
	Location  WorkoutLocation `json:"location"`
	Exercises []Exercise      `json:"exercises"`
}

// WorkoutStatus is a catalog workout with today's completion flag
type WorkoutStatus struct {
	Workout
	Completed bool `json:"completed"`
}

// CustomWorkout represents a workout logged outside the catalog
type CustomWorkout struct {
	Name     string `json:"name" validate:"required,max=200"`
	Duration string `json:"duration" validate:"required,max=50"`
	Calories int    `json:"calories" validate:"required,gt=0,lte=5000"`
}

// WorkoutSummary is the tracker state after a workout was recorded
type WorkoutSummary struct {
	CompletedWorkouts   []string `json:"completedWorkouts"`
	TotalCaloriesBurned int      `json:"totalCaloriesBurned"`
}
