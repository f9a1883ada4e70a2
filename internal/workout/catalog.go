// Package workout holds the static catalog of guided workouts.
package workout

import "github.com/Rrens/fitsmart/internal/domain"

const videoBase = "https://www.youtube.com/embed/"

var homeWorkouts = []domain.Workout{
	{
		ID:       "1",
		Name:     "HIIT Beginner",
		Duration: "20 min",
		Calories: 180,
		Level:    "Beginner",
		Location: domain.LocationHome,
		Exercises: []domain.Exercise{
			{Name: "Jumping jacks", Duration: "30s", Rest: "15s", Video: videoBase + "c4DAnQ6DtF8"},
			{Name: "Squats", Duration: "30s", Rest: "15s", Video: videoBase + "aclHkVaku9U"},
			{Name: "Knee push-ups", Duration: "30s", Rest: "15s", Video: videoBase + "jWxvty2KROs"},
			{Name: "Mountain climbers", Duration: "30s", Rest: "15s", Video: videoBase + "nmwgirgXLYM"},
			{Name: "Plank", Duration: "30s", Rest: "30s", Video: videoBase + "ASdvN_XEl_c"},
		},
	},
	{
		ID:       "2",
		Name:     "Bodyweight Strength",
		Duration: "30 min",
		Calories: 250,
		Level:    "Intermediate",
		Location: domain.LocationHome,
		Exercises: []domain.Exercise{
			{Name: "Bulgarian split squat", Duration: "45s", Rest: "20s", Video: videoBase + "2C-uSaDJZnI"},
			{Name: "Diamond push-ups", Duration: "45s", Rest: "20s", Video: videoBase + "J0DnG1_S92I"},
			{Name: "Alternating lunges", Duration: "45s", Rest: "20s", Video: videoBase + "QOVaHwm-Q6U"},
			{Name: "Side plank", Duration: "30s each side", Rest: "20s", Video: videoBase + "K2VljzCC16g"},
			{Name: "Burpees", Duration: "45s", Rest: "30s", Video: videoBase + "TU8QYVW0gDU"},
		},
	},
	{
		ID:       "3",
		Name:     "Intense Cardio",
		Duration: "25 min",
		Calories: 300,
		Level:    "Advanced",
		Location: domain.LocationHome,
		Exercises: []domain.Exercise{
			{Name: "Burpees", Duration: "60s", Rest: "15s", Video: videoBase + "TU8QYVW0gDU"},
			{Name: "High knees", Duration: "60s", Rest: "15s", Video: videoBase + "8opcQdC-V-U"},
			{Name: "Jump squats", Duration: "60s", Rest: "15s", Video: videoBase + "CVaEhXotL7M"},
			{Name: "Mountain climbers", Duration: "60s", Rest: "15s", Video: videoBase + "nmwgirgXLYM"},
			{Name: "Jumping jacks", Duration: "60s", Rest: "30s", Video: videoBase + "c4DAnQ6DtF8"},
		},
	},
}

var gymWorkouts = []domain.Workout{
	{
		ID:       "4",
		Name:     "Chest & Triceps",
		Duration: "45 min",
		Calories: 350,
		Level:    "Intermediate",
		Location: domain.LocationGym,
		Exercises: []domain.Exercise{
			{Name: "Bench press", Duration: "4x12", Rest: "60s", Video: videoBase + "rT7DgCr-3pg"},
			{Name: "Incline bench press", Duration: "4x10", Rest: "60s", Video: videoBase + "SrqOu55lrYU"},
			{Name: "Dumbbell flyes", Duration: "3x12", Rest: "45s", Video: videoBase + "eozdVDA78K0"},
			{Name: "Skull crushers", Duration: "3x12", Rest: "45s", Video: videoBase + "d_KZxkY_0cM"},
			{Name: "Rope pushdown", Duration: "3x15", Rest: "45s", Video: videoBase + "2-LAMcpzODU"},
		},
	},
	{
		ID:       "5",
		Name:     "Back & Biceps",
		Duration: "45 min",
		Calories: 350,
		Level:    "Intermediate",
		Location: domain.LocationGym,
		Exercises: []domain.Exercise{
			{Name: "Pull-ups", Duration: "4x8", Rest: "90s", Video: videoBase + "eGo4IYlbE5g"},
			{Name: "Bent-over row", Duration: "4x10", Rest: "60s", Video: videoBase + "FWJR5Ve8bnQ"},
			{Name: "Lat pulldown", Duration: "3x12", Rest: "45s", Video: videoBase + "CAwf7n6Luuc"},
			{Name: "Barbell curl", Duration: "3x12", Rest: "45s", Video: videoBase + "ykJmrZ5v0Oo"},
			{Name: "Hammer curl", Duration: "3x12", Rest: "45s", Video: videoBase + "zC3nLlEvin4"},
		},
	},
	{
		ID:       "6",
		Name:     "Legs",
		Duration: "50 min",
		Calories: 400,
		Level:    "Advanced",
		Location: domain.LocationGym,
		Exercises: []domain.Exercise{
			{Name: "Back squat", Duration: "4x10", Rest: "90s", Video: videoBase + "ultWZbUMPL8"},
			{Name: "Leg press", Duration: "4x12", Rest: "60s", Video: videoBase + "IZxyjW7MPJQ"},
			{Name: "Leg extension", Duration: "3x15", Rest: "45s", Video: videoBase + "YyvSfVjQeL0"},
			{Name: "Leg curl", Duration: "3x15", Rest: "45s", Video: videoBase + "1Tq3QdYUuHs"},
			{Name: "Standing calf raise", Duration: "4x20", Rest: "45s", Video: videoBase + "gwLzBJYoWlI"},
		},
	},
}

// ForLocation returns the workouts available at the location.
// Anything other than home or gym gets both lists.
func ForLocation(location domain.WorkoutLocation) []domain.Workout {
	switch location {
	case domain.LocationHome:
		return clone(homeWorkouts)
	case domain.LocationGym:
		return clone(gymWorkouts)
	default:
		return append(clone(homeWorkouts), gymWorkouts...)
	}
}

// Find looks up a catalog workout by id
func Find(id string) (domain.Workout, bool) {
	for _, list := range [][]domain.Workout{homeWorkouts, gymWorkouts} {
		for _, w := range list {
			if w.ID == id {
				return w, true
			}
		}
	}
	return domain.Workout{}, false
}

func clone(src []domain.Workout) []domain.Workout {
	out := make([]domain.Workout, len(src))
	copy(out, src)
	return out
}
