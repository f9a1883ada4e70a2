package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rrens/fitsmart/internal/domain"
)

func ids(ws []domain.Workout) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.ID)
	}
	return out
}

func TestForLocation(t *testing.T) {
	tests := []struct {
		location domain.WorkoutLocation
		expected []string
	}{
		{domain.LocationHome, []string{"1", "2", "3"}},
		{domain.LocationGym, []string{"4", "5", "6"}},
		{domain.LocationBoth, []string{"1", "2", "3", "4", "5", "6"}},
		{"", []string{"1", "2", "3", "4", "5", "6"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.location), func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(ForLocation(tt.location)))
		})
	}
}

func TestForLocation_DoesNotAliasCatalog(t *testing.T) {
	list := ForLocation(domain.LocationHome)
	list[0].Name = "changed"

	w, ok := Find("1")
	require.True(t, ok)
	assert.Equal(t, "HIIT Beginner", w.Name)
}

func TestFind(t *testing.T) {
	w, ok := Find("6")
	require.True(t, ok)
	assert.Equal(t, "Legs", w.Name)
	assert.Equal(t, 400, w.Calories)
	assert.Len(t, w.Exercises, 5)

	_, ok = Find("42")
	assert.False(t, ok)
}
