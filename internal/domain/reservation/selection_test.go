//go:build unit

package reservation_test

import (
	"encoding/json"
	"testing"

	"homeclean-booking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionSelection_Toggle(t *testing.T) {
	s := reservation.NewOptionSelection()

	s.Toggle("FRIDGE")
	s.Toggle("WINDOW")
	assert.Equal(t, []string{"FRIDGE", "WINDOW"}, s.IDs())
	assert.Equal(t, 1, s.Count("WINDOW"))

	s.Toggle("FRIDGE")
	assert.Equal(t, []string{"WINDOW"}, s.IDs())
	assert.False(t, s.Has("FRIDGE"))

	// re-selecting appends at the end with a fresh count
	require.True(t, s.SetCount("WINDOW", 3, 5))
	s.Toggle("WINDOW")
	s.Toggle("WINDOW")
	assert.Equal(t, 1, s.Count("WINDOW"))
}

func TestOptionSelection_SetCount(t *testing.T) {
	testCases := []struct {
		name     string
		id       string
		count    int
		accepted bool
		expected int
	}{
		{name: "within range", id: "WINDOW", count: 3, accepted: true, expected: 3},
		{name: "lower bound", id: "WINDOW", count: 1, accepted: true, expected: 1},
		{name: "upper bound", id: "WINDOW", count: 5, accepted: true, expected: 5},
		{name: "zero is ignored", id: "WINDOW", count: 0, accepted: false, expected: 2},
		{name: "above max is ignored", id: "WINDOW", count: 6, accepted: false, expected: 2},
		{name: "unselected option is ignored", id: "BATHROOM", count: 2, accepted: false, expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := reservation.NewOptionSelection()
			s.Toggle("WINDOW")
			require.True(t, s.SetCount("WINDOW", 2, 5))

			assert.Equal(t, tc.accepted, s.SetCount(tc.id, tc.count, 5))
			assert.Equal(t, tc.expected, s.Count(tc.id))
		})
	}
}

func TestRestoreOptionSelection(t *testing.T) {
	s := reservation.RestoreOptionSelection([]reservation.SelectedOption{
		{ID: "WINDOW", Count: 3},
		{ID: "FRIDGE", Count: 0},
		{ID: "WINDOW", Count: 5},
		{ID: "", Count: 2},
	})

	assert.Equal(t, []reservation.SelectedOption{
		{ID: "WINDOW", Count: 3},
		{ID: "FRIDGE", Count: 1},
	}, s.Items())
}

func TestOptionSelection_JSON(t *testing.T) {
	s := reservation.NewOptionSelection()
	s.Toggle("BATHROOM")
	s.Toggle("FRIDGE")
	require.True(t, s.SetCount("BATHROOM", 2, 5))

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"BATHROOM","count":2},{"id":"FRIDGE","count":1}]`, string(data))

	var restored reservation.OptionSelection
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.True(t, s.Equal(restored))
}
