package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_get_infiltration(t *testing.T) {
	building, err := NewBuilding(2.0, 800.0, StoryOne, InsidePressureBalanced)
	require.NoError(t, err)

	// ach = 0.022 * 2.0 * sqrt(8) = 0.12445, times 800 m3 over an hour
	assert.InDelta(t, 0.0331866, building.get_infiltration(24.0, 32.0), 1e-6)
}

func Test_get_infiltration_clamps_at_zero(t *testing.T) {
	building, err := NewBuilding(2.0, 800.0, StoryTwo, InsidePressureNegative)
	require.NoError(t, err)

	// small temperature difference, pressurisation term dominates
	assert.Equal(t, 0.0, building.get_infiltration(24.0, 24.5))
}

func Test_get_infiltration_no_temperature_difference(t *testing.T) {
	building, err := NewBuilding(2.0, 800.0, StoryOne, InsidePressurePositive)
	require.NoError(t, err)

	assert.Equal(t, 0.0, building.get_infiltration(24.0, 24.0))
}

func Test_new_building_validation(t *testing.T) {
	_, err := NewBuilding(-1.0, 800.0, StoryOne, InsidePressureBalanced)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewBuilding(2.0, 0.0, StoryOne, InsidePressureBalanced)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func Test_story_from_int(t *testing.T) {
	story, err := StoryFromInt(2)
	require.NoError(t, err)
	assert.Equal(t, StoryTwo, story)

	_, err = StoryFromInt(3)
	assert.Error(t, err)
}

func Test_inside_pressure_from_string(t *testing.T) {
	ip, err := InsidePressureFromString("negative")
	require.NoError(t, err)
	assert.Equal(t, InsidePressureNegative, ip)
	assert.Equal(t, "negative", ip.String())

	_, err = InsidePressureFromString("vacuum")
	assert.Error(t, err)
}
