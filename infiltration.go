package main

import (
	"fmt"
	"math"
)

// Number of storeys of the building (capped at two).
type Story int

const (
	StoryOne Story = 1
	StoryTwo Story = 2
)

func StoryFromInt(s int) (Story, error) {
	switch s {
	case 1:
		return StoryOne, nil
	case 2:
		return StoryTwo, nil
	default:
		return 0, fmt.Errorf("%w: story %d not in {1, 2}", ErrInvalidParameter, s)
	}
}

// Pressure regime of the conditioned space relative to outdoors,
// set by the ventilation layout.
type InsidePressure int

const (
	InsidePressurePositive InsidePressure = iota
	InsidePressureNegative
	InsidePressureBalanced
)

func (ip InsidePressure) String() string {
	return [...]string{"positive", "negative", "balanced"}[ip]
}

func InsidePressureFromString(s string) (InsidePressure, error) {
	ip, ok := map[string]InsidePressure{
		"positive": InsidePressurePositive,
		"negative": InsidePressureNegative,
		"balanced": InsidePressureBalanced,
	}[s]
	if !ok {
		return 0, fmt.Errorf("%w: inside pressure %q not in {positive, negative, balanced}", ErrInvalidParameter, s)
	}
	return ip, nil
}

// Leakage description of the building, for scenarios where the
// infiltration mass flow rate is estimated instead of measured.
type Building struct {
	c_value         float64 // equivalent leakage area, cm2/m2
	volume          float64 // conditioned air volume, m3
	story           Story
	inside_pressure InsidePressure
}

func NewBuilding(c_value, volume float64, story Story, inside_pressure InsidePressure) (Building, error) {
	if c_value < 0.0 {
		return Building{}, fmt.Errorf("%w: equivalent leakage area c_value = %g must not be negative", ErrInvalidParameter, c_value)
	}
	if volume <= 0.0 {
		return Building{}, fmt.Errorf("%w: conditioned volume = %g must be positive", ErrInvalidParameter, volume)
	}

	return Building{
		c_value:         c_value,
		volume:          volume,
		story:           story,
		inside_pressure: inside_pressure,
	}, nil
}

/*
Infiltration dry air mass flow rate of the zone, from a regression of
the pressure balance of a leaky residential building on the indoor to
outdoor temperature difference.

    Args:
        theta_r: indoor air temperature, degree C
        theta_o: outdoor air temperature, degree C

    Returns:
        infiltration dry air mass flow rate, kg/s
*/
func (self Building) get_infiltration(theta_r, theta_o float64) float64 {
	delta_theta := math.Abs(theta_r - theta_o)

	// air change coefficient, 1/(h (cm2/m2 K^0.5))
	a := map[Story]float64{
		StoryOne: 0.022,
		StoryTwo: 0.020,
	}[self.story]

	// air change offset, 1/h, by storeys and ventilation regime
	b := map[InsidePressure]map[Story]float64{
		InsidePressureBalanced: {
			StoryOne: 0.00,
			StoryTwo: 0.00,
		},
		InsidePressurePositive: {
			StoryOne: 0.26,
			StoryTwo: 0.14,
		},
		InsidePressureNegative: {
			StoryOne: 0.28,
			StoryTwo: 0.13,
		},
	}[self.inside_pressure]

	// air change rate, 1/h
	infiltration_rate := math.Max(a*(self.c_value*math.Sqrt(delta_theta))-b[self.story], 0)

	// volume flow m3/s to dry air mass flow kg/s
	return infiltration_rate * self.volume / 3600.0 * get_rho_a()
}
