package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_indoor_humidity_falls_with_bypass(t *testing.T) {
	// over the frost-free part of the by-pass range a larger by-pass
	// fraction forces a colder apparatus dew point, so the supply and
	// the zone get drier even though the zone temperature stays put
	for _, theta_o := range []float64{30.0, 32.0, 35.0} {
		for _, phi_o := range []float64{0.4, 0.6} {
			for _, q_s_a := range []float64{10000.0, 17000.0} {
				prev_w := 1.0
				for _, beta := range []float64{0.0, 0.1, 0.2, 0.3, 0.4} {
					params, err := NewParameters(3.5, 1.0, beta, 1e10, 0.0)
					require.NoError(t, err)
					inputs, err := NewInputs(theta_o, phi_o, 24.0, 0.6, 0.7, 675.0, q_s_a, 2000.0)
					require.NoError(t, err)
					unit, err := NewAirHandlingUnit(params, inputs)
					require.NoError(t, err)

					state, err := unit.solve_lin(get_theta_s_0())
					require.NoError(t, err)

					assert.GreaterOrEqual(t, state.theta_2, 0.0)
					assert.Less(t, state.w_5, prev_w)
					prev_w = state.w_5
				}
			}
		}
	}
}

func Test_find_bypass_factor_round_trip(t *testing.T) {
	reference := test_unit(t, 0.35)
	ref_state, err := reference.solve_lin(get_theta_s_0())
	require.NoError(t, err)

	// ask for the relative humidity that beta = 0.35 produces
	sp := get_phi(24.0, ref_state.w_5)

	unit := test_unit(t, 0.0)
	beta, state, err := unit.find_bypass_factor(TargetIndoorRelativeHumidity, sp)
	require.NoError(t, err)

	assert.InDelta(t, 0.35, beta, 1e-5)
	assert.InDelta(t, 24.0, state.theta_5, 1e-3)
	assert.InDelta(t, ref_state.w_5, state.w_5, 1e-7)
}

func Test_find_mass_flow_round_trip(t *testing.T) {
	params, err := NewParameters(3.5, 1.0, 0.1, 1e10, 0.0)
	require.NoError(t, err)
	inputs, err := NewInputs(32.0, 0.5, 24.0, 0.6, 0.7, 675.0, 17000.0, 2000.0)
	require.NoError(t, err)
	reference, err := NewAirHandlingUnit(params, inputs)
	require.NoError(t, err)

	ref_state, err := reference.solve_lin(get_theta_s_0())
	require.NoError(t, err)

	m, state, err := reference.find_mass_flow(TargetSupplyTemperature, ref_state.theta_4)
	require.NoError(t, err)

	assert.InDelta(t, 3.5, m, 1e-4)
	assert.InDelta(t, ref_state.theta_4, state.theta_4, 1e-5)
}

func Test_find_bypass_factor_infeasible(t *testing.T) {
	unit := test_unit(t, 0.0)

	// far drier than the coil can deliver without frosting
	_, _, err := unit.find_bypass_factor(TargetIndoorRelativeHumidity, 0.35)
	assert.ErrorIs(t, err, ErrInfeasibleTarget)

	var infeasible *InfeasibleTargetError
	require.ErrorAs(t, err, &infeasible)
	assert.NotNil(t, infeasible.state_lower)
	assert.NotNil(t, infeasible.state_upper)
	assert.Greater(t, infeasible.value_lower, infeasible.target)
	assert.Greater(t, infeasible.value_upper, infeasible.target)
}

func Test_find_mass_flow_infeasible(t *testing.T) {
	unit := test_unit(t, 0.1)

	// warmer supply than even the minimum flow can give
	_, _, err := unit.find_mass_flow(TargetSupplyTemperature, 30.0)
	assert.ErrorIs(t, err, ErrInfeasibleTarget)
}

func Test_find_mass_flow_iteration_cap(t *testing.T) {
	unit := test_unit(t, 0.1)

	settings := default_solver_settings()
	settings.root_tolerance = 1e-9
	settings.root_max_iter = 3
	unit.SetSolverSettings(settings)

	_, _, err := unit.find_mass_flow(TargetSupplyTemperature, 16.0)
	assert.ErrorIs(t, err, ErrDidNotConverge)

	var not_converged *DidNotConvergeError
	require.ErrorAs(t, err, &not_converged)
	assert.NotNil(t, not_converged.best_state)
}

func Test_find_invalid_target(t *testing.T) {
	unit := test_unit(t, 0.1)

	_, _, err := unit.find_bypass_factor(ControlTarget("enthalpy"), 50.0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, _, err = unit.find_bypass_factor(TargetIndoorRelativeHumidity, 1.2)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, _, err = unit.find_mass_flow(TargetIndoorRelativeHumidity, -0.1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
