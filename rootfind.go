package main

import (
	"fmt"
	"math"
)

// Controlled output of the parametric root finder.
type ControlTarget string

const (
	// supply air temperature, degree C
	TargetSupplyTemperature ControlTarget = "theta_S"
	// indoor relative humidity, 0-1; the set point is converted to a
	// humidity ratio target at the indoor temperature set point and the
	// humidity controller is switched off so the humidity is an outcome
	TargetIndoorRelativeHumidity ControlTarget = "phi_I"
)

// apparatus dew point floor of a wet coil, degree C; below this the
// coil surface would frost and the model extrapolates nonsense
func get_theta_adp_min() float64 {
	return 0.0
}

const golden_section = 0.6180339887498949

/*
Variable by-pass problem: finds the by-pass factor beta for which the
controlled output equals the set point, the mass flow rates being
fixed.

The search interval is [0, beta_frost], where beta_frost keeps the
apparatus dew point above freezing. With the indoor temperature held
at its set point by the controller, the zone humidity ratio is not
monotone in beta: deeper by-pass forces a colder apparatus dew point
(more drying per kg treated) until the shrinking treated flow wins and
the humidity rises again. The map is unimodal, so the minimum is
located first and the set point is bracketed on one branch, the
low-beta branch preferred.

    Args:
        target: controlled output
        sp: set point for the controlled output (degree C for
            TargetSupplyTemperature, 0-1 for TargetIndoorRelativeHumidity)

    Returns:
        beta: converged by-pass factor
        state: solved state of the final accepted trial
*/
func (self *AirHandlingUnit) find_bypass_factor(target ControlTarget, sp float64) (float64, *SolvedState, error) {
	unit, sp, err := self.prepare_search(target, sp)
	if err != nil {
		return 0.0, nil, err
	}

	eval := func(beta float64) (*SolvedState, float64, error) {
		trial := *unit
		trial.params.beta = beta
		state, err := trial.solve_lin(get_theta_s_0())
		if err != nil {
			return nil, 0.0, err
		}
		return state, controlled_value(state, target), nil
	}

	upper, err := unit.frost_free_bypass_limit()
	if err != nil {
		return 0.0, nil, err
	}

	state_lower, value_lower, err := eval(0.0)
	if err != nil {
		return 0.0, nil, err
	}
	state_upper, value_upper, err := eval(upper)
	if err != nil {
		return 0.0, nil, err
	}

	beta_min, err := minimize_output(eval, 0.0, upper, unit.settings)
	if err != nil {
		return 0.0, nil, err
	}
	_, value_min, err := eval(beta_min)
	if err != nil {
		return 0.0, nil, err
	}

	switch {
	case (sp-value_min)*(sp-value_lower) <= 0.0:
		return search_parameter(eval, 0.0, beta_min, sp, unit.settings)
	case (sp-value_min)*(sp-value_upper) <= 0.0:
		return search_parameter(eval, beta_min, upper, sp, unit.settings)
	default:
		return 0.0, nil, &InfeasibleTargetError{
			target:      sp,
			lower:       0.0,
			upper:       upper,
			value_lower: value_lower,
			value_upper: value_upper,
			state_lower: state_lower,
			state_upper: state_upper,
		}
	}
}

/*
Variable air volume problem: finds the supply mass flow rate m in
[mo, m_max] for which the controlled output equals the set point, the
by-pass factor being fixed. The supply flow cannot drop below the
outdoor intake in this topology. Both supported outputs grow with the
supply flow (warmer supply, less dehumidification), so a plain
bracketing search applies.

    Args:
        target: controlled output
        sp: set point for the controlled output

    Returns:
        m: converged supply dry air mass flow rate, kg/s
        state: solved state of the final accepted trial
*/
func (self *AirHandlingUnit) find_mass_flow(target ControlTarget, sp float64) (float64, *SolvedState, error) {
	unit, sp, err := self.prepare_search(target, sp)
	if err != nil {
		return 0.0, nil, err
	}

	if unit.params.mo > get_m_max() {
		return 0.0, nil, fmt.Errorf("%w: outdoor mass flow rate mo = %g exceeds the search bound m_max = %g",
			ErrInvalidParameter, unit.params.mo, get_m_max())
	}

	eval := func(m float64) (*SolvedState, float64, error) {
		trial := *unit
		trial.params.m = m
		state, err := trial.solve_lin(get_theta_s_0())
		if err != nil {
			return nil, 0.0, err
		}
		return state, controlled_value(state, target), nil
	}

	return search_parameter(eval, unit.params.mo, get_m_max(), sp, unit.settings)
}

// prepare_search validates the target and, for a relative humidity
// target, converts the set point to a humidity ratio and switches the
// humidity controller off on a copy of the unit.
func (self *AirHandlingUnit) prepare_search(target ControlTarget, sp float64) (*AirHandlingUnit, float64, error) {
	unit := *self

	switch target {
	case TargetSupplyTemperature:
	case TargetIndoorRelativeHumidity:
		if sp < 0.0 || sp > 1.0 {
			return nil, 0.0, fmt.Errorf("%w: relative humidity set point %g outside [0, 1]", ErrInvalidParameter, sp)
		}
		unit.params.k_w = 0.0
		sp = get_w(unit.inputs.theta_i_sp, sp)
	default:
		return nil, 0.0, fmt.Errorf("%w: unknown control target %q", ErrInvalidParameter, string(target))
	}

	return &unit, sp, nil
}

func controlled_value(state *SolvedState, target ControlTarget) float64 {
	switch target {
	case TargetSupplyTemperature:
		return state.theta_4
	default:
		return state.w_5
	}
}

/*
Largest by-pass factor keeping the apparatus dew point at or above the
frost floor. The dew point falls monotonically with beta, so a plain
bisection applies; trial values where the solve itself breaks down
count as beyond the limit.

    Returns:
        beta_frost in [0, 1]
*/
func (self *AirHandlingUnit) frost_free_bypass_limit() (float64, error) {
	adp := func(beta float64) (float64, error) {
		trial := *self
		trial.params.beta = beta
		state, err := trial.solve_lin(get_theta_s_0())
		if err != nil {
			return 0.0, err
		}
		return state.theta_2, nil
	}

	theta_full, err := adp(0.0)
	if err != nil {
		return 0.0, err
	}
	if theta_full < get_theta_adp_min() {
		// frosting even at full treatment, nothing to search
		return 0.0, nil
	}

	lower, upper := 0.0, 1.0
	for it := 0; it < 40; it++ {
		mid := 0.5 * (lower + upper)
		theta, err := adp(mid)
		if err == nil && theta >= get_theta_adp_min() {
			lower = mid
		} else {
			upper = mid
		}
	}

	return lower, nil
}

/*
Golden section search for the parameter minimizing the controlled
output over [lower, upper], used to split the unimodal by-pass map
into two monotone branches. For a monotone map the minimizer collapses
onto an interval end, which degenerates gracefully.
*/
func minimize_output(
	eval func(float64) (*SolvedState, float64, error),
	lower, upper float64,
	settings SolverSettings,
) (float64, error) {
	a, b := lower, upper
	c1 := b - golden_section*(b-a)
	c2 := a + golden_section*(b-a)

	_, f1, err := eval(c1)
	if err != nil {
		return 0.0, err
	}
	_, f2, err := eval(c2)
	if err != nil {
		return 0.0, err
	}

	for (b - a) > settings.root_tolerance {
		if f1 < f2 {
			b, c2, f2 = c2, c1, f1
			c1 = b - golden_section*(b-a)
			_, f1, err = eval(c1)
		} else {
			a, c1, f1 = c1, c2, f2
			c2 = a + golden_section*(b-a)
			_, f2, err = eval(c2)
		}
		if err != nil {
			return 0.0, err
		}
	}

	return 0.5 * (a + b), nil
}

/*
Bracketing bisection on the scalar mapping parameter -> controlled
output, monotone over [lower, upper]. Reports an explicit infeasible
condition when the set point is not bracketed rather than returning a
bracket end silently.

    Args:
        eval: one direct solve at a trial parameter value
        lower, upper: parameter interval with the output monotone on it
        sp: set point for the controlled output

    Returns:
        the converged parameter value and the state of the final trial
*/
func search_parameter(
	eval func(float64) (*SolvedState, float64, error),
	lower, upper, sp float64,
	settings SolverSettings,
) (float64, *SolvedState, error) {
	state_lower, value_lower, err := eval(lower)
	if err != nil {
		return 0.0, nil, err
	}
	state_upper, value_upper, err := eval(upper)
	if err != nil {
		return 0.0, nil, err
	}

	r_lower := value_lower - sp
	r_upper := value_upper - sp

	if r_lower == 0.0 {
		return lower, state_lower, nil
	}
	if r_upper == 0.0 {
		return upper, state_upper, nil
	}
	if r_lower*r_upper > 0.0 {
		return 0.0, nil, &InfeasibleTargetError{
			target:      sp,
			lower:       lower,
			upper:       upper,
			value_lower: value_lower,
			value_upper: value_upper,
			state_lower: state_lower,
			state_upper: state_upper,
		}
	}

	var (
		mid   float64
		state *SolvedState
		value float64
	)
	for it := 0; it < settings.root_max_iter; it++ {
		mid = 0.5 * (lower + upper)

		state, value, err = eval(mid)
		if err != nil {
			return 0.0, nil, err
		}

		// successive trial values differ by half the bracket width
		if (upper-lower) < 2.0*settings.root_tolerance || value == sp {
			return mid, state, nil
		}

		if (value-sp)*r_lower > 0.0 {
			lower = mid
			r_lower = value - sp
		} else {
			upper = mid
		}
	}

	return 0.0, nil, &DidNotConvergeError{
		iterations: settings.root_max_iter,
		residual:   math.Abs(value - sp),
		best_param: mid,
		best_state: state,
	}
}
