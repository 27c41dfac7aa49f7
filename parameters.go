package main

import (
	"fmt"
)

// Design parameters of the air handling unit. Immutable for one solve;
// the root finder re-supplies a fresh copy for each trial value of
// beta or m.
type Parameters struct {
	m       float64 // supply dry air mass flow rate, kg/s
	mo      float64 // outdoor dry air mass flow rate, kg/s
	beta    float64 // cooling coil by-pass factor, 0-1
	k_theta float64 // indoor temperature controller gain, W/K
	k_w     float64 // indoor humidity ratio controller gain, W/(kg/kgDA)
}

/*
Creates the parameter set of the air handling unit.

    Args:
        m: supply dry air mass flow rate, kg/s
        mo: outdoor dry air mass flow rate, kg/s
        beta: cooling coil by-pass factor, 0-1
        k_theta: indoor temperature controller gain, W/K
        k_w: indoor humidity ratio controller gain, W/(kg/kgDA)
            k_w = 0 switches the re-heating battery off
*/
func NewParameters(m, mo, beta, k_theta, k_w float64) (Parameters, error) {
	p := Parameters{
		m:       m,
		mo:      mo,
		beta:    beta,
		k_theta: k_theta,
		k_w:     k_w,
	}

	if err := p.validate(); err != nil {
		return Parameters{}, err
	}

	return p, nil
}

func (p Parameters) validate() error {
	if p.m <= 0.0 {
		return fmt.Errorf("%w: supply mass flow rate m = %g must be positive", ErrInvalidParameter, p.m)
	}
	if p.mo < 0.0 {
		return fmt.Errorf("%w: outdoor mass flow rate mo = %g must not be negative", ErrInvalidParameter, p.mo)
	}
	if p.mo > p.m {
		return fmt.Errorf("%w: outdoor mass flow rate mo = %g exceeds supply mass flow rate m = %g", ErrInvalidParameter, p.mo, p.m)
	}
	if p.beta < 0.0 || p.beta > 1.0 {
		return fmt.Errorf("%w: by-pass factor beta = %g outside [0, 1]", ErrInvalidParameter, p.beta)
	}
	if p.k_theta <= 0.0 {
		return fmt.Errorf("%w: temperature controller gain k_theta = %g must be positive", ErrInvalidParameter, p.k_theta)
	}
	if p.k_w < 0.0 {
		return fmt.Errorf("%w: humidity controller gain k_w = %g must not be negative", ErrInvalidParameter, p.k_w)
	}

	return nil
}

// Boundary conditions of one scenario: outdoor air state, indoor set
// points and the building loads the unit has to offset.
type Inputs struct {
	theta_o    float64 // outdoor air temperature, degree C
	phi_o      float64 // outdoor air relative humidity, 0-1
	theta_i_sp float64 // indoor air temperature set point, degree C
	phi_i_sp   float64 // indoor air relative humidity set point, 0-1
	mi         float64 // infiltration dry air mass flow rate, kg/s
	ua         float64 // building overall heat transfer coefficient, W/K
	q_sa       float64 // auxiliary sensible load, W
	q_la       float64 // auxiliary latent load, W
}

/*
Creates the boundary conditions of one scenario.

    Args:
        theta_o: outdoor air temperature, degree C
        phi_o: outdoor air relative humidity, 0-1
        theta_i_sp: indoor air temperature set point, degree C
        phi_i_sp: indoor air relative humidity set point, 0-1
        mi: infiltration dry air mass flow rate, kg/s
        ua: building overall heat transfer coefficient, W/K
        q_sa: auxiliary sensible load, W
        q_la: auxiliary latent load, W
*/
func NewInputs(theta_o, phi_o, theta_i_sp, phi_i_sp, mi, ua, q_sa, q_la float64) (Inputs, error) {
	in := Inputs{
		theta_o:    theta_o,
		phi_o:      phi_o,
		theta_i_sp: theta_i_sp,
		phi_i_sp:   phi_i_sp,
		mi:         mi,
		ua:         ua,
		q_sa:       q_sa,
		q_la:       q_la,
	}

	if err := in.validate(); err != nil {
		return Inputs{}, err
	}

	return in, nil
}

func (in Inputs) validate() error {
	if in.phi_o < 0.0 || in.phi_o > 1.0 {
		return fmt.Errorf("%w: outdoor relative humidity phi_o = %g outside [0, 1]", ErrInvalidParameter, in.phi_o)
	}
	if in.phi_i_sp < 0.0 || in.phi_i_sp > 1.0 {
		return fmt.Errorf("%w: indoor relative humidity set point phi_i_sp = %g outside [0, 1]", ErrInvalidParameter, in.phi_i_sp)
	}
	if in.mi < 0.0 {
		return fmt.Errorf("%w: infiltration mass flow rate mi = %g must not be negative", ErrInvalidParameter, in.mi)
	}
	if in.ua < 0.0 {
		return fmt.Errorf("%w: overall heat transfer coefficient ua = %g must not be negative", ErrInvalidParameter, in.ua)
	}

	return nil
}
