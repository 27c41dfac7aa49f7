package main

import (
	"gonum.org/v1/gonum/mat"
)

/*
Steady state model of an air handling unit serving one thermal zone:
outdoor air mixing, cooling coil with by-pass, recycled air mixing,
re-heating battery, fan and a lumped building load, closed by ideal
proportional controllers on the indoor temperature and (optionally)
the indoor humidity ratio.

	<=5=================================5=========<==================
	  mo      ||                        m                          ||
	          5 (m-mo) =======1=======                             ||
	          ||       ||   beta*m  ||                             ||
	to,po=0=>[MX1]==1==||          [MX2]==3==[HC]==4==F==>==[TZ]==5==
	 mo             |  ||           ||         |             //    |
	                |  =1=[CC]==2====          |             sl    |
	                |       \\  (1-beta)m      |             ||    |
	                |        sl                |            [BL]<-mi
	                |                          |                   |
	                |--------------------------|----------[Kw]-----|<-wI
	                |-------------------------------------[Kt]-----|<-tI

Elements and their balance equations (16 equations, 16 unknowns):

	MX1  mixing box, outdoor + recycled air      (2: energy, moisture)
	CC   cooling coil on the treated fraction    (4: sensible, latent,
	     apparatus dew point characteristic, total = sensible + latent)
	MX2  mixing box, treated + by-passed air     (2: energy, moisture)
	HC   re-heating battery                      (2: energy, moisture)
	TZ   thermal zone                            (2: sensible, latent)
	BL   building envelope + infiltration loads  (2: sensible, latent)
	Kt   indoor temperature controller           (1)
	Kw   indoor humidity ratio controller        (1)

Unknown vector:

	x[0], x[1]    theta_1, w_1    mixed air after MX1
	x[2], x[3]    theta_s, w_s    coil outlet, on the saturation curve
	x[4], x[5]    theta_3, w_3    mixed air after MX2
	x[6], x[7]    theta_4, w_4    supply air after HC and fan
	x[8], x[9]    theta_5, w_5    indoor (zone = return) air
	x[10..12]     Qt, Qs, Ql      cooling coil heat flows, W (<= 0 cooling)
	x[13]         Qs              re-heating battery heat flow, W
	x[14], x[15]  Qs, Ql          thermal zone heat flows, W

The coil characteristic is linearized around the trial apparatus dew
point theta_s0; solve_lin re-linearizes until the outlet sits on the
saturation curve. With the gains k_theta, k_w much larger than the
thermal conductances of the circuit, the controller equations behave
as near-exact set point constraints while the system stays linear.
*/
type AirHandlingUnit struct {
	params   Parameters
	inputs   Inputs
	settings SolverSettings
}

/*
Creates a steady state air handling unit model.

    Args:
        params: design parameters (m, mo, beta, k_theta, k_w)
        inputs: boundary conditions of the scenario
*/
func NewAirHandlingUnit(params Parameters, inputs Inputs) (*AirHandlingUnit, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	if err := inputs.validate(); err != nil {
		return nil, err
	}

	return &AirHandlingUnit{
		params:   params,
		inputs:   inputs,
		settings: default_solver_settings(),
	}, nil
}

// Replaces the solver settings. The zero value of any field keeps no
// meaning; pass a fully populated settings struct.
func (self *AirHandlingUnit) SetSolverSettings(settings SolverSettings) {
	self.settings = settings
}

// Treated fractions below this are a dead coil branch; the assembler
// switches to the explicit coil-off system to keep the matrix regular.
const coil_off_fraction = 1.0e-9

/*
Assembles the coefficient matrix A and the right hand side b of the
balance equation system, with the coil characteristic linearized
around the trial apparatus dew point theta_s0.

    Args:
        theta_s0: trial apparatus dew point temperature, degree C

    Returns:
        A: coefficient matrix, 16 x 16
        b: right hand side, 16
*/
func (self *AirHandlingUnit) lin_model(theta_s0 float64) (*mat.Dense, *mat.VecDense) {
	m := self.params.m
	mo := self.params.mo
	beta := self.params.beta
	k_theta := self.params.k_theta
	k_w := self.params.k_w

	theta_o := self.inputs.theta_o
	theta_i_sp := self.inputs.theta_i_sp
	mi := self.inputs.mi
	ua := self.inputs.ua
	q_sa := self.inputs.q_sa
	q_la := self.inputs.q_la

	c := get_c_a()
	l := get_l_wtr()

	// outdoor and set point humidity ratios
	w_o := get_w(theta_o, self.inputs.phi_o)
	w_i_sp := get_w(theta_i_sp, self.inputs.phi_i_sp)

	A := mat.NewDense(16, 16, nil)
	b := mat.NewVecDense(16, nil)

	// MX1: energy and moisture balance of outdoor and recycled air
	A.Set(0, 0, m*c)
	A.Set(0, 8, -(m-mo)*c)
	b.SetVec(0, mo*c*theta_o)
	A.Set(1, 1, m*l)
	A.Set(1, 9, -(m-mo)*l)
	b.SetVec(1, mo*l*w_o)

	if (1.0-beta) < coil_off_fraction {
		// CC off: no treated flow, no coil duty, outlet pinned to inlet
		A.Set(2, 11, 1.0)
		A.Set(3, 12, 1.0)
		A.Set(4, 0, -1.0)
		A.Set(4, 2, 1.0)
	} else {
		// CC: sensible and latent balance of the treated fraction
		A.Set(2, 0, (1.0-beta)*m*c)
		A.Set(2, 2, -(1.0-beta)*m*c)
		A.Set(2, 11, 1.0)
		A.Set(3, 1, (1.0-beta)*m*l)
		A.Set(3, 3, -(1.0-beta)*m*l)
		A.Set(3, 12, 1.0)
		// CC: saturation curve linearized around theta_s0
		A.Set(4, 2, get_w_sp(theta_s0))
		A.Set(4, 3, -1.0)
		b.SetVec(4, get_w_sp(theta_s0)*theta_s0-get_w_s(theta_s0))
	}

	// CC: total = sensible + latent
	A.Set(5, 10, -1.0)
	A.Set(5, 11, 1.0)
	A.Set(5, 12, 1.0)

	// MX2: energy and moisture balance of by-passed and treated air
	A.Set(6, 0, beta*m*c)
	A.Set(6, 2, (1.0-beta)*m*c)
	A.Set(6, 4, -m*c)
	A.Set(7, 1, beta*m*l)
	A.Set(7, 3, (1.0-beta)*m*l)
	A.Set(7, 5, -m*l)

	// HC: re-heating battery, moisture passes through
	A.Set(8, 4, m*c)
	A.Set(8, 6, -m*c)
	A.Set(8, 13, 1.0)
	A.Set(9, 5, m*l)
	A.Set(9, 7, -m*l)

	// TZ: sensible and latent balance of the zone
	A.Set(10, 6, m*c)
	A.Set(10, 8, -m*c)
	A.Set(10, 14, 1.0)
	A.Set(11, 7, m*l)
	A.Set(11, 9, -m*l)
	A.Set(11, 15, 1.0)

	// BL: envelope conduction, infiltration and auxiliary loads
	A.Set(12, 8, ua+mi*c)
	A.Set(12, 14, 1.0)
	b.SetVec(12, (ua+mi*c)*theta_o+q_sa)
	A.Set(13, 9, mi*l)
	A.Set(13, 15, 1.0)
	b.SetVec(13, mi*l*w_o+q_la)

	if (1.0-beta) < coil_off_fraction {
		// with the coil dead the temperature controller has no authority;
		// its row pins the remaining free coil outlet unknown instead
		A.Set(14, 1, -1.0)
		A.Set(14, 3, 1.0)
	} else {
		// Kt: indoor temperature controller acting on the coil duty
		A.Set(14, 8, k_theta)
		A.Set(14, 10, 1.0)
		b.SetVec(14, k_theta*theta_i_sp)
	}

	// Kw: indoor humidity controller acting on the re-heating battery
	A.Set(15, 9, k_w)
	A.Set(15, 13, 1.0)
	b.SetVec(15, k_w*w_i_sp)

	return A, b
}

// coil_off reports whether the treated fraction is dead for the current
// by-pass factor.
func (self *AirHandlingUnit) coil_off() bool {
	return (1.0 - self.params.beta) < coil_off_fraction
}
