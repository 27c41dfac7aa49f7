package main

import (
	"gonum.org/v1/gonum/mat"
)

// Solved steady state of the circuit. One instance per solve; nothing
// is shared or mutated afterwards. State points follow the circuit
// positions: 0 outdoor, 1 after MX1, 2 coil outlet, 3 after MX2,
// 4 supply after HC and fan, 5 zone = return.
type SolvedState struct {
	theta_0 float64 // outdoor air temperature, degree C
	w_0     float64 // outdoor air humidity ratio, kg/kgDA
	theta_1 float64 // mixed air temperature after MX1, degree C
	w_1     float64 // mixed air humidity ratio after MX1, kg/kgDA
	theta_2 float64 // coil outlet (apparatus dew point) temperature, degree C
	w_2     float64 // coil outlet humidity ratio, kg/kgDA
	theta_3 float64 // mixed air temperature after MX2, degree C
	w_3     float64 // mixed air humidity ratio after MX2, kg/kgDA
	theta_4 float64 // supply air temperature, degree C
	w_4     float64 // supply air humidity ratio, kg/kgDA
	theta_5 float64 // indoor air temperature, degree C
	w_5     float64 // indoor air humidity ratio, kg/kgDA

	q_t_cc float64 // cooling coil total heat flow, W
	q_s_cc float64 // cooling coil sensible heat flow, W
	q_l_cc float64 // cooling coil latent heat flow, W
	q_s_hc float64 // re-heating battery sensible heat flow, W
	q_s_tz float64 // thermal zone sensible heat flow, W
	q_l_tz float64 // thermal zone latent heat flow, W

	params Parameters // parameters the state was solved with
}

func (self *AirHandlingUnit) new_solved_state(x *mat.VecDense) *SolvedState {
	return &SolvedState{
		theta_0: self.inputs.theta_o,
		w_0:     get_w(self.inputs.theta_o, self.inputs.phi_o),
		theta_1: x.AtVec(0),
		w_1:     x.AtVec(1),
		theta_2: x.AtVec(2),
		w_2:     x.AtVec(3),
		theta_3: x.AtVec(4),
		w_3:     x.AtVec(5),
		theta_4: x.AtVec(6),
		w_4:     x.AtVec(7),
		theta_5: x.AtVec(8),
		w_5:     x.AtVec(9),
		q_t_cc:  x.AtVec(10),
		q_s_cc:  x.AtVec(11),
		q_l_cc:  x.AtVec(12),
		q_s_hc:  x.AtVec(13),
		q_s_tz:  x.AtVec(14),
		q_l_tz:  x.AtVec(15),
		params:  self.params,
	}
}

// indoor air relative humidity, 0-1 (derived, for display)
func (self *SolvedState) phi_5() float64 {
	return get_phi(self.theta_5, self.w_5)
}

// supply air relative humidity, 0-1 (derived, for display)
func (self *SolvedState) phi_4() float64 {
	return get_phi(self.theta_4, self.w_4)
}

// recycled dry air mass flow rate, kg/s
func (self *SolvedState) m_recycled() float64 {
	return self.params.m - self.params.mo
}

// dry air mass flow rate treated by the cooling coil, kg/s
func (self *SolvedState) m_treated() float64 {
	return (1.0 - self.params.beta) * self.params.m
}

// dry air mass flow rate by-passing the cooling coil, kg/s
func (self *SolvedState) m_bypassed() float64 {
	return self.params.beta * self.params.m
}

// state point temperatures in circuit order, degree C
func (self *SolvedState) thetas() []float64 {
	return []float64{self.theta_0, self.theta_1, self.theta_2, self.theta_3, self.theta_4, self.theta_5}
}

// state point humidity ratios in circuit order, kg/kgDA
func (self *SolvedState) ws() []float64 {
	return []float64{self.w_0, self.w_1, self.w_2, self.w_3, self.w_4, self.w_5}
}
