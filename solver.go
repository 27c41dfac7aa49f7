package main

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Numerical settings of the direct solver and of the parametric root
// finder. default_solver_settings gives the values used throughout.
type SolverSettings struct {
	cond_threshold float64 // condition number above which the system counts as singular
	coil_tolerance float64 // kg/kgDA, stop criterion of the apparatus dew point iteration
	coil_max_iter  int     // iteration cap of the apparatus dew point iteration
	root_tolerance float64 // absolute stop criterion on the searched parameter
	root_max_iter  int     // iteration cap of the root finder
}

func default_solver_settings() SolverSettings {
	return SolverSettings{
		cond_threshold: 1.0e12,
		coil_tolerance: 0.01e-3,
		coil_max_iter:  50,
		root_tolerance: 1.0e-6,
		root_max_iter:  100,
	}
}

/*
Scales every row of A and b by the largest magnitude coefficient of
that row. The controller rows carry gains many orders of magnitude
above the thermal conductances; without equilibration the condition
number of A reflects the gain scale instead of genuine degeneracy.

    Args:
        A: coefficient matrix, modified in place
        b: right hand side, modified in place
*/
func equilibrate(A *mat.Dense, b *mat.VecDense) {
	n, cols := A.Dims()
	for i := 0; i < n; i++ {
		s := 0.0
		for j := 0; j < cols; j++ {
			s = math.Max(s, math.Abs(A.At(i, j)))
		}
		if s == 0.0 {
			continue
		}
		for j := 0; j < cols; j++ {
			A.Set(i, j, A.At(i, j)/s)
		}
		b.SetVec(i, b.AtVec(i)/s)
	}
}

/*
Solves A x = b by LU decomposition after row equilibration. Fails
explicitly when the equilibrated matrix is singular or its condition
number exceeds cond_threshold, which signals a physically degenerate
parameter combination rather than a numerical accident.

    Args:
        A: coefficient matrix, consumed (equilibrated in place)
        b: right hand side, consumed (equilibrated in place)
        cond_threshold: condition number gate

    Returns:
        solution vector x
*/
func solve_direct(A *mat.Dense, b *mat.VecDense, cond_threshold float64) (*mat.VecDense, error) {
	equilibrate(A, b)

	var lu mat.LU
	lu.Factorize(A)

	cond := lu.Cond()
	if math.IsInf(cond, 1) || math.IsNaN(cond) || cond > cond_threshold {
		return nil, &SingularSystemError{cond: cond, threshold: cond_threshold}
	}

	n, _ := A.Dims()
	x := mat.NewVecDense(n, nil)
	if err := lu.SolveVecTo(x, false, b); err != nil {
		return nil, &SingularSystemError{cond: cond, threshold: cond_threshold}
	}

	return x, nil
}

/*
Direct solution of the balance equation system. The coil characteristic
is a fixed point on the saturation curve w_s = f(theta_s): the system
is solved with the characteristic linearized at theta_s0, then
re-linearized at the solved coil outlet temperature, until the outlet
humidity ratio lies on the saturation curve within coil_tolerance.

    Args:
        theta_s0: initial guess for the apparatus dew point temperature, degree C

    Returns:
        the solved state of the whole circuit
*/
func (self *AirHandlingUnit) solve_lin(theta_s0 float64) (*SolvedState, error) {
	if self.coil_off() {
		// outlet pinned to inlet, nothing to iterate on
		A, b := self.lin_model(theta_s0)
		x, err := solve_direct(A, b, self.settings.cond_threshold)
		if err != nil {
			return nil, err
		}
		return self.new_solved_state(x), nil
	}

	delta_ws := math.Inf(1)
	var x *mat.VecDense
	for it := 0; it < self.settings.coil_max_iter; it++ {
		A, b := self.lin_model(theta_s0)

		var err error
		x, err = solve_direct(A, b, self.settings.cond_threshold)
		if err != nil {
			return nil, err
		}

		delta_ws = math.Abs(get_w_s(x.AtVec(2)) - x.AtVec(3))
		theta_s0 = x.AtVec(2)

		if delta_ws < self.settings.coil_tolerance {
			return self.new_solved_state(x), nil
		}
	}

	var best *SolvedState
	if x != nil {
		best = self.new_solved_state(x)
	}
	return nil, &DidNotConvergeError{
		iterations: self.settings.coil_max_iter,
		residual:   delta_ws,
		best_param: theta_s0,
		best_state: best,
	}
}
