package main

import (
	"errors"
	"fmt"
	"math"
)

// Every failure of a solve is one of these sentinel kinds. Callers branch
// with errors.Is; the typed errors below carry the diagnostic payload.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrSingularSystem   = errors.New("singular system")
	ErrInfeasibleTarget = errors.New("infeasible target")
	ErrDidNotConverge   = errors.New("did not converge")
)

// SingularSystemError reports an assembled system whose condition number
// exceeds the configured threshold, i.e. a physically degenerate
// parameter combination.
type SingularSystemError struct {
	cond      float64
	threshold float64
}

func (e *SingularSystemError) Error() string {
	return fmt.Sprintf("%v: condition number %.3e exceeds threshold %.3e",
		ErrSingularSystem, e.cond, e.threshold)
}

func (e *SingularSystemError) Unwrap() error {
	return ErrSingularSystem
}

// InfeasibleTargetError reports a root-finding target outside the range
// achievable over the search interval. The boundary evaluations are kept
// so the caller can see how far off the achievable range is.
type InfeasibleTargetError struct {
	target      float64
	lower       float64 // parameter at the lower bracket end
	upper       float64 // parameter at the upper bracket end
	value_lower float64 // controlled output at the lower end
	value_upper float64 // controlled output at the upper end
	state_lower *SolvedState
	state_upper *SolvedState
}

func (e *InfeasibleTargetError) Error() string {
	return fmt.Sprintf("%v: target %.6g outside achievable range [%.6g, %.6g] for parameter in [%.6g, %.6g]",
		ErrInfeasibleTarget, e.target,
		math.Min(e.value_lower, e.value_upper), math.Max(e.value_lower, e.value_upper),
		e.lower, e.upper)
}

func (e *InfeasibleTargetError) Unwrap() error {
	return ErrInfeasibleTarget
}

// DidNotConvergeError reports an iteration cap reached before meeting the
// tolerance. The best trial found is attached but is not authoritative.
type DidNotConvergeError struct {
	iterations int
	residual   float64
	best_param float64
	best_state *SolvedState
}

func (e *DidNotConvergeError) Error() string {
	return fmt.Sprintf("%v: %d iterations, residual %.3e", ErrDidNotConverge, e.iterations, e.residual)
}

func (e *DidNotConvergeError) Unwrap() error {
	return ErrDidNotConverge
}
