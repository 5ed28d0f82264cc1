package fixpoint

import (
	"errors"
	"fmt"
)

var (
	// ErrMaxIterations is returned when a problem has not converged within
	// the configured number of sweeps.
	ErrMaxIterations = errors.New("fixpoint: max iterations exceeded")
)

// ErrInvalidEdge indicates an edge that references a node outside the
// problem's values.
type ErrInvalidEdge struct {
	Edge  Edge
	Nodes int
}

func (e *ErrInvalidEdge) Error() string {
	return fmt.Sprintf("fixpoint: edge %d->%d out of range for %d nodes", e.Edge.From, e.Edge.To, e.Nodes)
}

// ErrLengthMismatch indicates an edge whose endpoints hold values of
// different lengths. Solve reports it up front instead of letting the
// union panic mid-sweep.
type ErrLengthMismatch struct {
	Edge     Edge
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("fixpoint: edge %d->%d length mismatch: expected %d, got %d",
		e.Edge.From, e.Edge.To, e.Expected, e.Actual)
}
