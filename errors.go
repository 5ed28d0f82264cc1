package bitvec

import "fmt"

// ErrLengthMismatch indicates a binary operation on two BitVectors of
// different lengths. BitVector methods panic with it; the operation has not
// touched any bit when the panic is raised.
type ErrLengthMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: expected %d, got %d", e.Expected, e.Actual)
}
