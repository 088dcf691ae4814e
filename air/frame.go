package air

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// EvaluationFrame holds the evaluations of all trace polynomials at a point z
// (Current) and at the one-step shifted point z*g (Next), where g generates
// the trace domain. It models the "current row / next row" semantics of the
// constraint system algebraically.
type EvaluationFrame struct {
	Current []fr.Element
	Next    []fr.Element
}

// NewEvaluationFrame creates a zeroed EvaluationFrame for a trace of the given width.
func NewEvaluationFrame(width int) *EvaluationFrame {
	return &EvaluationFrame{
		Current: make([]fr.Element, width),
		Next:    make([]fr.Element, width),
	}
}

// Width returns the number of trace columns in the frame.
func (f *EvaluationFrame) Width() int {
	return len(f.Current)
}
