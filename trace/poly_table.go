package trace

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/zkforge/stark-trace/air"
	"github.com/zkforge/stark-trace/num"
)

// TracePolyTable holds one coefficient-form polynomial per trace column.
// It is the output of TraceBuilder and is immutable.
type TracePolyTable struct {
	polys [][]fr.Element
}

// NewTracePolyTable creates a TracePolyTable from the given coefficient
// sequences. The sequences are used directly, not copied.
//
// Panics if there are no polynomials, or if they do not all have the same
// power-of-two length.
func NewTracePolyTable(polys [][]fr.Element) *TracePolyTable {
	if len(polys) == 0 {
		panic("poly table must have at least one column")
	}
	length := len(polys[0])
	if !num.IsPowerOfTwo(length) {
		panic("polynomial length must be a power of two")
	}
	for _, p := range polys {
		if len(p) != length {
			panic("trace polynomials must have the same length")
		}
	}

	return &TracePolyTable{
		polys: polys,
	}
}

// Width returns the number of trace columns.
func (t *TracePolyTable) Width() int {
	return len(t.polys)
}

// PolyLength returns the coefficient count of each column polynomial.
// This equals the trace length.
func (t *TracePolyTable) PolyLength() int {
	return len(t.polys[0])
}

// Poly returns the coefficients of the i-th column polynomial.
func (t *TracePolyTable) Poly(i int) []fr.Element {
	return t.polys[i]
}

// EvaluateAt evaluates every column polynomial at z, preserving column order.
func (t *TracePolyTable) EvaluateAt(z fr.Element) []fr.Element {
	evals := make([]fr.Element, len(t.polys))
	for i := range t.polys {
		evals[i] = evalPoly(t.polys[i], z)
	}
	return evals
}

// GetEvaluationFrame evaluates every column polynomial at z and at
// z*traceGenerator, filling the Current and Next rows of the frame.
// The shift by the trace-domain generator expresses next-row semantics
// algebraically rather than via physical row lookup.
func (t *TracePolyTable) GetEvaluationFrame(z, traceGenerator fr.Element) *air.EvaluationFrame {
	var zg fr.Element
	zg.Mul(&z, &traceGenerator)

	return &air.EvaluationFrame{
		Current: t.EvaluateAt(z),
		Next:    t.EvaluateAt(zg),
	}
}

// evalPoly evaluates a coefficient-form polynomial at z using Horner's method.
func evalPoly(coeffs []fr.Element, z fr.Element) fr.Element {
	var res fr.Element
	for i := len(coeffs) - 1; i >= 0; i-- {
		res.Mul(&res, &z)
		res.Add(&res, &coeffs[i])
	}
	return res
}
