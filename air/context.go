// Package air defines the protocol-level parameters and value types shared
// between the prover and verifier sides of the trace-algebra pipeline.
//
// The algebraic constraint system itself (which columns exist, what the
// constraints compute) lives outside this module; air carries only the
// parameters it fixes: trace shape, LDE blowup factor, the number of
// out-of-domain constraint evaluations, and the trace-domain generator.
package air

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"

	"github.com/zkforge/stark-trace/num"
)

// Context carries the protocol parameters agreed out-of-band between prover
// and verifier. Serialized artifacts such as the out-of-domain frame store no
// length metadata; parsing them is only meaningful together with a Context.
type Context struct {
	traceWidth               int
	traceLength              int
	ldeBlowupFactor          int
	numConstraintEvaluations int
}

// NewContext creates a new Context.
//
// Panics if traceWidth or numConstraintEvaluations is not positive, or if
// traceLength or ldeBlowupFactor is not a power of two.
func NewContext(traceWidth, traceLength, ldeBlowupFactor, numConstraintEvaluations int) Context {
	if traceWidth <= 0 {
		panic("trace width must be positive")
	}
	if !num.IsPowerOfTwo(traceLength) {
		panic("trace length must be a power of two")
	}
	if !num.IsPowerOfTwo(ldeBlowupFactor) {
		panic("lde blowup factor must be a power of two")
	}
	if numConstraintEvaluations <= 0 {
		panic("number of constraint evaluations must be positive")
	}

	return Context{
		traceWidth:               traceWidth,
		traceLength:              traceLength,
		ldeBlowupFactor:          ldeBlowupFactor,
		numConstraintEvaluations: numConstraintEvaluations,
	}
}

// TraceWidth returns the number of trace columns.
func (c Context) TraceWidth() int {
	return c.traceWidth
}

// TraceLength returns the number of trace rows.
func (c Context) TraceLength() int {
	return c.traceLength
}

// LdeBlowupFactor returns the ratio between the low-degree extension domain
// and the trace domain.
func (c Context) LdeBlowupFactor() int {
	return c.ldeBlowupFactor
}

// LdeDomainSize returns the size of the low-degree extension domain.
func (c Context) LdeDomainSize() int {
	return c.traceLength * c.ldeBlowupFactor
}

// NumConstraintEvaluations returns the number of out-of-domain constraint
// evaluations carried in a proof.
func (c Context) NumConstraintEvaluations() int {
	return c.numConstraintEvaluations
}

// TraceDomainGenerator returns the generator of the trace domain, i.e. the
// primitive traceLength-th root of unity used for one-step shifts.
func (c Context) TraceDomainGenerator() fr.Element {
	return fft.NewDomain(uint64(c.traceLength)).Generator
}
