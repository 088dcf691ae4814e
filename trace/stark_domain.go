package trace

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"

	"github.com/zkforge/stark-trace/num"
)

// StarkDomain bundles the two evaluation domains of the trace pipeline:
// the trace domain (the traceLength-th roots of unity, over which the trace
// columns are interpolated) and the low-degree extension domain (blowup times
// larger, shifted onto a multiplicative coset so that it never intersects the
// trace domain).
type StarkDomain struct {
	traceDomain *fft.Domain
	ldeDomain   *fft.Domain

	blowup int
}

// NewStarkDomain creates a StarkDomain for a trace of the given length and
// the given LDE blowup factor.
//
// Panics if traceLength or blowup is not a power of two.
func NewStarkDomain(traceLength, blowup int) *StarkDomain {
	if !num.IsPowerOfTwo(traceLength) {
		panic("trace length must be a power of two")
	}
	if !num.IsPowerOfTwo(blowup) {
		panic("blowup factor must be a power of two")
	}

	return &StarkDomain{
		traceDomain: fft.NewDomain(uint64(traceLength)),
		ldeDomain:   fft.NewDomain(uint64(traceLength * blowup)),

		blowup: blowup,
	}
}

// TraceLength returns the size of the trace domain.
func (d *StarkDomain) TraceLength() int {
	return int(d.traceDomain.Cardinality)
}

// LdeDomainSize returns the size of the low-degree extension domain.
func (d *StarkDomain) LdeDomainSize() int {
	return int(d.ldeDomain.Cardinality)
}

// BlowupFactor returns the ratio between the LDE domain and the trace domain.
func (d *StarkDomain) BlowupFactor() int {
	return d.blowup
}

// TraceGenerator returns the generator of the trace domain, i.e. the
// primitive root of unity defining one-step shifts.
func (d *StarkDomain) TraceGenerator() fr.Element {
	return d.traceDomain.Generator
}

// LdeGenerator returns the generator of the LDE domain subgroup.
func (d *StarkDomain) LdeGenerator() fr.Element {
	return d.ldeDomain.Generator
}

// LdeOffset returns the coset shift of the LDE domain. The i-th LDE domain
// point is LdeOffset * LdeGenerator^i.
func (d *StarkDomain) LdeOffset() fr.Element {
	return d.ldeDomain.FrMultiplicativeGen
}
