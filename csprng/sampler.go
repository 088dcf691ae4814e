// Package csprng implements deterministic samplers for field elements.
package csprng

import (
	"crypto/rand"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/blake2b"
)

// sampleBytes is the number of XOF bytes consumed per field element.
// Oversampling by 16 bytes keeps the bias of the modular reduction negligible.
const sampleBytes = fr.Bytes + 16

// FieldSampler samples uniform field elements from a blake2b XOF.
// It doubles as a transcript: bytes written to it are absorbed into
// the XOF state, and Finalize snapshots that state for reading.
type FieldSampler struct {
	prngWriter blake2b.XOF
	prngReader blake2b.XOF

	buf [sampleBytes]byte
}

// NewFieldSampler creates a new FieldSampler with a random seed.
//
// Panics when read from crypto/rand or blake2b initialization fails.
func NewFieldSampler() *FieldSampler {
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	return NewFieldSamplerWithSeed(seed)
}

// NewFieldSamplerWithSeed creates a new FieldSampler with a user supplied seed.
//
// Panics when blake2b initialization fails.
func NewFieldSamplerWithSeed(seed []byte) *FieldSampler {
	prng, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}

	if _, err = prng.Write(seed); err != nil {
		panic(err)
	}

	return &FieldSampler{
		prngWriter: prng,
		prngReader: prng.Clone(),
	}
}

// Read implements the [io.Reader] interface.
func (s *FieldSampler) Read(p []byte) (n int, err error) {
	return s.prngReader.Read(p)
}

// Write implements the [io.Writer] interface.
// Written bytes are absorbed into the sampler state,
// but are only visible to reads after Finalize.
func (s *FieldSampler) Write(p []byte) (n int, err error) {
	return s.prngWriter.Write(p)
}

// Reset resets the FieldSampler to its initial state.
func (s *FieldSampler) Reset() {
	s.prngWriter.Reset()
	s.prngReader.Reset()
}

// Finalize finalizes the FieldSampler,
// so that absorbed bytes are reflected in subsequent samples.
func (s *FieldSampler) Finalize() {
	s.prngReader = s.prngWriter.Clone()
}

// SampleAssign uniformly samples a field element and writes it to eOut.
func (s *FieldSampler) SampleAssign(eOut *fr.Element) {
	if _, err := s.prngReader.Read(s.buf[:]); err != nil {
		panic(err)
	}
	eOut.SetBytes(s.buf[:])
}

// Sample uniformly samples a field element.
func (s *FieldSampler) Sample() fr.Element {
	var e fr.Element
	s.SampleAssign(&e)
	return e
}

// SampleVec uniformly samples a vector of n field elements.
func (s *FieldSampler) SampleVec(n int) []fr.Element {
	v := make([]fr.Element, n)
	for i := range v {
		s.SampleAssign(&v[i])
	}
	return v
}
