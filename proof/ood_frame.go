// Package proof implements the out-of-domain evaluation frame: the canonical,
// fixed-layout serialization that binds the committed trace to the constraint
// argument evaluated at a random point outside the trace domain.
package proof

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/zkforge/stark-trace/air"
)

// OodFrame packages the trace evaluations at an out-of-domain point z and its
// domain shift z*g, together with the constraint evaluations at z, as three
// opaque byte regions for inclusion in the proof transcript.
//
// The regions carry no length prefixes: their boundaries are only meaningful
// together with the trace width and evaluation count fixed by the protocol
// parameters. An OodFrame is always fully populated; construct one directly
// with NewOodFrame, incrementally with an OodFrameBuilder, or from serialized
// bytes with ReadOodFrame.
type OodFrame struct {
	traceAtZ1   []byte
	traceAtZ2   []byte
	evaluations []byte
}

// NewOodFrame serializes the given evaluation frame and out-of-domain
// constraint evaluations into an OodFrame.
func NewOodFrame(frame *air.EvaluationFrame, evaluations []fr.Element) OodFrame {
	return OodFrame{
		traceAtZ1:   elementsToCanonicalBytes(frame.Current),
		traceAtZ2:   elementsToCanonicalBytes(frame.Next),
		evaluations: elementsToCanonicalBytes(evaluations),
	}
}

// ReadOodFrame reconstructs an OodFrame from data, the bytes previously
// produced by WriteTo. The region boundaries are recovered from traceWidth
// and numEvaluations, which must come from the shared protocol parameters.
func ReadOodFrame(data []byte, traceWidth, numEvaluations int) (OodFrame, error) {
	traceBytes := traceWidth * fr.Bytes
	totalBytes := (2*traceWidth + numEvaluations) * fr.Bytes
	if len(data) != totalBytes {
		return OodFrame{}, &FailedToParseOodFrameError{
			Detail: fmt.Sprintf("expected %d bytes, got %d", totalBytes, len(data)),
		}
	}

	return OodFrame{
		traceAtZ1:   data[:traceBytes],
		traceAtZ2:   data[traceBytes : 2*traceBytes],
		evaluations: data[2*traceBytes:],
	}, nil
}

// WriteTo writes the trace-at-z1, trace-at-z2 and evaluations regions to w,
// in that fixed order, with no delimiters or length prefixes.
// It implements the [io.WriterTo] interface.
func (f OodFrame) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, region := range [][]byte{f.traceAtZ1, f.traceAtZ2, f.evaluations} {
		n, err := w.Write(region)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// Parse decodes the byte regions back into an evaluation frame and a vector of
// constraint evaluations. traceWidth and numEvaluations must come from the
// shared protocol parameters; a mismatch with the decoded element counts
// indicates a malformed proof and is returned as a typed error.
func (f OodFrame) Parse(traceWidth, numEvaluations int) (*air.EvaluationFrame, []fr.Element, error) {
	current, err := readElements(f.traceAtZ1)
	if err != nil {
		return nil, nil, &FailedToParseOodFrameError{Detail: err.Error()}
	}
	if len(current) != traceWidth {
		return nil, nil, &WrongNumberOfOodTraceElementsError{Expected: traceWidth, Actual: len(current)}
	}

	next, err := readElements(f.traceAtZ2)
	if err != nil {
		return nil, nil, &FailedToParseOodFrameError{Detail: err.Error()}
	}
	if len(next) != traceWidth {
		return nil, nil, &WrongNumberOfOodTraceElementsError{Expected: traceWidth, Actual: len(next)}
	}

	evaluations, err := readElements(f.evaluations)
	if err != nil {
		return nil, nil, &FailedToParseOodFrameError{Detail: err.Error()}
	}
	if len(evaluations) != numEvaluations {
		return nil, nil, &WrongNumberOfOodEvaluationElementsError{Expected: numEvaluations, Actual: len(evaluations)}
	}

	return &air.EvaluationFrame{Current: current, Next: next}, evaluations, nil
}

// OodFrameBuilder assembles an OodFrame one region at a time, for the prover
// flow where the evaluation frame and the constraint evaluations become
// available in either order. Each region may be set exactly once; setting a
// region twice, or building before both are set, is a bug in the calling
// pipeline and panics.
type OodFrameBuilder struct {
	traceAtZ1   []byte
	traceAtZ2   []byte
	evaluations []byte

	frameSet bool
	evalSet  bool
}

// SetEvaluationFrame serializes frame into the trace regions of the builder.
//
// Panics if an evaluation frame was already set.
func (b *OodFrameBuilder) SetEvaluationFrame(frame *air.EvaluationFrame) {
	if b.frameSet {
		panic("evaluation frame already set")
	}
	b.traceAtZ1 = elementsToCanonicalBytes(frame.Current)
	b.traceAtZ2 = elementsToCanonicalBytes(frame.Next)
	b.frameSet = true
}

// SetConstraintEvaluations serializes evaluations into the evaluations region
// of the builder.
//
// Panics if constraint evaluations were already set.
func (b *OodFrameBuilder) SetConstraintEvaluations(evaluations []fr.Element) {
	if b.evalSet {
		panic("constraint evaluations already set")
	}
	b.evaluations = elementsToCanonicalBytes(evaluations)
	b.evalSet = true
}

// Build assembles the fully populated OodFrame.
//
// Panics unless both the evaluation frame and the constraint evaluations have
// been set: a partially populated frame must never reach serialization.
func (b *OodFrameBuilder) Build() OodFrame {
	if !b.frameSet {
		panic("evaluation frame not set")
	}
	if !b.evalSet {
		panic("constraint evaluations not set")
	}
	return OodFrame{
		traceAtZ1:   b.traceAtZ1,
		traceAtZ2:   b.traceAtZ2,
		evaluations: b.evaluations,
	}
}

// elementsToCanonicalBytes concatenates the canonical encodings of elements.
func elementsToCanonicalBytes(elements []fr.Element) []byte {
	bytes := make([]byte, 0, len(elements)*fr.Bytes)
	for i := range elements {
		b := elements[i].Bytes()
		bytes = append(bytes, b[:]...)
	}
	return bytes
}

// readElements decodes data as a concatenation of canonical element encodings.
// Non-canonical encodings are rejected.
func readElements(data []byte) ([]fr.Element, error) {
	if len(data)%fr.Bytes != 0 {
		return nil, fmt.Errorf("byte length %d is not a multiple of element size %d", len(data), fr.Bytes)
	}

	elements := make([]fr.Element, len(data)/fr.Bytes)
	for i := range elements {
		if err := elements[i].SetBytesCanonical(data[i*fr.Bytes : (i+1)*fr.Bytes]); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return elements, nil
}
