package trace_test

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"

	"github.com/zkforge/stark-trace/csprng"
	"github.com/zkforge/stark-trace/proof"
	"github.com/zkforge/stark-trace/trace"
)

const (
	testWidth  = 4
	testLength = 64
	testBlowup = 8
)

// hornerEval evaluates a coefficient-form polynomial at z, independently of
// the evaluation paths under test.
func hornerEval(coeffs []fr.Element, z fr.Element) fr.Element {
	var res fr.Element
	for i := len(coeffs) - 1; i >= 0; i-- {
		res.Mul(&res, &z)
		res.Add(&res, &coeffs[i])
	}
	return res
}

func randomTraceTable(width, length int, sampler *csprng.FieldSampler) *trace.TraceTable {
	columns := make([][]fr.Element, width)
	for i := range columns {
		columns[i] = sampler.SampleVec(length)
	}
	return trace.NewTraceTable(columns)
}

func TestTraceTable(t *testing.T) {
	sampler := csprng.NewFieldSamplerWithSeed([]byte("trace-table-test"))

	t.Run("Dimensions", func(t *testing.T) {
		table := randomTraceTable(testWidth, testLength, sampler)
		assert.Equal(t, testWidth, table.Width())
		assert.Equal(t, testLength, table.Length())
		assert.Equal(t, table.Get(2, 5), table.Row(5)[2])
	})

	t.Run("InvalidDimensions", func(t *testing.T) {
		assert.Panics(t, func() { trace.NewTraceTable(nil) })
		assert.Panics(t, func() { trace.NewEmptyTraceTable(0, testLength) })
		assert.Panics(t, func() { trace.NewEmptyTraceTable(testWidth, testLength-1) })
		assert.Panics(t, func() {
			trace.NewTraceTable([][]fr.Element{
				make([]fr.Element, testLength),
				make([]fr.Element, 2*testLength),
			})
		})
	})
}

func TestTraceBuilder(t *testing.T) {
	sampler := csprng.NewFieldSamplerWithSeed([]byte("trace-builder-test"))
	table := randomTraceTable(testWidth, testLength, sampler)
	domain := trace.NewStarkDomain(testLength, testBlowup)
	polyTable := trace.NewTraceBuilder(domain).Build(table)

	t.Run("InterpolationConsistency", func(t *testing.T) {
		g := domain.TraceGenerator()
		point := fr.One()
		for row := 0; row < testLength; row++ {
			evals := polyTable.EvaluateAt(point)
			for col := 0; col < testWidth; col++ {
				assert.Equal(t, table.Get(col, row), evals[col])
			}
			point.Mul(&point, &g)
		}
	})

	t.Run("PolyLength", func(t *testing.T) {
		assert.Equal(t, testWidth, polyTable.Width())
		assert.Equal(t, testLength, polyTable.PolyLength())
	})

	t.Run("FrameCorrectness", func(t *testing.T) {
		z := sampler.Sample()
		g := domain.TraceGenerator()
		frame := polyTable.GetEvaluationFrame(z, g)

		var zg fr.Element
		zg.Mul(&z, &g)
		for col := 0; col < testWidth; col++ {
			assert.Equal(t, hornerEval(polyTable.Poly(col), z), frame.Current[col])
			assert.Equal(t, hornerEval(polyTable.Poly(col), zg), frame.Next[col])
		}
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		small := randomTraceTable(testWidth, testLength/2, sampler)
		assert.Panics(t, func() { trace.NewTraceBuilder(domain).Build(small) })
	})
}

func TestTraceLde(t *testing.T) {
	sampler := csprng.NewFieldSamplerWithSeed([]byte("trace-lde-test"))
	table := randomTraceTable(testWidth, testLength, sampler)
	domain := trace.NewStarkDomain(testLength, testBlowup)
	polyTable := trace.NewTraceBuilder(domain).Build(table)
	lde := trace.NewTraceLde(polyTable, domain)

	t.Run("Dimensions", func(t *testing.T) {
		assert.Equal(t, testWidth, lde.Width())
		assert.Equal(t, testLength*testBlowup, lde.DomainSize())
	})

	t.Run("LdeConsistency", func(t *testing.T) {
		h := domain.LdeGenerator()
		point := domain.LdeOffset()
		for step := 0; step < lde.DomainSize(); step++ {
			for col := 0; col < testWidth; col++ {
				assert.Equal(t, hornerEval(polyTable.Poly(col), point), lde.Get(col, step))
			}
			point.Mul(&point, &h)
		}
	})

	t.Run("FrameFromLde", func(t *testing.T) {
		z := sampler.Sample()
		frame := lde.GetEvaluationFrame(z)
		assert.Equal(t, polyTable.GetEvaluationFrame(z, domain.TraceGenerator()), frame)
		assert.Equal(t, polyTable.EvaluateAt(z), lde.EvaluateAt(z))
	})
}

func TestEndToEnd(t *testing.T) {
	// Width 2, length 4: columns [1,2,3,4] and [5,6,7,8].
	columns := [][]fr.Element{
		{fr.NewElement(1), fr.NewElement(2), fr.NewElement(3), fr.NewElement(4)},
		{fr.NewElement(5), fr.NewElement(6), fr.NewElement(7), fr.NewElement(8)},
	}
	table := trace.NewTraceTable(columns)
	domain := trace.NewStarkDomain(4, 4)
	polyTable := trace.NewTraceBuilder(domain).Build(table)

	// Domain point of index 0 is g^0 = 1; evaluating there must reproduce the
	// first trace row.
	row0 := polyTable.EvaluateAt(fr.One())
	assert.Equal(t, fr.NewElement(1), row0[0])
	assert.Equal(t, fr.NewElement(5), row0[1])

	sampler := csprng.NewFieldSamplerWithSeed([]byte("end-to-end-test"))
	z := sampler.Sample()
	frame := polyTable.GetEvaluationFrame(z, domain.TraceGenerator())
	evaluations := sampler.SampleVec(3)

	oodFrame := proof.NewOodFrame(frame, evaluations)
	buf := new(bytes.Buffer)
	_, err := oodFrame.WriteTo(buf)
	assert.NoError(t, err)

	parsed, err := proof.ReadOodFrame(buf.Bytes(), 2, 3)
	assert.NoError(t, err)
	parsedFrame, parsedEvals, err := parsed.Parse(2, 3)
	assert.NoError(t, err)

	assert.Equal(t, frame, parsedFrame)
	assert.Equal(t, evaluations, parsedEvals)
}
