package trace

import (
	"runtime"
	"sync"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"

	"github.com/zkforge/stark-trace/air"
	"github.com/zkforge/stark-trace/logger"
)

// TraceLde holds the evaluations of the trace polynomials over the low-degree
// extension domain, ready for a vector commitment. It retains the polynomial
// table, so out-of-domain evaluation frames can be produced at any point
// without re-deriving the polynomials.
type TraceLde struct {
	polyTable *TracePolyTable
	domain    *StarkDomain

	columns [][]fr.Element
}

// NewTraceLde evaluates every column polynomial of polyTable over the LDE
// domain of domain. The i-th value of each column is the evaluation at
// LdeOffset * LdeGenerator^i.
//
// This is the most expensive operation of the pipeline; columns are extended
// concurrently.
//
// Panics if the polynomial length does not match the trace domain.
func NewTraceLde(polyTable *TracePolyTable, domain *StarkDomain) *TraceLde {
	if polyTable.PolyLength() != domain.TraceLength() {
		panic("poly table length does not match trace domain")
	}

	start := time.Now()

	columns := make([][]fr.Element, polyTable.Width())

	workSize := min(runtime.NumCPU(), polyTable.Width())
	jobs := make(chan int)
	go func() {
		defer close(jobs)
		for i := 0; i < polyTable.Width(); i++ {
			jobs <- i
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workSize)

	for i := 0; i < workSize; i++ {
		go func() {
			defer wg.Done()

			for j := range jobs {
				evals := make([]fr.Element, domain.LdeDomainSize())
				copy(evals, polyTable.Poly(j))
				domain.ldeDomain.FFT(evals, fft.DIF, fft.OnCoset())
				fft.BitReverse(evals)
				columns[j] = evals
			}
		}()
	}

	wg.Wait()

	log := logger.Logger()
	log.Debug().
		Dur("took", time.Since(start)).
		Int("columns", polyTable.Width()).
		Int("domainSize", domain.LdeDomainSize()).
		Msg("trace extended over lde domain")

	return &TraceLde{
		polyTable: polyTable,
		domain:    domain,

		columns: columns,
	}
}

// Width returns the number of trace columns.
func (t *TraceLde) Width() int {
	return len(t.columns)
}

// DomainSize returns the size of the LDE domain.
func (t *TraceLde) DomainSize() int {
	return t.domain.LdeDomainSize()
}

// Column returns the evaluations of the i-th column polynomial over the LDE
// domain, in natural domain order.
func (t *TraceLde) Column(i int) []fr.Element {
	return t.columns[i]
}

// Get returns the evaluation of column col at the step-th LDE domain point.
func (t *TraceLde) Get(col, step int) fr.Element {
	return t.columns[col][step]
}

// EvaluateAt evaluates every column polynomial at an arbitrary point z,
// preserving column order.
func (t *TraceLde) EvaluateAt(z fr.Element) []fr.Element {
	return t.polyTable.EvaluateAt(z)
}

// GetEvaluationFrame returns the evaluation frame at an out-of-domain point z:
// all columns evaluated at z and at z*g, where g is the trace-domain generator.
func (t *TraceLde) GetEvaluationFrame(z fr.Element) *air.EvaluationFrame {
	return t.polyTable.GetEvaluationFrame(z, t.domain.TraceGenerator())
}
