package trace

import (
	"runtime"
	"sync"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"

	"github.com/zkforge/stark-trace/logger"
)

// TraceBuilder interpolates the columns of a TraceTable into polynomial form
// over the trace domain.
type TraceBuilder struct {
	domain *StarkDomain
}

// NewTraceBuilder creates a new TraceBuilder over the given domain.
func NewTraceBuilder(domain *StarkDomain) *TraceBuilder {
	return &TraceBuilder{
		domain: domain,
	}
}

// Build interpolates every column of table over the trace domain and returns
// the resulting polynomial table. Each column yields a coefficient sequence of
// the trace length, in the same column order as the table.
//
// Columns are interpolated concurrently; they are algebraically independent,
// so workers share no mutable state.
//
// Panics if the table length does not match the trace domain.
func (b *TraceBuilder) Build(table *TraceTable) *TracePolyTable {
	if table.Length() != b.domain.TraceLength() {
		panic("trace table length does not match trace domain")
	}

	start := time.Now()

	polys := make([][]fr.Element, table.Width())

	workSize := min(runtime.NumCPU(), table.Width())
	jobs := make(chan int)
	go func() {
		defer close(jobs)
		for i := 0; i < table.Width(); i++ {
			jobs <- i
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workSize)

	for i := 0; i < workSize; i++ {
		go func() {
			defer wg.Done()

			for j := range jobs {
				coeffs := make([]fr.Element, table.Length())
				copy(coeffs, table.Column(j))
				b.domain.traceDomain.FFTInverse(coeffs, fft.DIF)
				fft.BitReverse(coeffs)
				polys[j] = coeffs
			}
		}()
	}

	wg.Wait()

	log := logger.Logger()
	log.Debug().
		Dur("took", time.Since(start)).
		Int("columns", table.Width()).
		Int("length", table.Length()).
		Msg("trace columns interpolated")

	return NewTracePolyTable(polys)
}
