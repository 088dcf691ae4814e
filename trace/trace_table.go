// Package trace implements the trace extension pipeline of a STARK prover:
// interpolation of an execution trace into column polynomials, and their
// evaluation over the low-degree extension domain.
package trace

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/zkforge/stark-trace/num"
)

// TraceTable is a raw execution trace: a rectangular matrix of field elements
// with one column per register and one row per execution step.
// Columns are stored contiguously.
type TraceTable struct {
	columns [][]fr.Element
}

// NewTraceTable creates a TraceTable from the given columns.
// The columns are used directly, not copied.
//
// Panics if there are no columns, or if the columns do not all have the same
// power-of-two length.
func NewTraceTable(columns [][]fr.Element) *TraceTable {
	if len(columns) == 0 {
		panic("trace table must have at least one column")
	}
	length := len(columns[0])
	if !num.IsPowerOfTwo(length) {
		panic("trace length must be a power of two")
	}
	for _, col := range columns {
		if len(col) != length {
			panic("trace columns must have the same length")
		}
	}

	return &TraceTable{
		columns: columns,
	}
}

// NewEmptyTraceTable creates a zeroed TraceTable with the given dimensions.
//
// Panics if width is not positive or length is not a power of two.
func NewEmptyTraceTable(width, length int) *TraceTable {
	if width <= 0 {
		panic("trace table must have at least one column")
	}
	if !num.IsPowerOfTwo(length) {
		panic("trace length must be a power of two")
	}

	columns := make([][]fr.Element, width)
	for i := range columns {
		columns[i] = make([]fr.Element, length)
	}

	return &TraceTable{
		columns: columns,
	}
}

// Width returns the number of columns.
func (t *TraceTable) Width() int {
	return len(t.columns)
}

// Length returns the number of rows.
func (t *TraceTable) Length() int {
	return len(t.columns[0])
}

// Column returns the i-th column.
func (t *TraceTable) Column(i int) []fr.Element {
	return t.columns[i]
}

// Get returns the value of column col at row.
func (t *TraceTable) Get(col, row int) fr.Element {
	return t.columns[col][row]
}

// Set sets the value of column col at row.
func (t *TraceTable) Set(col, row int, v fr.Element) {
	t.columns[col][row] = v
}

// Row returns the values of all columns at row, in column order.
func (t *TraceTable) Row(row int) []fr.Element {
	r := make([]fr.Element, t.Width())
	for i := range t.columns {
		r[i] = t.columns[i][row]
	}
	return r
}
