// Package num implements various utility functions regarding numeric types.
package num

// IsPowerOfTwo returns whether x is a power of two.
// Returns false for non-positive x.
func IsPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}
