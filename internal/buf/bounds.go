// Package buf provides overflow-safe offset arithmetic for buffer walks.
package buf

import "math"

// AddOverflowSafe returns a+b, with ok=false when the sum overflows int.
// Operands are non-negative: cursors only move forward.
func AddOverflowSafe(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// MulOverflowSafe returns a*b, with ok=false when the product overflows int.
// This guards size*count field extents against wrap-around.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// Has reports whether b[off:off+n] lies within b.
func Has(b []byte, off, n int) bool {
	end, ok := AddOverflowSafe(off, n)
	return ok && end <= len(b)
}
