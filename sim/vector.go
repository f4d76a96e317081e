package sim

import (
	"fmt"
	"strings"
)

// ResourceVector holds one non-negative count per resource category.
// All vectors of a State are index-aligned and share the same length.
type ResourceVector []int

// Clone returns an independent copy. A nil vector clones to nil.
func (v ResourceVector) Clone() ResourceVector {
	if v == nil {
		return nil
	}
	out := make(ResourceVector, len(v))
	copy(out, v)
	return out
}

// LessOrEqual reports whether v[i] <= other[i] for every category.
// Vectors of different lengths are never comparable.
func (v ResourceVector) LessOrEqual(other ResourceVector) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] > other[i] {
			return false
		}
	}
	return true
}

// Add adds other into v elementwise. Assumes equal lengths.
func (v ResourceVector) Add(other ResourceVector) {
	for i := range v {
		v[i] += other[i]
	}
}

// Sub subtracts other from v elementwise. Assumes equal lengths.
func (v ResourceVector) Sub(other ResourceVector) {
	for i := range v {
		v[i] -= other[i]
	}
}

// Equal reports whether both vectors hold the same values.
func (v ResourceVector) Equal(other ResourceVector) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// Validate checks the length against want and rejects negative entries.
// A negative want skips the length check.
func (v ResourceVector) Validate(want int) error {
	if want >= 0 && len(v) != want {
		return fmt.Errorf("%w: got %d categories, want %d", ErrLengthMismatch, len(v), want)
	}
	for i, n := range v {
		if n < 0 {
			return fmt.Errorf("%w: category %d is %d", ErrNegativeValue, i, n)
		}
	}
	return nil
}

// String renders the vector as "[3 3 2]".
func (v ResourceVector) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = fmt.Sprint(n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
