package common

import "golang.org/x/exp/constraints"

// DivCeil returns the ceiling of a/b for positive b.
func DivCeil[T constraints.Integer](a, b T) T {
	return (a + b - 1) / b
}
