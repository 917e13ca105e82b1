// Package gcd computes greatest common divisors of unsigned 64-bit integers
// with the iterative Euclidean algorithm.
package gcd

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned by Fold when there is nothing to fold.
var ErrEmpty = errors.New("gcd: no numbers to fold")

// PreconditionViolation reports a zero operand reaching the engine. Callers
// are expected to filter zeros out before asking for a divisor, so seeing one
// means the caller has a bug.
type PreconditionViolation struct {
	A, B uint64
}

func (e *PreconditionViolation) Error() string {
	return fmt.Sprintf("gcd: operands must be nonzero (got %d, %d)", e.A, e.B)
}

// GCD returns the greatest common divisor of a and b. Both must be nonzero.
func GCD(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, &PreconditionViolation{A: a, B: b}
	}
	n, m := a, b
	for m != 0 {
		if m < n {
			n, m = m, n
		}
		m %= n
	}
	return n, nil
}

// MustGCD is like GCD but panics when an operand is zero.
func MustGCD(a, b uint64) uint64 {
	g, err := GCD(a, b)
	if err != nil {
		panic(err)
	}
	return g
}

// Step observes one fold iteration: the accumulator before the step, the
// operand folded in, and the new accumulator.
type Step func(acc, operand, next uint64)

// Fold reduces nums left to right, starting from nums[0]. A single number is
// returned unchanged.
func Fold(nums []uint64) (uint64, error) {
	return FoldWith(nums, nil)
}

// FoldWith is Fold with an optional observer called after every step.
func FoldWith(nums []uint64, step Step) (uint64, error) {
	if len(nums) == 0 {
		return 0, ErrEmpty
	}
	acc := nums[0]
	for _, m := range nums[1:] {
		next, err := GCD(acc, m)
		if err != nil {
			return 0, err
		}
		if step != nil {
			step(acc, m, next)
		}
		acc = next
	}
	return acc, nil
}
