// SPDX-License-Identifier: MIT
// Package: chromata/radix
//
// counter.go: growing-radix odometer.
//
// Contract:
//   • First Next() returns the all-zero vector at the initial base.
//   • Odometer order within a base; position 0 is least significant.
//   • Overflow of the last position grows the base by one and resets digits.
//   • Base never decreases; the sequence never ends.

package radix

// minBase is the smallest radix a Counter accepts; smaller values are raised.
const minBase = 1

// Counter is a forward-only mixed-radix generator. It is not safe for
// concurrent use; one Counter belongs to one consumer.
type Counter struct {
	n       int    // vector length, fixed at construction
	base    int    // current radix, monotonic non-decreasing
	digits  []int  // current vector, owned exclusively
	started bool   // false until the first Next
	steps   uint64 // vectors produced so far
}

// New returns a Counter over n digits starting at the given base.
// n < 0 is treated as 0 and base < 1 as 1; New never fails.
// Complexity: O(n) time and space.
func New(n, base int) *Counter {
	if n < 0 {
		n = 0
	}
	if base < minBase {
		base = minBase
	}

	return &Counter{
		n:      n,
		base:   base,
		digits: make([]int, n),
	}
}

// Next advances the counter and returns the current vector.
// The returned slice is owned by the Counter and is overwritten by the
// following call; copy it (or use Digits) to retain it.
func (c *Counter) Next() []int {
	c.steps++
	if !c.started {
		// digits already hold the all-zero vector at the initial base
		c.started = true
		return c.digits
	}

	// ripple carry from position 0 upward
	for i := 0; i < c.n; i++ {
		c.digits[i]++
		if c.digits[i] < c.base {
			return c.digits
		}
		c.digits[i] = 0
	}

	// every position wrapped: the current base is exhausted;
	// digits are all zero again, which is the first vector of base+1
	c.base++

	return c.digits
}

// Digits returns a copy of the current vector, or nil before the first Next.
func (c *Counter) Digits() []int {
	if !c.started {
		return nil
	}
	out := make([]int, c.n)
	copy(out, c.digits)

	return out
}

// Base reports the current radix.
func (c *Counter) Base() int { return c.base }

// Len reports the number of digits per vector.
func (c *Counter) Len() int { return c.n }

// Steps reports how many vectors Next has produced.
func (c *Counter) Steps() uint64 { return c.steps }
