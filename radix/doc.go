// Package radix provides a mixed-radix candidate generator: an odometer over
// fixed-length digit vectors whose radix grows by one every time the current
// radix is exhausted.
//
// What
//
//   - Counter enumerates every vector of length n with digits in [0, base).
//   - Position 0 is the least-significant digit and increments fastest.
//   - After [base-1, ..., base-1] the base becomes base+1 and the vector
//     restarts at all zeros.
//
// Why
//
//	The coloring enumerator reads each vector as a tentative color per vertex.
//	Exhausting small bases first biases the search toward few colors without
//	ever storing more than the current vector.
//
// Determinism
//
//	The sequence is a pure function of (n, initial base). Two counters built
//	with the same arguments produce identical sequences.
//
// Edge cases
//
//   - n == 0: every call to Next yields the empty vector and bumps the base,
//     so the sequence is one empty vector per base.
//   - base < 1 at construction is raised to 1.
//
// Complexity
//
//   - Next: amortised O(1), worst case O(n) on a full carry.
//   - Memory: O(n).
//
// Usage
//
//	c := radix.New(3, 2)
//	for i := 0; i < 8; i++ {
//	    fmt.Println(c.Next(), c.Base())
//	}
package radix
