package stairs

import "math/big"

// Count returns the number of ways to climb n steps in strides of 1, 2 or 3.
//
// It recurses three ways on every call and recomputes shared subproblems, so
// the work grows as O(3^n) and the stack as O(n). Count(0) is 1 (the empty
// climb) and any n < 0 has no compositions, so it yields 0.
func Count(n int) int64 {
	if n > 0 {
		return Count(n-1) + Count(n-2) + Count(n-3)
	}
	if n == 0 {
		return 1
	}
	return 0
}

// Table returns the same value as Count using a rolling window over the last
// three counts.
//
// It returns NegativeStepsError for n < 0 and OverflowError once the count no
// longer fits in an int64 (from 73 steps on).
func Table(n int) (int64, error) {
	if n < 0 {
		return 0, NegativeStepsError{Steps: n}
	}

	// a, b, c hold count(i-3), count(i-2), count(i-1).
	var a, b, c int64 = 0, 0, 1
	for i := 1; i <= n; i++ {
		next := a + b + c
		// Terms are non-negative, so a wrap shows up as a sum below c.
		if next < c {
			return 0, OverflowError{Steps: n}
		}
		a, b, c = b, c, next
	}
	return c, nil
}

// Big is Table in arbitrary precision. It only fails for n < 0.
func Big(n int) (*big.Int, error) {
	if n < 0 {
		return nil, NegativeStepsError{Steps: n}
	}

	a, b, c := big.NewInt(0), big.NewInt(0), big.NewInt(1)
	for i := 1; i <= n; i++ {
		next := new(big.Int).Add(a, b)
		next.Add(next, c)
		a, b, c = b, c, next
	}
	return c, nil
}
