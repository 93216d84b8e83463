// Package fibonacci computes Fibonacci sequences and single terms.
//
// Both functions are pure and iterate in linear time. Arithmetic is done on
// int64, so terms past index 92 overflow and wrap.
package fibonacci

// Sequence returns the first n terms of the Fibonacci sequence, starting
// 0, 1. A non-positive n yields an empty sequence.
func Sequence(n int) []int64 {
	switch {
	case n <= 0:
		return []int64{}
	case n == 1:
		return []int64{0}
	case n == 2:
		return []int64{0, 1}
	}

	seq := make([]int64, 2, n)
	seq[0], seq[1] = 0, 1
	for i := 2; i < n; i++ {
		seq = append(seq, seq[i-1]+seq[i-2])
	}

	return seq
}

// Nth returns the term at zero-based index n. The boolean is false when n is
// negative, in which case there is no term.
func Nth(n int) (int64, bool) {
	switch {
	case n < 0:
		return 0, false
	case n == 0:
		return 0, true
	case n == 1:
		return 1, true
	}

	var a, b int64 = 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}

	return b, true
}
