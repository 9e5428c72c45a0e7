package codec

import (
	"math"
)

/*
 * SolveDimensions picks the geometry of the smallest rectangular pixel grid
 * able to hold at least minPixels pixels. Starting from n = minPixels it
 * looks for the largest divisor w of n with w <= sqrt(n) and returns
 * (w, n/w), the most square rectangle of that area. w = 1 always divides,
 * so the search succeeds at the first n and no pixels beyond minPixels are
 * ever allocated; the retry loop only exists so a stricter shape policy
 * could reject an area and move on to the next one.
 */
func SolveDimensions(minPixels int) (int, int) {
	if minPixels < 1 {
		return 1, 1
	}
	for n := minPixels; ; n++ {
		if w := widestDivisor(n); w > 0 {
			return w, n / w
		}
	}
}

// widestDivisor returns the largest divisor of n not exceeding sqrt(n),
// or 0 if n has no such divisor (cannot happen for n >= 1).
func widestDivisor(n int) int {
	s := int(math.Sqrt(float64(n)))
	// float sqrt can land one off for very large n
	for s > 1 && s*s > n {
		s--
	}
	for (s+1)*(s+1) <= n {
		s++
	}
	for w := s; w >= 1; w-- {
		if n%w == 0 {
			return w
		}
	}
	return 0
}
