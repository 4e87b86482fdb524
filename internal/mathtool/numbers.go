package mathtool

import (
	"fmt"
	"math/big"
	"strings"
)

// maxFactorial bounds Factorial input.
const maxFactorial = 50000

// DigitCount returns how many digits a non-negative integer literal has.
func DigitCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty input")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not a non-negative integer", s)
		}
	}
	return len(s), nil
}

// Divisors returns every positive divisor of n in ascending order.
func Divisors(n int64) ([]int64, error) {
	if n < 1 {
		return nil, fmt.Errorf("n must be at least 1, got %d", n)
	}
	var low, high []int64
	for d := int64(1); d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		low = append(low, d)
		if q := n / d; q != d {
			high = append(high, q)
		}
	}
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}
	return low, nil
}

// IsPrime reports whether n is prime by trial division.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Factorial computes n! for 1 <= n <= 50000.
func Factorial(n int) (*big.Int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("n must be greater than 0, got %d", n)
	}
	if n > maxFactorial {
		return nil, fmt.Errorf("n must not exceed %d, got %d", maxFactorial, n)
	}
	return new(big.Int).MulRange(1, int64(n)), nil
}
