package numconv

import (
	"math"
	"math/big"

	"github.com/roach88/getkit/internal/errs"
)

// GCD returns the greatest common divisor of |a| and |b| using Euclid's
// algorithm, with gcd(n, 0) = |n| and gcd(0, 0) = 0.
//
// The only unrepresentable result is 2^63, from math.MinInt64 operands;
// it is reported as an overflow.
func GCD(a, b int64) (int64, error) {
	g := gcdUint(absUint(a), absUint(b))
	if g > math.MaxInt64 {
		return 0, errs.Overflow("gcd", "gcd(%d, %d) does not fit in int64", a, b)
	}
	return int64(g), nil
}

// LCM returns the least common multiple |a*b| / gcd(a, b), with
// lcm(0, n) = 0.
func LCM(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	ua, ub := absUint(a), absUint(b)
	q := ua / gcdUint(ua, ub)
	if q != 0 && ub > math.MaxInt64/q {
		return 0, errs.Overflow("lcm", "lcm(%d, %d) does not fit in int64", a, b)
	}
	return int64(q * ub), nil
}

// BigGCD returns the non-negative GCD of a and b.
func BigGCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}

// BigLCM returns the non-negative LCM of a and b; zero if either is zero.
func BigLCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	l := new(big.Int).Mul(a, b)
	l.Abs(l)
	return l.Quo(l, BigGCD(a, b))
}

func gcdUint(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func absUint(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}
