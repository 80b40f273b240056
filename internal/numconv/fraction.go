package numconv

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/roach88/getkit/internal/errs"
)

// Fraction is a numerator/denominator pair. Den is always positive; the
// sign lives on Num.
type Fraction struct {
	Num *big.Int `json:"numerator"`
	Den *big.Int `json:"denominator"`
}

// String renders the fraction as "num/den".
func (f Fraction) String() string {
	return f.Num.String() + "/" + f.Den.String()
}

// Rat returns the fraction as an exact rational.
func (f Fraction) Rat() *big.Rat {
	return new(big.Rat).SetFrac(f.Num, f.Den)
}

// Float64 returns the nearest float64 to the fraction's value.
func (f Fraction) Float64() float64 {
	v, _ := f.Rat().Float64()
	return v
}

// Frac converts x to a simplified fraction with no repeating digits.
func Frac(x float64) (Fraction, error) {
	return ToFraction(x, 0, true)
}

// ToFraction converts x to a fraction.
//
// The last repeating fractional digits of x are treated as a block that
// repeats forever; repeating == 0 treats x as exact. When simplify is set,
// numerator and denominator are divided by their GCD.
//
// x is rendered with strconv.FormatFloat(x, 'f', -1, 64) before conversion,
// so ToFraction(0.13, 1, true) reads the digits "13" and yields 2/15.
func ToFraction(x float64, repeating int, simplify bool) (Fraction, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Fraction{}, errs.Invalid("fraction", "cannot convert %v", x)
	}
	return ParseFraction(strconv.FormatFloat(x, 'f', -1, 64), repeating, simplify)
}

// ParseFraction converts decimal text such as "-0.1333" or "2.50" to a
// fraction. See ToFraction for the meaning of repeating and simplify.
//
// Only plain decimal notation is accepted: an optional sign, digits, and at
// most one decimal point. Exponents are rejected.
func ParseFraction(s string, repeating int, simplify bool) (Fraction, error) {
	neg, intPart, fracPart, err := splitDecimal(s)
	if err != nil {
		return Fraction{}, err
	}
	if repeating < 0 {
		return Fraction{}, errs.Invalid("fraction", "repeating digit count %d is negative", repeating)
	}
	decimals := len(fracPart)
	if repeating > decimals {
		return Fraction{}, errs.Invalid("fraction",
			"repeating digit count %d exceeds the %d decimal digits of %q", repeating, decimals, s)
	}

	// all is the value scaled by 10^decimals: every digit, point removed.
	all, ok := new(big.Int).SetString(intPart+fracPart, 10)
	if !ok {
		return Fraction{}, errs.Invalid("fraction", "malformed decimal %q", s)
	}

	var num, den *big.Int
	if repeating == 0 {
		num = all
		den = pow10(decimals)
	} else {
		// (x*10^r - trunc(x*10^reg)/10^reg) * 10^reg with r+reg = decimals
		// reduces to all - trunc(all / 10^r).
		regular := decimals - repeating
		num = new(big.Int).Sub(all, new(big.Int).Quo(all, pow10(repeating)))
		den = new(big.Int).Sub(pow10(repeating), big.NewInt(1))
		den.Mul(den, pow10(regular))
	}

	if simplify {
		g := new(big.Int).GCD(nil, nil, num, den)
		num.Quo(num, g)
		den.Quo(den, g)
	}
	if neg {
		num.Neg(num)
	}
	return Fraction{Num: num, Den: den}, nil
}

// DecimalCount returns the number of digits after the decimal point in the
// shortest round-trip rendering of x. Whole numbers have zero decimals.
//
// The rendering is what a reader would see, not the exact binary value:
// DecimalCount(0.1) is 1, but the sum of float64 values 0.1 and 0.2 renders
// as 0.30000000000000004 and counts 17. Constant expressions such as
// 0.1+0.2 fold exactly to 0.3 at compile time and count 1.
func DecimalCount(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return DecimalCountString(strconv.FormatFloat(math.Abs(x), 'f', -1, 64))
}

// DecimalCountString returns the number of characters after the decimal
// point in s, or 0 if s has none.
func DecimalCountString(s string) int {
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}

// splitDecimal validates s and splits it into sign, integer digits and
// fractional digits.
func splitDecimal(s string) (neg bool, intPart, fracPart string, err error) {
	t := strings.TrimSpace(s)
	if t != "" && (t[0] == '-' || t[0] == '+') {
		neg = t[0] == '-'
		t = t[1:]
	}
	intPart, fracPart, _ = strings.Cut(t, ".")
	if intPart == "" && fracPart == "" {
		return false, "", "", errs.Invalid("fraction", "malformed decimal %q", s)
	}
	for _, part := range []string{intPart, fracPart} {
		for i := 0; i < len(part); i++ {
			if part[i] < '0' || part[i] > '9' {
				return false, "", "", errs.Invalid("fraction", "malformed decimal %q", s)
			}
		}
	}
	return neg, intPart, fracPart, nil
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
