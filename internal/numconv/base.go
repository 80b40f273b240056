package numconv

import (
	"encoding/base64"
	"math/big"
	"strings"

	"github.com/roach88/getkit/internal/errs"
)

const (
	// MinBase and MaxBase bound the positional bases ConvertBase accepts.
	MinBase = 2
	MaxBase = 36

	// Base64 selects the byte-text encoding branch of ConvertBase.
	Base64 = 64
)

// ConvertBase converts value from base from to base to.
//
// Base 64 is not a positional base here: from == 64 decodes value as
// standard padded base64 and returns the decoded bytes as text, ignoring
// to; otherwise to == 64 encodes value's bytes, ignoring from.
//
// For bases 2 through 36 value is a non-negative numeral using 0-9 and
// A-Z (case-insensitive). Zero converts to "0".
func ConvertBase(value string, from, to int) (string, error) {
	if from == Base64 {
		decoded, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return "", errs.WrapInvalid("base", err, "invalid base64 payload")
		}
		return string(decoded), nil
	}
	if to == Base64 {
		return base64.StdEncoding.EncodeToString([]byte(value)), nil
	}

	n, err := ParseRadix(value, from)
	if err != nil {
		return "", err
	}
	return FormatRadix(n, to)
}

// ParseRadix parses a numeral in the given base into an arbitrary-precision
// integer. Digits are accumulated from the least significant end:
// total += digit * base^position.
func ParseRadix(value string, base int) (*big.Int, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}
	digits := strings.ToUpper(value)
	if digits == "" {
		return nil, errs.Invalid("base", "empty numeral")
	}

	b := big.NewInt(int64(base))
	place := big.NewInt(1)
	total := new(big.Int)
	term := new(big.Int)
	for i := len(digits) - 1; i >= 0; i-- {
		d, ok := digitValue(digits[i])
		if !ok || d >= base {
			return nil, errs.Invalid("base", "invalid digit %q at position %d for base %d", digits[i], i, base)
		}
		term.SetInt64(int64(d))
		total.Add(total, term.Mul(term, place))
		place.Mul(place, b)
	}
	return total, nil
}

// FormatRadix renders a non-negative integer in the given base by repeated
// division, most significant digit first.
func FormatRadix(n *big.Int, base int) (string, error) {
	if err := checkBase(base); err != nil {
		return "", err
	}
	if n.Sign() < 0 {
		return "", errs.Invalid("base", "negative value %s", n)
	}
	if n.Sign() == 0 {
		return "0", nil
	}

	b := big.NewInt(int64(base))
	rem := new(big.Int)
	acc := new(big.Int).Set(n)
	var out []byte
	for acc.Sign() != 0 {
		acc.QuoRem(acc, b, rem)
		out = append(out, digitChar(int(rem.Int64())))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return errs.Invalid("base", "unsupported base %d: must be %d-%d or %d", base, MinBase, MaxBase, Base64)
	}
	return nil
}

// digitValue maps '0'-'9' to 0-9 and 'A'-'Z' to 10-35.
func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c) - 48, true
	case c >= 'A' && c <= 'Z':
		return int(c) - 55, true
	}
	return 0, false
}

func digitChar(d int) byte {
	if d < 10 {
		return byte(d + 48)
	}
	return byte(d + 55)
}
