package registry

import (
	"errors"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/roach88/getkit/internal/errs"
)

// Args are the loosely typed arguments of a call. Accessors coerce with
// github.com/spf13/cast, so "3", 3 and 3.0 all read as Int 3. Integer text
// is always decimal: "010" is ten, and "0x10" is rejected.
type Args []any

// Len returns the number of arguments.
func (a Args) Len() int {
	return len(a)
}

// Has reports whether argument i was supplied.
func (a Args) Has(i int) bool {
	return i >= 0 && i < len(a)
}

// Float reads argument i as a float64.
func (a Args) Float(i int) (float64, error) {
	if err := a.need(i); err != nil {
		return 0, err
	}
	v, err := cast.ToFloat64E(a[i])
	if err != nil {
		return 0, argErr(i, err, "not a number")
	}
	return v, nil
}

// Int reads argument i as an int64. Fractional values and values outside
// the int64 range are rejected rather than truncated.
func (a Args) Int(i int) (int64, error) {
	if err := a.need(i); err != nil {
		return 0, err
	}
	switch v := a[i].(type) {
	case string:
		return parseDecimalInt(i, v)
	case float64:
		return floatToInt(i, v)
	case float32:
		return floatToInt(i, float64(v))
	}
	v, err := cast.ToInt64E(a[i])
	if err != nil {
		return 0, argErr(i, err, "not an integer")
	}
	return v, nil
}

// BigInt reads argument i as an integer of any size. Only decimal digit
// text can exceed the int64 range; everything else goes through Int.
func (a Args) BigInt(i int) (*big.Int, error) {
	if err := a.need(i); err != nil {
		return nil, err
	}
	if s, ok := a[i].(string); ok {
		if n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10); ok {
			return n, nil
		}
	}
	v, err := a.Int(i)
	if err != nil {
		return nil, err
	}
	return big.NewInt(v), nil
}

// IntOr reads argument i as an int64, or returns def if it is absent.
func (a Args) IntOr(i int, def int64) (int64, error) {
	if !a.Has(i) {
		return def, nil
	}
	return a.Int(i)
}

// String reads argument i as a string.
func (a Args) String(i int) (string, error) {
	if err := a.need(i); err != nil {
		return "", err
	}
	v, err := cast.ToStringE(a[i])
	if err != nil {
		return "", argErr(i, err, "not a string")
	}
	return v, nil
}

// BoolOr reads argument i as a bool, or returns def if it is absent.
func (a Args) BoolOr(i int, def bool) (bool, error) {
	if !a.Has(i) {
		return def, nil
	}
	v, err := cast.ToBoolE(a[i])
	if err != nil {
		return false, argErr(i, err, "not a boolean")
	}
	return v, nil
}

// IsList reports whether argument i is a list: a slice, or a string
// containing a comma.
func (a Args) IsList(i int) bool {
	if !a.Has(i) {
		return false
	}
	if s, ok := a[i].(string); ok {
		return strings.Contains(s, ",")
	}
	_, ok := asList(a[i])
	return ok
}

// Slice reads argument i as a list. A comma-separated string is split into
// its trimmed items.
func (a Args) Slice(i int) ([]any, error) {
	if err := a.need(i); err != nil {
		return nil, err
	}
	if s, ok := a[i].(string); ok {
		parts := strings.Split(s, ",")
		out := make([]any, len(parts))
		for j, p := range parts {
			out[j] = strings.TrimSpace(p)
		}
		return out, nil
	}
	items, ok := asList(a[i])
	if !ok {
		return nil, errs.Invalid("args", "argument %d: not a list", i)
	}
	return items, nil
}

// Floats reads argument i as a list of float64.
func (a Args) Floats(i int) ([]float64, error) {
	items, err := a.Slice(i)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(items))
	for j, item := range items {
		v, err := cast.ToFloat64E(item)
		if err != nil {
			return nil, argErr(i, err, "item %d is not a number", j)
		}
		out[j] = v
	}
	return out, nil
}

// Rest returns the arguments from i on, flattened: if exactly one list
// argument remains, its items are returned instead.
func (a Args) Rest(i int) ([]any, error) {
	if i >= len(a) {
		return []any{}, nil
	}
	if i == len(a)-1 && a.IsList(i) {
		return a.Slice(i)
	}
	return append([]any{}, a[i:]...), nil
}

func (a Args) need(i int) error {
	if !a.Has(i) {
		return errs.Invalid("args", "argument %d is missing", i)
	}
	return nil
}

func parseDecimalInt(i int, s string) (int64, error) {
	t := strings.TrimSpace(s)
	v, err := strconv.ParseInt(t, 10, 64)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, errs.Invalid("args", "argument %d: %q is out of the int64 range", i, s)
	}
	// "3.0" and "1e3" are integers written as decimals.
	f, ferr := strconv.ParseFloat(t, 64)
	if ferr != nil || strings.ContainsAny(t, "xXpP") {
		return 0, argErr(i, err, "not an integer")
	}
	return floatToInt(i, f)
}

// floatToInt accepts only integral values inside the int64 range.
func floatToInt(i int, f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, errs.Invalid("args", "argument %d: %v is not an integer", i, f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, errs.Invalid("args", "argument %d: %v is out of the int64 range", i, f)
	}
	return int64(f), nil
}

func argErr(i int, err error, format string, args ...any) error {
	return errs.WrapInvalid("args", err, "argument %d: "+format, append([]any{i}, args...)...)
}

func asList(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for j := range out {
		out[j] = rv.Index(j).Interface()
	}
	return out, true
}
