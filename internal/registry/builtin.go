package registry

import (
	"fmt"
	"log/slog"
	"math/big"
	"reflect"

	"github.com/roach88/getkit/internal/errs"
	"github.com/roach88/getkit/internal/numconv"
	"github.com/roach88/getkit/internal/random"
	"github.com/roach88/getkit/internal/sequence"
	"github.com/roach88/getkit/internal/textnorm"
	"github.com/roach88/getkit/internal/timing"
)

// Deps are the stateful collaborators of the builtin functions.
type Deps struct {
	// Random backs "random". Nil means a crypto-seeded generator.
	Random *random.Generator

	// Clock backs "time" and "measure". Nil means timing.SystemClock.
	Clock timing.Clock

	// Logger receives "measure" perf records. Nil discards them.
	Logger *slog.Logger

	// MeasureLog controls whether "measure" logs its perf record.
	MeasureLog bool
}

// MeasureResult is the value returned by the "measure" builtin.
type MeasureResult struct {
	ElapsedMS float64 `json:"elapsed_ms"`
	Result    any     `json:"result"`
}

// Builtin returns a registry holding every getkit utility.
func Builtin(deps Deps) (*Registry, error) {
	if deps.Random == nil {
		g, err := random.New()
		if err != nil {
			return nil, fmt.Errorf("seed random generator: %w", err)
		}
		deps.Random = g
	}
	if deps.Clock == nil {
		deps.Clock = timing.SystemClock{}
	}
	timer := timing.NewTimer(deps.Clock, deps.Logger)

	r := New()
	entries := []Entry{
		{
			Name:    "intervals",
			Usage:   "<a> <b> [steps=1] [edges=true]",
			Doc:     "Evenly spaced values between two numbers or two equal-length lists",
			MinArgs: 2,
			MaxArgs: 4,
			Call:    callIntervals,
		},
		{
			Name:    "pattern",
			Usage:   "<length> <item>...",
			Doc:     "A list of the given length cycling through the items",
			MinArgs: 2,
			MaxArgs: -1,
			Call:    callPattern,
		},
		{
			Name:    "unique",
			Usage:   "<item>...",
			Doc:     "The items with repeats removed, first occurrence kept",
			MinArgs: 0,
			MaxArgs: -1,
			Call:    callUnique,
		},
		{
			Name:    "decimals",
			Usage:   "<number>",
			Doc:     "Number of digits after the decimal point",
			MinArgs: 1,
			MaxArgs: 1,
			Call: func(a Args) (any, error) {
				x, err := a.Float(0)
				if err != nil {
					return nil, err
				}
				return numconv.DecimalCount(x), nil
			},
		},
		{
			Name:    "fraction",
			Usage:   "<decimal> [repeating=0] [simplify=true]",
			Doc:     "Numerator and denominator of a decimal, optionally with repeating digits",
			MinArgs: 1,
			MaxArgs: 3,
			Call:    callFraction,
		},
		{
			Name:    "random",
			Usage:   "<max> | <min> <max>",
			Doc:     "Random integer in [min, max]; min defaults to 0",
			MinArgs: 1,
			MaxArgs: 2,
			Call: func(a Args) (any, error) {
				return callRandom(deps.Random, a)
			},
		},
		{
			Name:    "normalize",
			Usage:   "<text>",
			Doc:     "Text with diacritical marks removed",
			MinArgs: 1,
			MaxArgs: 1,
			Call: func(a Args) (any, error) {
				s, err := a.String(0)
				if err != nil {
					return nil, err
				}
				return textnorm.Normalize(s), nil
			},
		},
		{
			Name:    "time",
			Usage:   "",
			Doc:     "Current [hours, minutes, seconds, milliseconds]",
			MinArgs: 0,
			MaxArgs: 0,
			Call: func(Args) (any, error) {
				return timing.CurrentTimeParts(deps.Clock).Slice(), nil
			},
		},
		{
			Name:    "gcd",
			Usage:   "<a> <b>",
			Doc:     "Greatest common divisor",
			MinArgs: 2,
			MaxArgs: 2,
			Call: func(a Args) (any, error) {
				return callPair(a, numconv.GCD, numconv.BigGCD)
			},
		},
		{
			Name:    "lcm",
			Usage:   "<a> <b>",
			Doc:     "Least common multiple",
			MinArgs: 2,
			MaxArgs: 2,
			Call: func(a Args) (any, error) {
				return callPair(a, numconv.LCM, numconv.BigLCM)
			},
		},
		{
			Name:    "base",
			Usage:   "<value> [from=10] [to=10]",
			Doc:     "Convert a numeral between bases 2-36, or encode/decode base 64",
			MinArgs: 1,
			MaxArgs: 3,
			Call:    callBase,
		},
		{
			Name:    "measure",
			Usage:   "<name> [args...]",
			Doc:     "Time a call to another registered function",
			MinArgs: 1,
			MaxArgs: -1,
			Call: func(a Args) (any, error) {
				return callMeasure(r, timer, deps.MeasureLog, a)
			},
		},
	}

	for _, e := range entries {
		if err := r.Register(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func callIntervals(a Args) (any, error) {
	steps, err := a.IntOr(2, 1)
	if err != nil {
		return nil, err
	}
	edges, err := a.BoolOr(3, true)
	if err != nil {
		return nil, err
	}

	if a.IsList(0) || a.IsList(1) {
		from, err := a.Floats(0)
		if err != nil {
			return nil, err
		}
		to, err := a.Floats(1)
		if err != nil {
			return nil, err
		}
		return sequence.IntervalsVec(from, to, int(steps), edges)
	}

	from, err := a.Float(0)
	if err != nil {
		return nil, err
	}
	to, err := a.Float(1)
	if err != nil {
		return nil, err
	}
	return sequence.Intervals(from, to, int(steps), edges)
}

func callPattern(a Args) (any, error) {
	length, err := a.Int(0)
	if err != nil {
		return nil, err
	}
	items, err := a.Rest(1)
	if err != nil {
		return nil, err
	}
	return sequence.Pattern(int(length), items)
}

func callUnique(a Args) (any, error) {
	items, err := a.Rest(0)
	if err != nil {
		return nil, err
	}
	for i, item := range items {
		if item != nil && !reflect.TypeOf(item).Comparable() {
			return nil, errs.Invalid("unique", "item %d (%T) cannot be compared", i, item)
		}
	}
	return sequence.Unique(items), nil
}

func callFraction(a Args) (any, error) {
	repeating, err := a.IntOr(1, 0)
	if err != nil {
		return nil, err
	}
	simplify, err := a.BoolOr(2, true)
	if err != nil {
		return nil, err
	}

	// Text keeps digits a float64 would drop ("2.50").
	if s, ok := a[0].(string); ok {
		return numconv.ParseFraction(s, int(repeating), simplify)
	}
	x, err := a.Float(0)
	if err != nil {
		return nil, err
	}
	return numconv.ToFraction(x, int(repeating), simplify)
}

func callRandom(g *random.Generator, a Args) (any, error) {
	first, err := a.Int(0)
	if err != nil {
		return nil, err
	}
	if !a.Has(1) {
		return g.IntUpTo(first)
	}
	second, err := a.Int(1)
	if err != nil {
		return nil, err
	}
	return g.Int(first, second)
}

// callPair runs fn when both operands fit in int64, so overflow of the
// result is still reported, and falls back to bigFn for wider numerals.
func callPair(a Args, fn func(x, y int64) (int64, error), bigFn func(x, y *big.Int) *big.Int) (any, error) {
	x, err := a.BigInt(0)
	if err != nil {
		return nil, err
	}
	y, err := a.BigInt(1)
	if err != nil {
		return nil, err
	}
	if x.IsInt64() && y.IsInt64() {
		return fn(x.Int64(), y.Int64())
	}
	return bigFn(x, y), nil
}

func callBase(a Args) (any, error) {
	value, err := a.String(0)
	if err != nil {
		return nil, err
	}
	from, err := a.IntOr(1, 10)
	if err != nil {
		return nil, err
	}
	to, err := a.IntOr(2, 10)
	if err != nil {
		return nil, err
	}
	return numconv.ConvertBase(value, int(from), int(to))
}

func callMeasure(r *Registry, timer *timing.Timer, log bool, a Args) (any, error) {
	name, err := a.String(0)
	if err != nil {
		return nil, err
	}

	var callErr error
	m := timing.Measure(timer, func() any {
		v, err := r.Call(name, a[1:]...)
		callErr = err
		return v
	}, log)
	if callErr != nil {
		return nil, callErr
	}
	return MeasureResult{ElapsedMS: m.ElapsedMillis(), Result: m.Result}, nil
}
