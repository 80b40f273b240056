package timing

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Timer measures calls against a Clock and reports them to a logger.
type Timer struct {
	clock  Clock
	logger *slog.Logger
}

// NewTimer creates a Timer. A nil clock means SystemClock; a nil logger
// discards output.
func NewTimer(clock Clock, logger *slog.Logger) *Timer {
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Timer{clock: clock, logger: logger}
}

// Measurement is the outcome of a measured call.
type Measurement[T any] struct {
	Elapsed time.Duration `json:"elapsed_ns"`
	Result  T             `json:"result"`
}

// ElapsedMillis returns Elapsed in fractional milliseconds.
func (m Measurement[T]) ElapsedMillis() float64 {
	return float64(m.Elapsed) / float64(time.Millisecond)
}

// Measure runs fn once and returns its result with the elapsed time. When
// log is set, a "perf" record with elapsed_ms and the JSON-rendered result
// is written at Info level.
func Measure[T any](t *Timer, fn func() T, log bool) Measurement[T] {
	start := t.clock.Now()
	res := fn()
	m := Measurement[T]{Elapsed: t.clock.Now().Sub(start), Result: res}

	if log {
		t.logger.Info("perf",
			slog.Float64("elapsed_ms", m.ElapsedMillis()),
			slog.String("result", render(res)),
		)
	}
	return m
}

func render(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
