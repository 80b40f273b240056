package harness

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sort"

	"github.com/google/uuid"

	"github.com/roach88/getkit/internal/errs"
	"github.com/roach88/getkit/internal/random"
	"github.com/roach88/getkit/internal/registry"
	"github.com/roach88/getkit/internal/testutil"
)

// unclassified is the trace error code for failures without an errs.Code.
const unclassified = "ERROR"

// RunIDGenerator produces the id attached to a Result.
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator produces time-ordered UUIDv7 run ids.
type UUIDv7Generator struct{}

// Generate returns a new UUIDv7 string.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Harness executes scenario calls against a registry with deterministic
// collaborators.
type Harness struct {
	registry *registry.Registry
	clock    *testutil.SteppingClock
	seq      *testutil.SeqCounter
	runIDs   RunIDGenerator
	logger   *slog.Logger
}

// New builds a harness for the scenario: a seeded generator, a stepping
// clock, a fresh sequence counter, and a fixed run id when one is pinned.
func New(scenario *Scenario) (*Harness, error) {
	clock := testutil.NewSteppingClock(scenario.clockStart(), scenario.clockStep())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // keep test output quiet

	reg, err := registry.Builtin(registry.Deps{
		Random:     random.NewSeeded(scenario.Seed),
		Clock:      clock,
		Logger:     logger,
		MeasureLog: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build registry: %w", err)
	}

	var runIDs RunIDGenerator = UUIDv7Generator{}
	if scenario.RunID != "" {
		runIDs = testutil.NewFixedRunID(scenario.RunID)
	}

	return &Harness{
		registry: reg,
		clock:    clock,
		seq:      testutil.NewSeqCounter(),
		runIDs:   runIDs,
		logger:   logger,
	}, nil
}

// Run executes a scenario in a fresh harness and returns the result.
//
// Execution flow:
// 1. Build registry with deterministic random, clock and run id
// 2. Execute each call, recording a trace event
// 3. Check each call against its expect clause
// 4. Evaluate assertions against the trace
func Run(scenario *Scenario) (*Result, error) {
	h, err := New(scenario)
	if err != nil {
		return nil, err
	}
	return h.Run(scenario)
}

// Run executes the scenario's calls and assertions.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	result := NewResult(h.runIDs.Generate())

	for i, step := range scenario.Calls {
		event, err := h.execute(step)
		if err != nil {
			return nil, fmt.Errorf("calls[%d] %s: %w", i, step.Call, err)
		}
		result.AddTrace(event)

		if msg := checkExpect(step, event); msg != "" {
			result.AddError(fmt.Sprintf("calls[%d] %s: %s", i, step.Call, msg))
		}
	}

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}

	h.logger.Debug("scenario finished",
		"scenario", scenario.Name,
		"run_id", result.RunID,
		"calls", len(result.Trace),
		"pass", result.Pass,
		"clock_reads", h.clock.Reads(),
	)
	return result, nil
}

// execute performs one call. The returned error is reserved for values the
// trace cannot represent; call failures are recorded in the event.
func (h *Harness) execute(step CallStep) (TraceEvent, error) {
	args := step.Args
	if args == nil {
		args = []any{}
	}

	event := TraceEvent{
		Seq:  h.seq.Next(),
		Call: step.Call,
		Args: args,
	}

	value, err := h.registry.Call(step.Call, args...)
	if err != nil {
		event.Error = errorCode(err)
		event.Message = err.Error()
		return event, nil
	}

	normalized, err := normalize(value)
	if err != nil {
		return TraceEvent{}, fmt.Errorf("failed to encode result: %w", err)
	}
	event.Value = normalized
	return event, nil
}

// checkExpect returns a failure message, or "" when the event satisfies the
// step's expectation.
func checkExpect(step CallStep, event TraceEvent) string {
	e := step.Expect
	switch {
	case e == nil:
		if event.Failed() {
			return fmt.Sprintf("unexpected error: %s", event.Message)
		}
	case e.Error != "":
		if !event.Failed() {
			return fmt.Sprintf("expected error %s, got value %s", e.Error, render(event.Value))
		}
		if event.Error != e.Error {
			return fmt.Sprintf("expected error %s, got %s: %s", e.Error, event.Error, event.Message)
		}
	default:
		if event.Failed() {
			return fmt.Sprintf("expected value %s, got error %s", renderNode(&e.Value), event.Message)
		}
		var want any
		if err := e.Value.Decode(&want); err != nil {
			return fmt.Sprintf("invalid expected value: %v", err)
		}
		want, err := normalize(want)
		if err != nil {
			return fmt.Sprintf("invalid expected value: %v", err)
		}
		if !reflect.DeepEqual(want, event.Value) {
			return fmt.Sprintf("expected %s, got %s", render(want), render(event.Value))
		}
	}
	return ""
}

// errorCode maps err to its errs.Code, or "ERROR".
func errorCode(err error) string {
	if code := errs.CodeOf(err); code != "" {
		return string(code)
	}
	return unclassified
}

// normalize round-trips v through JSON so that values from YAML and values
// from Go functions compare equal when they encode equally. Numbers become
// json.Number to keep integer precision.
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func render(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

func renderNode(n interface{ Decode(any) error }) string {
	var v any
	if err := n.Decode(&v); err != nil {
		return "?"
	}
	return render(v)
}

// LoadScenarioDir loads every *.yaml file in dir, sorted by file name.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("failed to read scenario dir: %w", err)
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}
