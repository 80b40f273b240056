package harness

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Scenario is a scripted sequence of registry calls with expected outcomes.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Seed seeds the random generator. Zero is a valid seed.
	Seed int64 `yaml:"seed,omitempty"`

	// Now is the RFC 3339 instant the clock starts at.
	// If empty, the clock starts at the Unix epoch in UTC.
	Now string `yaml:"now,omitempty"`

	// Step is how far the clock moves per reading, as a Go duration ("1ms").
	// If empty, the clock is frozen.
	Step string `yaml:"step,omitempty"`

	// RunID pins the run id for golden comparison.
	// If empty, a fresh UUIDv7 is used.
	RunID string `yaml:"run_id,omitempty"`

	// Calls are executed in order.
	Calls []CallStep `yaml:"calls"`

	// Assertions are evaluated against the trace after all calls ran.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// CallStep is one registry invocation.
type CallStep struct {
	// Call is the registry name ("fraction", "base", ...).
	Call string `yaml:"call"`

	// Args are passed positionally.
	Args []any `yaml:"args,omitempty"`

	// Expect checks the outcome. If nil, the call must succeed.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause holds either an expected value or an expected error code.
type ExpectClause struct {
	// Value is kept as a node so that an explicit zero or null can be told
	// apart from an absent value (Kind == 0).
	Value yaml.Node `yaml:"value,omitempty"`

	// Error is an errs.Code such as INVALID_ARGUMENT.
	Error string `yaml:"error,omitempty"`
}

// HasValue reports whether a value was given.
func (e *ExpectClause) HasValue() bool {
	return e.Value.Kind != 0
}

// Assertion validates the trace.
type Assertion struct {
	// Type is one of trace_contains, trace_order, trace_count.
	Type string `yaml:"type"`

	// Call is the registry name (trace_contains, trace_count).
	Call string `yaml:"call,omitempty"`

	// Args, if set, must equal the traced args (trace_contains).
	Args []any `yaml:"args,omitempty"`

	// Count is the exact number of occurrences (trace_count).
	Count int `yaml:"count,omitempty"`

	// Calls is the expected order (trace_order).
	Calls []string `yaml:"calls,omitempty"`
}

// Assertion type constants.
const (
	AssertTraceContains = "trace_contains"
	AssertTraceOrder    = "trace_order"
	AssertTraceCount    = "trace_count"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML held in memory.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // catches "assertion:" vs "assertions:"
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Calls) == 0 {
		return fmt.Errorf("calls list is required and must be non-empty")
	}

	if s.Now != "" {
		if _, err := time.Parse(time.RFC3339Nano, s.Now); err != nil {
			return fmt.Errorf("now: %w", err)
		}
	}
	if s.Step != "" {
		d, err := time.ParseDuration(s.Step)
		if err != nil {
			return fmt.Errorf("step: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("step must be non-negative")
		}
	}

	for i, step := range s.Calls {
		if step.Call == "" {
			return fmt.Errorf("calls[%d]: call is required", i)
		}
		if e := step.Expect; e != nil {
			hasValue := e.HasValue()
			hasError := e.Error != ""
			if hasValue == hasError {
				return fmt.Errorf("calls[%d].expect: exactly one of value or error is required", i)
			}
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertTraceContains:
		if a.Call == "" {
			return fmt.Errorf("assertions[%d]: call is required for trace_contains", index)
		}
	case AssertTraceOrder:
		if len(a.Calls) == 0 {
			return fmt.Errorf("assertions[%d]: calls list is required for trace_order", index)
		}
	case AssertTraceCount:
		if a.Call == "" {
			return fmt.Errorf("assertions[%d]: call is required for trace_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for trace_count", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}

// clockStart returns the parsed Now, or the Unix epoch.
func (s *Scenario) clockStart() time.Time {
	if s.Now == "" {
		return time.Unix(0, 0).UTC()
	}
	t, _ := time.Parse(time.RFC3339Nano, s.Now) // validated on load
	return t
}

// clockStep returns the parsed Step, or zero.
func (s *Scenario) clockStep() time.Duration {
	if s.Step == "" {
		return 0
	}
	d, _ := time.ParseDuration(s.Step)
	return d
}
