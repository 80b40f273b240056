package harness

// TraceEvent records one executed call.
type TraceEvent struct {
	Seq     int64  `json:"seq"`
	Call    string `json:"call"`
	Args    []any  `json:"args"`
	Value   any    `json:"value,omitempty"`
	Error   string `json:"error,omitempty"`   // errs.Code, or "ERROR" for unclassified failures
	Message string `json:"message,omitempty"` // full error text
}

// Failed reports whether the call returned an error.
func (e TraceEvent) Failed() bool {
	return e.Error != ""
}

// Result is the outcome of a scenario execution.
type Result struct {
	// RunID identifies this execution.
	RunID string `json:"run_id"`

	// Pass is true when every expectation and assertion held.
	Pass bool `json:"pass"`

	// Trace contains every call in execution order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains one message per failed expectation or assertion.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result with an empty trace.
func NewResult(runID string) *Result {
	return &Result{
		RunID:  runID,
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends a call to the trace.
func (r *Result) AddTrace(event TraceEvent) {
	r.Trace = append(r.Trace, event)
}
