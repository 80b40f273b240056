// Package harness runs scripted call sequences against the getkit registry.
//
// A scenario is the executable form of a usage example: it names registry
// functions, the arguments to pass, and what each call must return. The
// harness executes every call in order, records a trace, and reports any
// call whose outcome differs from its expectation.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: fraction_basics
//	description: "What this scenario validates"
//	seed: 42                            # random generator seed
//	now: "2024-01-02T03:04:05.006Z"     # fixed clock reading
//	step: 1ms                           # clock advance per reading
//	run_id: run-001                     # fixed run id (default: UUIDv7)
//	calls:
//	  - call: fraction
//	    args: [0.25]
//	    expect:
//	      value: {numerator: 1, denominator: 4}
//	  - call: base
//	    args: ["G", 16, 10]
//	    expect:
//	      error: INVALID_ARGUMENT
//	assertions:
//	  - type: trace_count
//	    call: fraction
//	    count: 1
//
// A call without an expect clause must succeed. An expect clause holds
// either a value, compared after JSON normalisation, or an error code from
// package errs.
//
// # Assertion Types
//
//   - trace_contains: a call with the given name (and args, if given) ran
//   - trace_order: the named calls ran in this order
//   - trace_count: the named call ran exactly count times
//
// # Deterministic Testing
//
// Each run uses a seeded random generator, a stepping clock, a logical
// sequence counter and, when run_id is set, a fixed run id, so the trace is
// byte-identical across runs and can be compared against golden files (see
// RunWithGolden).
package harness
