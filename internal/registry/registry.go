// Package registry maps function names to callable entries.
//
// It replaces lookup of functions by name in a global namespace with an
// explicit dispatch table populated at startup (see Builtin). Callers pass
// loosely typed arguments, as they arrive from a command line or a YAML
// scenario, and each entry coerces them through Args.
package registry

import (
	"sort"
	"strconv"
	"sync"

	"github.com/roach88/getkit/internal/errs"
)

// Func is the callable half of an Entry.
type Func func(args Args) (any, error)

// Entry describes one registered function.
type Entry struct {
	// Name is the lookup key (e.g. "fraction").
	Name string

	// Usage is a one-line argument synopsis (e.g. "<decimal> [repeating] [simplify]").
	Usage string

	// Doc is a short description.
	Doc string

	// MinArgs and MaxArgs bound the argument count. MaxArgs < 0 means
	// no upper bound.
	MinArgs int
	MaxArgs int

	// Call runs the function.
	Call Func
}

// Registry is a name-to-entry dispatch table.
//
// Thread-safety: safe for concurrent use; registration takes a write lock,
// lookups and calls a read lock.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds e. Empty names, nil functions and duplicates are rejected.
func (r *Registry) Register(e Entry) error {
	if e.Name == "" {
		return errs.Invalid("register", "entry name is required")
	}
	if e.Call == nil {
		return errs.Invalid("register", "entry %q has no function", e.Name)
	}
	if e.MaxArgs >= 0 && e.MaxArgs < e.MinArgs {
		return errs.Invalid("register", "entry %q: max args %d below min args %d", e.Name, e.MaxArgs, e.MinArgs)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[e.Name]; exists {
		return errs.Invalid("register", "entry %q already registered", e.Name)
	}
	r.entries[e.Name] = e
	return nil
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns all entries sorted by name.
func (r *Registry) Entries() []Entry {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(names))
	for _, name := range names {
		out = append(out, r.entries[name])
	}
	return out
}

// Call invokes the function registered under name with args.
func (r *Registry) Call(name string, args ...any) (any, error) {
	e, ok := r.Lookup(name)
	if !ok {
		return nil, errs.NotFound("call", "no function named %q", name)
	}
	if len(args) < e.MinArgs || (e.MaxArgs >= 0 && len(args) > e.MaxArgs) {
		return nil, errs.Invalid(name, "got %d argument(s), want %s", len(args), arity(e))
	}
	return e.Call(Args(args))
}

func arity(e Entry) string {
	switch {
	case e.MaxArgs < 0:
		return "at least " + strconv.Itoa(e.MinArgs)
	case e.MinArgs == e.MaxArgs:
		return strconv.Itoa(e.MinArgs)
	default:
		return strconv.Itoa(e.MinArgs) + " to " + strconv.Itoa(e.MaxArgs)
	}
}
