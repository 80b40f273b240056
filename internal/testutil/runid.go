package testutil

// FixedRunID returns the same run id on every call.
//
// A scenario with a fixed run id produces byte-identical traces across runs,
// which is what golden comparison needs.
type FixedRunID struct {
	id string
}

// DefaultRunID is used when a scenario does not pin one.
const DefaultRunID = "run-fixed-default"

// NewFixedRunID creates a fixed generator; an empty id means DefaultRunID.
func NewFixedRunID(id string) *FixedRunID {
	if id == "" {
		id = DefaultRunID
	}
	return &FixedRunID{id: id}
}

// Generate returns the fixed id.
func (g *FixedRunID) Generate() string {
	return g.id
}
