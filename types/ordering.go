package types

// Standard entity class names. These key the order record's class map and
// are the ordering tags understood out of the box; forward converters may
// register additional free-form class names.
const (
	ClassBus    = "bus"
	ClassGen    = "gen"
	ClassBranch = "branch"
	ClassAreas  = "areas"
)

// Non-class table names addressable in cases and snapshots.
const (
	TableGencost = "gencost"
	TableA       = "A"
	TableN       = "N"
)

// Ordering describes which entity class rows a block of data follows.
//
// A single ordering says the whole value is ordered like one class. A
// composite ordering says the value is laid out in concatenated blocks, one
// per tag in sequence, with any trailing rows beyond the named blocks passed
// through untouched.
type Ordering struct {
	tags      []string
	composite bool
}

// OrderingFor returns the single-class ordering for tag.
func OrderingFor(tag string) Ordering {
	return Ordering{tags: []string{tag}}
}

// CompositeOrdering returns an ordering of concatenated per-class blocks,
// in the given tag sequence.
func CompositeOrdering(tags ...string) Ordering {
	return Ordering{tags: append([]string(nil), tags...), composite: true}
}

// Single returns the tag and true when this is a single-class ordering.
func (o Ordering) Single() (string, bool) {
	if o.composite || len(o.tags) != 1 {
		return "", false
	}
	return o.tags[0], true
}

// Tags returns the tag sequence.
func (o Ordering) Tags() []string { return o.tags }

// IsComposite reports whether this ordering describes concatenated blocks.
func (o Ordering) IsComposite() bool { return o.composite }
