package types

// Case is a power-network case: the standard tables, optional auxiliary
// tables, free-form extension fields, and the order record tracking which
// numbering scheme the tables are currently in.
//
// Conversion operations mutate a case's tables and order record in place;
// callers must not assume an input case is left untouched.
type Case struct {
	Version string  `json:"version,omitempty" yaml:"version,omitempty"`
	BaseMVA float64 `json:"baseMVA" yaml:"baseMVA"`

	Bus    *Matrix `json:"bus" yaml:"bus"`
	Gen    *Matrix `json:"gen" yaml:"gen"`
	Branch *Matrix `json:"branch" yaml:"branch"`

	Gencost *Matrix `json:"gencost,omitempty" yaml:"gencost,omitempty"`
	Areas   *Matrix `json:"areas,omitempty" yaml:"areas,omitempty"`
	// A and N are caller-supplied linear constraint / cost matrices whose
	// rows or columns are correlated with the case's entity ordering.
	A *Matrix `json:"A,omitempty" yaml:"A,omitempty"`
	N *Matrix `json:"N,omitempty" yaml:"N,omitempty"`

	// Fields holds extension data: matrices or nested string-keyed maps
	// with matrix leaves, addressable by field paths.
	Fields map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`

	Order *Order `json:"order,omitempty" yaml:"order,omitempty"`

	// UserFcns are registered extension callbacks. They are runtime state
	// and are not serialized with the case.
	UserFcns []UserFcn `json:"-" yaml:"-"`
}

// Table returns the case table registered under name: one of the standard
// table names, or a top-level extension field holding a matrix.
func (c *Case) Table(name string) (*Matrix, bool) {
	switch name {
	case ClassBus:
		return c.Bus, c.Bus != nil
	case ClassGen:
		return c.Gen, c.Gen != nil
	case ClassBranch:
		return c.Branch, c.Branch != nil
	case ClassAreas:
		return c.Areas, c.Areas != nil
	case TableGencost:
		return c.Gencost, c.Gencost != nil
	case TableA:
		return c.A, c.A != nil
	case TableN:
		return c.N, c.N != nil
	}
	m, ok := c.Fields[name].(*Matrix)
	return m, ok
}

// SetTable stores m under name, routing standard names to their fields and
// anything else to the extension field map.
func (c *Case) SetTable(name string, m *Matrix) {
	switch name {
	case ClassBus:
		c.Bus = m
	case ClassGen:
		c.Gen = m
	case ClassBranch:
		c.Branch = m
	case ClassAreas:
		c.Areas = m
	case TableGencost:
		c.Gencost = m
	case TableA:
		c.A = m
	case TableN:
		c.N = m
	default:
		if c.Fields == nil {
			c.Fields = make(map[string]any)
		}
		c.Fields[name] = m
	}
}
