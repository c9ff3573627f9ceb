package types

// NumberingState identifies which numbering scheme a case currently uses.
type NumberingState string

const (
	// NumberingInternal means entities are densely packed, consecutively
	// numbered, and online-only.
	NumberingInternal NumberingState = "internal"
	// NumberingExternal means entities carry their original identifiers and
	// ordering, offline entities included.
	NumberingExternal NumberingState = "external"
)

// Status records which row positions, in external numbering, were online at
// forward-conversion time.
type Status struct {
	On []int `json:"on" yaml:"on"`
}

// ClassOrder holds the numbering metadata for one entity class.
type ClassOrder struct {
	Status Status `json:"status" yaml:"status"`

	// I2E maps an internal row position to its external counterpart. For the
	// bus class the values are external bus identifiers, also used to remap
	// identifier values found in other tables' reference columns. For the gen
	// class it is the row permutation applied during forward conversion,
	// reverted on restore. Nil means identity.
	I2E []int `json:"i2e,omitempty" yaml:"i2e,omitempty"`
}

// Snapshot caches the case tables (and extension fields) in one numbering
// scheme. The forward converter fills the external snapshot so that restore
// can re-populate rows the online-only computation never touched.
type Snapshot struct {
	Bus     *Matrix        `json:"bus,omitempty" yaml:"bus,omitempty"`
	Gen     *Matrix        `json:"gen,omitempty" yaml:"gen,omitempty"`
	Branch  *Matrix        `json:"branch,omitempty" yaml:"branch,omitempty"`
	Gencost *Matrix        `json:"gencost,omitempty" yaml:"gencost,omitempty"`
	Areas   *Matrix        `json:"areas,omitempty" yaml:"areas,omitempty"`
	A       *Matrix        `json:"A,omitempty" yaml:"A,omitempty"`
	N       *Matrix        `json:"N,omitempty" yaml:"N,omitempty"`
	Fields  map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Table returns the snapshot table registered under name: one of the
// standard table names, or a top-level extension field holding a matrix.
func (s *Snapshot) Table(name string) (*Matrix, bool) {
	if s == nil {
		return nil, false
	}
	switch name {
	case ClassBus:
		return s.Bus, s.Bus != nil
	case ClassGen:
		return s.Gen, s.Gen != nil
	case ClassBranch:
		return s.Branch, s.Branch != nil
	case ClassAreas:
		return s.Areas, s.Areas != nil
	case TableGencost:
		return s.Gencost, s.Gencost != nil
	case TableA:
		return s.A, s.A != nil
	case TableN:
		return s.N, s.N != nil
	}
	m, ok := s.Fields[name].(*Matrix)
	return m, ok
}

// SetTable stores m under name, routing standard names to their fields and
// anything else to the extension field map.
func (s *Snapshot) SetTable(name string, m *Matrix) {
	switch name {
	case ClassBus:
		s.Bus = m
	case ClassGen:
		s.Gen = m
	case ClassBranch:
		s.Branch = m
	case ClassAreas:
		s.Areas = m
	case TableGencost:
		s.Gencost = m
	case TableA:
		s.A = m
	case TableN:
		s.N = m
	default:
		if s.Fields == nil {
			s.Fields = make(map[string]any)
		}
		s.Fields[name] = m
	}
}

// Order records, per entity class, the online mask and the internal/external
// identifier maps, plus cached table snapshots in both numberings. It is
// created by the forward converter when a case enters internal numbering and
// collapsed by the restore path (external snapshot dropped, state flipped).
type Order struct {
	State   NumberingState         `json:"state" yaml:"state"`
	Classes map[string]*ClassOrder `json:"classes" yaml:"classes"`
	Int     *Snapshot              `json:"int,omitempty" yaml:"int,omitempty"`
	Ext     *Snapshot              `json:"ext,omitempty" yaml:"ext,omitempty"`
}

// Class returns the order metadata registered for the named entity class.
func (o *Order) Class(name string) (*ClassOrder, bool) {
	co, ok := o.Classes[name]
	return co, ok
}
