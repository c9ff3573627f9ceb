// Package validation checks the invariants of a case's order record before
// the conversion code relies on them.
package validation

import (
	"fmt"
	"sort"

	"github.com/huandalu/pypower/types"
)

// ValidateOrder verifies that a case's order record is internally
// consistent: the state is a known value, every class's online mask agrees
// with the table row counts, the snapshots the current state requires are
// present, and identifier maps have plausible shapes.
func ValidateOrder(c *types.Case) error {
	o := c.Order
	if o == nil {
		return fmt.Errorf("validation: case has no order record")
	}
	if o.State != types.NumberingInternal && o.State != types.NumberingExternal {
		return fmt.Errorf("validation: unknown numbering state %q", o.State)
	}
	if o.State == types.NumberingInternal {
		if o.Ext == nil {
			return fmt.Errorf("validation: internally numbered case has no external snapshot")
		}
		for _, name := range []string{types.ClassBus, types.ClassGen, types.ClassBranch} {
			if _, ok := o.Class(name); !ok {
				return fmt.Errorf("validation: order record has no %q class", name)
			}
			if _, ok := o.Ext.Table(name); !ok {
				return fmt.Errorf("validation: external snapshot has no %q table", name)
			}
		}
	}

	names := make([]string, 0, len(o.Classes))
	for name := range o.Classes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		co := o.Classes[name]
		if co == nil {
			return fmt.Errorf("validation: class %q is nil", name)
		}
		for _, i := range co.Status.On {
			if i < 0 {
				return fmt.Errorf("validation: class %q has negative online position %d", name, i)
			}
		}
		if ext, ok := o.Ext.Table(name); ok {
			if len(co.Status.On) > ext.Rows() {
				return fmt.Errorf("validation: class %q has %d online positions but %d external rows",
					name, len(co.Status.On), ext.Rows())
			}
			for _, i := range co.Status.On {
				if i >= ext.Rows() {
					return fmt.Errorf("validation: class %q online position %d outside external table of %d rows",
						name, i, ext.Rows())
				}
			}
		}
		// When internally numbered, the live class table is the
		// internal-numbered one and must have one row per online entity.
		if o.State == types.NumberingInternal {
			if live, ok := c.Table(name); ok && live.Rows() != len(co.Status.On) {
				return fmt.Errorf("validation: class %q has %d rows but %d online positions",
					name, live.Rows(), len(co.Status.On))
			}
		}
		if o.Int != nil {
			if tab, ok := o.Int.Table(name); ok && tab.Rows() != len(co.Status.On) {
				return fmt.Errorf("validation: class %q internal snapshot has %d rows but %d online positions",
					name, tab.Rows(), len(co.Status.On))
			}
		}
		if co.I2E == nil {
			continue
		}
		switch name {
		case types.ClassBus:
			if len(co.I2E) != len(co.Status.On) {
				return fmt.Errorf("validation: bus i2e has %d entries for %d online buses",
					len(co.I2E), len(co.Status.On))
			}
		case types.ClassGen:
			if err := checkPermutation(co.I2E, len(co.Status.On)); err != nil {
				return fmt.Errorf("validation: gen i2e: %w", err)
			}
		}
	}
	return nil
}

// checkPermutation verifies that p is a permutation of [0,n).
func checkPermutation(p []int, n int) error {
	if len(p) != n {
		return fmt.Errorf("length %d, want %d", len(p), n)
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n {
			return fmt.Errorf("entry %d out of range [0,%d)", v, n)
		}
		if seen[v] {
			return fmt.Errorf("entry %d repeated", v)
		}
		seen[v] = true
	}
	return nil
}

// ValidateCase checks that the standard tables are present and wide enough
// for the identifier columns the conversion code rewrites.
func ValidateCase(c *types.Case) error {
	checks := []struct {
		name    string
		tab     *types.Matrix
		minCols int
	}{
		{types.ClassBus, c.Bus, types.VMin + 1},
		{types.ClassGen, c.Gen, types.PMin + 1},
		{types.ClassBranch, c.Branch, types.AngMax + 1},
	}
	for _, chk := range checks {
		if chk.tab == nil {
			return fmt.Errorf("validation: case has no %q table", chk.name)
		}
		if chk.tab.Rows() > 0 && chk.tab.Cols() < chk.minCols {
			return fmt.Errorf("validation: %q table has %d columns, want at least %d",
				chk.name, chk.tab.Cols(), chk.minCols)
		}
	}
	if c.Areas != nil && c.Areas.Rows() > 0 && c.Areas.Cols() < types.PriceRefBus+1 {
		return fmt.Errorf("validation: %q table has %d columns, want at least %d",
			types.ClassAreas, c.Areas.Cols(), types.PriceRefBus+1)
	}
	return nil
}
