package pypower

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/huandalu/pypower/internal/reorder"
	"github.com/huandalu/pypower/internal/validation"
	"github.com/huandalu/pypower/types"
)

// Int2Ext converts a whole case back to external numbering.
//
// The case must be internally numbered (Order.State == NumberingInternal).
// Callbacks registered for the "int2ext" stage run first, on the still
// internally numbered case — the one point where numbering-aware extensions
// observe the final internal state. The live bus, branch and gen tables
// (plus gencost, areas, A and N when present) are then snapshotted into
// Order.Int and replaced by the cached external snapshots, the internal
// payload is scattered into the online rows (generators un-permuted first),
// and the bus-identifier columns of those rows are remapped through the bus
// i2e vector. On success the external snapshot is dropped and the order
// state flips to external.
//
// The case's tables and order record are mutated in place; the case is also
// returned. On failure the case is returned unmodified together with a
// typed error (ErrNoOrder, ErrAlreadyExternal, or a validation error), so
// opportunistic callers may ignore the error and keep the input.
func Int2Ext(c *types.Case) (*types.Case, error) {
	if c.Order == nil {
		log.Error().Msg("int2ext: case does not have the order record required for conversion back to external numbering")
		return c, ErrNoOrder
	}
	if c.Order.State != types.NumberingInternal {
		log.Error().Str("state", string(c.Order.State)).Msg("int2ext: case claims it is already using external numbering")
		return c, ErrAlreadyExternal
	}
	if err := validation.ValidateOrder(c); err != nil {
		return c, fmt.Errorf("int2ext: %w", err)
	}

	// Extensions see the case while it is still internally numbered.
	c, err := RunUserFcns(c, types.StageInt2Ext)
	if err != nil {
		return c, fmt.Errorf("int2ext: %w", err)
	}
	o := c.Order
	if o == nil || o.State != types.NumberingInternal {
		return c, fmt.Errorf("pypower: int2ext: user callback discarded the internal order record")
	}

	// Save the internally numbered tables and restore the external
	// snapshots, which already have the right row count and original
	// identifiers for every entity, online or not.
	if o.Int == nil {
		o.Int = &types.Snapshot{}
	}
	o.Int.Bus, c.Bus = c.Bus, o.Ext.Bus
	o.Int.Branch, c.Branch = c.Branch, o.Ext.Branch
	o.Int.Gen, c.Gen = c.Gen, o.Ext.Gen
	if c.Gencost != nil {
		o.Int.Gencost, c.Gencost = c.Gencost, o.Ext.Gencost
	}
	if c.Areas != nil {
		o.Int.Areas, c.Areas = c.Areas, o.Ext.Areas
	}
	if c.A != nil {
		o.Int.A, c.A = c.A, o.Ext.A
	}
	if c.N != nil {
		o.Int.N, c.N = c.N, o.Ext.N
	}

	busOrd, _ := o.Class(types.ClassBus)
	genOrd, _ := o.Class(types.ClassGen)
	brOrd, _ := o.Class(types.ClassBranch)

	// Scatter the internal payload into the online rows.
	if c.Bus, err = reorder.Scatter(c.Bus, o.Int.Bus, busOrd.Status.On, types.DimRows); err != nil {
		return c, fmt.Errorf("pypower: int2ext bus: %w", err)
	}
	if c.Branch, err = reorder.Scatter(c.Branch, o.Int.Branch, brOrd.Status.On, types.DimRows); err != nil {
		return c, fmt.Errorf("pypower: int2ext branch: %w", err)
	}
	genRows := o.Int.Gen
	if genOrd.I2E != nil {
		// Generators may be permuted within a bus group during forward
		// conversion; revert to the original relative order.
		if genRows, err = reorder.Gather(o.Int.Gen, genOrd.I2E, types.DimRows); err != nil {
			return c, fmt.Errorf("pypower: int2ext gen: %w", err)
		}
	}
	if c.Gen, err = reorder.Scatter(c.Gen, genRows, genOrd.Status.On, types.DimRows); err != nil {
		return c, fmt.Errorf("pypower: int2ext gen: %w", err)
	}
	areasOrd, hasAreas := o.Class(types.ClassAreas)
	if c.Areas != nil && hasAreas {
		if c.Areas, err = reorder.Scatter(c.Areas, o.Int.Areas, areasOrd.Status.On, types.DimRows); err != nil {
			return c, fmt.Errorf("pypower: int2ext areas: %w", err)
		}
	}

	// Revert to original bus numbers. This must run after the payload
	// scatter: it rewrites identifier columns inside the newly placed rows.
	i2e := busOrd.I2E
	if err := remapColumn(c.Bus, busOrd.Status.On, types.BusI, i2e); err != nil {
		return c, err
	}
	if err := remapColumn(c.Branch, brOrd.Status.On, types.FBus, i2e); err != nil {
		return c, err
	}
	if err := remapColumn(c.Branch, brOrd.Status.On, types.TBus, i2e); err != nil {
		return c, err
	}
	if err := remapColumn(c.Gen, genOrd.Status.On, types.GenBus, i2e); err != nil {
		return c, err
	}
	if c.Areas != nil && hasAreas {
		if err := remapColumn(c.Areas, areasOrd.Status.On, types.PriceRefBus, i2e); err != nil {
			return c, err
		}
	}

	// The external snapshot is now redundant with the live tables.
	o.Ext = nil
	o.State = types.NumberingExternal
	return c, nil
}

// Int2ExtTables remaps the bus-identifier columns of freestanding tables
// from internal consecutive ids back to the originals through i2e, in place.
// areas may be nil. This is the legacy direct form that predates the order
// record; it neither restores offline rows nor touches row order.
func Int2ExtTables(i2e []int, bus, gen, branch, areas *types.Matrix) error {
	if err := remapColumn(bus, reorder.Span(0, bus.Rows()), types.BusI, i2e); err != nil {
		return err
	}
	if err := remapColumn(gen, reorder.Span(0, gen.Rows()), types.GenBus, i2e); err != nil {
		return err
	}
	if err := remapColumn(branch, reorder.Span(0, branch.Rows()), types.FBus, i2e); err != nil {
		return err
	}
	if err := remapColumn(branch, reorder.Span(0, branch.Rows()), types.TBus, i2e); err != nil {
		return err
	}
	if areas != nil {
		if err := remapColumn(areas, reorder.Span(0, areas.Rows()), types.PriceRefBus, i2e); err != nil {
			return err
		}
	}
	return nil
}

// remapColumn rewrites the identifier column col of the given rows through
// the i2e vector: values currently holding internal consecutive ids are
// replaced by their external counterparts.
func remapColumn(m *types.Matrix, rows []int, col int, i2e []int) error {
	for _, r := range rows {
		v := int(m.At(r, col))
		if v < 0 || v >= len(i2e) {
			return fmt.Errorf("pypower: internal id %d at row %d outside i2e map of length %d", v, r, len(i2e))
		}
		m.Set(r, col, float64(i2e[v]))
	}
	return nil
}
