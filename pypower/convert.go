package pypower

import (
	"fmt"

	"github.com/huandalu/pypower/internal/reorder"
	"github.com/huandalu/pypower/types"
)

// Int2ExtValue converts a data structure correlated with the case's entity
// ordering back to external numbering and ordering.
//
// val supplies the internally ordered data; oldval initializes the result,
// so rows for offline entities — and any rows the ordering descriptor does
// not account for — are taken from oldval with val supplying the rest. dim
// selects the axis holding entity blocks (types.DimRows or types.DimCols).
//
// With a single-class ordering, val's rows are scattered into the positions
// the class's online mask names inside a copy of oldval; gen-ordered values
// are first un-permuted through the gen i2e vector. With a composite
// ordering, val and oldval are consumed block by block — one block per tag,
// internal and external block sizes taken from the live and snapshot class
// tables — and any trailing rows of val beyond the named blocks pass through
// untouched.
func Int2ExtValue(c *types.Case, val, oldval *types.Matrix, ordering types.Ordering, dim int) (*types.Matrix, error) {
	if c.Order == nil {
		return nil, ErrNoOrder
	}
	if tag, ok := ordering.Single(); ok {
		return int2extSingle(c.Order, val, oldval, tag, dim)
	}
	if !ordering.IsComposite() {
		return nil, fmt.Errorf("%w: empty ordering descriptor", ErrUnknownOrdering)
	}
	return int2extComposite(c, val, oldval, ordering.Tags(), dim)
}

func int2extSingle(o *types.Order, val, oldval *types.Matrix, tag string, dim int) (*types.Matrix, error) {
	co, ok := o.Class(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrdering, tag)
	}
	v := val
	if tag == types.ClassGen && co.I2E != nil {
		// Generators were reordered internally; revert before placing them.
		var err error
		if v, err = reorder.Gather(val, co.I2E, dim); err != nil {
			return nil, fmt.Errorf("pypower: gen ordering: %w", err)
		}
	}
	out, err := reorder.Scatter(oldval, v, co.Status.On, dim)
	if err != nil {
		return nil, fmt.Errorf("pypower: ordering %q: %w", tag, err)
	}
	return out, nil
}

func int2extComposite(c *types.Case, val, oldval *types.Matrix, tags []string, dim int) (*types.Matrix, error) {
	o := c.Order
	if o.Ext == nil {
		return nil, fmt.Errorf("pypower: order record has no external snapshot")
	}
	be, bi := 0, 0 // running offsets: external in oldval, internal in val
	parts := make([]*types.Matrix, 0, len(tags)+1)
	for _, tag := range tags {
		extTab, ok := o.Ext.Table(tag)
		if !ok {
			return nil, fmt.Errorf("%w: %q has no external snapshot table", ErrUnknownOrdering, tag)
		}
		intTab, ok := c.Table(tag)
		if !ok {
			return nil, fmt.Errorf("%w: %q has no case table", ErrUnknownOrdering, tag)
		}
		ne, ni := extTab.Rows(), intTab.Rows()
		v, err := reorder.Gather(val, reorder.Span(bi, ni), dim)
		if err != nil {
			return nil, fmt.Errorf("pypower: ordering %q block: %w", tag, err)
		}
		oldv, err := reorder.Gather(oldval, reorder.Span(be, ne), dim)
		if err != nil {
			return nil, fmt.Errorf("pypower: ordering %q block: %w", tag, err)
		}
		part, err := int2extSingle(o, v, oldv, tag, dim)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
		be, bi = be+ne, bi+ni
	}
	// Rows beyond those the ordering names are not disturbed.
	if n := val.Dim(dim); n > bi {
		rest, err := reorder.Gather(val, reorder.Span(bi, n-bi), dim)
		if err != nil {
			return nil, err
		}
		parts = append(parts, rest)
	}
	out, err := types.Concat(dim, parts...)
	if err != nil {
		return nil, fmt.Errorf("pypower: reassemble ordering blocks: %w", err)
	}
	return out, nil
}

// Int2ExtField converts the case field addressed by path (an explicit key
// list: a standard table name, a top-level extension field, or a nested path
// through extension field maps) back to external numbering.
//
// The current internal value is cached under Order.Int at the same path
// before conversion, so repeated or nested invocations never lose it; the
// restore base comes from Order.Ext at the same path. The case is mutated in
// place and returned.
func Int2ExtField(c *types.Case, path []string, ordering types.Ordering, dim int) (*types.Case, error) {
	if c.Order == nil {
		return c, ErrNoOrder
	}
	if len(path) == 0 {
		return c, fmt.Errorf("%w: empty field path", ErrUnknownField)
	}
	cur, err := caseGetPath(c, path)
	if err != nil {
		return c, err
	}
	if c.Order.Ext == nil {
		return c, fmt.Errorf("pypower: order record has no external snapshot")
	}
	old, err := snapshotGetPath(c.Order.Ext, path)
	if err != nil {
		return c, err
	}
	if c.Order.Int == nil {
		c.Order.Int = &types.Snapshot{}
	}
	if err := snapshotSetPath(c.Order.Int, path, cur); err != nil {
		return c, err
	}
	converted, err := Int2ExtValue(c, cur, old, ordering, dim)
	if err != nil {
		return c, err
	}
	if err := caseSetPath(c, path, converted); err != nil {
		return c, err
	}
	return c, nil
}
