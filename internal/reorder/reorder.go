// Package reorder provides the vectorized row/column selection and insertion
// primitives the numbering converter is built on.
package reorder

import (
	"fmt"

	"github.com/huandalu/pypower/types"
)

func checkDim(dim int) error {
	if dim != types.DimRows && dim != types.DimCols {
		return fmt.Errorf("reorder: invalid dimension %d", dim)
	}
	return nil
}

func checkIndices(idx []int, n int) error {
	for _, i := range idx {
		if i < 0 || i >= n {
			return fmt.Errorf("reorder: index %d out of range [0,%d)", i, n)
		}
	}
	return nil
}

// Span returns the index vector [base, base+count).
func Span(base, count int) []int {
	idx := make([]int, count)
	for i := range idx {
		idx[i] = base + i
	}
	return idx
}

// Gather returns the rows (DimRows) or columns (DimCols) of m selected by
// idx, in idx order. Indices may repeat.
func Gather(m *types.Matrix, idx []int, dim int) (*types.Matrix, error) {
	if err := checkDim(dim); err != nil {
		return nil, err
	}
	if err := checkIndices(idx, m.Dim(dim)); err != nil {
		return nil, err
	}
	if dim == types.DimRows {
		out := types.NewMatrix(len(idx), m.Cols())
		for r, i := range idx {
			copy(out.Row(r), m.Row(i))
		}
		return out, nil
	}
	out := types.NewMatrix(m.Rows(), len(idx))
	for r := 0; r < m.Rows(); r++ {
		for c, i := range idx {
			out.Set(r, c, m.At(r, i))
		}
	}
	return out, nil
}

// Scatter returns a copy of base with the rows (DimRows) or columns
// (DimCols) of src placed at the positions named by idx. src must have
// exactly len(idx) rows/columns along dim and match base along the other
// axis.
func Scatter(base, src *types.Matrix, idx []int, dim int) (*types.Matrix, error) {
	if err := checkDim(dim); err != nil {
		return nil, err
	}
	if got := src.Dim(dim); got != len(idx) {
		return nil, fmt.Errorf("reorder: %d indices for source of size %d along dim %d", len(idx), got, dim)
	}
	other := 1 - dim
	if src.Dim(other) != base.Dim(other) {
		return nil, fmt.Errorf("reorder: source size %d does not match base size %d along dim %d",
			src.Dim(other), base.Dim(other), other)
	}
	if err := checkIndices(idx, base.Dim(dim)); err != nil {
		return nil, err
	}
	out := base.Clone()
	if dim == types.DimRows {
		for r, i := range idx {
			copy(out.Row(i), src.Row(r))
		}
		return out, nil
	}
	for r := 0; r < out.Rows(); r++ {
		for c, i := range idx {
			out.Set(r, i, src.At(r, c))
		}
	}
	return out, nil
}
