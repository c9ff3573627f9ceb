package testutil

import (
	"testing"

	"github.com/huandalu/pypower/types"
)

// AssertMatrixEqual fails the test when got and want differ in shape or
// content.
func AssertMatrixEqual(t *testing.T, got, want *types.Matrix, context ...string) {
	t.Helper()
	ctx := ""
	if len(context) > 0 {
		ctx = context[0] + ": "
	}
	if got == nil || want == nil {
		if got != want {
			t.Errorf("%sgot %v, want %v", ctx, got, want)
		}
		return
	}
	if got.Rows() != want.Rows() || got.Cols() != want.Cols() {
		t.Errorf("%sgot %dx%d matrix, want %dx%d", ctx, got.Rows(), got.Cols(), want.Rows(), want.Cols())
		return
	}
	if !got.Equal(want) {
		t.Errorf("%smatrices differ:\n got %v\nwant %v", ctx, got.ToRows(), want.ToRows())
	}
}

// AssertRowEqual fails the test when row i of m differs from want.
func AssertRowEqual(t *testing.T, m *types.Matrix, i int, want []float64, context ...string) {
	t.Helper()
	ctx := ""
	if len(context) > 0 {
		ctx = context[0] + ": "
	}
	if i >= m.Rows() {
		t.Errorf("%srow %d out of range for %dx%d matrix", ctx, i, m.Rows(), m.Cols())
		return
	}
	got := m.Row(i)
	if len(got) != len(want) {
		t.Errorf("%srow %d has %d columns, want %d", ctx, i, len(got), len(want))
		return
	}
	for j := range want {
		if got[j] != want[j] {
			t.Errorf("%srow %d differs at column %d: got %v, want %v", ctx, i, j, got[j], want[j])
			return
		}
	}
}

// AssertColumn fails the test when column j of m differs from want.
func AssertColumn(t *testing.T, m *types.Matrix, j int, want []float64, context ...string) {
	t.Helper()
	ctx := ""
	if len(context) > 0 {
		ctx = context[0] + ": "
	}
	got := m.Col(j)
	if len(got) != len(want) {
		t.Errorf("%scolumn %d has %d rows, want %d", ctx, j, len(got), len(want))
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%scolumn %d differs at row %d: got %v, want %v", ctx, j, i, got[i], want[i])
			return
		}
	}
}

// AssertState fails the test when the case's order record is missing or not
// in the wanted numbering state.
func AssertState(t *testing.T, c *types.Case, want types.NumberingState) {
	t.Helper()
	if c.Order == nil {
		t.Errorf("case has no order record, want state %q", want)
		return
	}
	if c.Order.State != want {
		t.Errorf("case numbering state is %q, want %q", c.Order.State, want)
	}
}
