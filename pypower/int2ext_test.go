package pypower_test

import (
	"errors"
	"testing"

	"github.com/huandalu/pypower/pypower"
	"github.com/huandalu/pypower/pypower/testutil"
	"github.com/huandalu/pypower/types"
)

func TestInt2ExtRoundTrip(t *testing.T) {
	// With the internal payload untouched, restoring must reproduce the
	// original external case exactly: row content, identifier values, row
	// count and order, offline rows included.
	f := testutil.NewFixture()
	got, err := pypower.Int2Ext(f.Internal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertMatrixEqual(t, got.Bus, f.External.Bus, "bus")
	testutil.AssertMatrixEqual(t, got.Gen, f.External.Gen, "gen")
	testutil.AssertMatrixEqual(t, got.Branch, f.External.Branch, "branch")
	testutil.AssertMatrixEqual(t, got.Gencost, f.External.Gencost, "gencost")
	testutil.AssertMatrixEqual(t, got.Areas, f.External.Areas, "areas")
	testutil.AssertState(t, got, types.NumberingExternal)

	if got.Order.Ext != nil {
		t.Error("external snapshot should be dropped after restore")
	}
	if got.Order.Int == nil || got.Order.Int.Bus == nil {
		t.Error("internal snapshot should be kept after restore")
	}
}

func TestInt2ExtPropagatesInternalPayload(t *testing.T) {
	f := testutil.NewFixture()
	c := f.Internal

	// Simulate a solver run: update voltages on every internal bus and the
	// output of both online generators.
	for i := 0; i < c.Bus.Rows(); i++ {
		c.Bus.Set(i, types.VM, 1.02)
	}
	c.Gen.Set(0, types.PG, 95) // internal row 0 = external row 1 (bus 10)
	c.Gen.Set(1, types.PG, 80) // internal row 1 = external row 0 (bus 50)

	got, err := pypower.Int2Ext(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Online buses carry the solved voltage with original identifiers; the
	// isolated bus keeps its last external content.
	testutil.AssertColumn(t, got.Bus, types.BusI, []float64{10, 20, 30, 40, 50}, "bus ids")
	testutil.AssertColumn(t, got.Bus, types.VM, []float64{1.02, 1.02, 1.00, 1.02, 1.02}, "bus voltages")

	// The generator permutation is reverted: the bus-50 unit is external
	// row 0 again, the bus-10 unit row 1, offline units untouched.
	testutil.AssertColumn(t, got.Gen, types.GenBus, []float64{50, 10, 30, 20}, "gen buses")
	testutil.AssertColumn(t, got.Gen, types.PG, []float64{80, 95, 0, 0}, "gen output")

	// Branch endpoints are external identifiers again, offline rows intact.
	testutil.AssertColumn(t, got.Branch, types.FBus, []float64{10, 20, 20, 40, 10}, "branch from")
	testutil.AssertColumn(t, got.Branch, types.TBus, []float64{20, 30, 40, 50, 50}, "branch to")

	// The area price reference bus is an external identifier again.
	testutil.AssertRowEqual(t, got.Areas, 0, []float64{1, 20}, "areas")
}

func TestInt2ExtScenario(t *testing.T) {
	// 3-bus scenario: buses 10 and 30 online, 20 offline. The internal
	// table has 2 rows with consecutive ids; restoring yields 3 rows with
	// original ids where rows 0 and 2 carry the internal payload and row 1
	// is the untouched external snapshot.
	intBus, _ := types.MatrixFromRows([][]float64{{0, 5}, {1, 6}})
	extBus, _ := types.MatrixFromRows([][]float64{{10, 99}, {20, 88}, {30, 77}})

	c := &types.Case{
		Bus:    intBus,
		Gen:    types.NewMatrix(0, 1),
		Branch: types.NewMatrix(0, 2),
		Order: &types.Order{
			State: types.NumberingInternal,
			Classes: map[string]*types.ClassOrder{
				types.ClassBus: {
					Status: types.Status{On: []int{0, 2}},
					I2E:    []int{10, 30},
				},
				types.ClassGen:    {},
				types.ClassBranch: {},
			},
			Ext: &types.Snapshot{
				Bus:    extBus,
				Gen:    types.NewMatrix(0, 1),
				Branch: types.NewMatrix(0, 2),
			},
		},
	}

	got, err := pypower.Int2Ext(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := types.MatrixFromRows([][]float64{{10, 5}, {20, 88}, {30, 6}})
	testutil.AssertMatrixEqual(t, got.Bus, want, "bus")
}

func TestInt2ExtRequiresOrder(t *testing.T) {
	f := testutil.NewFixture()
	c := f.External // never internally renumbered

	got, err := pypower.Int2Ext(c)
	if !errors.Is(err, pypower.ErrNoOrder) {
		t.Fatalf("got error %v, want ErrNoOrder", err)
	}
	if got != c {
		t.Error("the unmodified case should be returned alongside the error")
	}
	testutil.AssertMatrixEqual(t, got.Bus, testutil.NewFixture().External.Bus, "bus must be untouched")
}

func TestInt2ExtTwiceReportsAlreadyExternal(t *testing.T) {
	f := testutil.NewFixture()
	c, err := pypower.Int2Ext(f.Internal)
	if err != nil {
		t.Fatalf("first restore: %v", err)
	}
	if _, err := pypower.Int2Ext(c); !errors.Is(err, pypower.ErrAlreadyExternal) {
		t.Fatalf("second restore: got error %v, want ErrAlreadyExternal", err)
	}
}

func TestInt2ExtRejectsInconsistentOrder(t *testing.T) {
	f := testutil.NewFixture()
	f.Internal.Order.Classes[types.ClassGen].I2E = []int{0, 0}
	if _, err := pypower.Int2Ext(f.Internal); err == nil {
		t.Fatal("expected a validation error, got nil")
	}
	testutil.AssertState(t, f.Internal, types.NumberingInternal)
}

func TestInt2ExtRunsInt2ExtCallbacks(t *testing.T) {
	f := testutil.NewFixture()
	c := f.Internal

	int2extCalls := 0
	pypower.RegisterUserFcn(c, types.StageInt2Ext, func(mc *types.Case) (*types.Case, error) {
		int2extCalls++
		// Callbacks observe the final internal state before it is discarded.
		testutil.AssertState(t, mc, types.NumberingInternal)
		if mc.Bus.Rows() != 4 {
			t.Errorf("callback saw %d bus rows, want the 4 internal ones", mc.Bus.Rows())
		}
		return mc, nil
	})
	ext2intCalls := 0
	pypower.RegisterUserFcn(c, types.StageExt2Int, func(mc *types.Case) (*types.Case, error) {
		ext2intCalls++
		return mc, nil
	})

	if _, err := pypower.Int2Ext(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if int2extCalls != 1 {
		t.Errorf("int2ext callback ran %d times, want 1", int2extCalls)
	}
	if ext2intCalls != 0 {
		t.Errorf("ext2int callback ran %d times, want 0", ext2intCalls)
	}
}

func TestInt2ExtCallbackErrorAborts(t *testing.T) {
	f := testutil.NewFixture()
	c := f.Internal
	pypower.RegisterUserFcn(c, types.StageInt2Ext, func(mc *types.Case) (*types.Case, error) {
		return nil, errors.New("extension exploded")
	})

	if _, err := pypower.Int2Ext(c); err == nil {
		t.Fatal("expected callback error to propagate")
	}
	// The conversion must not have started.
	testutil.AssertState(t, c, types.NumberingInternal)
	if c.Bus.Rows() != 4 {
		t.Errorf("case has %d bus rows, want the 4 internal ones", c.Bus.Rows())
	}
}

func TestInt2ExtTables(t *testing.T) {
	i2e := []int{10, 20, 40, 50}
	bus, _ := types.MatrixFromRows([][]float64{{0, 1}, {1, 1}, {2, 1}, {3, 1}})
	gen, _ := types.MatrixFromRows([][]float64{{3}, {0}})
	branch, _ := types.MatrixFromRows([][]float64{{0, 1}, {1, 2}, {2, 3}})
	areas, _ := types.MatrixFromRows([][]float64{{1, 1}})

	if err := pypower.Int2ExtTables(i2e, bus, gen, branch, areas); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertColumn(t, bus, types.BusI, []float64{10, 20, 40, 50}, "bus ids")
	testutil.AssertColumn(t, gen, types.GenBus, []float64{50, 10}, "gen buses")
	testutil.AssertColumn(t, branch, types.FBus, []float64{10, 20, 40}, "branch from")
	testutil.AssertColumn(t, branch, types.TBus, []float64{20, 40, 50}, "branch to")
	testutil.AssertRowEqual(t, areas, 0, []float64{1, 20}, "areas")
}

func TestInt2ExtTablesToleratesNilAreas(t *testing.T) {
	i2e := []int{10}
	bus, _ := types.MatrixFromRows([][]float64{{0, 1}})
	gen, _ := types.MatrixFromRows([][]float64{{0}})
	branch, _ := types.MatrixFromRows([][]float64{{0, 0}})
	if err := pypower.Int2ExtTables(i2e, bus, gen, branch, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInt2ExtTablesRejectsUnmappedID(t *testing.T) {
	i2e := []int{10}
	bus, _ := types.MatrixFromRows([][]float64{{4, 1}})
	gen, _ := types.MatrixFromRows([][]float64{{0}})
	branch, _ := types.MatrixFromRows([][]float64{{0, 0}})
	if err := pypower.Int2ExtTables(i2e, bus, gen, branch, nil); err == nil {
		t.Fatal("expected error for id outside the i2e map")
	}
}
