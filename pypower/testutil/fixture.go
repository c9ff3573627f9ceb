// Package testutil provides the shared test fixture and matrix assertions
// for the conversion tests.
package testutil

import (
	"github.com/huandalu/pypower/types"
)

// Fixture bundles a 5-bus external case and its internally numbered twin
// with a hand-built order record.
//
// The external case contains every situation the restore path has to
// handle:
//
//   - bus 30 is isolated (type None), so buses renumber sparsely:
//     10,20,40,50 → 0,1,2,3
//   - the generator at bus 20 is out of service and the one at bus 30 sits
//     on the isolated bus; both drop out of internal numbering
//   - the surviving generators are reordered by bus internally (the gen at
//     bus 10 moves ahead of the one at bus 50), giving a non-identity gen
//     i2e permutation
//   - branch 20–30 touches the isolated bus and branch 10–50 is out of
//     service; both drop out
//   - gencost rows track the generator rows in both numberings
//   - one area whose price reference bus is 20
type Fixture struct {
	External *types.Case // original case, as a user would supply it
	Internal *types.Case // online-only dense numbering plus order record
}

// NewFixture builds fresh, independent external and internal cases. The
// internal case's order record carries an external snapshot distinct from
// the External case, so tests can mutate one without corrupting the other.
func NewFixture() *Fixture {
	return &Fixture{
		External: &types.Case{
			Version: "2",
			BaseMVA: 100,
			Bus:     extBus(),
			Gen:     extGen(),
			Branch:  extBranch(),
			Gencost: extGencost(),
			Areas:   extAreas(),
		},
		Internal: &types.Case{
			Version: "2",
			BaseMVA: 100,
			Bus:     intBus(),
			Gen:     intGen(),
			Branch:  intBranch(),
			Gencost: intGencost(),
			Areas:   intAreas(),
			Order: &types.Order{
				State: types.NumberingInternal,
				Classes: map[string]*types.ClassOrder{
					types.ClassBus: {
						Status: types.Status{On: []int{0, 1, 3, 4}},
						I2E:    []int{10, 20, 40, 50},
					},
					types.ClassGen: {
						Status: types.Status{On: []int{0, 1}},
						I2E:    []int{1, 0},
					},
					types.ClassBranch: {
						Status: types.Status{On: []int{0, 2, 3}},
					},
					types.ClassAreas: {
						Status: types.Status{On: []int{0}},
					},
				},
				Ext: &types.Snapshot{
					Bus:     extBus(),
					Gen:     extGen(),
					Branch:  extBranch(),
					Gencost: extGencost(),
					Areas:   extAreas(),
				},
			},
		},
	}
}

// extBus returns the external bus table: ids 10..50, bus 30 isolated.
func extBus() *types.Matrix {
	return mustMatrix([][]float64{
		// BusI, BusType, PD, QD, GS, BS, BusArea, VM, VA, BaseKV, Zone, VMax, VMin
		{10, types.Ref, 0, 0, 0, 0, 1, 1.00, 0, 230, 1, 1.1, 0.9},
		{20, types.PV, 20, 10, 0, 0, 1, 1.00, 0, 230, 1, 1.1, 0.9},
		{30, types.None, 0, 0, 0, 0, 1, 1.00, 0, 230, 1, 1.1, 0.9},
		{40, types.PQ, 60, 15, 0, 0, 1, 1.00, 0, 230, 1, 1.1, 0.9},
		{50, types.PQ, 90, 30, 0, 0, 1, 1.00, 0, 230, 1, 1.1, 0.9},
	})
}

// intBus is extBus without the isolated bus, ids renumbered 0..3.
func intBus() *types.Matrix {
	return mustMatrix([][]float64{
		{0, types.Ref, 0, 0, 0, 0, 1, 1.00, 0, 230, 1, 1.1, 0.9},
		{1, types.PV, 20, 10, 0, 0, 1, 1.00, 0, 230, 1, 1.1, 0.9},
		{2, types.PQ, 60, 15, 0, 0, 1, 1.00, 0, 230, 1, 1.1, 0.9},
		{3, types.PQ, 90, 30, 0, 0, 1, 1.00, 0, 230, 1, 1.1, 0.9},
	})
}

// extGen: rows 2 (isolated bus) and 3 (out of service) drop out internally.
func extGen() *types.Matrix {
	return mustMatrix([][]float64{
		// GenBus, PG, QG, QMax, QMin, VG, MBase, GenStatus, PMax, PMin
		{50, 85, 0, 60, -60, 1.0, 100, 1, 200, 10},
		{10, 90, 0, 50, -50, 1.0, 100, 1, 250, 10},
		{30, 0, 0, 30, -30, 1.0, 100, 1, 100, 5},
		{20, 0, 0, 30, -30, 1.0, 100, 0, 100, 5},
	})
}

// intGen: the online generators sorted by internal bus, so external rows
// (1, 0) in that order, with internal bus ids in the GenBus column.
func intGen() *types.Matrix {
	return mustMatrix([][]float64{
		{0, 90, 0, 50, -50, 1.0, 100, 1, 250, 10},
		{3, 85, 0, 60, -60, 1.0, 100, 1, 200, 10},
	})
}

// extBranch: row 1 touches the isolated bus, row 4 is out of service.
func extBranch() *types.Matrix {
	return mustMatrix([][]float64{
		// FBus, TBus, BrR, BrX, BrB, RateA, RateB, RateC, Tap, Shift, BrStatus, AngMin, AngMax
		{10, 20, 0.01, 0.05, 0.02, 130, 130, 130, 0, 0, 1, -360, 360},
		{20, 30, 0.02, 0.06, 0.02, 130, 130, 130, 0, 0, 1, -360, 360},
		{20, 40, 0.01, 0.04, 0.01, 90, 90, 90, 0, 0, 1, -360, 360},
		{40, 50, 0.03, 0.08, 0.03, 90, 90, 90, 0, 0, 1, -360, 360},
		{10, 50, 0.02, 0.07, 0.02, 65, 65, 65, 0, 0, 0, -360, 360},
	})
}

func intBranch() *types.Matrix {
	return mustMatrix([][]float64{
		{0, 1, 0.01, 0.05, 0.02, 130, 130, 130, 0, 0, 1, -360, 360},
		{1, 2, 0.01, 0.04, 0.01, 90, 90, 90, 0, 0, 1, -360, 360},
		{2, 3, 0.03, 0.08, 0.03, 90, 90, 90, 0, 0, 1, -360, 360},
	})
}

// extGencost rows track extGen rows.
func extGencost() *types.Matrix {
	return mustMatrix([][]float64{
		// CostModel, Startup, Shutdown, NCost, c2, c1, c0
		{types.Polynomial, 0, 0, 3, 0.01, 40, 0},
		{types.Polynomial, 0, 0, 3, 0.02, 30, 0},
		{types.Polynomial, 0, 0, 3, 0.03, 50, 0},
		{types.Polynomial, 0, 0, 3, 0.04, 60, 0},
	})
}

// intGencost rows track intGen rows (external rows 1, 0).
func intGencost() *types.Matrix {
	return mustMatrix([][]float64{
		{types.Polynomial, 0, 0, 3, 0.02, 30, 0},
		{types.Polynomial, 0, 0, 3, 0.01, 40, 0},
	})
}

func extAreas() *types.Matrix {
	return mustMatrix([][]float64{
		// AreaI, PriceRefBus
		{1, 20},
	})
}

func intAreas() *types.Matrix {
	return mustMatrix([][]float64{
		{1, 1},
	})
}

func mustMatrix(rows [][]float64) *types.Matrix {
	m, err := types.MatrixFromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}
