package types

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestMatrixFromRows(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]float64
		wantErr bool
	}{
		{
			name: "rectangular",
			rows: [][]float64{{1, 2, 3}, {4, 5, 6}},
		},
		{
			name: "empty",
			rows: nil,
		},
		{
			name:    "ragged",
			rows:    [][]float64{{1, 2}, {3}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := MatrixFromRows(tt.rows)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.Rows() != len(tt.rows) {
				t.Errorf("got %d rows, want %d", m.Rows(), len(tt.rows))
			}
			for i, row := range tt.rows {
				for j, v := range row {
					if m.At(i, j) != v {
						t.Errorf("element (%d,%d) = %v, want %v", i, j, m.At(i, j), v)
					}
				}
			}
		})
	}
}

func TestMatrixRowAliasesStorage(t *testing.T) {
	m, _ := MatrixFromRows([][]float64{{1, 2}, {3, 4}})
	m.Row(1)[0] = 9
	if m.At(1, 0) != 9 {
		t.Errorf("Row(1) should alias the matrix storage, got %v", m.At(1, 0))
	}
}

func TestMatrixCloneIsIndependent(t *testing.T) {
	m, _ := MatrixFromRows([][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	c.Set(0, 0, 99)
	if m.At(0, 0) != 1 {
		t.Errorf("mutating a clone changed the original: %v", m.At(0, 0))
	}
	if !m.Equal(m.Clone()) {
		t.Error("clone should equal original")
	}
}

func TestMatrixEqual(t *testing.T) {
	a, _ := MatrixFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := MatrixFromRows([][]float64{{1, 2}, {3, 5}})
	c, _ := MatrixFromRows([][]float64{{1, 2, 3}})

	if a.Equal(b) {
		t.Error("matrices with different content compare equal")
	}
	if a.Equal(c) {
		t.Error("matrices with different shape compare equal")
	}
	var nilM *Matrix
	if nilM.Equal(a) || a.Equal(nil) {
		t.Error("nil should only equal nil")
	}
	if !nilM.Equal(nil) {
		t.Error("nil should equal nil")
	}
}

func TestConcat(t *testing.T) {
	a, _ := MatrixFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := MatrixFromRows([][]float64{{5, 6}})

	t.Run("rows", func(t *testing.T) {
		got, err := Concat(DimRows, a, b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want, _ := MatrixFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got.ToRows(), want.ToRows())
		}
	})

	t.Run("cols", func(t *testing.T) {
		c, _ := MatrixFromRows([][]float64{{7}, {8}})
		got, err := Concat(DimCols, a, c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want, _ := MatrixFromRows([][]float64{{1, 2, 7}, {3, 4, 8}})
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got.ToRows(), want.ToRows())
		}
	})

	t.Run("column count mismatch", func(t *testing.T) {
		c, _ := MatrixFromRows([][]float64{{1, 2, 3}})
		if _, err := Concat(DimRows, a, c); err == nil {
			t.Error("expected error for mismatched column counts")
		}
	})

	t.Run("no parts", func(t *testing.T) {
		if _, err := Concat(DimRows); err == nil {
			t.Error("expected error for zero parts")
		}
	})

	t.Run("invalid dimension", func(t *testing.T) {
		if _, err := Concat(2, a, b); err == nil {
			t.Error("expected error for invalid dimension")
		}
	})
}

func TestMatrixJSONRoundTrip(t *testing.T) {
	m, _ := MatrixFromRows([][]float64{{1, 2.5}, {-3, 0}})
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Matrix
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Equal(m) {
		t.Errorf("round trip changed matrix: got %v, want %v", got.ToRows(), m.ToRows())
	}
}

func TestMatrixJSONRejectsRagged(t *testing.T) {
	var got Matrix
	if err := json.Unmarshal([]byte(`[[1,2],[3]]`), &got); err == nil {
		t.Error("expected error for ragged input")
	}
}

func TestMatrixYAMLRoundTrip(t *testing.T) {
	m, _ := MatrixFromRows([][]float64{{10, 3}, {20, 2}})
	data, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Matrix
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Equal(m) {
		t.Errorf("round trip changed matrix: got %v, want %v", got.ToRows(), m.ToRows())
	}
}
