package types

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Dimension selectors for operations that can run along either axis.
const (
	// DimRows selects the row axis. This is the default everywhere: entity
	// tables are row-ordered.
	DimRows = 0
	// DimCols selects the column axis, used for data laid out per entity
	// along columns (e.g. linear constraint matrices).
	DimCols = 1
)

// Matrix is a dense 2-D numeric table stored in row-major order.
//
// All case tables (bus, gen, branch, ...) are matrices. The conversion code
// treats most columns as opaque payload and only rewrites identifier columns,
// so the element type is plain float64 with identifiers stored as integral
// values.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix returns a zero-filled rows×cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic("types: negative matrix dimension")
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// MatrixFromRows builds a matrix from row slices. All rows must have the
// same length.
func MatrixFromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{}, nil
	}
	cols := len(rows[0])
	m := NewMatrix(len(rows), cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("types: ragged rows: row %d has %d columns, want %d", i, len(r), cols)
		}
		copy(m.Row(i), r)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Dim returns the size along the given axis.
func (m *Matrix) Dim(dim int) int {
	switch dim {
	case DimRows:
		return m.rows
	case DimCols:
		return m.cols
	default:
		panic(fmt.Sprintf("types: invalid dimension %d", dim))
	}
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	m.check(i, j)
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.check(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Matrix) check(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("types: index (%d,%d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
}

// Row returns row i as a slice sharing the matrix's backing storage.
// Mutating the slice mutates the matrix.
func (m *Matrix) Row(i int) []float64 {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("types: row %d out of range for %dx%d matrix", i, m.rows, m.cols))
	}
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []float64 {
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("types: column %d out of range for %dx%d matrix", j, m.rows, m.cols))
	}
	out := make([]float64, m.rows)
	for i := range out {
		out[i] = m.data[i*m.cols+j]
	}
	return out
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Equal reports whether two matrices have the same shape and elements.
// A nil matrix equals only another nil matrix.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == nil && other == nil
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// ToRows returns the matrix content as row slices, copied out of the
// backing storage.
func (m *Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = make([]float64, m.cols)
		copy(out[i], m.Row(i))
	}
	return out
}

// Concat assembles parts into one matrix along the given axis. For DimRows
// all parts must agree on column count, for DimCols on row count.
func Concat(dim int, parts ...*Matrix) (*Matrix, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("types: concat of zero matrices")
	}
	switch dim {
	case DimRows:
		cols := parts[0].cols
		total := 0
		for i, p := range parts {
			if p.cols != cols {
				return nil, fmt.Errorf("types: concat part %d has %d columns, want %d", i, p.cols, cols)
			}
			total += p.rows
		}
		out := NewMatrix(total, cols)
		at := 0
		for _, p := range parts {
			copy(out.data[at*cols:], p.data)
			at += p.rows
		}
		return out, nil
	case DimCols:
		rows := parts[0].rows
		total := 0
		for i, p := range parts {
			if p.rows != rows {
				return nil, fmt.Errorf("types: concat part %d has %d rows, want %d", i, p.rows, rows)
			}
			total += p.cols
		}
		out := NewMatrix(rows, total)
		for i := 0; i < rows; i++ {
			at := 0
			for _, p := range parts {
				copy(out.Row(i)[at:], p.Row(i))
				at += p.cols
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("types: invalid dimension %d", dim)
	}
}

// MarshalJSON encodes the matrix as an array of row arrays.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToRows())
}

// UnmarshalJSON decodes an array of row arrays.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	parsed, err := MatrixFromRows(rows)
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}

// MarshalYAML encodes the matrix as a sequence of row sequences.
func (m *Matrix) MarshalYAML() (interface{}, error) {
	if m == nil {
		return nil, nil
	}
	return m.ToRows(), nil
}

// UnmarshalYAML decodes a sequence of row sequences.
func (m *Matrix) UnmarshalYAML(value *yaml.Node) error {
	var rows [][]float64
	if err := value.Decode(&rows); err != nil {
		return err
	}
	parsed, err := MatrixFromRows(rows)
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}
