package algebra

import (
	"fmt"
	"strings"
)

// Matrix is an immutable real matrix with rows > 0 and columns > 0,
// stored row-major.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix creates a rows×cols matrix from values given row by row.
// It panics with ErrZeroDim for non-positive shapes and with ErrShape when
// the number of values does not equal rows*cols.
func NewMatrix(rows, cols int, values ...float64) Matrix {
	if rows <= 0 || cols <= 0 {
		panic(ErrZeroDim)
	}
	if len(values) != rows*cols {
		panic(ErrShape)
	}
	data := make([]float64, len(values))
	copy(data, values)
	return Matrix{rows: rows, cols: cols, data: data}
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m Matrix) Cols() int {
	return m.cols
}

// At returns the element at row i, column j.
// It panics with ErrIndex when either index is out of range.
func (m Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(ErrIndex)
	}
	return m.data[i*m.cols+j]
}

// MulVec returns the matrix-vector product m·v, a vector of dimension Rows.
// Each component is the dot product of the corresponding row with v.
// It panics with ErrShape when v.Dim() != Cols.
func (m Matrix) MulVec(v Vector) Vector {
	if v.Dim() != m.cols {
		panic(ErrShape)
	}
	data := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		row := m.data[i*m.cols : (i+1)*m.cols]
		var sum float64
		for j, x := range row {
			sum += x * v.data[j]
		}
		data[i] = sum
	}
	return Vector{data: data}
}

// Mean returns the element-wise average of m and o.
// It panics with ErrShape when shapes differ.
func (m Matrix) Mean(o Matrix) Matrix {
	if m.rows != o.rows || m.cols != o.cols {
		panic(ErrShape)
	}
	data := make([]float64, len(m.data))
	for i := range m.data {
		data[i] = (m.data[i] + o.data[i]) / 2
	}
	return Matrix{rows: m.rows, cols: m.cols, data: data}
}

// Equal reports whether o has the same shape and bit-identical elements.
func (m Matrix) Equal(o Matrix) bool {
	return m.rows == o.rows && m.cols == o.cols && equalSlices(m.data, o.data)
}

// String renders the matrix one row per line.
func (m Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		parts := make([]string, m.cols)
		for j := 0; j < m.cols; j++ {
			parts[j] = fmt.Sprintf("%g", m.data[i*m.cols+j])
		}
		b.WriteString("[" + strings.Join(parts, ", ") + "]")
		if i < m.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
