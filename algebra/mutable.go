package algebra

import "math"

// MutVector is a mutable vector used as scratch state by in-place algorithms.
// It is not safe for concurrent use.
type MutVector struct {
	data []float64
}

// NewMutVector creates a zeroed mutable vector of the given dimension.
// It panics with ErrZeroDim when dim is not positive.
func NewMutVector(dim int) *MutVector {
	if dim <= 0 {
		panic(ErrZeroDim)
	}
	return &MutVector{data: make([]float64, dim)}
}

// MutVectorOf creates a mutable copy of v.
func MutVectorOf(v Vector) *MutVector {
	return &MutVector{data: v.Slice()}
}

// Dim returns the number of components.
func (m *MutVector) Dim() int {
	return len(m.data)
}

// At returns component i. It panics with ErrIndex when i is out of range.
func (m *MutVector) At(i int) float64 {
	if i < 0 || i >= len(m.data) {
		panic(ErrIndex)
	}
	return m.data[i]
}

// Set assigns component i. It panics with ErrIndex when i is out of range.
func (m *MutVector) Set(i int, x float64) {
	if i < 0 || i >= len(m.data) {
		panic(ErrIndex)
	}
	m.data[i] = x
}

// CopyFrom overwrites all components with those of v.
// It panics with ErrShape when dimensions differ.
func (m *MutVector) CopyFrom(v Vector) {
	if len(m.data) != len(v.data) {
		panic(ErrShape)
	}
	copy(m.data, v.data)
}

// AddScaled adds s·v component-wise.
// It panics with ErrShape when dimensions differ.
func (m *MutVector) AddScaled(s float64, v Vector) {
	if len(m.data) != len(v.data) {
		panic(ErrShape)
	}
	for i := range m.data {
		m.data[i] += s * v.data[i]
	}
}

// Zero sets all components to zero.
func (m *MutVector) Zero() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Magnitude2 returns the sum of squared components.
func (m *MutVector) Magnitude2() float64 {
	var sum float64
	for _, x := range m.data {
		sum += x * x
	}
	return sum
}

// Magnitude returns the Euclidean length.
func (m *MutVector) Magnitude() float64 {
	return math.Sqrt(m.Magnitude2())
}

// Vector returns an immutable snapshot of the current components.
func (m *MutVector) Vector() Vector {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return Vector{data: data}
}

// MutMatrix is a mutable matrix used to assemble results column by column.
// It is not safe for concurrent use.
type MutMatrix struct {
	rows, cols int
	data       []float64
}

// NewMutMatrix creates a zeroed rows×cols mutable matrix.
// It panics with ErrZeroDim for non-positive shapes.
func NewMutMatrix(rows, cols int) *MutMatrix {
	if rows <= 0 || cols <= 0 {
		panic(ErrZeroDim)
	}
	return &MutMatrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// At returns the element at row i, column j.
func (m *MutMatrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(ErrIndex)
	}
	return m.data[i*m.cols+j]
}

// Set assigns the element at row i, column j.
func (m *MutMatrix) Set(i, j int, x float64) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(ErrIndex)
	}
	m.data[i*m.cols+j] = x
}

// SetCol assigns column j from v.
// It panics with ErrShape when v.Dim() != rows.
func (m *MutMatrix) SetCol(j int, v Vector) {
	if j < 0 || j >= m.cols {
		panic(ErrIndex)
	}
	if v.Dim() != m.rows {
		panic(ErrShape)
	}
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+j] = v.data[i]
	}
}

// Matrix returns an immutable snapshot of the current elements.
func (m *MutMatrix) Matrix() Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return Matrix{rows: m.rows, cols: m.cols, data: data}
}
