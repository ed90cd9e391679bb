// Package matrix implements the dense row-major matrix type shared by the
// semiring, tile, and kernel packages.
package matrix

import "unsafe"

// Matrix is a dense rows x cols array of element type T stored row-major.
type Matrix[T any] struct {
	rows, cols int
	data       []T
}

// New allocates a zero-valued rows x cols matrix.
func New[T any](rows, cols int) *Matrix[T] {
	return &Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

// FromRows builds a matrix from literal row slices. Every row must have the
// same length; callers construct these from trusted test/CLI input only.
func FromRows[T any](rows [][]T) *Matrix[T] {
	if len(rows) == 0 {
		return New[T](0, 0)
	}
	r, c := len(rows), len(rows[0])
	m := New[T](r, c)
	for i := range rows {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}
	return m
}

func (m *Matrix[T]) Rows() int { return m.rows }
func (m *Matrix[T]) Cols() int { return m.cols }

// At returns the element at (row, col).
func (m *Matrix[T]) At(row, col int) T {
	return m.data[row*m.cols+col]
}

// Set assigns the element at (row, col).
func (m *Matrix[T]) Set(row, col int, v T) {
	m.data[row*m.cols+col] = v
}

// Clone returns a deep (element-wise) copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := New[T](m.rows, m.cols)
	copy(out.data, m.data)
	return out
}

// Row returns a row slice view; length cols, shares backing storage.
func (m *Matrix[T]) Row(r int) []T {
	return m.data[r*m.cols : (r+1)*m.cols]
}

// ByteSize estimates the matrix's wire size in bytes, used by the
// interconnect's transmission-time cost model. It assumes a fixed-width
// element type (no nested slices/pointers), which holds for both the
// integer ring and Msg.
func (m *Matrix[T]) ByteSize() int {
	var zero T
	return len(m.data) * int(unsafe.Sizeof(zero))
}

// Equal reports whether two matrices have identical shape and contents,
// given an element equality predicate.
func (m *Matrix[T]) Equal(o *Matrix[T], eq func(a, b T) bool) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if !eq(m.data[i], o.data[i]) {
			return false
		}
	}
	return true
}
