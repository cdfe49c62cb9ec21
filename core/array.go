package core

import (
	"fmt"
	"slices"
)

// Array is a row-major N-dimensional float64 array.
//
// An Array with no dimensions is a scalar holding exactly one element.
// The zero value is not usable; build arrays with NewArray, FromSlice or
// FromRows.
type Array struct {
	shape []int
	data  []float64
}

// NewArray allocates a zero-filled array with the given shape.
// Every dimension must be positive.
func NewArray(shape ...int) (*Array, error) {
	n, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}

	return &Array{shape: slices.Clone(shape), data: make([]float64, n)}, nil
}

// FromSlice wraps data as an array of the given shape. The array shares
// data with the caller. len(data) must equal the product of shape.
func FromSlice(data []float64, shape ...int) (*Array, error) {
	n, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}

	if len(data) != n {
		return nil, fmt.Errorf("core: %d values do not fill shape %v: %w", len(data), shape, ErrShapeMismatch)
	}

	return &Array{shape: slices.Clone(shape), data: data}, nil
}

// FromRows copies a rectangular slice of rows into a new 2-D array.
func FromRows(rows [][]float64) (*Array, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("core: no rows: %w", ErrEmptyInput)
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)

	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("core: row %d has %d columns, want %d: %w", i, len(row), cols, ErrShapeMismatch)
		}

		data = append(data, row...)
	}

	return &Array{shape: []int{len(rows), cols}, data: data}, nil
}

// MustFromRows is like FromRows but panics on error.
func MustFromRows(rows [][]float64) *Array {
	a, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return a
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice(data []float64, shape ...int) *Array {
	a, err := FromSlice(data, shape...)
	if err != nil {
		panic(err)
	}

	return a
}

func shapeSize(shape []int) (int, error) {
	n := 1
	for i, d := range shape {
		if d <= 0 {
			return 0, fmt.Errorf("core: dimension %d has size %d: %w", i, d, ErrShapeMismatch)
		}

		n *= d
	}

	return n, nil
}

// Shape returns a copy of the array's dimensions.
func (a *Array) Shape() []int { return slices.Clone(a.shape) }

// Dim returns the size of dimension i.
func (a *Array) Dim(i int) int { return a.shape[i] }

// NDim returns the number of dimensions.
func (a *Array) NDim() int { return len(a.shape) }

// Len returns the total element count.
func (a *Array) Len() int { return len(a.data) }

// Data returns the backing slice in row-major order. Writes are visible
// through the array.
func (a *Array) Data() []float64 { return a.data }

// At returns the element at the given index. It panics if the index has
// the wrong rank or is out of range, like slice indexing.
func (a *Array) At(idx ...int) float64 { return a.data[a.offset(idx)] }

// Set stores v at the given index.
func (a *Array) Set(v float64, idx ...int) { a.data[a.offset(idx)] = v }

func (a *Array) offset(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("core: index rank %d, array rank %d", len(idx), len(a.shape)))
	}

	off := 0
	for i, k := range idx {
		if k < 0 || k >= a.shape[i] {
			panic(fmt.Sprintf("core: index %d out of range [0,%d) on dimension %d", k, a.shape[i], i))
		}

		off = off*a.shape[i] + k
	}

	return off
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	return &Array{shape: slices.Clone(a.shape), data: slices.Clone(a.data)}
}

// SameShape reports whether a and b have identical dimensions.
func (a *Array) SameShape(b *Array) bool {
	return b != nil && slices.Equal(a.shape, b.shape)
}

// String implements fmt.Stringer.
func (a *Array) String() string {
	return fmt.Sprintf("Array%v%v", a.shape, a.data)
}

// CheckShapes returns ErrShapeMismatch unless every array has the shape of
// the first one. A nil array is reported as ErrEmptyInput.
func CheckShapes(arrays ...*Array) error {
	for i, a := range arrays {
		if a == nil {
			return fmt.Errorf("core: array %d is nil: %w", i, ErrEmptyInput)
		}

		if i > 0 && !arrays[0].SameShape(a) {
			return fmt.Errorf("core: shape %v differs from %v: %w", a.shape, arrays[0].shape, ErrShapeMismatch)
		}
	}

	return nil
}

// AxisLayout describes how an array decomposes around one axis: Outer
// blocks, each holding N lanes of Inner contiguous elements. Element k of
// lane (o, i) lives at Index(o, k, i).
type AxisLayout struct {
	Outer int
	N     int
	Inner int
	// Reduced is the shape with the axis removed.
	Reduced []int
}

// Index returns the flat offset of element k in lane (outer, inner).
func (l AxisLayout) Index(outer, k, inner int) int {
	return (outer*l.N+k)*l.Inner + inner
}

// Lanes returns the number of lanes, Outer*Inner, which is also the
// element count of the reduced array.
func (l AxisLayout) Lanes() int { return l.Outer * l.Inner }

// Axis resolves axis against the array's rank and returns its layout.
// Negative values count from the last dimension, so -1 is the last axis.
func (a *Array) Axis(axis int) (AxisLayout, error) {
	nd := len(a.shape)
	if axis < 0 {
		axis += nd
	}

	if axis < 0 || axis >= nd {
		return AxisLayout{}, fmt.Errorf("core: axis %d for %d-d array: %w", axis, nd, ErrInvalidAxis)
	}

	l := AxisLayout{Outer: 1, N: a.shape[axis], Inner: 1}
	for _, d := range a.shape[:axis] {
		l.Outer *= d
	}

	for _, d := range a.shape[axis+1:] {
		l.Inner *= d
	}

	l.Reduced = make([]int, 0, nd-1)
	l.Reduced = append(l.Reduced, a.shape[:axis]...)
	l.Reduced = append(l.Reduced, a.shape[axis+1:]...)

	return l, nil
}
