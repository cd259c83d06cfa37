// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

// Store is a finite random-access element store consumed by FromStore
// and Gather. Stores are read-only for the lifetime of any pipeline
// built over them.
type Store[T any] interface {
	// Len returns the number of elements.
	Len() int
	// At returns the element at index i; out of range is a defect.
	At(i int) T
	// AtUnchecked returns the element at index i without a bounds
	// check. The caller guarantees 0 <= i < Len().
	AtUnchecked(i int) T
}

// Vec is a flat, length-known element store backed by a slice.
type Vec[T any] struct {
	elems []T
}

// VecOf constructs a Vec from the given elements.
func VecOf[T any](elems ...T) *Vec[T] {
	return &Vec[T]{elems: elems}
}

// VecFromSlice wraps s without copying. The caller must not mutate s
// while a pipeline reads from the Vec.
func VecFromSlice[T any](s []T) *Vec[T] {
	return &Vec[T]{elems: s}
}

// VecFromFunc bulk-constructs a Vec of n elements from an index
// function.
func VecFromFunc[T any](n int, f func(int) T) *Vec[T] {
	elems := make([]T, n)
	for i := range elems {
		elems[i] = f(i)
	}
	return &Vec[T]{elems: elems}
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int {
	return len(v.elems)
}

// At returns the element at index i. An out-of-range index is a defect.
func (v *Vec[T]) At(i int) T {
	if i < 0 || i >= len(v.elems) {
		panic("flow: store index out of range")
	}
	return v.elems[i]
}

// AtUnchecked returns the element at index i without a bounds check.
func (v *Vec[T]) AtUnchecked(i int) T {
	return v.elems[i]
}

// Slice returns the underlying storage. The slice aliases the Vec.
func (v *Vec[T]) Slice() []T {
	return v.elems
}
