// Copyright 2025 The datacore Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"fmt"
	"sync/atomic"
)

// handle is the reference-counted owner of the acquired buffer. All
// containers produced by Retain share one handle; the bound policy's
// release runs exactly once, when the count drops to zero.
type handle[T any] struct {
	buf  []T
	refs atomic.Int32
}

// Array is a fixed-size multi-dimensional array of elements of type T,
// stored as one contiguous buffer, with ownership behavior selected by
// the policy P at the construction site.
//
// The value is immutable after construction: the buffer is never
// reassigned and the dimension sequence never mutated. Read accessors
// may be called concurrently once construction has completed, provided
// no goroutine concurrently drops the last reference.
type Array[T any, P Policy[T]] struct {
	h    *handle[T]
	dims Dims
	size int
}

// New constructs an Array over src with the given dimensions, using
// the policy P to acquire the buffer. The flat element count is the
// product of the extents; construction fails with ErrNilSource for a
// nil source, ErrShortBuffer when src holds fewer elements than the
// dimensions require, and a dims error for a negative or overflowing
// extent product.
func New[T any, P Policy[T]](src []T, dims Dims) (*Array[T, P], error) {
	n, err := dims.FlatCount()
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrNilSource
	}
	if len(src) < n {
		return nil, fmt.Errorf("%w: source has %d elements, dims %v need %d", ErrShortBuffer, len(src), dims, n)
	}

	var pol P
	buf, err := pol.Acquire(src, n)
	if err != nil {
		return nil, err
	}

	h := &handle[T]{buf: buf}
	h.refs.Store(1)
	return &Array[T, P]{h: h, dims: dims.Clone(), size: n}, nil
}

// NewCopy constructs an Array that duplicates src and owns the copy.
func NewCopy[T any](src []T, dims Dims) (*Array[T, Copy[T]], error) {
	return New[T, Copy[T]](src, dims)
}

// NewAdopt constructs an Array that takes ownership of src without
// duplicating it.
func NewAdopt[T any](src []T, dims Dims) (*Array[T, Adopt[T]], error) {
	return New[T, Adopt[T]](src, dims)
}

// NewDeserialized constructs an Array over a buffer produced by the
// wire decoder, taking ownership of it.
func NewDeserialized[T any](src []T, dims Dims) (*Array[T, Deserialized[T]], error) {
	return New[T, Deserialized[T]](src, dims)
}

// NewView constructs an Array that references src without ever taking
// responsibility for releasing it.
func NewView[T any](src []T, dims Dims) (*Array[T, View[T]], error) {
	return New[T, View[T]](src, dims)
}

// NewCopyByteSlices constructs an Array of byte strings that
// independently duplicates every inner buffer.
func NewCopyByteSlices(src [][]byte, dims Dims) (*Array[[]byte, CopyByteSlices], error) {
	return New[[]byte, CopyByteSlices](src, dims)
}

// NewAdoptByteSlices constructs an Array of byte strings that takes
// ownership of the outer buffer and every inner buffer.
func NewAdoptByteSlices(src [][]byte, dims Dims) (*Array[[]byte, AdoptByteSlices], error) {
	return New[[]byte, AdoptByteSlices](src, dims)
}

// Data returns the stored buffer.
//
// WARNING: The slice directly accesses the container's memory. Callers
// must not mutate through it; the policy that owns release assumes the
// buffer's shape is unchanged. Panics once the last reference has been
// released.
func (a *Array[T, P]) Data() []T {
	if a.h.refs.Load() < 1 {
		panic("array: Data called after final Release")
	}
	return a.h.buf
}

// Dims returns a copy of the dimension sequence.
func (a *Array[T, P]) Dims() Dims {
	return a.dims.Clone()
}

// Size returns the flat element count.
func (a *Array[T, P]) Size() int {
	return a.size
}

// Retain adds a co-owning reference and returns the container, so a
// shared handle can be handed off explicitly. Every Retain must be
// paired with a Release.
func (a *Array[T, P]) Retain() *Array[T, P] {
	if a.h.refs.Add(1) < 2 {
		panic("array: Retain called after final Release")
	}
	return a
}

// Release drops one reference. When the last reference is dropped the
// bound policy's release runs on the stored buffer, exactly once.
// Further Release calls are inert.
func (a *Array[T, P]) Release() {
	if a.h.refs.Add(-1) == 0 {
		var pol P
		pol.Release(a.h.buf, a.size)
		a.h.buf = nil
	}
}

// IsUnique returns true if this container holds the only reference to
// the buffer.
func (a *Array[T, P]) IsUnique() bool {
	return a.h.refs.Load() == 1
}

// String returns a human-readable representation of the container.
func (a *Array[T, P]) String() string {
	return fmt.Sprintf("Array%v(%d elements)", a.dims, a.size)
}
