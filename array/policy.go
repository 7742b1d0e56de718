// Copyright 2025 The datacore Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import "fmt"

// Policy decides how a container acquires its buffer from a source and
// how that buffer is released at the end of the container's life.
// Policies are stateless value types bound to an Array as a type
// parameter, so release behavior is fixed at the construction site and
// cannot drift afterwards.
//
// Acquire is handed the source buffer and the flat element count the
// dimensions require. Release is handed the acquired buffer and the
// same count; releasing a nil buffer is a no-op.
type Policy[T any] interface {
	Acquire(src []T, n int) ([]T, error)
	Release(buf []T, n int)
}

// Copy duplicates the source buffer and owns the duplicate. The copy
// is element-shallow: suitable for plain data, not for elements that
// themselves reference owned storage (use CopyByteSlices for those).
type Copy[T any] struct{}

// Acquire allocates a fresh buffer of n elements and copies the first
// n elements of src into it.
func (Copy[T]) Acquire(src []T, n int) ([]T, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if len(src) < n {
		return nil, fmt.Errorf("%w: have %d elements, need %d", ErrShortBuffer, len(src), n)
	}
	buf, err := alloc[T](n)
	if err != nil {
		return nil, err
	}
	copy(buf, src[:n])
	return buf, nil
}

// Release scrubs the owned buffer.
func (Copy[T]) Release(buf []T, _ int) {
	clear(buf)
}

// Adopt takes ownership of the source buffer without duplicating it.
// The caller relinquishes the buffer at the moment of construction and
// must not touch it afterwards.
type Adopt[T any] struct{}

// Acquire returns src unchanged.
func (Adopt[T]) Acquire(src []T, _ int) ([]T, error) {
	return src, nil
}

// Release scrubs the adopted buffer.
func (Adopt[T]) Release(buf []T, _ int) {
	clear(buf)
}

// Deserialized takes ownership of a buffer produced by the wire
// decoder. Its operations match Adopt today, but it is a distinct
// policy identity: the decoder guarantees one contiguous allocation
// per buffer (string arrays included), so release is always a single
// bulk scrub, and the two policies are free to diverge as their
// producers evolve.
type Deserialized[T any] struct{}

// Acquire returns src unchanged.
func (Deserialized[T]) Acquire(src []T, _ int) ([]T, error) {
	return src, nil
}

// Release scrubs the adopted buffer in one step.
func (Deserialized[T]) Release(buf []T, _ int) {
	clear(buf)
}

// View references a caller-owned buffer. The container never releases
// it under any circumstance; the caller keeps full responsibility for
// its lifetime.
type View[T any] struct{}

// Acquire returns src unchanged.
func (View[T]) Acquire(src []T, _ int) ([]T, error) {
	return src, nil
}

// Release does nothing.
func (View[T]) Release(_ []T, _ int) {}

// alloc allocates a buffer of n elements. A count that cannot describe
// a real allocation is reported as ErrAllocationFailed instead of
// letting make abort the process.
func alloc[T any](n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: impossible element count %d", ErrAllocationFailed, n)
	}
	return make([]T, n), nil
}
