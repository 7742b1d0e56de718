// Copyright 2025 The datacore Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import "errors"

// Sentinel errors reported during construction and acquisition.
// Callers branch on them with errors.Is.
var (
	// ErrNilSource is returned when a nil source buffer is passed where
	// a buffer is required.
	ErrNilSource = errors.New("array: nil source buffer")

	// ErrShortBuffer is returned when the source buffer holds fewer
	// elements than the dimensions require.
	ErrShortBuffer = errors.New("array: source buffer too short")

	// ErrInvalidDims is returned for a dimension sequence with a
	// negative extent.
	ErrInvalidDims = errors.New("array: invalid dimensions")

	// ErrDimsOverflow is returned when the product of the extents does
	// not fit in an int.
	ErrDimsOverflow = errors.New("array: dimension product overflows int")

	// ErrAllocationFailed is returned when a duplicating policy cannot
	// allocate its buffer. Go's allocator aborts rather than failing,
	// so the only interceptable case is an impossible element count.
	ErrAllocationFailed = errors.New("array: allocation failed")
)
