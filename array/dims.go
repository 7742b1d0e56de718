// Copyright 2025 The datacore Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"fmt"
	"math"
)

// Dims represents the per-axis extents of an array.
// An empty Dims denotes a scalar.
type Dims []int

// FlatCount returns the total number of elements spanned by the
// dimensions: 1 for an empty sequence, otherwise the left-to-right
// product of all extents. A negative extent is reported as
// ErrInvalidDims and a product exceeding the platform int as
// ErrDimsOverflow.
func (d Dims) FlatCount() (int, error) {
	n := 1
	for i, ext := range d {
		if ext < 0 {
			return 0, fmt.Errorf("%w: negative extent %d at axis %d", ErrInvalidDims, ext, i)
		}
		if ext != 0 && n > math.MaxInt/ext {
			return 0, fmt.Errorf("%w: product of %v exceeds %d", ErrDimsOverflow, d, math.MaxInt)
		}
		n *= ext
	}
	return n, nil
}

// Validate checks that every extent is non-negative.
func (d Dims) Validate() error {
	for i, ext := range d {
		if ext < 0 {
			return fmt.Errorf("%w: negative extent %d at axis %d", ErrInvalidDims, ext, i)
		}
	}
	return nil
}

// Equal checks if two dimension sequences are equal.
func (d Dims) Equal(other Dims) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if d[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the dimension sequence.
func (d Dims) Clone() Dims {
	clone := make(Dims, len(d))
	copy(clone, d)
	return clone
}
