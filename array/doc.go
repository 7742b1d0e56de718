// Copyright 2025 The datacore Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides a fixed-size multi-dimensional array container
// whose buffer ownership is a compile-time-selected policy.
//
// # Overview
//
// An Array wraps a contiguous flat buffer together with the dimensions
// it spans. What the container does with the source buffer at
// construction, and with its own buffer at release, is decided by the
// ownership policy bound as a type parameter:
//   - Copy duplicates the source and owns the duplicate
//   - Adopt takes over the source buffer without duplicating it
//   - Deserialized adopts a buffer produced by the wire decoder
//   - View references a caller-owned buffer and never releases it
//
// # Basic Usage
//
//	src := []int32{1, 2, 3, 4, 5, 6}
//
//	a, err := array.NewCopy(src, array.Dims{2, 3})
//	if err != nil {
//	    // nil source, short buffer, or bad dims
//	}
//	defer a.Release()
//
//	a.Size()   // 6
//	a.Dims()   // [2 3]
//	a.Data()   // read-only view of the six elements
//
// # Ownership and Release
//
// The container's handle is reference-counted. Retain adds a
// co-owner; Release drops one. The bound policy's release runs exactly
// once, when the last reference is dropped, so sharing a container
// never leads to a double release. Owning policies scrub their buffer
// on release; View leaves the caller's buffer untouched.
//
// # Element Kinds
//
// Plain elements are covered by the generic policies. Arrays whose
// elements are independently owned byte strings use the [][]byte
// refinements CopyByteSlices and AdoptByteSlices, which duplicate and
// release every inner buffer individually. Deserialized has no such
// refinement: the wire decoder backs all inner slices with one
// contiguous allocation, so a bulk release is sufficient.
//
// # Equality
//
// Equal and EqualFunc compare containers across policies: dimension
// sequences first, then every element in flat order.
package array
