// Copyright 2025 The datacore Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

// Equal reports whether two containers hold equal dimension sequences
// and element-wise equal data, regardless of the policies that own
// them. The comparison is dimension-agnostic: the full dimension
// sequences are compared first, then the flat data. Only the
// flat-count elements participate; a pass-through policy may have
// adopted a buffer longer than the dimensions require, and the excess
// is not part of the array.
func Equal[T comparable, PA Policy[T], PB Policy[T]](a *Array[T, PA], b *Array[T, PB]) bool {
	if !a.dims.Equal(b.dims) {
		return false
	}
	ad, bd := a.Data()[:a.size], b.Data()[:b.size]
	for i := range ad {
		if ad[i] != bd[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal for element types that are not comparable, such
// as [][]byte arrays, using eq to compare elements.
func EqualFunc[T any, PA Policy[T], PB Policy[T]](a *Array[T, PA], b *Array[T, PB], eq func(x, y T) bool) bool {
	if !a.dims.Equal(b.dims) {
		return false
	}
	ad, bd := a.Data()[:a.size], b.Data()[:b.size]
	for i := range ad {
		if !eq(ad[i], bd[i]) {
			return false
		}
	}
	return true
}
