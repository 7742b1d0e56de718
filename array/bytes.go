// Copyright 2025 The datacore Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import "fmt"

// Element-kind refinements for arrays of independently owned byte
// strings. A plain Copy of a [][]byte would duplicate only the outer
// slice headers, leaving both containers sharing the inner buffers;
// these policies duplicate and release each inner buffer individually.

// CopyByteSlices duplicates an array of byte strings by independently
// duplicating every inner buffer.
type CopyByteSlices struct{}

// Acquire allocates a fresh outer buffer of n entries and deep-copies
// the first n inner buffers of src into it.
func (CopyByteSlices) Acquire(src [][]byte, n int) ([][]byte, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if len(src) < n {
		return nil, fmt.Errorf("%w: have %d elements, need %d", ErrShortBuffer, len(src), n)
	}
	buf, err := alloc[[]byte](n)
	if err != nil {
		return nil, err
	}
	for i, s := range src[:n] {
		inner := make([]byte, len(s))
		copy(inner, s)
		buf[i] = inner
	}
	return buf, nil
}

// Release scrubs every inner buffer before detaching it from the
// outer one, so no inner allocation outlives the container.
func (CopyByteSlices) Release(buf [][]byte, _ int) {
	releaseByteSlices(buf)
}

// AdoptByteSlices takes ownership of an array of byte strings without
// duplicating it. Release semantics match CopyByteSlices; only the
// acquisition differs.
type AdoptByteSlices struct{}

// Acquire returns src unchanged.
func (AdoptByteSlices) Acquire(src [][]byte, _ int) ([][]byte, error) {
	return src, nil
}

// Release scrubs every inner buffer before detaching it from the
// outer one.
func (AdoptByteSlices) Release(buf [][]byte, _ int) {
	releaseByteSlices(buf)
}

// releaseByteSlices is the shared element-wise release: inner buffers
// first, outer entries second.
func releaseByteSlices(buf [][]byte) {
	for i := range buf {
		clear(buf[i])
		buf[i] = nil
	}
}
