// Copyright 2025 The datacore Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datacore-go/datacore/array"
)

func TestEqualContainers(t *testing.T) {
	a, err := array.NewCopy([]int32{1, 2, 3, 4, 5, 6}, array.Dims{2, 3})
	require.NoError(t, err)
	defer a.Release()

	b, err := array.NewCopy([]int32{1, 2, 3, 4, 5, 6}, array.Dims{2, 3})
	require.NoError(t, err)
	defer b.Release()

	assert.True(t, array.Equal(a, b))
	assert.True(t, array.Equal(b, a))
}

func TestEqualAcrossPolicies(t *testing.T) {
	src := []int32{1, 2, 3, 4}

	a, err := array.NewCopy(src, array.Dims{4})
	require.NoError(t, err)
	defer a.Release()

	b, err := array.NewView(src, array.Dims{4})
	require.NoError(t, err)
	defer b.Release()

	assert.True(t, array.Equal(a, b))
}

func TestEqualDetectsElementDifference(t *testing.T) {
	a, err := array.NewCopy([]int32{1, 2, 3, 4, 5, 6}, array.Dims{2, 3})
	require.NoError(t, err)
	defer a.Release()

	b, err := array.NewCopy([]int32{1, 2, 3, 4, 5, 7}, array.Dims{2, 3})
	require.NoError(t, err)
	defer b.Release()

	assert.False(t, array.Equal(a, b))
}

func TestEqualDetectsDimsDifference(t *testing.T) {
	// Same flat data, different dimension sequences: not equal.
	data := []int32{1, 2, 3, 4, 5, 6}

	a, err := array.NewCopy(data, array.Dims{2, 3})
	require.NoError(t, err)
	defer a.Release()

	b, err := array.NewCopy(data, array.Dims{3, 2})
	require.NoError(t, err)
	defer b.Release()

	assert.False(t, array.Equal(a, b))
}

func TestEqualScalars(t *testing.T) {
	a, err := array.NewCopy([]float64{1.5}, array.Dims{})
	require.NoError(t, err)
	defer a.Release()

	b, err := array.NewCopy([]float64{1.5}, array.Dims{})
	require.NoError(t, err)
	defer b.Release()

	assert.True(t, array.Equal(a, b))
}

func TestEqualViewOverLongerSource(t *testing.T) {
	// Pass-through policies keep the entire source slice; equality
	// must cover exactly the flat-count elements, even against a
	// container whose buffer is flat-count long.
	long := []int32{1, 2, 3, 4, 5, 6, 99, 100, 101, 102}

	v, err := array.NewView(long, array.Dims{2, 3})
	require.NoError(t, err)
	defer v.Release()

	c, err := array.NewCopy([]int32{1, 2, 3, 4, 5, 6}, array.Dims{2, 3})
	require.NoError(t, err)
	defer c.Release()

	assert.True(t, array.Equal(v, c))
	assert.True(t, array.Equal(c, v))
}

func TestEqualIgnoresElementsPastFlatCount(t *testing.T) {
	// Two views equal in their six array elements but differing in
	// the excess their buffers carry beyond the flat count.
	a, err := array.NewView([]int32{1, 2, 3, 4, 5, 6, 7}, array.Dims{2, 3})
	require.NoError(t, err)
	defer a.Release()

	b, err := array.NewView([]int32{1, 2, 3, 4, 5, 6, 8}, array.Dims{2, 3})
	require.NoError(t, err)
	defer b.Release()

	assert.True(t, array.Equal(a, b))
}

func TestEqualFuncViewOverLongerSource(t *testing.T) {
	long := [][]byte{[]byte("x"), []byte("y"), []byte("excess")}

	v, err := array.NewView(long, array.Dims{2})
	require.NoError(t, err)
	defer v.Release()

	c, err := array.NewCopyByteSlices([][]byte{[]byte("x"), []byte("y")}, array.Dims{2})
	require.NoError(t, err)
	defer c.Release()

	assert.True(t, array.EqualFunc(v, c, bytes.Equal))
	assert.True(t, array.EqualFunc(c, v, bytes.Equal))
}

func TestEqualFuncByteSlices(t *testing.T) {
	a, err := array.NewCopyByteSlices([][]byte{[]byte("x"), []byte("y")}, array.Dims{2})
	require.NoError(t, err)
	defer a.Release()

	b, err := array.NewCopyByteSlices([][]byte{[]byte("x"), []byte("y")}, array.Dims{2})
	require.NoError(t, err)
	defer b.Release()

	c, err := array.NewCopyByteSlices([][]byte{[]byte("x"), []byte("z")}, array.Dims{2})
	require.NoError(t, err)
	defer c.Release()

	assert.True(t, array.EqualFunc(a, b, bytes.Equal))
	assert.False(t, array.EqualFunc(a, c, bytes.Equal))
}
