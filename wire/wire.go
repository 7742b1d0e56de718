// Copyright 2025 The datacore Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package wire

import (
	"errors"
	"fmt"
	"reflect"
)

// Frame constants.
const (
	magic0  = 0xDA
	magic1  = 0x7A
	version = 1

	headerSize  = 6 // magic + version + tag + rank
	trailerSize = 4 // crc32
)

// Frame validation errors. Callers branch on them with errors.Is.
var (
	ErrBadMagic     = errors.New("wire: bad magic")
	ErrBadVersion   = errors.New("wire: unsupported version")
	ErrTypeMismatch = errors.New("wire: element type mismatch")
	ErrChecksum     = errors.New("wire: checksum mismatch")
	ErrTruncated    = errors.New("wire: truncated frame")
)

// Elem is the constraint for numeric element types carried in frames.
type Elem interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// ElemType is the on-wire element type tag.
type ElemType byte

// Element type tags.
const (
	Float32 ElemType = iota + 1
	Float64
	Int32
	Int64
	Uint8
	Bytes
)

// Size returns the on-wire byte size of one element, or 0 for the
// variable-length Bytes tag.
func (t ElemType) Size() int {
	switch t {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8:
		return 1
	case Bytes:
		return 0
	default:
		panic(fmt.Sprintf("wire: unknown element tag %d", byte(t)))
	}
}

// String returns a human-readable name for the tag.
func (t ElemType) String() string {
	switch t {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// elemTagOf maps a numeric element type to its wire tag. Dispatch is
// on the reflect kind so named types (type Celsius float32) carry the
// tag of their underlying type.
func elemTagOf[T Elem]() ElemType {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint8:
		return Uint8
	default:
		panic(fmt.Sprintf("wire: unsupported element type %T", zero))
	}
}
