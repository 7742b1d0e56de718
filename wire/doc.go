// Copyright 2025 The datacore Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package wire encodes and decodes array frames, the binary format
// behind the Deserialized ownership policy.
//
// # Frame Layout
//
// All integers are little-endian.
//
//	magic    2 bytes  0xDA 0x7A
//	version  1 byte   currently 1
//	tag      1 byte   element type
//	rank     2 bytes  number of dimensions
//	dims     rank * 4 bytes
//	payload  element data
//	crc      4 bytes  CRC-32 (IEEE) over version..payload
//
// Numeric payloads are the flat element data. Byte-string payloads are
// a 4-byte length followed by the string bytes, per element.
//
// # Buffer Guarantee
//
// The decoder materializes each frame into a single fresh contiguous
// allocation and hands it to the container under the Deserialized
// policy. That holds for string arrays too: every inner slice is cut
// from one backing buffer, which is why Deserialized releases in one
// bulk step instead of element by element.
//
// # Basic Usage
//
//	frame, err := wire.Encode([]int32{1, 2, 3, 4, 5, 6}, array.Dims{2, 3})
//	...
//	a, err := wire.Decode[int32](frame)
//	defer a.Release()
package wire
