// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package littleendian provides free functions for reading and writing
// the fixed-width little-endian primitives used throughout the
// FlatGeoGraphBuf wire format: the graph header, edge records, and
// property values are all composed from these primitives.
//
// Every Put function requires the destination slice to already have
// the right length; every function here is a pure byte-shuffle with no
// allocation, so callers own buffer sizing.
package littleendian

import "math"

func Uint8(b []byte) uint8 {
	return b[0]
}

func PutUint8(b []byte, v uint8) {
	b[0] = v
}

func Int8(b []byte) int8 {
	return int8(b[0])
}

func PutInt8(b []byte, v int8) {
	b[0] = byte(v)
}

func Uint16(b []byte) uint16 {
	_ = b[1]
	return uint16(b[0]) | uint16(b[1])<<8
}

func PutUint16(b []byte, v uint16) {
	_ = b[1]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func Int16(b []byte) int16 {
	return int16(Uint16(b))
}

func PutInt16(b []byte, v int16) {
	PutUint16(b, uint16(v))
}

func Uint32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler: see golang.org/issue/14808
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func PutUint32(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func Int32(b []byte) int32 {
	return int32(Uint32(b))
}

func PutInt32(b []byte, v int32) {
	PutUint32(b, uint32(v))
}

func Uint64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

func PutUint64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

func Int64(b []byte) int64 {
	return int64(Uint64(b))
}

func PutInt64(b []byte, v int64) {
	PutUint64(b, uint64(v))
}

func Float32(b []byte) float32 {
	return math.Float32frombits(Uint32(b))
}

func PutFloat32(b []byte, v float32) {
	PutUint32(b, math.Float32bits(v))
}

func Float64(b []byte) float64 {
	return math.Float64frombits(Uint64(b))
}

func PutFloat64(b []byte, v float64) {
	PutUint64(b, math.Float64bits(v))
}

func Bool(b []byte) bool {
	return b[0] != 0
}

func PutBool(b []byte, v bool) {
	if v {
		b[0] = 1
	} else {
		b[0] = 0
	}
}
