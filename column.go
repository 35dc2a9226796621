// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatgeograph

import (
	"fmt"

	"github.com/gogama/flatgeograph/littleendian"
)

// ColumnType is a single-byte tag identifying the binary shape of a
// column's values. The numeric values match the FlatGeobuf column
// type enumeration so that a graph header's columns and a FlatGeobuf
// feature header's columns share one wire vocabulary.
type ColumnType uint8

const (
	ColumnTypeByte ColumnType = iota
	ColumnTypeUByte
	ColumnTypeBool
	ColumnTypeShort
	ColumnTypeUShort
	ColumnTypeInt
	ColumnTypeUInt
	ColumnTypeLong
	ColumnTypeULong
	ColumnTypeFloat
	ColumnTypeDouble
	ColumnTypeString
	ColumnTypeJson
	ColumnTypeDateTime
	ColumnTypeBinary
)

var columnTypeNames = [...]string{
	"Byte", "UByte", "Bool", "Short", "UShort", "Int", "UInt", "Long",
	"ULong", "Float", "Double", "String", "Json", "DateTime", "Binary",
}

func (t ColumnType) String() string {
	if int(t) < len(columnTypeNames) {
		return columnTypeNames[t]
	}
	return fmt.Sprintf("ColumnType(%d)", int(t))
}

// valid reports whether t is one of the 15 defined column type tags.
func (t ColumnType) valid() bool {
	return int(t) < len(columnTypeNames)
}

// fixedWidth returns the on-disk width in bytes of a fixed-width
// column type, and false for a variable-width type (String, Json,
// DateTime, Binary).
func (t ColumnType) fixedWidth() (int, bool) {
	switch t {
	case ColumnTypeByte, ColumnTypeUByte, ColumnTypeBool:
		return 1, true
	case ColumnTypeShort, ColumnTypeUShort:
		return 2, true
	case ColumnTypeInt, ColumnTypeUInt, ColumnTypeFloat:
		return 4, true
	case ColumnTypeLong, ColumnTypeULong, ColumnTypeDouble:
		return 8, true
	default:
		return 0, false
	}
}

// Column is a named, typed slot in an edge (or feature) schema. Edges
// reference a Column by its ordinal position within the schema's
// Columns slice, not by name.
type Column struct {
	Name string
	Type ColumnType
}

// encodeColumn appends the wire form of c to dst and returns the
// extended slice: [name-length u16][name bytes][type u8].
func encodeColumn(dst []byte, c Column) ([]byte, error) {
	if c.Name == "" {
		return nil, textErr("column name must not be empty")
	}
	if len(c.Name) > 0xFFFF {
		return nil, fmtErr("column name %d bytes exceeds 65535 byte limit", len(c.Name))
	}
	if !c.Type.valid() {
		return nil, wrapErr("encoding column", ErrInvalidColumnType)
	}
	n := len(dst)
	dst = append(dst, make([]byte, 2+len(c.Name)+1)...)
	littleendian.PutUint16(dst[n:], uint16(len(c.Name)))
	copy(dst[n+2:], c.Name)
	dst[n+2+len(c.Name)] = byte(c.Type)
	return dst, nil
}

// decodeColumn reads one column descriptor starting at buf[off] and
// returns the decoded Column plus the offset of the byte following it.
func decodeColumn(buf []byte, off int) (Column, int, error) {
	if off+2 > len(buf) {
		return Column{}, 0, wrapErr("reading column name length", ErrTruncated)
	}
	nameLen := int(littleendian.Uint16(buf[off:]))
	off += 2
	if off+nameLen > len(buf) {
		return Column{}, 0, wrapErr("reading column name", ErrTruncated)
	}
	name := string(buf[off : off+nameLen])
	off += nameLen
	if off+1 > len(buf) {
		return Column{}, 0, wrapErr("reading column type", ErrTruncated)
	}
	typ := ColumnType(buf[off])
	off++
	if !typ.valid() {
		return Column{}, 0, wrapErr("decoding column", ErrInvalidColumnType)
	}
	return Column{Name: name, Type: typ}, off, nil
}
