// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatgeograph

import (
	"encoding/json"
	"math"

	"github.com/gogama/flatgeograph/littleendian"
)

// Properties is a sparse, ordered-irrelevant map of column name to
// value. Supported value kinds on the write side are bool, any numeric
// type convertible to float64 (or to a 64-bit integer for Long/ULong
// columns), string, []byte, nil, and anything json.Marshal accepts for
// a Json column.
type Properties map[string]interface{}

// encodeProperties writes the wire form of props against schema into a
// freshly allocated buffer: for each column in schema order, if props
// has a non-nil value for that column's name, emit
// [column-ordinal u16][value]; otherwise the column is skipped
// entirely for this record.
func encodeProperties(schema []Column, props PropertySource) ([]byte, error) {
	if props == nil || props.Len() == 0 {
		return nil, nil
	}
	buf := make([]byte, 0, estimatePropertySize(props.Len()))
	for ordinal, col := range schema {
		v, ok := props.Get(col.Name)
		if !ok || v == nil {
			continue
		}
		var err error
		buf, err = appendPropertyOrdinal(buf, uint16(ordinal))
		if err != nil {
			return nil, err
		}
		buf, err = appendPropertyValue(buf, col.Type, v)
		if err != nil {
			return nil, wrapErr("encoding property %q", err, col.Name)
		}
	}
	return buf, nil
}

func estimatePropertySize(numProps int) int {
	return numProps * 12
}

func appendPropertyOrdinal(dst []byte, ordinal uint16) ([]byte, error) {
	n := len(dst)
	dst = append(dst, 0, 0)
	littleendian.PutUint16(dst[n:], ordinal)
	return dst, nil
}

func appendPropertyValue(dst []byte, typ ColumnType, v interface{}) ([]byte, error) {
	if width, fixed := typ.fixedWidth(); fixed {
		n := len(dst)
		dst = append(dst, make([]byte, width)...)
		return dst, putFixedValue(dst[n:], typ, v)
	}
	switch typ {
	case ColumnTypeString, ColumnTypeDateTime:
		s, err := coerceString(v)
		if err != nil {
			return nil, err
		}
		return appendLengthPrefixed(dst, []byte(s)), nil
	case ColumnTypeBinary:
		b, err := coerceBytes(v)
		if err != nil {
			return nil, err
		}
		return appendLengthPrefixed(dst, b), nil
	case ColumnTypeJson:
		j, err := json.Marshal(v)
		if err != nil {
			return nil, wrapErr("marshaling json property", err)
		}
		return appendLengthPrefixed(dst, j), nil
	default:
		return nil, wrapErr("encoding property", ErrInvalidColumnType)
	}
}

func appendLengthPrefixed(dst, payload []byte) []byte {
	n := len(dst)
	dst = append(dst, make([]byte, 4)...)
	littleendian.PutUint32(dst[n:], uint32(len(payload)))
	return append(dst, payload...)
}

func putFixedValue(b []byte, typ ColumnType, v interface{}) error {
	switch typ {
	case ColumnTypeByte:
		i, err := coerceInt64(v)
		if err != nil {
			return err
		}
		littleendian.PutInt8(b, int8(i))
	case ColumnTypeUByte:
		i, err := coerceUint64(v)
		if err != nil {
			return err
		}
		littleendian.PutUint8(b, uint8(i))
	case ColumnTypeBool:
		bv, ok := v.(bool)
		if !ok {
			return wrapErr("expected bool", ErrUnknownPropertyType)
		}
		littleendian.PutBool(b, bv)
	case ColumnTypeShort:
		i, err := coerceInt64(v)
		if err != nil {
			return err
		}
		littleendian.PutInt16(b, int16(i))
	case ColumnTypeUShort:
		i, err := coerceUint64(v)
		if err != nil {
			return err
		}
		littleendian.PutUint16(b, uint16(i))
	case ColumnTypeInt:
		i, err := coerceInt64(v)
		if err != nil {
			return err
		}
		littleendian.PutInt32(b, int32(i))
	case ColumnTypeUInt:
		i, err := coerceUint64(v)
		if err != nil {
			return err
		}
		littleendian.PutUint32(b, uint32(i))
	case ColumnTypeLong:
		i, err := coerceInt64(v)
		if err != nil {
			return err
		}
		littleendian.PutInt64(b, i)
	case ColumnTypeULong:
		i, err := coerceUint64(v)
		if err != nil {
			return err
		}
		littleendian.PutUint64(b, i)
	case ColumnTypeFloat:
		f, err := coerceFloat64(v)
		if err != nil {
			return err
		}
		littleendian.PutFloat32(b, float32(f))
	case ColumnTypeDouble:
		f, err := coerceFloat64(v)
		if err != nil {
			return err
		}
		littleendian.PutFloat64(b, f)
	default:
		return wrapErr("encoding fixed-width property", ErrInvalidColumnType)
	}
	return nil
}

// PropertyValue is one decoded, ordinal-tagged property entry from an
// edge or feature property region.
type PropertyValue struct {
	Ordinal uint16
	Column  Column
	Type    ColumnType
	Value   interface{}
}

// decodeProperties reads ordinal-tagged property entries out of buf
// against schema until buf is exhausted or an ordinal at or past
// len(schema) is encountered, per the forward-compatibility rule in
// spec §4.4: an out-of-range ordinal stops parsing, it does not error.
func decodeProperties(schema []Column, buf []byte) (Properties, error) {
	props := make(Properties, len(schema))
	off := 0
	for off < len(buf) {
		if off+2 > len(buf) {
			return nil, wrapErr("reading property ordinal", ErrTruncated)
		}
		ordinal := littleendian.Uint16(buf[off:])
		off += 2
		if int(ordinal) >= len(schema) {
			break
		}
		col := schema[ordinal]
		var v interface{}
		var n int
		var err error
		v, n, err = readPropertyValue(col.Type, buf[off:])
		if err != nil {
			return nil, wrapErr("reading property %q", err, col.Name)
		}
		off += n
		props[col.Name] = v
	}
	return props, nil
}

// EncodeProperties encodes props against schema using the same
// ordinal-tagged wire format edges use for their property region
// (spec §4.4). It is exported so external feature-section
// collaborators, whose feature properties share this exact wire
// shape, don't need to reimplement the property codec.
func EncodeProperties(schema []Column, props PropertySource) ([]byte, error) {
	return encodeProperties(schema, props)
}

// DecodeProperties decodes a property region against schema. See
// EncodeProperties.
func DecodeProperties(schema []Column, buf []byte) (Properties, error) {
	return decodeProperties(schema, buf)
}

// InferSchema exports the schema-inference algorithm from spec §3 for
// reuse by feature-section collaborators inferring a column list from
// a set of property sources.
func InferSchema(sources []PropertySource) []Column {
	return inferSchema(sources)
}

func readPropertyValue(typ ColumnType, buf []byte) (interface{}, int, error) {
	if width, fixed := typ.fixedWidth(); fixed {
		if len(buf) < width {
			return nil, 0, ErrTruncated
		}
		v, err := getFixedValue(typ, buf[:width])
		return v, width, err
	}
	switch typ {
	case ColumnTypeString, ColumnTypeDateTime:
		b, n, err := readLengthPrefixed(buf)
		if err != nil {
			return nil, 0, err
		}
		return string(b), n, nil
	case ColumnTypeBinary:
		b, n, err := readLengthPrefixed(buf)
		if err != nil {
			return nil, 0, err
		}
		cp := make([]byte, len(b))
		copy(cp, b)
		return cp, n, nil
	case ColumnTypeJson:
		b, n, err := readLengthPrefixed(buf)
		if err != nil {
			return nil, 0, err
		}
		var v interface{}
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, 0, wrapErr("parsing json property", ErrMalformedJSON)
		}
		return v, n, nil
	default:
		return nil, 0, ErrInvalidColumnType
	}
}

func readLengthPrefixed(buf []byte) ([]byte, int, error) {
	if len(buf) < 4 {
		return nil, 0, ErrTruncated
	}
	n := littleendian.Uint32(buf)
	if uint64(n) > uint64(len(buf)-4) {
		return nil, 0, ErrTruncated
	}
	return buf[4 : 4+n], 4 + int(n), nil
}

func getFixedValue(typ ColumnType, b []byte) (interface{}, error) {
	switch typ {
	case ColumnTypeByte:
		return littleendian.Int8(b), nil
	case ColumnTypeUByte:
		return littleendian.Uint8(b), nil
	case ColumnTypeBool:
		return littleendian.Bool(b), nil
	case ColumnTypeShort:
		return littleendian.Int16(b), nil
	case ColumnTypeUShort:
		return littleendian.Uint16(b), nil
	case ColumnTypeInt:
		return littleendian.Int32(b), nil
	case ColumnTypeUInt:
		return littleendian.Uint32(b), nil
	case ColumnTypeLong:
		return littleendian.Int64(b), nil
	case ColumnTypeULong:
		return littleendian.Uint64(b), nil
	case ColumnTypeFloat:
		return littleendian.Float32(b), nil
	case ColumnTypeDouble:
		return littleendian.Float64(b), nil
	default:
		return nil, ErrInvalidColumnType
	}
}

// inferSchema implements spec §3's "Schema inference (serialize-side)":
// the first edge (in argument order) whose property map is non-empty
// donates its keys, in iteration order, as the column list; each key's
// type is inferred from its value.
//
// Go map iteration order is randomized, so callers that need a
// deterministic schema should pass an *OrderedProperties (see
// property_order.go) as that edge's Properties instead of a plain map.
func inferSchema(propsInOrder []PropertySource) []Column {
	for _, p := range propsInOrder {
		if p == nil || p.Len() == 0 {
			continue
		}
		cols := make([]Column, 0, p.Len())
		p.Range(func(k string, v interface{}) {
			cols = append(cols, Column{Name: k, Type: inferColumnType(v)})
		})
		return cols
	}
	return nil
}

func inferColumnType(v interface{}) ColumnType {
	switch v.(type) {
	case bool:
		return ColumnTypeBool
	case string:
		return ColumnTypeString
	case []byte:
		return ColumnTypeBinary
	case nil:
		return ColumnTypeString
	default:
		if isNumeric(v) {
			return ColumnTypeDouble
		}
		return ColumnTypeJson
	}
}

func isNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

func coerceFloat64(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	default:
		return 0, wrapErr("expected numeric value", ErrUnknownPropertyType)
	}
}

// coerceInt64 and coerceUint64 preserve the full 64-bit value of Long
// and ULong columns through the float64-free path, per spec §4.4's
// numeric-coercion note: callers on narrower-integer platforms should
// pass int64/uint64 directly rather than round through float64.
func coerceInt64(v interface{}) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case uint:
		return int64(x), nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, fmtErr("%w: %d overflows int64", ErrUnknownPropertyType, x)
		}
		return int64(x), nil
	case float64:
		return int64(x), nil
	case float32:
		return int64(x), nil
	default:
		return 0, wrapErr("expected integer value", ErrUnknownPropertyType)
	}
}

func coerceUint64(v interface{}) (uint64, error) {
	switch x := v.(type) {
	case uint64:
		return x, nil
	case uint:
		return uint64(x), nil
	case uint8:
		return uint64(x), nil
	case uint16:
		return uint64(x), nil
	case uint32:
		return uint64(x), nil
	case int:
		if x < 0 {
			return 0, fmtErr("%w: %d is negative", ErrUnknownPropertyType, x)
		}
		return uint64(x), nil
	case int8:
		if x < 0 {
			return 0, fmtErr("%w: %d is negative", ErrUnknownPropertyType, x)
		}
		return uint64(x), nil
	case int16:
		if x < 0 {
			return 0, fmtErr("%w: %d is negative", ErrUnknownPropertyType, x)
		}
		return uint64(x), nil
	case int32:
		if x < 0 {
			return 0, fmtErr("%w: %d is negative", ErrUnknownPropertyType, x)
		}
		return uint64(x), nil
	case int64:
		if x < 0 {
			return 0, fmtErr("%w: %d is negative", ErrUnknownPropertyType, x)
		}
		return uint64(x), nil
	case float64:
		return uint64(x), nil
	case float32:
		return uint64(x), nil
	default:
		return 0, wrapErr("expected unsigned integer value", ErrUnknownPropertyType)
	}
}

func coerceString(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", wrapErr("expected string value", ErrUnknownPropertyType)
	}
	return s, nil
}

func coerceBytes(v interface{}) ([]byte, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, wrapErr("expected []byte value", ErrUnknownPropertyType)
	}
	return b, nil
}
