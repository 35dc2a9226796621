// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatgeograph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnType_String(t *testing.T) {
	assert.Equal(t, "Byte", ColumnTypeByte.String())
	assert.Equal(t, "Binary", ColumnTypeBinary.String())
	assert.Equal(t, "ColumnType(15)", ColumnType(15).String())
}

func TestColumnType_Valid(t *testing.T) {
	assert.True(t, ColumnTypeJson.valid())
	assert.False(t, ColumnType(15).valid())
}

func TestColumnType_FixedWidth(t *testing.T) {
	testCases := []struct {
		typ       ColumnType
		wantWidth int
		wantFixed bool
	}{
		{ColumnTypeByte, 1, true},
		{ColumnTypeBool, 1, true},
		{ColumnTypeShort, 2, true},
		{ColumnTypeInt, 4, true},
		{ColumnTypeFloat, 4, true},
		{ColumnTypeLong, 8, true},
		{ColumnTypeDouble, 8, true},
		{ColumnTypeString, 0, false},
		{ColumnTypeJson, 0, false},
		{ColumnTypeBinary, 0, false},
	}
	for _, tc := range testCases {
		width, fixed := tc.typ.fixedWidth()
		assert.Equal(t, tc.wantWidth, width, tc.typ.String())
		assert.Equal(t, tc.wantFixed, fixed, tc.typ.String())
	}
}

func TestEncodeDecodeColumn_RoundTrip(t *testing.T) {
	col := Column{Name: "speed_limit", Type: ColumnTypeUShort}
	buf, err := encodeColumn(nil, col)
	require.NoError(t, err)

	got, next, err := decodeColumn(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, col, got)
	assert.Equal(t, len(buf), next)
}

func TestEncodeColumn_EmptyName(t *testing.T) {
	_, err := encodeColumn(nil, Column{Name: "", Type: ColumnTypeInt})
	require.Error(t, err)
}

func TestEncodeColumn_InvalidType(t *testing.T) {
	_, err := encodeColumn(nil, Column{Name: "x", Type: ColumnType(99)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidColumnType))
}

func TestDecodeColumn_Truncated(t *testing.T) {
	buf, err := encodeColumn(nil, Column{Name: "x", Type: ColumnTypeInt})
	require.NoError(t, err)

	_, _, err = decodeColumn(buf[:len(buf)-1], 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTruncated))
}
