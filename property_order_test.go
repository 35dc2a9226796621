// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatgeograph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedProperties_PreservesInsertionOrder(t *testing.T) {
	op := NewOrderedProperties().Set("z", 1).Set("a", 2).Set("m", 3)
	assert.Equal(t, []string{"z", "a", "m"}, op.Keys())

	var got []string
	op.Range(func(k string, v interface{}) { got = append(got, k) })
	assert.Equal(t, []string{"z", "a", "m"}, got)
}

func TestOrderedProperties_SetOverwritesWithoutReordering(t *testing.T) {
	op := NewOrderedProperties().Set("a", 1).Set("b", 2).Set("a", 99)
	assert.Equal(t, []string{"a", "b"}, op.Keys())
	v, ok := op.Get("a")
	require.True(t, ok)
	assert.Equal(t, 99, v)
}

func TestOrderedProperties_NilReceiver(t *testing.T) {
	var op *OrderedProperties
	assert.Equal(t, 0, op.Len())
	assert.Nil(t, op.Keys())
	_, ok := op.Get("x")
	assert.False(t, ok)
	op.Range(func(string, interface{}) {}) // must not panic
}

func TestProperties_PropertySource(t *testing.T) {
	p := Properties{"a": 1, "b": 2}
	assert.Equal(t, 2, p.Len())

	v, ok := p.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = p.Get("missing")
	assert.False(t, ok)

	seen := map[string]interface{}{}
	p.Range(func(k string, v interface{}) { seen[k] = v })
	assert.Equal(t, map[string]interface{}{"a": 1, "b": 2}, seen)
}
