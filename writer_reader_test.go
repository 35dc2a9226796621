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

func threeFeatures() []Feature {
	return []Feature{{}, {}, {}}
}

func TestSerializeDeserialize_RoundTrip(t *testing.T) {
	adj := AdjacencyList{Edges: []Edge{
		{From: 0, To: 1, Properties: NewOrderedProperties().Set("weight", 1.5)},
		{From: 1, To: 2},
	}}

	buf, err := Serialize(fakeCodec{}, threeFeatures(), WithAdjacencyList(adj))
	require.NoError(t, err)
	assert.Equal(t, fggMagic[:], buf[:magicLen])

	result, err := Deserialize(buf, fakeCodec{})
	require.NoError(t, err)
	assert.Len(t, result.Features, 3)
	require.Len(t, result.AdjacencyList.Edges, 2)
	assert.Equal(t, uint32(0), result.AdjacencyList.Edges[0].From)
	assert.Equal(t, uint32(1), result.AdjacencyList.Edges[0].To)
	assert.Equal(t, 1.5, result.AdjacencyList.Edges[0].Properties.(Properties)["weight"])
}

func TestSerialize_NoAdjacencyListIsBackwardCompatible(t *testing.T) {
	buf, err := Serialize(fakeCodec{}, threeFeatures())
	require.NoError(t, err)

	result, err := Deserialize(buf, fakeCodec{})
	require.NoError(t, err)
	assert.Len(t, result.Features, 3)
	assert.NotNil(t, result.AdjacencyList.Edges)
	assert.Empty(t, result.AdjacencyList.Edges)
}

func TestSerialize_EmptyGraphEquivalence(t *testing.T) {
	withEmptyAdj, err := Serialize(fakeCodec{}, threeFeatures(), WithAdjacencyList(AdjacencyList{}))
	require.NoError(t, err)

	result, err := Deserialize(withEmptyAdj, fakeCodec{})
	require.NoError(t, err)
	assert.Empty(t, result.AdjacencyList.Edges)
}

func TestSerialize_RejectsInvalidFromIndex(t *testing.T) {
	adj := AdjacencyList{Edges: []Edge{{From: 99, To: 0}}}
	_, err := Serialize(fakeCodec{}, threeFeatures(), WithAdjacencyList(adj))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidIndex))
}

func TestSerialize_RejectsInvalidToIndex(t *testing.T) {
	adj := AdjacencyList{Edges: []Edge{{From: 0, To: 99}}}
	_, err := Serialize(fakeCodec{}, threeFeatures(), WithAdjacencyList(adj))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidIndex))
}

func TestSerialize_RejectsSelfLoop(t *testing.T) {
	adj := AdjacencyList{Edges: []Edge{{From: 1, To: 1}}}
	_, err := Serialize(fakeCodec{}, threeFeatures(), WithAdjacencyList(adj))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSelfLoop))
}

func TestDeserialize_PlainFlatGeobufHasNoGraphSection(t *testing.T) {
	featureBytes, err := fakeCodec{}.EncodeFeatures(threeFeatures(), 0)
	require.NoError(t, err)
	buf := append(append([]byte{}, fgbMagic[:]...), featureBytes...)

	result, err := Deserialize(buf, fakeCodec{})
	require.NoError(t, err)
	assert.Len(t, result.Features, 3)
	assert.Empty(t, result.AdjacencyList.Edges)
}

func TestDeserialize_ObserverSeesMetadataBeforeEdges(t *testing.T) {
	adj := AdjacencyList{Edges: []Edge{{From: 0, To: 1}}}
	buf, err := Serialize(fakeCodec{}, threeFeatures(), WithAdjacencyList(adj))
	require.NoError(t, err)

	var observed Meta
	var observedBeforeResult bool
	_, err = Deserialize(buf, fakeCodec{}, WithObserver(func(m Meta) error {
		observed = m
		observedBeforeResult = true
		return nil
	}))
	require.NoError(t, err)
	assert.True(t, observedBeforeResult)
	assert.EqualValues(t, 3, observed.Features.FeaturesCount)
	require.NotNil(t, observed.Graph)
	assert.Equal(t, uint32(1), observed.Graph.EdgeCount)
}

func TestDeserialize_ObserverErrorAbortsRead(t *testing.T) {
	buf, err := Serialize(fakeCodec{}, threeFeatures())
	require.NoError(t, err)

	sentinel := textErr("stop here")
	_, err = Deserialize(buf, fakeCodec{}, WithObserver(func(Meta) error {
		return sentinel
	}))
	require.Error(t, err)
	assert.Equal(t, sentinel, err)
}

func TestDeserializeGraphEdges_StreamingMatchesBatch(t *testing.T) {
	adj := AdjacencyList{Edges: []Edge{
		{From: 0, To: 1, Properties: NewOrderedProperties().Set("w", 1.0)},
		{From: 1, To: 2, Properties: NewOrderedProperties().Set("w", 2.0)},
		{From: 2, To: 0, Properties: NewOrderedProperties().Set("w", 3.0)},
	}}
	buf, err := Serialize(fakeCodec{}, threeFeatures(), WithAdjacencyList(adj))
	require.NoError(t, err)

	batch, err := Deserialize(buf, fakeCodec{})
	require.NoError(t, err)

	r, err := DeserializeGraphEdges(buf, fakeCodec{})
	require.NoError(t, err)
	var streamed []Edge
	for {
		e, ok, err := r.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		streamed = append(streamed, e)
	}
	require.NoError(t, r.Close())

	require.Len(t, streamed, len(batch.AdjacencyList.Edges))
	for i := range streamed {
		assert.Equal(t, batch.AdjacencyList.Edges[i].From, streamed[i].From)
		assert.Equal(t, batch.AdjacencyList.Edges[i].To, streamed[i].To)
	}
}

func TestDeserializeGraphEdges_NoGraphIsImmediatelyExhausted(t *testing.T) {
	buf, err := Serialize(fakeCodec{}, threeFeatures())
	require.NoError(t, err)

	r, err := DeserializeGraphEdges(buf, fakeCodec{})
	require.NoError(t, err)
	_, ok, err := r.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeserialize_BadMagic(t *testing.T) {
	_, err := Deserialize([]byte("not a flatgeograph file"), fakeCodec{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadMagic))
}
