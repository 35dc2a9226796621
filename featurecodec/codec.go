// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package featurecodec implements flatgeograph.FeatureCodec against
// the official FlatGeobuf FlatBuffers schema: reading through the
// generated github.com/flatgeobuf/flatgeobuf/src/go/flattypes
// accessors, and writing through the .../writer builder helpers. It
// is the "external feature-codec interface" collaborator the root
// package's own doc comment names; the graph codec never parses
// geometry or feature bodies itself.
package featurecodec

import (
	"bytes"

	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/flatgeobuf/flatgeobuf/src/go/writer"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/gogama/flatgeograph"
	"github.com/gogama/flatgeograph/littleendian"
	"github.com/gogama/flatgeograph/packedrtree"
)

// sizePrefixLen is the byte width of the length prefix FlatBuffers
// writes in front of every size-prefixed root table: the feature
// header and each feature record.
const sizePrefixLen = 4

// featureHeaderOffset is where the feature header always starts: right
// after the 8-byte file magic, regardless of which magic form (FGG or
// FGB) precedes it.
const featureHeaderOffset = 8

// Codec is a flatgeograph.FeatureCodec backed by the official
// FlatGeobuf Go bindings.
type Codec struct {
	// IncludeIndex controls whether EncodeFeatures builds a packed
	// Hilbert R-tree spatial index over the features it writes.
	IncludeIndex bool
}

// New returns a Codec configured to write a spatial index, matching
// the reference writer's default.
func New() *Codec {
	return &Codec{IncludeIndex: true}
}

var _ flatgeograph.FeatureCodec = (*Codec)(nil)

// DecodeHeader implements flatgeograph.FeatureCodec.
func (c *Codec) DecodeHeader(buf []byte, at int) (meta flatgeograph.FeaturesHeaderMeta, headerLen int, err error) {
	if at+sizePrefixLen > len(buf) {
		return flatgeograph.FeaturesHeaderMeta{}, 0, wrapErr("reading header size prefix", ErrTruncated)
	}
	size := littleendian.Uint32(buf[at:])
	headerLen = sizePrefixLen + int(size)
	if at+headerLen > len(buf) {
		return flatgeograph.FeaturesHeaderMeta{}, 0, wrapErr("reading feature header", ErrTruncated)
	}
	err = safeFlatBuffersInteraction(func() error {
		h := flattypes.GetSizePrefixedRootAsHeader(buf[at:], 0)
		meta = flatgeograph.FeaturesHeaderMeta{
			FeaturesCount: int64(h.FeaturesCount()),
			Columns:       decodeHeaderColumns(h),
			IndexNodeSize: h.IndexNodeSize(),
			GeometryType:  geometryTypeName(h.GeometryType()),
		}
		return nil
	})
	if err != nil {
		return flatgeograph.FeaturesHeaderMeta{}, 0, err
	}
	return meta, headerLen, nil
}

// PackedTreeSize implements flatgeograph.FeatureCodec by delegating to
// the same packed Hilbert R-tree sizing function the writer uses to
// lay out its own index.
func (c *Codec) PackedTreeSize(featuresCount int64, nodeSize uint16) (int64, error) {
	if nodeSize == 0 {
		return 0, nil
	}
	return packedrtree.Size(int(featuresCount), nodeSize)
}

// IterateFeatures implements flatgeograph.FeatureCodec.
func (c *Codec) IterateFeatures(buf []byte, start int, count int64) (flatgeograph.FeatureIterator, error) {
	return newFeatureIterator(buf, start, count)
}

// EncodeFeatures implements flatgeograph.FeatureCodec. It infers a
// property schema from the features' own PropertySources the same way
// the reference feature-collection writer does, builds the FlatBuffers
// stream through the official writer package, and strips the leading
// FlatGeobuf magic number: Serialize supplies its own FGG magic in its
// place.
func (c *Codec) EncodeFeatures(features []flatgeograph.Feature, crsCode int) ([]byte, error) {
	sources := make([]flatgeograph.PropertySource, 0, len(features))
	for _, f := range features {
		if f.Properties != nil {
			sources = append(sources, f.Properties)
		}
	}
	schema := flatgeograph.InferSchema(sources)

	geomType := commonGeometryType(features)

	builder := flatbuffers.NewBuilder(4096)
	header := writer.NewHeader(builder)
	header.SetGeometryType(geomType)
	if len(schema) > 0 {
		header.SetColumns(writeColumns(builder, schema))
	}
	if crsCode > 0 {
		crs := writer.NewCrs(builder)
		crs.SetOrg("EPSG")
		crs.SetCode(int32(crsCode))
		header.SetCrs(crs)
	}

	gen := &featureGenerator{features: features, schema: schema}
	fgbWriter := writer.NewWriter(header, c.IncludeIndex, gen, nil)

	var out bytes.Buffer
	if _, err := fgbWriter.Write(&out); err != nil {
		return nil, wrapErr("writing feature section", err)
	}
	b := out.Bytes()
	if len(b) < featureHeaderOffset {
		return nil, textErr("writer produced a truncated FlatGeobuf stream")
	}
	return b[featureHeaderOffset:], nil
}

// commonGeometryType mirrors the reference writer's rule: the header
// records a concrete geometry type only when every feature shares it,
// falling back to Unknown (mixed geometry collections) otherwise.
func commonGeometryType(features []flatgeograph.Feature) flattypes.GeometryType {
	if len(features) == 0 {
		return flattypes.GeometryTypeUnknown
	}
	first, ok := features[0].Geometry.(*Geometry)
	if !ok || first == nil {
		return flattypes.GeometryTypeUnknown
	}
	geomType := geometryTypeFromName(first.Type)
	for _, f := range features[1:] {
		g, ok := f.Geometry.(*Geometry)
		if !ok || g == nil || geometryTypeFromName(g.Type) != geomType {
			return flattypes.GeometryTypeUnknown
		}
	}
	return geomType
}

// featureGenerator adapts a []flatgeograph.Feature slice to the
// writer.FeatureGenerator interface the official writer pulls from.
type featureGenerator struct {
	features []flatgeograph.Feature
	schema   []flatgeograph.Column
	index    int
}

func (g *featureGenerator) Generate() *writer.Feature {
	if g.index >= len(g.features) {
		return nil
	}
	f := g.features[g.index]
	g.index++

	builder := flatbuffers.NewBuilder(1024)
	var fgbGeom *writer.Geometry
	if geom, ok := f.Geometry.(*Geometry); ok {
		fgbGeom = geometryToFlat(geom, builder)
	}

	feature := writer.NewFeature(builder)
	if fgbGeom != nil {
		feature.SetGeometry(fgbGeom)
	}
	if f.Properties != nil && len(g.schema) > 0 {
		if propBytes, err := flatgeograph.EncodeProperties(g.schema, f.Properties); err == nil && len(propBytes) > 0 {
			feature.SetProperties(propBytes)
		}
	}
	return feature
}
