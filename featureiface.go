// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatgeograph

// This file names the small interface spec §1 and §6 call "the
// external feature-codec interface": geometry parsing and the
// FlatGeobuf feature header/body encoding are explicitly out of scope
// for this package. Everything downstream of the graph section depends
// on nothing more than these four operations, implemented by a
// collaborator such as the featurecodec package.

// Feature is the minimal view of a vertex this package needs: enough
// to let Serialize hand features to a FeatureCodec and get back an
// opaque, already-framed byte section. The graph codec never inspects
// a Feature's Geometry; it is carried only so FeatureCodec
// implementations have something concrete to encode.
type Feature struct {
	// Geometry is collaborator-defined; the graph codec passes it
	// through unexamined.
	Geometry interface{}
	// Properties are the feature's own (non-edge) properties.
	Properties PropertySource
}

// FeaturesHeaderMeta is the subset of the FlatGeobuf feature header
// the graph codec's metadata probe surfaces, per spec §4.10.
type FeaturesHeaderMeta struct {
	FeaturesCount int64
	Columns       []Column
	IndexNodeSize uint16
	GeometryType  string
}

// FeatureIterator yields features one at a time from a feature
// section, mirroring the streaming contract the graph codec's own
// edge reader follows.
type FeatureIterator interface {
	// Next returns the next feature and its total on-disk size in
	// bytes (4-byte size prefix included). It returns ok == false once
	// the iterator is exhausted.
	Next() (f Feature, size int, ok bool, err error)
}

// FeatureCodec is the external collaborator named in spec §6: the
// four operations the graph codec needs from whatever owns the
// preceding FlatGeobuf-compatible feature section. The graph codec
// never re-derives packed R-tree sizing or re-parses feature bodies
// itself; it calls out to this interface exclusively.
type FeatureCodec interface {
	// DecodeHeader decodes the feature section header starting at
	// buf[at] (at is always 8, immediately after the file magic) and
	// returns the parsed metadata plus the total byte length consumed
	// by the header's own size-prefixed framing.
	DecodeHeader(buf []byte, at int) (meta FeaturesHeaderMeta, headerLen int, err error)
	// PackedTreeSize returns the on-disk byte size of a packed Hilbert
	// R-tree index built over featuresCount features with the given
	// node size. The graph codec calls this only when the header
	// reports a non-zero node size.
	PackedTreeSize(featuresCount int64, nodeSize uint16) (int64, error)
	// IterateFeatures returns an iterator over count size-prefixed
	// features starting at byte offset start in buf.
	IterateFeatures(buf []byte, start int, count int64) (FeatureIterator, error)
	// EncodeFeatures encodes features (and their inferred column
	// schema) into a complete, self-contained feature section,
	// including its own header and, if requested, its spatial index.
	EncodeFeatures(features []Feature, crsCode int) ([]byte, error)
}
