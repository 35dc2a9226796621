// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatgeograph

import (
	"github.com/gogama/flatgeograph/littleendian"
)

// fakeCodec is a minimal, self-contained FeatureCodec test double. It
// never builds a spatial index and stores each feature as
// [size u32][property-region], letting the root package's own tests
// exercise Serialize/Deserialize/DeserializeGraphEdges end to end
// without depending on the featurecodec package (which itself depends
// on this package).
type fakeCodec struct{}

func (fakeCodec) DecodeHeader(buf []byte, at int) (FeaturesHeaderMeta, int, error) {
	if at+6 > len(buf) {
		return FeaturesHeaderMeta{}, 0, wrapErr("reading fake header", ErrTruncated)
	}
	count := littleendian.Uint32(buf[at:])
	colCount := int(littleendian.Uint16(buf[at+4:]))
	off := at + 6
	cols := make([]Column, 0, colCount)
	for i := 0; i < colCount; i++ {
		c, next, err := decodeColumn(buf, off)
		if err != nil {
			return FeaturesHeaderMeta{}, 0, err
		}
		cols = append(cols, c)
		off = next
	}
	return FeaturesHeaderMeta{
		FeaturesCount: int64(count),
		Columns:       cols,
		IndexNodeSize: 0,
	}, off - at, nil
}

func (fakeCodec) PackedTreeSize(featuresCount int64, nodeSize uint16) (int64, error) {
	return 0, nil
}

func (fakeCodec) IterateFeatures(buf []byte, start int, count int64) (FeatureIterator, error) {
	return &fakeFeatureIterator{buf: buf, off: start, remain: count}, nil
}

func (fakeCodec) EncodeFeatures(features []Feature, crsCode int) ([]byte, error) {
	sources := make([]PropertySource, 0, len(features))
	for _, f := range features {
		if f.Properties != nil {
			sources = append(sources, f.Properties)
		}
	}
	schema := inferSchema(sources)

	hdr := make([]byte, 6)
	littleendian.PutUint32(hdr, uint32(len(features)))
	littleendian.PutUint16(hdr[4:], uint16(len(schema)))
	var err error
	for _, c := range schema {
		hdr, err = encodeColumn(hdr, c)
		if err != nil {
			return nil, err
		}
	}

	out := append([]byte{}, hdr...)
	for _, f := range features {
		props, err := encodeProperties(schema, f.Properties)
		if err != nil {
			return nil, err
		}
		rec := make([]byte, 4)
		littleendian.PutUint32(rec, uint32(len(props)))
		rec = append(rec, props...)
		out = append(out, rec...)
	}
	return out, nil
}

type fakeFeatureIterator struct {
	buf    []byte
	off    int
	remain int64
}

func (it *fakeFeatureIterator) Next() (Feature, int, bool, error) {
	if it.remain <= 0 {
		return Feature{}, 0, false, nil
	}
	if it.off+4 > len(it.buf) {
		return Feature{}, 0, false, wrapErr("reading fake feature size", ErrTruncated)
	}
	size := int(littleendian.Uint32(it.buf[it.off:]))
	recordEnd := it.off + 4 + size
	if recordEnd > len(it.buf) {
		return Feature{}, 0, false, wrapErr("reading fake feature body", ErrTruncated)
	}
	// A fakeCodec feature carries no schema of its own, so it cannot
	// decode its property bytes back into typed values here; the
	// features it yields carry no properties.
	f := Feature{}
	total := recordEnd - it.off
	it.off = recordEnd
	it.remain--
	return f, total, true, nil
}
