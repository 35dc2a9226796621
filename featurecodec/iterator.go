// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package featurecodec

import (
	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/gogama/flatgeograph"
	"github.com/gogama/flatgeograph/littleendian"
)

// featureIterator walks a run of size-prefixed flattypes.Feature
// records one at a time, decoding each feature's geometry and
// properties against the column schema read from the feature header.
type featureIterator struct {
	buf       []byte
	offset    int
	remaining int64
	columns   []flatgeograph.Column
}

func newFeatureIterator(buf []byte, start int, count int64) (*featureIterator, error) {
	if start < 0 || start > len(buf) {
		return nil, fmtErr("feature iterator start %d out of range for a %d-byte buffer", start, len(buf))
	}
	var columns []flatgeograph.Column
	if count > 0 {
		if err := safeFlatBuffersInteraction(func() error {
			h := flattypes.GetSizePrefixedRootAsHeader(buf[featureHeaderOffset:], 0)
			columns = decodeHeaderColumns(h)
			return nil
		}); err != nil {
			return nil, err
		}
	}
	return &featureIterator{buf: buf, offset: start, remaining: count, columns: columns}, nil
}

// Next implements flatgeograph.FeatureIterator.
func (it *featureIterator) Next() (f flatgeograph.Feature, size int, ok bool, err error) {
	if it.remaining <= 0 {
		return flatgeograph.Feature{}, 0, false, nil
	}
	if it.offset+sizePrefixLen > len(it.buf) {
		return flatgeograph.Feature{}, 0, false, wrapErr("reading feature size prefix", ErrTruncated)
	}
	featSize := littleendian.Uint32(it.buf[it.offset:])
	size = sizePrefixLen + int(featSize)
	if it.offset+size > len(it.buf) {
		return flatgeograph.Feature{}, 0, false, wrapErr("reading feature record", ErrTruncated)
	}

	recordOffset := it.offset
	err = safeFlatBuffersInteraction(func() error {
		ff := flattypes.GetSizePrefixedRootAsFeature(it.buf[recordOffset:], 0)

		var geomObj flattypes.Geometry
		if geom := ff.Geometry(&geomObj); geom != nil {
			f.Geometry = geometryFromFlat(geom)
		}

		if propsLen := ff.PropertiesLength(); propsLen > 0 && len(it.columns) > 0 {
			props, derr := flatgeograph.DecodeProperties(it.columns, ff.PropertiesBytes())
			if derr != nil {
				return derr
			}
			f.Properties = props
		}
		return nil
	})
	if err != nil {
		return flatgeograph.Feature{}, 0, false, err
	}

	it.offset += size
	it.remaining--
	return f, size, true, nil
}
