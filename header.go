// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatgeograph

import "github.com/gogama/flatgeograph/littleendian"

// graphHeader is the decoded form of the graph section's header:
// [edgeCount u32][columnCount u16][columns...], per spec §4.3 and §6.
type graphHeader struct {
	edgeCount uint32
	columns   []Column
}

// encodeGraphHeader returns the wire form of h.
func encodeGraphHeader(h graphHeader) ([]byte, error) {
	if len(h.columns) > 0xFFFF {
		return nil, fmtErr("column count %d exceeds 65535", len(h.columns))
	}
	buf := make([]byte, 6, 6+len(h.columns)*16)
	littleendian.PutUint32(buf, h.edgeCount)
	littleendian.PutUint16(buf[4:], uint16(len(h.columns)))
	var err error
	for _, c := range h.columns {
		buf, err = encodeColumn(buf, c)
		if err != nil {
			return nil, wrapErr("encoding graph header", err)
		}
	}
	return buf, nil
}

// decodeGraphHeader parses the graph header bytes in buf, which must
// hold exactly one header's worth of bytes (the caller slices it to
// the declared header-size field before calling this).
func decodeGraphHeader(buf []byte) (graphHeader, error) {
	if len(buf) < 6 {
		return graphHeader{}, wrapErr("reading graph header", ErrTruncated)
	}
	h := graphHeader{
		edgeCount: littleendian.Uint32(buf),
	}
	columnCount := int(littleendian.Uint16(buf[4:]))
	off := 6
	if columnCount > 0 {
		h.columns = make([]Column, columnCount)
		for i := 0; i < columnCount; i++ {
			col, next, err := decodeColumn(buf, off)
			if err != nil {
				return graphHeader{}, wrapErr("reading graph header column %d", err, i)
			}
			h.columns[i] = col
			off = next
		}
	}
	return h, nil
}

// GraphHeaderMeta is the metadata-probe view of the graph header,
// surfaced to a DeserializeObserver before any edges are materialized.
// EdgeColumns is nil, not merely empty, when the header carries zero
// columns, per spec §4.10.
type GraphHeaderMeta struct {
	EdgeCount   uint32
	EdgeColumns []Column
}

func (h graphHeader) meta() GraphHeaderMeta {
	m := GraphHeaderMeta{EdgeCount: h.edgeCount}
	if len(h.columns) > 0 {
		m.EdgeColumns = h.columns
	}
	return m
}
