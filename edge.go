// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatgeograph

import "github.com/gogama/flatgeograph/littleendian"

// edgeHeaderLen is the size in bytes of the from/to pair that precedes
// an edge's property region, and hence the minimum legal value of an
// edge record's declared size field.
const edgeHeaderLen = 8

// Edge is a directed pair of vertex indices plus a property map. From
// and To index into the feature section that precedes the graph
// section; self-loops (From == To) are rejected at write time.
type Edge struct {
	From, To   uint32
	Properties PropertySource
}

// validateEdge checks the write-side invariants from spec §3: From and
// To must be distinct feature indices in [0, featureCount).
func validateEdge(e Edge, featureCount int64, index int) error {
	from, to := int64(e.From), int64(e.To)
	if from < 0 || from >= featureCount {
		return fmtErr("edge %d: %w: Invalid 'from' index %d not in [0, %d)", index, ErrInvalidIndex, from, featureCount)
	}
	if to < 0 || to >= featureCount {
		return fmtErr("edge %d: %w: Invalid 'to' index %d not in [0, %d)", index, ErrInvalidIndex, to, featureCount)
	}
	if from == to {
		return fmtErr("edge %d: %w", index, ErrSelfLoop)
	}
	return nil
}

// encodeEdge appends the wire form of e, encoded against schema, to
// dst: [size u32][from u32][to u32][properties]. size excludes its own
// four bytes, matching spec §4.5.
func encodeEdge(dst []byte, e Edge, schema []Column, featureCount int64, index int) ([]byte, error) {
	if err := validateEdge(e, featureCount, index); err != nil {
		return nil, err
	}
	props, err := encodeProperties(schema, e.Properties)
	if err != nil {
		return nil, wrapErr("edge %d", err, index)
	}
	size := uint32(edgeHeaderLen + len(props))
	n := len(dst)
	dst = append(dst, make([]byte, 4+edgeHeaderLen)...)
	littleendian.PutUint32(dst[n:], size)
	littleendian.PutUint32(dst[n+4:], e.From)
	littleendian.PutUint32(dst[n+8:], e.To)
	return append(dst, props...), nil
}

// decodeEdge reads one edge record starting at buf[off] against
// schema, returning the decoded Edge and the offset of the byte
// following the record.
func decodeEdge(schema []Column, buf []byte, off int) (Edge, int, error) {
	if off+4 > len(buf) {
		return Edge{}, 0, wrapErr("reading edge size", ErrTruncated)
	}
	size := littleendian.Uint32(buf[off:])
	if size < edgeHeaderLen {
		return Edge{}, 0, wrapErr("edge size %d below minimum 8", ErrInvalidEdgeSize, size)
	}
	recordEnd := off + 4 + int(size)
	if recordEnd > len(buf) || recordEnd < 0 {
		return Edge{}, 0, wrapErr("edge of declared size %d overruns buffer", ErrInvalidEdgeSize, size)
	}
	from := littleendian.Uint32(buf[off+4:])
	to := littleendian.Uint32(buf[off+8:])
	propBuf := buf[off+12 : recordEnd]
	props, err := decodeProperties(schema, propBuf)
	if err != nil {
		return Edge{}, 0, err
	}
	return Edge{From: from, To: to, Properties: props}, recordEnd, nil
}
