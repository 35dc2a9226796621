// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatgeograph

import "github.com/gogama/flatgeograph/littleendian"

// AdjacencyList is the complete edge set of a graph, with no
// vertex-indexed structure built by the codec; spec §1 explicitly
// leaves neighbor lookup to the consumer (see Stats for the one
// summarizing exception).
type AdjacencyList struct {
	Edges []Edge
}

// buildSchema picks the column list a set of edges will be encoded
// against: the caller's explicit schema if given, otherwise the one
// inferred from the first edge carrying properties (spec §3).
func buildSchema(edges []Edge, explicit []Column) []Column {
	if explicit != nil {
		return explicit
	}
	sources := make([]PropertySource, len(edges))
	for i, e := range edges {
		sources[i] = e.Properties
	}
	return inferSchema(sources)
}

// encodeGraphSection builds the whole trailing graph section:
// [header-size u32][header][edge0]...[edge_{n-1}], per spec §4.6.
func encodeGraphSection(adj AdjacencyList, featureCount int64) ([]byte, error) {
	schema := buildSchema(adj.Edges, nil)
	if len(adj.Edges) > 0xFFFFFFFF {
		return nil, fmtErr("edge count %d exceeds uint32 range", len(adj.Edges))
	}
	hdrBytes, err := encodeGraphHeader(graphHeader{
		edgeCount: uint32(len(adj.Edges)),
		columns:   schema,
	})
	if err != nil {
		return nil, wrapErr("encoding graph section", err)
	}

	out := make([]byte, 0, 4+len(hdrBytes)+len(adj.Edges)*32)
	out = append(out, make([]byte, 4)...)
	littleendian.PutUint32(out, uint32(len(hdrBytes)))
	out = append(out, hdrBytes...)

	for i, e := range adj.Edges {
		out, err = encodeEdge(out, e, schema, featureCount, i)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// decodeGraphSection parses the complete graph section starting at
// buf[offset], reading exactly the header-declared edge count.
func decodeGraphSection(buf []byte, offset int) (graphHeader, []Edge, error) {
	if offset+4 > len(buf) {
		return graphHeader{}, nil, wrapErr("reading graph section header size", ErrTruncated)
	}
	hdrSize := int(littleendian.Uint32(buf[offset:]))
	hdrStart := offset + 4
	if hdrSize < 0 || hdrStart+hdrSize > len(buf) {
		return graphHeader{}, nil, wrapErr("reading graph header", ErrTruncated)
	}
	hdr, err := decodeGraphHeader(buf[hdrStart : hdrStart+hdrSize])
	if err != nil {
		return graphHeader{}, nil, err
	}

	off := hdrStart + hdrSize
	edges := make([]Edge, 0, hdr.edgeCount)
	for i := uint32(0); i < hdr.edgeCount; i++ {
		e, next, err := decodeEdge(hdr.columns, buf, off)
		if err != nil {
			return graphHeader{}, nil, wrapErr("reading edge %d", err, i)
		}
		edges = append(edges, e)
		off = next
	}
	return hdr, edges, nil
}

// graphSectionHeader parses only the header of the graph section at
// buf[offset], returning the header and the byte offset of the first
// edge record, without materializing any edges. Used by the metadata
// probe and the streaming reader.
func graphSectionHeader(buf []byte, offset int) (hdr graphHeader, firstEdgeOffset int, err error) {
	if offset+4 > len(buf) {
		return graphHeader{}, 0, wrapErr("reading graph section header size", ErrTruncated)
	}
	hdrSize := int(littleendian.Uint32(buf[offset:]))
	hdrStart := offset + 4
	if hdrSize < 0 || hdrStart+hdrSize > len(buf) {
		return graphHeader{}, 0, wrapErr("reading graph header", ErrTruncated)
	}
	hdr, err = decodeGraphHeader(buf[hdrStart : hdrStart+hdrSize])
	if err != nil {
		return graphHeader{}, 0, err
	}
	return hdr, hdrStart + hdrSize, nil
}
