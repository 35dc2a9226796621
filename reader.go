// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatgeograph

// Meta is what a DeserializeObserver receives: the feature header
// metadata plus the graph header metadata, the latter absent when the
// buffer carries no graph section at all (spec §4.10).
type Meta struct {
	Features FeaturesHeaderMeta
	Graph    *GraphHeaderMeta
}

// DeserializeObserver is invoked exactly once by Deserialize, after
// the feature header and (if present) the graph header have been
// parsed, but before any edge or feature is materialized. Returning a
// non-nil error aborts the read; Deserialize returns that error
// unchanged.
type DeserializeObserver func(Meta) error

// DeserializeOption configures a single Deserialize call.
type DeserializeOption func(*deserializeOptions)

type deserializeOptions struct {
	observer DeserializeObserver
}

// WithObserver registers the metadata-probe callback described on
// DeserializeObserver.
func WithObserver(o DeserializeObserver) DeserializeOption {
	return func(opts *deserializeOptions) { opts.observer = o }
}

// Result is what Deserialize returns: the materialized features (via
// fc) and the complete adjacency list. AdjacencyList.Edges is always
// non-nil, possibly empty when the buffer has no graph section.
type Result struct {
	Features      []Feature
	AdjacencyList AdjacencyList
}

// Deserialize splits buf via the offset locator, materializes all
// features through fc, parses the graph section if present, and
// returns both. See spec §4.8.
func Deserialize(buf []byte, fc FeatureCodec, opts ...DeserializeOption) (Result, error) {
	if fc == nil {
		textPanic("nil FeatureCodec")
	}
	var o deserializeOptions
	for _, opt := range opts {
		opt(&o)
	}

	kind, err := checkMagic(buf)
	if err != nil {
		return Result{}, err
	}

	graphOffset, featMeta, err := locateGraphSection(buf, kind, fc)
	if err != nil {
		return Result{}, err
	}

	meta := Meta{Features: featMeta}
	var hdr graphHeader
	hasGraph := graphOffset < len(buf)
	if hasGraph {
		hdr, _, err = graphSectionHeader(buf, graphOffset)
		if err != nil {
			return Result{}, err
		}
		m := hdr.meta()
		meta.Graph = &m
	}

	if o.observer != nil {
		if err := o.observer(meta); err != nil {
			return Result{}, err
		}
	}

	features, err := materializeFeatures(buf, featMeta, fc)
	if err != nil {
		return Result{}, err
	}

	edges := []Edge{}
	if hasGraph {
		_, decodedEdges, err := decodeGraphSection(buf, graphOffset)
		if err != nil {
			return Result{}, err
		}
		edges = decodedEdges
	}

	return Result{
		Features:      features,
		AdjacencyList: AdjacencyList{Edges: edges},
	}, nil
}

func materializeFeatures(buf []byte, meta FeaturesHeaderMeta, fc FeatureCodec) ([]Feature, error) {
	if meta.FeaturesCount == 0 {
		return nil, nil
	}
	// Header bytes are already accounted for by the locator; features
	// start wherever the header's own size-prefixed framing ended. We
	// recompute that start the same way the locator did, by decoding
	// the header once more at the fixed offset 8.
	_, headerLen, err := fc.DecodeHeader(buf, magicLen)
	if err != nil {
		return nil, wrapErr("re-decoding feature header", err)
	}
	start := magicLen + headerLen
	if meta.IndexNodeSize > 0 {
		indexSize, err := fc.PackedTreeSize(meta.FeaturesCount, meta.IndexNodeSize)
		if err != nil {
			return nil, wrapErr("computing packed r-tree size", err)
		}
		start += int(indexSize)
	}
	it, err := fc.IterateFeatures(buf, start, meta.FeaturesCount)
	if err != nil {
		return nil, wrapErr("iterating feature section", err)
	}
	features := make([]Feature, 0, meta.FeaturesCount)
	for {
		f, _, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		features = append(features, f)
	}
	return features, nil
}

// Reader is a finite, single-pass, insertion-ordered streaming
// iterator over a graph section's edges, per spec §4.9. It never
// materializes features or the whole edge list; it only walks the
// feature section once to locate the graph section, then decodes one
// edge record at a time.
type Reader struct {
	stateful
	buf    []byte
	schema []Column
	off    int
	remain uint32
}

// DeserializeGraphEdges locates the graph section in buf (if any) and
// returns a Reader over its edges. When buf carries no graph section,
// the returned Reader is immediately exhausted.
func DeserializeGraphEdges(buf []byte, fc FeatureCodec) (*Reader, error) {
	if fc == nil {
		textPanic("nil FeatureCodec")
	}
	kind, err := checkMagic(buf)
	if err != nil {
		return nil, err
	}
	graphOffset, _, err := locateGraphSection(buf, kind, fc)
	if err != nil {
		return nil, err
	}
	r := &Reader{buf: buf}
	if graphOffset >= len(buf) {
		r.state = exhausted
		return r, nil
	}
	hdr, firstEdge, err := graphSectionHeader(buf, graphOffset)
	if err != nil {
		return nil, err
	}
	r.schema = hdr.columns
	r.off = firstEdge
	r.remain = hdr.edgeCount
	if r.remain == 0 {
		r.state = exhausted
	} else {
		r.state = readingEdges
	}
	return r, nil
}

// Next returns the next edge, or ok == false once the iterator is
// exhausted. Once Next returns an error, the Reader is done: it will
// keep returning that same error.
func (r *Reader) Next() (e Edge, ok bool, err error) {
	if r.err != nil {
		return Edge{}, false, r.err
	}
	if r.state == exhausted || r.state == closedState {
		return Edge{}, false, nil
	}
	e, next, err := decodeEdge(r.schema, r.buf, r.off)
	if err != nil {
		return Edge{}, false, r.toErr(err)
	}
	r.off = next
	r.remain--
	if r.remain == 0 {
		r.state = exhausted
	}
	return e, true, nil
}

// Close ends the Reader early. It is safe to call Close without
// draining Next to exhaustion; per spec §5, cancellation is simply
// dropping the iterator, so Close exists for symmetry with the
// teacher's other resource types rather than to release anything.
func (r *Reader) Close() error {
	r.state = closedState
	return nil
}
