// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatgeograph

// SerializeOption configures a single Serialize call. The zero value
// of the option set matches spec §6's default: no adjacency list, CRS
// code 0.
type SerializeOption func(*serializeOptions)

type serializeOptions struct {
	adj     *AdjacencyList
	crsCode int
}

// WithAdjacencyList attaches a graph section to the output. Omitting
// this option produces the FGG magic followed by the feature section
// alone, with no graph section; Deserialize reads such output back with
// an empty edge list. The FGG magic is written in both cases, so the
// output never starts with the plain FlatGeobuf magic.
func WithAdjacencyList(adj AdjacencyList) SerializeOption {
	return func(o *serializeOptions) { o.adj = &adj }
}

// WithCRSCode sets the coordinate reference system code forwarded to
// the feature codec's EncodeFeatures.
func WithCRSCode(crsCode int) SerializeOption {
	return func(o *serializeOptions) { o.crsCode = crsCode }
}

// Serialize concatenates the FGG magic, the feature section built by
// fc from features, and (if WithAdjacencyList was given) the graph
// section built from the adjacency list, per spec §4.8.
//
// Validation errors from an invalid edge surface synchronously here,
// before any bytes are returned; see spec §4.11 and §6 for the exact
// error wording ("self-loops are not allowed", "Invalid 'from' index",
// "Invalid 'to' index").
func Serialize(fc FeatureCodec, features []Feature, opts ...SerializeOption) ([]byte, error) {
	if fc == nil {
		textPanic("nil FeatureCodec")
	}
	var o serializeOptions
	for _, opt := range opts {
		opt(&o)
	}

	featureBytes, err := fc.EncodeFeatures(features, o.crsCode)
	if err != nil {
		return nil, wrapErr("encoding feature section", err)
	}

	if o.adj == nil {
		out := make([]byte, 0, magicLen+len(featureBytes))
		out = append(out, fggMagic[:]...)
		out = append(out, featureBytes...)
		return out, nil
	}

	graphBytes, err := encodeGraphSection(*o.adj, int64(len(features)))
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, magicLen+len(featureBytes)+len(graphBytes))
	out = append(out, fggMagic[:]...)
	out = append(out, featureBytes...)
	out = append(out, graphBytes...)
	return out, nil
}
