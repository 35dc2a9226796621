// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package flatgeograph implements the FlatGeoGraphBuf graph codec: the
// adjacency-list section layered on top of a FlatGeobuf-compatible
// feature stream, plus the offset locator that finds it, the streaming
// reader that walks it without materializing the whole section, and
// the metadata probe that surfaces schema information up front.
//
// This package never parses geometry or FlatGeobuf feature bodies
// itself; those are supplied by a FeatureCodec implementation such as
// the one in package featurecodec.
package flatgeograph
