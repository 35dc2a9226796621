// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package vertex is a thin convenience layer over
// github.com/paulmach/orb and its geojson subpackage, letting callers
// build flatgeograph.Feature values from ordinary geometry and
// property data instead of hand-assembling the featurecodec.Geometry
// shape themselves. It sits outside the graph codec's own scope
// boundary: Serialize treats every Feature.Geometry opaquely, and this
// package exists only to give callers (tests, cmd/fggdump) something
// concrete to pass in.
package vertex

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/gogama/flatgeograph"
	"github.com/gogama/flatgeograph/featurecodec"
)

// NewPointVertex builds a Feature for a single longitude/latitude
// point with the given properties. A nil props map produces a feature
// with no properties.
func NewPointVertex(lng, lat float64, props map[string]any) flatgeograph.Feature {
	g := &featurecodec.Geometry{
		Type: "Point",
		XY:   []float64{lng, lat},
	}
	var src flatgeograph.PropertySource
	if len(props) > 0 {
		op := flatgeograph.NewOrderedProperties()
		for k, v := range props {
			op.Set(k, v)
		}
		src = op
	}
	return flatgeograph.Feature{Geometry: g, Properties: src}
}

// CollectionToFeatures converts a geojson.FeatureCollection to the
// flatgeograph.Feature slice Serialize expects, translating each
// member's orb.Geometry via the featurecodec package's internal
// geometry representation and carrying its properties through
// unordered (geojson.Properties iterates a Go map, same as
// flatgeograph.Properties).
func CollectionToFeatures(fc *geojson.FeatureCollection) ([]flatgeograph.Feature, error) {
	if fc == nil {
		return nil, nil
	}
	out := make([]flatgeograph.Feature, 0, len(fc.Features))
	for _, f := range fc.Features {
		geom, err := geometryFromOrb(f.Geometry)
		if err != nil {
			return nil, err
		}
		var src flatgeograph.PropertySource
		if len(f.Properties) > 0 {
			props := flatgeograph.Properties(map[string]interface{}(f.Properties))
			src = props
		}
		out = append(out, flatgeograph.Feature{Geometry: geom, Properties: src})
	}
	return out, nil
}

// geometryFromOrb converts an orb.Geometry into the featurecodec
// package's wire-agnostic Geometry shape, grounded on the same
// type-switch tingold-orb-flatgeobuf uses to convert to its own
// writer.Geometry.
func geometryFromOrb(g orb.Geometry) (*featurecodec.Geometry, error) {
	if g == nil {
		return nil, nil
	}
	switch v := g.(type) {
	case orb.Point:
		return &featurecodec.Geometry{Type: "Point", XY: []float64{v[0], v[1]}}, nil
	case orb.MultiPoint:
		return &featurecodec.Geometry{Type: "MultiPoint", XY: flattenPoints(v)}, nil
	case orb.LineString:
		return &featurecodec.Geometry{Type: "LineString", XY: flattenPoints(v)}, nil
	case orb.MultiLineString:
		xy, ends := flattenLines(v)
		return &featurecodec.Geometry{Type: "MultiLineString", XY: xy, Ends: ends}, nil
	case orb.Ring:
		return &featurecodec.Geometry{Type: "Polygon", XY: flattenPoints(v), Ends: []uint32{uint32(len(v))}}, nil
	case orb.Polygon:
		xy, ends := flattenRings(v)
		return &featurecodec.Geometry{Type: "Polygon", XY: xy, Ends: ends}, nil
	case orb.MultiPolygon:
		parts := make([]featurecodec.Geometry, 0, len(v))
		for _, poly := range v {
			xy, ends := flattenRings(poly)
			parts = append(parts, featurecodec.Geometry{Type: "Polygon", XY: xy, Ends: ends})
		}
		return &featurecodec.Geometry{Type: "MultiPolygon", Parts: parts}, nil
	case orb.Collection:
		parts := make([]featurecodec.Geometry, 0, len(v))
		for _, child := range v {
			cg, err := geometryFromOrb(child)
			if err != nil {
				return nil, err
			}
			if cg != nil {
				parts = append(parts, *cg)
			}
		}
		return &featurecodec.Geometry{Type: "GeometryCollection", Parts: parts}, nil
	default:
		return nil, flatgeograph.ErrUnsupportedGeometry
	}
}

func flattenPoints(pts []orb.Point) []float64 {
	xy := make([]float64, 0, len(pts)*2)
	for _, p := range pts {
		xy = append(xy, p[0], p[1])
	}
	return xy
}

func flattenLines(mls orb.MultiLineString) ([]float64, []uint32) {
	var xy []float64
	ends := make([]uint32, 0, len(mls))
	var cumulative uint32
	for _, ls := range mls {
		xy = append(xy, flattenPoints(ls)...)
		cumulative += uint32(len(ls))
		ends = append(ends, cumulative)
	}
	return xy, ends
}

func flattenRings(poly orb.Polygon) ([]float64, []uint32) {
	var xy []float64
	ends := make([]uint32, 0, len(poly))
	var cumulative uint32
	for _, ring := range poly {
		xy = append(xy, flattenPoints(ring)...)
		cumulative += uint32(len(ring))
		ends = append(ends, cumulative)
	}
	return xy, ends
}
