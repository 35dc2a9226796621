// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package featurecodec

import (
	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/flatgeobuf/flatgeobuf/src/go/writer"
	flatbuffers "github.com/google/flatbuffers/go"
)

// Geometry is the geometry representation carried in a
// flatgeograph.Feature.Geometry field when features pass through this
// package. It is deliberately minimal: flat XY coordinate pairs, an
// optional ends vector delimiting rings/lines within XY, and nested
// Parts for multi-geometries and collections. Full geometry semantics
// (projections, validity, simplification, ...) are out of scope for
// this package; this shape exists only to round-trip whatever a
// caller's geometry library already produced.
type Geometry struct {
	Type  string
	XY    []float64
	Ends  []uint32
	Parts []Geometry
}

var geometryTypeNames = map[flattypes.GeometryType]string{
	flattypes.GeometryTypeUnknown:           "Unknown",
	flattypes.GeometryTypePoint:             "Point",
	flattypes.GeometryTypeMultiPoint:        "MultiPoint",
	flattypes.GeometryTypeLineString:        "LineString",
	flattypes.GeometryTypeMultiLineString:   "MultiLineString",
	flattypes.GeometryTypePolygon:           "Polygon",
	flattypes.GeometryTypeMultiPolygon:      "MultiPolygon",
	flattypes.GeometryTypeGeometryCollection: "GeometryCollection",
}

func geometryTypeName(t flattypes.GeometryType) string {
	if n, ok := geometryTypeNames[t]; ok {
		return n
	}
	return "Unknown"
}

func geometryTypeFromName(name string) flattypes.GeometryType {
	for t, n := range geometryTypeNames {
		if n == name {
			return t
		}
	}
	return flattypes.GeometryTypeUnknown
}

// geometryToFlat converts a Geometry into a writer-owned FlatGeobuf
// geometry table, recursing into Parts for multi-geometries and
// collections.
func geometryToFlat(g *Geometry, b *flatbuffers.Builder) *writer.Geometry {
	if g == nil {
		return nil
	}
	wg := writer.NewGeometry(b)
	wg.SetType(geometryTypeFromName(g.Type))
	if len(g.XY) > 0 {
		wg.SetXY(g.XY)
	}
	if len(g.Ends) > 0 {
		wg.SetEnds(g.Ends)
	}
	if len(g.Parts) > 0 {
		parts := make([]writer.Geometry, 0, len(g.Parts))
		for i := range g.Parts {
			if p := geometryToFlat(&g.Parts[i], b); p != nil {
				parts = append(parts, *p)
			}
		}
		wg.SetParts(parts)
	}
	return wg
}

// geometryFromFlat is the reverse of geometryToFlat, reading out of a
// decoded flattypes.Geometry table.
func geometryFromFlat(fg *flattypes.Geometry) *Geometry {
	if fg == nil {
		return nil
	}
	g := &Geometry{Type: geometryTypeName(fg.Type())}
	if n := fg.XyLength(); n > 0 {
		g.XY = make([]float64, n)
		for i := 0; i < n; i++ {
			g.XY[i] = fg.Xy(i)
		}
	}
	if n := fg.EndsLength(); n > 0 {
		g.Ends = make([]uint32, n)
		for i := 0; i < n; i++ {
			g.Ends[i] = fg.Ends(i)
		}
	}
	if n := fg.PartsLength(); n > 0 {
		g.Parts = make([]Geometry, 0, n)
		var part flattypes.Geometry
		for i := 0; i < n; i++ {
			if fg.Parts(&part, i) {
				if p := geometryFromFlat(&part); p != nil {
					g.Parts = append(g.Parts, *p)
				}
			}
		}
	}
	return g
}
