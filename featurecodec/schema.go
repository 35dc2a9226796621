// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package featurecodec

import (
	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/flatgeobuf/flatgeobuf/src/go/writer"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/gogama/flatgeograph"
)

// toFlatColumnType and toColumnType are plain numeric conversions: the
// FlatGeobuf column type tag space (Byte=0 .. Binary=14) is identical
// to flatgeograph.ColumnType's, by design, so the two schemas share
// one property wire format.
func toFlatColumnType(t flatgeograph.ColumnType) flattypes.ColumnType {
	return flattypes.ColumnType(t)
}

func toColumnType(t flattypes.ColumnType) flatgeograph.ColumnType {
	return flatgeograph.ColumnType(t)
}

func decodeHeaderColumns(h *flattypes.Header) []flatgeograph.Column {
	n := h.ColumnsLength()
	if n == 0 {
		return nil
	}
	cols := make([]flatgeograph.Column, 0, n)
	var c flattypes.Column
	for i := 0; i < n; i++ {
		if !h.Columns(&c, i) {
			continue
		}
		cols = append(cols, flatgeograph.Column{
			Name: string(c.Name()),
			Type: toColumnType(c.Type()),
		})
	}
	return cols
}

// writeColumns builds the writer-owned column table for a schema,
// mirroring inferColumns in the reference feature-collection writer:
// one writer.Column per schema entry, title matching name, nullable
// true.
func writeColumns(b *flatbuffers.Builder, schema []flatgeograph.Column) []*writer.Column {
	if len(schema) == 0 {
		return nil
	}
	cols := make([]*writer.Column, 0, len(schema))
	for _, col := range schema {
		wc := writer.NewColumn(b)
		wc.SetName(col.Name)
		wc.SetTitle(col.Name)
		wc.SetType(toFlatColumnType(col.Type))
		wc.SetNullable(true)
		cols = append(cols, wc)
	}
	return cols
}
