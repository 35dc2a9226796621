// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command fggdump prints a summary of a FlatGeoGraphBuf (or plain
// FlatGeobuf) file: its feature header and, if a graph section is
// present, its graph header plus the edge count and the maximum out- and
// in-degree over the decoded adjacency list.
package main

import (
	"fmt"
	"os"

	"github.com/gogama/flatgeograph"
	"github.com/gogama/flatgeograph/featurecodec"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <path.fgg|path.fgb>\n", os.Args[0])
		os.Exit(2)
	}
	if err := dump(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, "fggdump:", err)
		os.Exit(1)
	}
}

func dump(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	fc := featurecodec.New()
	var meta flatgeograph.Meta
	result, err := flatgeograph.Deserialize(buf, fc, flatgeograph.WithObserver(func(m flatgeograph.Meta) error {
		meta = m
		return nil
	}))
	if err != nil {
		return err
	}

	fmt.Printf("features: %d (geometry type %s, index node size %d)\n",
		meta.Features.FeaturesCount, meta.Features.GeometryType, meta.Features.IndexNodeSize)
	for _, c := range meta.Features.Columns {
		fmt.Printf("  feature column %s\n", c)
	}

	if meta.Graph == nil {
		fmt.Println("graph: none")
		return nil
	}
	fmt.Printf("graph: %s\n", *meta.Graph)

	stats := flatgeograph.ComputeStats(result.AdjacencyList)
	fmt.Printf("edges: %d, max out-degree %d, max in-degree %d\n",
		stats.EdgeCount, stats.MaxOutDegree, stats.MaxInDegree)
	return nil
}
