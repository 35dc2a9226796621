// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatgeograph

// Stats summarizes an AdjacencyList's degree distribution. It builds
// no vertex-indexed lookup structure, only counts, so it does not
// encroach on spec §1's "no edge index or neighbor lookup structure"
// non-goal: a consumer still has to build its own index to answer
// "what are vertex v's neighbors".
type Stats struct {
	EdgeCount   int
	OutDegree   map[uint32]int
	InDegree    map[uint32]int
	MaxOutDegree int
	MaxInDegree  int
}

// ComputeStats walks adj.Edges once and tallies in/out degree per
// vertex index.
func ComputeStats(adj AdjacencyList) Stats {
	s := Stats{
		EdgeCount: len(adj.Edges),
		OutDegree: make(map[uint32]int, len(adj.Edges)),
		InDegree:  make(map[uint32]int, len(adj.Edges)),
	}
	for _, e := range adj.Edges {
		s.OutDegree[e.From]++
		if s.OutDegree[e.From] > s.MaxOutDegree {
			s.MaxOutDegree = s.OutDegree[e.From]
		}
		s.InDegree[e.To]++
		if s.InDegree[e.To] > s.MaxInDegree {
			s.MaxInDegree = s.InDegree[e.To]
		}
	}
	return s
}
