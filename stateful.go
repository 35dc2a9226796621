// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatgeograph

// stateful is the small state-machine helper the streaming edge Reader
// embeds, narrowed from the teacher package's multi-state file-section
// writer down to the graph codec's actual walk: reading, exhausted, or
// closed. There is no "before locate" state because
// DeserializeGraphEdges always runs the locator before a Reader value
// ever escapes to a caller.
type stateful struct {
	state state
	err   error
}

type state int

const (
	readingEdges state = iota
	exhausted
	closedState
)

// toErr records err as the Reader's sticky terminal error and returns
// it, so that every subsequent Next call keeps reporting the same
// failure instead of retrying.
func (s *stateful) toErr(err error) error {
	s.err = err
	return err
}
