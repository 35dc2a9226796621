// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatgeograph

import (
	"errors"
	"fmt"
)

const packageName = "flatgeograph: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}

// Sentinel errors returned by the graph codec. Each is distinguishable
// with errors.Is; read-path errors wrap one of these, write-path errors
// are returned directly or wrapped with offending-index context.
var (
	// ErrBadMagic is returned when the first 8 bytes of a buffer are
	// neither the FGG nor the FGB magic number.
	ErrBadMagic = textErr("bad magic number")
	// ErrUnsupportedMajor is returned when the magic number's major
	// version byte is newer than this package supports.
	ErrUnsupportedMajor = textErr("unsupported major version")
	// ErrTruncated is returned when a read would pass the end of the
	// input buffer.
	ErrTruncated = textErr("truncated buffer")
	// ErrInvalidColumnType is returned when a column type byte is
	// outside the range 0..14.
	ErrInvalidColumnType = textErr("invalid column type")
	// ErrInvalidEdgeSize is returned when an edge record's declared
	// size is less than 8 or overruns the containing buffer.
	ErrInvalidEdgeSize = textErr("invalid edge size")
	// ErrInvalidIndex is returned, write-side only, when an edge's from
	// or to index is outside [0, featureCount).
	ErrInvalidIndex = textErr("invalid vertex index")
	// ErrSelfLoop is returned, write-side only, when an edge's from and
	// to index are equal.
	ErrSelfLoop = textErr("self-loops are not allowed")
	// ErrUnknownPropertyType is returned, write-side only, when a
	// property value is not bool, a number, a string, a byte slice, a
	// JSON-able object, or nil.
	ErrUnknownPropertyType = textErr("unknown property value type")
	// ErrMalformedJSON is returned, read-side only, when a Json-typed
	// property payload does not parse as JSON.
	ErrMalformedJSON = textErr("malformed json property")
	// ErrClosed is a sentinel for a stopped streaming Reader. Reader.Next
	// does not return it: once the edges are exhausted or Close has been
	// called, Next reports ok == false with a nil error.
	ErrClosed = textErr("closed")
	// ErrUnsupportedGeometry is returned by convenience layers built on
	// top of this package (such as package vertex) when asked to carry
	// a geometry type they do not know how to translate. The graph
	// codec itself never returns this error, since it never inspects
	// Feature.Geometry.
	ErrUnsupportedGeometry = textErr("unsupported geometry type")
)
