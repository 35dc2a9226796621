// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package featurecodec

import (
	"errors"
	"fmt"
)

const packageName = "featurecodec: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

// ErrTruncated is returned when a read would pass the end of the
// input buffer, mirroring the root package's own error of the same
// name but scoped to this collaborator.
var ErrTruncated = textErr("truncated buffer")
