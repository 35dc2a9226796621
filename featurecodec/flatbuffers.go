// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package featurecodec

import "fmt"

// safeFlatBuffersInteraction runs a function that interacts with
// FlatBuffers-generated accessors, trapping any panic that occurs and
// converting it to a normal Go error.
//
// This exists because FlatBuffers' Go runtime doesn't use standard Go
// error handling, allegedly for performance reasons, and consequently
// any invalid attempt to interact with FlatBuffers data may trigger a
// panic deep inside vtable offset arithmetic.
func safeFlatBuffersInteraction(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%spanic: flatbuffers: %v", packageName, r)
		}
	}()
	err = f()
	return
}
