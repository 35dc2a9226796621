// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatgeograph

const (
	// magicLen is the length in bytes of the file-identifying magic
	// number, shared by both the FGG and FGB magic forms.
	magicLen = 8
	// supportedMajor is the FGG major version this package writes and
	// the maximum major version it will read.
	supportedMajor = 0x01
)

// fggMagic is the FlatGeoGraphBuf magic number this package writes.
// Bytes 0-2 and 4-6 spell "fgg" in ASCII; byte 3 is the major
// (breaking) version and byte 7 is the patch (compatible) version.
var fggMagic = [magicLen]byte{0x66, 0x67, 0x67, supportedMajor, 0x66, 0x67, 0x67, 0x00}

// fgbMagic is the plain FlatGeobuf magic number. A buffer carrying it
// is accepted as a valid, graph-less container.
var fgbMagic = [magicLen]byte{0x66, 0x67, 0x62, 0x03, 0x66, 0x67, 0x62, 0x00}

// magicKind distinguishes the two magic numbers this package accepts.
type magicKind int

const (
	magicFGG magicKind = iota
	magicFGB
)

// checkMagic validates the first 8 bytes of buf and reports which
// magic form they are. It does not look past the magic number.
func checkMagic(buf []byte) (magicKind, error) {
	if len(buf) < magicLen {
		return 0, wrapErr("reading magic number", ErrTruncated)
	}
	b := buf[:magicLen]
	if matchesMagicShape(b, fggMagic) {
		if b[3] > supportedMajor {
			return 0, fmtErr("%w: have %d, support up to %d", ErrUnsupportedMajor, b[3], supportedMajor)
		}
		return magicFGG, nil
	}
	if matchesMagicShape(b, fgbMagic) {
		return magicFGB, nil
	}
	return 0, ErrBadMagic
}

// matchesMagicShape compares b against want, ignoring the major
// (index 3) and patch (index 7) version bytes, which are allowed to
// vary between readers and writers of the same family.
func matchesMagicShape(b []byte, want [magicLen]byte) bool {
	return b[0] == want[0] && b[1] == want[1] && b[2] == want[2] &&
		b[4] == want[4] && b[5] == want[5] && b[6] == want[6]
}
