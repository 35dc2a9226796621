// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatgeograph

// locateGraphSection implements spec §4.7: the graph section's start
// offset is never stored, so it must be computed by walking the
// feature section using the external FeatureCodec. Returns the byte
// offset at which the graph section begins (equal to len(buf) when
// there is none) along with the decoded feature header metadata.
func locateGraphSection(buf []byte, kind magicKind, fc FeatureCodec) (offset int, meta FeaturesHeaderMeta, err error) {
	if kind == magicFGB {
		// A plain FlatGeobuf file has no graph section at all; the
		// "offset" is simply the end of the buffer.
		meta, _, err = fc.DecodeHeader(buf, magicLen)
		if err != nil {
			return 0, FeaturesHeaderMeta{}, wrapErr("decoding feature header", err)
		}
		return len(buf), meta, nil
	}

	meta, headerLen, err := fc.DecodeHeader(buf, magicLen)
	if err != nil {
		return 0, FeaturesHeaderMeta{}, wrapErr("decoding feature header", err)
	}
	off := magicLen + headerLen

	if meta.IndexNodeSize > 0 {
		indexSize, err := fc.PackedTreeSize(meta.FeaturesCount, meta.IndexNodeSize)
		if err != nil {
			return 0, FeaturesHeaderMeta{}, wrapErr("computing packed r-tree size", err)
		}
		if indexSize < 0 || int64(off)+indexSize > int64(len(buf)) {
			return 0, FeaturesHeaderMeta{}, wrapErr("skipping spatial index", ErrTruncated)
		}
		off += int(indexSize)
	}

	if meta.FeaturesCount > 0 {
		it, err := fc.IterateFeatures(buf, off, meta.FeaturesCount)
		if err != nil {
			return 0, FeaturesHeaderMeta{}, wrapErr("iterating feature section", err)
		}
		var consumed int64
		for consumed < meta.FeaturesCount {
			_, size, ok, err := it.Next()
			if err != nil {
				return 0, FeaturesHeaderMeta{}, wrapErr("reading feature %d", err, consumed)
			}
			if !ok {
				return 0, FeaturesHeaderMeta{}, fmtErr("feature section ended after %d of %d features", consumed, meta.FeaturesCount)
			}
			off += size
			consumed++
		}
	}

	if off > len(buf) {
		return 0, FeaturesHeaderMeta{}, wrapErr("locating graph section", ErrTruncated)
	}
	return off, meta, nil
}
