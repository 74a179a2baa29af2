// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package command

// Encoder builds a [Stream] one command at a time. It is a reference
// implementation of the host-side builder the spec leaves unspecified —
// production builders only need to emit something [decode] can read; this
// one exists so tests and the CLI demo have a convenient, correct way to
// construct streams.
//
// The zero value is not usable; use [NewEncoder].
type Encoder struct {
	data    []byte
	offsets []int32

	byteBlobs  [][]byte
	floatBlobs [][]float32

	textLocations    []TextLocation
	lineLocationBase []int32
}

// NewEncoder returns a ready-to-use Encoder.
func NewEncoder() *Encoder {
	return &Encoder{
		lineLocationBase: []int32{0},
	}
}

func (e *Encoder) emit(hdr Header, payloadSize int) []byte {
	off := int32(len(e.data))
	e.offsets = append(e.offsets, off)
	rec := make([]byte, headerSize+payloadSize)
	putHeader(rec, hdr)
	e.data = append(e.data, rec...)
	return e.data[off:]
}

// AddRectangle appends a Rectangle command and returns its index.
func (e *Encoder) AddRectangle(hdr Header, outer, inner [4]Point, thickness int32, interpolation bool) int {
	hdr.Type = TypeRectangle
	buf := e.emit(hdr, 64+4+1)
	p := headerSize
	for _, pt := range outer {
		putFloat32(buf, p, pt.X)
		putFloat32(buf, p+4, pt.Y)
		p += 8
	}
	for _, pt := range inner {
		putFloat32(buf, p, pt.X)
		putFloat32(buf, p+4, pt.Y)
		p += 8
	}
	putInt32(buf, p, thickness)
	if interpolation {
		buf[p+4] = 1
	}
	return len(e.offsets) - 1
}

// AddCircle appends a Circle command and returns its index.
func (e *Encoder) AddCircle(hdr Header, cx, cy, radius float32, thickness int32) int {
	hdr.Type = TypeCircle
	buf := e.emit(hdr, 16)
	p := headerSize
	putFloat32(buf, p, cx)
	putFloat32(buf, p+4, cy)
	putFloat32(buf, p+8, radius)
	putInt32(buf, p+12, thickness)
	return len(e.offsets) - 1
}

// AddText appends a Text command referencing locs as its glyph run and
// returns its index. It advances the line-location directory regardless of
// whether hdr's AABB will later be culled, matching the text-line counter
// coupling rule.
func (e *Encoder) AddText(hdr Header, locs []TextLocation) int {
	hdr.Type = TypeText
	iLocation := int32(len(e.lineLocationBase) - 1)
	e.textLocations = append(e.textLocations, locs...)
	e.lineLocationBase = append(e.lineLocationBase, int32(len(e.textLocations)))

	buf := e.emit(hdr, 8)
	p := headerSize
	putInt32(buf, p, int32(len(locs)))
	putInt32(buf, p+4, iLocation)
	return len(e.offsets) - 1
}

// AddSegment appends a Segment command and returns its index. mask is
// pooled into the encoder's float blob table by reference, not copied.
func (e *Encoder) AddSegment(hdr Header, mask []float32, segWidth, segHeight int32, scaleX, scaleY, threshold float32) int {
	hdr.Type = TypeSegment
	blobIdx := int32(len(e.floatBlobs))
	e.floatBlobs = append(e.floatBlobs, mask)

	buf := e.emit(hdr, 24)
	p := headerSize
	putInt32(buf, p, blobIdx)
	putInt32(buf, p+4, segWidth)
	putInt32(buf, p+8, segHeight)
	putFloat32(buf, p+12, scaleX)
	putFloat32(buf, p+16, scaleY)
	putFloat32(buf, p+20, threshold)
	return len(e.offsets) - 1
}

// AddRGBASource appends an RGBASource command and returns its index. src is
// pooled into the encoder's byte blob table by reference, not copied.
func (e *Encoder) AddRGBASource(hdr Header, cx, cy, width, height int32, src []byte) int {
	hdr.Type = TypeRGBASource
	blobIdx := int32(len(e.byteBlobs))
	e.byteBlobs = append(e.byteBlobs, src)

	buf := e.emit(hdr, 20)
	p := headerSize
	putInt32(buf, p, cx)
	putInt32(buf, p+4, cy)
	putInt32(buf, p+8, width)
	putInt32(buf, p+12, height)
	putInt32(buf, p+16, blobIdx)
	return len(e.offsets) - 1
}

// AddNV12Source appends an NV12Source command and returns its index. luma
// and chroma are pooled into the encoder's byte blob table by reference.
func (e *Encoder) AddNV12Source(hdr Header, cx, cy, width, height int32, luma, chroma []byte, blockLinear bool, keyY, keyU, keyV uint8) int {
	hdr.Type = TypeNV12Source
	blob0 := int32(len(e.byteBlobs))
	e.byteBlobs = append(e.byteBlobs, luma)
	blob1 := int32(len(e.byteBlobs))
	e.byteBlobs = append(e.byteBlobs, chroma)

	buf := e.emit(hdr, 28)
	p := headerSize
	putInt32(buf, p, cx)
	putInt32(buf, p+4, cy)
	putInt32(buf, p+8, width)
	putInt32(buf, p+12, height)
	putInt32(buf, p+16, blob0)
	putInt32(buf, p+20, blob1)
	if blockLinear {
		buf[p+24] = 1
	}
	buf[p+25], buf[p+26], buf[p+27] = keyY, keyU, keyV
	return len(e.offsets) - 1
}

// AddBoxBlur appends a BoxBlur command and returns its index. BoxBlur
// commands are normally built into a separate Stream from the main drawing
// stream (see spec.md §6); Encoder does not enforce which stream they end
// up in.
func (e *Encoder) AddBoxBlur(hdr Header, kernelSize int32) int {
	hdr.Type = TypeBoxBlur
	buf := e.emit(hdr, 4)
	putInt32(buf, headerSize, kernelSize)
	return len(e.offsets) - 1
}

// Build finalizes the encoder into a Stream. The Encoder remains usable
// afterwards; the returned Stream holds copies of the encoder's tables, so
// further Add* calls do not affect a Stream already built. The byte and
// float blobs themselves are shared, not copied.
func (e *Encoder) Build() *Stream {
	return &Stream{
		Data:             append([]byte(nil), e.data...),
		Offsets:          append([]int32(nil), e.offsets...),
		ByteBlobs:        append([][]byte(nil), e.byteBlobs...),
		FloatBlobs:       append([][]float32(nil), e.floatBlobs...),
		TextLocations:    append([]TextLocation(nil), e.textLocations...),
		LineLocationBase: append([]int32(nil), e.lineLocationBase...),
	}
}
