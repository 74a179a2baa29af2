// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package command

import (
	"encoding/binary"
	"math"
)

// Wire layout: every record starts with a 1-byte Type tag followed by the
// 20-byte Header (4 x int32 AABB + 4 x uint8 color), 21 bytes in all
// (headerSize), followed by a type-specific fixed-size payload. All
// multi-byte integers are little-endian. This is an internal convention of
// this module, not an external ABI — a real device builder is free to use
// any layout decode is taught to read; only the core's read side (this file) is in scope for
// the spec's guarantees.
const headerSize = 1 + 4*4 + 4

func putHeader(buf []byte, h Header) {
	buf[0] = byte(h.Type)
	binary.LittleEndian.PutUint32(buf[1:], uint32(h.Left))
	binary.LittleEndian.PutUint32(buf[5:], uint32(h.Top))
	binary.LittleEndian.PutUint32(buf[9:], uint32(h.Right))
	binary.LittleEndian.PutUint32(buf[13:], uint32(h.Bottom))
	buf[17] = h.C0
	buf[18] = h.C1
	buf[19] = h.C2
	buf[20] = h.C3
}

func readHeader(buf []byte) Header {
	return Header{
		Type:   Type(buf[0]),
		Left:   int32(binary.LittleEndian.Uint32(buf[1:])),
		Top:    int32(binary.LittleEndian.Uint32(buf[5:])),
		Right:  int32(binary.LittleEndian.Uint32(buf[9:])),
		Bottom: int32(binary.LittleEndian.Uint32(buf[13:])),
		C0:     buf[17],
		C1:     buf[18],
		C2:     buf[19],
		C3:     buf[20],
	}
}

func putFloat32(buf []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
}

func getFloat32(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

func putInt32(buf []byte, off int, v int32) {
	binary.LittleEndian.PutUint32(buf[off:], uint32(v))
}

func getInt32(buf []byte, off int) int32 {
	return int32(binary.LittleEndian.Uint32(buf[off:]))
}

// decode reads one command record starting at byte offset `off` of data.
// byteBlobs/floatBlobs resolve the out-of-band references described on
// [Stream].
func decode(data []byte, off int32, byteBlobs [][]byte, floatBlobs [][]float32) Command {
	buf := data[off:]
	hdr := readHeader(buf)
	payload := buf[headerSize:]

	switch hdr.Type {
	case TypeRectangle:
		r := &Rectangle{Hdr: hdr}
		p := 0
		for i := 0; i < 4; i++ {
			r.Outer[i] = Point{X: getFloat32(payload, p), Y: getFloat32(payload, p+4)}
			p += 8
		}
		for i := 0; i < 4; i++ {
			r.Inner[i] = Point{X: getFloat32(payload, p), Y: getFloat32(payload, p+4)}
			p += 8
		}
		r.Thickness = getInt32(payload, p)
		r.Interpolation = payload[p+4] != 0
		return r

	case TypeCircle:
		c := &Circle{Hdr: hdr}
		c.CX = getFloat32(payload, 0)
		c.CY = getFloat32(payload, 4)
		c.Radius = getFloat32(payload, 8)
		c.Thickness = getInt32(payload, 12)
		return c

	case TypeText:
		t := &Text{Hdr: hdr}
		t.TextLineSize = getInt32(payload, 0)
		t.ILocation = getInt32(payload, 4)
		return t

	case TypeSegment:
		s := &Segment{Hdr: hdr}
		blobIdx := getInt32(payload, 0)
		s.DSeg = floatBlobs[blobIdx]
		s.SegWidth = getInt32(payload, 4)
		s.SegHeight = getInt32(payload, 8)
		s.ScaleX = getFloat32(payload, 12)
		s.ScaleY = getFloat32(payload, 16)
		s.SegThreshold = getFloat32(payload, 20)
		return s

	case TypeRGBASource:
		s := &RGBASource{Hdr: hdr}
		s.CX = getInt32(payload, 0)
		s.CY = getInt32(payload, 4)
		s.Width = getInt32(payload, 8)
		s.Height = getInt32(payload, 12)
		blobIdx := getInt32(payload, 16)
		s.DSrc = byteBlobs[blobIdx]
		return s

	case TypeNV12Source:
		s := &NV12Source{Hdr: hdr}
		s.CX = getInt32(payload, 0)
		s.CY = getInt32(payload, 4)
		s.Width = getInt32(payload, 8)
		s.Height = getInt32(payload, 12)
		blob0 := getInt32(payload, 16)
		blob1 := getInt32(payload, 20)
		s.DSrc0 = byteBlobs[blob0]
		s.DSrc1 = byteBlobs[blob1]
		s.BlockLinear = payload[24] != 0
		s.KeyC0, s.KeyC1, s.KeyC2 = payload[25], payload[26], payload[27]
		return s

	case TypeBoxBlur:
		b := &BoxBlur{Hdr: hdr}
		b.KernelSize = getInt32(payload, 0)
		return b

	default:
		panic("command: unknown type tag " + hdr.Type.String())
	}
}
