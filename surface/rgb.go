// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// RGBSurface is a pitch-linear, 3-byte-per-pixel destination with no alpha
// channel. Out-of-range reads return opaque black; out-of-range writes are
// silently ignored, matching the "the core does not validate" contract for
// caller-supplied geometry (bounding boxes are trusted to clip correctly,
// but a defensive bounds check here costs nothing on the read/write path).
type RGBSurface struct {
	Data   []byte
	Stride int // bytes per row
	W, H   int
}

// NewRGBSurface allocates a zeroed RGB surface with a tightly packed stride.
func NewRGBSurface(width, height int) *RGBSurface {
	return &RGBSurface{
		Data:   make([]byte, width*height*3),
		Stride: width * 3,
		W:      width,
		H:      height,
	}
}

func (s *RGBSurface) Width() int    { return s.W }
func (s *RGBSurface) Height() int   { return s.H }
func (s *RGBSurface) Format() Format { return RGB }

func (s *RGBSurface) ReadPixel(x, y int) (r, g, b, a uint8) {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return 0, 0, 0, 255
	}
	i := y*s.Stride + x*3
	return s.Data[i], s.Data[i+1], s.Data[i+2], 255
}

func (s *RGBSurface) WritePixel(x, y int, r, g, b, _ uint8) {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return
	}
	i := y*s.Stride + x*3
	s.Data[i], s.Data[i+1], s.Data[i+2] = r, g, b
}

var _ RGBLikeSurface = (*RGBSurface)(nil)

// RGBASurface is a pitch-linear, 4-byte-per-pixel destination that carries
// its own alpha channel, updated by the final blit the same way the color
// channels are (see internal/blender).
type RGBASurface struct {
	Data   []byte
	Stride int // bytes per row
	W, H   int
}

// NewRGBASurface allocates a zeroed RGBA surface with a tightly packed stride.
func NewRGBASurface(width, height int) *RGBASurface {
	return &RGBASurface{
		Data:   make([]byte, width*height*4),
		Stride: width * 4,
		W:      width,
		H:      height,
	}
}

func (s *RGBASurface) Width() int    { return s.W }
func (s *RGBASurface) Height() int   { return s.H }
func (s *RGBASurface) Format() Format { return RGBA }

func (s *RGBASurface) ReadPixel(x, y int) (r, g, b, a uint8) {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return 0, 0, 0, 0
	}
	i := y*s.Stride + x*4
	return s.Data[i], s.Data[i+1], s.Data[i+2], s.Data[i+3]
}

func (s *RGBASurface) WritePixel(x, y int, r, g, b, a uint8) {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return
	}
	i := y*s.Stride + x*4
	s.Data[i], s.Data[i+1], s.Data[i+2], s.Data[i+3] = r, g, b, a
}

var _ RGBLikeSurface = (*RGBASurface)(nil)
