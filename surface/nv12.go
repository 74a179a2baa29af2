// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// bytePlane is a [BlockLinearPlane] backed by a plain byte slice, used both
// by [NewBlockLinearPlane] (for tests and the CPU reference backend, which
// has no real GPU surface object to hand it) and as the model for what a
// GPU accelerator's block-linear handle must behave like.
type bytePlane struct {
	data       []byte
	w, h       int
	rowPadding int // not applied: Read and Write index tightly packed rows of width w
}

// NewBlockLinearPlane creates a CPU-backed stand-in for an opaque
// block-linear GPU surface handle of the given pixel dimensions.
func NewBlockLinearPlane(width, height int) BlockLinearPlane {
	return &bytePlane{data: make([]byte, width*height), w: width, h: height}
}

func (p *bytePlane) Read(x, y int) uint8 {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return 0
	}
	return p.data[y*p.w+x]
}

func (p *bytePlane) Write(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return
	}
	p.data[y*p.w+x] = v
}

// BlockLinearNV12Surface is an NV12 destination whose luma and interleaved
// chroma planes are opaque GPU-surface handles rather than byte pointers.
// Coordinates are pixel indices; chroma lives at (x, y/2) with U at even x
// and V at x+1, one sample shared by each destination 2x2 quad.
type BlockLinearNV12Surface struct {
	Luma   BlockLinearPlane
	Chroma BlockLinearPlane // interleaved U,V: width = surface width, rows = height/2
	W, H   int
}

// NewBlockLinearNV12Surface allocates CPU-backed planes for width x height.
func NewBlockLinearNV12Surface(width, height int) *BlockLinearNV12Surface {
	return &BlockLinearNV12Surface{
		Luma:   NewBlockLinearPlane(width, height),
		Chroma: NewBlockLinearPlane(width, (height+1)/2),
		W:      width,
		H:      height,
	}
}

func (s *BlockLinearNV12Surface) Width() int    { return s.W }
func (s *BlockLinearNV12Surface) Height() int   { return s.H }
func (s *BlockLinearNV12Surface) Format() Format { return BlockLinearNV12 }

func (s *BlockLinearNV12Surface) ReadLuma(x, y int) uint8 { return s.Luma.Read(x, y) }

func (s *BlockLinearNV12Surface) WriteLuma(x, y int, v uint8) { s.Luma.Write(x, y, v) }

func (s *BlockLinearNV12Surface) ReadChroma(x, y int) (u, v uint8) {
	cx := x &^ 1
	cy := y / 2
	return s.Chroma.Read(cx, cy), s.Chroma.Read(cx+1, cy)
}

func (s *BlockLinearNV12Surface) WriteChroma(x, y int, u, v uint8) {
	cx := x &^ 1
	cy := y / 2
	s.Chroma.Write(cx, cy, u)
	s.Chroma.Write(cx+1, cy, v)
}

var _ NV12Surface = (*BlockLinearNV12Surface)(nil)

// PitchLinearNV12Surface is an NV12 destination whose luma and interleaved
// chroma planes are plain byte buffers, each addressed by its own stride
// since chroma rows may be padded independently of luma rows.
type PitchLinearNV12Surface struct {
	LumaData     []byte
	LumaStride   int
	ChromaData   []byte
	ChromaStride int
	W, H         int
}

// NewPitchLinearNV12Surface allocates tightly packed planes for width x height.
func NewPitchLinearNV12Surface(width, height int) *PitchLinearNV12Surface {
	chromaH := (height + 1) / 2
	return &PitchLinearNV12Surface{
		LumaData:     make([]byte, width*height),
		LumaStride:   width,
		ChromaData:   make([]byte, width*chromaH),
		ChromaStride: width,
		W:            width,
		H:            height,
	}
}

func (s *PitchLinearNV12Surface) Width() int    { return s.W }
func (s *PitchLinearNV12Surface) Height() int   { return s.H }
func (s *PitchLinearNV12Surface) Format() Format { return PitchLinearNV12 }

func (s *PitchLinearNV12Surface) ReadLuma(x, y int) uint8 {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return 0
	}
	return s.LumaData[y*s.LumaStride+x]
}

func (s *PitchLinearNV12Surface) WriteLuma(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return
	}
	s.LumaData[y*s.LumaStride+x] = v
}

func (s *PitchLinearNV12Surface) ReadChroma(x, y int) (u, v uint8) {
	cx := x &^ 1
	cy := y / 2
	i := cy*s.ChromaStride + cx
	if cx < 0 || cy < 0 || cx+1 >= s.ChromaStride || i+1 >= len(s.ChromaData) {
		return 0, 0
	}
	return s.ChromaData[i], s.ChromaData[i+1]
}

func (s *PitchLinearNV12Surface) WriteChroma(x, y int, u, v uint8) {
	cx := x &^ 1
	cy := y / 2
	i := cy*s.ChromaStride + cx
	if cx < 0 || cy < 0 || cx+1 >= s.ChromaStride || i+1 >= len(s.ChromaData) {
		return
	}
	s.ChromaData[i], s.ChromaData[i+1] = u, v
}

var _ NV12Surface = (*PitchLinearNV12Surface)(nil)
