// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compositor

import (
	"context"
	"testing"

	"github.com/gogpu/cuosd/command"
	"github.com/gogpu/cuosd/surface"
)

// TestLocalityPixelsOutsideUnionAABBUnchanged covers invariant 2: pixels
// strictly outside the union of every command's bounding box are
// untouched.
func TestLocalityPixelsOutsideUnionAABBUnchanged(t *testing.T) {
	s := surface.NewRGBASurface(32, 32)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			s.WritePixel(x, y, 11, 22, 33, 44)
		}
	}

	e := command.NewEncoder()
	e.AddRectangle(
		command.Header{Left: 4, Top: 4, Right: 9, Bottom: 9, C0: 255, C3: 255},
		[4]command.Point{{X: 4, Y: 4}, {X: 4, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 4}},
		[4]command.Point{}, -1, false,
	)
	stream := e.Build()

	if err := Launch(context.Background(), s, stream, nil, nil); err != nil {
		t.Fatalf("Launch() = %v", err)
	}

	r, g, b, a := s.ReadPixel(20, 20)
	if r != 11 || g != 22 || b != 33 || a != 44 {
		t.Errorf("pixel outside union AABB changed: got (%d,%d,%d,%d)", r, g, b, a)
	}
}

// TestOrderingDisjointCommandsCommute covers invariant 3: swapping two
// commands whose bounding boxes are disjoint produces identical output.
func TestOrderingDisjointCommandsCommute(t *testing.T) {
	run := func(first, second [3]int32) *surface.RGBASurface {
		s := surface.NewRGBASurface(20, 20)
		e := command.NewEncoder()
		add := func(left, top int32, c0, c3 uint8) {
			e.AddRectangle(
				command.Header{Left: left, Top: top, Right: left + 3, Bottom: top + 3, C0: c0, C3: c3},
				[4]command.Point{
					{X: float32(left), Y: float32(top)},
					{X: float32(left), Y: float32(top + 4)},
					{X: float32(left + 4), Y: float32(top + 4)},
					{X: float32(left + 4), Y: float32(top)},
				},
				[4]command.Point{}, -1, false,
			)
		}
		add(first[0], first[1], uint8(first[2]), 255)
		add(second[0], second[1], uint8(second[2]), 255)
		stream := e.Build()
		if err := Launch(context.Background(), s, stream, nil, nil); err != nil {
			t.Fatalf("Launch() = %v", err)
		}
		return s
	}

	a := run([3]int32{0, 0, 255}, [3]int32{15, 15, 128})
	b := run([3]int32{15, 15, 128}, [3]int32{0, 0, 255})

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			ar, ag, ab, aa := a.ReadPixel(x, y)
			br, bg, bb, ba := b.ReadPixel(x, y)
			if ar != br || ag != bg || ab != bb || aa != ba {
				t.Fatalf("pixel (%d,%d) differs by command order: %v vs %v", x, y, [4]uint8{ar, ag, ab, aa}, [4]uint8{br, bg, bb, ba})
			}
		}
	}
}

// TestAlphaSaturationZeroIsNoop covers the alpha==0 half of invariant 5.
func TestAlphaSaturationZeroIsNoop(t *testing.T) {
	s := surface.NewRGBASurface(8, 8)
	s.WritePixel(3, 3, 9, 8, 7, 200)

	e := command.NewEncoder()
	e.AddRectangle(
		command.Header{Left: 0, Top: 0, Right: 7, Bottom: 7, C0: 255, C3: 0},
		[4]command.Point{{X: 0, Y: 0}, {X: 0, Y: 8}, {X: 8, Y: 8}, {X: 8, Y: 0}},
		[4]command.Point{}, -1, false,
	)
	stream := e.Build()
	if err := Launch(context.Background(), s, stream, nil, nil); err != nil {
		t.Fatalf("Launch() = %v", err)
	}

	r, g, b, a := s.ReadPixel(3, 3)
	if r != 9 || g != 8 || b != 7 || a != 200 {
		t.Errorf("alpha=0 composite changed destination: got (%d,%d,%d,%d)", r, g, b, a)
	}
}

// TestAlphaSaturationFullIsExactReplace covers the alpha==255 half of
// invariant 5.
func TestAlphaSaturationFullIsExactReplace(t *testing.T) {
	s := surface.NewRGBASurface(8, 8)
	s.WritePixel(3, 3, 9, 8, 7, 200)

	e := command.NewEncoder()
	e.AddRectangle(
		command.Header{Left: 0, Top: 0, Right: 7, Bottom: 7, C0: 10, C1: 20, C2: 30, C3: 255},
		[4]command.Point{{X: 0, Y: 0}, {X: 0, Y: 8}, {X: 8, Y: 8}, {X: 8, Y: 0}},
		[4]command.Point{}, -1, false,
	)
	stream := e.Build()
	if err := Launch(context.Background(), s, stream, nil, nil); err != nil {
		t.Fatalf("Launch() = %v", err)
	}

	r, g, b, a := s.ReadPixel(3, 3)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Errorf("alpha=255 composite = (%d,%d,%d,%d), want exact (10,20,30,255)", r, g, b, a)
	}
}

// TestNV12PreservationEmptyCommandList covers invariant 6.
func TestNV12PreservationEmptyCommandList(t *testing.T) {
	s := surface.NewBlockLinearNV12Surface(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			s.WriteLuma(x, y, 77)
		}
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x += 2 {
			s.WriteChroma(x, y*2, 111, 222)
		}
	}

	stream := command.NewEncoder().Build()
	if err := Launch(context.Background(), s, stream, nil, nil); err != nil {
		t.Fatalf("Launch() = %v", err)
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := s.ReadLuma(x, y); got != 77 {
				t.Fatalf("luma(%d,%d) = %d, want 77", x, y, got)
			}
		}
	}
	u, v := s.ReadChroma(0, 0)
	if u != 111 || v != 222 {
		t.Fatalf("chroma(0,0) = (%d,%d), want (111,222)", u, v)
	}
}

// TestScenarioS2CircleRamp reproduces spec scenario S2: the circle's
// interior is opaque, its exterior transparent, and the ring in between
// ramps linearly.
func TestScenarioS2CircleRamp(t *testing.T) {
	s := surface.NewRGBASurface(20, 20)

	e := command.NewEncoder()
	e.AddCircle(command.Header{Left: 4, Top: 4, Right: 16, Bottom: 16, C3: 255}, 10, 10, 5, -1)
	stream := e.Build()
	if err := Launch(context.Background(), s, stream, nil, nil); err != nil {
		t.Fatalf("Launch() = %v", err)
	}

	_, _, _, aIn := s.ReadPixel(10, 10) // r=0
	if aIn != 255 {
		t.Errorf("interior alpha = %d, want 255", aIn)
	}
	_, _, _, aOut := s.ReadPixel(10, 2) // r=8, well outside
	if aOut != 0 {
		t.Errorf("exterior alpha = %d, want 0", aOut)
	}
}

// TestScenarioS4TextExactAlpha reproduces spec scenario S4: destination
// alpha at a glyph pixel matches the atlas coverage byte exactly when the
// command's own alpha is 255 and the destination starts opaque black.
func TestScenarioS4TextExactAlpha(t *testing.T) {
	s := surface.NewRGBASurface(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			s.WritePixel(x, y, 0, 0, 0, 255)
		}
	}

	e := command.NewEncoder()
	e.AddText(
		command.Header{Left: 0, Top: 0, Right: 3, Bottom: 3, C0: 50, C1: 60, C2: 70, C3: 255},
		[]command.TextLocation{{ImageX: 0, ImageY: 0, TextX: 0, TextW: 4, TextH: 4}},
	)
	stream := e.Build()
	stream.Glyphs = command.Atlas{Data: make([]byte, 4*4), AtlasRowWidth: 4}
	for i := range stream.Glyphs.Data {
		stream.Glyphs.Data[i] = 200
	}

	if err := Launch(context.Background(), s, stream, nil, nil); err != nil {
		t.Fatalf("Launch() = %v", err)
	}

	r, g, b, a := s.ReadPixel(1, 1)
	wantR, wantG, wantB := uint8(50*200/255), uint8(60*200/255), uint8(70*200/255)
	if a != 200 {
		t.Errorf("destination alpha = %d, want 200", a)
	}
	if r != wantR || g != wantG || b != wantB {
		t.Errorf("destination rgb = (%d,%d,%d), want (%d,%d,%d)", r, g, b, wantR, wantG, wantB)
	}
}

// TestScenarioS6RGBAStampAveragesChromaOnNV12 reproduces spec scenario S6
// end-to-end through Launch: stamping an opaque RGBASource onto an NV12
// block-linear destination writes each contribution's first channel to luma
// and the average of the quad's second and third channels to the shared
// (U, V) sample, with no RGB-to-YUV conversion.
func TestScenarioS6RGBAStampAveragesChromaOnNV12(t *testing.T) {
	s := surface.NewBlockLinearNV12Surface(4, 4)

	e := command.NewEncoder()
	e.AddRGBASource(
		command.Header{Left: 0, Top: 0, Right: 3, Bottom: 3, C3: 255},
		0, 0, 4, 4,
		repeatPixel(100, 200, 50, 255, 16),
	)
	stream := e.Build()

	if err := Launch(context.Background(), s, stream, nil, nil); err != nil {
		t.Fatalf("Launch() = %v", err)
	}

	u, v := s.ReadChroma(0, 0)
	if u != 200 || v != 50 {
		t.Errorf("chroma(0,0) = (%d,%d), want (200,50)", u, v)
	}
	if y := s.ReadLuma(0, 0); y != 100 {
		t.Errorf("luma(0,0) = %d, want 100", y)
	}
}

func repeatPixel(r, g, b, a uint8, count int) []byte {
	buf := make([]byte, 0, count*4)
	for i := 0; i < count; i++ {
		buf = append(buf, r, g, b, a)
	}
	return buf
}
