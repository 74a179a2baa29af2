// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compositor

import (
	"context"
	"testing"

	"github.com/gogpu/cuosd/command"
	"github.com/gogpu/cuosd/surface"
)

// TestScenarioS1FilledRectangleOverOpaqueBackground reproduces spec
// scenario S1.
func TestScenarioS1FilledRectangleOverOpaqueBackground(t *testing.T) {
	s := surface.NewRGBASurface(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			s.WritePixel(x, y, 0, 0, 0, 255)
		}
	}

	e := command.NewEncoder()
	e.AddRectangle(
		command.Header{Left: 4, Top: 4, Right: 11, Bottom: 11, C0: 255, C3: 128},
		[4]command.Point{{X: 4, Y: 4}, {X: 4, Y: 12}, {X: 12, Y: 12}, {X: 12, Y: 4}},
		[4]command.Point{},
		-1, false,
	)
	stream := e.Build()

	if err := Launch(context.Background(), s, stream, nil, nil); err != nil {
		t.Fatalf("Launch() = %v", err)
	}

	r, g, b, a := s.ReadPixel(8, 8)
	if a != 254 {
		t.Errorf("inside pixel alpha = %d, want 254", a)
	}
	if r < 126 || r > 130 || g != 0 || b != 0 {
		t.Errorf("inside pixel rgb = (%d,%d,%d), want ~(128,0,0)", r, g, b)
	}

	r, g, b, a = s.ReadPixel(0, 0)
	if r != 0 || g != 0 || b != 0 || a != 255 {
		t.Errorf("outside pixel = (%d,%d,%d,%d), want (0,0,0,255)", r, g, b, a)
	}
}

// TestScenarioS3PaintersAlgorithm reproduces spec scenario S3: two
// overlapping opaque rectangles, later command wins at the intersection.
func TestScenarioS3PaintersAlgorithm(t *testing.T) {
	s := surface.NewRGBASurface(20, 20)

	e := command.NewEncoder()
	e.AddRectangle(
		command.Header{Left: 0, Top: 0, Right: 9, Bottom: 9, C2: 255, C3: 255},
		[4]command.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}},
		[4]command.Point{}, -1, false,
	)
	e.AddRectangle(
		command.Header{Left: 5, Top: 5, Right: 14, Bottom: 14, C0: 255, C3: 255},
		[4]command.Point{{X: 5, Y: 5}, {X: 5, Y: 15}, {X: 15, Y: 15}, {X: 15, Y: 5}},
		[4]command.Point{}, -1, false,
	)
	stream := e.Build()

	if err := Launch(context.Background(), s, stream, nil, nil); err != nil {
		t.Fatalf("Launch() = %v", err)
	}

	r, _, b, _ := s.ReadPixel(7, 7)
	if r != 255 || b != 0 {
		t.Errorf("intersection = (%d,_,%d,_), want red (255,_,0,_)", r, b)
	}
}

// TestTextLineCounterAdvancesAcrossCulledCommands verifies the spec's
// single subtle correctness trap: a culled text command must still
// advance the running line counter so later text commands read the right
// glyph range.
func TestTextLineCounterAdvancesAcrossCulledCommands(t *testing.T) {
	s := surface.NewRGBASurface(32, 32)

	e := command.NewEncoder()
	// First text command is far off-surface; it will be culled for every
	// quad we check, but must still consume a line-location slot.
	e.AddText(
		command.Header{Left: 1000, Top: 1000, Right: 1008, Bottom: 1008, C3: 255},
		[]command.TextLocation{{ImageX: 1000, ImageY: 1000, TextX: 0, TextW: 8, TextH: 8}},
	)
	// Second text command is visible at the origin and must sample the
	// SECOND glyph location, not the first.
	e.AddText(
		command.Header{Left: 0, Top: 0, Right: 7, Bottom: 7, C0: 9, C1: 9, C2: 9, C3: 255},
		[]command.TextLocation{{ImageX: 0, ImageY: 0, TextX: 8, TextW: 8, TextH: 8}},
	)
	stream := e.Build()
	stream.Glyphs = command.Atlas{
		Data:          make([]byte, 16*8),
		AtlasRowWidth: 16,
	}
	// Second glyph's column (TextX=8) carries coverage 200; first
	// glyph's column (TextX=0) stays zero.
	for row := 0; row < 8; row++ {
		stream.Glyphs.Data[row*16+8] = 200
	}

	if err := Launch(context.Background(), s, stream, nil, nil); err != nil {
		t.Fatalf("Launch() = %v", err)
	}

	_, _, _, a := s.ReadPixel(0, 0)
	if a != 200 {
		t.Errorf("alpha at (0,0) = %d, want 200 (second glyph's coverage)", a)
	}
}

func TestEmptyCommandListIsIdentity(t *testing.T) {
	s := surface.NewRGBASurface(4, 4)
	s.WritePixel(1, 1, 5, 6, 7, 8)

	stream := command.NewEncoder().Build()
	if err := Launch(context.Background(), s, stream, nil, nil); err != nil {
		t.Fatalf("Launch() = %v", err)
	}

	r, g, b, a := s.ReadPixel(1, 1)
	if r != 5 || g != 6 || b != 7 || a != 8 {
		t.Errorf("surface changed on empty command list: got (%d,%d,%d,%d)", r, g, b, a)
	}
}
