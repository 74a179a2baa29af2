// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blur

import (
	"context"
	"testing"

	"github.com/gogpu/cuosd/command"
	"github.com/gogpu/cuosd/surface"
)

// TestScenarioS5SolidColorIsUnchanged reproduces spec scenario S5: blurring
// a uniformly colored rectangle leaves it unchanged (mean of equal values).
func TestScenarioS5SolidColorIsUnchanged(t *testing.T) {
	s := surface.NewRGBASurface(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			s.WritePixel(x, y, 100, 150, 200, 255)
		}
	}

	e := command.NewEncoder()
	e.AddBoxBlur(command.Header{Left: 0, Top: 0, Right: 15, Bottom: 15}, 3)
	stream := e.Build()

	if err := Launch(context.Background(), s, stream, nil); err != nil {
		t.Fatalf("Launch() = %v", err)
	}

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			r, g, b, a := s.ReadPixel(x, y)
			if r != 100 || g != 150 || b != 200 || a != 255 {
				t.Fatalf("(%d,%d) = (%d,%d,%d,%d), want (100,150,200,255)", x, y, r, g, b, a)
			}
		}
	}
}

func TestBlurSkipsWhenNoBoxBlurCommands(t *testing.T) {
	s := surface.NewRGBASurface(4, 4)
	s.WritePixel(0, 0, 1, 2, 3, 4)

	e := command.NewEncoder()
	e.AddCircle(command.Header{}, 0, 0, 1, -1)
	stream := e.Build()

	if err := Launch(context.Background(), s, stream, nil); err != nil {
		t.Fatalf("Launch() = %v", err)
	}
	r, g, b, a := s.ReadPixel(0, 0)
	if r != 1 || g != 2 || b != 3 || a != 4 {
		t.Fatalf("surface modified despite no BoxBlur command: got (%d,%d,%d,%d)", r, g, b, a)
	}
}

// TestKernelSizeOneIsIdempotentWithinTolerance covers invariant 7: with
// kernel_size=1 each output sample is the mean of a single tile cell, so
// running the blur again changes every sample by no more than the
// tile-resample rounding error.
func TestKernelSizeOneIsIdempotentWithinTolerance(t *testing.T) {
	const tolerance = 2

	s := surface.NewRGBASurface(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			v := uint8((x*7 + y*13) % 256)
			s.WritePixel(x, y, v, v, v, 255)
		}
	}

	e := command.NewEncoder()
	e.AddBoxBlur(command.Header{Left: 0, Top: 0, Right: 15, Bottom: 15}, 1)
	stream := e.Build()

	if err := Launch(context.Background(), s, stream, nil); err != nil {
		t.Fatalf("Launch() = %v", err)
	}

	once := make([][3]uint8, 16*16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			r, g, b, _ := s.ReadPixel(x, y)
			once[y*16+x] = [3]uint8{r, g, b}
		}
	}

	if err := Launch(context.Background(), s, stream, nil); err != nil {
		t.Fatalf("second Launch() = %v", err)
	}

	diff := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			r, g, b, _ := s.ReadPixel(x, y)
			want := once[y*16+x]
			if diff(r, want[0]) > tolerance || diff(g, want[1]) > tolerance || diff(b, want[2]) > tolerance {
				t.Fatalf("(%d,%d) drifted beyond tolerance: %v -> (%d,%d,%d)", x, y, want, r, g, b)
			}
		}
	}
}

func TestBlurNV12RoundTripsThroughYUV(t *testing.T) {
	s := surface.NewBlockLinearNV12Surface(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			s.WriteLuma(x, y, 128)
		}
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x += 2 {
			s.WriteChroma(x, y*2, 128, 128)
		}
	}

	e := command.NewEncoder()
	e.AddBoxBlur(command.Header{Left: 0, Top: 0, Right: 7, Bottom: 7}, 3)
	stream := e.Build()

	if err := Launch(context.Background(), s, stream, nil); err != nil {
		t.Fatalf("Launch() = %v", err)
	}

	if got := s.ReadLuma(3, 3); got < 120 || got > 136 {
		t.Errorf("luma(3,3) = %d, want ~128 after blur round-trip", got)
	}
}
