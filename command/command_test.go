// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package command

import "testing"

func baseHeader() Header {
	return Header{Left: 1, Top: 2, Right: 10, Bottom: 20, C0: 255, C1: 0, C2: 0, C3: 255}
}

func TestEncodeDecodeRectangle(t *testing.T) {
	e := NewEncoder()
	outer := [4]Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	inner := [4]Point{{1, 1}, {9, 1}, {9, 9}, {1, 9}}
	idx := e.AddRectangle(baseHeader(), outer, inner, 2, true)
	s := e.Build()

	cmd := s.Command(idx)
	r, ok := cmd.(*Rectangle)
	if !ok {
		t.Fatalf("got %T, want *Rectangle", cmd)
	}
	if r.Outer != outer || r.Inner != inner {
		t.Fatalf("corners mismatch: got outer=%v inner=%v", r.Outer, r.Inner)
	}
	if r.Thickness != 2 || !r.Interpolation {
		t.Fatalf("got thickness=%d interpolation=%v, want 2 true", r.Thickness, r.Interpolation)
	}
	want := baseHeader()
	want.Type = TypeRectangle
	if r.Hdr != want {
		t.Fatalf("header mismatch: got %+v want %+v", r.Hdr, want)
	}
}

func TestEncodeDecodeCircle(t *testing.T) {
	e := NewEncoder()
	idx := e.AddCircle(baseHeader(), 5.5, 6.5, 3.25, -1)
	s := e.Build()

	c, ok := s.Command(idx).(*Circle)
	if !ok {
		t.Fatalf("got %T, want *Circle", s.Command(idx))
	}
	if c.CX != 5.5 || c.CY != 6.5 || c.Radius != 3.25 || c.Thickness != -1 {
		t.Fatalf("got %+v", c)
	}
}

func TestEncodeDecodeText(t *testing.T) {
	e := NewEncoder()
	locs := []TextLocation{
		{ImageX: 1, ImageY: 2, TextX: 0, TextW: 8, TextH: 12},
		{ImageX: 9, ImageY: 2, TextX: 8, TextW: 8, TextH: 12},
	}
	idx := e.AddText(baseHeader(), locs)
	s := e.Build()

	tc, ok := s.Command(idx).(*Text)
	if !ok {
		t.Fatalf("got %T, want *Text", s.Command(idx))
	}
	if tc.TextLineSize != 2 {
		t.Fatalf("TextLineSize = %d, want 2", tc.TextLineSize)
	}
	got := s.TextRange(tc.ILocation)
	if len(got) != 2 || got[0] != locs[0] || got[1] != locs[1] {
		t.Fatalf("TextRange = %+v, want %+v", got, locs)
	}
}

func TestEncodeDecodeTextLineCounterAdvancesWhenCulled(t *testing.T) {
	e := NewEncoder()
	// Two text commands in a row, simulating one that would be AABB-culled
	// by the caller; the encoder still advances the line directory for both.
	idx1 := e.AddText(baseHeader(), []TextLocation{{ImageX: 0, ImageY: 0, TextW: 1, TextH: 1}})
	idx2 := e.AddText(baseHeader(), []TextLocation{{ImageX: 5, ImageY: 5, TextW: 1, TextH: 1}})
	s := e.Build()

	t1 := s.Command(idx1).(*Text)
	t2 := s.Command(idx2).(*Text)
	if t1.ILocation == t2.ILocation {
		t.Fatalf("expected distinct ILocation values, got %d and %d", t1.ILocation, t2.ILocation)
	}
	if len(s.TextRange(t1.ILocation)) != 1 || len(s.TextRange(t2.ILocation)) != 1 {
		t.Fatalf("expected one location per line")
	}
}

func TestEncodeDecodeSegment(t *testing.T) {
	e := NewEncoder()
	mask := []float32{0.1, 0.9, 0.2, 0.8}
	idx := e.AddSegment(baseHeader(), mask, 2, 2, 1.5, 2.5, 0.5)
	s := e.Build()

	seg, ok := s.Command(idx).(*Segment)
	if !ok {
		t.Fatalf("got %T, want *Segment", s.Command(idx))
	}
	if seg.SegWidth != 2 || seg.SegHeight != 2 || seg.ScaleX != 1.5 || seg.ScaleY != 2.5 || seg.SegThreshold != 0.5 {
		t.Fatalf("got %+v", seg)
	}
	for i := range mask {
		if seg.DSeg[i] != mask[i] {
			t.Fatalf("DSeg[%d] = %v, want %v", i, seg.DSeg[i], mask[i])
		}
	}
}

func TestEncodeDecodeRGBASource(t *testing.T) {
	e := NewEncoder()
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	idx := e.AddRGBASource(baseHeader(), 10, 20, 2, 1, src)
	s := e.Build()

	rs, ok := s.Command(idx).(*RGBASource)
	if !ok {
		t.Fatalf("got %T, want *RGBASource", s.Command(idx))
	}
	if rs.CX != 10 || rs.CY != 20 || rs.Width != 2 || rs.Height != 1 {
		t.Fatalf("got %+v", rs)
	}
	if len(rs.DSrc) != len(src) {
		t.Fatalf("DSrc len = %d, want %d", len(rs.DSrc), len(src))
	}
}

func TestEncodeDecodeNV12Source(t *testing.T) {
	e := NewEncoder()
	luma := []byte{10, 20, 30, 40}
	chroma := []byte{128, 128}
	idx := e.AddNV12Source(baseHeader(), 0, 0, 2, 2, luma, chroma, true, 16, 128, 128)
	s := e.Build()

	ns, ok := s.Command(idx).(*NV12Source)
	if !ok {
		t.Fatalf("got %T, want *NV12Source", s.Command(idx))
	}
	if !ns.BlockLinear {
		t.Fatal("BlockLinear = false, want true")
	}
	if ns.KeyC0 != 16 || ns.KeyC1 != 128 || ns.KeyC2 != 128 {
		t.Fatalf("got key=(%d,%d,%d)", ns.KeyC0, ns.KeyC1, ns.KeyC2)
	}
	if len(ns.DSrc0) != len(luma) || len(ns.DSrc1) != len(chroma) {
		t.Fatalf("blob lengths = (%d,%d), want (%d,%d)", len(ns.DSrc0), len(ns.DSrc1), len(luma), len(chroma))
	}
}

func TestEncodeDecodeBoxBlur(t *testing.T) {
	e := NewEncoder()
	idx := e.AddBoxBlur(baseHeader(), 15)
	s := e.Build()

	bb, ok := s.Command(idx).(*BoxBlur)
	if !ok {
		t.Fatalf("got %T, want *BoxBlur", s.Command(idx))
	}
	if bb.KernelSize != 15 {
		t.Fatalf("KernelSize = %d, want 15", bb.KernelSize)
	}
}

func TestStreamNumCommands(t *testing.T) {
	e := NewEncoder()
	e.AddCircle(baseHeader(), 1, 1, 1, -1)
	e.AddCircle(baseHeader(), 2, 2, 2, -1)
	s := e.Build()
	if s.NumCommands() != 2 {
		t.Fatalf("NumCommands() = %d, want 2", s.NumCommands())
	}
}

func TestTypeString(t *testing.T) {
	if TypeRectangle.String() != "Rectangle" {
		t.Fatalf("got %q", TypeRectangle.String())
	}
	if Type(200).String() != "Unknown" {
		t.Fatalf("got %q", Type(200).String())
	}
}
