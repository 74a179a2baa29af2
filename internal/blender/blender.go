// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blender

import (
	"github.com/gogpu/cuosd/internal/accum"
	"github.com/gogpu/cuosd/internal/coverage"
	"github.com/gogpu/cuosd/surface"
)

// Commit blits acc into dst at the four pixels of q, per spec §4.7. If acc
// is fully transparent across the quad, Commit is a no-op (the composite
// kernel's "skip" branch). Off-surface pixels are silently skipped; a
// partially off-surface quad at an image edge commits whichever pixels are
// in range.
func Commit(dst surface.Surface, acc accum.Accumulator, q coverage.Quad) {
	if !acc.AnyOpaque() {
		return
	}

	switch s := dst.(type) {
	case surface.RGBLikeSurface:
		commitRGBLike(s, acc, q)
	case surface.NV12Surface:
		commitNV12(s, acc, q)
	}
}

func commitRGBLike(s surface.RGBLikeSurface, acc accum.Accumulator, q coverage.Quad) {
	for i, p := range q.Pixels() {
		fg := acc[i]
		if fg.A == 0 {
			continue
		}
		x, y := int(p[0]), int(p[1])
		if x < 0 || y < 0 || x >= s.Width() || y >= s.Height() {
			continue
		}
		dr, dg, db, da := s.ReadPixel(x, y)
		r, a := accum.SourceOver(dr, da, fg.R, fg.A)
		g, _ := accum.SourceOver(dg, da, fg.G, fg.A)
		b, _ := accum.SourceOver(db, da, fg.B, fg.A)
		s.WritePixel(x, y, r, g, b, a)
	}
}

// commitNV12 blends luma independently per pixel and chroma once per quad,
// per spec §4.7's NV12 path: luma uses the foreground R channel (proxy for
// Y); chroma is a coverage-weighted mean of the four foreground G (U) and
// B (V) channels — each weighted by its own pixel's alpha, so a pixel with
// zero coverage contributes nothing to the shared U,V — blended with the
// average of the four foreground alphas shifted right by 2 (i.e. divided
// by 4, unweighted, per spec §4.7's literal "average").
func commitNV12(s surface.NV12Surface, acc accum.Accumulator, q coverage.Quad) {
	pixels := q.Pixels()

	var sumU, sumV, sumA int32
	for i, p := range pixels {
		fg := acc[i]
		x, y := int(p[0]), int(p[1])
		if fg.A != 0 && x >= 0 && y >= 0 && x < s.Width() && y < s.Height() {
			dy := s.ReadLuma(x, y)
			newY, _ := accum.SourceOver(dy, 255, fg.R, fg.A)
			s.WriteLuma(x, y, newY)
		}
		sumU += int32(fg.G) * int32(fg.A)
		sumV += int32(fg.B) * int32(fg.A)
		sumA += int32(fg.A)
	}
	if sumA == 0 {
		return
	}

	avgU := uint8((sumU + sumA/2) / sumA)
	avgV := uint8((sumV + sumA/2) / sumA)
	avgA := uint8(sumA >> 2)

	// Find any in-range pixel to anchor the shared chroma write.
	for _, p := range pixels {
		x, y := int(p[0]), int(p[1])
		if x < 0 || y < 0 || x >= s.Width() || y >= s.Height() {
			continue
		}
		du, dv := s.ReadChroma(x, y)
		newU, _ := accum.SourceOver(du, 255, avgU, avgA)
		newV, _ := accum.SourceOver(dv, 255, avgV, avgA)
		s.WriteChroma(x, y, newU, newV)
		return
	}
}
