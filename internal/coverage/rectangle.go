// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package coverage

import "github.com/gogpu/cuosd/command"

// msaaOffsets are the four 4x multisample sub-pixel offsets, per spec §4.1
// and the GLOSSARY's "MSAA 4x" entry.
var msaaOffsets = [4][2]float32{
	{-0.25, -0.25},
	{0.25, -0.25},
	{-0.25, 0.25},
	{0.25, 0.25},
}

// insideQuad reports whether point p lies inside the quadrilateral given by
// its four corners in winding order, using the left-handed cross-product
// convention from spec §4.1: P is inside iff the cross product of each
// edge vector with (P - edge_origin) is strictly negative on all edges.
func insideQuad(corners [4]command.Point, px, py float32) bool {
	for i := 0; i < 4; i++ {
		a := corners[i]
		b := corners[(i+1)%4]
		edgeX, edgeY := b.X-a.X, b.Y-a.Y
		toPX, toPY := px-a.X, py-a.Y
		cross := edgeX*toPY - edgeY*toPX
		if cross >= 0 {
			return false
		}
	}
	return true
}

// Rectangle evaluates coverage for r over one quad. Filled rectangles
// (Thickness == -1) test inside(outer); hollow ones additionally exclude
// inside(inner). When r.Interpolation is set, each pixel is supersampled at
// four offsets per spec §4.1.
func Rectangle(r *command.Rectangle, q Quad) [4]Contribution {
	var out [4]Contribution
	hollow := r.Thickness >= 0
	c0, c1, c2, c3 := r.Hdr.C0, r.Hdr.C1, r.Hdr.C2, r.Hdr.C3

	pixels := q.Pixels()
	for i, p := range pixels {
		px, py := float32(p[0]), float32(p[1])

		if !r.Interpolation {
			in := insideQuad(r.Outer, px+0.5, py+0.5)
			if in && hollow && insideQuad(r.Inner, px+0.5, py+0.5) {
				in = false
			}
			if in {
				out[i] = Contribution{Alpha: c3, R: c0, G: c1, B: c2}
			}
			continue
		}

		var hits int
		for _, off := range msaaOffsets {
			sx, sy := px+0.5+off[0], py+0.5+off[1]
			in := insideQuad(r.Outer, sx, sy)
			if in && hollow && insideQuad(r.Inner, sx, sy) {
				in = false
			}
			if in {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		alpha := uint8((int32(c3) * int32(hits)) / 4)
		out[i] = Contribution{Alpha: alpha, R: c0, G: c1, B: c2}
	}
	return out
}
