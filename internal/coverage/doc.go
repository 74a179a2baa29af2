// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package coverage evaluates per-pixel coverage alpha (and, where the
// primitive carries its own color, a foreground RGB) for one 2x2 pixel
// quad, one primitive type at a time. Each evaluator is pure: given a
// command and a quad origin, it returns up to four (alpha, r, g, b)
// contributions, one per pixel of the quad, leaving blending to
// internal/accum.
package coverage

// Quad identifies the four destination pixels a coverage evaluator is
// asked about, by their integer top-left origin. Pixel order is fixed:
// (ix,iy), (ix+1,iy), (ix,iy+1), (ix+1,iy+1).
type Quad struct {
	X, Y int32
}

// Pixels returns the four pixel coordinates of the quad in the fixed order
// coverage evaluators and the accumulator agree on.
func (q Quad) Pixels() [4][2]int32 {
	return [4][2]int32{
		{q.X, q.Y},
		{q.X + 1, q.Y},
		{q.X, q.Y + 1},
		{q.X + 1, q.Y + 1},
	}
}

// Contribution is one primitive's coverage result for a single pixel: an
// 8-bit alpha and, when the primitive supplies its own RGB (text, segment,
// stamps use the command's default color or their own sampled color), the
// foreground color to blend at that alpha.
type Contribution struct {
	Alpha   uint8
	R, G, B uint8
}
