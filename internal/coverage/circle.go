// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package coverage

import (
	"math"

	"github.com/gogpu/cuosd/command"
)

// Circle evaluates coverage for c over one quad: a filled disc
// (Thickness == -1) or an annulus, linearly ramped to zero over a 1-pixel
// transition at both the inner and outer radius, per spec §4.2.
//
// Per §9's open question (b), the 1-pixel ramp is applied unconditionally
// at the inner edge even for thin annuli (Thickness < 2), which can
// double-count coverage near the seam; this is retained for parity rather
// than special-cased away.
func Circle(c *command.Circle, q Quad) [4]Contribution {
	var out [4]Contribution

	inner, outer := float32(0), c.Radius
	if c.Thickness >= 0 {
		inner = c.Radius - float32(c.Thickness)/2
		outer = inner + float32(c.Thickness)
	}

	c0, c1, c2, c3 := c.Hdr.C0, c.Hdr.C1, c.Hdr.C2, c.Hdr.C3

	for i, p := range q.Pixels() {
		dx := float32(p[0]) - c.CX
		dy := float32(p[1]) - c.CY
		r := float32(math.Sqrt(float64(dx*dx + dy*dy)))

		var frac float32
		switch {
		case r < inner-1 || r >= outer+1:
			frac = 0
		case r < inner:
			frac = r - (inner - 1)
		case r < outer:
			frac = 1
		default:
			frac = (outer + 1) - r
		}
		if frac <= 0 {
			continue
		}
		if frac > 1 {
			frac = 1
		}

		alpha := uint8(float32(c3) * frac)
		if alpha == 0 {
			continue
		}
		out[i] = Contribution{Alpha: alpha, R: c0, G: c1, B: c2}
	}
	return out
}
