// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package coverage

import "github.com/gogpu/cuosd/command"

// RGBAStamp evaluates coverage for s over one quad: a nearest-sampled RGBA
// image pasted at (CX, CY) with no resampling and no colorspace
// conversion, per spec §4.5.
func RGBAStamp(s *command.RGBASource, q Quad) [4]Contribution {
	var out [4]Contribution

	for i, p := range q.Pixels() {
		x, y := p[0], p[1]
		lx, ly := x-s.CX, y-s.CY
		if lx < 0 || ly < 0 || lx >= s.Width || ly >= s.Height {
			continue
		}
		idx := (ly*s.Width + lx) * 4
		if idx < 0 || int(idx+3) >= len(s.DSrc) {
			continue
		}
		out[i] = Contribution{
			Alpha: s.DSrc[idx+3],
			R:     s.DSrc[idx],
			G:     s.DSrc[idx+1],
			B:     s.DSrc[idx+2],
		}
	}
	return out
}
