// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package coverage

import "github.com/gogpu/cuosd/command"

// Text evaluates coverage for t over one quad, sampling locs — the
// [begin,end) glyph run the text command references — against atlas. A
// pixel covered by one glyph's rectangle short-circuits the remaining
// glyphs on the line, per spec §4.3.
func Text(t *command.Text, locs []command.TextLocation, atlas command.Atlas, q Quad) [4]Contribution {
	var out [4]Contribution
	c0, c1, c2, c3 := t.Hdr.C0, t.Hdr.C1, t.Hdr.C2, t.Hdr.C3

	for i, p := range q.Pixels() {
		ix, iy := p[0], p[1]
		for _, loc := range locs {
			if ix < loc.ImageX || ix >= loc.ImageX+loc.TextW {
				continue
			}
			if iy < loc.ImageY || iy >= loc.ImageY+loc.TextH {
				continue
			}
			fx := ix - loc.ImageX
			fy := iy - loc.ImageY
			idx := fy*atlas.AtlasRowWidth + (fx + loc.TextX)
			if idx < 0 || int(idx) >= len(atlas.Data) {
				break
			}
			cov := atlas.Data[idx]
			alpha := uint8(uint32(cov) * uint32(c3) / 255)
			if alpha != 0 {
				out[i] = Contribution{Alpha: alpha, R: c0, G: c1, B: c2}
			}
			break
		}
	}
	return out
}
