// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package coverage

import "github.com/gogpu/cuosd/command"

// NV12Stamp evaluates coverage for s over one quad: luma is sampled at
// full resolution, chroma at (x, y/2), per spec §4.5. The foreground RGB
// stores the raw YUV triple (R<-Y, G<-U, B<-V) without conversion — see
// spec §9's "NV12 RGB stamp semantics" note; the blender interprets these
// channels as YUV when writing an NV12 destination. A pixel whose (Y,U,V)
// exactly equals the chroma key is made transparent; otherwise alpha is
// the command's opaque output alpha (Hdr.C3).
func NV12Stamp(s *command.NV12Source, q Quad) [4]Contribution {
	var out [4]Contribution

	for i, p := range q.Pixels() {
		x, y := p[0], p[1]
		lx, ly := x-s.CX, y-s.CY
		if lx < 0 || ly < 0 || lx >= s.Width || ly >= s.Height {
			continue
		}

		lumaIdx := ly*s.Width + lx
		if int(lumaIdx) >= len(s.DSrc0) {
			continue
		}
		yy := s.DSrc0[lumaIdx]

		chromaRow := ly / 2
		chromaCol := (lx / 2) * 2
		chromaIdx := chromaRow*s.Width + chromaCol
		if chromaIdx < 0 || int(chromaIdx+1) >= len(s.DSrc1) {
			continue
		}
		u := s.DSrc1[chromaIdx]
		v := s.DSrc1[chromaIdx+1]

		if yy == s.KeyC0 && u == s.KeyC1 && v == s.KeyC2 {
			continue
		}
		out[i] = Contribution{Alpha: s.Hdr.C3, R: yy, G: u, B: v}
	}
	return out
}
