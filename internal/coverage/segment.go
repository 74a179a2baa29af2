// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package coverage

import "github.com/gogpu/cuosd/command"

const segWeightBits = 11
const segWeightScale = 1 << segWeightBits // 2048

// binarize maps a mask float to the spec's two-valued contribution: 127 if
// it exceeds the threshold, else 0.
func binarize(v, threshold float32) int32 {
	if v > threshold {
		return 127
	}
	return 0
}

func segmentSample(s *command.Segment, sx, sy int32) int32 {
	if sx < 0 || sy < 0 || sx >= s.SegWidth || sy >= s.SegHeight {
		return 0
	}
	return binarize(s.DSeg[sy*s.SegWidth+sx], s.SegThreshold)
}

// Segment evaluates coverage for s over one quad: a fixed-point bilinear
// upsample of a binarized float mask, per spec §4.4. The result alpha is
// in 0..127 (the binarized domain), not 0..255 — it is premultiplied by
// the command's color when composited, same as any other primitive.
func Segment(s *command.Segment, q Quad) [4]Contribution {
	var out [4]Contribution
	c0, c1, c2 := s.Hdr.C0, s.Hdr.C1, s.Hdr.C2

	for i, p := range q.Pixels() {
		x, y := float32(p[0]), float32(p[1])
		srcX := (x+0.5)*s.ScaleX - 0.5
		srcY := (y+0.5)*s.ScaleY - 0.5

		x0 := int32(floorf(srcX))
		y0 := int32(floorf(srcY))
		x1, y1 := x0+1, y0+1

		fx := srcX - floorf(srcX)
		fy := srcY - floorf(srcY)

		wx1 := int32(fx*segWeightScale + 0.5)
		wy1 := int32(fy*segWeightScale + 0.5)
		wx0 := segWeightScale - wx1
		wy0 := segWeightScale - wy1

		v00 := segmentSample(s, x0, y0)
		v10 := segmentSample(s, x1, y0)
		v01 := segmentSample(s, x0, y1)
		v11 := segmentSample(s, x1, y1)

		sum := v00*wx0*wy0 + v10*wx1*wy0 + v01*wx0*wy1 + v11*wx1*wy1
		alpha := sum >> (2 * segWeightBits)

		if alpha <= 0 {
			continue
		}
		if alpha > 127 {
			alpha = 127
		}
		out[i] = Contribution{Alpha: uint8(alpha), R: c0, G: c1, B: c2}
	}
	return out
}

func floorf(v float32) float32 {
	i := int32(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return float32(i)
}
