// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package accum

// Pixel is one accumulator slot's current (R,G,B,A).
type Pixel struct {
	R, G, B, A uint8
}

// Accumulator is the quad's 4-pixel scratch register, starting fully
// transparent per spec §3 ("w = 0 on all four pixels").
type Accumulator [4]Pixel

// New returns a fully transparent accumulator.
func New() Accumulator {
	return Accumulator{}
}

// Composite blends one primitive's (alpha, r, g, b) contribution for pixel
// i into the accumulator, using spec §4.6's fixed-point source-over law.
// A zero-alpha contribution is a no-op, matching "for each ... pixel ...
// that has non-zero coverage".
func (a *Accumulator) Composite(i int, fa, fr, fg, fb uint8) {
	if fa == 0 {
		return
	}
	acc := &a[i]
	ba := int32(acc.A)
	fa32 := int32(fa)

	outA := ((ba * (255 - fa32)) >> 8) + fa32
	if outA <= 0 {
		acc.A = 0
		return
	}

	acc.R = blendChannel(int32(acc.R), ba, fa32, int32(fr), outA)
	acc.G = blendChannel(int32(acc.G), ba, fa32, int32(fg), outA)
	acc.B = blendChannel(int32(acc.B), ba, fa32, int32(fb), outA)
	acc.A = uint8(clamp255(outA))
}

// blendChannel applies spec §4.6's per-channel law:
//
//	out.c = saturate( ((acc.c * ba * (255-fa)) >> 8 + c*fa) / out.a )
func blendChannel(accC, ba, fa, c, outA int32) uint8 {
	numerator := ((accC * ba * (255 - fa)) >> 8) + c*fa
	return uint8(clamp255(numerator / outA))
}

// SourceOver applies the spec §4.6/§4.7 fixed-point source-over law for a
// single channel + alpha pair, blending a foreground (fc, fa) over a
// background (bc, ba). It is exported so internal/blender can reuse the
// exact same law for the final accumulator-to-surface blit, which the spec
// describes with identical arithmetic but a different pair of operands
// (destination pixel instead of a second foreground).
func SourceOver(bc, ba, fc, fa uint8) (outC, outA uint8) {
	ba32, fa32, bc32, fc32 := int32(ba), int32(fa), int32(bc), int32(fc)
	if fa32 == 0 {
		return bc, ba
	}
	a := ((ba32 * (255 - fa32)) >> 8) + fa32
	if a <= 0 {
		return 0, 0
	}
	c := blendChannel(bc32, ba32, fa32, fc32, a)
	return c, uint8(clamp255(a))
}

func clamp255(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// AnyOpaque reports whether any of the accumulator's four pixels has
// non-zero alpha — the composite kernel's "commit via §4.7" gate.
func (a Accumulator) AnyOpaque() bool {
	for _, p := range a {
		if p.A != 0 {
			return true
		}
	}
	return false
}
