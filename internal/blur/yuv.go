// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blur

// Fixed-point BT.601 RGB<->YUV conversion, used only by the blur kernel's
// staging/write-back passes for NV12 destinations (spec §4.9). Coefficients
// are scaled by 256 and combined with an 8-bit shift, the same fixed-point
// idiom the rest of this module uses for compositing — grounded
// structurally on the diamond-kernel shift tricks in a YUV upsampling
// implementation elsewhere in this corpus, though the coefficients and law
// here are BT.601, not libwebp's fancy upsampling.
const (
	coeffY_R = 77  // 0.299 * 256
	coeffY_G = 150 // 0.587 * 256
	coeffY_B = 29  // 0.114 * 256

	coeffU_R = -43  // -0.169 * 256
	coeffU_G = -85  // -0.331 * 256
	coeffU_B = 128  // 0.5 * 256

	coeffV_R = 128  // 0.5 * 256
	coeffV_G = -107 // -0.419 * 256
	coeffV_B = -21  // -0.081 * 256

	coeffR_V = 359  // 1.402 * 256
	coeffG_U = -88  // -0.344136 * 256
	coeffG_V = -183 // -0.714136 * 256
	coeffB_U = 454  // 1.772 * 256
)

func clampByte(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// rgbToYUV converts one RGB sample to Y, U, V using fixed-point BT.601
// coefficients.
func rgbToYUV(r, g, b uint8) (y, u, v uint8) {
	ri, gi, bi := int32(r), int32(g), int32(b)
	y = clampByte((coeffY_R*ri + coeffY_G*gi + coeffY_B*bi) >> 8)
	u = clampByte(((coeffU_R*ri+coeffU_G*gi+coeffU_B*bi)>>8)+128)
	v = clampByte(((coeffV_R*ri+coeffV_G*gi+coeffV_B*bi)>>8)+128)
	return
}

// yuvToRGB converts one Y, U, V sample to RGB using fixed-point BT.601
// coefficients.
func yuvToRGB(y, u, v uint8) (r, g, b uint8) {
	yi := int32(y)
	ud := int32(u) - 128
	vd := int32(v) - 128

	r = clampByte(yi + (coeffR_V*vd)>>8)
	g = clampByte(yi + (coeffG_U*ud+coeffG_V*vd)>>8)
	b = clampByte(yi + (coeffB_U*ud)>>8)
	return
}
