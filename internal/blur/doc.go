// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package blur implements the box-blur redaction kernel (spec §4.9): one
// worker per blur rectangle stages a 32x32 RGB tile by sampling the
// destination surface, computes an integer-mean box filter over the tile,
// then resamples the blurred tile back out onto the original rectangle.
// NV12 destinations are converted to RGB for staging and back to YUV on
// write-back using fixed-point BT.601 coefficients, per §4.9's "RGB<->YUV
// for NV12 uses fixed-point BT.601 coefficients".
package blur
