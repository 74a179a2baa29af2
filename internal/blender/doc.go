// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package blender implements the Pixel Blender: the final blit of a quad's
// foreground accumulator into the destination surface, per spec §4.7. One
// function per surface format handles the 3/4-channel RGB-like case and
// the NV12 luma/chroma write-back. The NV12 write path does no color
// conversion: the accumulator's channels are written as Y, U and V as they
// are, since the stamp's "RGB" is already YUV by the time it reaches the
// accumulator, per spec §9. The BT.601-derived fixed-point coefficients
// live in internal/blur, used only by the box-blur kernel's YUV<->RGB
// staging conversion.
package blender
