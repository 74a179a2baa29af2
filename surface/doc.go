// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface is the destination-pixel abstraction for the cuosd
// compositor. It hides the NV12 luma/chroma split, block-linear GPU surface
// objects versus pitch-linear byte arrays, and 3- versus 4-channel packing
// behind one small interface per logical pixel format.
//
// Four concrete surfaces are provided: RGB, RGBA, block-linear NV12, and
// pitch-linear NV12. All four satisfy [Surface]; the NV12 variants
// additionally satisfy [NV12Surface] so the compositor and blur kernels can
// read/write luma and chroma without caring which physical layout backs them.
package surface
