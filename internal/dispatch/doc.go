// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package dispatch holds the compile-time-style specialization tables spec
// §9 describes as "a classic monomorphization over an 8-entry table": one
// kernel per (surface format, rotate/MSAA) pair for compositing, one per
// surface format for blur. Go has no template monomorphization, so the
// table is populated at init time with closures instead of generated code —
// the same register-then-index pattern the teacher's accelerator.go uses
// for GPU/CPU backend selection, generalized here from "pick a backend" to
// "pick a format/MSAA specialization".
package dispatch

import "github.com/gogpu/cuosd/surface"

// CompositeIndex computes the composite dispatch table index from a format
// and the rotate/MSAA flag, per spec §6: rotateMSAA*4 + format.
func CompositeIndex(format surface.Format, rotateMSAA bool) int {
	i := int(format)
	if rotateMSAA {
		i += int(surface.NumFormats)
	}
	return i
}
