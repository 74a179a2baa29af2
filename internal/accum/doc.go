// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package accum implements the foreground accumulator: a 4-pixel RGBA
// scratch register that every primitive's coverage contribution composites
// into, in command order, using the exact 8-bit fixed-point source-over law
// from spec §4.6. The law is taken verbatim from the specification rather
// than any floating-point or differently-rounded approximation — per spec
// §9, a refactor toward float or a different rounding convention fails
// golden-image parity.
package accum
