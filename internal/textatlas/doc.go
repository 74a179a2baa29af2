// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package textatlas builds the monochrome glyph atlas and per-line glyph
// rectangle directory that a [github.com/gogpu/cuosd/command.Text] command
// samples from at composite time.
//
// Shaping (clustering, advances, script-aware layout) is delegated to
// github.com/go-text/typesetting's HarfBuzz port; individual glyph bitmaps
// are rasterized with golang.org/x/image/font's outline rasterizer, the same
// split the rest of this corpus uses between a shaping backend and an
// x/image-backed rasterizer. Source text is normalized to NFC with
// golang.org/x/text before shaping, so combining-mark sequences that are
// visually identical hit the same glyph cache entry.
package textatlas
