// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides the rune-keyed LRU cache internal/textatlas uses to
// avoid re-rasterizing glyphs it has already packed into the atlas.
//
// # Cache[K, V]
//
// A generic thread-safe LRU cache with a soft limit, backed by a
// doubly-linked recency list for O(1) Get/Set and batched eviction: once the
// soft limit is exceeded, the least recently used entries are evicted down
// to 75% of the limit rather than one at a time, so a burst of new runes
// doesn't re-trigger eviction on every insertion.
//
//	glyphs := cache.New[rune, *glyphEntry](2048)
//	glyphs.Set('A', entry)
//	entry, ok := glyphs.Get('A')
//
// # Thread Safety
//
// Cache is safe for concurrent use. It must not be copied after creation
// (it contains a mutex).
package cache
