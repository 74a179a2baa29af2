// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package compositor implements the composite kernel (spec §4.8): one
// logical thread per 2x2 destination quad, iterating the command stream in
// order, culling by AABB, dispatching to internal/coverage, accumulating
// via internal/accum, and committing via internal/blender. The CPU
// reference backend fans quads out over a internal/parallel.WorkerPool by
// row-band instead of a GPU grid, but every worker iterates commands in
// the same order, preserving spec §5's "command order is the compositing
// order, independent of thread scheduling" guarantee.
package compositor
