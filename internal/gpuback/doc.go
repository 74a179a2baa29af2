// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpuback is an optional GPU [github.com/gogpu/cuosd.GPUAccelerator]
// built on github.com/gogpu/wgpu, github.com/gogpu/gpucontext, and
// github.com/gogpu/gputypes, with its compute kernels authored in WGSL and
// compiled through github.com/gogpu/naga, the same instance/adapter/device/
// queue lifecycle and shader-compile path this corpus's other wgpu-backed
// renderers use.
//
// Accelerator.Init brings up real GPU resources and compiles the composite
// and blur kernels; Composite and Blur currently return
// [github.com/gogpu/cuosd.ErrFallbackToCPU] on every call, so the CPU
// reference backend always produces the pixels. This mirrors the
// incremental "real device, stubbed dispatch" shape this corpus's own wgpu
// backend ships in (compare the GPU renderer's RenderScene, which executes
// real GPU work but cannot yet read results back and falls back to
// reporting completion). Wiring an actual per-quad compute dispatch needs a
// bind-group layout this package does not yet define.
package gpuback
