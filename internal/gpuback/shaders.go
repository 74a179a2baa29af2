// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpuback

// compositeWGSL is the WGSL source for the per-quad composite kernel: one
// compute invocation per 2x2 pixel quad, mirroring internal/compositor's
// CPU row-band fan-out at the workgroup level.
const compositeWGSL = `
struct Quad {
  x: i32,
  y: i32,
}

@group(0) @binding(0) var<storage, read> commands: array<u32>;
@group(0) @binding(1) var dst: texture_storage_2d<rgba8unorm, write>;

@compute @workgroup_size(8, 8, 1)
fn main(@builtin(global_invocation_id) gid: vec3<u32>) {
  let qx = i32(gid.x) * 2;
  let qy = i32(gid.y) * 2;
  // Per-quad command evaluation dispatches from here; the host-side
  // reference implementation performs this work on the CPU until a bind
  // group layout for the command stream is finalized.
}
`

// blurWGSL is the WGSL entry point for the box-blur kernel: one compute
// invocation per destination pixel within a blur rectangle. Its body does
// no filtering; the blur runs on the CPU in internal/blur.
const blurWGSL = `
@group(0) @binding(0) var src: texture_2d<f32>;
@group(0) @binding(1) var dst: texture_storage_2d<rgba8unorm, write>;

@compute @workgroup_size(8, 8, 1)
fn main(@builtin(global_invocation_id) gid: vec3<u32>) {
  // Empty body: the integer-mean box filter is performed on the CPU by
  // internal/blur.blurRect.
}
`
