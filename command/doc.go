// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package command defines the cuosd wire format: a tagged union of drawing
// commands serialized into a contiguous byte stream plus a parallel offsets
// table, the exact form the compositor core consumes (see spec.md §3).
//
// Building the byte stream is formally a host-side responsibility outside
// the compositor core, but its contract lives here alongside the types the
// core decodes, the way the teacher's recording package keeps typed command
// structs and their CommandType tags in one place. [Encoder] is the host
// builder's thin reference implementation, used by tests and the CLI demo;
// production builders only need to respect the layout [Stream.Command] decodes.
package command
