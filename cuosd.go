// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cuosd is a GPU-accelerated on-screen-display compositor: it
// rasterizes rectangles, circles, text, segmentation masks, and RGBA/NV12
// image stamps onto an existing image surface, and separately applies a
// box-blur redaction pass over a list of rectangles on the same surface.
package cuosd

import (
	"context"

	"github.com/gogpu/cuosd/command"
	"github.com/gogpu/cuosd/internal/blur"
	"github.com/gogpu/cuosd/internal/compositor"
	"github.com/gogpu/cuosd/internal/dispatch"
	"github.com/gogpu/cuosd/internal/parallel"
	"github.com/gogpu/cuosd/surface"
)

// AABB is an inclusive integer pixel rectangle in destination surface
// coordinates.
type AABB struct {
	Left, Top, Right, Bottom int32
}

// LaunchParams parameterizes one compositor launch, mirroring the entry
// point's parameter list in spec §6.
type LaunchParams struct {
	// Destination is the surface to rasterize onto. It is mutated in
	// place; no temporary framebuffer is allocated.
	Destination surface.Surface

	// Commands is the main drawing command stream (rectangles, circles,
	// text, segments, stamps).
	Commands *command.Stream

	// BlurCommands is a separate stream of BoxBlur commands, run before
	// Commands per spec §2's "blur kernel runs first (if any), then
	// composite kernel". May be nil.
	BlurCommands *command.Stream

	// AABB is the global bounding box used to size the composite grid. If
	// nil, it is derived as the union of every command's own header AABB.
	AABB *AABB

	// HaveRotateMSAA selects the rotate/MSAA composite specialization, per
	// spec §6's format-tag dispatch table.
	HaveRotateMSAA bool

	// Pool, if non-nil, is reused for both the blur and composite worker
	// fan-out instead of allocating a fresh one per Launch.
	Pool *parallel.WorkerPool

	// Done, if non-nil, receives the launch's advisory completion status at
	// most once: nil on success, or the error that ended the launch (an
	// accelerator error other than ErrFallbackToCPU, ErrUnsupportedFormat for
	// a missing kernel, or a blur or composite launch error). Nothing is sent
	// for a nil Destination or an invalid format tag, and the send is dropped
	// if Done is not ready to receive. This stands in for the caller-supplied async
	// stream handle in spec §6 — there is no literal device stream on the
	// CPU backend, so advisory completion is reported here instead.
	Done chan<- error
}

// Launch runs the box-blur pass (if any) and then the composite pass (if
// any) over params.Destination, per spec §2's data flow. It always returns
// to the caller; per spec §6, failure is advisory — Launch returns nil in
// every case except an unsupported surface format, logging everything else
// through [Logger]() instead.
func Launch(ctx context.Context, params LaunchParams) error {
	if params.Destination == nil {
		return nil
	}
	format := params.Destination.Format()
	if !format.Valid() {
		Logger().Error("cuosd: unsupported surface format", "format", format)
		return ErrUnsupportedFormat
	}

	degenerate := (params.Commands == nil || params.Commands.NumCommands() == 0) &&
		(params.BlurCommands == nil || params.BlurCommands.NumCommands() == 0)
	if degenerate {
		Logger().Warn("cuosd: degenerate request, nothing to draw")
		report(params.Done, nil)
		return nil
	}

	if a := Accelerator(); a != nil && a.CanAccelerate(format, params.HaveRotateMSAA) {
		if err := launchAccelerated(ctx, a, params); err == nil {
			report(params.Done, nil)
			return nil
		} else if err != ErrFallbackToCPU {
			Logger().Error("cuosd: GPU launch failed", "accelerator", a.Name(), "error", err)
			report(params.Done, err)
			return nil
		}
		// ErrFallbackToCPU: fall through to the CPU path below.
	}

	if params.BlurCommands != nil {
		if dispatch.Blur(format) == nil {
			Logger().Error("cuosd: no blur kernel registered for format", "format", format)
			report(params.Done, ErrUnsupportedFormat)
			return nil
		}
		if err := blur.Launch(ctx, params.Destination, params.BlurCommands, params.Pool); err != nil {
			Logger().Error("cuosd: blur launch failed", "error", err)
			report(params.Done, err)
			return nil
		}
	}

	if params.Commands != nil {
		if dispatch.Composite(format, params.HaveRotateMSAA) == nil {
			Logger().Error("cuosd: no composite kernel registered for format", "format", format, "rotateMSAA", params.HaveRotateMSAA)
			report(params.Done, ErrUnsupportedFormat)
			return nil
		}
		var box *compositor.AABB
		if params.AABB != nil {
			box = &compositor.AABB{
				Left: params.AABB.Left, Top: params.AABB.Top,
				Right: params.AABB.Right, Bottom: params.AABB.Bottom,
			}
		}
		if err := compositor.Launch(ctx, params.Destination, params.Commands, box, params.Pool); err != nil {
			Logger().Error("cuosd: composite launch failed", "error", err)
			report(params.Done, err)
			return nil
		}
	}

	report(params.Done, nil)
	return nil
}

func launchAccelerated(ctx context.Context, a GPUAccelerator, params LaunchParams) error {
	if params.BlurCommands != nil {
		if err := a.Blur(ctx, params.Destination, params.BlurCommands); err != nil {
			return err
		}
	}
	if params.Commands != nil {
		if err := a.Composite(ctx, params.Destination, params.Commands); err != nil {
			return err
		}
	}
	return nil
}

func report(done chan<- error, err error) {
	if done == nil {
		return
	}
	select {
	case done <- err:
	default:
	}
}
