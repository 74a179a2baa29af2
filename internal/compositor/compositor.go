// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compositor

import (
	"context"

	"github.com/gogpu/cuosd/command"
	"github.com/gogpu/cuosd/internal/accum"
	"github.com/gogpu/cuosd/internal/blender"
	"github.com/gogpu/cuosd/internal/coverage"
	"github.com/gogpu/cuosd/internal/dispatch"
	"github.com/gogpu/cuosd/internal/parallel"
	"github.com/gogpu/cuosd/surface"
)

// AABB is an inclusive integer pixel rectangle, as carried by every command
// header and the global launch parameters (spec §3, §6).
type AABB struct {
	Left, Top, Right, Bottom int32
}

// Empty reports whether the box contains no pixels.
func (b AABB) Empty() bool {
	return b.Right < b.Left || b.Bottom < b.Top
}

func intersects(a, b AABB) bool {
	return a.Left <= b.Right && a.Right >= b.Left && a.Top <= b.Bottom && a.Bottom >= b.Top
}

func init() {
	for f := surface.Format(0); int(f) < surface.NumFormats; f++ {
		for _, rotateMSAA := range []bool{false, true} {
			dispatch.RegisterComposite(f, rotateMSAA, runGeneric)
		}
	}
}

// runGeneric is the format-generic CPU composite kernel. Go's interface
// dispatch makes a single implementation correct for every (format,
// rotateMSAA) table slot; the table still exists as the dispatch shim spec
// §9 calls for, and a GPU backend can override individual slots with a
// real specialized compute-shader dispatch.
func runGeneric(ctx context.Context, dst surface.Surface, stream *command.Stream) error {
	return Launch(ctx, dst, stream, nil, nil)
}

// Launch runs the composite kernel over dst. aabb is the global bounding
// box from the host (spec §6); if it is nil, the union of every command's
// own header AABB is used instead. pool may be nil, in which case a
// default-sized worker pool is created and closed internally.
func Launch(ctx context.Context, dst surface.Surface, stream *command.Stream, aabb *AABB, pool *parallel.WorkerPool) error {
	box := unionAABB(stream)
	if aabb != nil {
		box = *aabb
	}
	if box.Empty() {
		return nil
	}

	// Round down to even pixel boundaries, per spec §4.8.
	left := box.Left &^ 1
	top := box.Top &^ 1
	right := box.Right
	bottom := box.Bottom

	ownPool := pool == nil
	if ownPool {
		pool = parallel.NewWorkerPool(0)
	}
	if ownPool {
		defer pool.Close()
	}

	var rowWork []func()
	for qy := top; qy <= bottom; qy += 2 {
		qy := qy
		rowWork = append(rowWork, func() {
			if ctx.Err() != nil {
				return
			}
			for qx := left; qx <= right; qx += 2 {
				processQuad(dst, stream, coverage.Quad{X: qx, Y: qy})
			}
		})
	}

	pool.ExecuteAll(rowWork)
	return nil
}

func processQuad(dst surface.Surface, stream *command.Stream, q coverage.Quad) {
	acc := accum.New()
	var itextLine int32

	n := stream.NumCommands()
	for i := 0; i < n; i++ {
		cmd := stream.Command(i)
		hdr := cmd.Header()
		quadBox := AABB{Left: q.X, Top: q.Y, Right: q.X + 1, Bottom: q.Y + 1}
		cmdBox := AABB{Left: hdr.Left, Top: hdr.Top, Right: hdr.Right, Bottom: hdr.Bottom}

		if !intersects(cmdBox, quadBox) {
			if hdr.Type == command.TypeText {
				itextLine++
			}
			continue
		}

		var contrib [4]coverage.Contribution
		switch c := cmd.(type) {
		case *command.Rectangle:
			contrib = coverage.Rectangle(c, q)
		case *command.Circle:
			contrib = coverage.Circle(c, q)
		case *command.Text:
			locs := stream.TextRange(itextLine)
			contrib = coverage.Text(c, locs, stream.Glyphs, q)
			itextLine++
		case *command.Segment:
			contrib = coverage.Segment(c, q)
		case *command.RGBASource:
			contrib = coverage.RGBAStamp(c, q)
		case *command.NV12Source:
			contrib = coverage.NV12Stamp(c, q)
		default:
			continue
		}

		for px, ctb := range contrib {
			acc.Composite(px, ctb.Alpha, ctb.R, ctb.G, ctb.B)
		}
	}

	blender.Commit(dst, acc, q)
}

func unionAABB(stream *command.Stream) AABB {
	box := AABB{Left: 1, Top: 1, Right: 0, Bottom: 0} // empty
	n := stream.NumCommands()
	for i := 0; i < n; i++ {
		h := stream.Command(i).Header()
		if h.Type == command.TypeBoxBlur {
			continue
		}
		cb := AABB{Left: h.Left, Top: h.Top, Right: h.Right, Bottom: h.Bottom}
		if cb.Empty() {
			continue
		}
		if box.Empty() {
			box = cb
			continue
		}
		if cb.Left < box.Left {
			box.Left = cb.Left
		}
		if cb.Top < box.Top {
			box.Top = cb.Top
		}
		if cb.Right > box.Right {
			box.Right = cb.Right
		}
		if cb.Bottom > box.Bottom {
			box.Bottom = cb.Bottom
		}
	}
	return box
}
