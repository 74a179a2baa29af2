// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blur

import (
	"context"

	"github.com/gogpu/cuosd/command"
	"github.com/gogpu/cuosd/internal/dispatch"
	"github.com/gogpu/cuosd/internal/parallel"
	"github.com/gogpu/cuosd/surface"
)

const tileSize = 32

func init() {
	for f := surface.Format(0); int(f) < surface.NumFormats; f++ {
		dispatch.RegisterBlur(f, func(ctx context.Context, dst surface.Surface, stream *command.Stream) error {
			return Launch(ctx, dst, stream, nil)
		})
	}
}

// Launch runs the box-blur kernel over every BoxBlur command in stream,
// one pooled worker per rectangle, matching spec §4.9/§5's "no
// cross-block synchronization". pool may be nil, in which case a
// default-sized worker pool is created and closed internally.
func Launch(ctx context.Context, dst surface.Surface, stream *command.Stream, pool *parallel.WorkerPool) error {
	n := stream.NumCommands()
	var rects []*command.BoxBlur
	for i := 0; i < n; i++ {
		cmd := stream.Command(i)
		bb, ok := cmd.(*command.BoxBlur)
		if !ok {
			continue
		}
		rects = append(rects, bb)
	}
	if len(rects) == 0 {
		return nil
	}

	ownPool := pool == nil
	if ownPool {
		pool = parallel.NewWorkerPool(0)
	}
	if ownPool {
		defer pool.Close()
	}

	work := make([]func(), len(rects))
	for i, r := range rects {
		r := r
		work[i] = func() {
			if ctx.Err() != nil {
				return
			}
			blurRect(dst, r)
		}
	}
	pool.ExecuteAll(work)
	return nil
}

func blurRect(dst surface.Surface, bb *command.BoxBlur) {
	left, top := int(bb.Hdr.Left), int(bb.Hdr.Top)
	right, bottom := int(bb.Hdr.Right), int(bb.Hdr.Bottom)
	boxW, boxH := right-left+1, bottom-top+1
	if boxW <= 0 || boxH <= 0 {
		return
	}

	var tile [tileSize][tileSize][3]uint8

	// Phase 1: stage a tileSize x tileSize RGB sample of the rectangle.
	for ty := 0; ty < tileSize; ty++ {
		srcY := top + ty*boxH/tileSize
		for tx := 0; tx < tileSize; tx++ {
			srcX := left + tx*boxW/tileSize
			r, g, b := readRGB(dst, srcX, srcY)
			tile[ty][tx] = [3]uint8{r, g, b}
		}
	}

	// Phase 2: integer-mean box filter, clipped to the tile, with a
	// per-pixel valid-sample count (edge cells see fewer neighbors).
	half := int(bb.KernelSize) / 2
	var blurred [tileSize][tileSize][3]uint8
	for ty := 0; ty < tileSize; ty++ {
		for tx := 0; tx < tileSize; tx++ {
			var sumR, sumG, sumB, count int32
			for dy := -half; dy <= half; dy++ {
				ny := ty + dy
				if ny < 0 || ny >= tileSize {
					continue
				}
				for dx := -half; dx <= half; dx++ {
					nx := tx + dx
					if nx < 0 || nx >= tileSize {
						continue
					}
					px := tile[ny][nx]
					sumR += int32(px[0])
					sumG += int32(px[1])
					sumB += int32(px[2])
					count++
				}
			}
			if count == 0 {
				blurred[ty][tx] = tile[ty][tx]
				continue
			}
			blurred[ty][tx] = [3]uint8{
				uint8(sumR / count),
				uint8(sumG / count),
				uint8(sumB / count),
			}
		}
	}

	// Phase 3: resample the blurred tile back onto the rectangle, nearest
	// in tile space.
	for y := top; y <= bottom; y++ {
		ty := (y - top) * tileSize / boxH
		if ty >= tileSize {
			ty = tileSize - 1
		}
		for x := left; x <= right; x++ {
			tx := (x - left) * tileSize / boxW
			if tx >= tileSize {
				tx = tileSize - 1
			}
			px := blurred[ty][tx]
			writeRGB(dst, x, y, px[0], px[1], px[2])
		}
	}
}

// readRGB reads one logical RGB sample from dst regardless of its physical
// format, converting YUV to RGB for NV12 surfaces via BT.601 (spec §4.9).
func readRGB(dst surface.Surface, x, y int) (r, g, b uint8) {
	switch s := dst.(type) {
	case surface.RGBLikeSurface:
		r, g, b, _ = s.ReadPixel(x, y)
		return
	case surface.NV12Surface:
		yy := s.ReadLuma(x, y)
		u, v := s.ReadChroma(x, y)
		return yuvToRGB(yy, u, v)
	default:
		return 0, 0, 0
	}
}

// writeRGB writes one logical RGB sample to dst, converting back to YUV
// for NV12 surfaces.
func writeRGB(dst surface.Surface, x, y int, r, g, b uint8) {
	switch s := dst.(type) {
	case surface.RGBLikeSurface:
		_, _, _, a := s.ReadPixel(x, y)
		s.WritePixel(x, y, r, g, b, a)
	case surface.NV12Surface:
		yy, u, v := rgbToYUV(r, g, b)
		s.WriteLuma(x, y, yy)
		s.WriteChroma(x, y, u, v)
	}
}
