// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dispatch

import (
	"context"
	"sync"

	"github.com/gogpu/cuosd/command"
	"github.com/gogpu/cuosd/surface"
)

// CompositeKernel runs the composite kernel over dst for one (format,
// rotateMSAA) specialization.
type CompositeKernel func(ctx context.Context, dst surface.Surface, stream *command.Stream) error

// BlurKernel runs the box-blur kernel over dst for one format specialization.
type BlurKernel func(ctx context.Context, dst surface.Surface, stream *command.Stream) error

var (
	mu             sync.RWMutex
	compositeTable [2 * surface.NumFormats]CompositeKernel
	blurTable      [surface.NumFormats]BlurKernel
)

// RegisterComposite installs kernel at the composite table entry for
// (format, rotateMSAA). Called once at package init by internal/compositor
// (the CPU reference backend) and optionally again by internal/gpuback to
// override individual entries with GPU-dispatched specializations.
func RegisterComposite(format surface.Format, rotateMSAA bool, kernel CompositeKernel) {
	mu.Lock()
	defer mu.Unlock()
	compositeTable[CompositeIndex(format, rotateMSAA)] = kernel
}

// Composite looks up the composite kernel for (format, rotateMSAA), or nil
// if nothing is registered for that slot.
func Composite(format surface.Format, rotateMSAA bool) CompositeKernel {
	mu.RLock()
	defer mu.RUnlock()
	return compositeTable[CompositeIndex(format, rotateMSAA)]
}

// RegisterBlur installs kernel at the blur table entry for format.
func RegisterBlur(format surface.Format, kernel BlurKernel) {
	mu.Lock()
	defer mu.Unlock()
	blurTable[format] = kernel
}

// Blur looks up the blur kernel for format, or nil if unregistered.
func Blur(format surface.Format) BlurKernel {
	mu.RLock()
	defer mu.RUnlock()
	if !format.Valid() {
		return nil
	}
	return blurTable[format]
}
