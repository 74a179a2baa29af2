// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cuosd

import (
	"context"
	"errors"
	"sync"

	"github.com/gogpu/cuosd/command"
	"github.com/gogpu/cuosd/surface"
)

// ErrFallbackToCPU indicates the GPU accelerator cannot handle this launch.
// The caller should transparently fall back to the CPU compositor.
var ErrFallbackToCPU = errors.New("cuosd: falling back to CPU compositing")

// GPUAccelerator is an optional GPU compositing provider. When registered
// via RegisterAccelerator, Launch tries GPU compositing first for supported
// (surface format, rotate/MSAA) combinations. If the accelerator returns
// ErrFallbackToCPU, compositing falls back to the CPU path silently for that
// call. Any other error is logged, sent on LaunchParams.Done, and ends the
// call: the CPU path does not run and nothing is retried.
//
// Implementations are provided by GPU backend packages, e.g. a wgpu-backed
// one under internal/gpuback, and installed with RegisterAccelerator.
type GPUAccelerator interface {
	// Name returns the accelerator name (e.g. "wgpu").
	Name() string

	// Init initializes GPU resources. Called once during registration.
	Init() error

	// Close releases GPU resources.
	Close()

	// CanAccelerate reports whether the accelerator supports the given
	// surface format and rotate/MSAA combination. A fast check used to skip
	// GPU dispatch entirely for unsupported combinations.
	CanAccelerate(format surface.Format, rotateOrMSAA bool) bool

	// Composite runs the composite kernel over dst using the given command
	// stream. Returns ErrFallbackToCPU if the request cannot be
	// GPU-accelerated after all.
	Composite(ctx context.Context, dst surface.Surface, stream *command.Stream) error

	// Blur runs the box-blur kernel over dst using the given blur command
	// stream. Returns ErrFallbackToCPU if the request cannot be
	// GPU-accelerated after all.
	Blur(ctx context.Context, dst surface.Surface, stream *command.Stream) error
}

var (
	accelMu sync.RWMutex
	accel   GPUAccelerator
)

// RegisterAccelerator registers a GPU accelerator for optional GPU
// compositing.
//
// Only one accelerator can be registered at a time; a later call replaces
// the previous one, closing it after the new one initializes successfully.
// If Init fails, the accelerator is not registered and the error is
// returned.
//
// Importing a GPU backend package registers nothing by itself; its
// accelerator is passed here explicitly:
//
//	err := cuosd.RegisterAccelerator(gpuback.New())
func RegisterAccelerator(a GPUAccelerator) error {
	if a == nil {
		return errors.New("cuosd: accelerator must not be nil")
	}
	if err := a.Init(); err != nil {
		return err
	}
	propagateLogger(a, Logger())

	accelMu.Lock()
	old := accel
	accel = a
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
	return nil
}

// Accelerator returns the currently registered GPU accelerator, or nil if none.
func Accelerator() GPUAccelerator {
	accelMu.RLock()
	a := accel
	accelMu.RUnlock()
	return a
}

// resetAccelerator clears the registered accelerator without calling
// Close, for test isolation only.
func resetAccelerator() {
	accelMu.Lock()
	accel = nil
	accelMu.Unlock()
}
