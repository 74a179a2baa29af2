// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpuback

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/cuosd"
	"github.com/gogpu/cuosd/command"
	"github.com/gogpu/cuosd/surface"
)

// Name identifies this accelerator to [cuosd.GPUAccelerator.Name].
const Name = "wgpu"

// Accelerator is a [cuosd.GPUAccelerator] backed by a wgpu compute device.
// The zero value is not usable; use [New].
type Accelerator struct {
	mu sync.RWMutex

	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID

	compositeSPIRV []uint32
	blurSPIRV      []uint32

	logger *slog.Logger

	// external, if non-nil, is a host-supplied device this Accelerator
	// borrows instead of creating its own, per the "gg RECEIVES the
	// device from the host" pattern — it is never closed by this
	// Accelerator.
	external gpucontext.DeviceProvider

	initialized bool
}

// New returns an uninitialized Accelerator that creates and owns its own
// wgpu instance, adapter, and device on [Accelerator.Init]. Call
// [cuosd.RegisterAccelerator] to bring it up and install it.
func New() *Accelerator {
	return &Accelerator{logger: slog.Default()}
}

// NewWithDevice returns an uninitialized Accelerator that borrows an
// already-created device from the host application instead of requesting
// its own adapter and device, so it shares GPU resources with the rest of
// the host's rendering pipeline.
func NewWithDevice(provider gpucontext.DeviceProvider) *Accelerator {
	return &Accelerator{logger: slog.Default(), external: provider}
}

func (a *Accelerator) Name() string { return Name }

// SetLogger implements the logger-propagation hook cuosd calls after
// RegisterAccelerator succeeds and on every SetLogger.
func (a *Accelerator) SetLogger(l *slog.Logger) {
	a.mu.Lock()
	a.logger = l
	a.mu.Unlock()
}

// Init brings up a wgpu instance, requests a high-performance adapter and
// device, and compiles both compute kernels through naga. It is safe to
// call more than once; subsequent calls are no-ops once initialized.
func (a *Accelerator) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.initialized {
		return nil
	}

	if a.external != nil {
		if a.external.Device() == nil {
			return fmt.Errorf("gpuback: external device provider has no device")
		}
		return a.initKernelsLocked()
	}

	instance := core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})

	adapterID, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return fmt.Errorf("gpuback: request adapter: %w", err)
	}

	deviceID, err := core.RequestDevice(adapterID, &gputypes.DeviceDescriptor{
		Label:          "cuosd-compositor-device",
		RequiredLimits: gputypes.DefaultLimits(),
	})
	if err != nil {
		_ = core.AdapterDrop(adapterID)
		return fmt.Errorf("gpuback: request device: %w", err)
	}

	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		_ = core.DeviceDrop(deviceID)
		_ = core.AdapterDrop(adapterID)
		return fmt.Errorf("gpuback: get device queue: %w", err)
	}

	a.instance = instance
	a.adapter = adapterID
	a.device = deviceID
	a.queue = queueID
	return a.initKernelsLocked()
}

// initKernelsLocked compiles both compute kernels through naga. Callers
// must hold a.mu.
func (a *Accelerator) initKernelsLocked() error {
	compositeSPIRV, err := compileToSPIRV(compositeWGSL)
	if err != nil {
		return fmt.Errorf("gpuback: compile composite kernel: %w", err)
	}
	blurSPIRV, err := compileToSPIRV(blurWGSL)
	if err != nil {
		return fmt.Errorf("gpuback: compile blur kernel: %w", err)
	}

	a.compositeSPIRV = compositeSPIRV
	a.blurSPIRV = blurSPIRV
	a.initialized = true
	return nil
}

// Close releases the device, adapter, and instance.
func (a *Accelerator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.initialized {
		return
	}
	if a.external != nil {
		a.initialized = false
		return
	}
	if !a.device.IsZero() {
		_ = core.DeviceDrop(a.device)
	}
	if !a.adapter.IsZero() {
		_ = core.AdapterDrop(a.adapter)
	}
	a.instance = nil
	a.device = core.DeviceID{}
	a.adapter = core.AdapterID{}
	a.queue = core.QueueID{}
	a.initialized = false
}

// CanAccelerate reports whether this backend can handle the given surface
// format and rotate/MSAA mode. The compute kernels only target linear RGBA
// storage textures today; every other format and the rotate/MSAA
// specialization fall back to the CPU backend.
func (a *Accelerator) CanAccelerate(format surface.Format, rotateOrMSAA bool) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.initialized && format == surface.RGBA && !rotateOrMSAA
}

// Composite always reports [cuosd.ErrFallbackToCPU]; see the package doc
// comment for why the dispatch path is not yet wired.
func (a *Accelerator) Composite(ctx context.Context, dst surface.Surface, stream *command.Stream) error {
	return cuosd.ErrFallbackToCPU
}

// Blur always reports [cuosd.ErrFallbackToCPU]; see the package doc comment.
func (a *Accelerator) Blur(ctx context.Context, dst surface.Surface, stream *command.Stream) error {
	return cuosd.ErrFallbackToCPU
}

func compileToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, err
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

var _ cuosd.GPUAccelerator = (*Accelerator)(nil)
