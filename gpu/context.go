// Package gpu provides the execution context for GPU rendering: it owns
// the backend instance, finds or creates compatible devices, binds
// rendered output to presentable surfaces and drives GPU-bound
// asynchronous operations to completion.
package gpu

import (
	"fmt"
	"slices"
)

// DeviceHandle binds one adapter, one logical device and one command
// queue. Handles are immutable after creation and live for the lifetime
// of the owning Context.
type DeviceHandle struct {
	// adapter is kept for capability queries only and never leaves
	// the pool.
	adapter Adapter

	Device Device
	Queue  Queue
}

// Context owns the backend instance and all device handles created from
// it. The devices slice is append-only; an index handed out once stays
// valid for the lifetime of the process.
//
// A single logical owner is expected to drive the Context. Concurrent
// mutation needs external synchronization.
type Context struct {
	backend Backend
	devices []*DeviceHandle
}

// New creates a Context around an externally constructed backend.
func New(backend Backend) *Context {
	return &Context{backend: backend}
}

// NumDevices returns the number of device handles in the pool.
func (c *Context) NumDevices() int {
	return len(c.devices)
}

// Handle lends out the device handle at the given index.
func (c *Context) Handle(devID int) *DeviceHandle {
	return c.devices[devID]
}

// Device finds or creates a device handle and returns its index.
//
// With a compatible surface given, existing handles are scanned in
// insertion order and the first whose adapter supports the surface
// wins; there is no load balancing. With no surface given, the first
// ever created device is the default. If nothing matches, a new device
// is created, appended and returned; the call blocks while the backend
// negotiates adapters and devices. When neither finding nor creating
// works, ok is false and the pool is unchanged.
func (c *Context) Device(compatible Surface) (devID int, ok bool) {
	if compatible != nil {
		for i, d := range c.devices {
			if d.adapter.SupportsSurface(compatible) {
				return i, true
			}
		}
	} else if len(c.devices) > 0 {
		return 0, true
	}

	return c.newDevice(compatible)
}

func (c *Context) newDevice(compatible Surface) (devID int, ok bool) {
	adapter, err := c.backend.RequestAdapter(&AdapterOptions{
		CompatibleSurface: compatible,
	})
	if err != nil {
		return 0, false
	}

	device, queue, err := adapter.RequestDevice(&DeviceDescriptor{
		RequiredFeatures: requestedFeatures(adapter),
	})
	if err != nil {
		return 0, false
	}

	c.devices = append(c.devices, &DeviceHandle{
		adapter: adapter,
		Device:  device,
		Queue:   queue,
	})

	return len(c.devices) - 1, true
}

// CreateRenderSurface negotiates a configuration for the given surface
// and dimensions, applies it against a compatible device and returns
// the assembled render surface.
//
// The format is the first 8-bit rgba or bgra normalized format the
// surface reports; any other formats are rejected so color blending
// downstream runs on one numeric representation.
func (c *Context) CreateRenderSurface(surface Surface, width, height uint32, presentMode PresentMode) (*RenderSurface, error) {
	devID, ok := c.Device(surface)
	if !ok {
		return nil, ErrNoCompatibleDevice
	}

	caps := c.devices[devID].adapter.SurfaceCapabilities(surface)
	format, ok := preferredFormat(caps.Formats)
	if !ok {
		return nil, fmt.Errorf("%w: offered %v", ErrUnsupportedSurfaceFormat, caps.Formats)
	}

	rs := &RenderSurface{
		Surface: surface,
		Config: SurfaceConfig{
			Usage:                      TextureUsageRenderAttachment,
			Format:                     format,
			Width:                      width,
			Height:                     height,
			PresentMode:                presentMode,
			AlphaMode:                  AlphaModeAuto,
			DesiredMaximumFrameLatency: 2,
		},
		DevID:  devID,
		Format: format,
	}

	c.configureSurface(rs)

	return rs, nil
}

// ResizeSurface applies new dimensions to the render surface. The
// dimensions are not validated here; limits are the backend's concern.
func (c *Context) ResizeSurface(rs *RenderSurface, width, height uint32) {
	rs.Config.Width = width
	rs.Config.Height = height
	c.configureSurface(rs)
}

// SetPresentMode switches the render surface to the given present mode.
// The mode is validated against the surface's reported capabilities.
func (c *Context) SetPresentMode(rs *RenderSurface, mode PresentMode) error {
	caps := c.devices[rs.DevID].adapter.SurfaceCapabilities(rs.Surface)
	if !slices.Contains(caps.PresentModes, mode) {
		return fmt.Errorf("%w: %s", ErrUnsupportedPresentMode, mode)
	}

	rs.Config.PresentMode = mode
	c.configureSurface(rs)

	return nil
}

func (c *Context) configureSurface(rs *RenderSurface) {
	if rs.Surface.Invalidated() {
		panic("gpu: render surface used after its window was destroyed")
	}

	rs.Surface.Configure(c.devices[rs.DevID].Device, &rs.Config)
}

func preferredFormat(formats []Format) (Format, bool) {
	for _, f := range formats {
		if f == FormatRGBA8Unorm || f == FormatBGRA8Unorm {
			return f, true
		}
	}

	return FormatUndefined, false
}
