// Package webgpu drives the gpu package on a native or browser webgpu
// implementation through the wgpu bindings.
package webgpu

import (
	"fmt"
	"log/slog"

	"github.com/kilngpu/kiln/gpu"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Backend owns the wgpu instance. All surfaces and adapters handed out
// derive from this one instance.
type Backend struct {
	opts     Options
	instance *wgpu.Instance
}

var _ gpu.Backend = (*Backend)(nil)

func New(opts Options) *Backend {
	return &Backend{
		opts:     opts,
		instance: wgpu.CreateInstance(nil),
	}
}

// CreateSurface binds a presentation target described by sd, usually
// obtained from a windowing layer, to this backend.
func (b *Backend) CreateSurface(sd *wgpu.SurfaceDescriptor) *Surface {
	return &Surface{surface: b.instance.CreateSurface(sd)}
}

func (b *Backend) RequestAdapter(opts *gpu.AdapterOptions) (gpu.Adapter, error) {
	var compatible *wgpu.Surface
	if opts != nil && opts.CompatibleSurface != nil {
		compatible = opts.CompatibleSurface.(*Surface).surface
	}

	adapter, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    compatible,
		PowerPreference:      b.opts.PowerPreference,
		ForceFallbackAdapter: b.opts.ForceFallbackAdapter,
	})
	if err != nil {
		return nil, fmt.Errorf("request adapter: %w", err)
	}

	slog.Debug("Acquired adapter",
		slog.Bool("compatibleSurface", compatible != nil),
		slog.Bool("fallback", b.opts.ForceFallbackAdapter),
	)

	return newAdapter(adapter), nil
}
