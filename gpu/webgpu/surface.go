package webgpu

import (
	"github.com/kilngpu/kiln/gpu"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Surface wraps a wgpu surface. It stays valid until the owning window
// goes away, at which point the windowing layer calls Invalidate.
type Surface struct {
	surface *wgpu.Surface
	invalid bool
}

var _ gpu.Surface = (*Surface)(nil)

func (s *Surface) Configure(dev gpu.Device, cfg *gpu.SurfaceConfig) {
	s.surface.Configure(dev.(*Device).device, &wgpu.SurfaceConfiguration{
		Usage:                      usageToWGPU(cfg.Usage),
		Format:                     formatToWGPU(cfg.Format),
		Width:                      cfg.Width,
		Height:                     cfg.Height,
		PresentMode:                presentModeToWGPU(cfg.PresentMode),
		AlphaMode:                  alphaModeToWGPU(cfg.AlphaMode),
		DesiredMaximumFrameLatency: cfg.DesiredMaximumFrameLatency,
	})
}

func (s *Surface) Invalidated() bool {
	return s.invalid
}

// Invalidate releases the surface. The windowing layer calls this when
// the window behind the surface is destroyed.
func (s *Surface) Invalidate() {
	if s.invalid {
		return
	}

	s.invalid = true
	s.surface.Release()
	s.surface = nil
}

// GetCurrentTexture acquires the next presentable texture. The caller
// releases it, or hands it to Present.
func (s *Surface) GetCurrentTexture() (*wgpu.Texture, error) {
	return s.surface.GetCurrentTexture()
}

// Present shows the texture last acquired with GetCurrentTexture.
func (s *Surface) Present() {
	s.surface.Present()
}
