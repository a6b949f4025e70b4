package webgpu

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/golang-lru/v2"
	"github.com/kilngpu/kiln/gpu"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Adapter wraps a wgpu adapter. Capability queries go through wgpu and
// can be expensive, so results are cached per surface; the cache is
// small since an application rarely has more than a handful of windows.
type Adapter struct {
	adapter *wgpu.Adapter
	caps    *lru.Cache[*Surface, gpu.SurfaceCapabilities]
}

var _ gpu.Adapter = (*Adapter)(nil)

func newAdapter(adapter *wgpu.Adapter) *Adapter {
	caps, err := lru.New[*Surface, gpu.SurfaceCapabilities](8)
	Handle(err, "create capability cache")

	return registerWithGC(&Adapter{
		adapter: adapter,
		caps:    caps,
	})
}

func (a *Adapter) Release() {
	if a.adapter != nil {
		a.adapter.Release()
		a.adapter = nil
	}
}

func (a *Adapter) SupportsSurface(s gpu.Surface) bool {
	return len(a.SurfaceCapabilities(s).Formats) > 0
}

func (a *Adapter) SurfaceCapabilities(s gpu.Surface) gpu.SurfaceCapabilities {
	surface := s.(*Surface)

	if caps, ok := a.caps.Get(surface); ok {
		return caps
	}

	raw := surface.surface.GetCapabilities(a.adapter)

	caps := gpu.SurfaceCapabilities{
		Formats:      formatsFromWGPU(raw.Formats),
		PresentModes: presentModesFromWGPU(raw.PresentModes),
		AlphaModes:   alphaModesFromWGPU(raw.AlphaModes),
	}

	slog.Debug("Queried surface capabilities",
		slog.Any("formats", caps.Formats),
		slog.Any("presentModes", caps.PresentModes),
	)

	a.caps.Add(surface, caps)

	return caps
}

func (a *Adapter) Features() []gpu.Feature {
	var features []gpu.Feature

	// clear-texture is a wgpu native extension the binding does not
	// expose, timestamp queries are part of the standard feature set.
	if a.adapter.HasFeature(wgpu.FeatureNameTimestampQuery) {
		features = append(features, gpu.FeatureTimestampQuery)
	}

	return features
}

func (a *Adapter) RequestDevice(desc *gpu.DeviceDescriptor) (gpu.Device, gpu.Queue, error) {
	var wdesc wgpu.DeviceDescriptor
	if desc != nil {
		wdesc.Label = desc.Label
		for _, f := range desc.RequiredFeatures {
			wdesc.RequiredFeatures = append(wdesc.RequiredFeatures, featureToWGPU(f))
		}
	}

	device, err := a.adapter.RequestDevice(&wdesc)
	if err != nil {
		return nil, nil, fmt.Errorf("request device: %w", err)
	}

	queue := device.GetQueue()

	return registerWithGC(&Device{device: device}), registerWithGC(&Queue{queue: queue}), nil
}
