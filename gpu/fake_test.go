package gpu

import "errors"

// Fakes for the backend interface set. The fake backend enumerates
// adapters in registration order, like a driver reporting GPUs.

var errNoAdapter = errors.New("enumeration yielded no adapter")

type fakeSurface struct {
	name    string
	invalid bool

	configures []SurfaceConfig
	devices    []Device
}

func (s *fakeSurface) Configure(dev Device, cfg *SurfaceConfig) {
	s.configures = append(s.configures, *cfg)
	s.devices = append(s.devices, dev)
}

func (s *fakeSurface) Invalidated() bool {
	return s.invalid
}

type fakeDevice struct {
	polls  int
	onPoll func()
}

func (d *fakeDevice) Poll(wait bool) bool {
	d.polls++
	if d.onPoll != nil {
		d.onPoll()
	}
	return true
}

type fakeQueue struct{}

type fakeAdapter struct {
	caps     map[Surface]SurfaceCapabilities
	features []Feature

	deviceErr error
	device    *fakeDevice
	requested []*DeviceDescriptor
}

func (a *fakeAdapter) SupportsSurface(s Surface) bool {
	_, ok := a.caps[s]
	return ok
}

func (a *fakeAdapter) SurfaceCapabilities(s Surface) SurfaceCapabilities {
	return a.caps[s]
}

func (a *fakeAdapter) Features() []Feature {
	return a.features
}

func (a *fakeAdapter) RequestDevice(desc *DeviceDescriptor) (Device, Queue, error) {
	a.requested = append(a.requested, desc)

	if a.deviceErr != nil {
		return nil, nil, a.deviceErr
	}

	if a.device == nil {
		a.device = &fakeDevice{}
	}

	return a.device, fakeQueue{}, nil
}

type fakeBackend struct {
	adapters []*fakeAdapter
	requests int
}

func (b *fakeBackend) RequestAdapter(opts *AdapterOptions) (Adapter, error) {
	b.requests++

	for _, a := range b.adapters {
		if opts != nil && opts.CompatibleSurface != nil && !a.SupportsSurface(opts.CompatibleSurface) {
			continue
		}
		return a, nil
	}

	return nil, errNoAdapter
}

// singleAdapterBackend wires one adapter supporting the given surfaces
// with sensible capabilities.
func singleAdapterBackend(surfaces ...*fakeSurface) (*fakeBackend, *fakeAdapter) {
	caps := make(map[Surface]SurfaceCapabilities, len(surfaces))
	for _, s := range surfaces {
		caps[s] = SurfaceCapabilities{
			Formats:      []Format{FormatBGRA8Unorm, FormatBGRA8UnormSrgb, FormatRGBA16Float},
			PresentModes: []PresentMode{PresentModeFifo, PresentModeImmediate, PresentModeMailbox},
			AlphaModes:   []AlphaMode{AlphaModeOpaque},
		}
	}

	adapter := &fakeAdapter{caps: caps}
	return &fakeBackend{adapters: []*fakeAdapter{adapter}}, adapter
}
