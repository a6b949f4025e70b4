package gpu

// Backend is the entry point into the graphics backend. It is created
// once at startup, configured from the environment, and passed into the
// Context explicitly; this package never constructs one.
type Backend interface {
	// RequestAdapter enumerates adapters and returns one matching the
	// given options. The call may block while the backend negotiates
	// with the driver.
	RequestAdapter(opts *AdapterOptions) (Adapter, error)
}

// Adapter is one physical or logical GPU. The Context uses it for
// capability queries and device requests only; it is never handed out.
type Adapter interface {
	// SupportsSurface reports whether the adapter can present to the
	// given surface.
	SupportsSurface(s Surface) bool

	// SurfaceCapabilities returns what the adapter supports for the
	// given surface, in the backend's preference order.
	SurfaceCapabilities(s Surface) SurfaceCapabilities

	// Features lists the optional capabilities the adapter supports.
	Features() []Feature

	// RequestDevice creates the logical device and its queue. The call
	// may block while the backend negotiates with the driver.
	RequestDevice(desc *DeviceDescriptor) (Device, Queue, error)
}

// Device is the operational GPU handle exposed to rendering code.
// Code that needs the full backend API asserts it to the driver's
// concrete type.
type Device interface {
	// Poll processes outstanding work on the device. With wait true it
	// blocks until the device reports progress. It reports whether the
	// queue is empty.
	Poll(wait bool) bool
}

// Queue is the device's submission queue. It is opaque at this layer;
// rendering code asserts it to the driver's concrete type.
type Queue interface{}

// Surface is a presentable target, typically created from a window.
// A Surface must not outlive its window; implementations flag that via
// Invalidated.
type Surface interface {
	// Configure applies cfg to the surface against dev. A configuration
	// the backend rejects is an unrecoverable programming error and
	// panics rather than returning.
	Configure(dev Device, cfg *SurfaceConfig)

	// Invalidated reports whether the presentation target behind the
	// surface is gone. Using an invalidated surface panics.
	Invalidated() bool
}

// usefulFeatures is the fixed set of optional capabilities worth
// enabling on every device the pool creates.
var usefulFeatures = []Feature{FeatureClearTexture, FeatureTimestampQuery}

func requestedFeatures(adapter Adapter) []Feature {
	supported := adapter.Features()

	var features []Feature
	for _, f := range usefulFeatures {
		for _, s := range supported {
			if f == s {
				features = append(features, f)
				break
			}
		}
	}

	return features
}
