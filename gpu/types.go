package gpu

// Format identifies the texture format of a presentable surface.
//
// The values mirror the formats a backend can report for surfaces; only
// the 8-bit rgba/bgra unorm pair is ever selected for render surfaces,
// so that downstream blending math runs on a single numeric
// representation.
type Format uint32

const (
	FormatUndefined Format = iota
	FormatRGBA8Unorm
	FormatRGBA8UnormSrgb
	FormatBGRA8Unorm
	FormatBGRA8UnormSrgb
	FormatRGBA16Float
	FormatRGB10A2Unorm
)

func (f Format) String() string {
	switch f {
	case FormatRGBA8Unorm:
		return "rgba8unorm"
	case FormatRGBA8UnormSrgb:
		return "rgba8unorm-srgb"
	case FormatBGRA8Unorm:
		return "bgra8unorm"
	case FormatBGRA8UnormSrgb:
		return "bgra8unorm-srgb"
	case FormatRGBA16Float:
		return "rgba16float"
	case FormatRGB10A2Unorm:
		return "rgb10a2unorm"
	default:
		return "undefined"
	}
}

// PresentMode is the frame presentation timing policy of a surface.
type PresentMode uint32

const (
	PresentModeFifo PresentMode = iota
	PresentModeFifoRelaxed
	PresentModeImmediate
	PresentModeMailbox
)

func (m PresentMode) String() string {
	switch m {
	case PresentModeFifo:
		return "fifo"
	case PresentModeFifoRelaxed:
		return "fifo-relaxed"
	case PresentModeImmediate:
		return "immediate"
	case PresentModeMailbox:
		return "mailbox"
	default:
		return "unknown"
	}
}

// AlphaMode controls how the surface alpha channel is composited.
type AlphaMode uint32

const (
	AlphaModeAuto AlphaMode = iota
	AlphaModeOpaque
	AlphaModePreMultiplied
	AlphaModePostMultiplied
	AlphaModeInherit
)

// Feature is an optional device capability the pool may request when it
// creates a device, provided the adapter supports it.
type Feature uint32

const (
	// FeatureClearTexture allows clearing textures outside a render pass.
	FeatureClearTexture Feature = iota
	// FeatureTimestampQuery allows GPU profiling timer queries.
	FeatureTimestampQuery
)

func (f Feature) String() string {
	switch f {
	case FeatureClearTexture:
		return "clear-texture"
	case FeatureTimestampQuery:
		return "timestamp-query"
	default:
		return "unknown"
	}
}

// TextureUsage describes what a surface texture may be used for.
type TextureUsage uint32

const (
	TextureUsageRenderAttachment TextureUsage = 1 << iota
	TextureUsageTextureBinding
	TextureUsageCopySrc
	TextureUsageCopyDst
)

// SurfaceCapabilities lists what a (surface, adapter) pair supports, in
// the backend's preference order.
type SurfaceCapabilities struct {
	Formats      []Format
	PresentModes []PresentMode
	AlphaModes   []AlphaMode
}

// SurfaceConfig is the negotiated configuration a surface is applied
// with. It must satisfy the backend's capability constraints whenever
// it is applied, not only at creation.
type SurfaceConfig struct {
	Usage  TextureUsage
	Format Format
	Width  uint32
	Height uint32

	PresentMode PresentMode
	AlphaMode   AlphaMode

	// DesiredMaximumFrameLatency bounds the number of frames queued
	// ahead of presentation.
	DesiredMaximumFrameLatency uint32

	// ViewFormats lists additional formats views of the surface texture
	// may use. Render surfaces leave this empty.
	ViewFormats []Format
}

// DeviceDescriptor parameterizes a logical device request.
type DeviceDescriptor struct {
	Label string

	// RequiredFeatures must already be filtered against the adapter's
	// supported features.
	RequiredFeatures []Feature
}

// AdapterOptions filters adapter enumeration.
type AdapterOptions struct {
	// CompatibleSurface restricts enumeration to adapters that can
	// present to the given surface. May be nil.
	CompatibleSurface Surface
}
