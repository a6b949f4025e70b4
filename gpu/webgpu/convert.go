package webgpu

import (
	"github.com/kilngpu/kiln/gpu"
	"github.com/oliverbestmann/webgpu/wgpu"
)

func formatToWGPU(f gpu.Format) wgpu.TextureFormat {
	switch f {
	case gpu.FormatRGBA8Unorm:
		return wgpu.TextureFormatRGBA8Unorm
	case gpu.FormatRGBA8UnormSrgb:
		return wgpu.TextureFormatRGBA8UnormSrgb
	case gpu.FormatBGRA8Unorm:
		return wgpu.TextureFormatBGRA8Unorm
	case gpu.FormatBGRA8UnormSrgb:
		return wgpu.TextureFormatBGRA8UnormSrgb
	case gpu.FormatRGBA16Float:
		return wgpu.TextureFormatRGBA16Float
	case gpu.FormatRGB10A2Unorm:
		return wgpu.TextureFormatRGB10A2Unorm
	default:
		return wgpu.TextureFormatUndefined
	}
}

func formatFromWGPU(f wgpu.TextureFormat) gpu.Format {
	switch f {
	case wgpu.TextureFormatRGBA8Unorm:
		return gpu.FormatRGBA8Unorm
	case wgpu.TextureFormatRGBA8UnormSrgb:
		return gpu.FormatRGBA8UnormSrgb
	case wgpu.TextureFormatBGRA8Unorm:
		return gpu.FormatBGRA8Unorm
	case wgpu.TextureFormatBGRA8UnormSrgb:
		return gpu.FormatBGRA8UnormSrgb
	case wgpu.TextureFormatRGBA16Float:
		return gpu.FormatRGBA16Float
	case wgpu.TextureFormatRGB10A2Unorm:
		return gpu.FormatRGB10A2Unorm
	default:
		return gpu.FormatUndefined
	}
}

// formatsFromWGPU converts a capability list, dropping formats the gpu
// package has no name for. Order is preserved, the surface reports its
// preferred format first.
func formatsFromWGPU(formats []wgpu.TextureFormat) []gpu.Format {
	var out []gpu.Format
	for _, f := range formats {
		if g := formatFromWGPU(f); g != gpu.FormatUndefined {
			out = append(out, g)
		}
	}

	return out
}

func presentModeToWGPU(m gpu.PresentMode) wgpu.PresentMode {
	switch m {
	case gpu.PresentModeFifoRelaxed:
		return wgpu.PresentModeFifoRelaxed
	case gpu.PresentModeImmediate:
		return wgpu.PresentModeImmediate
	case gpu.PresentModeMailbox:
		return wgpu.PresentModeMailbox
	default:
		return wgpu.PresentModeFifo
	}
}

func presentModesFromWGPU(modes []wgpu.PresentMode) []gpu.PresentMode {
	var out []gpu.PresentMode
	for _, m := range modes {
		switch m {
		case wgpu.PresentModeFifo:
			out = append(out, gpu.PresentModeFifo)
		case wgpu.PresentModeFifoRelaxed:
			out = append(out, gpu.PresentModeFifoRelaxed)
		case wgpu.PresentModeImmediate:
			out = append(out, gpu.PresentModeImmediate)
		case wgpu.PresentModeMailbox:
			out = append(out, gpu.PresentModeMailbox)
		}
	}

	return out
}

func alphaModeToWGPU(m gpu.AlphaMode) wgpu.CompositeAlphaMode {
	switch m {
	case gpu.AlphaModeOpaque:
		return wgpu.CompositeAlphaModeOpaque
	case gpu.AlphaModePreMultiplied:
		return wgpu.CompositeAlphaModePremultiplied
	case gpu.AlphaModePostMultiplied:
		return wgpu.CompositeAlphaModeUnpremultiplied
	case gpu.AlphaModeInherit:
		return wgpu.CompositeAlphaModeInherit
	default:
		return wgpu.CompositeAlphaModeAuto
	}
}

func alphaModesFromWGPU(modes []wgpu.CompositeAlphaMode) []gpu.AlphaMode {
	var out []gpu.AlphaMode
	for _, m := range modes {
		switch m {
		case wgpu.CompositeAlphaModeAuto:
			out = append(out, gpu.AlphaModeAuto)
		case wgpu.CompositeAlphaModeOpaque:
			out = append(out, gpu.AlphaModeOpaque)
		case wgpu.CompositeAlphaModePremultiplied:
			out = append(out, gpu.AlphaModePreMultiplied)
		case wgpu.CompositeAlphaModeUnpremultiplied:
			out = append(out, gpu.AlphaModePostMultiplied)
		case wgpu.CompositeAlphaModeInherit:
			out = append(out, gpu.AlphaModeInherit)
		}
	}

	return out
}

func featureToWGPU(f gpu.Feature) wgpu.FeatureName {
	switch f {
	case gpu.FeatureTimestampQuery:
		return wgpu.FeatureNameTimestampQuery
	default:
		return wgpu.FeatureNameUndefined
	}
}

func usageToWGPU(u gpu.TextureUsage) wgpu.TextureUsage {
	var out wgpu.TextureUsage

	if u&gpu.TextureUsageRenderAttachment != 0 {
		out |= wgpu.TextureUsageRenderAttachment
	}
	if u&gpu.TextureUsageTextureBinding != 0 {
		out |= wgpu.TextureUsageTextureBinding
	}
	if u&gpu.TextureUsageCopySrc != 0 {
		out |= wgpu.TextureUsageCopySrc
	}
	if u&gpu.TextureUsageCopyDst != 0 {
		out |= wgpu.TextureUsageCopyDst
	}

	return out
}
