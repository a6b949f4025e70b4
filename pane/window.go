// Package pane is a thin windowing layer. It creates a presentation
// target on the current platform and drives the render loop.
package pane

import "github.com/oliverbestmann/webgpu/wgpu"

type Window interface {
	// GetSize returns the drawable size in pixels.
	GetSize() (uint32, uint32)

	// SurfaceDescriptor describes the window to the gpu backend.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Run calls render once per display frame until the window is
	// closed or render fails.
	Run(render func() error) error

	Terminate()
}
