package gpu

import "errors"

// ErrNoCompatibleDevice means no adapter could be found or created that
// supports the required surface.
var ErrNoCompatibleDevice = errors.New("gpu: no compatible device")

// ErrUnsupportedSurfaceFormat means a compatible device exists but the
// surface offers no 8-bit rgba/bgra normalized format.
var ErrUnsupportedSurfaceFormat = errors.New("gpu: no supported surface format")

// ErrUnsupportedPresentMode means the requested present mode is not in
// the surface's reported capabilities.
var ErrUnsupportedPresentMode = errors.New("gpu: present mode not supported by surface")
