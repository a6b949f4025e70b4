package gpu

// RenderSurface pairs a presentable surface with its negotiated
// configuration and the pool index of the device it was configured
// against.
//
// The render surface borrows the window its surface was created from
// and must not be used after that window is destroyed; the Context
// checks Surface.Invalidated on every reconfiguration and panics on a
// dead borrow.
type RenderSurface struct {
	Surface Surface

	// Config is mutated in place by resize and present mode changes
	// and re-applied through the Context.
	Config SurfaceConfig

	// DevID indexes the owning Context's device pool. Pool entries are
	// never removed or reordered, so the index stays valid.
	DevID int

	// Format is fixed at creation for the life of the surface.
	Format Format
}
