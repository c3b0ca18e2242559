package core

// RuntimeConfig carries terminal and timing settings from the CLI into the
// front end.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driving the engines (default 60)
	Seed     int64 // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Surface is a drawing area with pixel dimensions. Engines that need a
// particular size set it once at construction.
type Surface struct {
	width  int
	height int
}

// NewSurface creates a surface of the given pixel size.
func NewSurface(width, height int) *Surface {
	return &Surface{width: width, height: height}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// SetSize changes the pixel dimensions.
func (s *Surface) SetSize(width, height int) {
	s.width = width
	s.height = height
}
