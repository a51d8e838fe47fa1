package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Frame is a single generation handed to a Renderer.
type Frame struct {
	Grid       *Grid
	Generation int
	Speed      int
	// Ended marks the closing frame drawn once the simulation halts.
	Ended bool
}

// Renderer draws frames. Implementations must not retain Grid past the call;
// the loop reuses the buffer on the next generation.
type Renderer interface {
	Render(f Frame) error
}

// Input is one poll result from an InputSource.
type Input struct {
	Quit  bool
	Speed int
}

// InputSource supplies the quit signal and current speed once per
// generation. Poll must never block.
type InputSource interface {
	Poll() Input
}
