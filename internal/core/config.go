package core

// RuntimeConfig contains configuration passed to a game when it starts.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Rows    int   // Board rows
	Cols    int   // Board columns
	Seed    int64 // RNG seed; 0 means seed from the clock in the platform layer
}

// DefaultConfig returns a RuntimeConfig for a classic 4x4 game on an 80x24
// terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Rows:    4,
		Cols:    4,
	}
}
