package config

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Dot Wheels"

	// DefaultSeed reproduces the reference composition.
	DefaultSeed = 20251114

	// Headless export size when none is given.
	ExportWidth  = 1600
	ExportHeight = 1200
)
