package sim

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Config holds all tuning values for a session. Coordinates are screen
// pixels with Y growing downward, matching the render surface.
type Config struct {
	WorldWidth  float64
	WorldHeight float64

	// Gravity is the downward acceleration applied to falling stones.
	Gravity float64
	// SleepTimeThreshold is how long a stone must be idle before the
	// engine puts it to sleep and the session marks it settled.
	SleepTimeThreshold float64

	// SpawnIntervalFrames is the number of physics steps between stone
	// spawns while the session is playing.
	SpawnIntervalFrames int
	StoneMinWidth       float64
	StoneMaxWidth       float64
	StoneHeight         float64
	SpawnY              float64
	Palette             []color.Color

	PlatformWidth  float64
	PlatformHeight float64
	PlatformSpeed  float64
	PlatformY      float64
	LeftBound      float64
	RightBound     float64

	// TargetHeight is how far above the platform top the topmost settled
	// stone must reach to win. MinStackHeight guards against a win firing
	// off a single freshly settled stone.
	TargetHeight   float64
	MinStackHeight float64
}

// DefaultConfig returns the built-in tuning used when no tuning file is
// available.
func DefaultConfig() Config {
	return Config{
		WorldWidth:  800,
		WorldHeight: 600,

		Gravity:            900,
		SleepTimeThreshold: 0.5,

		SpawnIntervalFrames: 120,
		StoneMinWidth:       40,
		StoneMaxWidth:       90,
		StoneHeight:         28,
		SpawnY:              40,
		Palette: []color.Color{
			colornames.Coral,
			colornames.Cadetblue,
			colornames.Goldenrod,
			colornames.Mediumseagreen,
			colornames.Orchid,
			colornames.Slateblue,
		},

		PlatformWidth:  160,
		PlatformHeight: 20,
		PlatformSpeed:  4,
		PlatformY:      540,
		LeftBound:      80,
		RightBound:     720,

		TargetHeight:   220,
		MinStackHeight: 60,
	}
}

// withinBounds clamps an x coordinate for the platform center.
func (c Config) withinBounds(x float64) float64 {
	if x < c.LeftBound {
		return c.LeftBound
	}
	if x > c.RightBound {
		return c.RightBound
	}
	return x
}
