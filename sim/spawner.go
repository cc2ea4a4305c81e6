package sim

import (
	"log"
)

// Director adjusts spawn parameters as the stack grows. progress is the
// current settled stack height as a fraction of the target height.
// Implementations live outside sim (the tuning package provides a scripted
// one); a nil Director leaves spawning at the configured fixed values.
type Director interface {
	Next(progress float64) (widthScale, intervalScale float64, err error)
}

// Spawner creates one falling stone every configured interval while the
// session is playing. The timer is a plain frame counter owned by the
// session's step loop, so stopping the session stops the timer and a
// restart resets it without anything to cancel.
type Spawner struct {
	frames   int
	interval int
	director Director
}

func NewSpawner(director Director) *Spawner {
	return &Spawner{director: director}
}

// Step counts down to the next spawn and creates the stone when due.
func (sp *Spawner) Step(s *Session) {
	if sp == nil || s == nil || s.state != StatePlaying {
		return
	}

	if sp.interval <= 0 {
		sp.interval = s.cfg.SpawnIntervalFrames
	}

	sp.frames++
	if sp.frames < sp.interval {
		return
	}
	sp.frames = 0
	sp.spawn(s)
}

func (sp *Spawner) spawn(s *Session) {
	cfg := s.cfg

	widthScale, intervalScale := 1.0, 1.0
	if sp.director != nil {
		ws, is, err := sp.director.Next(s.Progress())
		if err != nil {
			log.Printf("spawner: director error, falling back to fixed spawning: %v", err)
			sp.director = nil
		} else {
			widthScale = clampScale(ws)
			intervalScale = clampScale(is)
		}
	}

	width := cfg.StoneMinWidth + s.rng.Float64()*(cfg.StoneMaxWidth-cfg.StoneMinWidth)
	width *= widthScale
	if width < 8 {
		width = 8
	}

	// Keep the stone fully on screen.
	x := width/2 + s.rng.Float64()*(cfg.WorldWidth-width)

	if s.SpawnStone(x, width) == nil {
		return
	}

	sp.interval = int(float64(cfg.SpawnIntervalFrames) * intervalScale)
	if sp.interval < 1 {
		sp.interval = 1
	}
}

// reset clears the spawn timer for a session restart.
func (sp *Spawner) reset() {
	if sp == nil {
		return
	}
	sp.frames = 0
	sp.interval = 0
}

func clampScale(v float64) float64 {
	if v < 0.1 {
		return 0.1
	}
	if v > 10 {
		return 10
	}
	return v
}
