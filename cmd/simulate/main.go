package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/blockstack/sim"
	"github.com/milk9111/blockstack/tuning"
)

// simulate runs headless sessions with a simple catch-the-stone policy and
// prints outcome statistics. Useful for checking a tuning file without
// opening a window.

var (
	sessions   = flag.Int("sessions", 20, "number of sessions to run")
	maxSteps   = flag.Int("steps", 60*120, "step cap per session")
	seed       = flag.Int64("seed", 1, "base rng seed, incremented per session")
	tuningFile = flag.String("tuning", "tuning.yaml", "tuning file to load")
)

func main() {
	flag.Parse()

	spec, err := tuning.LoadSpec(*tuningFile)
	if err != nil {
		log.Printf("simulate: %v, using defaults", err)
		spec = nil
	}
	cfg := spec.Config()

	var director sim.Director
	if spec != nil && spec.Director != "" {
		d, err := tuning.NewScriptDirector(spec.Director)
		if err != nil {
			log.Printf("simulate: director disabled: %v", err)
		} else {
			director = d
		}
	}

	var wins, losses, timeouts int
	var totalHeight float64

	for i := 0; i < *sessions; i++ {
		outcome, height, steps := run(cfg, director, *seed+int64(i), *maxSteps)
		totalHeight += height
		switch outcome {
		case sim.StateWon:
			wins++
		case sim.StateLost:
			losses++
		default:
			timeouts++
		}
		fmt.Printf("session %2d: %-7s height=%6.1f steps=%d\n", i, outcome, height, steps)
	}

	fmt.Printf("\n%d sessions: %d won, %d lost, %d hit the step cap\n", *sessions, wins, losses, timeouts)
	fmt.Printf("mean stack height: %.1f (target %.0f)\n", totalHeight/float64(*sessions), cfg.TargetHeight)

	if wins == 0 && *sessions > 0 {
		os.Exit(1)
	}
}

// run plays one session with a policy that chases the latest falling stone:
// keep the platform under it until it lands, then hold still so the stack
// can settle.
func run(cfg sim.Config, director sim.Director, seed int64, maxSteps int) (sim.State, float64, int) {
	s := sim.NewSession(cfg, seed)
	s.SetDirector(director)

	for step := 0; step < maxSteps; step++ {
		s.Step(policy(s))
		if s.State().Terminal() {
			break
		}
	}
	return s.State(), s.StackHeight(), s.Steps()
}

func policy(s *sim.Session) sim.Input {
	target := fallingStone(s)
	if target == nil {
		return sim.Input{}
	}

	baseX := s.World().Base().Position().X
	stoneX := target.Position().X
	// Dead zone so the platform does not jitter under a centered stone.
	const slack = 3.0
	switch {
	case stoneX < baseX-slack:
		return sim.Input{Left: true}
	case stoneX > baseX+slack:
		return sim.Input{Right: true}
	}
	return sim.Input{}
}

// fallingStone returns the newest stone that is neither settled nor already
// riding the platform.
func fallingStone(s *sim.Session) *sim.Block {
	blocks := s.Blocks()
	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		if b.Settled || s.Attached(b) {
			continue
		}
		return b
	}
	return nil
}
