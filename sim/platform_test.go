package sim

import (
	"testing"
)

// noSpawnConfig returns the default tuning with the spawner effectively
// disabled so platform tests only ever see stones they create themselves.
func noSpawnConfig() Config {
	cfg := DefaultConfig()
	cfg.SpawnIntervalFrames = 1 << 30
	return cfg
}

func TestMoveBaseClampsToBounds(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWorld(cfg)

	cases := []struct {
		name  string
		dx    float64
		wantX float64
	}{
		{name: "small_move_applies", dx: 10, wantX: cfg.WorldWidth/2 + 10},
		{name: "huge_right_clamps", dx: 1e6, wantX: cfg.RightBound},
		{name: "huge_left_clamps", dx: -1e6, wantX: cfg.LeftBound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w.MoveBase(tc.dx)
			if got := w.Base().Position().X; got != tc.wantX {
				t.Fatalf("expected base at x=%v, got %v", tc.wantX, got)
			}
		})
	}
}

func TestMoveBaseReturnsAppliedDelta(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWorld(cfg)

	if applied := w.MoveBase(10); applied != 10 {
		t.Fatalf("expected full delta 10, got %v", applied)
	}

	// Park at the right bound, then ask for more: nothing applies.
	w.MoveBase(1e6)
	if applied := w.MoveBase(50); applied != 0 {
		t.Fatalf("expected clamped delta 0 at bound, got %v", applied)
	}

	// One pixel inside the bound, a full-speed move applies partially.
	w.MoveBase(-1)
	if applied := w.MoveBase(4); applied != 1 {
		t.Fatalf("expected partial delta 1, got %v", applied)
	}
}

func TestPlatformHoldsAtBoundUnderSustainedInput(t *testing.T) {
	cfg := noSpawnConfig()
	s := NewSession(cfg, 1)

	for i := 0; i < 1000; i++ {
		s.Step(Input{Right: true})
	}
	if got := s.World().Base().Position().X; got != cfg.RightBound {
		t.Fatalf("expected base parked at right bound %v, got %v", cfg.RightBound, got)
	}

	for i := 0; i < 2000; i++ {
		s.Step(Input{Left: true})
	}
	if got := s.World().Base().Position().X; got != cfg.LeftBound {
		t.Fatalf("expected base parked at left bound %v, got %v", cfg.LeftBound, got)
	}
}

func TestPlatformOppositeInputsCancel(t *testing.T) {
	cfg := noSpawnConfig()
	s := NewSession(cfg, 1)
	start := s.World().Base().Position().X

	for i := 0; i < 30; i++ {
		s.Step(Input{Left: true, Right: true})
	}
	if got := s.World().Base().Position().X; got != start {
		t.Fatalf("expected base unmoved at %v, got %v", start, got)
	}
}

func TestMovedPlatformStillCatchesStone(t *testing.T) {
	cfg := noSpawnConfig()
	s := NewSession(cfg, 1)

	// Park the platform at a bound, well away from where it was built,
	// then drop a stone straight onto it. The stone must land on the
	// platform rather than pass through where it used to be.
	for i := 0; i < 1000; i++ {
		s.Step(Input{Right: true})
	}
	if got := s.World().Base().Position().X; got != cfg.RightBound {
		t.Fatalf("test setup: base at %v, want %v", got, cfg.RightBound)
	}

	b := s.SpawnStone(cfg.RightBound, 60)
	caught := false
	for i := 0; i < 600; i++ {
		s.Step(Input{})
		if s.Attached(b) || b.Settled {
			caught = true
			break
		}
		if s.State() == StateLost {
			break
		}
	}
	if !caught || s.State() == StateLost {
		t.Fatalf("stone fell through the moved platform")
	}
}

func TestLandedStoneRidesPlatform(t *testing.T) {
	cfg := noSpawnConfig()
	s := NewSession(cfg, 1)

	b := s.SpawnStone(cfg.WorldWidth/2, 60)
	if b == nil {
		t.Fatalf("expected a spawned stone")
	}

	// Let it fall onto the platform and come to rest.
	landed := false
	for i := 0; i < 300; i++ {
		s.Step(Input{})
		if s.Attached(b) {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatalf("stone never entered the attachment set")
	}

	beforeStone := b.Position().X
	beforeBase := s.World().Base().Position().X

	for i := 0; i < 10; i++ {
		s.Step(Input{Right: true})
		if b.Settled {
			t.Fatalf("stone settled mid-test; raise SleepTimeThreshold")
		}
	}

	baseDelta := s.World().Base().Position().X - beforeBase
	stoneDelta := b.Position().X - beforeStone
	if baseDelta <= 0 {
		t.Fatalf("expected base to move right, delta %v", baseDelta)
	}
	// The stone is carried by translation plus friction; it must track
	// the platform closely rather than being left behind.
	if diff := stoneDelta - baseDelta; diff > 2 || diff < -2 {
		t.Fatalf("stone delta %v diverged from base delta %v", stoneDelta, baseDelta)
	}
}
