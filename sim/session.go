package sim

import (
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/jakecoffman/cp"
)

// StepDT is the fixed physics timestep; the shell drives one step per
// 60 Hz frame.
const StepDT = 1.0 / 60.0

// Input is the player input sampled for one step.
type Input struct {
	Left  bool
	Right bool
}

// Session is one run of the game: the physics world, the spawned blocks,
// the attachment set, and the outcome state machine. All components receive
// the session explicitly; there is no package-level game state.
type Session struct {
	cfg     Config
	world   *World
	spawner *Spawner
	sched   *Scheduler

	blocks   []*Block
	attached map[*cp.Body]struct{}

	state  State
	events EventQueue
	input  Input
	rng    *rand.Rand
	steps  int
}

// NewSession creates a playing session. The seed drives stone widths,
// positions and colors; pass time-based entropy for normal play and a fixed
// seed for reproducible runs.
func NewSession(cfg Config, seed int64) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		cfg:     cfg,
		spawner: NewSpawner(nil),
		rng:     rand.New(rand.NewSource(seed)),
	}
	s.sched = NewScheduler(
		attachSystem{},
		platformSystem{},
		s.spawner,
		physicsSystem{},
		settleSystem{},
		outcomeSystem{},
	)
	s.world = NewWorld(cfg)
	return s
}

// SetDirector installs a spawn director. Call before stepping.
func (s *Session) SetDirector(d Director) {
	if s == nil || s.spawner == nil {
		return
	}
	s.spawner.director = d
}

// Step advances the session by one fixed timestep. Once the session is
// terminal the step is a no-op: the clock, the spawner, and all step
// processing stop until Restart.
func (s *Session) Step(in Input) {
	if s == nil || s.state.Terminal() {
		return
	}
	s.input = in
	s.steps++
	s.sched.Step(s)
}

// Restart discards the world and all blocks and returns the session to
// Playing with a fresh platform. The old space is dropped wholesale, so no
// handler subscriptions or timers survive a restart.
func (s *Session) Restart() {
	if s == nil {
		return
	}
	s.world = NewWorld(s.cfg)
	s.blocks = nil
	s.attached = nil
	s.state = StatePlaying
	s.events = EventQueue{}
	s.spawner.reset()
	s.steps = 0
	log.Printf("session: restarted")
}

// State returns the current game state.
func (s *Session) State() State {
	if s == nil {
		return StatePlaying
	}
	return s.state
}

// Blocks returns all stones spawned this run.
func (s *Session) Blocks() []*Block {
	if s == nil {
		return nil
	}
	return s.blocks
}

// World returns the physics world for rendering and debug drawing.
func (s *Session) World() *World {
	if s == nil {
		return nil
	}
	return s.world
}

// Events returns the session event queue.
func (s *Session) Events() *EventQueue {
	if s == nil {
		return nil
	}
	return &s.events
}

// Config returns the session tuning.
func (s *Session) Config() Config {
	if s == nil {
		return Config{}
	}
	return s.cfg
}

// Steps returns the number of steps taken this run.
func (s *Session) Steps() int {
	if s == nil {
		return 0
	}
	return s.steps
}

// Attached reports whether a block is currently in the attachment set.
func (s *Session) Attached(b *Block) bool {
	if s == nil || b == nil {
		return false
	}
	_, ok := s.attached[b.Body]
	return ok
}

// AttachedCount returns the size of the current attachment set.
func (s *Session) AttachedCount() int {
	if s == nil {
		return 0
	}
	return len(s.attached)
}

// StackHeight returns the topmost settled stone's height above the
// platform top, or 0 when nothing has settled.
func (s *Session) StackHeight() float64 {
	if s == nil || s.world == nil {
		return 0
	}
	baseTop := s.world.BaseTop()
	best := 0.0
	for _, b := range s.blocks {
		if !b.Settled {
			continue
		}
		if h := baseTop - b.Top(); h > best {
			best = h
		}
	}
	return best
}

// Progress returns StackHeight as a fraction of the target height.
func (s *Session) Progress() float64 {
	if s == nil || s.cfg.TargetHeight <= 0 {
		return 0
	}
	return s.StackHeight() / s.cfg.TargetHeight
}

// SpawnStone creates a stone at x with the given width, tracks it, and
// emits EventStoneSpawned. The spawner calls this on its timer; tests and
// headless tools call it directly.
func (s *Session) SpawnStone(x, width float64) *Block {
	if s == nil || s.world == nil {
		return nil
	}
	var col color.Color = color.White
	if n := len(s.cfg.Palette); n > 0 {
		col = s.cfg.Palette[s.rng.Intn(n)]
	}
	block := s.world.AddStone(x, width, col)
	if block == nil {
		return nil
	}
	s.blocks = append(s.blocks, block)
	s.events.Push(Event{Kind: EventStoneSpawned, Block: block})
	return block
}

// transition moves the state machine forward. Transitions are one-way;
// a terminal session only leaves its state via Restart.
func (s *Session) transition(next State) {
	if s == nil || s.state != StatePlaying || !next.Terminal() {
		return
	}
	s.state = next
	s.events.Push(Event{Kind: EventGameOver, State: next})
	log.Printf("session: %s after %d steps", next, s.steps)
}

// attachSystem recomputes the attachment set from the contact graph. It
// runs before platform movement so a stone that just landed moves with the
// platform in the same step. Settled stones are seeded as roots along with
// the base: they are the frozen part of the stack, and a stone resting on
// them is attached even though no contact path of dynamic bodies reaches
// the base.
type attachSystem struct{}

func (attachSystem) Step(s *Session) {
	if s == nil || s.world == nil {
		return
	}
	roots := []*cp.Body{s.world.Base()}
	for _, b := range s.blocks {
		if b.Settled && b.Body != nil {
			roots = append(roots, b.Body)
		}
	}
	s.attached = AttachedTo(roots, s.world.Contacts)
}

// platformSystem applies held input to the base and drags the attachment
// set along with it. With 1-D input only one direction applies per step;
// holding both keys cancels out.
type platformSystem struct{}

func (platformSystem) Step(s *Session) {
	if s == nil || s.world == nil {
		return
	}
	dx := 0.0
	if s.input.Left && !s.input.Right {
		dx = -s.cfg.PlatformSpeed
	} else if s.input.Right && !s.input.Left {
		dx = s.cfg.PlatformSpeed
	}
	if dx == 0 {
		return
	}
	applied := s.world.MoveBase(dx)
	TranslateAttached(s.attached, applied)
}

// physicsSystem advances the chipmunk space.
type physicsSystem struct{}

func (physicsSystem) Step(s *Session) {
	if s == nil || s.world == nil {
		return
	}
	s.world.Step(StepDT)
}

// settleSystem freezes stones the engine has put to sleep. A settled stone
// becomes static, leaves the attachment set on the next recomputation, and
// starts counting toward the win height.
type settleSystem struct{}

func (settleSystem) Step(s *Session) {
	if s == nil {
		return
	}
	for _, b := range s.blocks {
		if b.Settled || b.Body == nil {
			continue
		}
		if !b.Body.IsSleeping() {
			continue
		}
		// SetType on a still-sleeping body trips the dynamic index
		// bookkeeping; wake it first.
		b.Body.Activate()
		b.Body.SetType(cp.BODY_STATIC)
		b.Settled = true
		delete(s.attached, b.Body)
		s.events.Push(Event{Kind: EventStoneSettled, Block: b})
	}
}

// outcomeSystem checks the two terminal conditions after the physics step.
type outcomeSystem struct{}

func (outcomeSystem) Step(s *Session) {
	if s == nil || s.world == nil || s.state.Terminal() {
		return
	}

	if hit := s.world.GroundContact(); hit != nil {
		s.transition(StateLost)
		return
	}

	// Only settled stones count, so a stone still tumbling past the
	// target line cannot flicker a premature win.
	h := s.StackHeight()
	if h >= s.cfg.TargetHeight && h > s.cfg.MinStackHeight {
		s.transition(StateWon)
	}
}
