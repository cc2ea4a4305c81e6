package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/blockstack/common"
	"github.com/milk9111/blockstack/sim"
	"github.com/milk9111/blockstack/tuning"
)

type Game struct {
	frames int
	debug  bool

	tuningFile string
	spec       *tuning.Spec

	input   *Input
	session *sim.Session

	// ui is non-nil only while a terminal message is showing.
	ui             *ebitenui.UI
	requestRestart bool
	requestQuit    bool

	watcher       *tuning.Watcher
	pendingTuning bool
}

func NewGame(tuningFile string, seed int64, debug bool) *Game {
	spec, err := tuning.LoadSpec(tuningFile)
	if err != nil {
		log.Printf("failed to load tuning %s, using defaults: %v", tuningFile, err)
	}

	session := sim.NewSession(spec.Config(), seed)
	applyDirector(session, spec)

	g := &Game{
		debug:      debug,
		tuningFile: tuningFile,
		spec:       spec,
		input:      NewInput(),
		session:    session,
	}

	// Tuning hot reload is best-effort; without a tuning/ dir on disk the
	// embedded defaults are all there is to watch.
	if watcher, err := tuning.NewWatcher("tuning", "tuning/scripts"); err == nil {
		g.watcher = watcher
	} else {
		log.Printf("tuning watcher disabled: %v", err)
	}

	return g
}

func applyDirector(session *sim.Session, spec *tuning.Spec) {
	if session == nil || spec == nil || spec.Director == "" {
		return
	}
	director, err := tuning.NewScriptDirector(spec.Director)
	if err != nil {
		log.Printf("spawn director disabled: %v", err)
		return
	}
	session.SetDirector(director)
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()

	if g.input.QuitPressed || g.requestQuit {
		if g.watcher != nil {
			if err := g.watcher.Close(); err != nil {
				log.Printf("tuning watcher close: %v", err)
			}
			g.watcher = nil
		}
		return ebiten.Termination
	}

	g.drainTuningEvents()

	if g.requestRestart || (g.input.RestartPressed && g.session.State().Terminal()) {
		g.restart()
	}

	g.session.Step(sim.Input{Left: g.input.Left, Right: g.input.Right})

	for _, evt := range g.session.Events().Drain() {
		switch evt.Kind {
		case sim.EventStoneSettled:
			log.Printf("stone settled, stack height %.0f", g.session.StackHeight())
		case sim.EventGameOver:
			g.ui = NewGameOverUI(g, evt.State.Message())
		}
	}

	if g.ui != nil {
		g.ui.Update()
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)

	if g.debug {
		DebugDrawSpace(screen, g.session.World())
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Frames: %d    FPS: %.2f    Height: %.0f / %.0f",
		g.frames, ebiten.ActualFPS(), g.session.StackHeight(), g.session.Config().TargetHeight,
	))

	if g.ui != nil {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// restart rebuilds the session, applying any tuning edits picked up by the
// watcher since the last run.
func (g *Game) restart() {
	g.requestRestart = false
	g.ui = nil

	if g.pendingTuning {
		g.pendingTuning = false
		spec, err := tuning.LoadSpec(g.tuningFile)
		if err != nil {
			log.Printf("failed to reload tuning %s, keeping previous: %v", g.tuningFile, err)
		} else {
			g.spec = spec
		}
		g.session = sim.NewSession(g.spec.Config(), 0)
	} else {
		g.session.Restart()
	}
	applyDirector(g.session, g.spec)
}

func (g *Game) drainTuningEvents() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("tuning changed (%s), applied on next restart", name)
			g.pendingTuning = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			if err != nil {
				log.Printf("tuning watcher: %v", err)
			}
		default:
			return
		}
	}
}
