package sim

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeStone cp.CollisionType = iota + 1
	collisionTypeBase
	collisionTypeGround
	collisionTypeWall
)

// World owns the chipmunk space, the static ground and walls, and the
// player-moved base platform. A World is built fresh on every session
// (re)start, so collision handlers are installed exactly once per space and
// a restart can never leak duplicate subscriptions.
type World struct {
	cfg   Config
	space *cp.Space

	base      *cp.Body
	baseShape *cp.Shape
	ground    *cp.Shape

	// groundContact latches the first stone that touched the ground.
	groundContact *Block
}

// NewWorld creates a space with gravity, sleeping enabled, the ground and
// wall segments, and the base platform centered between the bounds.
func NewWorld(cfg Config) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})
	space.SetCollisionSlop(0.5)
	space.SleepTimeThreshold = cfg.SleepTimeThreshold

	w := &World{cfg: cfg, space: space}
	w.buildStaticShapes()
	w.buildBase()
	w.setupHandlers()
	return w
}

// Space returns the underlying chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Base returns the platform body.
func (w *World) Base() *cp.Body {
	if w == nil {
		return nil
	}
	return w.base
}

// BaseTop returns the y coordinate of the platform's top edge.
func (w *World) BaseTop() float64 {
	if w == nil || w.base == nil {
		return 0
	}
	return w.base.Position().Y - w.cfg.PlatformHeight/2
}

// GroundContact returns the first stone that touched the ground, if any.
func (w *World) GroundContact() *Block {
	if w == nil {
		return nil
	}
	return w.groundContact
}

// Step advances the simulation.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil {
		return
	}
	w.space.Step(dt)
}

// AddStone creates a falling stone centered at x with the given width and
// adds it to the space.
func (w *World) AddStone(x, width float64, col color.Color) *Block {
	if w == nil || w.space == nil {
		return nil
	}

	height := w.cfg.StoneHeight
	mass := 1.0
	body := cp.NewBody(mass, cp.MomentForBox(mass, width, height))
	body.SetPosition(cp.Vector{X: x, Y: w.cfg.SpawnY})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0.8)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeStone)

	w.space.AddBody(body)
	w.space.AddShape(shape)

	block := &Block{
		Body:   body,
		Shape:  shape,
		Width:  width,
		Height: height,
		Color:  col,
	}
	body.UserData = block
	return block
}

// MoveBase shifts the platform horizontally, clamped to the configured
// bounds, and returns the delta actually applied.
func (w *World) MoveBase(dx float64) float64 {
	if w == nil || w.base == nil || dx == 0 {
		return 0
	}
	pos := w.base.Position()
	next := w.cfg.withinBounds(pos.X + dx)
	applied := next - pos.X
	if applied == 0 {
		return 0
	}
	w.base.SetPosition(cp.Vector{X: next, Y: pos.Y})
	// The space never reindexes rogue static shapes on its own; reinsert
	// the shape so the static index tracks the new position.
	w.space.RemoveShape(w.baseShape)
	w.space.AddShape(w.baseShape)
	return applied
}

// Contacts enumerates the bodies currently touching b via the space's
// contact graph. Sleeping contacts are still reported by the engine, so a
// stone resting on a slept neighbor keeps its edge.
func (w *World) Contacts(b *cp.Body, fn func(other *cp.Body)) {
	if b == nil || fn == nil {
		return
	}
	b.EachArbiter(func(arb *cp.Arbiter) {
		sa, sb := arb.Shapes()
		if sa.Body() == b {
			fn(sb.Body())
		} else {
			fn(sa.Body())
		}
	})
}

func (w *World) buildStaticShapes() {
	if w == nil || w.space == nil {
		return
	}

	width := w.cfg.WorldWidth
	height := w.cfg.WorldHeight
	thickness := 1.0

	ground := cp.NewSegment(w.space.StaticBody, cp.Vector{X: 0, Y: height}, cp.Vector{X: width, Y: height}, thickness)
	ground.SetFriction(0.8)
	ground.SetCollisionType(collisionTypeGround)
	w.ground = w.space.AddShape(ground)

	walls := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: height}},
		{a: cp.Vector{X: width, Y: 0}, b: cp.Vector{X: width, Y: height}},
	}
	for _, seg := range walls {
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeWall)
		w.space.AddShape(shape)
	}
}

func (w *World) buildBase() {
	if w == nil || w.space == nil {
		return
	}

	// The base is a rogue static body: stones can fall asleep resting on
	// it, and the platform controller moves it by repositioning.
	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: w.cfg.WorldWidth / 2, Y: w.cfg.PlatformY})

	shape := cp.NewBox(body, w.cfg.PlatformWidth, w.cfg.PlatformHeight, 0)
	shape.SetFriction(0.9)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeBase)

	w.space.AddShape(shape)

	w.base = body
	w.baseShape = shape
}

func (w *World) setupHandlers() {
	if w == nil || w.space == nil {
		return
	}

	handler := w.space.NewCollisionHandler(collisionTypeStone, collisionTypeGround)
	handler.UserData = w
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if !ok || world == nil || world.groundContact != nil {
			return true
		}
		sa, sb := arb.Shapes()
		stoneShape := sa
		if sa == world.ground {
			stoneShape = sb
		}
		body := stoneShape.Body()
		if body == nil || body.GetType() != cp.BODY_DYNAMIC {
			return true
		}
		if block, ok := body.UserData.(*Block); ok {
			world.groundContact = block
		}
		return true
	}
}
