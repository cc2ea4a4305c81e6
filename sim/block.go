package sim

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Block is a spawned stone: a dynamic chipmunk body plus the render and
// bookkeeping data the session tracks for it. Blocks are never destroyed;
// they persist until the session restarts.
type Block struct {
	Body  *cp.Body
	Shape *cp.Shape

	Width  float64
	Height float64
	Color  color.Color

	// Settled is set once the engine put the body to sleep and the
	// session froze it in place.
	Settled bool
}

// Position returns the body center.
func (b *Block) Position() cp.Vector {
	if b == nil || b.Body == nil {
		return cp.Vector{}
	}
	return b.Body.Position()
}

// Top returns the y coordinate of the block's top edge. Y grows downward,
// so a smaller Top is higher on screen.
func (b *Block) Top() float64 {
	return b.Position().Y - b.Height/2
}

// Dynamic reports whether the block still participates in free simulation.
func (b *Block) Dynamic() bool {
	if b == nil || b.Body == nil {
		return false
	}
	return b.Body.GetType() == cp.BODY_DYNAMIC
}
