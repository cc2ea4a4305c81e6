package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/blockstack/common"
	"golang.org/x/image/colornames"
)

// unitImg is a white pixel scaled and rotated into each stone rectangle.
var unitImg = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x18, G: 0x1c, B: 0x24, A: 0xff})

	cfg := g.session.Config()
	world := g.session.World()
	if world == nil {
		return
	}

	// Ground strip.
	ebitenutil.DrawRect(screen, 0, cfg.WorldHeight-4, cfg.WorldWidth, 4, colornames.Dimgray)

	// Target line, pulsing so it reads as a goal rather than geometry.
	baseTop := world.BaseTop()
	targetY := baseTop - cfg.TargetHeight
	pulse := float32(0.5 + 0.5*math.Sin(float64(g.frames)/30))
	a := common.Lerp(80, 200, pulse)
	ebitenutil.DrawLine(screen, 0, targetY, cfg.WorldWidth, targetY, color.NRGBA{R: 0xda, G: 0xa5, B: 0x20, A: uint8(a)})

	// Platform.
	if base := world.Base(); base != nil {
		pos := base.Position()
		ebitenutil.DrawRect(screen,
			pos.X-cfg.PlatformWidth/2, pos.Y-cfg.PlatformHeight/2,
			cfg.PlatformWidth, cfg.PlatformHeight, colornames.Sandybrown)
	}

	// Stones. Falling stones rotate freely, so draw through a GeoM
	// instead of an axis-aligned rect.
	for _, block := range g.session.Blocks() {
		if block == nil || block.Body == nil {
			continue
		}
		pos := block.Body.Position()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(block.Width, block.Height)
		op.GeoM.Translate(-block.Width/2, -block.Height/2)
		op.GeoM.Rotate(block.Body.Angle())
		op.GeoM.Translate(pos.X, pos.Y)
		op.ColorScale.ScaleWithColor(block.Color)
		screen.DrawImage(unitImg, op)
	}

	// Progress bar along the left edge.
	progress := common.Clamp(g.session.Progress(), 0, 1)
	barH := 120.0
	ebitenutil.DrawRect(screen, 8, 40, 6, barH, colornames.Darkslategray)
	ebitenutil.DrawRect(screen, 8, 40+barH*(1-progress), 6, barH*progress, colornames.Gold)
}
