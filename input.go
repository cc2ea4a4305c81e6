package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the input state sampled once per frame.
type Input struct {
	// Left/Right are true while the move keys are held.
	Left  bool
	Right bool
	// RestartPressed is true on the frame the restart key is pressed.
	RestartPressed bool
	// QuitPressed is true on the frame the quit key is pressed.
	QuitPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and gamepad.
func (i *Input) Update() {
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	i.RestartPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	i.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)

	// Gamepad: left stick X on the first connected pad.
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			i.Left = true
		} else if leftX > 0.3 {
			i.Right = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			i.RestartPressed = true
		}
	}
}
