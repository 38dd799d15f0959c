package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	manualSpeedCm = 40.0
	fastSpeedCm   = 160.0
)

// Input holds the keyboard state for one update.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	// Fast is true while shift is held.
	Fast bool
	// PausePressed toggles the diagnostics panel.
	PausePressed bool
	// ResumeScript hands the position back to the script.
	ResumeScript bool
	// CopyPressed copies the current position to the clipboard.
	CopyPressed bool
	// ResetPressed forgets the movement direction.
	ResetPressed bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}
	i.MoveX = moveX
	i.Fast = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.ResumeScript = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.CopyPressed = inpututil.IsKeyJustPressed(ebiten.KeyC)
	i.ResetPressed = inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
}

// Speed returns the manual override speed in cm per second.
func (i *Input) Speed() float64 {
	if i.Fast {
		return fastSpeedCm
	}
	return manualSpeedCm
}
