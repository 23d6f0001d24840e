package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the keyboard state the demo reacts to.
type Input struct {
	// EscapeHeld is true while Escape is down; the host stops rendering.
	EscapeHeld bool
	// PausePressed is true on the frame P was pressed.
	PausePressed bool
	// ResetPressed is true on the frame R was pressed.
	ResetPressed bool
	// HUDPressed toggles the state readout (H).
	HUDPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard.
func (i *Input) Update() {
	i.EscapeHeld = ebiten.IsKeyPressed(ebiten.KeyEscape)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyP)
	i.ResetPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.HUDPressed = inpututil.IsKeyJustPressed(ebiten.KeyH)
}

// EscapeDown reports whether the quit key is held.
func (i *Input) EscapeDown() bool {
	return i.EscapeHeld
}
