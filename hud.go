package main

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/rotate/anim"
)

const hudFontSize = 14

// HUD prints the animation state in the top-left corner.
type HUD struct {
	face text.Face
}

func NewHUD() (*HUD, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("hud: load font: %w", err)
	}
	return &HUD{face: &text.GoTextFace{Source: src, Size: hudFontSize}}, nil
}

func (h *HUD) Draw(screen *ebiten.Image, p anim.ProfessorState, f anim.FishState, paused bool) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.LineSpacing = hudFontSize * 1.4
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, hudText(p, f, paused, ebiten.ActualFPS()), h.face, op)
}

func hudText(p anim.ProfessorState, f anim.FishState, paused bool, fps float64) string {
	mode := "patrol"
	if p.Spinning {
		mode = fmt.Sprintf("spin %.0f/180", p.SpinProgressDeg)
	}
	if paused {
		mode += " (paused)"
	}
	return fmt.Sprintf(
		"Professor: %s  z=%.1f  speed=%.0f  heading=%.1f\nFish: orbit=%.1f  spin=%.1f\nFPS: %.1f\nP pause  R reset  H hud  Esc quit",
		mode, p.Pose.Position.Z(), p.Speed, p.HeadingDeg,
		f.OrbitDeg, f.SpinDeg,
		fps,
	)
}
