package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '●'
	PipeChar   = '█'
	PipeCap    = '▓'
	SkyChar    = '▔'
	GroundChar = '▀'
)

// Smallest playfield that still shows the gap rows distinctly
const (
	minRenderW = 20
	minRenderH = 8
)

// Render draws the current frame into dst.
// Row 0 holds the HUD; the rest of the buffer shows the view from the sky
// band down to the ground band. Every cell samples the world at its center,
// so the picture scales to any terminal size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a snapshot into dst. Exposed for frontends that keep
// their own copy of the frame.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	w, h := dst.Width(), dst.Height()
	if w < minRenderW || h < minRenderH {
		dst.DrawTextCentered(h/2, "Window too small")
		return
	}

	fieldTop := 1
	fieldH := h - fieldTop
	scaleX := float64(w) / s.Camera.ViewWidth
	scaleY := float64(fieldH) / s.WorldHeight()

	for cy := 0; cy < fieldH; cy++ {
		wy := s.WorldTop() + (float64(cy)+0.5)/scaleY
		for cx := 0; cx < w; cx++ {
			wx := s.Camera.Offset.X + (float64(cx)+0.5)/scaleX
			r, c, ok := sample(s, core.V(wx, wy), 1/scaleY)
			if ok {
				dst.SetColor(cx, fieldTop+cy, r, c)
			}
		}
	}

	drawHUD(dst, s)

	switch s.Phase {
	case core.PhaseIdle:
		drawCenteredMessage(dst, "FLAPPY", "Press SPACE to start")
	case core.PhaseDead:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press SPACE to retry", s.Score))
	}
}

// sample returns what occupies world point p. cellH is the height of one
// screen row in world units and is used to put caps on pipe ends.
func sample(s Snapshot, p core.Vec2, cellH float64) (rune, core.Color, bool) {
	if s.Player.ContainsPoint(p) {
		return PlayerChar, core.ColorBrightYellow, true
	}

	for _, pipe := range s.Pipes {
		if pipe.Top.ContainsPoint(p) {
			if p.Y+cellH >= pipe.Top.Bottom() {
				return PipeCap, core.ColorBrightGreen, true
			}
			return PipeChar, core.ColorGreen, true
		}
		if pipe.Bottom.ContainsPoint(p) {
			if p.Y-cellH < pipe.Bottom.Pos.Y {
				return PipeCap, core.ColorBrightGreen, true
			}
			return PipeChar, core.ColorGreen, true
		}
	}

	if s.Sky.ContainsPoint(p) {
		return SkyChar, core.ColorCyan, true
	}
	if s.Ground.ContainsPoint(p) {
		return GroundChar, core.ColorOrange, true
	}
	return 0, core.ColorDefault, false
}

func drawHUD(dst *core.Screen, s Snapshot) {
	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", s.Score), core.ColorBrightWhite)
	state := s.Phase.String()
	dst.DrawTextColor(dst.Width()-len(state)-2, 0, state, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColor(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
