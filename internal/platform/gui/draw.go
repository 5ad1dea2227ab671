package gui

import (
	"image/color"
	"strconv"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

// Palette used by the window renderer.
var (
	colorBackground = color.RGBA{R: 0x4e, G: 0xc0, B: 0xca, A: 0xff}
	colorSky        = color.RGBA{R: 0x2b, G: 0x6f, B: 0x8a, A: 0xff}
	colorGround     = color.RGBA{R: 0xde, G: 0xd8, B: 0x95, A: 0xff}
	colorPipe       = color.RGBA{R: 0x5e, G: 0xa8, B: 0x2e, A: 0xff}
	colorPipeCap    = color.RGBA{R: 0x3f, G: 0x7a, B: 0x1c, A: 0xff}
	colorPlayer     = color.RGBA{R: 0xf8, G: 0xd3, B: 0x2b, A: 0xff}
	colorText       = color.White
	colorShade      = color.RGBA{A: 0x90}
)

// capHeight is the height of a pipe cap in tiles.
const capHeight = 0.3

// transform maps world tiles onto window pixels. The view keeps its aspect
// ratio and is centered in the window.
type transform struct {
	scale   float64 // Pixels per tile
	offX    float64 // Left margin in pixels
	offY    float64 // Top margin in pixels
	originX float64 // World x shown at the left edge
	originY float64 // World y shown at the top edge
}

// newTransform fits the visible world of s into a w x h pixel window.
func newTransform(w, h int, s flappy.Snapshot) transform {
	viewW, viewH := s.Camera.ViewWidth, s.WorldHeight()
	if viewW <= 0 || viewH <= 0 {
		return transform{}
	}

	scale := min(float64(w)/viewW, float64(h)/viewH)
	return transform{
		scale:   scale,
		offX:    (float64(w) - viewW*scale) / 2,
		offY:    (float64(h) - viewH*scale) / 2,
		originX: s.Camera.Offset.X,
		originY: s.WorldTop(),
	}
}

// rect converts a world rectangle to pixel position and size.
func (t transform) rect(r core.Rect) (x, y, w, h float32) {
	return float32((r.Pos.X-t.originX)*t.scale + t.offX),
		float32((r.Pos.Y-t.originY)*t.scale + t.offY),
		float32(r.Size.X * t.scale),
		float32(r.Size.Y * t.scale)
}

// viewRect returns the pixel bounds of the whole visible world.
func (t transform) viewRect(s flappy.Snapshot) (x, y, w, h float32) {
	return t.rect(core.R(t.originX, t.originY, s.Camera.ViewWidth, s.WorldHeight()))
}

// pipeCaps returns the cap strips drawn at the gap side of each pipe part.
// Parts with no rows get no cap.
func pipeCaps(p flappy.Pipe) []core.Rect {
	var caps []core.Rect
	if !p.Top.Empty() {
		caps = append(caps, core.R(p.Top.Pos.X-0.1, p.Top.Bottom()-capHeight, p.Top.Size.X+0.2, capHeight))
	}
	if !p.Bottom.Empty() {
		caps = append(caps, core.R(p.Bottom.Pos.X-0.1, p.Bottom.Pos.Y, p.Bottom.Size.X+0.2, capHeight))
	}
	return caps
}

// overlayLines returns the centered message for the phase, if any.
func overlayLines(s flappy.Snapshot) []string {
	switch s.Phase {
	case core.PhaseIdle:
		return []string{"FLAPPY", "Press SPACE or click to start"}
	case core.PhaseDead:
		return []string{"GAME OVER", "Score: " + strconv.Itoa(s.Score), "Press SPACE to retry"}
	default:
		return nil
	}
}
