package flappy

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/flappy/internal/core"
)

// ErrInvalidGeometry is returned when a pipe column cannot hold its gap.
var ErrInvalidGeometry = errors.New("flappy: invalid pipe geometry")

// PipeWidth is the width of every pipe column, in tiles.
const PipeWidth = 1.0

// Rand is the source of uniform random integers in [0, n).
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Pipe is one vertical obstacle column with a gap the player must pass through.
// Rectangles are computed once at construction; only Scored changes afterwards.
type Pipe struct {
	X         float64   // World x of the column's left edge
	Entrance  int       // First gap row, counted from the top
	Top       core.Rect // Solid mass above the gap
	Bottom    core.Rect // Solid mass below the gap
	ScoreArea core.Rect // One-shot trigger in the middle of the gap
	Scored    bool      // Whether the player has already been awarded this pipe
}

// IsGapRow reports whether the given row is part of the passable gap.
func (p Pipe) IsGapRow(row int) bool {
	return row >= p.Entrance && row < p.Entrance+p.gapHeight()
}

func (p Pipe) gapHeight() int {
	return int(p.ScoreArea.Size.Y)
}

// Generator carves pipes with a fixed-height gap at a random row.
type Generator struct {
	columnHeight int
	gapHeight    int
	rng          Rand
}

// NewGenerator creates a pipe generator for columns of columnHeight rows
// with gaps of gapHeight rows. The gap must leave at least one solid row.
func NewGenerator(columnHeight, gapHeight int, rng Rand) (*Generator, error) {
	if columnHeight <= 0 || gapHeight <= 0 || gapHeight >= columnHeight {
		return nil, fmt.Errorf("%w: gap of %d rows in a column of %d rows",
			ErrInvalidGeometry, gapHeight, columnHeight)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidGeometry)
	}
	return &Generator{
		columnHeight: columnHeight,
		gapHeight:    gapHeight,
		rng:          rng,
	}, nil
}

// SetRand replaces the random source, e.g. when a session is reseeded.
func (g *Generator) SetRand(rng Rand) {
	g.rng = rng
}

// ColumnHeight returns the number of rows in every column.
func (g *Generator) ColumnHeight() int {
	return g.columnHeight
}

// GapHeight returns the number of rows in every gap.
func (g *Generator) GapHeight() int {
	return g.gapHeight
}

// Generate creates a pipe at world x with its gap start drawn uniformly
// from [0, columnHeight-gapHeight).
func (g *Generator) Generate(x float64) Pipe {
	entrance := g.rng.Intn(g.columnHeight - g.gapHeight)
	return newPipe(x, entrance, g.columnHeight, g.gapHeight)
}

// newPipe scans the column row by row. Rows above the gap grow the top
// rectangle, rows below it grow the bottom rectangle, gap rows are skipped.
func newPipe(x float64, entrance, columnHeight, gapHeight int) Pipe {
	top := core.R(x, 0, PipeWidth, 0)
	bottom := core.R(x, float64(entrance+gapHeight), PipeWidth, 0)

	for row := 0; row < columnHeight; row++ {
		switch {
		case row < entrance:
			top.Size.Y++
		case row >= entrance+gapHeight:
			bottom.Size.Y++
		}
	}

	return Pipe{
		X:         x,
		Entrance:  entrance,
		Top:       top,
		Bottom:    bottom,
		ScoreArea: core.R(x+PipeWidth/4, float64(entrance), PipeWidth/2, float64(gapHeight)),
	}
}
