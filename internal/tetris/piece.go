package tetris

import "github.com/vovakirdan/termtris/internal/core"

// Spawn origin: horizontally centered, with the frame's filled rows above
// the visible board so a new piece falls into view.
const (
	SpawnX = 5
	SpawnY = 0
)

// Mask cell (col, row) maps to grid (X+col-frameOffsetX, Y+row-frameOffsetY).
const (
	frameOffsetX = 2
	frameOffsetY = 4
)

// Piece is a positioned, rotatable instance of a shape.
// Pieces never read or write the board; callers validate moves with
// Board.Fits and revert them when they do not fit.
type Piece struct {
	Shape    Shape
	X, Y     int
	Rotation int // always in [0, len(Shape.Frames()))
}

// NewPiece returns a piece of the given shape at the spawn origin.
func NewPiece(s Shape) Piece {
	return Piece{Shape: s, X: SpawnX, Y: SpawnY}
}

// Frame returns the active rotation frame.
func (p Piece) Frame() Frame {
	frames := p.Shape.Frames()
	return frames[mod(p.Rotation, len(frames))]
}

// Color returns the piece's display color.
func (p Piece) Color() core.Color {
	return p.Shape.Color()
}

// Cells returns the grid coordinates covered by the piece.
func (p Piece) Cells() []core.Point {
	f := p.Frame()
	origin := core.Point{X: p.X - frameOffsetX, Y: p.Y - frameOffsetY}
	cells := make([]core.Point, 0, 4)
	for row := range FrameSize {
		for col := range FrameSize {
			if f[row][col] {
				cells = append(cells, origin.Add(col, row))
			}
		}
	}
	return cells
}

// MoveBy translates the piece.
func (p *Piece) MoveBy(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Rotate steps the rotation forward (dir > 0) or backward (dir < 0).
func (p *Piece) Rotate(dir int) {
	p.Rotation = mod(p.Rotation+dir, len(p.Shape.Frames()))
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
