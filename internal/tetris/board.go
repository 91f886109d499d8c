package tetris

import (
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/termtris/internal/core"
)

// Board dimensions.
const (
	Cols = 10
	Rows = 20
)

// Background is the color of a cell with nothing locked in it.
const Background = core.ColorDefault

// Grid is the rendered board, indexed [row][col].
type Grid [Rows][Cols]core.Color

// cellKey packs a coordinate into a single map key. Both halves keep their
// sign so transient negative rows never collide with visible ones.
type cellKey int64

func keyOf(x, y int) cellKey {
	return cellKey(int64(y)<<32 | int64(uint32(int32(x))))
}

func (k cellKey) point() core.Point {
	return core.Point{X: int(int32(uint32(k))), Y: int(int64(k) >> 32)}
}

// Board holds the locked cells of a session. It is the only persistent
// board state; the visible grid is derived from it on demand.
type Board struct {
	locked *intmap.Map[cellKey, core.Color]
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{locked: intmap.New[cellKey, core.Color](Rows * Cols)}
}

// Reset removes every locked cell.
func (b *Board) Reset() {
	b.locked.Clear()
}

// Len returns the number of locked cells.
func (b *Board) Len() int {
	return b.locked.Len()
}

// Cell returns the locked color at (x, y), if any.
func (b *Board) Cell(x, y int) (core.Color, bool) {
	return b.locked.Get(keyOf(x, y))
}

// Set locks a single cell. Coordinates outside the board are ignored.
func (b *Board) Set(x, y int, c core.Color) {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return
	}
	b.locked.Put(keyOf(x, y), c)
}

// Grid projects the locked cells onto a full grid.
func (b *Board) Grid() Grid {
	var g Grid
	for k, c := range b.locked.All() {
		p := k.point()
		g[p.Y][p.X] = c
	}
	return g
}

// Fits reports whether the piece may occupy its current position.
// Every cell must be within the board's columns. Cells on visible rows
// must also be above the floor and not locked; cells above the board are
// otherwise unrestricted so pieces can fall into view.
func (b *Board) Fits(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= Cols {
			return false
		}
		if c.Y <= -1 {
			continue
		}
		if c.Y >= Rows || b.locked.Has(keyOf(c.X, c.Y)) {
			return false
		}
	}
	return true
}

// DropDistance returns how many rows the piece can fall before its next
// position would not fit.
func (b *Board) DropDistance(p Piece) int {
	n := 0
	for {
		p.MoveBy(0, 1)
		if !b.Fits(p) {
			return n
		}
		n++
	}
}

// Lock commits the piece's visible cells. Cells above the board are
// dropped.
func (b *Board) Lock(p Piece) {
	color := p.Color()
	for _, c := range p.Cells() {
		if c.Y > -1 {
			b.Set(c.X, c.Y, color)
		}
	}
}

// rowFull reports whether every column of row y is locked.
func (b *Board) rowFull(y int) bool {
	for x := range Cols {
		if !b.locked.Has(keyOf(x, y)) {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row in one bottom-to-top pass, then
// shifts each cell above the topmost cleared row down by the number of
// rows cleared. Cells at or below that row stay where they are. Returns
// the number of rows cleared.
func (b *Board) ClearFullRows() int {
	cleared, top := 0, 0
	for y := Rows - 1; y >= 0; y-- {
		if !b.rowFull(y) {
			continue
		}
		for x := range Cols {
			b.locked.Del(keyOf(x, y))
		}
		cleared++
		top = y
	}
	if cleared == 0 {
		return 0
	}

	var above []cellKey
	for k := range b.locked.Keys() {
		if k.point().Y < top {
			above = append(above, k)
		}
	}
	// Lowest rows move first so no cell lands on one that has yet to move.
	slices.SortFunc(above, func(a, c cellKey) int {
		return c.point().Y - a.point().Y
	})
	for _, k := range above {
		p := k.point()
		color, _ := b.locked.Get(k)
		b.locked.Del(k)
		b.locked.Put(keyOf(p.X, p.Y+cleared), color)
	}

	return cleared
}

// IsGameOver reports whether the stack has reached the top row.
func (b *Board) IsGameOver() bool {
	for k := range b.locked.Keys() {
		if k.point().Y < 1 {
			return true
		}
	}
	return false
}
