// Package tetris implements the falling-block board engine: the shape
// catalog, pieces, the locked-cell board with row clearing, and the
// tick-driven session state machine. It draws into a core.Screen and has
// no terminal dependency.
package tetris

import (
	"fmt"

	"github.com/vovakirdan/termtris/internal/core"
)

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	ShapeS Shape = iota
	ShapeZ
	ShapeI
	ShapeO
	ShapeJ
	ShapeL
	ShapeT
)

// Shapes lists every shape in catalog order.
var Shapes = [...]Shape{ShapeS, ShapeZ, ShapeI, ShapeO, ShapeJ, ShapeL, ShapeT}

// FrameSize is the side length of a rotation frame mask.
const FrameSize = 5

// Frame is one rotation state of a shape.
type Frame [FrameSize][FrameSize]bool

type shapeDef struct {
	name   string
	color  core.Color
	layout [][FrameSize]string
	frames []Frame
}

// Frames are drawn top-to-bottom with '.' empty and 'O' filled. Each
// silhouette sits in the box so that Piece's (-2, -4) offset centers it
// under the spawn column.
var catalog = [...]shapeDef{
	ShapeS: {name: "S", color: core.ColorGreen, layout: [][FrameSize]string{
		{
			".....",
			".....",
			"..OO.",
			".OO..",
			".....",
		},
		{
			".....",
			"..O..",
			"..OO.",
			"...O.",
			".....",
		},
	}},
	ShapeZ: {name: "Z", color: core.ColorRed, layout: [][FrameSize]string{
		{
			".....",
			".....",
			".OO..",
			"..OO.",
			".....",
		},
		{
			".....",
			"..O..",
			".OO..",
			".O...",
			".....",
		},
	}},
	ShapeI: {name: "I", color: core.ColorCyan, layout: [][FrameSize]string{
		{
			"..O..",
			"..O..",
			"..O..",
			"..O..",
			".....",
		},
		{
			".....",
			"OOOO.",
			".....",
			".....",
			".....",
		},
	}},
	ShapeO: {name: "O", color: core.ColorYellow, layout: [][FrameSize]string{
		{
			".....",
			".....",
			".OO..",
			".OO..",
			".....",
		},
	}},
	ShapeJ: {name: "J", color: core.ColorBlue, layout: [][FrameSize]string{
		{
			".....",
			".O...",
			".OOO.",
			".....",
			".....",
		},
		{
			".....",
			"..OO.",
			"..O..",
			"..O..",
			".....",
		},
		{
			".....",
			".....",
			".OOO.",
			"...O.",
			".....",
		},
		{
			".....",
			"..O..",
			"..O..",
			".OO..",
			".....",
		},
	}},
	ShapeL: {name: "L", color: core.ColorOrange, layout: [][FrameSize]string{
		{
			".....",
			"...O.",
			".OOO.",
			".....",
			".....",
		},
		{
			".....",
			"..O..",
			"..O..",
			"..OO.",
			".....",
		},
		{
			".....",
			".....",
			".OOO.",
			".O...",
			".....",
		},
		{
			".....",
			".OO..",
			"..O..",
			"..O..",
			".....",
		},
	}},
	ShapeT: {name: "T", color: core.ColorMagenta, layout: [][FrameSize]string{
		{
			".....",
			"..O..",
			".OOO.",
			".....",
			".....",
		},
		{
			".....",
			"..O..",
			"..OO.",
			"..O..",
			".....",
		},
		{
			".....",
			".....",
			".OOO.",
			"..O..",
			".....",
		},
		{
			".....",
			"..O..",
			".OO..",
			"..O..",
			".....",
		},
	}},
}

func init() {
	for i := range catalog {
		def := &catalog[i]
		def.frames = make([]Frame, len(def.layout))
		for j, rows := range def.layout {
			f, err := parseFrame(rows)
			if err != nil {
				panic(fmt.Sprintf("tetris: shape %s frame %d: %v", def.name, j, err))
			}
			def.frames[j] = f
		}
	}
}

// parseFrame converts a text mask into a Frame. A tetromino frame must
// contain exactly four filled cells.
func parseFrame(rows [FrameSize]string) (Frame, error) {
	var f Frame
	filled := 0
	for y, row := range rows {
		if len(row) != FrameSize {
			return f, fmt.Errorf("row %d has width %d", y, len(row))
		}
		for x, ch := range row {
			switch ch {
			case 'O':
				f[y][x] = true
				filled++
			case '.':
			default:
				return f, fmt.Errorf("row %d: unexpected %q", y, ch)
			}
		}
	}
	if filled != 4 {
		return f, fmt.Errorf("%d filled cells, want 4", filled)
	}
	return f, nil
}

// Frames returns the ordered rotation frames of the shape.
func (s Shape) Frames() []Frame {
	return catalog[s].frames
}

// Color returns the display color of the shape.
func (s Shape) Color() core.Color {
	return catalog[s].color
}

// String returns the shape's letter.
func (s Shape) String() string {
	if int(s) >= len(catalog) {
		return "?"
	}
	return catalog[s].name
}
