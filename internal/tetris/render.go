package tetris

import (
	"fmt"

	"github.com/vovakirdan/termtris/internal/core"
)

// Layout of the board and side panel in screen characters. Each board
// cell is two characters wide so blocks look square in a terminal.
const (
	cellW      = 2
	boardW     = Cols*cellW + 2 // with border
	boardH     = Rows + 2
	panelGap   = 2
	panelW     = 16
	MinScreenW = boardW + panelGap + panelW
	MinScreenH = boardH
	blockRune  = '█'
	ghostRune  = '░'
	emptyRune  = '·'
)

// Render draws the board, the side panel, and any full-screen message for
// the current state into dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		RenderMessage(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	switch s.state {
	case StatePaused:
		RenderMessage(dst, "PAUSED", "Press P to resume")
		return
	case StateGameOver:
		RenderMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d   Best: %d", s.score, s.HighScore()),
			"Press R to restart, Q to quit")
		return
	}

	ox := (dst.Width() - MinScreenW) / 2
	oy := (dst.Height() - MinScreenH) / 2
	s.renderBoard(dst, ox, oy)
	s.renderPanel(dst, ox+boardW+panelGap, oy)
}

func (s *Session) renderBoard(dst *core.Screen, ox, oy int) {
	dst.DrawBox(core.NewRect(ox, oy, boardW, boardH))

	grid := s.Grid()
	var ghost map[core.Point]bool
	if s.cfg.Display.Ghost && s.state != StateGameOver {
		ghost = make(map[core.Point]bool, 4)
		for _, c := range s.Ghost().Cells() {
			ghost[c] = true
		}
	}

	for y := range Rows {
		for x := range Cols {
			sx := ox + 1 + x*cellW
			sy := oy + 1 + y
			switch c := grid[y][x]; {
			case c != Background:
				drawCell(dst, sx, sy, blockRune, c)
			case ghost[core.Point{X: x, Y: y}]:
				drawCell(dst, sx, sy, ghostRune, s.current.Color())
			default:
				dst.SetCell(sx, sy, ' ', core.ColorDefault)
				dst.SetCell(sx+1, sy, emptyRune, core.ColorDarkGray)
			}
		}
	}
}

func drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	for i := range cellW {
		dst.SetCell(x+i, y, r, c)
	}
}

func (s *Session) renderPanel(dst *core.Screen, px, py int) {
	rows := []struct {
		label string
		value int
	}{
		{"SCORE", s.score},
		{"HIGH SCORE", s.HighScore()},
		{"LEVEL", s.level},
		{"LINES", s.lines},
	}

	y := py + 1
	for _, r := range rows {
		dst.DrawTextColor(px, y, r.label, core.ColorGray)
		dst.DrawText(px, y+1, fmt.Sprintf("%d", r.value))
		y += 3
	}

	dst.DrawTextColor(px, y, "NEXT", core.ColorGray)
	drawFrame(dst, px, y+1, s.next.Shape.Frames()[0], s.next.Color())
}

// drawFrame draws the filled rows of a rotation frame, skipping blank
// rows so the preview stays compact.
func drawFrame(dst *core.Screen, x, y int, f Frame, c core.Color) {
	for row := range FrameSize {
		blank := true
		for col := range FrameSize {
			if f[row][col] {
				blank = false
				drawCell(dst, x+col*cellW, y, blockRune, c)
			}
		}
		if !blank {
			y++
		}
	}
}

// RenderMessage clears dst and draws a full-screen message: a title and
// optional lines below it, vertically centered.
func RenderMessage(dst *core.Screen, title string, lines ...string) {
	dst.Clear()
	y := (dst.Height() - (len(lines)*2 + 1)) / 2
	dst.DrawTextCentered(y, title)
	for i, line := range lines {
		dst.DrawTextCentered(y+2+i*2, line)
	}
}
