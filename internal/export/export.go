// Package export writes snapshots of a game: the terminal screen as text,
// and the board as a PNG or WebP image.
package export

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/atotto/clipboard"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/tetris"
)

// Image layout in pixels.
const (
	CellSize    = 24
	PreviewCell = 16
	headerH     = 40
	labelH      = 24
	padding     = 8
	fontSize    = 16
)

var (
	backgroundColor = color.RGBA{R: 16, G: 16, B: 16, A: 255}
	gridLineColor   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	textColor       = color.White
)

// Board is the part of a session drawn into an image.
type Board struct {
	Grid  tetris.Grid
	State core.GameState
	Next  tetris.Shape
}

// BoardOf captures the session's current board.
func BoardOf(s *tetris.Session) Board {
	return Board{Grid: s.Grid(), State: s.State(), Next: s.Next().Shape}
}

// Text returns the screen as plain text with trailing spaces trimmed.
func Text(s *core.Screen) string {
	lines := make([]string, s.Height())
	for y := range lines {
		lines[y] = strings.TrimRight(s.Row(y), " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n"
}

// Renderer draws boards into images. It holds the parsed font face.
type Renderer struct {
	face font.Face
}

// NewRenderer parses the embedded monospace font.
func NewRenderer() (*Renderer, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("export: cannot parse font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &Renderer{face: face}, nil
}

// ImageSize returns the dimensions of every rendered board.
func ImageSize() (w, h int) {
	return tetris.Cols*CellSize + tetris.FrameSize*PreviewCell + 3*padding,
		headerH + tetris.Rows*CellSize + 2*padding
}

// previewOrigin is the top-left pixel of the next-piece frame.
func previewOrigin() (x, y int) {
	return 2*padding + tetris.Cols*CellSize, padding + headerH + labelH
}

// Image draws the board with a score header above it and the next piece
// beside it.
func (r *Renderer) Image(b Board) image.Image {
	w, h := ImageSize()
	dc := gg.NewContext(w, h)
	dc.SetColor(backgroundColor)
	dc.Clear()

	dc.SetFontFace(r.face)
	dc.SetColor(textColor)
	header := fmt.Sprintf("SCORE %d  LV %d  L %d", b.State.Score, b.State.Level, b.State.Lines)
	dc.DrawStringAnchored(header, float64(w)/2, float64(padding+headerH/2), 0.5, 0.5)

	top := float64(padding + headerH)
	for y := range tetris.Rows {
		for x := range tetris.Cols {
			px := float64(padding + x*CellSize)
			py := top + float64(y*CellSize)
			c := b.Grid[y][x]
			if c == tetris.Background {
				dc.SetColor(gridLineColor)
				dc.DrawRectangle(px, py, CellSize, CellSize)
				dc.Stroke()
				continue
			}
			dc.SetColor(c.RGBA())
			dc.DrawRectangle(px+1, py+1, CellSize-2, CellSize-2)
			dc.Fill()
		}
	}

	ox, oy := previewOrigin()
	dc.SetColor(textColor)
	dc.DrawStringAnchored("NEXT", float64(ox), float64(oy-labelH/2), 0, 0.5)
	frame := b.Next.Frames()[0]
	dc.SetColor(b.Next.Color().RGBA())
	for row := range tetris.FrameSize {
		for col := range tetris.FrameSize {
			if !frame[row][col] {
				continue
			}
			px := float64(ox + col*PreviewCell)
			py := float64(oy + row*PreviewCell)
			dc.DrawRectangle(px+1, py+1, PreviewCell-2, PreviewCell-2)
		}
	}
	dc.Fill()

	return dc.Image()
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := gg.NewContextForImage(img).EncodePNG(w); err != nil {
		return fmt.Errorf("export: png encode: %w", err)
	}
	return nil
}

// EncodeWebP writes img as lossless WebP.
func EncodeWebP(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("export: webp encode: %w", err)
	}
	return nil
}

// writeClipboard is replaced in tests; the system clipboard needs a
// display server.
var writeClipboard = clipboard.WriteAll

// CopyText puts text on the system clipboard.
func CopyText(text string) error {
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("export: clipboard: %w", err)
	}
	return nil
}

// Format selects which files Save writes.
type Format string

const (
	FormatText Format = "txt"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatPNG, FormatWebP:
		return f, nil
	}
	return "", fmt.Errorf("export: unknown format %q (want txt, png or webp)", s)
}

// Exporter saves snapshots into a directory with timestamped names.
type Exporter struct {
	dir      string
	renderer *Renderer
	now      func() time.Time
}

// New returns an exporter writing into dir, creating it if needed.
// A leading ~ is expanded to the home directory.
func New(dir string) (*Exporter, error) {
	if dir != "" && dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("export: cannot expand home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: cannot create directory %s: %w", dir, err)
	}

	r, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	return &Exporter{dir: dir, renderer: r, now: time.Now}, nil
}

// Dir returns the output directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// Save writes one file per format and returns their paths. The text
// format uses screen; image formats use board.
func (e *Exporter) Save(screen *core.Screen, board Board, formats ...Format) ([]string, error) {
	base := "termtris_" + e.now().Format("20060102_150405")

	var img image.Image
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := filepath.Join(e.dir, base+"."+string(f))

		var err error
		switch f {
		case FormatText:
			err = os.WriteFile(path, []byte(Text(screen)), 0o644)
		case FormatPNG, FormatWebP:
			if img == nil {
				img = e.renderer.Image(board)
			}
			err = writeImage(path, img, f)
		default:
			err = fmt.Errorf("unknown format %q", f)
		}
		if err != nil {
			return paths, fmt.Errorf("export: %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeImage(path string, img image.Image, f Format) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if f == FormatWebP {
		err = EncodeWebP(out, img)
	} else {
		err = EncodePNG(out, img)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
