package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// ANSI returns the terminal color code understood by lipgloss.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorMagenta:
		return "5"
	case ColorCyan:
		return "6"
	case ColorWhite:
		return "7"
	case ColorOrange:
		return "208"
	case ColorGray:
		return "245"
	case ColorDarkGray:
		return "238"
	default:
		return ""
	}
}

// RGBA returns the color used when a cell is drawn into an image.
// ColorDefault maps to black, the board background.
func (c Color) RGBA() color.RGBA {
	switch c {
	case ColorRed:
		return color.RGBA{R: 255, A: 255}
	case ColorGreen:
		return color.RGBA{G: 255, A: 255}
	case ColorYellow:
		return color.RGBA{R: 255, G: 255, A: 255}
	case ColorBlue:
		return color.RGBA{B: 255, A: 255}
	case ColorMagenta:
		return color.RGBA{R: 255, B: 255, A: 255}
	case ColorCyan:
		return color.RGBA{G: 255, B: 255, A: 255}
	case ColorWhite:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case ColorOrange:
		return color.RGBA{R: 255, G: 165, A: 255}
	case ColorGray:
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	case ColorDarkGray:
		return color.RGBA{R: 64, G: 64, B: 64, A: 255}
	default:
		return color.RGBA{A: 255}
	}
}
