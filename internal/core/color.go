package core

import "fmt"

// RGB is a 24-bit display color for one grid tile or screen cell.
type RGB struct {
	R, G, B uint8
}

// Hex formats the color as #rrggbb for terminal styling.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsBlack reports whether the color is fully off.
func (c RGB) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Predefined colors for game elements.
var (
	ColorOff    = RGB{0, 0, 0}
	ColorRed    = RGB{255, 0, 0}
	ColorGreen  = RGB{0, 255, 0}
	ColorBlue   = RGB{0, 0, 255}
	ColorYellow = RGB{255, 255, 0}
	ColorWhite  = RGB{255, 255, 255}
	ColorSolid  = RGB{64, 64, 64}
	ColorWall   = RGB{64, 64, 96}
	ColorBall   = RGB{222, 222, 255}
	ColorText   = RGB{200, 200, 200}
)
