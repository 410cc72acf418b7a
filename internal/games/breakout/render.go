package breakout

import (
	"fmt"

	"github.com/vovakirdan/gridbreak/internal/core"
)

// Each tile is drawn two characters wide so tiles look roughly square.
const tileWidth = 2

// Glyphs for tile kinds.
const (
	BlockGlyph  = '█'
	SolidGlyph  = '▓'
	WallGlyph   = '█'
	PaddleGlyph = '▀'
	BallGlyph   = '●'
	ExtraGlyph  = '◆'
)

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	if g.board != nil {
		g.renderGrid(dst)
	}
	g.renderOverlay(dst)
}

// renderHUD draws the score, remaining balls, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	if g.board == nil {
		return
	}
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.board.Score()))
	dst.DrawTextCentered(0, fmt.Sprintf("Balls: %d", g.board.BallsRemaining()))

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", g.endlessCycle*len(g.catalog)+g.levelIndex+1)
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", g.levelIndex+1, len(g.catalog))
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)
}

// renderGrid draws every tile, top wall first. Row 0 is the
// out-of-bounds sensor and stays blank.
func (g *Game) renderGrid(dst *core.Screen) {
	rows, cols := g.board.Rows(), g.board.Columns()
	originX := (dst.Width() - cols*tileWidth) / 2
	originY := 2

	for r := rows - 1; r >= 0; r-- {
		y := originY + (rows - 1 - r)
		for c := 0; c < cols; c++ {
			cell := g.board.CellAt(r, c)
			glyphs := tileGlyphs(cell)
			for i, ch := range glyphs {
				dst.SetCell(originX+c*tileWidth+i, y, core.Cell{Rune: ch, Color: cell.Color()})
			}
		}
	}
}

// tileGlyphs returns the characters drawn for one tile.
func tileGlyphs(c Cell) [tileWidth]rune {
	if showLabels {
		return [tileWidth]rune{c.Label(), ' '}
	}
	switch c.Kind {
	case KindSideWall, KindTopWall:
		return [tileWidth]rune{WallGlyph, WallGlyph}
	case KindPaddle:
		return [tileWidth]rune{PaddleGlyph, PaddleGlyph}
	case KindBallMarker:
		return [tileWidth]rune{BallGlyph, ' '}
	case KindSolid:
		return [tileWidth]rune{SolidGlyph, SolidGlyph}
	case KindExtraBall:
		return [tileWidth]rune{ExtraGlyph, ' '}
	case KindRed, KindGreen, KindBlue:
		return [tileWidth]rune{BlockGlyph, BlockGlyph}
	default:
		return [tileWidth]rune{' ', ' '}
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.board.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.board.Score())
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)

	case StateFault:
		reason := "unknown error"
		if g.fault != nil {
			reason = g.fault.Error()
		}
		if limit := dst.Width() - 6; limit > 3 && len(reason) > limit {
			reason = reason[:limit-3] + "..."
		}
		g.drawCenteredBox(dst, "STOPPED", reason)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
