package golddigger

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/golddigger/internal/core"
	"github.com/vovakirdan/golddigger/internal/games/golddigger/core"
)

const (
	hudHeight = 3
	cellW     = 2 // Each block is 2 chars wide
	cellH     = 1 // Each block is 1 line tall
	minWidth  = 40
	minHeight = hudHeight + 6
)

// remainingGlyphs shows how much of a block is left, from none to full.
var remainingGlyphs = []rune(" ▁▂▃▄▅▆▇█")

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	if dst.Width() < minWidth || dst.Height() < minHeight {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderWorld(dst)
	g.renderHUD(dst)

	if g.session.State() == core.StateDepletionWarning {
		g.renderWarning(dst)
	}
	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderWorld draws the visible blocks and the avatar below the HUD.
func (g *Game) renderWorld(dst *platformcore.Screen) {
	w := g.session.World()
	av := g.session.Avatar()
	viewH := dst.Height() - hudHeight
	view := core.NewView(av.Pos, cellW, cellH, dst.Width(), viewH, w.Size())

	sky := platformcore.Cell{Rune: ' ', Bg: platformcore.ColorSky}
	dst.FillRect(platformcore.NewRect(0, hudHeight, dst.Width(), viewH), sky)

	for y := view.MinY; y < view.MaxY; y++ {
		for x := view.MinX; x < view.MaxX; x++ {
			c := core.C(x, y)
			b, ok := w.Block(c)
			if !ok || b.Dug {
				continue
			}
			sx, sy := view.ToScreen(c)
			sy += hudHeight
			if sy < hudHeight {
				continue
			}
			for col := 0; col < cellW; col++ {
				dst.SetCell(sx+col, sy, g.blockCell(c, b, col))
			}
		}
	}

	sx, sy := view.ToScreen(av.Pos)
	sy += hudHeight
	for col := 0; col < cellW; col++ {
		dst.SetCell(sx+col, sy, platformcore.Cell{
			Rune: '█',
			Fg:   platformcore.ColorBrightBlue,
			Bg:   platformcore.ColorSky,
		})
	}
}

// blockCell returns one column of an undug block.
// A partly mined block shrinks toward the bottom of its cell.
func (g *Game) blockCell(c core.Coord, b *core.Block, col int) platformcore.Cell {
	color := blockColor(b, c.Y, g.params.Gen.DepthThreshold)

	if b.Progress > 0 {
		return platformcore.Cell{
			Rune: progressGlyph(b.Progress),
			Fg:   color,
			Bg:   platformcore.ColorSky,
		}
	}

	cell := platformcore.Cell{Rune: g.tex.grain(c, col), Fg: platformcore.ColorBlack, Bg: color}
	switch {
	case b.Artifact && col == 0:
		cell.Rune = '◈'
	case b.Gold && col == 0:
		cell.Rune = '◆'
		cell.Fg = platformcore.ColorOrange
	}
	return cell
}

// blockColor picks the block color: artifact, then gold, then material.
func blockColor(b *core.Block, y, depthThreshold int) platformcore.Color {
	switch {
	case b.Artifact:
		return platformcore.ColorBrightGreen
	case b.Gold:
		return platformcore.ColorGold
	}
	switch b.Material {
	case core.VeryHardStone:
		return platformcore.ColorDarkGray
	case core.HardStone:
		return platformcore.ColorGray
	case core.Stone:
		return platformcore.ColorBrown
	default:
		if y <= depthThreshold {
			return platformcore.ColorTan
		}
		return platformcore.ColorGray
	}
}

// progressGlyph returns the glyph for a block with the given mining progress.
// A started block shows at least one step of wear and never looks empty.
func progressGlyph(progress float64) rune {
	remaining := 1 - platformcore.ClampF(progress, 0, 1)
	idx := int(math.Round(remaining * float64(len(remainingGlyphs)-1)))
	idx = platformcore.Clamp(idx, 1, len(remainingGlyphs)-2)
	return remainingGlyphs[idx]
}

// renderHUD draws the three status lines.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	av := g.session.Avatar()

	condColor := platformcore.ColorWhite
	switch {
	case av.Durability <= 0:
		condColor = platformcore.ColorBrightRed
	case av.Durability < 3:
		condColor = platformcore.ColorBrightYellow
	}

	dst.DrawTextWithColor(1, 0, fmt.Sprintf("Gold: $%d", av.Currency), platformcore.ColorGold)
	dst.DrawTextWithColor(1, 1, fmt.Sprintf("Drill bit condition: %.1f%%", av.Durability), condColor)
	dst.DrawTextWithColor(1, 2, fmt.Sprintf("Bonus Durability: %d%%", av.Bonus), platformcore.ColorCyan)

	right := func(y int, text string, color platformcore.Color) {
		dst.DrawTextWithColor(dst.Width()-platformcore.TextWidth(text)-1, y, text, color)
	}
	right(0, g.title, platformcore.ColorGray)
	right(1, fmt.Sprintf("Depth: %d", av.Pos.Y-g.session.World().Surface()), platformcore.ColorGray)
	if g.flashLeft > 0 && g.flash != "" {
		right(2, g.flash, platformcore.ColorBrightYellow)
	}
}

// renderWarning draws the depletion banner. Its emphasis follows the
// warning intensity.
func (g *Game) renderWarning(dst *platformcore.Screen) {
	line1 := "Your drill bit broke!"
	line2 := "Resurface to get a new one."

	alpha := g.session.WarningAlpha()
	top := g.params.WarningMax
	if top <= 0 {
		top = 1
	}
	fg := platformcore.ColorGray
	switch {
	case alpha*3 >= top*2:
		fg = platformcore.ColorBrightRed
	case alpha*3 >= top:
		fg = platformcore.ColorWhite
	}

	boxW := platformcore.TextWidth(line2) + 4
	r := platformcore.NewRect((dst.Width()-boxW)/2, hudHeight+1, boxW, 4)
	dst.FillRect(r, platformcore.Cell{Rune: ' ', Fg: fg, Bg: platformcore.ColorSky})
	dst.DrawBox(r)
	dst.DrawTextWithColor(r.X+(boxW-platformcore.TextWidth(line1))/2, r.Y+1, line1, fg)
	dst.DrawTextWithColor(r.X+2, r.Y+2, line2, fg)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := max(platformcore.TextWidth(line1), platformcore.TextWidth(line2)) + 4
	full := platformcore.NewRect(0, 0, dst.Width(), dst.Height())
	r := full.Centered(w, 4)

	dst.FillRect(r, platformcore.Cell{Rune: ' ', Fg: platformcore.ColorBrightWhite})
	dst.DrawBox(r)
	dst.DrawTextCenteredWithColor(r.Y+1, line1, platformcore.ColorBrightWhite)
	dst.DrawTextCenteredWithColor(r.Y+2, line2, platformcore.ColorGray)
}
