package catchaos

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/cat-chaos/internal/core"
)

// Screen rows reserved above the room: HUD line, separator.
const hudRows = 2

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if dst.Width() < 40 || dst.Height() < 14 {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderRoom(dst)
	g.renderZones(dst)
	g.renderCats(dst)
	g.renderPlayer(dst)
	g.renderWindowBar(dst)
	g.renderNotice(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Reached round %d — press R to restart", g.roundNum))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press Space to continue")
	case g.phase == phaseBanner:
		g.renderOverlay(dst, fmt.Sprintf("Round %d", g.roundNum), g.objectivesLine())
	}
}

// renderHUD draws the top status bar: score, round, countdown, objectives.
func (g *Game) renderHUD(dst *core.Screen) {
	now := g.now()

	hud := fmt.Sprintf(" Cat Chaos — Score: %d  Round: %d", g.score, g.roundNum)
	if g.phase == phaseActive {
		remain := g.roundDeadline - now
		if remain < 0 {
			remain = 0
		}
		hud += fmt.Sprintf("  Time: %.1fs", float64(remain)/1000)
	}
	hud += "  " + g.objectivesLine()

	color := core.ColorDefault
	if now < g.flashUntil {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(0, 0, hud, color)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// objectivesLine summarizes the round's objectives with completion marks.
func (g *Game) objectivesLine() string {
	if len(g.actions) == 0 {
		return ""
	}
	parts := make([]string, 0, len(g.actions))
	for _, a := range g.actions {
		mark := " "
		switch {
		case a.Completed && a.Failed:
			mark = "x"
		case a.Completed:
			mark = "+"
		}
		parts = append(parts, fmt.Sprintf("[%s]%s", mark, a.Kind))
	}
	return strings.Join(parts, " ")
}

// roomToCell maps room coordinates onto the screen's play area.
func (g *Game) roomToCell(dst *core.Screen, p core.Vec2) (int, int) {
	playW := dst.Width()
	playH := dst.Height() - hudRows - 1 // Bottom row kept for the window bar
	x := int(p.X / g.cfg.Room.Width * float64(playW))
	y := hudRows + int(p.Y/g.cfg.Room.Height*float64(playH))
	return core.Clamp(x, 0, playW-1), core.Clamp(y, hudRows, hudRows+playH-1)
}

// renderRoom draws the room border. It flashes red during a disaster.
func (g *Game) renderRoom(dst *core.Screen) {
	r := core.Rect{X: 0, Y: hudRows, W: dst.Width(), H: dst.Height() - hudRows - 1}
	dst.DrawBox(r)
	if g.now() < g.flashUntil {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColor(x, r.Y, core.ColorBrightRed)
			dst.SetColor(x, r.Bottom()-1, core.ColorBrightRed)
		}
		for y := r.Y; y < r.Bottom(); y++ {
			dst.SetColor(r.X, y, core.ColorBrightRed)
			dst.SetColor(r.Right()-1, y, core.ColorBrightRed)
		}
	}
}

// zoneGlyph returns the map symbol for a zone kind.
func zoneGlyph(k ZoneKind) rune {
	switch k {
	case ZoneFoodBowl, ZoneWaterBowl:
		return 'U'
	case ZoneToy:
		return 'o'
	case ZoneCatTree:
		return 'T'
	case ZoneVase:
		return 'v'
	case ZoneLamp:
		return 'i'
	case ZoneMug:
		return 'u'
	case ZonePlant:
		return '*'
	case ZoneWindow:
		return '#'
	case ZoneSofa, ZoneTable:
		return '='
	case ZoneRug:
		return '.'
	case ZoneShelf:
		return '_'
	default:
		return '?'
	}
}

// zoneColor picks the display color for a zone's current state.
func zoneColor(z *Zone) core.Color {
	switch {
	case z.IsFallen:
		return core.ColorRed
	case z.IsWobbling:
		return core.ColorBrightYellow
	case z.Kind == ZoneFoodBowl:
		if z.IsEmpty {
			return core.ColorGray
		}
		return core.ColorOrange
	case z.Kind == ZoneWaterBowl:
		if z.IsEmpty {
			return core.ColorGray
		}
		return core.ColorBrightBlue
	case z.Kind.IsPlaySpot():
		return core.ColorGreen
	default:
		return core.ColorGray
	}
}

// renderZones draws every zone's footprint.
func (g *Game) renderZones(dst *core.Screen) {
	for _, z := range g.zones {
		x0, y0 := g.roomToCell(dst, z.Pos)
		x1, y1 := g.roomToCell(dst, core.Vec2{X: z.Pos.X + z.W, Y: z.Pos.Y + z.H})

		glyph := zoneGlyph(z.Kind)
		if z.IsFallen {
			glyph = 'x'
		}
		color := zoneColor(z)

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				dst.SetColored(x, y, glyph, color)
			}
		}

		// Label small interactive zones so the player can find them.
		if z.Kind.IsBowl() || z.Kind.IsBreakable() || z.Kind.IsPlaySpot() {
			dst.DrawTextColored(x0, y0-1, z.Label, color)
		}
	}
}

// renderCats draws each cat with an urgency marker when a need runs high.
func (g *Game) renderCats(dst *core.Screen) {
	for _, c := range g.cats {
		x, y := g.roomToCell(dst, c.Pos)

		color := c.Color
		if c.State == StateScolded {
			color = core.ColorRed
		}
		dst.SetColored(x, y, c.Glyph, color)

		if _, val := c.MostUrgentNeed(); val > g.cfg.Sim.DisasterThreshold && c.State != StateScolded {
			dst.SetColored(x, y-1, '!', core.ColorBrightRed)
		}
	}
}

// renderPlayer draws the caretaker.
func (g *Game) renderPlayer(dst *core.Screen) {
	x, y := g.roomToCell(dst, g.player)
	dst.SetColored(x, y, '@', core.ColorBrightWhite)
}

// renderWindowBar draws the open press window's progress on the bottom row.
func (g *Game) renderWindowBar(dst *core.Screen) {
	w := g.window
	if w == nil {
		return
	}

	const barWidth = 10
	filled := 0
	if w.Required > 0 {
		filled = w.Presses * barWidth / w.Required
	}
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	remain := float64(w.ExpiresAt-g.now()) / 1000
	if remain < 0 {
		remain = 0
	}

	key := [...]string{"F", "W", "P", "T", "N"}[w.Kind]
	line := fmt.Sprintf(" [%s] %s %s %d/%d  %.1fs", key, strings.ToUpper(w.Kind.String()), bar, w.Presses, w.Required, remain)

	color := core.ColorBrightCyan
	if w.Kind == WindowNoNo {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(0, dst.Height()-1, line, color)
}

// renderNotice draws transient feedback on the bottom row's right side.
func (g *Game) renderNotice(dst *core.Screen) {
	var text string
	switch g.notice {
	case NoticeWrongAction:
		text = "Not now!"
	case NoticeMoveCloser:
		text = "Move closer!"
	default:
		return
	}
	dst.DrawTextColored(dst.Width()-len(text)-1, dst.Height()-1, text, core.ColorBrightYellow)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}
	dst.DrawRect(core.Rect{X: boxX + 1, Y: boxY + 1, W: boxW - 2, H: boxH - 2}, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(line1))/2, boxY+1, line1)
	dst.DrawText(boxX+(boxW-len(line2))/2, boxY+3, line2)
}
