package lexicon

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/lexicon/internal/core"
)

// Render draws the game to the screen. It reads state only.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall() {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offX, offY := g.shakeOffset()
	g.renderGrid(dst, offX, offY)
	g.renderWords(dst, offX, offY)
	g.renderParticles(dst, offX, offY)
	g.renderFooter(dst)

	switch {
	case g.phase == PhaseNotStarted:
		g.renderOverlay(dst, "LEXICON CHAOS",
			fmt.Sprintf("Type the drifting words before %d pile up", g.reg.Cap()),
			"Press ENTER to start")
	case g.phase == PhaseEnded:
		g.renderOverlay(dst, "GAME OVER",
			fmt.Sprintf("Final Score: %d", g.scorer.Current()),
			"Press ENTER to play again")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press ESC to continue")
	}
}

// shakeOffset jitters the field horizontally while a shake is running.
func (g *Game) shakeOffset() (int, int) {
	if g.shake <= 0 {
		return 0, 0
	}
	if g.shake%2 == 0 {
		return 1, 0
	}
	return -1, 0
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Best: %d", strings.ToUpper(g.Title()), g.scorer.Current(), g.scorer.Best())
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	pack := fmt.Sprintf("pack: %s ", g.pack.ID)
	dst.DrawTextColor(dst.Width()-len(pack), 0, pack, core.ColorGray)

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDim)
}

// renderGrid draws a faint dot grid over the field.
func (g *Game) renderGrid(dst *core.Screen, offX, offY int) {
	fw, fh := g.fieldSize()
	for y := 0; y < int(fh); y += 4 {
		for x := 0; x < int(fw); x += 8 {
			dst.SetColor(x+offX, hudHeight+y+offY, '·', core.ColorDim)
		}
	}
}

// renderWords draws every word as [text]; the locked word shows its typed
// prefix highlighted.
func (g *Game) renderWords(dst *core.Screen, offX, offY int) {
	locked, _ := g.lockedEntity()
	for _, e := range g.reg.items {
		body, ok := g.world.Body(e.Body)
		if !ok {
			continue
		}
		x := core.CellX(body.X-float64(e.Width)/2) + offX
		y := hudHeight + core.CellY(body.Y) + offY

		if e == locked {
			dst.SetColor(x, y, '[', core.ColorLocked)
			dst.DrawTextColor(x+1, y, e.Text[:e.Typed], core.ColorTyped)
			dst.DrawTextColor(x+1+e.Typed, y, e.Remaining(), core.ColorRemaining)
			dst.SetColor(x+e.Width-1, y, ']', core.ColorLocked)
			continue
		}
		dst.SetColor(x, y, '[', core.ColorBracket)
		dst.DrawTextColor(x+1, y, e.Text, core.ColorWord)
		dst.SetColor(x+e.Width-1, y, ']', core.ColorBracket)
	}
}

// lockedEntity looks up the lock without the side effect of Typist.Target.
func (g *Game) lockedEntity() (*Entity, bool) {
	if !g.typist.active {
		return nil, false
	}
	return g.reg.Get(g.typist.locked)
}

func (g *Game) renderParticles(dst *core.Screen, offX, offY int) {
	fh := int(g.fieldHeight())
	for _, p := range g.particles {
		y := core.CellY(p.Y)
		if y < 0 || y >= fh {
			continue
		}
		dst.SetColor(core.CellX(p.X)+offX, hudHeight+y+offY, p.glyph(), p.Color)
	}
}

func (g *Game) fieldHeight() float64 {
	_, fh := g.fieldSize()
	return fh
}

// renderFooter draws the capacity bar, the typing line and key hints.
func (g *Game) renderFooter(dst *core.Screen) {
	h := dst.Height()
	barY, typeY, hintY := h-3, h-2, h-1

	// Capacity bar
	count, capacity := g.reg.Len(), g.reg.Cap()
	label := fmt.Sprintf(" %2d/%d ", count, capacity)
	barW := max(dst.Width()-len(label)-2, 1)
	filled := 0
	if capacity > 0 {
		filled = min(barW, count*barW/capacity)
	}
	color := core.ColorBrightGreen
	switch pct := float64(count) / float64(max(capacity, 1)); {
	case pct >= 0.8:
		color = core.ColorBrightRed
	case pct >= 0.5:
		color = core.ColorBrightYellow
	}
	dst.DrawHLine(1, barY, filled, '█', color)
	dst.DrawHLine(1+filled, barY, barW-filled, '░', core.ColorDim)
	dst.DrawTextColor(1+barW, barY, label, core.ColorGray)

	// Typing line
	if e, ok := g.lockedEntity(); ok {
		typed, rest := e.Text[:e.Typed], e.Remaining()
		line := "> " + typed + rest + "_"
		x := (dst.Width() - len(line)) / 2
		dst.DrawTextColor(x, typeY, "> ", core.ColorGold)
		dst.DrawTextColor(x+2, typeY, typed, core.ColorBrightGreen)
		dst.DrawTextColor(x+2+len(typed), typeY, rest, core.ColorWhite)
		dst.DrawTextColor(x+2+len(e.Text), typeY, "_", core.ColorGold)
	} else {
		dst.DrawTextCentered(typeY, "AWAITING INPUT_", core.ColorGray)
	}

	dst.DrawTextCentered(hintY, "enter start · esc pause · tab music · ctrl+c quit", core.ColorDim)
}

// renderOverlay draws a centered box with one line per argument.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	w, h := dst.Width(), dst.Height()

	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 6
	boxH := len(lines)*2 + 1
	box := core.NewRect(0, 0, w, h).Centered(boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightCyan)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightMagenta
		}
		dst.DrawTextCentered(box.Y+1+i*2, l, color)
	}
}
