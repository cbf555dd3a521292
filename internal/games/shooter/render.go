package shooter

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/shooter-arcade/internal/config"
	"github.com/vovakirdan/shooter-arcade/internal/core"
	"github.com/vovakirdan/shooter-arcade/internal/engine"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// glyphs is how one variant draws its entities.
type glyphs struct {
	avatar, opponent, shot, enemyShot, effect rune
	avatarColor, opponentColor                core.Color
}

var variantGlyphs = map[string]glyphs{
	"invasion":  {'▲', 'W', '|', '!', '*', core.ColorBrightCyan, core.ColorBrightGreen},
	"hungryfox": {'F', '@', '^', 'v', '+', core.ColorOrange, core.ColorBrightYellow},
	"sideways":  {'►', '◄', '-', '~', '*', core.ColorBrightCyan, core.ColorBrightMagenta},
	"penguin":   {'P', '#', '|', '!', '*', core.ColorBrightWhite, core.ColorBrightBlue},
}

func (g *Game) glyphs() glyphs {
	if gl, ok := variantGlyphs[g.id]; ok {
		return gl
	}
	return variantGlyphs["invasion"]
}

// viewport maps playfield units to screen cells below the HUD.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(pf core.Rect, dst *core.Screen) viewport {
	w, h := dst.Width(), dst.Height()-hudRows
	return viewport{
		sx: float64(w) / math.Max(pf.W, 1),
		sy: float64(h) / math.Max(pf.H, 1),
		w:  w,
		h:  h,
	}
}

// cells returns the cell span covered by r, at least one cell.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	return x0, y0 + hudRows, core.Max(x1-x0, 1), core.Max(y1-y0, 1)
}

func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x, y, w, h := v.cells(r)
	dst.FillRect(x, y, w, h, ch, c)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.eng.Snapshot()
	gl := g.glyphs()
	v := newViewport(snap.Playfield, dst)

	if snap.State != engine.StateMenu {
		for _, e := range snap.Opponents {
			v.fill(dst, e.Rect, gl.opponent, gl.opponentColor)
		}
		for _, e := range snap.Effects {
			v.fill(dst, e.Rect, gl.effect, core.ColorYellow)
		}
		for _, e := range snap.Shots {
			v.fill(dst, e.Rect, gl.shot, core.ColorBrightYellow)
		}
		for _, e := range snap.OpponentShots {
			v.fill(dst, e.Rect, gl.enemyShot, core.ColorBrightRed)
		}
		v.fill(dst, snap.Avatar, gl.avatar, gl.avatarColor)
	}

	g.drawHUD(dst, snap)

	switch snap.State {
	case engine.StateMenu:
		drawPanel(dst, g.Title(), []string{
			"Enter  play",
			"M      difficulty",
			"Q      quit",
			"",
			"Difficulty: " + snap.Difficulty.Title(),
			fmt.Sprintf("High score: %d", snap.HighScore),
		})
	case engine.StateSubMenu:
		drawPanel(dst, "MENU", []string{
			"Enter  choose difficulty",
			"B      back",
		})
	case engine.StateDifficultySelect:
		lines := difficultyLines(snap.Difficulty)
		if snap.RestartArmed {
			lines = append(lines, "", "R      restart with this difficulty")
		} else {
			lines = append(lines, "", "Enter  start", "B      back")
		}
		drawPanel(dst, "DIFFICULTY", lines)
	case engine.StatePaused:
		lines := []string{"P      resume", "M      menu", "1/2/3  difficulty"}
		if snap.RestartArmed {
			lines = []string{"R      restart", "M      menu"}
		}
		drawPanel(dst, "PAUSED", lines)
	case engine.StateGameOver:
		drawPanel(dst, "GAME OVER", []string{
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("High score: %d", snap.HighScore),
			"",
			"Enter  play again",
			"M      difficulty",
			"Q      quit",
		})
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap engine.Snapshot) {
	left := fmt.Sprintf(" Score: %d  High: %d  Level: %d", snap.Score, snap.HighScore, snap.Level)
	dst.DrawTextColor(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf("%s  %s ", strings.Repeat("♥", core.Max(snap.Lives, 0)), snap.Difficulty.Title())
	x := dst.Width() - utf8.RuneCountInString(right)
	if x > utf8.RuneCountInString(left) {
		dst.DrawTextColor(x, 0, right, core.ColorBrightRed)
	}
}

func difficultyLines(selected config.DifficultyLevel) []string {
	lines := make([]string, 0, 3)
	for i, l := range config.Levels() {
		marker := "  "
		if l == selected {
			marker = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%d  %s", marker, i+1, l.Title()))
	}
	return lines
}

// drawPanel draws a boxed message centered on the screen.
func drawPanel(dst *core.Screen, title string, lines []string) {
	width := utf8.RuneCountInString(title)
	for _, l := range lines {
		width = core.Max(width, utf8.RuneCountInString(l))
	}

	boxW := width + 6
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)
	dst.DrawTextColor(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawText(boxX+3, boxY+3+i, l)
	}
}
