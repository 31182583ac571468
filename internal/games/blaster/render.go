package blaster

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/pixel-blaster/internal/core"
)

// Each arena cell is drawn two terminal columns wide so the board looks
// square in a typical terminal font.
const cellWidth = 2

// Screen layout
const (
	hudRows    = 2
	minScreenW = GridSize*cellWidth + 2
	minScreenH = GridSize + hudRows + 2
)

// glyph is the two-rune picture of one arena cell.
type glyph struct {
	left, right rune
	color       core.Color
}

var (
	glyphWall      = glyph{'█', '█', core.ColorGray}
	glyphSoftWall  = glyph{'▓', '▓', core.ColorBrown}
	glyphPlayer    = glyph{'[', ']', core.ColorCyan}
	glyphShielded  = glyph{'{', '}', core.ColorBlue}
	glyphEscaping  = glyph{'~', '~', core.ColorCyan}
	glyphEnemy     = glyph{'>', '<', core.ColorRed}
	glyphBomb      = glyph{'(', ')', core.ColorYellow}
	glyphMegaBomb  = glyph{'<', '>', core.ColorYellow}
	glyphExplosion = glyph{'*', '*', core.ColorOrange}
)

// powerUpGlyphs indexed by PowerUpKind
var powerUpGlyphs = [powerUpKindCount]glyph{
	{'B', '+', core.ColorGreen},
	{'R', '+', core.ColorGreen},
	{'S', '+', core.ColorGreen},
	{'L', '+', core.ColorMagenta},
	{'H', '+', core.ColorBlue},
	{'M', '!', core.ColorYellow},
}

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.world.Snapshot()
	if snap.Phase == PhaseMenu {
		renderTitle(dst, &snap)
		return
	}

	originX := (dst.Width() - GridSize*cellWidth) / 2
	originY := hudRows

	renderHUD(dst, &snap)
	renderArena(dst, &snap, originX, originY)
	renderOverlay(dst, &snap)
}

// renderTitle draws the title screen shown before a run starts.
func renderTitle(dst *core.Screen, snap *Snapshot) {
	mid := dst.Height() / 2
	drawCenteredColored(dst, mid-3, "P I X E L   B L A S T E R", core.ColorOrange)
	if snap.HighScore > 0 {
		dst.DrawTextCentered(mid-1, fmt.Sprintf("Best: %d", snap.HighScore))
	}
	dst.DrawTextCentered(mid+1, "Press ENTER to start")
	dst.DrawTextCentered(mid+3, "Arrows/WASD move  SPACE bomb  P pause  ESC back")
}

// renderHUD draws score and player stats on the top two rows.
func renderHUD(dst *core.Screen, snap *Snapshot) {
	p := snap.Player

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Best: %d", snap.HighScore))
	levelText := fmt.Sprintf("Level: %d", snap.Level)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	lives := strings.Repeat("♥", max(p.Lives, 0))
	stats := fmt.Sprintf("Lives: %s  Bombs: %d/%d  Range: %d  Speed: %d",
		lives, p.MaxBombs-p.BombCount, p.MaxBombs, p.BombRange, p.Speed)
	if p.HasShield {
		stats += fmt.Sprintf("  Shield: %ds", (p.ShieldTimer+59)/60)
	}
	dst.DrawText(1, 1, stats)
}

// renderArena draws tiles first, then power-ups, bombs, flames, enemies
// and the player on top.
func renderArena(dst *core.Screen, snap *Snapshot, originX, originY int) {
	put := func(p core.Point, gl glyph) {
		x := originX + p.X*cellWidth
		y := originY + p.Y
		dst.SetColored(x, y, gl.left, gl.color)
		dst.SetColored(x+1, y, gl.right, gl.color)
	}

	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			switch snap.Grid[y][x] {
			case TileIndestructible:
				put(core.Pt(x, y), glyphWall)
			case TileDestructible:
				put(core.Pt(x, y), glyphSoftWall)
			}
		}
	}

	for _, pu := range snap.PowerUps {
		// Blink during the last two seconds
		if pu.Timer < 120 && pu.Timer/8%2 == 0 {
			continue
		}
		put(pu.Pos, powerUpGlyphs[pu.Kind])
	}
	for _, b := range snap.Bombs {
		if b.Mega {
			put(b.Pos, glyphMegaBomb)
		} else {
			put(b.Pos, glyphBomb)
		}
	}
	for _, e := range snap.Explosions {
		put(e.Pos, glyphExplosion)
	}
	for _, e := range snap.Enemies {
		put(e.Pos, glyphEnemy)
	}

	p := snap.Player
	switch {
	case p.Escaping():
		put(p.Pos, glyphEscaping)
	case p.HasShield:
		put(p.Pos, glyphShielded)
	default:
		put(p.Pos, glyphPlayer)
	}
}

// renderOverlay draws pause and game-over boxes.
func renderOverlay(dst *core.Screen, snap *Snapshot) {
	switch snap.Phase {
	case PhasePaused:
		drawCenteredBox(dst, "PAUSED", "P resume  |  ESC menu")
	case PhaseGameOver:
		subtitle := fmt.Sprintf("Score: %d  Level: %d  |  R restart  ESC menu", snap.Score, snap.Level)
		drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

func drawCenteredColored(dst *core.Screen, y int, text string, c core.Color) {
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextColored(x, y, text, c)
}
