package canyon

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/canyon-runner/internal/core"
)

// Visual characters for rendering
const (
	GroundChar    = '▓'
	GroundTopChar = '▀'
	PlayerChar    = '█'
	PlayerHitChar = '░'
	HazardChar    = '▲'
	CasterChar    = 'Ψ'
	HeroShotChar  = '•'
	EnemyShotChar = '*'
	RockShotChar  = 'o'
	WerewolfChar  = 'W'
	OgreChar      = 'O'
	hudRows       = 1
)

var flyerFrames = []rune{'v', '^'}

// viewport maps world coordinates onto screen cells below the HUD.
type viewport struct {
	w, h int
}

func (v viewport) x(wx float64) int {
	return int(wx * float64(v.w) / WorldW)
}

func (v viewport) y(wy float64) int {
	return hudRows + int(wy*float64(v.h)/WorldH)
}

// fill draws r scaled to cells, always covering at least one cell.
func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x0, y0 := v.x(r.X), v.y(r.Y)
	w := core.Max(1, v.x(r.Right())-x0)
	h := core.Max(1, v.y(r.Bottom())-y0)
	dst.FillRect(x0, y0, w, h, ch, c)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	v := viewport{w: dst.Width(), h: dst.Height() - hudRows}

	drawTerrain(dst, v, snap.Terrain)
	for _, e := range snap.Entities {
		drawEntity(dst, v, e)
	}
	if snap.Boss != nil {
		drawBoss(dst, v, snap.Boss)
	}
	drawPlayer(dst, v, snap)
	drawHUD(dst, snap)

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

func drawTerrain(dst *core.Screen, v viewport, tops []core.Rect) {
	for _, top := range tops {
		v.fill(dst, top, GroundChar, core.ColorBrown)
		x0 := v.x(top.X)
		w := core.Max(1, v.x(top.Right())-x0)
		for x := x0; x < x0+w; x++ {
			dst.SetColor(x, v.y(top.Y), GroundTopChar, core.ColorGreen)
		}
	}
}

func drawEntity(dst *core.Screen, v viewport, e EntityView) {
	switch e.Category {
	case CategoryHazard:
		v.fill(dst, e.Box, HazardChar, core.ColorGreen)
	case CategoryFlyer:
		v.fill(dst, e.Box, flyerFrames[e.Frame%len(flyerFrames)], core.ColorMagenta)
	case CategoryCaster:
		v.fill(dst, e.Box, CasterChar, core.ColorRed)
	case CategoryHeroShot:
		v.fill(dst, e.Box, HeroShotChar, core.ColorBrightYellow)
	case CategoryEnemyShot:
		switch e.Variant {
		case DamageIce.String():
			v.fill(dst, e.Box, EnemyShotChar, core.ColorBrightCyan)
		case DamageRock.String():
			v.fill(dst, e.Box, RockShotChar, core.ColorGray)
		default:
			v.fill(dst, e.Box, EnemyShotChar, core.ColorOrange)
		}
	case CategoryPowerup:
		ch, c := '+', core.ColorBrightRed
		switch e.Variant {
		case PowerupDoubleJump.String():
			ch, c = 'J', core.ColorCyan
		case PowerupInvincibility.String():
			ch, c = '★', core.ColorBrightYellow
		}
		if e.Frame == 0 {
			v.fill(dst, e.Box, ch, c)
		} else {
			v.fill(dst, e.Box, ch, core.ColorWhite)
		}
	}
}

func drawBoss(dst *core.Screen, v viewport, b *BossView) {
	ch, c := WerewolfChar, core.ColorRed
	if b.Kind == BossJumper {
		ch, c = OgreChar, core.ColorBrown
	}
	switch b.Phase {
	case PhaseWindup, PhaseCharging:
		c = core.ColorBrightRed
	case PhaseJumping:
		c = core.ColorOrange
	}
	v.fill(dst, b.Box, ch, c)
}

func drawPlayer(dst *core.Screen, v viewport, snap Snapshot) {
	p := snap.Player
	ch, c := PlayerChar, core.ColorCyan
	switch p.Status {
	case StatusFrozen:
		c = core.ColorBlue
	case StatusStunned:
		c = core.ColorYellow
	}
	if p.Invincible && snap.Tick%4 < 2 {
		c = core.ColorBrightYellow
	}
	if p.Hit {
		ch, c = PlayerHitChar, core.ColorWhite
	}
	v.fill(dst, p.Box, ch, c)

	// Facing marker on the head row
	hx := v.x(p.Box.Right())
	if p.Facing < 0 {
		hx = v.x(p.Box.X) - 1
		dst.SetColor(hx, v.y(p.Box.Y), '<', c)
	} else {
		dst.SetColor(hx, v.y(p.Box.Y), '>', c)
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	p := snap.Player
	var sb strings.Builder
	fmt.Fprintf(&sb, " HP %d/%d  Score %d ", p.Health, p.MaxHealth, snap.Score)
	if p.DoubleJump {
		sb.WriteString(" [2J]")
	}
	if p.Invincible {
		sb.WriteString(" [INV]")
	}
	if p.Status != StatusNone {
		sb.WriteString(" " + strings.ToUpper(p.Status.String()))
	}
	dst.FillRect(0, 0, dst.Width(), hudRows, ' ', core.ColorDefault)
	dst.DrawText(1, 0, sb.String())

	if snap.Boss != nil {
		text := fmt.Sprintf(" %s %d ", strings.ToUpper(snap.Boss.Kind.String()), core.Max(0, snap.Boss.Health))
		dst.DrawTextColor(dst.Width()-len(text)-1, 0, text, core.ColorBrightRed)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
