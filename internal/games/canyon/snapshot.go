package canyon

import "github.com/vovakirdan/canyon-runner/internal/core"

// PlayerView is the read-only player state exposed to renderers.
type PlayerView struct {
	Box        core.Rect
	Health     int
	MaxHealth  int
	Facing     float64
	Moving     bool
	Airborne   bool
	Hit        bool
	Invincible bool
	DoubleJump bool
	Status     StatusEffect
	Cooldown   int
	Frame      int
}

// EntityView is one live transient entity.
type EntityView struct {
	Category Category
	Box      core.Rect
	Variant  string // damage type or powerup kind, empty otherwise
	Frame    int
}

// BossView is the live boss, if any.
type BossView struct {
	Kind   BossKind
	Box    core.Rect
	Health int
	Phase  BossPhase
	Frame  int
}

// Snapshot is the complete state a renderer needs for one frame.
type Snapshot struct {
	Tick     uint64
	Score    int
	Paused   bool
	GameOver bool
	BossMode bool

	Player   PlayerView
	Entities []EntityView
	Boss     *BossView
	Terrain  []core.Rect // top-surface window
}

// Animation timing, in ticks per frame.
const (
	runFrames   = 4
	runTicks    = 3
	flapFrames  = 2
	flapTicks   = 4
	blinkFrames = 2
	blinkTicks  = 2
)

// Snapshot returns a copy of the current simulation state.
func (g *Game) Snapshot() Snapshot {
	p := &g.player
	frame := 0
	if p.Moving {
		frame = AnimFrame(p.Age, runFrames, runTicks)
	}

	s := Snapshot{
		Tick:     g.tickCount,
		Score:    p.Score,
		Paused:   g.paused,
		GameOver: g.gameOver,
		BossMode: g.BossMode(),
		Player: PlayerView{
			Box:        p.Box,
			Health:     p.Health,
			MaxHealth:  PlayerMaxHealth,
			Facing:     p.VX,
			Moving:     p.Moving,
			Airborne:   p.Airborne,
			Hit:        p.Hit,
			Invincible: p.Invincible(),
			DoubleJump: p.HasDoubleJump(),
			Status:     p.Status,
			Cooldown:   p.Cooldown,
			Frame:      frame,
		},
		Terrain: g.terrain.Tops(),
	}

	g.hazards.Each(func(_ int, h *Hazard) {
		s.Entities = append(s.Entities, EntityView{Category: CategoryHazard, Box: h.Box})
	})
	g.flyers.Each(func(_ int, f *Flyer) {
		s.Entities = append(s.Entities, EntityView{
			Category: CategoryFlyer, Box: f.Box, Frame: AnimFrame(f.Age, flapFrames, flapTicks),
		})
	})
	g.casters.Each(func(_ int, c *Caster) {
		s.Entities = append(s.Entities, EntityView{
			Category: CategoryCaster, Box: c.Box, Variant: c.Damage.String(),
			Frame: AnimFrame(c.Age, flapFrames, flapTicks),
		})
	})
	g.enemyShots.Each(func(_ int, e *EnemyShot) {
		s.Entities = append(s.Entities, EntityView{
			Category: CategoryEnemyShot, Box: e.Box, Variant: e.Damage.String(),
		})
	})
	g.heroShots.Each(func(_ int, h *HeroShot) {
		s.Entities = append(s.Entities, EntityView{
			Category: CategoryHeroShot, Box: h.Box, Frame: AnimFrame(h.Age, runFrames, 1),
		})
	})
	g.powerups.Each(func(_ int, pu *Powerup) {
		s.Entities = append(s.Entities, EntityView{
			Category: CategoryPowerup, Box: pu.Box, Variant: pu.Kind.String(),
			Frame: AnimFrame(pu.Age, blinkFrames, blinkTicks),
		})
	})

	if b := g.bosses.Get(0); b != nil {
		s.Boss = &BossView{
			Kind:   b.Kind,
			Box:    b.Box,
			Health: b.Health,
			Phase:  b.Phase(),
			Frame:  AnimFrame(b.Age, runFrames, runTicks),
		}
	}
	return s
}
