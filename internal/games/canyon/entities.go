package canyon

import (
	"math"

	"github.com/vovakirdan/canyon-runner/internal/core"
)

// DamageType is the payload a caster puts on its projectiles.
type DamageType int

const (
	DamageFire DamageType = iota
	DamageIce
	DamageRock
)

// String returns the damage type name.
func (d DamageType) String() string {
	switch d {
	case DamageIce:
		return "ice"
	case DamageRock:
		return "rock"
	default:
		return "fire"
	}
}

// Status returns the status effect a hit of this type imposes.
func (d DamageType) Status() StatusEffect {
	switch d {
	case DamageIce:
		return StatusFrozen
	case DamageRock:
		return StatusStunned
	default:
		return StatusNone
	}
}

// shotLimit returns how many enemy projectiles may be live for a caster of
// this type to keep firing.
func (d DamageType) shotLimit() int {
	if d == DamageRock {
		return maxRockShots
	}
	return maxFireShots
}

// PowerupKind identifies a collectible effect.
type PowerupKind int

const (
	PowerupDoubleJump PowerupKind = iota
	PowerupInvincibility
	PowerupPotion
)

// String returns the powerup name.
func (k PowerupKind) String() string {
	switch k {
	case PowerupDoubleJump:
		return "double jump"
	case PowerupInvincibility:
		return "invincibility"
	default:
		return "potion"
	}
}

// Hazard is a cactus scrolling with the ground.
type Hazard struct {
	Box core.Rect
	Age int
}

// Flyer is a bat crossing the screen and sinking towards the ground.
type Flyer struct {
	Box core.Rect
	Age int
}

// Caster is a demon that seeks the player and fires projectiles.
type Caster struct {
	Box    core.Rect
	Damage DamageType
	Age    int
}

// EnemyShot is a projectile fired by a caster. Its velocity is fixed at launch.
type EnemyShot struct {
	Box    core.Rect
	VX, VY float64
	Damage DamageType
	Age    int
}

// HeroShot is a projectile thrown by the player.
type HeroShot struct {
	Box      core.Rect
	Dir      float64 // -1 or 1
	BossMode bool    // thrown during a boss fight, so it follows Dir
	Age      int
}

// Powerup is a collectible that expires after PowerupTTL ticks.
type Powerup struct {
	Box  core.Rect
	Kind PowerupKind
	Age  int
}

// AnimFrame maps an age counter onto one of frames animation frames, each
// shown for ticksPerFrame ticks.
func AnimFrame(age, frames, ticksPerFrame int) int {
	if frames <= 0 || ticksPerFrame <= 0 {
		return 0
	}
	return (age / ticksPerFrame) % frames
}

// update scrolls the hazard. Returns false once it has left the screen.
func (h *Hazard) update(bossMode bool) bool {
	h.Age++
	if !bossMode {
		h.Box.X -= HazardScroll
	}
	return h.Box.X >= 0
}

func (f *Flyer) update(t *Terrain) bool {
	f.Age++
	f.Box.X -= FlyerSpeed
	if f.Box.X < WorldW {
		f.Box.Y += FlyerSink
		t.Snap(&f.Box)
	}
	return f.Box.X >= 0
}

func (c *Caster) update(target core.Rect, t *Terrain) bool {
	c.Age++
	cx, cy := c.Box.Center()
	tx, ty := target.Center()
	angle := core.AngleTo(cx, cy, tx, ty)
	c.Box.X += CasterSpeed * math.Cos(angle)
	c.Box.Y += CasterSpeed * math.Sin(angle)
	t.Snap(&c.Box)
	return c.Box.X >= 0
}

// fire aims a projectile from (cx, cy) at the target's center.
func (c *Caster) fire(cx, cy float64, target core.Rect) EnemyShot {
	tx, ty := target.Center()
	angle := core.AngleTo(cx, cy, tx, ty)
	return EnemyShot{
		Box:    core.NewRect(cx, cy, EnemyShotSize, EnemyShotSize),
		VX:     EnemyShotSpeed * math.Cos(angle),
		VY:     EnemyShotSpeed * math.Sin(angle),
		Damage: c.Damage,
	}
}

// update moves the shot. Only the left edge removes it.
func (s *EnemyShot) update() bool {
	s.Age++
	s.Box.X += s.VX
	s.Box.Y += s.VY
	return s.Box.X >= 0
}

func newHeroShot(p *Player, bossMode bool) HeroShot {
	dir := 1.0
	if p.VX < 0 {
		dir = -1
	}
	return HeroShot{
		Box:      core.NewRect(p.Box.X, p.Box.Y, HeroShotSize, HeroShotSize),
		Dir:      dir,
		BossMode: bossMode,
	}
}

func (s *HeroShot) update(t *Terrain) bool {
	s.Age++
	if s.BossMode {
		s.Box.X += HeroShotSpeed * s.Dir
	} else {
		s.Box.X += HeroShotSpeed
	}
	t.Snap(&s.Box)
	x, y := s.Box.X, s.Box.Y
	return !(x >= WorldW || x <= 0 || y >= WorldH || y <= 0)
}

func (p *Powerup) update(t *Terrain) bool {
	t.Snap(&p.Box)
	p.Age++
	return p.Age < PowerupTTL
}

// Bounds returns the collision box.
func (h Hazard) Bounds() core.Rect { return h.Box }

// Bounds returns the collision box.
func (f Flyer) Bounds() core.Rect { return f.Box }

// Bounds returns the collision box.
func (c Caster) Bounds() core.Rect { return c.Box }

// Bounds returns the collision box.
func (s EnemyShot) Bounds() core.Rect { return s.Box }

// Bounds returns the collision box.
func (s HeroShot) Bounds() core.Rect { return s.Box }

// Bounds returns the collision box.
func (p Powerup) Bounds() core.Rect { return p.Box }
