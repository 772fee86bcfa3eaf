package canyon

import (
	"math"

	"github.com/vovakirdan/canyon-runner/internal/core"
)

// StatusEffect is a timed condition imposed on the player by enemy fire.
// Only one is active at a time.
type StatusEffect int

const (
	StatusNone StatusEffect = iota
	StatusStunned
	StatusFrozen
)

// String returns the status name shown in the HUD.
func (s StatusEffect) String() string {
	switch s {
	case StatusStunned:
		return "stunned"
	case StatusFrozen:
		return "frozen"
	default:
		return "none"
	}
}

// Player is the runner controlled by input intents.
type Player struct {
	Box    core.Rect
	VX, VY float64 // VX holds the facing sign
	Health int
	Speed  float64
	Score  int

	Moving       bool
	Airborne     bool
	DoubleJumped bool
	Hit          bool // set by a damaging contact, cleared by the next health check

	Status      StatusEffect
	statusTicks int

	DoubleJumpTicks int
	InvincibleTicks int
	Cooldown        int
	AirTicks        int
	Age             int
}

func newPlayer() Player {
	return Player{
		Box:    core.NewRect(PlayerStartX, PlayerStartY, PlayerSize, PlayerSize),
		VX:     1,
		Health: PlayerMaxHealth,
		Speed:  SpeedNormal,
	}
}

// Invincible reports whether the invincibility buff is active.
func (p *Player) Invincible() bool { return p.InvincibleTicks > 0 }

// HasDoubleJump reports whether the double jump buff is active.
func (p *Player) HasDoubleJump() bool { return p.DoubleJumpTicks > 0 }

// Move runs one step in dir unless stunned or out of bounds.
func (p *Player) Move(dir int) {
	p.Moving = false
	if dir == 0 || p.Status == StatusStunned {
		return
	}
	if (dir > 0 && p.Box.X <= WorldW) || (dir < 0 && p.Box.X >= 0) {
		p.VX = float64(dir)
		p.Box.X += float64(dir) * p.Speed
		p.Moving = true
	}
}

// Drop applies the current vertical velocity once more while airborne.
func (p *Player) Drop() {
	if p.Airborne {
		p.Box.Y += p.VY
	}
}

// Jump starts a jump from the ground, or a double jump when the buff allows
// it. Returns false when the request is ignored. A player hit on the
// previous tick cannot jump.
func (p *Player) Jump() bool {
	switch {
	case p.Hit:
		return false
	case !p.Airborne:
	case p.HasDoubleJump() && !p.DoubleJumped:
		p.DoubleJumped = true
	default:
		return false
	}
	p.VY = JumpVelocity
	p.Airborne = true
	p.AirTicks = 0
	return true
}

// Attack reports whether a projectile may be thrown, and starts the cooldown.
// A player hit on the previous tick cannot attack.
func (p *Player) Attack() bool {
	if p.Hit || p.Cooldown != 0 {
		return false
	}
	p.Cooldown = AttackCooldown
	return true
}

// Damage subtracts n from health unless invincible. The hit flag is set
// either way. Returns true when health changed.
func (p *Player) Damage(n int) bool {
	p.Hit = true
	if p.Invincible() {
		return false
	}
	p.Health = core.Max(0, p.Health-n)
	return true
}

// Heal restores n health, capped at the maximum.
func (p *Player) Heal(n int) {
	p.Health = min(PlayerMaxHealth, p.Health+n)
}

// ApplyStatus imposes s for the full status duration.
func (p *Player) ApplyStatus(s StatusEffect) {
	if s == StatusNone {
		return
	}
	p.Status = s
	p.statusTicks = StatusTicks
}

// StatusTicks returns the ticks left on the current status.
func (p *Player) StatusTicks() int { return p.statusTicks }

// GrantDoubleJump starts or refreshes the double jump buff.
func (p *Player) GrantDoubleJump() { p.DoubleJumpTicks = BuffTicks }

// GrantInvincibility starts or refreshes the invincibility buff.
func (p *Player) GrantInvincibility() { p.InvincibleTicks = BuffTicks }

// gravityStep is the velocity gained after airTicks ticks off the ground.
func gravityStep(airTicks int) float64 {
	return math.Min(maxGravityStep, float64(airTicks)/airTickScale*Gravity)
}

// update advances the player by one tick. Returns false when health is
// exhausted; nothing else is updated in that case.
func (p *Player) update(t *Terrain) bool {
	p.Age++
	p.VY = min(p.VY+gravityStep(p.AirTicks), MaxFallSpeed)
	p.AirTicks++
	p.Box.Y += p.VY

	p.Hit = false
	if p.Health <= 0 {
		return false
	}

	p.Cooldown = core.Max(0, p.Cooldown-cooldownStep)

	if p.Status != StatusNone {
		p.statusTicks--
		if p.statusTicks <= 0 {
			p.Status = StatusNone
			p.statusTicks = 0
		}
	}
	switch p.Status {
	case StatusStunned:
		p.Speed = SpeedStunned
	case StatusFrozen:
		p.Speed = SpeedFrozen
	default:
		p.Speed = SpeedNormal
	}

	if t.Snap(&p.Box) {
		p.Airborne = false
		p.DoubleJumped = false
		p.AirTicks = 0
		if p.VY > 0 {
			p.VY = 0
		}
	}

	if p.DoubleJumpTicks > 0 {
		p.DoubleJumpTicks--
	}
	if p.InvincibleTicks > 0 {
		p.InvincibleTicks--
	}
	return true
}
