package canyon

import "github.com/vovakirdan/canyon-runner/internal/core"

// BossKind selects the boss behavior variant.
type BossKind int

const (
	BossCharger BossKind = iota // werewolf
	BossJumper                  // ogre
)

// String returns the creature name of the variant.
func (k BossKind) String() string {
	if k == BossJumper {
		return "ogre"
	}
	return "werewolf"
}

// BossPhase is the coarse behavior state reported to the renderer.
type BossPhase int

const (
	PhaseIdle BossPhase = iota
	PhaseWindup
	PhaseCharging
	PhaseJumping
)

// String returns the phase name.
func (p BossPhase) String() string {
	switch p {
	case PhaseWindup:
		return "windup"
	case PhaseCharging:
		return "charging"
	case PhaseJumping:
		return "jumping"
	default:
		return "idle"
	}
}

// Boss is the single melee enemy of a boss fight.
//
// VX is a direction multiplier: the boss moves by -BossStep*VX each tick.
type Boss struct {
	Kind     BossKind
	Box      core.Rect
	VX, VY   float64
	Health   int
	AirTicks int // never reset, so the boss falls at the full gravity step
	Age      int

	// charger
	Countdown int
	Charged   bool

	// jumper
	Cooldown int
	MidJump  bool
}

func newBoss(kind BossKind) Boss {
	w, h := ChargerW, ChargerH
	if kind == BossJumper {
		w, h = JumperSize, JumperSize
	}
	return Boss{
		Kind:      kind,
		Box:       core.NewRect(WorldW-w, bossSpawnY, w, h),
		Health:    BossHealth,
		Countdown: ChargeCountdown,
	}
}

// Bounds returns the collision box.
func (b Boss) Bounds() core.Rect { return b.Box }

// Dead reports whether the boss should despawn.
func (b *Boss) Dead() bool { return b.Health < 0 }

// Phase returns the current behavior phase.
func (b *Boss) Phase() BossPhase {
	switch b.Kind {
	case BossJumper:
		if b.MidJump {
			return PhaseJumping
		}
	case BossCharger:
		if b.VX != 0 {
			return PhaseCharging
		}
		if !b.Charged && b.Countdown > 0 && b.Countdown < chargeWindupTicks {
			return PhaseWindup
		}
	}
	return PhaseIdle
}

// update advances the boss by one tick against the player's position.
func (b *Boss) update(p *Player, t *Terrain) {
	b.Age++
	b.Box.Y += b.VY

	if b.Kind == BossJumper && !b.MidJump {
		if b.Box.X <= p.Box.X {
			b.VX = -1
		} else {
			b.VX = 1
		}
	}

	b.Box.X -= BossStep * b.VX
	maxX := WorldW - b.Box.W
	wall := b.Box.X < 0 || b.Box.X > maxX
	b.Box.X = core.ClampF(b.Box.X, 0, maxX)

	b.VY = min(b.VY+gravityStep(b.AirTicks), MaxFallSpeed)
	b.AirTicks++

	switch b.Kind {
	case BossJumper:
		b.updateJumper(p, t)
	case BossCharger:
		b.updateCharger(p, t, wall)
	}
}

// land snaps the boss to the ground and reports contact.
func (b *Boss) land(t *Terrain) bool {
	if !t.Snap(&b.Box) {
		return false
	}
	if b.VY > 0 {
		b.VY = 0
	}
	return true
}

func (b *Boss) updateJumper(p *Player, t *Terrain) {
	if b.Cooldown > 0 {
		b.Cooldown--
		if b.Cooldown == 0 {
			b.MidJump = false
		}
	}
	if b.land(t) && b.VY >= 0 {
		b.MidJump = false
	}

	if b.Cooldown == 0 {
		bx, by := b.Box.Center()
		px, py := p.Box.Center()
		d := core.Distance(bx, by, px, py)
		if d >= JumpBandMin && d <= JumpBandMax {
			b.VY = BossJumpVelocity
			b.VX *= 2
			b.MidJump = true
			b.Cooldown = JumpCooldown
		}
	}
}

func (b *Boss) updateCharger(p *Player, t *Terrain, wall bool) {
	if !b.Charged {
		b.Countdown--
		if b.Countdown <= 0 {
			b.Countdown = 0
			b.Charged = true
		}
	}
	b.land(t)

	if wall {
		b.VX = 0
	}
	if b.Countdown == 0 && b.Charged {
		if b.Box.X < p.Box.X {
			b.VX = -ChargeSpeed
		} else {
			b.VX = ChargeSpeed
		}
		b.Countdown = ChargeCountdown
		b.Charged = false
	}
}
