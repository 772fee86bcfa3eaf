// Package canyon implements Canyon Runner, a side-scrolling action game.
// The runner crosses procedurally generated terrain, fights bats, demons and
// bosses, and collects timed powerups. All simulation runs in world units
// (1200x800) on a fixed tick; rendering scales the world into the terminal.
package canyon

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/canyon-runner/internal/core"
)

// Game implements the Canyon Runner simulation.
type Game struct {
	runtime core.RuntimeConfig
	rng     *rand.Rand
	terrain *Terrain
	player  Player

	hazards    *Population[Hazard]
	flyers     *Population[Flyer]
	casters    *Population[Caster]
	enemyShots *Population[EnemyShot]
	heroShots  *Population[HeroShot]
	powerups   *Population[Powerup]
	bosses     *Population[Boss] // at most one; non-empty means boss mode

	tickCount uint64
	paused    bool
	gameOver  bool
	recorded  bool // score record already emitted this session
	events    []core.Event
}

// New creates a new Canyon Runner game instance. Call Reset before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "canyon"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Canyon Runner"
}

// Reset starts a new session with a freshly seeded world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.terrain = NewTerrain(g.rng)
	g.terrain.Seed()
	g.player = newPlayer()

	g.hazards = NewPopulation[Hazard](0)
	g.flyers = NewPopulation[Flyer](MaxFlyers)
	g.casters = NewPopulation[Caster](MaxCasters)
	g.enemyShots = NewPopulation[EnemyShot](0)
	g.heroShots = NewPopulation[HeroShot](0)
	g.powerups = NewPopulation[Powerup](0)
	g.bosses = NewPopulation[Boss](1)

	g.tickCount = 0
	g.paused = false
	g.gameOver = false
	g.recorded = false
	g.events = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return g.result(nil)
	}

	if g.gameOver {
		return g.result(nil)
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result(nil)
	}

	g.tickCount++
	g.applyIntents(in)
	g.rollBoss()

	// Health is checked before collisions, so damage taken this tick ends
	// the game on the next one.
	if !g.player.update(g.terrain) {
		g.gameOver = true
		g.emit(core.EventGameOver, fmt.Sprintf("score %d", g.player.Score))
		return g.result(g.record())
	}

	bossMode := g.BossMode()
	g.terrain.Advance(bossMode)
	g.updatePopulations(bossMode)
	g.rollSpawns(bossMode)
	if b := g.bosses.Get(0); b != nil {
		b.update(&g.player, g.terrain)
	}

	g.resolveCollisions()
	g.sweep()

	return g.result(nil)
}

// applyIntents turns the input frame into player actions. Illegal
// requests are ignored by the player.
func (g *Game) applyIntents(in core.InputFrame) {
	g.player.Move(in.Horizontal())
	if in.Has(core.ActionDrop) {
		g.player.Drop()
	}
	if in.Has(core.ActionJump) {
		g.player.Jump()
	}
	if in.Has(core.ActionAttack) && g.player.Attack() {
		g.heroShots.Add(newHeroShot(&g.player, g.BossMode()))
	}
	if in.Has(core.ActionSummonBoss) {
		g.spawnBoss()
	}
}

// bossWindowOpen reports whether tick falls after the warmup and inside the
// spawn window of the boss cycle. Bounds are inclusive whole seconds.
func bossWindowOpen(tick uint64) bool {
	if tick <= bossWarmupSec*bossClockDivisor {
		return false
	}
	phase := tick % (bossCycleSec * bossClockDivisor)
	return phase >= bossWindowLo*bossClockDivisor && phase <= bossWindowHi*bossClockDivisor
}

// rollBoss spawns a boss inside the periodic window of the boss clock.
func (g *Game) rollBoss() {
	if g.BossMode() {
		return
	}
	if !bossWindowOpen(g.tickCount) {
		return
	}
	if 1+g.rng.Intn(bossOutOf) <= bossChance {
		g.spawnBoss()
	}
}

// spawnBoss adds a random boss variant unless one is already present.
func (g *Game) spawnBoss() {
	if g.bosses.Full() {
		return
	}
	b := newBoss(BossKind(g.rng.Intn(2)))
	g.bosses.Add(b)
	g.emit(core.EventBossSpawned, b.Kind.String())
}

// updatePopulations moves every entity and marks the expired ones.
func (g *Game) updatePopulations(bossMode bool) {
	g.hazards.Each(func(i int, h *Hazard) {
		if !h.update(bossMode) {
			g.hazards.Kill(i)
		}
	})
	g.flyers.Each(func(i int, f *Flyer) {
		if !f.update(g.terrain) {
			g.flyers.Kill(i)
		}
	})
	g.casters.Each(func(i int, c *Caster) {
		// Shots leave from where the caster stood before this tick's move,
		// including on the tick it leaves the screen.
		cx, cy := c.Box.Center()
		alive := c.update(g.player.Box, g.terrain)
		if g.enemyShots.Len() <= c.Damage.shotLimit() {
			g.enemyShots.Add(c.fire(cx, cy, g.player.Box))
		}
		if !alive {
			g.casters.Kill(i)
		}
	})
	g.enemyShots.Each(func(i int, s *EnemyShot) {
		if !s.update() {
			g.enemyShots.Kill(i)
		}
	})
	g.heroShots.Each(func(i int, s *HeroShot) {
		if !s.update(g.terrain) {
			g.heroShots.Kill(i)
		}
	})
	g.powerups.Each(func(i int, p *Powerup) {
		if !p.update(g.terrain) {
			g.powerups.Kill(i)
		}
	})
}

// rollSpawns draws the per-tick spawn chances. Enemies only appear outside
// boss mode; powerups appear at most once per kind.
func (g *Game) rollSpawns(bossMode bool) {
	if !bossMode {
		if g.rng.Intn(hazardOutOf+1) <= hazardChance {
			y := float64(g.terrain.HeightAt(hazardColumn)) - hazardSink
			g.hazards.Add(Hazard{Box: core.NewRect(WorldW, y, HazardW, HazardH)})
		}
		if 1+g.rng.Intn(flyerOutOf) <= flyerChance {
			g.flyers.Add(Flyer{Box: core.NewRect(WorldW, FlyerSpawnY, FlyerSize, FlyerSize)})
		}
		if g.rng.Intn(casterOutOf+1) <= casterChance {
			g.casters.Add(Caster{
				Box:    core.NewRect(WorldW, CasterSpawnY, CasterSize, CasterSize),
				Damage: DamageType(g.rng.Intn(3)),
			})
		}
	}

	if !g.player.HasDoubleJump() && !g.hasPowerup(PowerupDoubleJump) &&
		g.rng.Intn(doubleJumpOutOf+1) <= doubleJumpChance {
		g.spawnPowerup(PowerupDoubleJump)
	}
	if !g.player.Invincible() && !g.hasPowerup(PowerupInvincibility) &&
		g.rng.Intn(invincibilityOutOf+1) <= invincibilityChance {
		g.spawnPowerup(PowerupInvincibility)
	}
	if !g.hasPowerup(PowerupPotion) && g.rng.Intn(potionOutOf+1) <= potionChance {
		g.spawnPowerup(PowerupPotion)
	}
}

// hasPowerup reports whether a powerup of kind is on screen.
func (g *Game) hasPowerup(kind PowerupKind) bool {
	n := 0
	g.powerups.Each(func(_ int, p *Powerup) {
		if p.Kind == kind {
			n++
		}
	})
	return n >= MaxPowerups
}

// spawnPowerup drops a powerup a random distance to either side of the player.
func (g *Game) spawnPowerup(kind PowerupKind) {
	offset := (g.rng.Float64()*2 - 1) * float64(randBetween(g.rng, powerupMinOffset, powerupMaxOffset))
	g.powerups.Add(Powerup{
		Box:  core.NewRect(g.player.Box.X+offset, g.player.Box.Y-powerupLift, PowerupSize, PowerupSize),
		Kind: kind,
	})
}

// sweep removes every entity marked this tick and despawns a defeated boss.
func (g *Game) sweep() {
	if b := g.bosses.Get(0); b != nil && b.Dead() {
		g.bosses.Kill(0)
		g.emit(core.EventBossDefeated, b.Kind.String())
	}

	g.hazards.Sweep()
	g.flyers.Sweep()
	g.casters.Sweep()
	g.enemyShots.Sweep()
	g.heroShots.Sweep()
	g.powerups.Sweep()
	g.bosses.Sweep()
}

// record returns the session's score record the first time it is called.
func (g *Game) record() *core.ScoreRecord {
	if g.recorded {
		return nil
	}
	g.recorded = true
	return &core.ScoreRecord{Name: g.runtime.PlayerName, Score: g.player.Score}
}

func (g *Game) emit(kind core.EventKind, detail string) {
	g.events = append(g.events, core.Event{Kind: kind, Tick: g.tickCount, Detail: detail})
}

func (g *Game) result(rec *core.ScoreRecord) core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events, Record: rec}
}

// BossMode reports whether a boss fight is in progress.
func (g *Game) BossMode() bool {
	return g.bosses.Len() > 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.player.Score,
		GameOver: g.gameOver,
		Paused:   g.paused,
		BossMode: g.BossMode(),
	}
}
