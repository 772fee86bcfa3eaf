package canyon

import (
	"testing"

	"github.com/vovakirdan/canyon-runner/internal/core"
)

func newTestGame() *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   20,
		Seed:       42,
		PlayerName: "tester",
	})
	return g
}

func TestHazardThenFlyerDamage(t *testing.T) {
	g := newTestGame()

	g.hazards.Add(Hazard{Box: g.player.Box})
	g.resolveCollisions()
	g.hazards.Clear()

	g.flyers.Add(Flyer{Box: g.player.Box})
	g.resolveCollisions()

	if g.player.Health != 270 {
		t.Errorf("health = %d, expected 270", g.player.Health)
	}
	if !g.player.Hit {
		t.Error("damage should set the hit flag")
	}
}

func TestContactDamage(t *testing.T) {
	tests := []struct {
		name     string
		add      func(g *Game)
		expected int
	}{
		{"hazard", func(g *Game) { g.hazards.Add(Hazard{Box: g.player.Box}) }, DamageHazard},
		{"flyer", func(g *Game) { g.flyers.Add(Flyer{Box: g.player.Box}) }, DamageFlyer},
		{"caster", func(g *Game) { g.casters.Add(Caster{Box: g.player.Box}) }, DamageCaster},
		{"enemy shot", func(g *Game) { g.enemyShots.Add(EnemyShot{Box: g.player.Box}) }, DamageEnemyShot},
		{"boss", func(g *Game) {
			b := newBoss(BossCharger)
			b.Box.X, b.Box.Y = g.player.Box.X, g.player.Box.Y
			g.bosses.Add(b)
		}, DamageBoss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame()
			tt.add(g)
			g.resolveCollisions()
			if lost := PlayerMaxHealth - g.player.Health; lost != tt.expected {
				t.Errorf("player lost %d health, expected %d", lost, tt.expected)
			}
		})
	}
}

func TestInvincibilityBlocksAllDamage(t *testing.T) {
	g := newTestGame()
	g.player.GrantInvincibility()

	box := g.player.Box
	g.hazards.Add(Hazard{Box: box})
	g.flyers.Add(Flyer{Box: box})
	g.casters.Add(Caster{Box: box})
	g.enemyShots.Add(EnemyShot{Box: box, Damage: DamageIce})
	b := newBoss(BossJumper)
	b.Box.X, b.Box.Y = box.X, box.Y
	g.bosses.Add(b)

	g.resolveCollisions()

	if g.player.Health != PlayerMaxHealth {
		t.Errorf("invincible player health = %d", g.player.Health)
	}
	if g.player.Status != StatusNone {
		t.Error("invincible player should not receive a status effect")
	}
	if !g.player.Hit {
		t.Error("overlap should still set the hit flag")
	}
}

func TestEnemyShotStatus(t *testing.T) {
	tests := []struct {
		damage   DamageType
		expected StatusEffect
	}{
		{DamageFire, StatusNone},
		{DamageIce, StatusFrozen},
		{DamageRock, StatusStunned},
	}

	for _, tt := range tests {
		t.Run(tt.damage.String(), func(t *testing.T) {
			g := newTestGame()
			g.enemyShots.Add(EnemyShot{Box: g.player.Box, Damage: tt.damage})
			g.resolveCollisions()

			if g.player.Status != tt.expected {
				t.Errorf("status = %v, expected %v", g.player.Status, tt.expected)
			}
			if g.enemyShots.Len() != 1 {
				t.Error("enemy shots are not consumed by hitting the player")
			}
		})
	}
}

func TestHeroShotKillsFlyerAndPersists(t *testing.T) {
	g := newTestGame()
	box := core.NewRect(600, 200, FlyerSize, FlyerSize)
	g.flyers.Add(Flyer{Box: box})
	g.heroShots.Add(HeroShot{Box: core.NewRect(610, 210, HeroShotSize, HeroShotSize), Dir: 1})

	g.resolveCollisions()
	g.sweep()

	if g.flyers.Len() != 0 {
		t.Error("flyer should be removed")
	}
	if g.player.Score != 1 {
		t.Errorf("score = %d, expected 1", g.player.Score)
	}
	if g.heroShots.Len() != 1 {
		t.Error("hero shot should persist after a kill")
	}
}

func TestHeroShotKillsEachEnemyOnce(t *testing.T) {
	g := newTestGame()
	box := core.NewRect(600, 200, CasterSize, CasterSize)
	g.casters.Add(Caster{Box: box})
	for i := 0; i < 3; i++ {
		g.heroShots.Add(HeroShot{Box: core.NewRect(610+float64(i)*5, 210, HeroShotSize, HeroShotSize)})
	}

	g.resolveCollisions()

	if g.player.Score != 1 {
		t.Errorf("score = %d, expected one kill", g.player.Score)
	}
}

func TestHeroShotDamagesBoss(t *testing.T) {
	g := newTestGame()
	b := newBoss(BossCharger)
	g.bosses.Add(b)
	bx, by := b.Box.Center()
	g.heroShots.Add(HeroShot{Box: core.NewRect(bx, by, HeroShotSize, HeroShotSize), BossMode: true})
	g.heroShots.Add(HeroShot{Box: core.NewRect(bx-10, by, HeroShotSize, HeroShotSize), BossMode: true})

	g.resolveCollisions()
	g.sweep()

	if got := g.bosses.Get(0).Health; got != BossHealth-2*DamageToBoss {
		t.Errorf("boss health = %d, expected %d", got, BossHealth-2*DamageToBoss)
	}
	if g.heroShots.Len() != 2 {
		t.Error("hero shots should persist after hitting the boss")
	}
	if g.player.Score != 0 {
		t.Error("boss hits do not score")
	}
}

func TestPowerupEffects(t *testing.T) {
	tests := []struct {
		kind  PowerupKind
		check func(p *Player) bool
	}{
		{PowerupDoubleJump, func(p *Player) bool { return p.HasDoubleJump() }},
		{PowerupInvincibility, func(p *Player) bool { return p.Invincible() }},
		{PowerupPotion, func(p *Player) bool { return p.Health == PlayerMaxHealth }},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			g := newTestGame()
			g.player.Health = PlayerMaxHealth - 10
			g.powerups.Add(Powerup{Box: g.player.Box, Kind: tt.kind})

			g.resolveCollisions()
			g.sweep()

			if !tt.check(&g.player) {
				t.Errorf("%v effect not applied", tt.kind)
			}
			if g.powerups.Len() != 0 {
				t.Error("powerup should be consumed")
			}
		})
	}
}

func TestCollisionRulesCoverPairs(t *testing.T) {
	seen := make(map[[2]Category]bool)
	for _, r := range collisionRules {
		key := [2]Category{r.a, r.b}
		if seen[key] {
			t.Errorf("duplicate rule %v x %v", r.a, r.b)
		}
		seen[key] = true
	}
	if len(seen) != 9 {
		t.Errorf("expected 9 interacting pairs, got %d", len(seen))
	}
}
