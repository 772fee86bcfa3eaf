package canyon

import (
	"fmt"

	"github.com/vovakirdan/canyon-runner/internal/core"
)

// Category tags an entity population for collision dispatch.
type Category int

const (
	CategoryPlayer Category = iota
	CategoryHazard
	CategoryFlyer
	CategoryCaster
	CategoryHeroShot
	CategoryEnemyShot
	CategoryPowerup
	CategoryBoss
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryHazard:
		return "hazard"
	case CategoryFlyer:
		return "flyer"
	case CategoryCaster:
		return "caster"
	case CategoryHeroShot:
		return "hero_shot"
	case CategoryEnemyShot:
		return "enemy_shot"
	case CategoryPowerup:
		return "powerup"
	case CategoryBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// bounded is implemented by every entity stored in a Population.
type bounded interface {
	Bounds() core.Rect
}

// collisionRule resolves every overlap between two categories.
type collisionRule struct {
	a, b    Category
	resolve func(g *Game)
}

// collisionRules lists the interacting pairs in resolution order.
var collisionRules = []collisionRule{
	{CategoryHeroShot, CategoryFlyer, (*Game).heroHitsFlyers},
	{CategoryHeroShot, CategoryCaster, (*Game).heroHitsCasters},
	{CategoryHeroShot, CategoryBoss, (*Game).heroHitsBoss},
	{CategoryHazard, CategoryPlayer, (*Game).hazardsHitPlayer},
	{CategoryFlyer, CategoryPlayer, (*Game).flyersHitPlayer},
	{CategoryCaster, CategoryPlayer, (*Game).castersHitPlayer},
	{CategoryEnemyShot, CategoryPlayer, (*Game).enemyShotsHitPlayer},
	{CategoryPowerup, CategoryPlayer, (*Game).collectPowerups},
	{CategoryBoss, CategoryPlayer, (*Game).bossHitsPlayer},
}

// contactDamage is the player damage dealt by each hostile category.
var contactDamage = map[Category]int{
	CategoryHazard:    DamageHazard,
	CategoryFlyer:     DamageFlyer,
	CategoryCaster:    DamageCaster,
	CategoryEnemyShot: DamageEnemyShot,
	CategoryBoss:      DamageBoss,
}

// resolveCollisions applies every collision rule once.
func (g *Game) resolveCollisions() {
	for _, rule := range collisionRules {
		rule.resolve(g)
	}
}

// touching calls fn for every live entity of pop overlapping box.
func touching[T bounded](box core.Rect, pop *Population[T], fn func(i int, e *T)) {
	pop.Each(func(i int, e *T) {
		if (*e).Bounds().Overlaps(box) {
			fn(i, e)
		}
	})
}

// heroHits calls fn for every live target overlapped by each hero shot.
// Targets killed by an earlier shot are skipped.
func heroHits[T bounded](shots *Population[HeroShot], targets *Population[T], fn func(i int, e *T)) {
	shots.Each(func(_ int, s *HeroShot) {
		touching(s.Box, targets, fn)
	})
}

// hurtPlayer applies contact damage from src. Returns true when health changed.
func (g *Game) hurtPlayer(src Category) bool {
	n := contactDamage[src]
	if !g.player.Damage(n) {
		return false
	}
	g.emit(core.EventPlayerHit, fmt.Sprintf("%s -%d", src, n))
	return true
}

func (g *Game) heroHitsFlyers() {
	heroHits(g.heroShots, g.flyers, func(i int, _ *Flyer) {
		g.flyers.Kill(i)
		g.player.Score++
	})
}

func (g *Game) heroHitsCasters() {
	heroHits(g.heroShots, g.casters, func(i int, _ *Caster) {
		g.casters.Kill(i)
		g.player.Score++
	})
}

func (g *Game) heroHitsBoss() {
	heroHits(g.heroShots, g.bosses, func(_ int, b *Boss) {
		b.Health -= DamageToBoss
	})
}

func (g *Game) hazardsHitPlayer() {
	touching(g.player.Box, g.hazards, func(int, *Hazard) {
		g.hurtPlayer(CategoryHazard)
	})
}

func (g *Game) flyersHitPlayer() {
	touching(g.player.Box, g.flyers, func(int, *Flyer) {
		g.hurtPlayer(CategoryFlyer)
	})
}

func (g *Game) castersHitPlayer() {
	touching(g.player.Box, g.casters, func(int, *Caster) {
		g.hurtPlayer(CategoryCaster)
	})
}

func (g *Game) enemyShotsHitPlayer() {
	touching(g.player.Box, g.enemyShots, func(_ int, s *EnemyShot) {
		if g.hurtPlayer(CategoryEnemyShot) {
			g.player.ApplyStatus(s.Damage.Status())
		}
	})
}

func (g *Game) collectPowerups() {
	touching(g.player.Box, g.powerups, func(i int, p *Powerup) {
		switch p.Kind {
		case PowerupDoubleJump:
			g.player.GrantDoubleJump()
		case PowerupInvincibility:
			g.player.GrantInvincibility()
		case PowerupPotion:
			g.player.Heal(PotionHeal)
		}
		g.powerups.Kill(i)
	})
}

func (g *Game) bossHitsPlayer() {
	touching(g.player.Box, g.bosses, func(int, *Boss) {
		g.hurtPlayer(CategoryBoss)
	})
}
