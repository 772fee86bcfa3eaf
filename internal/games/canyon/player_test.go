package canyon

import (
	"math/rand"
	"testing"
)

// flatTerrain returns a seeded terrain whose every sample is h.
func flatTerrain(h int) *Terrain {
	t := NewTerrain(rand.New(rand.NewSource(1)))
	t.heights = make([]int, TerrainSamples)
	for i := range t.heights {
		t.heights[i] = h
	}
	t.phase = TerrainSeeded
	t.segments = 1
	t.project()
	return t
}

func TestPlayerJump(t *testing.T) {
	p := newPlayer()

	if !p.Jump() {
		t.Fatal("jump from the ground should succeed")
	}
	if p.VY != JumpVelocity || !p.Airborne {
		t.Errorf("after jump VY=%f airborne=%v", p.VY, p.Airborne)
	}

	// No buff: the second jump is a no-op
	p.VY = 3
	if p.Jump() {
		t.Error("double jump without the buff should be ignored")
	}
	if p.VY != 3 {
		t.Errorf("ignored jump changed velocity to %f", p.VY)
	}
}

func TestPlayerDoubleJumpGating(t *testing.T) {
	tests := []struct {
		name         string
		buff         bool
		doubleJumped bool
		expected     bool
	}{
		{"buff active, unused", true, false, true},
		{"buff active, already used", true, true, false},
		{"no buff", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlayer()
			p.Airborne = true
			p.DoubleJumped = tt.doubleJumped
			p.VY = 7
			if tt.buff {
				p.GrantDoubleJump()
			}

			got := p.Jump()
			if got != tt.expected {
				t.Errorf("Jump() = %v, expected %v", got, tt.expected)
			}
			if tt.expected && (p.VY != JumpVelocity || !p.DoubleJumped) {
				t.Errorf("double jump should set VY and mark it used, VY=%f", p.VY)
			}
			if !tt.expected && p.VY != 7 {
				t.Errorf("ignored double jump changed velocity to %f", p.VY)
			}
		})
	}
}

func TestPlayerLandingResetsJumpState(t *testing.T) {
	tr := flatTerrain(700)
	p := newPlayer()
	p.Box.Y = 300
	p.Airborne = true
	p.DoubleJumped = true

	for i := 0; i < 200 && p.Airborne; i++ {
		p.update(tr)
	}

	if p.Airborne || p.DoubleJumped {
		t.Fatal("player should land and reset jump flags")
	}
	if p.Box.Bottom() != 700 {
		t.Errorf("player bottom = %f, expected 700", p.Box.Bottom())
	}
	if p.AirTicks != 0 || p.VY != 0 {
		t.Errorf("landing should reset air ticks and fall speed, got %d, %f", p.AirTicks, p.VY)
	}
}

func TestPlayerAttackCooldown(t *testing.T) {
	tr := flatTerrain(700)
	p := newPlayer()

	if !p.Attack() {
		t.Fatal("first attack should succeed")
	}
	if p.Attack() {
		t.Error("attack during cooldown should fail")
	}

	for i := 0; i < AttackCooldown/cooldownStep-1; i++ {
		p.update(tr)
	}
	if p.Attack() {
		t.Errorf("attack with cooldown %d should fail", p.Cooldown)
	}

	p.update(tr)
	if p.Cooldown != 0 {
		t.Fatalf("cooldown = %d, expected 0", p.Cooldown)
	}
	if !p.Attack() {
		t.Error("attack should succeed once the cooldown is exactly 0")
	}
}

func TestPlayerStatusSpeed(t *testing.T) {
	tests := []struct {
		status   StatusEffect
		expected float64
	}{
		{StatusNone, SpeedNormal},
		{StatusFrozen, SpeedFrozen},
		{StatusStunned, SpeedStunned},
	}

	tr := flatTerrain(700)
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			p := newPlayer()
			p.ApplyStatus(tt.status)
			p.update(tr)
			if p.Speed != tt.expected {
				t.Errorf("speed = %f, expected %f", p.Speed, tt.expected)
			}
		})
	}
}

func TestPlayerStunnedCannotMove(t *testing.T) {
	p := newPlayer()
	p.ApplyStatus(StatusStunned)
	x := p.Box.X

	p.Move(1)
	if p.Box.X != x || p.Moving {
		t.Error("stunned player should not move")
	}
}

func TestPlayerStatusExpires(t *testing.T) {
	tr := flatTerrain(700)
	p := newPlayer()
	p.ApplyStatus(StatusFrozen)

	for i := 0; i < StatusTicks-1; i++ {
		p.update(tr)
	}
	if p.Status != StatusFrozen {
		t.Fatal("status should still be active one tick before expiry")
	}
	p.update(tr)
	if p.Status != StatusNone || p.Speed != SpeedNormal {
		t.Errorf("status should expire after %d ticks", StatusTicks)
	}
}

func TestPlayerDamage(t *testing.T) {
	p := newPlayer()

	if !p.Damage(20) || p.Health != PlayerMaxHealth-20 || !p.Hit {
		t.Errorf("damage should apply and set the hit flag, health=%d", p.Health)
	}

	p.GrantInvincibility()
	p.Hit = false
	if p.Damage(50) {
		t.Error("damage should not apply while invincible")
	}
	if p.Health != PlayerMaxHealth-20 {
		t.Errorf("invincible player lost health: %d", p.Health)
	}
	if !p.Hit {
		t.Error("hit flag should be set even while invincible")
	}
}

func TestPlayerHitBlocksJumpAndAttack(t *testing.T) {
	tr := flatTerrain(700)
	p := newPlayer()
	p.Damage(10)

	if p.Jump() {
		t.Error("jump should be ignored while the hit flag is set")
	}
	if p.Airborne || p.VY != 0 {
		t.Errorf("ignored jump changed the player: airborne=%v vy=%f", p.Airborne, p.VY)
	}
	if p.Attack() {
		t.Error("attack should be ignored while the hit flag is set")
	}
	if p.Cooldown != 0 {
		t.Errorf("ignored attack started the cooldown: %d", p.Cooldown)
	}

	p.update(tr)
	if !p.Jump() {
		t.Error("jump should be allowed once the health check clears the hit flag")
	}
	if !p.Attack() {
		t.Error("attack should be allowed once the health check clears the hit flag")
	}
}

func TestPlayerHealCapped(t *testing.T) {
	p := newPlayer()
	p.Health = PlayerMaxHealth - 20
	p.Heal(PotionHeal)
	if p.Health != PlayerMaxHealth {
		t.Errorf("health = %d, expected cap %d", p.Health, PlayerMaxHealth)
	}
}

func TestPlayerHealthCheck(t *testing.T) {
	tr := flatTerrain(700)
	p := newPlayer()
	p.Hit = true

	if !p.update(tr) {
		t.Fatal("healthy player should survive the update")
	}
	if p.Hit {
		t.Error("update should clear the hit flag")
	}

	p.Health = 0
	if p.update(tr) {
		t.Error("update should report exhausted health")
	}
}

func TestPlayerBuffsExpire(t *testing.T) {
	tr := flatTerrain(700)
	p := newPlayer()
	p.GrantDoubleJump()
	p.GrantInvincibility()

	for i := 0; i < BuffTicks; i++ {
		p.update(tr)
	}
	if p.HasDoubleJump() || p.Invincible() {
		t.Error("buffs should expire after BuffTicks updates")
	}
}
