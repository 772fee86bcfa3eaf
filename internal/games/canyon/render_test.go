package canyon

import (
	"strings"
	"testing"

	"github.com/vovakirdan/canyon-runner/internal/core"
)

func TestRenderHUD(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if hud := screen.Row(0); !strings.Contains(hud, "HP 300/300") || !strings.Contains(hud, "Score 0") {
		t.Errorf("HUD row = %q", hud)
	}
	if !strings.ContainsRune(screen.String(), GroundTopChar) {
		t.Error("terrain surface should be drawn")
	}
	if !strings.ContainsRune(screen.String(), PlayerChar) {
		t.Error("player should be drawn")
	}
}

func TestRenderBossHUD(t *testing.T) {
	g := newTestGame()
	g.spawnBoss()
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	kind := strings.ToUpper(g.bosses.Get(0).Kind.String())
	if !strings.Contains(screen.Row(0), kind) {
		t.Errorf("HUD should name the boss %s: %q", kind, screen.Row(0))
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(g *Game)
		expected string
	}{
		{"paused", func(g *Game) { g.paused = true }, "PAUSED"},
		{"game over", func(g *Game) { g.gameOver = true }, "GAME OVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame()
			tt.setup(g)
			screen := core.NewScreen(80, 24)
			g.Render(screen)
			if !strings.Contains(screen.String(), tt.expected) {
				t.Errorf("screen should show %q", tt.expected)
			}
		})
	}
}

func TestAnimFrame(t *testing.T) {
	tests := []struct {
		age, frames, ticks, expected int
	}{
		{0, 4, 3, 0},
		{2, 4, 3, 0},
		{3, 4, 3, 1},
		{12, 4, 3, 0},
		{5, 0, 3, 0},
		{5, 2, 0, 0},
	}
	for _, tt := range tests {
		if got := AnimFrame(tt.age, tt.frames, tt.ticks); got != tt.expected {
			t.Errorf("AnimFrame(%d, %d, %d) = %d, expected %d", tt.age, tt.frames, tt.ticks, got, tt.expected)
		}
	}
}

func TestSnapshotCopies(t *testing.T) {
	g := newTestGame()
	g.flyers.Add(Flyer{Box: core.NewRect(500, 100, FlyerSize, FlyerSize)})
	g.powerups.Add(Powerup{Box: core.NewRect(700, 100, PowerupSize, PowerupSize), Kind: PowerupPotion})

	snap := g.Snapshot()
	if len(snap.Entities) != 2 {
		t.Fatalf("entities = %d, expected 2", len(snap.Entities))
	}
	if snap.Entities[1].Variant != "potion" {
		t.Errorf("powerup variant = %q", snap.Entities[1].Variant)
	}

	snap.Terrain[0].Y = -1
	if g.terrain.Tops()[0].Y == -1 {
		t.Error("snapshot terrain should be a copy")
	}
}
