package canyon

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/canyon-runner/internal/core"
)

// TerrainPhase is the lifecycle stage of the terrain generator.
type TerrainPhase int

const (
	TerrainUninitialized TerrainPhase = iota
	TerrainSeeded
	TerrainSteady
)

// Terrain holds the rolling ground height field and the top-surface
// rectangles derived from it.
type Terrain struct {
	heights  []int       // one sample per ground column, front = leftmost
	tops     []core.Rect // rolling window of top surfaces, oldest first
	rng      *rand.Rand
	phase    TerrainPhase
	segments int // segments generated, the seed buffer included

	onSegment func(seg []int) // observes every appended segment
}

// NewTerrain creates an uninitialized terrain drawing from rng.
func NewTerrain(rng *rand.Rand) *Terrain {
	return &Terrain{
		heights: make([]int, 0, TerrainSamples),
		tops:    make([]core.Rect, 0, TerrainSamples*2),
		rng:     rng,
	}
}

// Displace fills the interior of heights by midpoint displacement, keeping
// both endpoints fixed. Each recursion level scales the displacement by
// Roughness.
func Displace(rng *rand.Rand, heights []int, displacement float64) {
	if len(heights) < 3 {
		return
	}
	displace(rng, heights, 0, len(heights)-1, displacement)
}

func displace(rng *rand.Rand, heights []int, left, right int, displacement float64) {
	if right-left <= 1 {
		return
	}
	mid := (left + right) / 2
	offset := 0.0
	if displacement > 0 {
		offset = rng.Float64()*2*displacement - displacement
	}
	heights[mid] = int(math.Round(float64(heights[left]+heights[right])/2 + offset))

	displacement *= Roughness
	displace(rng, heights, left, mid, displacement)
	displace(rng, heights, mid, right, displacement)
}

// randBetween returns a uniform integer in [lo, hi].
func randBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Seed allocates the initial height buffer. It is a no-op once seeded.
func (t *Terrain) Seed() {
	if t.phase != TerrainUninitialized {
		return
	}
	h := int(WorldH)
	t.heights = t.heights[:0]
	for i := 0; i < TerrainSamples; i++ {
		t.heights = append(t.heights, 0)
	}
	t.heights[0] = randBetween(t.rng, 2*(h/3), 5*(h/6))
	t.heights[TerrainSamples-1] = randBetween(t.rng, 2*(h/3), 5*(h/6))
	Displace(t.rng, t.heights, Displacement)

	t.phase = TerrainSeeded
	t.segments = 1
	t.project()
}

// Advance moves the terrain by one tick. Outside boss mode the leftmost
// sample scrolls away and a new segment is appended once the buffer runs
// low. The top-rectangle window is projected every tick.
func (t *Terrain) Advance(bossMode bool) {
	if t.phase == TerrainUninitialized {
		t.Seed()
	}

	if !bossMode {
		if len(t.heights) > RefillThreshold {
			t.heights = append(t.heights[:0], t.heights[1:]...)
		}
		if len(t.heights) <= RefillThreshold {
			t.appendSegment()
		}
		t.phase = TerrainSteady
	}

	t.project()
}

// appendSegment generates a new segment continuing from the last sample.
func (t *Terrain) appendSegment() {
	h := int(WorldH)
	seg := make([]int, SegmentSamples)
	seg[0] = t.heights[len(t.heights)-1]
	seg[SegmentSamples-1] = randBetween(t.rng, h/3, 5*(h/6))
	Displace(t.rng, seg, Displacement)

	t.heights = append(t.heights, seg...)
	t.segments++
	if t.onSegment != nil {
		t.onSegment(seg)
	}
}

// project appends the rectangles for the current buffer and trims the
// window to its cap, dropping the oldest entries.
func (t *Terrain) project() {
	for i, height := range t.heights {
		t.tops = append(t.tops, core.NewRect(
			float64(i*ColumnWidth),
			float64(height),
			float64(ColumnWidth),
			WorldH-float64(height),
		))
	}
	if excess := len(t.tops) - TerrainSamples; excess > 0 {
		t.tops = append(t.tops[:0], t.tops[excess:]...)
	}
}

// Snap rests box on the first top rectangle it overlaps and reports
// whether it did.
func (t *Terrain) Snap(box *core.Rect) bool {
	for _, top := range t.tops {
		if top.Overlaps(*box) {
			box.Y = top.Y - box.H
			return true
		}
	}
	return false
}

// HeightAt returns height sample i, clamped to the buffer.
func (t *Terrain) HeightAt(i int) int {
	if len(t.heights) == 0 {
		return int(WorldH)
	}
	return t.heights[core.Clamp(i, 0, len(t.heights)-1)]
}

// Heights returns a copy of the height buffer.
func (t *Terrain) Heights() []int {
	return append([]int(nil), t.heights...)
}

// Tops returns a copy of the top-rectangle window.
func (t *Terrain) Tops() []core.Rect {
	return append([]core.Rect(nil), t.tops...)
}

// Phase returns the generator lifecycle stage.
func (t *Terrain) Phase() TerrainPhase {
	return t.phase
}

// Segments returns how many segments have been generated.
func (t *Terrain) Segments() int {
	return t.segments
}
