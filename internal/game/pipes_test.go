package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/fluppy/internal/config"
	"github.com/vovakirdan/fluppy/internal/core"
	"github.com/vovakirdan/fluppy/internal/sprites"
)

const testGroundTop = 22 // 24-row screen minus the ground band

func newTestPipeSet(seed int64, preset config.Preset) *pipeSet {
	return newPipeSet(seed, 80, testGroundTop, config.DefaultConfig().World, preset)
}

func TestSpawnGapWithinBounds(t *testing.T) {
	world := config.DefaultConfig().World
	for _, name := range config.Names() {
		preset, _ := config.Lookup(name)
		ps := newTestPipeSet(99, preset)

		for i := 0; i < 200; i++ {
			ps.spawn()
		}
		for _, p := range ps.pairs {
			half := float64(p.gap) / 2
			if p.baseCenter-half < float64(world.TopMargin) {
				t.Fatalf("%s: gap top %f above top margin %d", name, p.baseCenter-half, world.TopMargin)
			}
			if p.baseCenter+half > float64(testGroundTop) {
				t.Fatalf("%s: gap bottom %f below ground line %d", name, p.baseCenter+half, testGroundTop)
			}
		}
	}
}

func TestSpawnSamplesVariantsIndependently(t *testing.T) {
	preset, _ := config.Lookup("normal")
	ps := newTestPipeSet(7, preset)
	for i := 0; i < 50; i++ {
		ps.spawn()
	}

	tops := map[int]bool{}
	mixed := false
	for _, p := range ps.pairs {
		tops[p.topVariant] = true
		if p.topVariant != p.bottomVariant {
			mixed = true
		}
	}
	if len(tops) < 2 {
		t.Error("50 spawns should use more than one top variant")
	}
	if !mixed {
		t.Error("halves should sample variants independently")
	}
}

func TestPassLatchFiresOnce(t *testing.T) {
	preset, _ := config.Lookup("normal")
	preset.SpawnIntervalMs = 1 << 30 // no timer spawns during the test
	ps := newTestPipeSet(1, preset)

	p := &pipePair{x: 20, baseCenter: 11, gap: 6, speed: 30}
	ps.pairs = append(ps.pairs, p)

	birdCenter := 18.0
	total := 0
	for i := 0; i < 100 && !p.offscreen(ps.world.PruneMargin); i++ {
		total += ps.update(0.016, birdCenter)
	}
	if total != 1 {
		t.Errorf("a pair should score exactly once, got %d", total)
	}
	if !p.passed {
		t.Error("pass latch should be set after crossing the bird")
	}
}

func TestSwayedGapCenterMatchesSine(t *testing.T) {
	p := &pipePair{
		baseCenter: 100,
		gap:        6,
		sway:       config.Sway{Enabled: true, Amplitude: 40, Omega: 2.2},
	}

	// At t = π/4.4 the phase is π/2, offset +amplitude.
	p.advance(math.Pi / 4.4)
	if got := p.gapCenter(); math.Abs(got-140) > 1e-9 {
		t.Errorf("center at quarter period = %f, want 140", got)
	}

	// Advance to t = 3π/4.4: phase 3π/2, offset -amplitude.
	p.advance(math.Pi / 2.2)
	if got := p.gapCenter(); math.Abs(got-60) > 1e-9 {
		t.Errorf("center at three-quarter period = %f, want 60", got)
	}
}

func TestSwayPreservesGapHeight(t *testing.T) {
	p := &pipePair{
		baseCenter: 11,
		gap:        5,
		sway:       config.Sway{Enabled: true, Amplitude: 3, Omega: 2.2},
	}

	for i := 0; i < 200; i++ {
		p.advance(0.03)
		gapTop, gapBottom := p.edges()
		if gapBottom-gapTop != p.gap {
			t.Fatalf("gap height drifted during sway: %d, want %d", gapBottom-gapTop, p.gap)
		}
	}
}

func TestSwayDisabledCenterFixed(t *testing.T) {
	p := &pipePair{baseCenter: 11, gap: 6, speed: 30}
	for i := 0; i < 50; i++ {
		p.advance(0.1)
	}
	if p.gapCenter() != 11 {
		t.Errorf("sway-less center moved to %f", p.gapCenter())
	}
}

func TestPruneTiming(t *testing.T) {
	preset, _ := config.Lookup("normal")
	preset.SpawnIntervalMs = 1 << 30
	ps := newTestPipeSet(1, preset)

	const (
		startX = 180.0
		speed  = 220.0
	)
	ps.pairs = append(ps.pairs, &pipePair{x: startX, baseCenter: 11, gap: 6, speed: speed})

	// Trailing edge reaches the prune threshold after
	// (startX + width + margin) / speed seconds.
	bound := (startX + float64(sprites.PipeWidth) + ps.world.PruneMargin) / speed
	dt := 0.01
	elapsed := 0.0
	for len(ps.pairs) > 0 {
		ps.update(dt, -1000) // bird center far left, no pass events
		elapsed += dt
		if elapsed > bound+2*dt {
			t.Fatalf("pair lingered past the prune bound %fs", bound)
		}
	}
	if elapsed < bound-2*dt {
		t.Fatalf("pair pruned too early: %fs, bound %fs", elapsed, bound)
	}
}

func TestGapEdgesMatchHalves(t *testing.T) {
	p := &pipePair{x: 30, baseCenter: 11, gap: 6}
	gapTop, gapBottom := p.edges()

	topFrame, topRect := p.topHalf()
	if topRect.Y != 0 || topFrame.Height() != gapTop {
		t.Errorf("top half should span rows 0..%d, got y=%d h=%d", gapTop-1, topRect.Y, topFrame.Height())
	}

	bottomFrame, bottomRect := p.bottomHalf(testGroundTop)
	if bottomRect.Y != gapBottom {
		t.Errorf("bottom half should start at row %d, got %d", gapBottom, bottomRect.Y)
	}
	if bottomRect.Y+bottomFrame.Height() != testGroundTop {
		t.Errorf("bottom half should reach the ground line %d, got %d",
			testGroundTop, bottomRect.Y+bottomFrame.Height())
	}
}

func TestCollideWithGapMiss(t *testing.T) {
	p := &pipePair{x: 16, baseCenter: 11, gap: 8}

	// A bird sitting squarely in the gap must not collide.
	set := sprites.Bird(sprites.ScaleMedium)
	frame := set.Frames(sprites.PoseLevel)[0]
	rect := core.NewRect(16, 10, frame.Width(), frame.Height())
	if p.collidesWith(rect, frame.Mask(), testGroundTop) {
		t.Error("bird inside the gap should not collide")
	}

	// The same bird shifted into the lower half must collide.
	rect.Y = 18
	if !p.collidesWith(rect, frame.Mask(), testGroundTop) {
		t.Error("bird inside the lower half should collide")
	}

	// And into the upper half.
	rect.Y = 2
	if !p.collidesWith(rect, frame.Mask(), testGroundTop) {
		t.Error("bird inside the upper half should collide")
	}
}

func TestEmptyMaskNeverCollides(t *testing.T) {
	p := &pipePair{x: 16, baseCenter: 11, gap: 6}

	empty := core.NewMask(4, 2)
	rect := core.NewRect(16, 2, 4, 2) // deep inside the upper half
	if p.collidesWith(rect, empty, testGroundTop) {
		t.Error("a fully transparent mask must never collide")
	}
}

func TestPipeSetResetRestoresPlacement(t *testing.T) {
	preset, _ := config.Lookup("normal")
	ps := newTestPipeSet(42, preset)

	firstRun := make([]float64, 0, 5)
	for i := 0; i < 5; i++ {
		ps.spawn()
		firstRun = append(firstRun, ps.pairs[i].baseCenter)
	}

	ps.reset(42)
	if len(ps.pairs) != 0 {
		t.Fatal("reset should clear the live set")
	}
	for i := 0; i < 5; i++ {
		ps.spawn()
		if ps.pairs[i].baseCenter != firstRun[i] {
			t.Fatalf("same seed should replay placement: run1=%f run2=%f", firstRun[i], ps.pairs[i].baseCenter)
		}
	}
}
