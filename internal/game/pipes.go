package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/fluppy/internal/config"
	"github.com/vovakirdan/fluppy/internal/core"
	"github.com/vovakirdan/fluppy/internal/sprites"
)

// pipePair is one obstacle: an upper half hanging from the ceiling and a
// lower half standing on the ground, with a fixed-height gap between their
// facing edges. Each pair snapshots the speed, gap and sway of the preset
// active when it spawned, so a difficulty switch never retunes pipes already
// in flight.
type pipePair struct {
	x          float64 // left edge, decreases while active
	baseCenter float64 // gap center before sway
	gap        int     // cells between facing edges, constant for the pair's lifetime
	speed      float64 // cells/s
	sway       config.Sway
	phase      float64 // accumulated sway phase, radians
	passed     bool    // scoring latch, set at most once

	topVariant    int
	bottomVariant int
}

// advance moves the pair left and accumulates sway phase.
func (p *pipePair) advance(dt float64) {
	p.x -= p.speed * dt
	if p.sway.Enabled {
		p.phase += p.sway.Omega * dt
	}
}

// gapCenter returns the current gap center. Both halves are recomputed from
// this every frame, so the gap height is preserved through the sway cycle.
func (p *pipePair) gapCenter() float64 {
	if !p.sway.Enabled {
		return p.baseCenter
	}
	return p.baseCenter + math.Sin(p.phase)*p.sway.Amplitude
}

// edges returns the first gap row and the first row below the gap.
func (p *pipePair) edges() (gapTop, gapBottom int) {
	gapTop = int(math.Round(p.gapCenter() - float64(p.gap)/2))
	if gapTop < 1 {
		gapTop = 1
	}
	return gapTop, gapTop + p.gap
}

// topHalf builds the hanging upper half: rows 0 through gapTop-1, cap facing
// the gap.
func (p *pipePair) topHalf() (*core.Frame, core.Rect) {
	gapTop, _ := p.edges()
	f := sprites.PipeHalf(p.topVariant, gapTop, true)
	return f, core.NewRect(int(p.x), 0, f.Width(), f.Height())
}

// bottomHalf builds the standing lower half: rows gapBottom through the
// ground line.
func (p *pipePair) bottomHalf(groundTop int) (*core.Frame, core.Rect) {
	_, gapBottom := p.edges()
	f := sprites.PipeHalf(p.bottomVariant, groundTop-gapBottom, false)
	return f, core.NewRect(int(p.x), gapBottom, f.Width(), f.Height())
}

// centerX returns the pair's horizontal center, the reference point for pass
// detection. The pair is scored as a unit off its upper half.
func (p *pipePair) centerX() float64 {
	return p.x + float64(sprites.PipeWidth)/2
}

// offscreen reports whether the trailing edge has passed the prune threshold
// left of the screen origin.
func (p *pipePair) offscreen(pruneMargin float64) bool {
	return p.x+float64(sprites.PipeWidth) <= -pruneMargin
}

// collidesWith tests the bird's mask against both halves, upper first. The
// rectangle pre-check only skips mask work; it cannot change the outcome.
func (p *pipePair) collidesWith(birdRect core.Rect, birdMask core.Mask, groundTop int) bool {
	topFrame, topRect := p.topHalf()
	if birdRect.Intersects(topRect) &&
		topFrame.Mask().Overlap(birdMask, birdRect.X-topRect.X, birdRect.Y-topRect.Y) {
		return true
	}

	bottomFrame, bottomRect := p.bottomHalf(groundTop)
	if birdRect.Intersects(bottomRect) &&
		bottomFrame.Mask().Overlap(birdMask, birdRect.X-bottomRect.X, birdRect.Y-bottomRect.Y) {
		return true
	}
	return false
}

// draw renders both halves.
func (p *pipePair) draw(dst *core.Screen, groundTop int) {
	topFrame, topRect := p.topHalf()
	dst.DrawFrame(topFrame, topRect.X, topRect.Y)

	bottomFrame, bottomRect := p.bottomHalf(groundTop)
	dst.DrawFrame(bottomFrame, bottomRect.X, bottomRect.Y)
}

// pipeSet owns the live obstacles: spawn timing, movement, scoring latches
// and pruning. Only the controller touches it, once per frame.
type pipeSet struct {
	pairs      []*pipePair
	rng        *rand.Rand
	spawnTimer float64 // seconds accumulated toward the next spawn
	screenW    int
	groundTop  int
	world      config.World
	preset     config.Preset
}

func newPipeSet(seed int64, screenW, groundTop int, world config.World, preset config.Preset) *pipeSet {
	ps := &pipeSet{
		pairs:     make([]*pipePair, 0, 8),
		screenW:   screenW,
		groundTop: groundTop,
		world:     world,
		preset:    preset,
	}
	ps.reset(seed)
	return ps
}

// reset clears the live set, restarts the spawn timer and reseeds the RNG so
// same-seed runs place obstacles identically.
func (ps *pipeSet) reset(seed int64) {
	ps.pairs = ps.pairs[:0]
	ps.rng = rand.New(rand.NewSource(seed))
	ps.spawnTimer = 0
}

// resize updates the playfield geometry for future spawns.
func (ps *pipeSet) resize(screenW, groundTop int) {
	ps.screenW = screenW
	ps.groundTop = groundTop
}

// update advances the live set by dt seconds: spawn timing, movement,
// pruning, and pass detection against the bird's horizontal center. Returns
// how many pairs were passed this frame. Only called while a run is active.
func (ps *pipeSet) update(dt float64, birdCenterX float64) int {
	ps.spawnTimer += dt
	interval := float64(ps.preset.SpawnIntervalMs) / 1000.0
	if ps.spawnTimer >= interval {
		ps.spawnTimer = 0
		ps.spawn()
	}

	passed := 0
	live := ps.pairs[:0]
	for _, p := range ps.pairs {
		p.advance(dt)
		if !p.passed && p.centerX() < birdCenterX {
			p.passed = true
			passed++
		}
		if !p.offscreen(ps.world.PruneMargin) {
			live = append(live, p)
		}
	}
	ps.pairs = live
	return passed
}

// spawn creates a pair just off the right edge. The gap center is uniform in
// a range that keeps the whole gap between the top margin and the ground
// line; when sway is on, the range shrinks by the amplitude so the swayed
// gap stays on-screen too. Each half samples its texture independently.
func (ps *pipeSet) spawn() {
	gap := ps.preset.PipeGap

	lo := core.Max(ps.world.TopMargin, (gap+1)/2)
	hi := ps.groundTop - (gap+1)/2
	if ps.preset.Sway.Enabled {
		amp := int(math.Ceil(ps.preset.Sway.Amplitude))
		lo += amp
		hi -= amp
	}
	if hi < lo {
		hi = lo
	}

	center := lo
	if hi > lo {
		center = lo + ps.rng.Intn(hi-lo+1)
	}

	ps.pairs = append(ps.pairs, &pipePair{
		x:             float64(ps.screenW + ps.world.SpawnOffset),
		baseCenter:    float64(center),
		gap:           gap,
		speed:         ps.preset.PipeSpeed,
		sway:          ps.preset.Sway,
		topVariant:    ps.rng.Intn(sprites.PipeVariantCount()),
		bottomVariant: ps.rng.Intn(sprites.PipeVariantCount()),
	})
}

// collide tests the bird against every live pair, in spawn order, upper half
// before lower. Short-circuits on the first hit.
func (ps *pipeSet) collide(birdRect core.Rect, birdMask core.Mask) bool {
	for _, p := range ps.pairs {
		if p.collidesWith(birdRect, birdMask, ps.groundTop) {
			return true
		}
	}
	return false
}

// draw renders every live pair.
func (ps *pipeSet) draw(dst *core.Screen) {
	for _, p := range ps.pairs {
		p.draw(dst, ps.groundTop)
	}
}
