// Package game implements the fluppy simulation: a three-state reflex game
// where a flapping bird threads the gaps of an endless pipe stream. The
// package is pure — it draws into a core.Screen and triggers core.Sound
// events, but never touches the terminal, the clock, or any I/O.
package game

import (
	"fmt"

	"github.com/vovakirdan/fluppy/internal/config"
	"github.com/vovakirdan/fluppy/internal/core"
	"github.com/vovakirdan/fluppy/internal/sprites"
)

// Game is the controller: it owns the bird, the obstacle set and the
// parallax layers, and mutates them in a single update pass per frame.
type Game struct {
	rc     core.RuntimeConfig
	cfg    config.Config
	preset config.Preset
	sounds core.SoundSink
	seed   int64

	state State
	score int
	best  int

	bird  *bird
	pipes *pipeSet

	stars   *scrollingLayer
	clouds  *scrollingLayer
	skyline *scrollingLayer
	ground  *scrollingLayer
}

// New builds a game for one difficulty preset. Switching presets means
// building a new game; pipes in flight keep their spawn-time parameters
// either way, so a switch mid-run is never half-applied.
func New(rc core.RuntimeConfig, cfg config.Config, preset config.Preset, sounds core.SoundSink) *Game {
	if sounds == nil {
		sounds = core.NopSink{}
	}
	g := &Game{
		rc:     rc,
		cfg:    cfg,
		preset: preset,
		sounds: sounds,
		seed:   rc.Seed,
	}

	set := sprites.Bird(sprites.ParseScale(preset.BirdScale))
	g.bird = newBird(set, cfg.Physics, cfg.Bird, g.birdX(), g.birdBaseY(set))
	g.pipes = newPipeSet(g.seed, rc.ScreenW, g.groundTop(), cfg.World, preset)
	g.buildLayers()
	g.Reset()
	return g
}

// Preset returns the difficulty the game was built with.
func (g *Game) Preset() config.Preset {
	return g.preset
}

// Status returns the externally visible snapshot.
func (g *Game) Status() Status {
	return Status{State: g.state, Score: g.score, Best: g.best}
}

// Reset restarts the run: score, bird, obstacle set and layers return to
// their starting configuration while the session best survives. The RNG is
// reseeded, so equal seeds replay the same obstacle placement.
func (g *Game) Reset() {
	g.state = StateReady
	g.score = 0
	g.bird.reset(g.birdBaseY(g.bird.set))
	g.pipes.reset(g.seed)
	g.stars.reset()
	g.clouds.reset()
	g.skyline.reset()
	g.ground.reset()
}

// Step advances the simulation by dt seconds under the frame's input.
func (g *Game) Step(dt float64, in core.InputFrame) Status {
	if dt < 0 {
		dt = 0
	}

	flap := in.Has(core.ActionFlap)

	switch g.state {
	case StateReady:
		if flap {
			g.state = StatePlaying
			g.sounds.Play(core.SoundStart)
			g.bird.flap()
			g.stepPlaying(dt)
			break
		}
		g.bird.idle(dt)
		g.scrollLayers(dt)

	case StatePlaying:
		if flap {
			g.bird.flap()
			g.sounds.Play(core.SoundFlap)
		}
		g.stepPlaying(dt)

	case StateGameOver:
		if flap || in.Has(core.ActionRestart) {
			g.Reset()
			break
		}
		// Layers and the falling bird keep moving; pipes, spawning and
		// scoring are frozen.
		g.scrollLayers(dt)
		g.bird.fall(dt)
		groundTop := g.groundTop()
		if int(g.bird.y)+g.bird.frame().Height() >= groundTop {
			g.bird.y = float64(groundTop - g.bird.frame().Height())
			g.bird.vel = 0
		}
	}

	return g.Status()
}

// stepPlaying runs one active-state frame: physics, layer scroll, obstacle
// motion and spawning, pass detection, then collision.
func (g *Game) stepPlaying(dt float64) {
	g.bird.integrate(dt)
	g.scrollLayers(dt)

	birdCenterX := float64(g.bird.x) + float64(g.bird.frame().Width())/2
	passed := g.pipes.update(dt, birdCenterX)
	for i := 0; i < passed; i++ {
		g.score++
		if g.score > g.best {
			g.best = g.score
		}
		g.sounds.Play(core.SoundPoint)
	}

	if c := g.detectCollision(); c != collisionNone {
		g.triggerGameOver(c == collisionGround)
	}
}

func (g *Game) triggerGameOver(groundHit bool) {
	g.state = StateGameOver
	g.bird.dead = true
	if g.score > g.best {
		g.best = g.score
	}
	g.sounds.Play(core.SoundHit)
	if groundHit {
		g.sounds.Play(core.SoundGroundImpact)
	}
}

func (g *Game) scrollLayers(dt float64) {
	g.stars.advance(dt)
	g.clouds.advance(dt)
	g.skyline.advance(dt)
	g.ground.advance(dt)
}

// Render draws the frame back-to-front: sky bands, pipes, bird, ground band,
// HUD overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.stars.draw(dst)
	g.clouds.draw(dst)
	g.skyline.draw(dst)
	g.pipes.draw(dst)
	dst.DrawFrame(g.bird.frame(), g.bird.x, int(g.bird.y))
	g.ground.draw(dst)

	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d  Best: %d ", g.score, g.best), core.ColorBrightWhite)
	dst.DrawTextColored(dst.Width()-len(g.preset.Name)-3, 0, " "+g.preset.Name+" ", core.ColorGray)

	switch g.state {
	case StateReady:
		g.drawCenteredMessage(dst, "FLUPPY", "Press Space to flap")
	case StateGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  |  Space to restart", g.score, g.best))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Resize updates the playfield geometry. The current run keeps going; pipes
// spawned from now on use the new edges and the layers are rebuilt to cover
// the new width.
func (g *Game) Resize(w, h int) {
	if w == g.rc.ScreenW && h == g.rc.ScreenH {
		return
	}
	g.rc.ScreenW = w
	g.rc.ScreenH = h
	g.pipes.resize(w, g.groundTop())
	g.buildLayers()

	if maxY := g.groundTop() - g.bird.frame().Height(); int(g.bird.y) > maxY {
		g.bird.y = float64(maxY)
	}
}

// groundTop is the first row of the ground band; the bird and the lower pipe
// halves rest on it.
func (g *Game) groundTop() int {
	return g.rc.ScreenH - sprites.GroundHeight
}

func (g *Game) birdX() int {
	return g.rc.ScreenW / 5
}

func (g *Game) birdBaseY(set sprites.BirdSet) float64 {
	birdH := set.Frames(sprites.PoseLevel)[0].Height()
	return float64(g.groundTop()-birdH) / 2
}

func (g *Game) buildLayers() {
	w := g.rc.ScreenW
	groundTop := g.groundTop()

	stars := sprites.Stars(w)
	clouds := sprites.Clouds(w)
	skyline := sprites.Skyline(w)
	ground := sprites.Ground(w)

	g.stars = newScrollingLayer(stars, 0, 0)
	g.clouds = newScrollingLayer(clouds, g.cfg.Layers.CloudSpeed, stars.Height())
	g.skyline = newScrollingLayer(skyline, g.cfg.Layers.SkylineSpeed, groundTop-skyline.Height())
	g.ground = newScrollingLayer(ground, g.cfg.Layers.GroundSpeed, groundTop)
}
