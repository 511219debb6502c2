package game

import (
	"github.com/vovakirdan/fluppy/internal/config"
	"github.com/vovakirdan/fluppy/internal/core"
	"github.com/vovakirdan/fluppy/internal/sprites"
)

// Tilt thresholds (degrees) at which the displayed pose switches. Continuous
// rotation does not exist in cell art, so the tilt angle is quantized to
// three poses; the collision mask follows whichever pose is on screen.
const (
	climbTiltDeg = 30
	diveTiltDeg  = -15
)

const wingFrames = 3

// bird is the player-controlled body: float vertical position at a fixed
// column, gravity-integrated velocity, and the wing animation state. All
// mutation happens in the controller's single update pass.
type bird struct {
	set   sprites.BirdSet
	phys  config.Physics
	cfg   config.Bird
	x     int     // fixed column of the left edge
	y     float64 // top edge
	vel   float64 // cells/s, positive = down
	baseY float64 // idle bob baseline

	frameIdx   int
	frameTimer float64 // seconds since last wing frame advance

	bobOffset float64
	bobDir    float64 // +1 or -1

	dead bool
}

func newBird(set sprites.BirdSet, phys config.Physics, cfg config.Bird, x int, baseY float64) *bird {
	b := &bird{set: set, phys: phys, cfg: cfg, x: x}
	b.reset(baseY)
	return b
}

// reset returns the bird to its start position, velocity and animation.
func (b *bird) reset(baseY float64) {
	b.baseY = baseY
	b.y = baseY
	b.vel = 0
	b.frameIdx = 0
	b.frameTimer = 0
	b.bobOffset = 0
	b.bobDir = 1
	b.dead = false
}

// flap sets the velocity to the fixed upward impulse, overriding whatever
// the velocity was. Not additive.
func (b *bird) flap() {
	b.vel = b.phys.FlapImpulse
}

// integrate advances gravity physics by dt seconds and cycles the wing
// animation. Velocity is clamped to terminal drop speed after every step.
func (b *bird) integrate(dt float64) {
	b.vel += b.phys.Gravity * dt
	if b.vel > b.phys.MaxDropSpeed {
		b.vel = b.phys.MaxDropSpeed
	}
	b.y += b.vel * dt
	b.cycleFrames(dt)
}

// idle advances the ready-state bob: a triangle wave around the baseline,
// reversing direction when the offset reaches the amplitude bound. Wing
// animation keeps cycling.
func (b *bird) idle(dt float64) {
	b.bobOffset += b.cfg.IdleSpeed * dt * b.bobDir
	if b.bobOffset > b.cfg.IdleAmplitude {
		b.bobOffset = b.cfg.IdleAmplitude
		b.bobDir = -1
	} else if b.bobOffset < -b.cfg.IdleAmplitude {
		b.bobOffset = -b.cfg.IdleAmplitude
		b.bobDir = 1
	}
	b.y = b.baseY + b.bobOffset
	b.cycleFrames(dt)
}

// fall is the game-over descent: same gravity and clamp as integrate, but
// the frame is pinned to the death pose.
func (b *bird) fall(dt float64) {
	b.dead = true
	b.vel += b.phys.Gravity * dt
	if b.vel > b.phys.MaxDropSpeed {
		b.vel = b.phys.MaxDropSpeed
	}
	b.y += b.vel * dt
}

func (b *bird) cycleFrames(dt float64) {
	b.frameTimer += dt
	interval := float64(b.cfg.AnimationMs) / 1000.0
	if interval <= 0 {
		return
	}
	for b.frameTimer >= interval {
		b.frameTimer -= interval
		b.frameIdx = (b.frameIdx + 1) % wingFrames
	}
}

// tilt derives the cosmetic angle in degrees from the current velocity:
// upward motion pitches the bird up, diving pitches it down.
func (b *bird) tilt() float64 {
	return core.ClampF(-b.vel*b.cfg.TiltFactor, b.cfg.TiltMin, b.cfg.TiltMax)
}

func (b *bird) pose() sprites.Pose {
	t := b.tilt()
	switch {
	case t >= climbTiltDeg:
		return sprites.PoseClimb
	case t <= diveTiltDeg:
		return sprites.PoseDive
	default:
		return sprites.PoseLevel
	}
}

// frame returns the frame the bird is currently displaying. Dead birds show
// the death pose with no wing cycling.
func (b *bird) frame() *core.Frame {
	if b.dead {
		return b.set.Death()
	}
	frames := b.set.Frames(b.pose())
	return frames[b.frameIdx%len(frames)]
}

// mask is the collision shape: the opacity mask of the displayed frame, so
// collision fidelity follows the visible pose.
func (b *bird) mask() core.Mask {
	return b.frame().Mask()
}

// rect returns the bird's bounding rectangle in screen cells.
func (b *bird) rect() core.Rect {
	f := b.frame()
	return core.NewRect(b.x, int(b.y), f.Width(), f.Height())
}
