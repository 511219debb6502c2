package game

// collision is the outcome of the per-frame collision pass.
type collision int

const (
	collisionNone collision = iota
	collisionCeiling
	collisionGround
	collisionPipe
)

// detectCollision runs the active-state collision checks in fixed order,
// short-circuiting on the first hit: ceiling, then ground, then each pipe
// pair (upper half before lower). Ceiling and ground hits clamp the bird in
// place; the ceiling additionally zeroes its velocity.
func (g *Game) detectCollision() collision {
	b := g.bird

	if b.y <= 0 {
		b.y = 0
		b.vel = 0
		return collisionCeiling
	}

	groundTop := g.groundTop()
	if int(b.y)+b.frame().Height() >= groundTop {
		b.y = float64(groundTop - b.frame().Height())
		return collisionGround
	}

	if g.pipes.collide(b.rect(), b.mask()) {
		return collisionPipe
	}

	return collisionNone
}
