package game

import (
	"github.com/vovakirdan/fluppy/internal/core"
)

// scrollingLayer is one parallax band: a frame drawn at two horizontal
// positions spaced exactly one band-width apart, looping seamlessly as both
// scroll left. Speed-zero layers never move.
type scrollingLayer struct {
	frame *core.Frame
	speed float64 // cells/s
	y     int     // fixed vertical placement
	pos   [2]float64
}

func newScrollingLayer(frame *core.Frame, speed float64, y int) *scrollingLayer {
	l := &scrollingLayer{frame: frame, speed: speed, y: y}
	l.reset()
	return l
}

// reset returns the layer to its canonical offsets: 0 and +width.
func (l *scrollingLayer) reset() {
	l.pos[0] = 0
	l.pos[1] = float64(l.frame.Width())
}

// advance scrolls both positions left by speed*dt. A position that has moved
// a full band-width past the origin is relocated one band-width to the right
// of the other position; relocating relative to the partner (not an absolute
// modulus) keeps the loop gap-free even across large dt spikes.
func (l *scrollingLayer) advance(dt float64) {
	if l.speed == 0 {
		return
	}
	w := float64(l.frame.Width())
	l.pos[0] -= l.speed * dt
	l.pos[1] -= l.speed * dt
	for l.pos[0] <= -w || l.pos[1] <= -w {
		if l.pos[0] <= l.pos[1] {
			l.pos[0] = l.pos[1] + w
		} else {
			l.pos[1] = l.pos[0] + w
		}
	}
}

// draw blits the band at both tracked positions.
func (l *scrollingLayer) draw(dst *core.Screen) {
	dst.DrawFrame(l.frame, int(l.pos[0]), l.y)
	dst.DrawFrame(l.frame, int(l.pos[1]), l.y)
}
