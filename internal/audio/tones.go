package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/fluppy/internal/core"
)

// waveType selects the oscillator shape.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator is a finite streamer producing one raw waveform.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0 * (o.phase - 0.5)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a streamer with linear attack and release ramps.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if releaseStart := e.totalSamples - e.releaseSamples; e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// quiet scales a streamer down; log2 volume per beep's effects package.
func quiet(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, wave waveType, duration time.Duration) beep.Streamer {
	osc := newOscillator(freq, duration, wave, sampleRate)
	return newEnvelope(osc, duration, 2*time.Millisecond, duration/3, sampleRate)
}

// tone builds the streamer for a game event, nil when the event has no
// mapping.
func tone(s core.Sound) beep.Streamer {
	switch s {
	case core.SoundStart:
		// Rising two-note fanfare.
		return quiet(beep.Seq(
			note(523.25, waveSquare, 70*time.Millisecond),  // C5
			note(783.99, waveSquare, 110*time.Millisecond), // G5
		), 0.35)
	case core.SoundFlap:
		return quiet(note(660, waveSine, 45*time.Millisecond), 0.3)
	case core.SoundPoint:
		// Coin-style chime.
		return quiet(beep.Seq(
			note(987.77, waveSquare, 60*time.Millisecond),   // B5
			note(1318.51, waveSquare, 120*time.Millisecond), // E6
		), 0.3)
	case core.SoundHit:
		return quiet(note(110, waveSaw, 160*time.Millisecond), 0.45)
	case core.SoundGroundImpact:
		// Low thud under a burst of noise.
		return quiet(beep.Mix(
			note(70, waveSine, 250*time.Millisecond),
			quiet(note(0, waveNoise, 180*time.Millisecond), 0.5),
		), 0.5)
	default:
		return nil
	}
}
