package core

// Sound identifies a fire-and-forget sound effect. The simulation triggers
// events; whether anything is audible is the sink's concern.
type Sound int

const (
	SoundStart Sound = iota
	SoundFlap
	SoundPoint
	SoundHit
	SoundGroundImpact
)

// String returns a stable name for the sound event.
func (s Sound) String() string {
	switch s {
	case SoundStart:
		return "start"
	case SoundFlap:
		return "flap"
	case SoundPoint:
		return "point"
	case SoundHit:
		return "hit"
	case SoundGroundImpact:
		return "ground-impact"
	default:
		return "unknown"
	}
}

// SoundSink plays sound events. Implementations must not block the caller;
// an event the sink has no mapping for is silently dropped.
type SoundSink interface {
	Play(Sound)
}

// NopSink is a SoundSink that plays nothing. Used when audio is disabled or
// failed to initialize.
type NopSink struct{}

// Play discards the event.
func (NopSink) Play(Sound) {}
