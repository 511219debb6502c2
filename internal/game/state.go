package game

// State is the controller's phase. Exactly one is active at a time.
type State int

const (
	// StateReady shows the idly bobbing bird and waits for the first flap.
	StateReady State = iota
	// StatePlaying runs physics, spawning, scoring and collision.
	StatePlaying
	// StateGameOver freezes obstacles while the bird falls to the ground.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Status is the externally visible snapshot after a step: phase, current run
// score, and the session best.
type Status struct {
	State State
	Score int
	Best  int
}
