// Package config provides YAML-based game configuration loading and the
// difficulty preset resolver.
package config

// Config contains all tunable parameters for the game. Units are cells and
// seconds unless a field name says otherwise.
type Config struct {
	Physics    Physics `yaml:"physics"`
	Bird       Bird    `yaml:"bird"`
	World      World   `yaml:"world"`
	Layers     Layers  `yaml:"layers"`
	Difficulty string  `yaml:"difficulty"` // stored preset selection
}

// Physics defines the bird's vertical kinematics.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`        // cells/s² downward
	FlapImpulse  float64 `yaml:"flap_impulse"`   // cells/s, negative = up
	MaxDropSpeed float64 `yaml:"max_drop_speed"` // terminal velocity, cells/s
}

// Bird defines animation and idle-bob parameters.
type Bird struct {
	AnimationMs   int     `yaml:"animation_ms"`   // wing frame cadence
	IdleAmplitude float64 `yaml:"idle_amplitude"` // ready-state bob bound, cells
	IdleSpeed     float64 `yaml:"idle_speed"`     // bob speed, cells/s
	TiltFactor    float64 `yaml:"tilt_factor"`    // degrees per cell/s of velocity
	TiltMin       float64 `yaml:"tilt_min"`       // steepest dive angle, degrees
	TiltMax       float64 `yaml:"tilt_max"`       // steepest climb angle, degrees
}

// World defines playfield geometry.
type World struct {
	TopMargin   int     `yaml:"top_margin"`   // highest row a gap center may reach
	SpawnOffset int     `yaml:"spawn_offset"` // cells right of the screen edge where pipes spawn
	PruneMargin float64 `yaml:"prune_margin"` // cells left of the origin before a pipe is dropped
}

// Layers defines parallax scroll speeds in cells/s. The star band is always
// static.
type Layers struct {
	CloudSpeed   float64 `yaml:"cloud_speed"`
	SkylineSpeed float64 `yaml:"skyline_speed"`
	GroundSpeed  float64 `yaml:"ground_speed"`
}
