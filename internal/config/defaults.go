package config

import (
	_ "embed"
)

//go:embed defaults/fluppy.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded fallback configuration, used when even
// the embedded default YAML fails to parse.
func DefaultConfig() Config {
	return Config{
		Physics: Physics{
			Gravity:      52,
			FlapImpulse:  -18,
			MaxDropSpeed: 24,
		},
		Bird: Bird{
			AnimationMs:   120,
			IdleAmplitude: 1.2,
			IdleSpeed:     1.8,
			TiltFactor:    2.7,
			TiltMin:       -25,
			TiltMax:       70,
		},
		World: World{
			TopMargin:   4,
			SpawnOffset: 14,
			PruneMargin: 2,
		},
		Layers: Layers{
			CloudSpeed:   2,
			SkylineSpeed: 5,
			GroundSpeed:  8,
		},
		Difficulty: DefaultDifficulty,
	}
}
