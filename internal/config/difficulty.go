package config

import (
	"os"
	"strings"
)

// EnvDifficulty is the environment variable that overrides any stored
// difficulty selection.
const EnvDifficulty = "FLUPPY_DIFFICULTY"

// DefaultDifficulty is the preset used when no valid selection exists.
const DefaultDifficulty = "normal"

// Sway describes an obstacle's optional sinusoidal gap-center oscillation.
type Sway struct {
	Enabled   bool
	Amplitude float64 // cells
	Omega     float64 // rad/s
}

// Preset is an immutable difficulty bundle. Presets are selected wholesale
// and never mutated; obstacles capture the values they need at spawn time.
type Preset struct {
	Name            string
	PipeSpeed       float64 // cells/s
	PipeGap         int     // cells between the facing edges of a pair
	SpawnIntervalMs int
	BirdScale       string // sprite scale name: small, medium, large
	Sway            Sway
}

var presetOrder = []string{"easy", "normal", "hard"}

var presets = map[string]Preset{
	"easy": {
		Name:            "easy",
		PipeSpeed:       25,
		PipeGap:         8,
		SpawnIntervalMs: 1750,
		BirdScale:       "small",
	},
	"normal": {
		Name:            "normal",
		PipeSpeed:       30,
		PipeGap:         6,
		SpawnIntervalMs: 1600,
		BirdScale:       "medium",
	},
	"hard": {
		Name:            "hard",
		PipeSpeed:       36,
		PipeGap:         5,
		SpawnIntervalMs: 1450,
		BirdScale:       "large",
		Sway: Sway{
			Enabled:   true,
			Amplitude: 3,
			Omega:     2.2,
		},
	},
}

// Names returns the preset names in play order, easiest first.
func Names() []string {
	out := make([]string, len(presetOrder))
	copy(out, presetOrder)
	return out
}

// Lookup returns the preset for a name, case-insensitively.
func Lookup(name string) (Preset, bool) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Resolve picks the active preset. Precedence: the explicit choice (CLI or
// menu), then the FLUPPY_DIFFICULTY environment variable, then the stored
// selection from the config file. Invalid or absent values at every level
// fall through silently; the final fallback is the default preset. Resolve
// is idempotent and has no side effects.
func Resolve(explicit, stored string) Preset {
	for _, name := range []string{explicit, os.Getenv(EnvDifficulty), stored} {
		if p, ok := Lookup(name); ok {
			return p
		}
	}
	p := presets[DefaultDifficulty]
	return p
}
