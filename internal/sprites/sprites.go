// Package sprites supplies the pre-built rune-art frames and opacity masks
// the simulation renders and collides with: bird animation sets per scale
// and tilt pose, pipe variants, and the parallax background bands.
package sprites

import (
	"github.com/vovakirdan/fluppy/internal/core"
)

// Scale selects the bird sprite size. Harder difficulties fly a bigger bird.
type Scale int

const (
	ScaleSmall Scale = iota
	ScaleMedium
	ScaleLarge
)

// ParseScale maps a config scale name to a Scale, defaulting to medium.
func ParseScale(name string) Scale {
	switch name {
	case "small":
		return ScaleSmall
	case "large":
		return ScaleLarge
	default:
		return ScaleMedium
	}
}

// Pose is the bird's displayed orientation, quantized from its tilt angle.
type Pose int

const (
	PoseClimb Pose = iota
	PoseLevel
	PoseDive
)

// BirdSet holds the animation frames for one bird scale: three wing frames
// per pose plus the death frame. Masks derive from whichever frame is
// displayed, so the collision shape follows the pose.
type BirdSet struct {
	poses [3][]*core.Frame
	death *core.Frame
}

// Frames returns the wing-cycle frames for a pose.
func (b BirdSet) Frames(p Pose) []*core.Frame {
	return b.poses[p]
}

// Death returns the fixed death-pose frame.
func (b BirdSet) Death() *core.Frame {
	return b.death
}

func newBirdSet(climb, level, dive [][]string, death []string) BirdSet {
	build := func(arts [][]string) []*core.Frame {
		frames := make([]*core.Frame, len(arts))
		for i, art := range arts {
			frames[i] = core.NewFrame(art, core.ColorBrightYellow)
		}
		return frames
	}
	return BirdSet{
		poses: [3][]*core.Frame{
			PoseClimb: build(climb),
			PoseLevel: build(level),
			PoseDive:  build(dive),
		},
		death: core.NewFrame(death, core.ColorYellow),
	}
}

// Bird returns the animation set for the given scale.
func Bird(scale Scale) BirdSet {
	switch scale {
	case ScaleSmall:
		return newBirdSet(
			[][]string{
				{" ▝█▶", "▟▀  "},
				{" ▗█▶", "▟▙  "},
				{" ▗█▶", "▜█▖ "},
			},
			[][]string{
				{"▗██▶", "▝▀▘ "},
				{"▗██▶", " ▜▛ "},
				{"▗██▶", " ▟▙ "},
			},
			[][]string{
				{"▜█▖ ", " ▜█▶"},
				{"▜█▄ ", " ▜█▶"},
				{"▜██ ", " ▟█▶"},
			},
			[]string{"✕█▖ ", " ▜█▄"},
		)
	case ScaleLarge:
		return newBirdSet(
			[][]string{
				{"  ▝██▶", " ▟█▀  ", "▟▀    "},
				{"  ▗██▶", " ▟██  ", "▟▙    "},
				{"  ▗██▶", " ███▖ ", "▜██   "},
			},
			[][]string{
				{" ▗███▶", "▝▀███ ", "  ▀▀▘ "},
				{" ▗███▶", " ▜███ ", "  ▜▛  "},
				{" ▗███▶", " ▟███ ", " ▟█▙  "},
			},
			[][]string{
				{"▜██▖  ", " ▜██▄ ", "  ▜██▶"},
				{"▜██▄  ", " ▜██▙ ", "  ▜█▶ "},
				{"▜███  ", " ▜██▌ ", " ▟██▶ "},
			},
			[]string{"✕██▖  ", " ▜██▙ ", "  ▜█▄ "},
		)
	default: // ScaleMedium
		return newBirdSet(
			[][]string{
				{" ▝██▶", "▟█▀  "},
				{" ▗██▶", "▟█▙  "},
				{" ▗██▶", "▜██▖ "},
			},
			[][]string{
				{"▗███▶", "▝▀█▘ "},
				{"▗███▶", " ▜█▛ "},
				{"▗███▶", " ▟█▙ "},
			},
			[][]string{
				{"▜██▖ ", " ▜██▶"},
				{"▜██▄ ", " ▜█▶ "},
				{"▜███ ", " ▟█▶ "},
			},
			[]string{"✕██▖ ", " ▜██▄"},
		)
	}
}

// PipeWidth is the width in cells of every pipe variant.
const PipeWidth = 5

type pipeVariant struct {
	cap   string
	body  string
	color core.Color
}

// Four textures, mirroring the original's four log sheet variants. v2 has
// transparent side columns so its mask is one cell narrower on each edge.
var pipeVariants = []pipeVariant{
	{cap: "▄▄▄▄▄", body: "█████", color: core.ColorGreen},
	{cap: "▄▄▄▄▄", body: "█▓▓▓█", color: core.ColorGreen},
	{cap: " ▄▄▄ ", body: "▐███▌", color: core.ColorBrightGreen},
	{cap: "▄▄▄▄▄", body: "█▒▒▒█", color: core.ColorGreen},
}

// PipeVariantCount returns how many pipe textures exist.
func PipeVariantCount() int {
	return len(pipeVariants)
}

// PipeHalf builds one obstacle half of the given height. Upright halves
// (lower obstacle) carry their cap on the top row, facing the gap; flipped
// halves (upper obstacle) are the vertical mirror, cap on the bottom row.
func PipeHalf(variant, height int, flipped bool) *core.Frame {
	if height < 1 {
		height = 1
	}
	v := pipeVariants[((variant%len(pipeVariants))+len(pipeVariants))%len(pipeVariants)]

	rows := make([]string, height)
	rows[0] = v.cap
	for i := 1; i < height; i++ {
		rows[i] = v.body
	}

	f := core.NewFrame(rows, v.color)
	if flipped {
		f = f.FlipV()
	}
	return f
}

// tile repeats a band pattern horizontally until it is at least minWidth
// cells wide, so two copies of the band always cover the screen.
func tile(pattern []string, minWidth int) []string {
	rows := make([]string, len(pattern))
	for i, row := range pattern {
		runes := []rune(row)
		tiled := make([]rune, 0, minWidth+len(runes))
		for len(tiled) < minWidth {
			tiled = append(tiled, runes...)
		}
		rows[i] = string(tiled)
	}
	return rows
}

// Stars returns the static night-sky band, at least minWidth cells wide.
func Stars(minWidth int) *core.Frame {
	return core.NewFrame(tile([]string{
		"   ·     ✦      ·   ",
		"       ·     ·      ",
	}, minWidth), core.ColorGray)
}

// Clouds returns the slow cloud band.
func Clouds(minWidth int) *core.Frame {
	return core.NewFrame(tile([]string{
		"  ▒▒▓▒    ▒▓▓▒▒     ▒▒   ",
		"   ▒▒      ▒▒▒       ▒   ",
	}, minWidth), core.ColorWhite)
}

// Skyline returns the building silhouette band.
func Skyline(minWidth int) *core.Frame {
	return core.NewFrame(tile([]string{
		"  ▄█   ▄▄    █▄    ▗█   ",
		" ▐██▌ ███▌  ▐███   ▐█▙  ",
		" ▐██▌▐████  ▐███▌  ███▌ ",
		"▐███▌▐████▌▐█████ ▐███▌ ",
	}, minWidth), core.ColorGray)
}

// Ground returns the scrolling ground band.
func Ground(minWidth int) *core.Frame {
	return core.NewFrame(tile([]string{
		"▒▓▒▒▓▓▒▒▒▓▒▒",
		"████████████",
	}, minWidth), core.ColorGreen)
}

// GroundHeight is the height in cells of the ground band.
const GroundHeight = 2
