package sprites

import (
	"testing"

	"github.com/vovakirdan/fluppy/internal/core"
)

func TestBirdSetsComplete(t *testing.T) {
	for _, scale := range []Scale{ScaleSmall, ScaleMedium, ScaleLarge} {
		set := Bird(scale)
		for _, pose := range []Pose{PoseClimb, PoseLevel, PoseDive} {
			frames := set.Frames(pose)
			if len(frames) != 3 {
				t.Fatalf("scale %d pose %d: %d frames, expected 3", scale, pose, len(frames))
			}
			w, h := frames[0].Width(), frames[0].Height()
			for i, f := range frames {
				if f.Mask().Empty() {
					t.Errorf("scale %d pose %d frame %d has an empty mask", scale, pose, i)
				}
				if f.Width() != w || f.Height() != h {
					t.Errorf("scale %d pose %d frame %d size %dx%d differs from %dx%d",
						scale, pose, i, f.Width(), f.Height(), w, h)
				}
			}
		}
		if set.Death().Mask().Empty() {
			t.Errorf("scale %d death frame has an empty mask", scale)
		}
	}
}

func TestBirdScalesGrow(t *testing.T) {
	small := Bird(ScaleSmall).Frames(PoseLevel)[0]
	large := Bird(ScaleLarge).Frames(PoseLevel)[0]
	if large.Width() <= small.Width() || large.Height() <= small.Height() {
		t.Error("large bird should be bigger than small bird")
	}
}

func TestParseScale(t *testing.T) {
	if ParseScale("small") != ScaleSmall {
		t.Error("small should parse")
	}
	if ParseScale("large") != ScaleLarge {
		t.Error("large should parse")
	}
	if ParseScale("medium") != ScaleMedium || ParseScale("bogus") != ScaleMedium {
		t.Error("unknown scale names should fall back to medium")
	}
}

func TestPipeHalfGeometry(t *testing.T) {
	for v := 0; v < PipeVariantCount(); v++ {
		f := PipeHalf(v, 8, false)
		if f.Width() != PipeWidth {
			t.Errorf("variant %d width = %d, expected %d", v, f.Width(), PipeWidth)
		}
		if f.Height() != 8 {
			t.Errorf("variant %d height = %d, expected 8", v, f.Height())
		}
		if f.Mask().Empty() {
			t.Errorf("variant %d mask is empty", v)
		}
	}
}

func TestPipeHalfFlipped(t *testing.T) {
	upright := PipeHalf(0, 6, false)
	flipped := PipeHalf(0, 6, true)

	// Upright cap faces up (row 0), flipped cap faces down (last row).
	if cell, _ := upright.CellAt(0, 0); cell.Rune != '▄' {
		t.Errorf("upright cap row = %q, expected '▄'", cell.Rune)
	}
	if cell, _ := flipped.CellAt(0, 5); cell.Rune != '▀' {
		t.Errorf("flipped cap row = %q, expected '▀'", cell.Rune)
	}

	// Masks mirror each other row for row.
	for y := 0; y < 6; y++ {
		for x := 0; x < PipeWidth; x++ {
			if upright.Mask().Opaque(x, y) != flipped.Mask().Opaque(x, 5-y) {
				t.Fatalf("mask mirror mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestPipeHalfDegenerateHeight(t *testing.T) {
	f := PipeHalf(1, 0, false)
	if f.Height() != 1 {
		t.Errorf("degenerate height should clamp to 1, got %d", f.Height())
	}
}

func TestBandsCoverWidth(t *testing.T) {
	const w = 97 // deliberately not a multiple of any pattern width
	bands := []*core.Frame{Stars(w), Clouds(w), Skyline(w), Ground(w)}
	for i, b := range bands {
		if b.Width() < w {
			t.Errorf("band %d width %d is narrower than the screen (%d)", i, b.Width(), w)
		}
	}
	if Ground(w).Height() != GroundHeight {
		t.Errorf("ground band height = %d, expected %d", Ground(w).Height(), GroundHeight)
	}
}
