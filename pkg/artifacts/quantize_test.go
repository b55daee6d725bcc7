package artifacts

import (
	"bytes"
	"testing"

	"camnoise/internal/models"
)

// distinctPerChannel counts the distinct element values of one channel.
func distinctPerChannel(img *models.Image, c int) int {
	var seen [256]bool
	count := 0
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			v := img.At(y, x, c)
			if !seen[v] {
				seen[v] = true
				count++
			}
		}
	}
	return count
}

// TestQuantizeHighLevelsIsIdentity verifies that levels >= 256 yield step=1
// and reproduce the input
func TestQuantizeHighLevelsIsIdentity(t *testing.T) {
	gen := NewGenerator(1)
	img := makeRandomImage(64, 64, 3, 42)

	for _, levels := range []int{256, 300, 1000} {
		result := gen.Quantize(img, levels)
		if !bytes.Equal(result.Pix, img.Pix) {
			t.Errorf("Expected levels=%d to be identity", levels)
		}
	}
}

// TestQuantizeLowLevelsClamp verifies that levels < 1 clamp to 1, mapping
// every element to a multiple of 256 floored into range, i.e. 0
func TestQuantizeLowLevelsClamp(t *testing.T) {
	gen := NewGenerator(1)
	img := makeRandomImage(16, 16, 3, 42)

	for _, levels := range []int{0, -5} {
		result := gen.Quantize(img, levels)
		for i, v := range result.Pix {
			if v != 0 {
				t.Fatalf("Expected levels=%d to floor every element to 0, element %d = %d",
					levels, i, v)
			}
		}
	}
}

// TestQuantizeRamp runs the concrete contract scenario: a 1x256x3 ramp with
// levels=8 must leave at most a handful of distinct values per channel,
// each a multiple of 32
func TestQuantizeRamp(t *testing.T) {
	gen := NewGenerator(1)

	img := models.NewImage(1, 256, 3)
	for x := 0; x < 256; x++ {
		for c := 0; c < 3; c++ {
			img.Set(0, x, c, uint8(x))
		}
	}

	result := gen.Quantize(img, 8)

	for c := 0; c < 3; c++ {
		if distinct := distinctPerChannel(result, c); distinct > 8+1 {
			t.Errorf("Expected at most 9 distinct values in channel %d, got %d", c, distinct)
		}
	}

	for i, v := range result.Pix {
		if v%32 != 0 {
			t.Fatalf("Expected every element to be a multiple of 32, element %d = %d", i, v)
		}
	}
}

// TestQuantizeNeverIncreasesDistinctValues verifies the monotonicity
// property across a spread of level counts
func TestQuantizeNeverIncreasesDistinctValues(t *testing.T) {
	gen := NewGenerator(1)
	img := makeRandomImage(64, 64, 3, 9)

	for _, levels := range []int{2, 3, 8, 17, 32, 100} {
		result := gen.Quantize(img, levels)

		step := 256 / levels
		if step < 1 {
			step = 1
		}

		for c := 0; c < img.Channels; c++ {
			before := distinctPerChannel(img, c)
			after := distinctPerChannel(result, c)
			if after > before {
				t.Errorf("levels=%d: expected distinct count to never increase, %d -> %d",
					levels, before, after)
			}
		}

		for i, v := range result.Pix {
			if int(v)%step != 0 {
				t.Fatalf("levels=%d: element %d = %d is not a multiple of step %d",
					levels, i, v, step)
			}
		}

		checkShapePreserved(t, img, result)
	}
}
