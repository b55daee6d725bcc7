package artifacts

import (
	"camnoise/internal/models"
)

// Quantize reduces each channel to at most `levels` discrete intensity
// steps by flooring every element to a multiple of step = max(1, 256/levels).
// Levels below 1 are clamped to 1; levels >= 256 yield step 1 and reproduce
// the input. The operator never increases the number of distinct values per
// channel and every output element is an exact multiple of step.
func (g *Generator) Quantize(img *models.Image, levels int) *models.Image {
	if levels < 1 {
		levels = 1
	}
	step := 256 / levels
	if step < 1 {
		step = 1
	}

	out := models.NewImage(img.Height, img.Width, img.Channels)
	for i, v := range img.Pix {
		out.Pix[i] = clampInt(int(v) / step * step)
	}
	return out
}
