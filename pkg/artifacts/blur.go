package artifacts

import (
	"camnoise/internal/models"
)

// ApplyMotionBlur convolves the image with a horizontal motion kernel: a
// kernelSize×kernelSize matrix whose single row at index
// floor((kernelSize-1)/2) is filled with 1/kernelSize and every other entry
// is zero, producing a pure horizontal streak. The correlation is same-size
// with reflect-101 border handling (mirrored without repeating the edge
// sample) and the output is saturated to [0, 255].
//
// Kernel sizes <= 1 behave as identity. Even sizes are accepted; callers
// conventionally pass odd sizes for symmetry but the operator does not
// require it.
func (g *Generator) ApplyMotionBlur(img *models.Image, kernelSize int) *models.Image {
	if kernelSize <= 1 {
		return img.Clone()
	}

	out := models.NewImage(img.Height, img.Width, img.Channels)

	// The only nonzero kernel row sits at the anchor row, so the 2-D
	// correlation collapses to a horizontal window of width kernelSize
	// anchored at floor((kernelSize-1)/2).
	anchor := (kernelSize - 1) / 2
	weight := 1.0 / float64(kernelSize)

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			for c := 0; c < img.Channels; c++ {
				sum := 0.0
				for k := 0; k < kernelSize; k++ {
					sx := reflect101(x+k-anchor, img.Width)
					sum += float64(img.At(y, sx, c))
				}
				out.Set(y, x, c, clampToUint8(sum*weight))
			}
		}
	}

	return out
}

// reflect101 maps an out-of-range coordinate into [0, n) by mirroring
// about the border without repeating the edge sample: -1 -> 1, n -> n-2.
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}
