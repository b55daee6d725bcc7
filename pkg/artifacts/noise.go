package artifacts

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"camnoise/internal/models"
)

// AddGaussianNoise adds an independent normal draw with the given mean and
// standard deviation to every element, saturating the sum into [0, 255].
//
// Each sample is rounded to the nearest integer before the saturating add,
// so negative draws darken elements symmetrically to how positive draws
// brighten them and sigma=0 reproduces the input exactly (only the constant
// mean, rounded, is applied). Negative sigma is a caller error and is
// treated as zero.
func (g *Generator) AddGaussianNoise(img *models.Image, mean, sigma float64) *models.Image {
	if sigma < 0 {
		sigma = 0
	}

	out := models.NewImage(img.Height, img.Width, img.Channels)

	if sigma == 0 {
		// No distribution to sample; only the rounded mean shifts elements.
		offset := int(math.Round(mean))
		for i, v := range img.Pix {
			out.Pix[i] = clampInt(int(v) + offset)
		}
		return out
	}

	normal := distuv.Normal{Mu: mean, Sigma: sigma, Src: g.rng}
	for i, v := range img.Pix {
		draw := int(math.Round(normal.Rand()))
		out.Pix[i] = clampInt(int(v) + draw)
	}
	return out
}

// AddSaltPepper corrupts elements of the image with saturated white (salt)
// and black (pepper) values. The number of corrupted elements is
// ceil(prob * height*width*channels) for each kind, and the row, column and
// channel index of every corrupted element are drawn independently and
// uniformly, so a salted element can land on a single channel of any pixel
// and duplicate positions are harmless. Salt is written before pepper, so a
// position selected by both ends up black.
//
// Zero probabilities return a byte-identical copy of the input.
func (g *Generator) AddSaltPepper(img *models.Image, saltProb, pepperProb float64) *models.Image {
	out := img.Clone()
	total := float64(len(img.Pix))

	numSalt := int(math.Ceil(saltProb * total))
	for i := 0; i < numSalt; i++ {
		y := g.rng.Intn(img.Height)
		x := g.rng.Intn(img.Width)
		c := g.rng.Intn(img.Channels)
		out.Set(y, x, c, 255)
	}

	numPepper := int(math.Ceil(pepperProb * total))
	for i := 0; i < numPepper; i++ {
		y := g.rng.Intn(img.Height)
		x := g.rng.Intn(img.Width)
		c := g.rng.Intn(img.Channels)
		out.Set(y, x, c, 0)
	}

	return out
}
