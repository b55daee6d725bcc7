package artifacts

import (
	"testing"

	"golang.org/x/exp/rand"

	"camnoise/internal/models"
)

// makeRandomImage builds a deterministic pseudo-random test image.
func makeRandomImage(height, width, channels int, seed uint64) *models.Image {
	rng := rand.New(rand.NewSource(seed))
	img := models.NewImage(height, width, channels)
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.Intn(256))
	}
	return img
}

// makeConstantImage builds an image where every element has the same value.
func makeConstantImage(height, width, channels int, value uint8) *models.Image {
	img := models.NewImage(height, width, channels)
	for i := range img.Pix {
		img.Pix[i] = value
	}
	return img
}

// pixVariance computes the population variance of an image's elements.
func pixVariance(img *models.Image) float64 {
	n := float64(len(img.Pix))
	mean := 0.0
	for _, v := range img.Pix {
		mean += float64(v)
	}
	mean /= n

	variance := 0.0
	for _, v := range img.Pix {
		d := float64(v) - mean
		variance += d * d
	}
	return variance / n
}

// checkShapePreserved fails the test unless out has the same dimensions as in.
func checkShapePreserved(t *testing.T, in, out *models.Image) {
	t.Helper()
	if !in.SameShape(out) {
		t.Errorf("Expected output shape %dx%dx%d, got %dx%dx%d",
			in.Height, in.Width, in.Channels, out.Height, out.Width, out.Channels)
	}
	if len(out.Pix) != len(in.Pix) {
		t.Errorf("Expected %d elements, got %d", len(in.Pix), len(out.Pix))
	}
}

// checkInputUntouched fails the test if the operator mutated its input.
func checkInputUntouched(t *testing.T, before []uint8, img *models.Image) {
	t.Helper()
	for i, v := range before {
		if img.Pix[i] != v {
			t.Fatalf("Operator mutated its input at element %d: had %d, now %d", i, v, img.Pix[i])
		}
	}
}

// snapshot copies an image's element data for later mutation checks.
func snapshot(img *models.Image) []uint8 {
	out := make([]uint8, len(img.Pix))
	copy(out, img.Pix)
	return out
}
