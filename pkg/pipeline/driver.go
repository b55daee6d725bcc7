// Package pipeline composes the artifact operators into the fixed-order
// driver and runs the interactive tuning session over injected display,
// control and storage collaborators.
package pipeline

import (
	"fmt"

	"camnoise/internal/models"
	"camnoise/pkg/artifacts"
)

// Driver applies the five artifact operators in a fixed order:
// distortion, Gaussian noise, salt-and-pepper, quantization, motion blur.
// Each invocation works on a private copy of the caller's base image and
// returns a new buffer; the base image is never mutated.
type Driver struct {
	gen *artifacts.Generator
}

// NewDriver creates a driver backed by the given artifact generator.
func NewDriver(gen *artifacts.Generator) *Driver {
	return &Driver{gen: gen}
}

// Apply runs the full pipeline over the base image with the given
// parameters and returns the resulting image.
//
// Every stage must preserve the (height, width, channels) shape of its
// input; a mismatch indicates an operator implementation bug rather than
// bad input, so it panics instead of returning an error.
func (d *Driver) Apply(base *models.Image, p models.Params) *models.Image {
	result := base.Clone()

	result = checkShape(base, d.gen.ApplyDistortion(result, p.K1, p.K2, p.P1, p.P2), "distortion")
	result = checkShape(base, d.gen.AddGaussianNoise(result, 0, p.Sigma), "gaussian noise")
	result = checkShape(base, d.gen.AddSaltPepper(result, p.SaltProb, p.PepperProb), "salt-and-pepper")
	result = checkShape(base, d.gen.Quantize(result, p.Levels), "quantization")
	result = checkShape(base, d.gen.ApplyMotionBlur(result, p.KernelSize), "motion blur")

	return result
}

// checkShape enforces the inter-stage shape invariant.
func checkShape(base, stage *models.Image, name string) *models.Image {
	if !base.SameShape(stage) {
		panic(fmt.Sprintf("pipeline: %s stage produced %dx%dx%d output for %dx%dx%d input",
			name, stage.Height, stage.Width, stage.Channels,
			base.Height, base.Width, base.Channels))
	}
	return stage
}
