// Package artifacts implements the camera-artifact operators: additive
// Gaussian noise, salt-and-pepper corruption, Brown-Conrady lens distortion,
// linear motion blur and intensity quantization.
//
// Every operator consumes an 8-bit raster and returns a freshly allocated
// raster of identical shape with all elements saturated to [0, 255]; inputs
// are never mutated so the caller's base image stays usable for subsequent
// parameter trials.
package artifacts

import (
	"time"

	"golang.org/x/exp/rand"
)

// Generator is the entry point for applying artifacts. It owns the single
// random source consumed by the stochastic operators, so two generators
// created with the same seed produce identical noise sequences.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded with the given value.
// A seed of 0 selects a time-based seed for non-reproducible output.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// clampToUint8 rounds and saturates a float into the [0, 255] element range.
func clampToUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// clampInt saturates an int into [0, 255].
func clampInt(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
