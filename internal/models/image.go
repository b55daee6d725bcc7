// Package models defines the raster and parameter types shared by the
// camnoise pipeline packages.
package models

// Image is an 8-bit raster with dimensions (Height, Width, Channels) and
// elements stored row-major in Pix, so the element at (y, x, c) lives at
// index (y*Width+x)*Channels + c.
//
// Images are treated as value types by the pipeline: operators never write
// into their input's Pix slice and always return a freshly allocated Image
// of identical shape.
type Image struct {
	// Pix holds the raw element data, length Height*Width*Channels,
	// every element in [0, 255].
	Pix []uint8

	// Height, Width and Channels are the raster dimensions.
	Height   int
	Width    int
	Channels int
}

// NewImage allocates a zero-filled image of the given shape.
func NewImage(height, width, channels int) *Image {
	return &Image{
		Pix:      make([]uint8, height*width*channels),
		Height:   height,
		Width:    width,
		Channels: channels,
	}
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	out := NewImage(img.Height, img.Width, img.Channels)
	copy(out.Pix, img.Pix)
	return out
}

// At returns the element at (y, x, c). Callers are expected to pass
// in-bounds coordinates; shape is established once at load time.
func (img *Image) At(y, x, c int) uint8 {
	return img.Pix[(y*img.Width+x)*img.Channels+c]
}

// Set writes the element at (y, x, c).
func (img *Image) Set(y, x, c int, v uint8) {
	img.Pix[(y*img.Width+x)*img.Channels+c] = v
}

// SameShape reports whether two images have identical dimensions.
func (img *Image) SameShape(other *Image) bool {
	return img.Height == other.Height &&
		img.Width == other.Width &&
		img.Channels == other.Channels
}

// Params bundles the tunable parameters for one pipeline invocation.
// Every parameter set is ephemeral: a fresh Params is supplied per call
// and nothing persists across invocations.
type Params struct {
	// Sigma is the standard deviation of the additive Gaussian noise.
	// Must be >= 0; negative values are treated as zero.
	Sigma float64

	// SaltProb and PepperProb are independent corruption probabilities
	// in [0, 1].
	SaltProb   float64
	PepperProb float64

	// K1, K2 are the radial and P1, P2 the tangential Brown-Conrady
	// distortion coefficients.
	K1, K2, P1, P2 float64

	// Levels is the target count of discrete intensity steps per channel.
	// Values below 1 are clamped to 1.
	Levels int

	// KernelSize is the side of the motion blur kernel. Values below 1
	// are clamped to 1 (identity); even sizes are tolerated.
	KernelSize int
}
