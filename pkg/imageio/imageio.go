// Package imageio is the image storage collaborator: it loads raster files
// into the pipeline's 8-bit buffer representation and saves results back,
// choosing the codec from the file extension.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"camnoise/internal/models"
)

// DefaultJPEGQuality is used when a Store is constructed without an explicit
// quality setting.
const DefaultJPEGQuality = 90

// Load reads and decodes the image at path into a 3-channel RGB buffer.
// Decodable formats are PNG, JPEG, GIF, WebP and BMP. A missing or
// undecodable file is returned as an error; no pipeline execution should be
// attempted after a load failure.
func Load(path string) (*models.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return FromImage(src), nil
}

// Save encodes the buffer to path. The format is chosen by extension:
// .png, .jpg/.jpeg or .bmp.
func Save(img *models.Image, path string, jpegQuality int) error {
	out := ToImage(img)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(file, out)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(file, out, &jpeg.Options{Quality: jpegQuality})
	case ".bmp":
		err = bmp.Encode(file, out)
	default:
		err = fmt.Errorf("unsupported output extension %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	return nil
}

// FromImage converts a decoded image into the pipeline's 3-channel buffer.
func FromImage(src image.Image) *models.Image {
	bounds := src.Bounds()
	out := models.NewImage(bounds.Dy(), bounds.Dx(), 3)

	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out.Set(y, x, 0, uint8(r>>8))
			out.Set(y, x, 1, uint8(g>>8))
			out.Set(y, x, 2, uint8(b>>8))
		}
	}

	return out
}

// ToImage converts a pipeline buffer back to an NRGBA image. Single-channel
// buffers are expanded to gray RGB; buffers with more than three channels
// contribute their first three.
func ToImage(img *models.Image) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			var r, g, b uint8
			switch {
			case img.Channels == 1:
				v := img.At(y, x, 0)
				r, g, b = v, v, v
			case img.Channels >= 3:
				r = img.At(y, x, 0)
				g = img.At(y, x, 1)
				b = img.At(y, x, 2)
			default:
				r = img.At(y, x, 0)
				g = img.At(y, x, 1)
			}
			out.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}

	return out
}

// Store adapts Save to the pipeline's storage collaborator interface.
type Store struct {
	// JPEGQuality is the quality used for .jpg/.jpeg outputs.
	JPEGQuality int
}

// NewStore creates a store with the given JPEG quality; values outside
// [1, 100] fall back to the default.
func NewStore(jpegQuality int) *Store {
	if jpegQuality < 1 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}
	return &Store{JPEGQuality: jpegQuality}
}

// Save persists the image to path.
func (s *Store) Save(img *models.Image, path string) error {
	return Save(img, path, s.JPEGQuality)
}
