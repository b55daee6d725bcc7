package imageio

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"camnoise/internal/models"
)

// makeGradient builds a small RGB test buffer with distinct channel values.
func makeGradient(height, width int) *models.Image {
	img := models.NewImage(height, width, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(y, x, 0, uint8((x*7)%256))
			img.Set(y, x, 1, uint8((y*11)%256))
			img.Set(y, x, 2, uint8((x+y)%256))
		}
	}
	return img
}

// TestPNGRoundTrip verifies that a buffer survives a lossless save/load
// cycle byte-for-byte
func TestPNGRoundTrip(t *testing.T) {
	img := makeGradient(24, 32)
	path := filepath.Join(t.TempDir(), "roundtrip.png")

	if err := Save(img, path, DefaultJPEGQuality); err != nil {
		t.Fatalf("Failed to save PNG: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load PNG: %v", err)
	}

	if !img.SameShape(loaded) {
		t.Fatalf("Expected shape %dx%dx3, got %dx%dx%d",
			img.Height, img.Width, loaded.Height, loaded.Width, loaded.Channels)
	}
	if !bytes.Equal(img.Pix, loaded.Pix) {
		t.Errorf("Expected PNG round trip to preserve every element")
	}
}

// TestBMPRoundTrip verifies the BMP codec path
func TestBMPRoundTrip(t *testing.T) {
	img := makeGradient(16, 16)
	path := filepath.Join(t.TempDir(), "roundtrip.bmp")

	if err := Save(img, path, DefaultJPEGQuality); err != nil {
		t.Fatalf("Failed to save BMP: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load BMP: %v", err)
	}
	if !bytes.Equal(img.Pix, loaded.Pix) {
		t.Errorf("Expected BMP round trip to preserve every element")
	}
}

// TestLoadMissingFile verifies that a missing file is a well-defined failure
func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "no-such-image.png")); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
}

// TestLoadUndecodableFile verifies that garbage content is a well-defined
// failure rather than a crash
func TestLoadUndecodableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image at all"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("Expected an error for undecodable content")
	}
}

// TestSaveUnsupportedExtension verifies the extension check
func TestSaveUnsupportedExtension(t *testing.T) {
	img := makeGradient(4, 4)
	if err := Save(img, filepath.Join(t.TempDir(), "out.tiff"), 90); err == nil {
		t.Errorf("Expected an error for an unsupported extension")
	}
}

// TestFromImageGray verifies that grayscale sources expand to three equal
// channels
func TestFromImageGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	src.SetGray(1, 2, color.Gray{Y: 77})

	img := FromImage(src)

	if img.Channels != 3 {
		t.Fatalf("Expected 3 channels, got %d", img.Channels)
	}
	for c := 0; c < 3; c++ {
		if got := img.At(2, 1, c); got != 77 {
			t.Errorf("Expected channel %d = 77, got %d", c, got)
		}
	}
}

// TestToImageSingleChannel verifies gray expansion on the encode path
func TestToImageSingleChannel(t *testing.T) {
	img := models.NewImage(2, 2, 1)
	img.Set(0, 1, 0, 200)

	out := ToImage(img)
	c := out.NRGBAAt(1, 0)
	if c.R != 200 || c.G != 200 || c.B != 200 || c.A != 255 {
		t.Errorf("Expected gray expansion to (200,200,200,255), got %v", c)
	}
}
