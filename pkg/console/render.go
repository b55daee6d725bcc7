package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/stat"

	"camnoise/internal/models"
	"camnoise/pkg/imageio"
)

// Show implements pipeline.Display: it redraws the slider panel, a
// mean/stddev readout of the current frame and a truecolor half-block
// preview of the image.
func (c *Console) Show(img *models.Image) error {
	var b strings.Builder

	b.WriteString("\x1b[H") // cursor home; the frame overdraws in place
	b.WriteString("camnoise - arrows adjust, [ ] step by 10, S save, ESC/Q quit\x1b[K\r\n\x1b[K\r\n")

	for i, ctl := range c.controls {
		marker := "  "
		if i == c.selected {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-18s %4d %s\x1b[K\r\n",
			marker, ctl.name, ctl.value, bar(ctl.value, ctl.min, ctl.max)))
	}

	mean, std := frameStats(img)
	b.WriteString(fmt.Sprintf("\x1b[Kframe %dx%dx%d  mean %6.2f  stddev %6.2f\r\n\x1b[K\r\n",
		img.Height, img.Width, img.Channels, mean, std))

	b.WriteString(renderPreview(img, c.PreviewWidth))

	_, err := c.out.WriteString(b.String())
	return err
}

// bar renders a fixed-width slider track for a control value.
func bar(v, min, max int) string {
	const width = 24
	filled := 0
	if max > min {
		filled = (v - min) * width / (max - min)
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// frameStats computes the mean and standard deviation of the frame's
// elements.
func frameStats(img *models.Image) (mean, std float64) {
	vals := make([]float64, len(img.Pix))
	for i, v := range img.Pix {
		vals[i] = float64(v)
	}
	mean, variance := stat.MeanVariance(vals, nil)
	return mean, math.Sqrt(variance)
}

// renderPreview downscales the frame to the given cell width and renders it
// with half-block characters, packing two image rows per terminal row using
// foreground and background truecolor escapes.
func renderPreview(img *models.Image, width int) string {
	if img.Width < 1 || img.Height < 1 {
		return ""
	}

	scaled := resize.Resize(uint(width), 0, imageio.ToImage(img), resize.Bilinear)
	bounds := scaled.Bounds()

	var b strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			tr, tg, tb, _ := scaled.At(x, y).RGBA()
			br, bg, bb := tr, tg, tb
			if y+1 < bounds.Max.Y {
				br, bg, bb, _ = scaled.At(x, y+1).RGBA()
			}
			b.WriteString(fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				tr>>8, tg>>8, tb>>8, br>>8, bg>>8, bb>>8))
		}
		b.WriteString("\x1b[0m\x1b[K\r\n")
	}
	return b.String()
}
