package console

import (
	"strings"
	"testing"

	"camnoise/internal/models"
	"camnoise/pkg/pipeline"
)

// TestPanelValuesAndRanges verifies the declared control ranges and the
// clamping behavior of SetControl
func TestPanelValuesAndRanges(t *testing.T) {
	c := NewConsole(80)

	// Floored controls start at their minimum of 1
	if got := c.Value(pipeline.ControlLevels); got != 1 {
		t.Errorf("Expected levels control to start at 1, got %d", got)
	}
	if got := c.Value(pipeline.ControlKernel); got != 1 {
		t.Errorf("Expected kernel control to start at 1, got %d", got)
	}

	c.SetControl(pipeline.ControlSigma, 150)
	if got := c.Value(pipeline.ControlSigma); got != 100 {
		t.Errorf("Expected sigma clamped to 100, got %d", got)
	}

	c.SetControl(pipeline.ControlLevels, -4)
	if got := c.Value(pipeline.ControlLevels); got != 1 {
		t.Errorf("Expected levels clamped to 1, got %d", got)
	}

	c.SetControl(pipeline.ControlK1, 42)
	if got := c.Value(pipeline.ControlK1); got != 42 {
		t.Errorf("Expected k1 control 42, got %d", got)
	}

	// Unknown names are ignored on write and read as zero
	c.SetControl("No Such Control", 9)
	if got := c.Value("No Such Control"); got != 0 {
		t.Errorf("Expected unknown control to read 0, got %d", got)
	}
}

// TestAdjustClampsToRange verifies keyboard adjustment stays in range
func TestAdjustClampsToRange(t *testing.T) {
	c := NewConsole(80)
	c.selected = 0 // sigma, [0, 100]

	c.adjust(-5)
	if got := c.Value(pipeline.ControlSigma); got != 0 {
		t.Errorf("Expected sigma to clamp at 0, got %d", got)
	}

	for i := 0; i < 20; i++ {
		c.adjust(+10)
	}
	if got := c.Value(pipeline.ControlSigma); got != 100 {
		t.Errorf("Expected sigma to clamp at 100, got %d", got)
	}
}

// TestBarRendering verifies the slider track for empty, partial and full
// positions
func TestBarRendering(t *testing.T) {
	if got := bar(0, 0, 100); strings.Contains(got, "#") {
		t.Errorf("Expected an empty track for the minimum value, got %s", got)
	}
	if got := bar(100, 0, 100); strings.Contains(got, "-") {
		t.Errorf("Expected a full track for the maximum value, got %s", got)
	}
	half := bar(50, 0, 100)
	if strings.Count(half, "#") != 12 {
		t.Errorf("Expected 12 filled cells at the midpoint, got %s", half)
	}
}

// TestRenderPreviewShape verifies the half-block preview emits one terminal
// row per two image rows at the requested width
func TestRenderPreviewShape(t *testing.T) {
	img := models.NewImage(8, 16, 3)
	out := renderPreview(img, 16)

	rows := strings.Count(out, "\r\n")
	if rows != 4 {
		t.Errorf("Expected 4 preview rows for an 8-row image, got %d", rows)
	}
	if cells := strings.Count(out, "▀"); cells != 16*4 {
		t.Errorf("Expected %d half-block cells, got %d", 16*4, cells)
	}
}

// TestFrameStats verifies the readout on a known buffer
func TestFrameStats(t *testing.T) {
	img := models.NewImage(1, 2, 1)
	img.Pix = []uint8{100, 200}

	mean, std := frameStats(img)
	if mean != 150 {
		t.Errorf("Expected mean 150, got %f", mean)
	}
	// Sample standard deviation of {100, 200}
	if std < 70 || std > 71 {
		t.Errorf("Expected stddev near 70.7, got %f", std)
	}
}
