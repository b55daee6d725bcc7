// Package console implements the interactive session's collaborators on a
// terminal: a slider panel adjusted with the keyboard, an ANSI half-block
// image preview, and a bounded-timeout key poller.
//
// The pipeline only ever sees the ControlPanel, Display and KeyPoller
// interfaces, so none of the session logic depends on this package.
package console

import (
	"fmt"
	"os"
	"time"

	"camnoise/pkg/pipeline"
)

// control is one named slider with a declared range and integer granularity.
type control struct {
	name     string
	min, max int
	value    int
}

// Console owns the terminal state for an interactive session. It satisfies
// pipeline.ControlPanel, pipeline.Display and pipeline.KeyPoller and is the
// single owner of the shared widget state: the session loop serializes all
// access, so no locking is needed.
type Console struct {
	controls []*control
	selected int

	// PreviewWidth is the preview width in terminal cells.
	PreviewWidth int

	out *os.File

	// saved terminal state for restore, managed by the platform files
	rawState *termState
}

// NewConsole builds a console exposing the standard pipeline controls with
// the ranges declared in the external-interface contract.
func NewConsole(previewWidth int) *Console {
	if previewWidth < 16 {
		previewWidth = 80
	}
	return &Console{
		controls: []*control{
			{name: pipeline.ControlSigma, min: 0, max: 100},
			{name: pipeline.ControlSaltProb, min: 0, max: 100},
			{name: pipeline.ControlPepperProb, min: 0, max: 100},
			{name: pipeline.ControlLevels, min: 1, max: 32, value: 1},
			{name: pipeline.ControlK1, min: 0, max: 100},
			{name: pipeline.ControlK2, min: 0, max: 100},
			{name: pipeline.ControlP1, min: 0, max: 100},
			{name: pipeline.ControlP2, min: 0, max: 100},
			{name: pipeline.ControlKernel, min: 1, max: 100, value: 1},
		},
		PreviewWidth: previewWidth,
		out:          os.Stdout,
	}
}

// SetControl sets the named control's raw value, clamped to its range.
// Unknown names are ignored.
func (c *Console) SetControl(name string, value int) {
	for _, ctl := range c.controls {
		if ctl.name == name {
			ctl.value = clampRange(value, ctl.min, ctl.max)
			return
		}
	}
}

// Value returns the named control's current raw value, implementing
// pipeline.ControlPanel. Unknown names read as zero.
func (c *Console) Value(name string) int {
	for _, ctl := range c.controls {
		if ctl.name == name {
			return ctl.value
		}
	}
	return 0
}

// Open switches the terminal into raw mode and clears the screen.
// The caller must Close to restore the terminal.
func (c *Console) Open() error {
	state, err := enterRawMode()
	if err != nil {
		return fmt.Errorf("failed to enter raw terminal mode: %w", err)
	}
	c.rawState = state
	fmt.Fprint(c.out, "\x1b[2J\x1b[?25l") // clear screen, hide cursor
	return nil
}

// Close restores the terminal state.
func (c *Console) Close() {
	fmt.Fprint(c.out, "\x1b[?25h\x1b[0m\n") // show cursor, reset attributes
	if c.rawState != nil {
		restoreMode(c.rawState)
		c.rawState = nil
	}
}

// Poll implements pipeline.KeyPoller. Slider navigation keys are consumed
// here (up/down select a control, left/right adjust it, page-style '['/']'
// adjust by 10); only cancel (ESC or q) and commit (s) reach the session.
func (c *Console) Poll(timeout time.Duration) pipeline.Key {
	key := readKey(timeout)

	switch key {
	case keyEscape, 'q', 'Q':
		return pipeline.KeyCancel
	case 's', 'S':
		return pipeline.KeyCommit
	case keyUp:
		if c.selected > 0 {
			c.selected--
		}
	case keyDown:
		if c.selected < len(c.controls)-1 {
			c.selected++
		}
	case keyLeft:
		c.adjust(-1)
	case keyRight:
		c.adjust(+1)
	case '[':
		c.adjust(-10)
	case ']':
		c.adjust(+10)
	}

	return pipeline.KeyNone
}

// adjust moves the selected control by delta, clamped to its range.
func (c *Console) adjust(delta int) {
	ctl := c.controls[c.selected]
	ctl.value = clampRange(ctl.value+delta, ctl.min, ctl.max)
}

func clampRange(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
