package pipeline

import (
	"fmt"
	"time"

	"camnoise/internal/models"
)

// Control names recognized by the interactive session. A ControlPanel
// exposes each as a named integer control; the session converts the raw
// integer into the operator parameter.
const (
	ControlSigma      = "Gaussian Sigma"    // raw integer, [0, 100]
	ControlSaltProb   = "Salt Prob x1000"   // raw/1000, [0, 100] -> [0, 0.1]
	ControlPepperProb = "Pepper Prob x1000" // raw/1000, [0, 100] -> [0, 0.1]
	ControlLevels     = "Discretization"    // raw, [1, 32], floored at 1
	ControlK1         = "k1 x100"           // raw/100, [0, 100] -> [0, 1.0]
	ControlK2         = "k2 x100"           // raw/100, [0, 100] -> [0, 1.0]
	ControlP1         = "p1 x100"           // raw/100, [0, 100] -> [0, 1.0]
	ControlP2         = "p2 x100"           // raw/100, [0, 100] -> [0, 1.0]
	ControlKernel     = "Motion Kernel"     // raw, [1, 100], floored at 1
)

// ControlPanel exposes named numeric controls with declared ranges and
// integer granularity. The session reads each control by name exactly once
// per loop iteration and never writes to the panel.
type ControlPanel interface {
	// Value returns the current raw integer value of the named control.
	Value(name string) int
}

// Display receives each rendered frame.
type Display interface {
	Show(img *models.Image) error
}

// Key identifies the outcome of one bounded-timeout key poll.
type Key int

const (
	// KeyNone means the poll timed out or an unrecognized key arrived;
	// the session continues.
	KeyNone Key = iota
	// KeyCancel terminates the session without persisting anything.
	KeyCancel
	// KeyCommit persists the current output buffer and terminates.
	KeyCommit
)

// KeyPoller yields one key event per poll with a caller-supplied timeout.
type KeyPoller interface {
	Poll(timeout time.Duration) Key
}

// Store persists the final output image.
type Store interface {
	Save(img *models.Image, path string) error
}

// State is the interactive session's loop state. The session is an explicit
// state machine with a single terminal transition per key event.
type State int

const (
	Running State = iota
	Committed
	Cancelled
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Committed:
		return "Committed"
	case Cancelled:
		return "Cancelled"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Result reports how an interactive session ended.
type Result struct {
	// State is the terminal state, Committed or Cancelled.
	State State

	// Saved is true when the output image was persisted successfully.
	Saved bool

	// Params holds the parameter values in effect on the final frame.
	Params models.Params

	// Frames counts the pipeline evaluations performed.
	Frames int
}

// Session is the live-tuning loop: a single-threaded cooperative polling
// cycle that rereads every control, reapplies the full pipeline to the
// original base image (never to the previous frame's output, so repeated
// redraws cannot drift), renders the result and polls for one key event.
type Session struct {
	driver  *Driver
	panel   ControlPanel
	display Display
	keys    KeyPoller
	store   Store

	// PollTimeout bounds each key poll. Defaults to 50ms.
	PollTimeout time.Duration
}

// NewSession wires a session to its collaborators.
func NewSession(driver *Driver, panel ControlPanel, display Display, keys KeyPoller, store Store) *Session {
	return &Session{
		driver:      driver,
		panel:       panel,
		display:     display,
		keys:        keys,
		store:       store,
		PollTimeout: 50 * time.Millisecond,
	}
}

// readParams converts the panel's raw control values into operator
// parameters using the declared scaling for each control.
func (s *Session) readParams() models.Params {
	levels := s.panel.Value(ControlLevels)
	if levels < 1 {
		levels = 1
	}
	kernel := s.panel.Value(ControlKernel)
	if kernel < 1 {
		kernel = 1
	}

	return models.Params{
		Sigma:      float64(s.panel.Value(ControlSigma)),
		SaltProb:   float64(s.panel.Value(ControlSaltProb)) / 1000.0,
		PepperProb: float64(s.panel.Value(ControlPepperProb)) / 1000.0,
		K1:         float64(s.panel.Value(ControlK1)) / 100.0,
		K2:         float64(s.panel.Value(ControlK2)) / 100.0,
		P1:         float64(s.panel.Value(ControlP1)) / 100.0,
		P2:         float64(s.panel.Value(ControlP2)) / 100.0,
		Levels:     levels,
		KernelSize: kernel,
	}
}

// Run executes the interactive loop until a cancel or commit key arrives,
// then returns the terminal result. On commit the current output buffer is
// saved to outputPath through the store; a save failure still terminates the
// loop but surfaces the error alongside a Saved=false result.
//
// The base image is owned by the caller and is only ever read.
func (s *Session) Run(base *models.Image, outputPath string) (Result, error) {
	res := Result{State: Running}

	var frame *models.Image
	for res.State == Running {
		res.Params = s.readParams()

		frame = s.driver.Apply(base, res.Params)
		res.Frames++

		if err := s.display.Show(frame); err != nil {
			return res, fmt.Errorf("failed to render frame: %w", err)
		}

		switch s.keys.Poll(s.PollTimeout) {
		case KeyCancel:
			res.State = Cancelled
		case KeyCommit:
			res.State = Committed
		}
	}

	if res.State == Committed {
		if err := s.store.Save(frame, outputPath); err != nil {
			return res, fmt.Errorf("failed to save output image: %w", err)
		}
		res.Saved = true
	}

	return res, nil
}
