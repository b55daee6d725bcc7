package console

import "time"

// Key codes produced by readKey. Printable keys are returned as their rune
// value; navigation keys use negative sentinels.
const (
	keyNone   rune = 0
	keyEscape rune = 27
	keyUp     rune = -2
	keyDown   rune = -3
	keyRight  rune = -4
	keyLeft   rune = -5
)

// readKey waits up to timeout for one key press on stdin and decodes ANSI
// arrow-key escape sequences. A timeout yields keyNone.
func readKey(timeout time.Duration) rune {
	buf := pollInput(timeout)
	if len(buf) == 0 {
		return keyNone
	}

	if buf[0] != 0x1b {
		return rune(buf[0])
	}

	// Escape sequence: a bare ESC is the cancel key, ESC [ A..D are arrows.
	if len(buf) >= 3 && buf[1] == '[' {
		switch buf[2] {
		case 'A':
			return keyUp
		case 'B':
			return keyDown
		case 'C':
			return keyRight
		case 'D':
			return keyLeft
		}
	}
	return keyEscape
}
