//go:build linux || darwin

package console

import (
	"time"

	"golang.org/x/sys/unix"
)

const stdinFd = 0

// termState holds the termios settings saved before entering raw mode.
type termState struct {
	termios unix.Termios
}

// enterRawMode disables canonical input and echo on stdin so single key
// presses are delivered immediately to the poller.
func enterRawMode() (*termState, error) {
	old, err := unix.IoctlGetTermios(stdinFd, ioctlGetTermiosReq)
	if err != nil {
		return nil, err
	}
	state := &termState{termios: *old}

	raw := *old
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Iflag &^= unix.IXON | unix.ICRNL
	// Reads are driven by poll(2); never block in read(2) itself.
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(stdinFd, ioctlSetTermiosReq, &raw); err != nil {
		return nil, err
	}

	return state, nil
}

// restoreMode reinstates the saved termios settings.
func restoreMode(state *termState) {
	unix.IoctlSetTermios(stdinFd, ioctlSetTermiosReq, &state.termios)
}

// pollInput waits up to timeout for input on stdin and returns whatever
// bytes are immediately available (possibly a multi-byte escape sequence).
// A timeout or error yields nil.
func pollInput(timeout time.Duration) []byte {
	fds := []unix.PollFd{{Fd: stdinFd, Events: unix.POLLIN}}
	n, err := unix.Poll(fds, int(timeout.Milliseconds()))
	if err != nil || n == 0 {
		return nil
	}

	buf := make([]byte, 8)
	n, err = unix.Read(stdinFd, buf)
	if err != nil || n <= 0 {
		return nil
	}
	return buf[:n]
}
