//go:build !linux && !darwin

package console

import (
	"os"
	"sync"
	"time"
)

// termState is unused on platforms without termios support; line-buffered
// input still works, it just requires Enter after each key.
type termState struct{}

func enterRawMode() (*termState, error) {
	return &termState{}, nil
}

func restoreMode(*termState) {}

var (
	inputOnce sync.Once
	inputCh   chan []byte
)

// pollInput reads stdin through a background goroutine so a bounded wait is
// still possible without platform poll support.
func pollInput(timeout time.Duration) []byte {
	inputOnce.Do(func() {
		inputCh = make(chan []byte, 4)
		go func() {
			for {
				buf := make([]byte, 8)
				n, err := os.Stdin.Read(buf)
				if err != nil {
					close(inputCh)
					return
				}
				if n > 0 {
					inputCh <- buf[:n]
				}
			}
		}()
	})

	select {
	case b := <-inputCh:
		return b
	case <-time.After(timeout):
		return nil
	}
}
