package console

import "golang.org/x/sys/unix"

const (
	ioctlGetTermiosReq = unix.TIOCGETA
	ioctlSetTermiosReq = unix.TIOCSETA
)
