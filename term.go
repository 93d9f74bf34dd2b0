package main

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// rawMode puts the terminal into character at a time mode with zero
// timeout reads and returns a function restoring the previous state.
// Input that isn't a terminal (a pipe, a test buffer) is left alone.
func rawMode(f *os.File) (restore func() error, err error) {
	var saved unix.Termios
	if err := termios.Tcgetattr(f.Fd(), &saved); err != nil {
		return func() error { return nil }, nil
	}

	raw := saved
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0
	if err := termios.Tcsetattr(f.Fd(), termios.TCSANOW, &raw); err != nil {
		return nil, err
	}
	return func() error {
		return termios.Tcsetattr(f.Fd(), termios.TCSANOW, &saved)
	}, nil
}

// pollReader reads from f only when a byte is already waiting, so the
// emulation loop never stalls on the host keyboard.
type pollReader struct {
	f *os.File
}

func (p pollReader) Read(b []byte) (int, error) {
	fds := []unix.PollFd{{Fd: int32(p.f.Fd()), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil || n == 0 {
		return 0, nil
	}
	return p.f.Read(b)
}
