// Package terminal is the OS-facing shim for the editor: raw mode entry
// and restore, window size queries, and decoding of the fixed VT100 input
// byte protocol into abstract keys. It contains no editing logic.
package terminal

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// EnableRawMode switches the terminal on fd into raw mode and returns a
// function that restores the original settings. Raw mode failures are
// fatal for the caller: the editor cannot run without it.
func EnableRawMode(fd int) (restore func(), err error) {
	if !term.IsTerminal(fd) {
		return nil, errors.New("terminal: stdin is not a tty")
	}
	orig, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, fmt.Errorf("terminal: tcgetattr: %w", err)
	}

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	// Read returns after 100ms even with no input pending.
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(fd, unix.TCSETSF, &raw); err != nil {
		return nil, fmt.Errorf("terminal: tcsetattr: %w", err)
	}
	return func() {
		_ = unix.IoctlSetTermios(fd, unix.TCSETSF, orig)
	}, nil
}

// WindowSize reports the terminal dimensions in character cells.
func WindowSize(fd int) (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal: winsize: %w", err)
	}
	if ws.Col == 0 || ws.Row == 0 {
		return 0, 0, errors.New("terminal: zero window size")
	}
	return int(ws.Row), int(ws.Col), nil
}
