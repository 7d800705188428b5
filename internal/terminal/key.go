package terminal

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// Key is one decoded input event. Values below 1000 are the literal byte
// that was read; values at or above 1000 are keys decoded from multi-byte
// escape sequences.
type Key int

const (
	KeyEnter     Key = '\r'
	KeyEscape    Key = 27
	KeyBackspace Key = 127
)

const (
	KeyArrowLeft Key = 1000 + iota
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Ctrl returns the key produced by holding Ctrl with the given letter.
func Ctrl(c byte) Key {
	return Key(c & 0x1f)
}

// ErrClosed is returned once the input stream reaches EOF.
var ErrClosed = errors.New("terminal: input closed")

// Input reads raw bytes from a terminal and decodes VT100 escape
// sequences into Keys.
type Input struct {
	f *os.File
}

func NewInput(f *os.File) *Input {
	return &Input{f: f}
}

// ReadKey blocks until one key event is available. With the raw mode set
// by EnableRawMode (VMIN=0, VTIME=1) the underlying read times out every
// tenth of a second, so the loop also acts as a cheap poll point.
func (in *Input) ReadKey() (Key, error) {
	buf := make([]byte, 1)
	for {
		n, err := in.f.Read(buf)
		if n == 1 {
			break
		}
		if err != nil && !errors.Is(err, unix.EAGAIN) {
			return 0, ErrClosed
		}
	}
	if buf[0] != byte(KeyEscape) {
		return Key(buf[0]), nil
	}

	// Escape sequence, or a bare Escape if the rest never arrives.
	var seq [3]byte
	if n, _ := in.f.Read(seq[0:1]); n != 1 {
		return KeyEscape, nil
	}
	if n, _ := in.f.Read(seq[1:2]); n != 1 {
		return KeyEscape, nil
	}

	if seq[0] == '[' {
		if seq[1] >= '0' && seq[1] <= '9' {
			if n, _ := in.f.Read(seq[2:3]); n != 1 {
				return KeyEscape, nil
			}
			if seq[2] == '~' {
				switch seq[1] {
				case '1', '7':
					return KeyHome, nil
				case '3':
					return KeyDelete, nil
				case '4', '8':
					return KeyEnd, nil
				case '5':
					return KeyPageUp, nil
				case '6':
					return KeyPageDown, nil
				}
			}
			return KeyEscape, nil
		}
		switch seq[1] {
		case 'A':
			return KeyArrowUp, nil
		case 'B':
			return KeyArrowDown, nil
		case 'C':
			return KeyArrowRight, nil
		case 'D':
			return KeyArrowLeft, nil
		case 'H':
			return KeyHome, nil
		case 'F':
			return KeyEnd, nil
		}
		return KeyEscape, nil
	}
	if seq[0] == 'O' {
		switch seq[1] {
		case 'H':
			return KeyHome, nil
		case 'F':
			return KeyEnd, nil
		}
	}
	return KeyEscape, nil
}
