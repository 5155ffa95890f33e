package confirm

import (
	"io"
	"os"

	"golang.org/x/term"
)

// KeyReader reads a single keystroke
type KeyReader interface {
	ReadKey() (byte, error)
}

// StreamKeys reads keystrokes from r. When r is a terminal it is put into
// raw mode for the duration of each read, so no newline is needed and the
// key is not echoed.
type StreamKeys struct {
	r io.Reader
}

// NewStreamKeys creates a key reader over r, typically os.Stdin
func NewStreamKeys(r io.Reader) *StreamKeys {
	return &StreamKeys{r: r}
}

// ReadKey blocks until one byte is available
func (k *StreamKeys) ReadKey() (byte, error) {
	if f, ok := k.r.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			state, err := term.MakeRaw(fd)
			if err != nil {
				return 0, err
			}
			defer func() { _ = term.Restore(fd, state) }()
		}
	}

	var buf [1]byte
	for {
		n, err := k.r.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
