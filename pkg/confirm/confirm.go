// Package confirm asks the user, one keystroke at a time, whether a proposed
// rename should be applied.
package confirm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arthur-debert/batch-rename/pkg/errors"
	"github.com/arthur-debert/batch-rename/pkg/ui/styles"
)

// Decision is the user's answer for one proposed rename
type Decision int

const (
	// Accept applies the rename
	Accept Decision = iota
	// Reject skips the file
	Reject
	// Quit stops asking about any further files
	Quit
)

// String returns the string representation of the decision
func (d Decision) String() string {
	switch d {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

const (
	keyInterrupt = 0x03 // Ctrl-C in raw mode
	keyEOT       = 0x04 // Ctrl-D in raw mode
)

// Decide maps a single keystroke to a decision. Enter counts as an empty
// response and accepts.
func Decide(key byte) (Decision, bool) {
	switch key {
	case '\r', '\n', 'y', 'Y':
		return Accept, true
	case 'n', 'N':
		return Reject, true
	case 'q', keyInterrupt, keyEOT:
		return Quit, true
	default:
		return 0, false
	}
}

// Prompter presents proposed renames and collects decisions
type Prompter struct {
	keys KeyReader
	out  io.Writer
}

// New creates a prompter reading keys from keys and writing prompts to out
func New(keys KeyReader, out io.Writer) *Prompter {
	return &Prompter{keys: keys, out: out}
}

// Confirm asks whether src should become dst. Unrecognized input is
// reported and the same question is asked again.
func (p *Prompter) Confirm(src, dst string) (Decision, error) {
	for {
		fmt.Fprintf(p.out, "Would rename:\n%s\nto\n%s\n%s %s\n",
			styles.Render("Filename", src),
			styles.Render("Filename", dst),
			styles.Render("Prompt", "Accept?"),
			styles.Render("Choice", "(Y/n/q)"),
		)

		key, err := p.keys.ReadKey()
		if err != nil {
			return 0, errors.Wrap(err, errors.ErrInputRead, "failed to read response")
		}

		if decision, ok := Decide(key); ok {
			return decision, nil
		}

		fmt.Fprintln(p.out, styles.Render("Warning", fmt.Sprintf("Response '%s' not understood", printable(key))))
	}
}

func printable(key byte) string {
	if key >= 0x20 && key < 0x7f {
		return string(rune(key))
	}
	q := strconv.QuoteRune(rune(key))
	return q[1 : len(q)-1]
}
