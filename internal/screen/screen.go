// Package screen tracks the terminal size the list widgets size their windows
// against.
package screen

import (
	"os"
	"sync/atomic"

	"golang.org/x/term"
)

const (
	defaultCols = 80
	defaultRows = 24

	// Chrome is the number of rows not available to list content: the
	// header, the pane border, the pane title and the help line.
	Chrome = 5
)

// Screen holds the current terminal size.
type Screen struct {
	cols atomic.Int32
	rows atomic.Int32
}

// New builds a screen of the given size.
func New(cols, rows int) *Screen {
	s := &Screen{}
	s.Resize(cols, rows)
	return s
}

// Probe reads the size of the first terminal among stdout, stdin and stderr,
// falling back to 80x24.
func Probe() *Screen {
	for _, f := range []*os.File{os.Stdout, os.Stdin, os.Stderr} {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		if cols, rows, err := term.GetSize(fd); err == nil {
			return New(cols, rows)
		}
	}
	return New(defaultCols, defaultRows)
}

// Resize records a new size. Non-positive values keep the previous value.
func (s *Screen) Resize(cols, rows int) {
	if cols > 0 {
		s.cols.Store(int32(cols))
	}
	if rows > 0 {
		s.rows.Store(int32(rows))
	}
}

func (s *Screen) Cols() int {
	if c := int(s.cols.Load()); c > 0 {
		return c
	}
	return defaultCols
}

func (s *Screen) Rows() int {
	if r := int(s.rows.Load()); r > 0 {
		return r
	}
	return defaultRows
}

// ListRows is the number of list rows that fit in a pane.
func (s *Screen) ListRows() int {
	if n := s.Rows() - Chrome; n > 1 {
		return n
	}
	return 1
}
