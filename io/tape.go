// Package io connects the computer to byte streams: machine source is read
// from an input, and renderings are written to an output.
package io

import (
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/ezrec/computer/cpu"
)

// ColorMode selects when renderings highlight the program counter.
type ColorMode int

//go:generate go tool stringer -linecomment -type=ColorMode
const (
	COLOR_AUTO   = ColorMode(0) // auto
	COLOR_ALWAYS = ColorMode(1) // always
	COLOR_NEVER  = ColorMode(2) // never
)

// ParseColorMode returns the color mode by name.
func ParseColorMode(name string) (mode ColorMode, err error) {
	for _, mode = range []ColorMode{COLOR_AUTO, COLOR_ALWAYS, COLOR_NEVER} {
		if mode.String() == name {
			return
		}
	}

	err = ErrColorMode(name)
	return
}

// Tape reads machine source from Input and writes renderings to Output.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Color  ColorMode

	Verbose bool // If set, the assembler logs each token.
}

// fder is satisfied by *os.File.
type fder interface {
	Fd() uintptr
}

// Colorize returns true if renderings written to Output use color.
// In COLOR_AUTO mode, only a terminal output is colorized.
func (tc *Tape) Colorize() bool {
	switch tc.Color {
	case COLOR_ALWAYS:
		return true
	case COLOR_NEVER:
		return false
	}

	out, ok := tc.Output.(fder)
	if !ok {
		return false
	}

	return term.IsTerminal(int(out.Fd()))
}

// Load parses a computer from the input.
func (tc *Tape) Load() (comp *cpu.Computer, err error) {
	if tc.Input == nil {
		err = ErrTapeMissing
		return
	}

	asm := &cpu.Assembler{Verbose: tc.Verbose}
	comp, err = asm.Parse(tc.Input)

	return
}

// Store writes the rendering of a computer, followed by a newline, to the output.
func (tc *Tape) Store(comp *cpu.Computer) (err error) {
	if tc.Output == nil {
		err = ErrTapeMissing
		return
	}

	_, err = fmt.Fprintln(tc.Output, comp.Format(tc.Colorize()))

	return
}
