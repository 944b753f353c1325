package io

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/computer/cpu"
)

func TestParseColorMode(t *testing.T) {
	assert := assert.New(t)

	for _, mode := range []ColorMode{COLOR_AUTO, COLOR_ALWAYS, COLOR_NEVER} {
		parsed, err := ParseColorMode(mode.String())
		assert.NoError(err)
		assert.Equal(mode, parsed)
	}

	_, err := ParseColorMode("sometimes")
	assert.Equal(ErrColorMode("sometimes"), err)
}

func TestTapeColorize(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Output: &bytes.Buffer{}}
	assert.False(tape.Colorize(), "buffer is not a terminal")

	tape.Color = COLOR_ALWAYS
	assert.True(tape.Colorize())

	tape.Color = COLOR_NEVER
	assert.False(tape.Colorize())
}

func TestTapeLoadStore(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{
		Input:  strings.NewReader("R0: 05\n00: 10 10 20 11 ff\n10: fd"),
		Output: output,
	}

	comp, err := tape.Load()
	require.NoError(t, err)
	require.NoError(t, comp.Run())

	err = tape.Store(comp)
	assert.NoError(err)
	assert.Equal("R0: 02\nRC: 04\n\n00: 10 10 20 11 FF\n10: FD 02\n", output.String())

	// The rendering loads back to the same computer.
	tape.Input = output
	again, err := tape.Load()
	assert.NoError(err)
	assert.Equal(*comp, *again)
}

func TestTapeStoreColor(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output, Color: COLOR_ALWAYS}

	comp := cpu.NewComputer()
	comp.Memory[0] = 0xff

	assert.NoError(tape.Store(comp))
	assert.Equal("\n00: \x1b[96mFF\x1b[39m\n", output.String())
}

func TestTapeMissing(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}

	_, err := tape.Load()
	assert.ErrorIs(err, ErrTapeMissing)

	err = tape.Store(cpu.NewComputer())
	assert.ErrorIs(err, ErrTapeMissing)
}

func TestTapeLoadError(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("R0: 0x")}

	_, err := tape.Load()
	var malformed cpu.ErrMalformedHexByte
	assert.True(errors.As(err, &malformed))
}
