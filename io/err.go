package io

import (
	"errors"

	"github.com/ezrec/computer/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrTapeMissing = errors.New(f("tape missing"))
)

// ErrColorMode is returned for an unknown color mode name.
type ErrColorMode string

func (err ErrColorMode) Error() string {
	return f("color mode '%v' unknown", string(err))
}
