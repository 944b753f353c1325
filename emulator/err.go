package emulator

import (
	"errors"

	"github.com/ezrec/computer/translate"
)

var f = translate.From

var (
	ErrUntil = errors.New(f("until expression"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc   uint8 // Program counter of the failing instruction.
	Tick int   // Ticks executed before the failure.
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%02x tick %v %v", err.Pc, err.Tick, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
