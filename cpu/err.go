package cpu

import (
	"errors"

	"github.com/ezrec/computer/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrStepLimit = errors.New(f("step limit reached"))

	// Lexer errors
	ErrAdvancePastEnd       = errors.New(f("lexer advanced past end of text"))
	ErrUnexpectedEnd        = errors.New(f("unexpected end of text"))
	ErrUnexpectedCharacter  = errors.New(f("unexpected character"))
	ErrRegisterDigitInvalid = errors.New(f("register index is not a hex digit"))
	ErrColonMissing         = errors.New(f("':' missing"))
	ErrEscapeInvalid        = errors.New(f("escape sequence missing '['"))

	// Assembler errors
	ErrMemoryOverflow  = errors.New(f("write past end of memory"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrTokenInvalid    = errors.New(f("token invalid"))
)

// ErrInvalidOpcode is returned when the byte at PC has no instruction meaning.
type ErrInvalidOpcode uint8

func (eo ErrInvalidOpcode) Error() string {
	return f("invalid opcode 0x%02x", uint8(eo))
}

func (eo ErrInvalidOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrInvalidOpcode)
	return
}

// ErrMalformedHexByte is returned when two characters do not form a hex byte.
type ErrMalformedHexByte string

func (err ErrMalformedHexByte) Error() string {
	return f("'%v' is not a hex byte", string(err))
}

// ErrLex locates a lexer failure in the source text.
// Line and Column are 1-based.
type ErrLex struct {
	Line   int
	Column int
	Char   rune // Offending character, or 0 at end of text.
	Err    error
}

func (err *ErrLex) Error() string {
	if err.Char == 0 {
		return f("%d:%d %v", err.Line, err.Column, err.Err)
	}
	return f("%d:%d %v: %q", err.Line, err.Column, err.Err, err.Char)
}

func (err *ErrLex) Unwrap() error {
	return err.Err
}

// ErrToken locates a state builder failure in the token sequence.
type ErrToken struct {
	Index int
	Token Token
	Err   error
}

func (err *ErrToken) Error() string {
	return f("token %d %v %v", err.Index, err.Token, err.Err)
}

func (err *ErrToken) Unwrap() error {
	return err.Err
}
