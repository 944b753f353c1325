package cpu

import (
	"errors"
	"strconv"
)

// Lexer is a single pass tokenizer for machine source text.
// It keeps one character of lookahead and tracks the line and column
// of that character for error reporting.
type Lexer struct {
	text   []rune
	pos    int
	line   int // 0-based line of the lookahead character.
	column int // 0-based column of the lookahead character.

	tokens []Token
}

// NewLexer creates a lexer over the source text.
func NewLexer(text string) *Lexer {
	return &Lexer{text: []rune(text)}
}

// Lex tokenizes the source text.
func Lex(text string) (tokens []Token, err error) {
	return NewLexer(text).Tokenize()
}

// Tokenize consumes the remaining text and returns the tokens in source
// order. The first error aborts tokenization.
func (lex *Lexer) Tokenize() (tokens []Token, err error) {
	for {
		ch, ok := lex.peek()
		if !ok {
			break
		}

		switch {
		case ch == 'R':
			err = lex.lexRegister()
		case isHexDigit(ch):
			err = lex.lexByte()
		case ch == '#':
			err = lex.skipComment()
		case ch == ' ' || ch == '\n' || ch == '\r':
			err = lex.advance()
		case ch == '\x1b':
			err = lex.skipEscape()
		default:
			err = lex.fail(ErrUnexpectedCharacter)
		}

		if err != nil {
			return
		}
	}

	tokens = lex.tokens
	return
}

// peek returns the lookahead character.
func (lex *Lexer) peek() (ch rune, ok bool) {
	if lex.pos >= len(lex.text) {
		return
	}

	return lex.text[lex.pos], true
}

// advance consumes the lookahead character.
func (lex *Lexer) advance() (err error) {
	ch, ok := lex.peek()
	if !ok {
		err = ErrAdvancePastEnd
		return
	}

	if ch == '\n' {
		lex.line++
		lex.column = 0
	} else {
		lex.column++
	}
	lex.pos++

	return
}

// fail locates err at the lookahead character.
func (lex *Lexer) fail(err error) error {
	ch, _ := lex.peek()
	return &ErrLex{
		Line:   lex.line + 1,
		Column: lex.column + 1,
		Char:   ch,
		Err:    err,
	}
}

// expect consumes the lookahead character if it is want.
func (lex *Lexer) expect(want rune, missing error) (err error) {
	ch, ok := lex.peek()
	if !ok {
		return lex.fail(errors.Join(missing, ErrUnexpectedEnd))
	}
	if ch != want {
		return lex.fail(missing)
	}

	return lex.advance()
}

// lexRegister lexes `R<hex>:`.
func (lex *Lexer) lexRegister() (err error) {
	err = lex.advance()
	if err != nil {
		return
	}

	ch, ok := lex.peek()
	if !ok {
		return lex.fail(errors.Join(ErrRegisterDigitInvalid, ErrUnexpectedEnd))
	}
	if !isHexDigit(ch) {
		return lex.fail(ErrRegisterDigitInvalid)
	}
	index, _ := strconv.ParseUint(string(ch), 16, 8)

	err = lex.advance()
	if err != nil {
		return
	}

	err = lex.expect(':', ErrColonMissing)
	if err != nil {
		return
	}

	lex.tokens = append(lex.tokens, RegisterToken(uint8(index)))

	return
}

// lexByte lexes `<hex><hex>`, or `<hex><hex>:` for a memory directive.
func (lex *Lexer) lexByte() (err error) {
	hi, _ := lex.peek()
	err = lex.advance()
	if err != nil {
		return
	}

	lo, ok := lex.peek()
	if !ok {
		return lex.fail(errors.Join(ErrMalformedHexByte(string(hi)), ErrUnexpectedEnd))
	}

	pair := string([]rune{hi, lo})
	value, perr := strconv.ParseUint(pair, 16, 8)
	if perr != nil {
		return lex.fail(ErrMalformedHexByte(pair))
	}

	err = lex.advance()
	if err != nil {
		return
	}

	tok := ByteToken(uint8(value))
	if ch, ok := lex.peek(); ok && ch == ':' {
		err = lex.advance()
		if err != nil {
			return
		}
		tok = MemoryToken(uint8(value))
	}

	lex.tokens = append(lex.tokens, tok)

	return
}

// skipComment discards from '#' through the next newline, or to the end
// of the text.
func (lex *Lexer) skipComment() (err error) {
	for {
		ch, ok := lex.peek()
		if !ok {
			return
		}

		err = lex.advance()
		if err != nil || ch == '\n' {
			return
		}
	}
}

// skipEscape discards an ANSI escape sequence: ESC '[' up to and
// including a final byte in 0x40-0x7E.
func (lex *Lexer) skipEscape() (err error) {
	err = lex.advance()
	if err != nil {
		return
	}

	err = lex.expect('[', ErrEscapeInvalid)
	if err != nil {
		return
	}

	for {
		ch, ok := lex.peek()
		if !ok {
			return lex.fail(ErrUnexpectedEnd)
		}

		err = lex.advance()
		if err != nil {
			return
		}

		if ch >= 0x40 && ch <= 0x7e {
			return
		}
	}
}

func isHexDigit(ch rune) bool {
	switch {
	case ch >= '0' && ch <= '9':
		return true
	case ch >= 'a' && ch <= 'f':
		return true
	case ch >= 'A' && ch <= 'F':
		return true
	}
	return false
}
