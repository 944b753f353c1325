package cpu

import (
	"fmt"
)

// TokenKind is the lexical class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_REGISTER = TokenKind(0) // register
	TOKEN_MEMORY   = TokenKind(1) // memory
	TOKEN_BYTE     = TokenKind(2) // byte
)

// Token is a single lexical item of machine source.
//   - TOKEN_REGISTER: subsequent bytes write into registers from Value.
//   - TOKEN_MEMORY: subsequent bytes write into memory from Value.
//   - TOKEN_BYTE: write Value at the pointer, then advance the pointer.
type Token struct {
	Kind  TokenKind
	Value uint8
}

// RegisterToken creates a register directive token.
func RegisterToken(index uint8) Token {
	return Token{Kind: TOKEN_REGISTER, Value: index}
}

// MemoryToken creates a memory directive token.
func MemoryToken(address uint8) Token {
	return Token{Kind: TOKEN_MEMORY, Value: address}
}

// ByteToken creates a byte value token.
func ByteToken(value uint8) Token {
	return Token{Kind: TOKEN_BYTE, Value: value}
}

// String returns the token in source notation.
func (tok Token) String() string {
	switch tok.Kind {
	case TOKEN_REGISTER:
		return fmt.Sprintf("R%X:", tok.Value)
	case TOKEN_MEMORY:
		return fmt.Sprintf("%02X:", tok.Value)
	case TOKEN_BYTE:
		return fmt.Sprintf("%02X", tok.Value)
	}
	return fmt.Sprintf("%v(0x%02x)", tok.Kind, tok.Value)
}
