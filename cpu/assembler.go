// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"io"
	"log"
)

// Assembler builds a computer from machine source.
//
// Tokens are replayed through a single write pointer. The pointer starts
// at register 0; a register or memory directive moves it, and each byte
// is written at the pointer before advancing. Writing past the last
// register continues at memory address 0.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	registers bool // Pointer selects the register file.
	pointer   int  // Write pointer.
}

// Parse parses an input stream into a computer.
func (asm *Assembler) Parse(input io.Reader) (comp *Computer, err error) {
	text, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return asm.ParseString(string(text))
}

// ParseString parses machine source into a computer.
func (asm *Assembler) ParseString(text string) (comp *Computer, err error) {
	tokens, err := Lex(text)
	if err != nil {
		return
	}

	return asm.Build(tokens)
}

// Build replays tokens into a zeroed computer.
func (asm *Assembler) Build(tokens []Token) (comp *Computer, err error) {
	comp = NewComputer()

	asm.registers = true
	asm.pointer = 0

	for n, tok := range tokens {
		if asm.Verbose {
			log.Printf("%v: %v", n, tok)
		}

		err = asm.replay(comp, tok)
		if err != nil {
			comp = nil
			err = &ErrToken{Index: n, Token: tok, Err: err}
			return
		}
	}

	return
}

// replay applies a single token.
func (asm *Assembler) replay(comp *Computer, tok Token) (err error) {
	switch tok.Kind {
	case TOKEN_REGISTER:
		if int(tok.Value) >= REGISTERS {
			err = ErrRegisterInvalid
			return
		}
		asm.registers = true
		asm.pointer = int(tok.Value)
	case TOKEN_MEMORY:
		asm.registers = false
		asm.pointer = int(tok.Value)
	case TOKEN_BYTE:
		if asm.registers {
			comp.Registers[asm.pointer] = tok.Value
		} else {
			if asm.pointer >= MEMORY {
				err = ErrMemoryOverflow
				return
			}
			comp.Memory[asm.pointer] = tok.Value
		}
		asm.pointer++

		if asm.registers && asm.pointer == REGISTERS {
			asm.registers = false
			asm.pointer = 0
		}
	default:
		err = ErrTokenInvalid
	}

	return
}

// ParseComputer parses machine source into a computer.
func ParseComputer(text string) (comp *Computer, err error) {
	asm := &Assembler{}
	return asm.ParseString(text)
}
