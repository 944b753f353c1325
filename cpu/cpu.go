// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"log"
)

const (
	REGISTERS = 16  // Size of the register file.
	MEMORY    = 256 // Size of memory, addressed by a single byte.
	ACC       = 0x0 // Accumulator register index.
	PC        = 0xC // Program counter register index.
)

// Computer is the machine state: the register file and memory.
// The zero value is a zeroed machine.
type Computer struct {
	Registers [REGISTERS]uint8 // Register file.
	Memory    [MEMORY]uint8    // Memory image.
}

// NewComputer creates a zeroed computer.
func NewComputer() (comp *Computer) {
	comp = &Computer{}

	return
}

// Acc returns the accumulator.
func (comp *Computer) Acc() uint8 {
	return comp.Registers[ACC]
}

// Pc returns the program counter.
func (comp *Computer) Pc() uint8 {
	return comp.Registers[PC]
}

// Snapshot returns a copy of the machine state.
func (comp *Computer) Snapshot() Computer {
	return *comp
}

// Reset zeros all registers and memory.
func (comp *Computer) Reset() {
	clear(comp.Registers[:])
	clear(comp.Memory[:])
}

// Fetch returns the opcode at PC and the operand following it.
// The operand address wraps at the end of memory.
func (comp *Computer) Fetch() (op Opcode, operand uint8) {
	pc := comp.Pc()

	op = Opcode(comp.Memory[pc])
	operand = comp.Memory[pc+1]

	return
}

// Halted returns true if the opcode at PC is the halt opcode.
func (comp *Computer) Halted() bool {
	op, _ := comp.Fetch()
	return op == OP_HALT
}

// Step executes a single instruction.
// A halted computer is left unchanged. An invalid opcode returns
// ErrInvalidOpcode, and the computer is left unchanged.
func (comp *Computer) Step() (err error) {
	op, operand := comp.Fetch()

	switch op {
	case OP_ADD:
		comp.Registers[ACC] += comp.Memory[operand]
	case OP_STORE:
		comp.Memory[operand] = comp.Registers[ACC]
	case OP_HALT:
		return
	default:
		err = ErrInvalidOpcode(op)
		return
	}

	comp.Registers[PC] += op.Width()

	return
}

// Run steps until the computer halts.
// There is no step limit; see RunLimit.
func (comp *Computer) Run() (err error) {
	for !comp.Halted() {
		err = comp.Step()
		if err != nil {
			return
		}
	}

	return
}

// RunLimit steps until the computer halts, or returns ErrStepLimit once
// limit instructions have executed without halting. A limit of zero or
// less is unlimited.
func (comp *Computer) RunLimit(limit int) (steps int, err error) {
	for !comp.Halted() {
		if limit > 0 && steps >= limit {
			err = ErrStepLimit
			return
		}

		err = comp.Step()
		if err != nil {
			return
		}
		steps++
	}

	return
}

// Trace logs the instruction at PC.
func (comp *Computer) Trace() {
	op, operand := comp.Fetch()
	log.Printf("%02x: %v 0x%02x acc:0x%02x", comp.Pc(), op, operand, comp.Acc())
}
