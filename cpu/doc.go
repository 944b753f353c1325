// Package cpu implements the byte computer and its source notation.
//
// The computer has sixteen 8-bit registers and 256 bytes of memory. Register
// 0 is the accumulator (ACC) and register 12 is the program counter (PC).
// Instructions are two bytes, an opcode followed by a memory address operand.
//
// The source notation selects a write pointer with `R<hex>:` (register) or
// `<hex><hex>:` (memory) directives, and writes bytes with bare `<hex><hex>`
// values. Comments begin with '#', and ANSI escape sequences are ignored so
// that colorized output can be loaded back in.
package cpu
