package cpu

// Opcode is the first byte of an instruction.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD   = Opcode(0x10) // add
	OP_STORE = Opcode(0x20) // store
	OP_HALT  = Opcode(0xff) // halt
)

// Valid returns true if the opcode has an instruction meaning.
func (op Opcode) Valid() bool {
	switch op {
	case OP_ADD, OP_STORE, OP_HALT:
		return true
	}
	return false
}

// Width is the number of bytes PC advances past the instruction.
func (op Opcode) Width() uint8 {
	switch op {
	case OP_ADD, OP_STORE:
		return 2
	}
	return 0
}
