package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputer(t *testing.T) {
	assert := assert.New(t)

	comp := NewComputer()

	assert.Equal(REGISTERS, len(comp.Registers))
	assert.Equal(MEMORY, len(comp.Memory))
	assert.Equal(Computer{}, *comp)
	assert.Equal(uint8(0), comp.Acc())
	assert.Equal(uint8(0), comp.Pc())
	assert.False(comp.Halted())
}

func TestComputerAdd(t *testing.T) {
	assert := assert.New(t)

	comp := &Computer{}
	comp.Registers[ACC] = 0x05
	comp.Memory[0] = uint8(OP_ADD)
	comp.Memory[1] = 0x80
	comp.Memory[0x80] = 0xfd

	err := comp.Step()
	assert.NoError(err)

	assert.Equal(uint8(0x02), comp.Acc())
	assert.Equal(uint8(2), comp.Pc())
	assert.Equal(uint8(0xfd), comp.Memory[0x80])
}

func TestComputerStore(t *testing.T) {
	assert := assert.New(t)

	comp := &Computer{}
	comp.Registers[ACC] = 0x7f
	comp.Memory[0] = uint8(OP_STORE)
	comp.Memory[1] = 0x10

	err := comp.Step()
	assert.NoError(err)

	assert.Equal(uint8(0x7f), comp.Memory[0x10])
	assert.Equal(uint8(0x7f), comp.Acc())
	assert.Equal(uint8(2), comp.Pc())
}

func TestComputerHalt(t *testing.T) {
	assert := assert.New(t)

	comp := &Computer{}
	comp.Registers[ACC] = 0x33
	comp.Registers[PC] = 0x40
	comp.Memory[0x40] = uint8(OP_HALT)
	comp.Memory[0x41] = 0x10

	assert.True(comp.Halted())

	before := comp.Snapshot()
	for range 10 {
		assert.NoError(comp.Step())
	}
	assert.Equal(before, *comp)
}

func TestComputerInvalidOpcode(t *testing.T) {
	assert := assert.New(t)

	comp := &Computer{}
	comp.Memory[0] = 0x42
	comp.Memory[1] = 0x10

	before := comp.Snapshot()
	err := comp.Step()
	assert.Error(err)
	assert.Equal(ErrInvalidOpcode(0x42), err)
	assert.True(errors.Is(err, ErrInvalidOpcode(0)))
	assert.Equal(before, *comp)

	err = comp.Run()
	assert.ErrorIs(err, ErrInvalidOpcode(0x42))
}

func TestComputerOperandWrap(t *testing.T) {
	assert := assert.New(t)

	comp := &Computer{}
	comp.Registers[ACC] = 0x01
	comp.Registers[PC] = 0xff
	comp.Memory[0xff] = uint8(OP_STORE)
	comp.Memory[0x00] = 0x20

	op, operand := comp.Fetch()
	assert.Equal(OP_STORE, op)
	assert.Equal(uint8(0x20), operand)

	err := comp.Step()
	assert.NoError(err)
	assert.Equal(uint8(0x01), comp.Memory[0x20])
	assert.Equal(uint8(0x01), comp.Pc(), "pc wraps")
}

func TestComputerRun(t *testing.T) {
	assert := assert.New(t)

	comp := &Computer{}
	program := []uint8{
		uint8(OP_ADD), 0x20, // acc += 0x03
		uint8(OP_ADD), 0x20, // acc += 0x03
		uint8(OP_STORE), 0x21,
		uint8(OP_HALT),
	}
	copy(comp.Memory[:], program)
	comp.Memory[0x20] = 0x03

	err := comp.Run()
	assert.NoError(err)

	assert.True(comp.Halted())
	assert.Equal(uint8(6), comp.Pc())
	assert.Equal(uint8(0x06), comp.Acc())
	assert.Equal(uint8(0x06), comp.Memory[0x21])
}

func TestComputerRunLimit(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		limit int
		steps int
		err   error
	}){
		{"unlimited", 0, 3, nil},
		{"exact", 3, 3, nil},
		{"short", 2, 2, ErrStepLimit},
		{"negative", -1, 3, nil},
	}

	for _, entry := range table {
		comp := &Computer{}
		copy(comp.Memory[:], []uint8{0x10, 0x80, 0x10, 0x80, 0x20, 0x81, 0xff})
		comp.Memory[0x80] = 0x11

		steps, err := comp.RunLimit(entry.limit)
		assert.Equal(entry.steps, steps, entry.name)
		if entry.err == nil {
			assert.NoError(err, entry.name)
			assert.Equal(uint8(0x22), comp.Memory[0x81], entry.name)
		} else {
			assert.ErrorIs(err, entry.err, entry.name)
		}
	}
}

func TestComputerRunLimitForever(t *testing.T) {
	assert := assert.New(t)

	// Memory holds only add instructions, so PC cycles forever.
	comp := &Computer{}
	for n := 0; n < MEMORY; n += 2 {
		comp.Memory[n] = uint8(OP_ADD)
		comp.Memory[n+1] = 0x01
	}

	steps, err := comp.RunLimit(1000)
	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(1000, steps)
	assert.False(comp.Halted())
}

func TestComputerReset(t *testing.T) {
	assert := assert.New(t)

	comp := &Computer{}
	comp.Registers[3] = 1
	comp.Memory[0x99] = 2
	comp.Reset()

	assert.Equal(Computer{}, *comp)
}

func TestOpcode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("add", OP_ADD.String())
	assert.Equal("store", OP_STORE.String())
	assert.Equal("halt", OP_HALT.String())
	assert.Equal("Opcode(66)", Opcode(0x42).String())

	assert.True(OP_ADD.Valid())
	assert.False(Opcode(0).Valid())
	assert.Equal(uint8(2), OP_STORE.Width())
	assert.Equal(uint8(0), OP_HALT.Width())
}
