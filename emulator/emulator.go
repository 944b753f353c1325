// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives a cpu.Computer: it loads machine source, runs
// instructions with optional tracing, and stops on halt, on a tick limit,
// or when a starlark condition becomes true.
package emulator

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/computer/cpu"
	"github.com/ezrec/computer/internal"
)

// Emulator state. Computer + run controls.
type Emulator struct {
	Verbose       bool   // If set, enables verbose logging.
	*cpu.Computer        // Reference to the computer simulation.
	Limit         int    // Maximum ticks per Run, or 0 for no limit.
	Until         string // Starlark expression that stops Run when true.

	Ticks int // Ticks since the last load or reset.
}

// NewEmulator creates a new emulator with a zeroed computer.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Computer: cpu.NewComputer(),
	}

	return
}

// Load replaces the computer with one parsed from machine source.
func (emu *Emulator) Load(input io.Reader) (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}

	comp, err := asm.Parse(input)
	if err != nil {
		return
	}

	emu.Computer = comp
	emu.Ticks = 0

	return
}

// Reset zeros the computer and the tick counter.
func (emu *Emulator) Reset() {
	emu.Computer.Reset()
	emu.Ticks = 0
}

// Globals returns the names bound for the Until expression:
// acc, pc, ticks, r (all registers), r0 through rf, and mem.
func (emu *Emulator) Globals() iter.Seq2[string, starlark.Value] {
	regs := make([]starlark.Value, cpu.REGISTERS)
	for n, value := range emu.Computer.Registers {
		regs[n] = starlark.MakeInt(int(value))
	}

	base := map[string]starlark.Value{
		"acc":   starlark.MakeInt(int(emu.Acc())),
		"pc":    starlark.MakeInt(int(emu.Pc())),
		"ticks": starlark.MakeInt(emu.Ticks),
		"r":     starlark.Tuple(regs),
		"mem":   starlark.Bytes(emu.Computer.Memory[:]),
	}

	return internal.IterSeq2Concat(maps.All(base),
		internal.IterSeqIndexed(regs, func(n int) string { return fmt.Sprintf("r%x", n) }),
	)
}

// until evaluates the Until expression against the computer state.
func (emu *Emulator) until() (stop bool, err error) {
	if len(emu.Until) == 0 {
		return
	}

	thread := starlark.Thread{Name: "until"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict(maps.Collect(emu.Globals()))

	prog := "_stop = bool(" + emu.Until + ")\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "until", prog, pred)
	if err != nil {
		err = errors.Join(ErrUntil, err)
		return
	}

	value, ok := dict["_stop"]
	if !ok {
		err = ErrUntil
		return
	}

	stop = bool(value.Truth())

	return
}

// Tick performs a single instruction of the emulator.
// Done is set when the computer is halted, or the Until expression is true.
func (emu *Emulator) Tick() (done bool, err error) {
	pc := emu.Pc()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Tick: emu.Ticks, Err: err}
		}
	}()

	if emu.Halted() {
		done = true
		return
	}

	if emu.Verbose {
		emu.Trace()
	}

	err = emu.Step()
	if err != nil {
		return
	}
	emu.Ticks++

	if emu.Halted() {
		done = true
		return
	}

	done, err = emu.until()
	if done && emu.Verbose {
		log.Printf("until: %v", emu.Until)
	}

	return
}

// Run ticks until done, or until Limit ticks have run.
func (emu *Emulator) Run() (err error) {
	for ticks := 0; ; ticks++ {
		if emu.Limit > 0 && ticks >= emu.Limit && !emu.Halted() {
			err = &ErrRuntime{Pc: emu.Pc(), Tick: emu.Ticks, Err: cpu.ErrStepLimit}
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}
