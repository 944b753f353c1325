package cpu

import (
	"fmt"
	"strings"
)

const (
	REGISTER_ROW = 4  // Registers per rendered row.
	MEMORY_ROW   = 16 // Bytes per rendered row.

	colorPc    = "\x1b[96m" // Bright cyan.
	colorReset = "\x1b[39m"
)

// trimmed returns the row up to and including its last non-zero value.
func trimmed(row []uint8) []uint8 {
	for n := len(row); n > 0; n-- {
		if row[n-1] != 0 {
			return row[:n]
		}
	}
	return nil
}

// Format renders the computer as machine source.
//
// Registers are shown four per row and memory sixteen bytes per row, with
// all-zero rows omitted and each row trimmed after its last non-zero value.
// A blank line separates the two blocks. If color is set, the memory byte
// at PC is highlighted. The result parses back into an equal computer.
func (comp *Computer) Format(color bool) string {
	var out strings.Builder

	printed := 0
	for base := 0; base < REGISTERS; base += REGISTER_ROW {
		row := trimmed(comp.Registers[base : base+REGISTER_ROW])
		if len(row) == 0 {
			continue
		}

		if printed > 0 {
			out.WriteString("\n")
		}

		for n, value := range row {
			if n > 0 {
				out.WriteString(" ")
			}
			fmt.Fprintf(&out, "R%X: %02x", base+n, value)
		}

		printed++
	}

	if printed > 0 {
		out.WriteString("\n")
	}

	out.WriteString("\n")

	pc := int(comp.Pc())

	printed = 0
	for base := 0; base < MEMORY; base += MEMORY_ROW {
		row := trimmed(comp.Memory[base : base+MEMORY_ROW])
		if len(row) == 0 {
			continue
		}

		if printed > 0 {
			out.WriteString("\n")
		}

		fmt.Fprintf(&out, "%02X: ", base)

		for n, value := range row {
			if n > 0 {
				out.WriteString(" ")
			}
			if color && base+n == pc {
				fmt.Fprintf(&out, "%v%02X%v", colorPc, value, colorReset)
			} else {
				fmt.Fprintf(&out, "%02X", value)
			}
		}

		printed++
	}

	return out.String()
}

// String renders the computer without color.
func (comp *Computer) String() string {
	return comp.Format(false)
}
