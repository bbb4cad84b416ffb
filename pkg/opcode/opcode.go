package opcode

import (
	"bytes"
	"fmt"
)

type Opcode byte

type Instructions []byte

const (
	// OpInc adds one to the accumulator
	OpInc Opcode = iota
	// OpDec subtracts one from the accumulator
	OpDec
	// OpAddi adds the signed operand byte that follows it
	OpAddi
	// OpSubi subtracts the signed operand byte that follows it
	OpSubi
	// OpDone halts the machine
	OpDone
)

type Definition struct {
	Name          string
	OperandWidths []int
}

var definitions = map[Opcode]*Definition{
	OpInc:  {"OpInc", []int{}},
	OpDec:  {"OpDec", []int{}},
	OpAddi: {"OpAddi", []int{1}},
	OpSubi: {"OpSubi", []int{1}},
	OpDone: {"OpDone", []int{}},
}

func Lookup(op byte) (*Definition, error) {
	def, ok := definitions[Opcode(op)]
	if !ok {
		return nil, fmt.Errorf("opcode %d undefined", op)
	}
	return def, nil
}

// Make encodes a single instruction. Operands are truncated to one signed
// byte, so values outside [-128, 127] wrap.
func Make(op Opcode, operands ...int) []byte {
	def, ok := definitions[op]
	if !ok {
		return []byte{}
	}

	instructionLen := 1
	for _, w := range def.OperandWidths {
		instructionLen += w
	}

	instruction := make([]byte, instructionLen)
	instruction[0] = byte(op)

	offset := 1
	for i, o := range operands {
		if i >= len(def.OperandWidths) {
			break
		}
		instruction[offset] = byte(int8(o))
		offset += def.OperandWidths[i]
	}

	return instruction
}

// Concat joins encoded instructions into one program.
func Concat(parts ...[]byte) Instructions {
	out := Instructions{}
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func ReadInt8(ins []byte) int8 {
	return int8(ins[0])
}

func (ins Opcode) String() string {
	def, ok := definitions[ins]
	if !ok {
		return fmt.Sprintf("Opcode(%d)", ins)
	}
	return def.Name
}

// String disassembles the instructions one per line. Undefined bytes and
// truncated operands are printed inline instead of aborting the listing.
func (ins Instructions) String() string {
	var out bytes.Buffer

	i := 0
	for i < len(ins) {
		def, err := Lookup(ins[i])
		if err != nil {
			fmt.Fprintf(&out, "%04d ERROR: %s\n", i, err)
			i++
			continue
		}

		width := 0
		for _, w := range def.OperandWidths {
			width += w
		}
		if i+width >= len(ins) && width > 0 {
			fmt.Fprintf(&out, "%04d %s <missing operand>\n", i, def.Name)
			break
		}

		fmt.Fprintf(&out, "%04d %s", i, def.Name)
		if width > 0 {
			fmt.Fprintf(&out, " %d", ReadInt8(ins[i+1:]))
		}
		out.WriteByte('\n')

		i += 1 + width
	}

	return out.String()
}
