package vm

import (
	"github.com/kmAyush/bytecode-interpreter/pkg/machine"
	"github.com/kmAyush/bytecode-interpreter/pkg/opcode"
)

// VM runs a bytecode program against its own machine state.
type VM struct {
	instructions opcode.Instructions
	state        machine.State
}

func New(instructions opcode.Instructions) *VM {
	return &VM{instructions: instructions}
}

// Run interprets the program from the start and returns its memory cost.
func (vm *VM) Run() (int64, error) {
	return Interpret(&vm.state, vm.instructions)
}

func (vm *VM) Accumulator() int64 {
	return vm.state.Accumulator
}

func (vm *VM) IP() int {
	return vm.state.IP
}

// Interpret resets state, executes ins until OpDone or the end of input, and
// returns the memory cost of every opcode and operand byte consumed. On
// error, state holds the registers as they were just before the fault.
func Interpret(state *machine.State, ins opcode.Instructions) (int64, error) {
	state.Reset()
	return execute(state, ins)
}

// execute runs ins starting from the registers already in state. The
// accumulator wraps on int64 overflow.
func execute(state *machine.State, ins opcode.Instructions) (int64, error) {
	var cost machine.Ledger

	// Cache registers in locals; they are written back on every exit.
	ip := state.IP
	acc := state.Accumulator

	for ip < len(ins) {
		pos := ip
		op := opcode.Opcode(ins[ip])
		ip++
		cost.Charge(machine.OpcodeCost)

		switch op {
		case opcode.OpInc:
			acc++

		case opcode.OpDec:
			acc--

		case opcode.OpAddi, opcode.OpSubi:
			if ip >= len(ins) {
				state.IP, state.Accumulator = ip, acc
				return 0, &machine.OperandOutOfBoundsError{Position: ip}
			}
			operand := int64(opcode.ReadInt8(ins[ip:]))
			ip++
			cost.Charge(machine.OperandCost)

			if op == opcode.OpAddi {
				acc += operand
			} else {
				acc -= operand
			}

		case opcode.OpDone:
			state.IP, state.Accumulator = ip, acc
			return cost.Total(), nil

		default:
			state.IP, state.Accumulator = pos, acc
			return 0, &machine.InvalidOpcodeError{Opcode: byte(op), Position: pos}
		}
	}

	state.IP, state.Accumulator = ip, acc
	return cost.Total(), nil
}
