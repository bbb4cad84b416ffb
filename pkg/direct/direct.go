// Package direct executes pre-decoded command programs. There is no decode
// step: each instruction is a tag and its argument sits in a parallel slice.
package direct

import (
	"github.com/kmAyush/bytecode-interpreter/pkg/command"
	"github.com/kmAyush/bytecode-interpreter/pkg/machine"
)

// Interpreter runs a command program against its own machine state.
type Interpreter struct {
	program command.Program
	state   machine.State
}

func New(program command.Program) *Interpreter {
	return &Interpreter{program: program}
}

func (in *Interpreter) Run() (int64, error) {
	return Interpret(&in.state, in.program)
}

// Reset swaps in a new program and clears the registers.
func (in *Interpreter) Reset(program command.Program) {
	in.program = program
	in.state.Reset()
}

func (in *Interpreter) Accumulator() int64 {
	return in.state.Accumulator
}

func (in *Interpreter) IP() int {
	return in.state.IP
}

// Interpret resets state and walks prog until Done or the last command,
// charging CommandCost per command and ArgumentCost per argument read.
func Interpret(state *machine.State, prog command.Program) (int64, error) {
	state.Reset()

	commands, args := prog.Commands, prog.Args
	if len(commands) != len(args) {
		return 0, &machine.ArgsLengthError{Commands: len(commands), Args: len(args)}
	}

	var cost machine.Ledger
	var acc int64

	for i, cmd := range commands {
		cost.Charge(machine.CommandCost)

		switch cmd {
		case command.Inc:
			acc++

		case command.Dec:
			acc--

		case command.Addi:
			acc += args[i]
			cost.Charge(machine.ArgumentCost)

		case command.Subi:
			acc -= args[i]
			cost.Charge(machine.ArgumentCost)

		case command.Done:
			state.IP, state.Accumulator = i+1, acc
			return cost.Total(), nil

		default:
			state.IP, state.Accumulator = i, acc
			return 0, &machine.InvalidCommandError{Tag: byte(cmd), Position: i}
		}
	}

	state.IP, state.Accumulator = len(commands), acc
	return cost.Total(), nil
}
