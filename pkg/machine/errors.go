package machine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOpcode      = errors.New("invalid opcode")
	ErrInvalidCommand     = errors.New("invalid command")
	ErrOperandOutOfBounds = errors.New("operand out of bounds")
	ErrArgsLength         = errors.New("commands and args differ in length")
)

type InvalidOpcodeError struct {
	Opcode   byte
	Position int
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %d at position %d", e.Opcode, e.Position)
}

func (e *InvalidOpcodeError) Unwrap() error { return ErrInvalidOpcode }

type InvalidCommandError struct {
	Tag      byte
	Position int
}

func (e *InvalidCommandError) Error() string {
	return fmt.Sprintf("unknown command %d at position %d", e.Tag, e.Position)
}

func (e *InvalidCommandError) Unwrap() error { return ErrInvalidCommand }

// OperandOutOfBoundsError reports an ADDI or SUBI with no byte left to read.
// Position is the offset where the operand was expected.
type OperandOutOfBoundsError struct {
	Position int
}

func (e *OperandOutOfBoundsError) Error() string {
	return fmt.Sprintf("missing operand at position %d", e.Position)
}

func (e *OperandOutOfBoundsError) Unwrap() error { return ErrOperandOutOfBounds }

type ArgsLengthError struct {
	Commands int
	Args     int
}

func (e *ArgsLengthError) Error() string {
	return fmt.Sprintf("%d commands but %d args", e.Commands, e.Args)
}

func (e *ArgsLengthError) Unwrap() error { return ErrArgsLength }
