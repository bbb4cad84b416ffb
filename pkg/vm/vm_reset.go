package vm

import (
	"github.com/kmAyush/bytecode-interpreter/pkg/opcode"
)

// Reset swaps in a new program and clears the registers, so one VM can be
// reused across benchmark iterations without allocating.
func (vm *VM) Reset(instructions opcode.Instructions) {
	vm.instructions = instructions
	vm.state.Reset()
}
