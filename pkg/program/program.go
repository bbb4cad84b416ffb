// Package program builds the fixed benchmark inputs for both interpreters.
//
// The bytecode program fills the whole buffer with OpAddi, so every operand
// byte is itself the value of OpAddi and is consumed as the operand 2. The
// two programs are therefore not equivalent computations; the layout is kept
// as is so results stay comparable with earlier runs.
package program

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/kmAyush/bytecode-interpreter/pkg/command"
	"github.com/kmAyush/bytecode-interpreter/pkg/opcode"
	"golang.org/x/crypto/blake2b"
)

const (
	BytecodeSize = 1_000_000
	DirectSize   = 500_000

	// MinSize leaves room for the trailing SUBI and DONE.
	MinSize = 2
)

var ErrSizeTooSmall = errors.New("program size too small")

func checkSize(size int) error {
	if size < MinSize {
		return fmt.Errorf("%w: %d, need at least %d", ErrSizeTooSmall, size, MinSize)
	}
	return nil
}

// Bytecode returns size bytes of OpAddi with OpSubi and OpDone in the last
// two slots. Sizes below MinSize return ErrSizeTooSmall.
func Bytecode(size int) (opcode.Instructions, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	ins := make(opcode.Instructions, size)
	for i := range ins {
		ins[i] = byte(opcode.OpAddi)
	}
	ins[size-2] = byte(opcode.OpSubi)
	ins[size-1] = byte(opcode.OpDone)

	return ins, nil
}

// Direct returns size Addi commands with Subi and Done in the last two
// slots. Every argument is 1 except the last, which is 0. Sizes below
// MinSize return ErrSizeTooSmall.
func Direct(size int) (command.Program, error) {
	if err := checkSize(size); err != nil {
		return command.Program{}, err
	}

	p := command.Program{
		Commands: make([]command.Tag, size),
		Args:     make([]int64, size),
	}
	for i := range p.Commands {
		p.Commands[i] = command.Addi
		p.Args[i] = 1
	}
	p.Commands[size-2] = command.Subi
	p.Commands[size-1] = command.Done
	p.Args[size-1] = 0

	return p, nil
}

// Fingerprint returns the hex BLAKE2b-256 digest of a bytecode program.
func Fingerprint(ins opcode.Instructions) string {
	sum := blake2b.Sum256(ins)
	return hex.EncodeToString(sum[:])
}

// FingerprintDirect hashes the commands followed by the little-endian args.
// Args of commands that never read them hash as zero, so programs that
// execute identically share a fingerprint.
func FingerprintDirect(p command.Program) string {
	h, _ := blake2b.New256(nil)

	tags := make([]byte, len(p.Commands))
	for i, c := range p.Commands {
		tags[i] = byte(c)
	}
	h.Write(tags)

	var buf [8]byte
	for i, a := range p.Args {
		if i >= len(p.Commands) || !p.Commands[i].TakesArg() {
			a = 0
		}
		binary.LittleEndian.PutUint64(buf[:], uint64(a))
		h.Write(buf[:])
	}

	return hex.EncodeToString(h.Sum(nil))
}
