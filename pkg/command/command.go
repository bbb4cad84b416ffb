// Package command defines the pre-decoded representation used by the
// direct interpreter: one tag per instruction plus a parallel argument array.
package command

import "fmt"

type Tag byte

const (
	Inc Tag = iota
	Dec
	Addi
	Subi
	Done
)

var names = [...]string{
	Inc:  "INC",
	Dec:  "DEC",
	Addi: "ADDI",
	Subi: "SUBI",
	Done: "DONE",
}

func (t Tag) Valid() bool {
	return int(t) < len(names)
}

// TakesArg reports whether the tag reads its slot in Program.Args.
func (t Tag) TakesArg() bool {
	return t == Addi || t == Subi
}

func (t Tag) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tag(%d)", t)
	}
	return names[t]
}

// Program is a direct-interpretation program. Args[i] is only read when
// Commands[i] is Addi or Subi.
type Program struct {
	Commands []Tag
	Args     []int64
}

func (p Program) Len() int {
	return len(p.Commands)
}

// Append adds one command and its argument.
func (p *Program) Append(tag Tag, arg int64) {
	p.Commands = append(p.Commands, tag)
	p.Args = append(p.Args, arg)
}
