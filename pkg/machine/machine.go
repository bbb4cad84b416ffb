// Package machine holds the state shared by both accumulator interpreters
// and the cost model they use to account for program size.
package machine

// Memory cost, in synthetic bytes, of each decoded unit.
const (
	OpcodeCost   = 1 // one opcode byte in the dense encoding
	OperandCost  = 1 // one inline operand byte
	CommandCost  = 4 // one tagged command object
	ArgumentCost = 4 // one slot in the separate argument array
)

// State is the register file of the accumulator machine. Each interpreter
// call resets the State it is given, so a State must not be shared by calls
// running at the same time.
type State struct {
	IP          int // instruction pointer, always within [0, len(program)]
	Accumulator int64
}

func (s *State) Reset() {
	s.IP = 0
	s.Accumulator = 0
}

// Ledger tallies memory cost for a single interpretation call.
type Ledger struct {
	total int64
}

func (l *Ledger) Charge(units int64) {
	l.total += units
}

func (l *Ledger) Total() int64 {
	return l.total
}
