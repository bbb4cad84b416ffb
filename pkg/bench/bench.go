// Package bench runs the bytecode and direct interpreters over the
// generated benchmark programs and collects a report.Comparison.
package bench

import (
	"errors"
	"fmt"

	"github.com/kmAyush/bytecode-interpreter/pkg/command"
	"github.com/kmAyush/bytecode-interpreter/pkg/config"
	"github.com/kmAyush/bytecode-interpreter/pkg/direct"
	"github.com/kmAyush/bytecode-interpreter/pkg/logging"
	"github.com/kmAyush/bytecode-interpreter/pkg/machine"
	"github.com/kmAyush/bytecode-interpreter/pkg/opcode"
	"github.com/kmAyush/bytecode-interpreter/pkg/program"
	"github.com/kmAyush/bytecode-interpreter/pkg/report"
	"github.com/kmAyush/bytecode-interpreter/pkg/timing"
	"github.com/kmAyush/bytecode-interpreter/pkg/vm"
)

var log = logging.GetLogger("bench")

// interpretFunc runs one fixed program against state.
type interpretFunc func(state *machine.State) (int64, error)

// Run generates both programs from cfg and benchmarks them one after the
// other. Each arm owns its machine state.
func Run(cfg config.Config) (report.Comparison, error) {
	ins, err := program.Bytecode(cfg.Program.BytecodeSize)
	if err != nil {
		return report.Comparison{}, fmt.Errorf("bytecode: %w", err)
	}
	prog, err := program.Direct(cfg.Program.DirectSize)
	if err != nil {
		return report.Comparison{}, fmt.Errorf("direct: %w", err)
	}

	return Compare(ins, prog, cfg.Timing.Samples)
}

// Compare benchmarks arbitrary programs. The first interpreter fault aborts
// the comparison.
func Compare(ins opcode.Instructions, prog command.Program, samples int) (report.Comparison, error) {
	bytecodeArm, err := measure("bytecode", program.Fingerprint(ins), samples,
		func(state *machine.State) (int64, error) {
			return interpretBytecode(state, ins)
		})
	if err != nil {
		return report.Comparison{}, err
	}

	directArm, err := measure("direct", program.FingerprintDirect(prog), samples,
		func(state *machine.State) (int64, error) {
			return direct.Interpret(state, prog)
		})
	if err != nil {
		return report.Comparison{}, err
	}

	c := report.Comparison{Bytecode: bytecodeArm, Direct: directArm}
	log.Infof("memory ratio %.4f, time ratio %.4f", c.MemoryRatio(), c.TimeRatio())
	return c, nil
}

// measure runs interpret once for memory cost and accumulator, then again
// under the timer. The timed runs' memory results are discarded.
func measure(name, fingerprint string, samples int, interpret interpretFunc) (report.Arm, error) {
	log.Debugf("%s program %s", name, fingerprint)

	var state machine.State
	memory, err := interpret(&state)
	if err != nil {
		return report.Arm{}, fmt.Errorf("%s: %w", name, err)
	}
	accumulator := state.Accumulator

	var runErr error
	elapsed := timing.Sample(samples, func() {
		if _, err := interpret(&state); err != nil && runErr == nil {
			runErr = err
		}
	})
	if runErr != nil {
		return report.Arm{}, fmt.Errorf("%s: %w", name, runErr)
	}

	arm := report.Arm{
		Memory:      memory,
		Elapsed:     elapsed.Median(),
		Accumulator: accumulator,
		Fingerprint: fingerprint,
	}
	log.Infof("%s: memory=%d elapsed=%s (min %s, mean %s over %d samples) accumulator=%d",
		name, arm.Memory, arm.Elapsed, elapsed.Min(), elapsed.Mean(), len(elapsed), arm.Accumulator)
	return arm, nil
}

// faultWindow is how many bytes either side of a bad opcode get logged.
const faultWindow = 8

func interpretBytecode(state *machine.State, ins opcode.Instructions) (int64, error) {
	cost, err := vm.Interpret(state, ins)

	var invalid *machine.InvalidOpcodeError
	if errors.As(err, &invalid) {
		start := max(invalid.Position-faultWindow, 0)
		end := min(invalid.Position+faultWindow, len(ins))
		log.Errorf("bytecode from offset %d:\n%s", start, ins[start:end])
	}
	return cost, err
}
