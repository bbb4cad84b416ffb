// Package report renders the outcome of a bytecode vs direct benchmark run.
package report

import (
	"fmt"
	"io"
	"math"
	"time"
)

// Preamble is printed ahead of the text report. The expression is never
// parsed.
const Preamble = "Enter expression\n100-4-28\n"

// Arm is the result of one interpreter's benchmark run.
type Arm struct {
	Memory      int64         `cbor:"memory"`
	Elapsed     time.Duration `cbor:"elapsed_ns"`
	Accumulator int64         `cbor:"accumulator"`
	Fingerprint string        `cbor:"fingerprint,omitempty"`
}

type Comparison struct {
	Bytecode Arm `cbor:"bytecode"`
	Direct   Arm `cbor:"direct"`
}

// MemoryRatio is bytecode memory over direct memory.
func (c Comparison) MemoryRatio() float64 {
	return ratio(float64(c.Bytecode.Memory), float64(c.Direct.Memory))
}

// TimeRatio is bytecode time over direct time.
func (c Comparison) TimeRatio() float64 {
	return ratio(float64(c.Bytecode.Elapsed), float64(c.Direct.Elapsed))
}

// ratio divides a by b. A zero denominator yields NaN for 0/0 and a signed
// infinity otherwise.
func ratio(a, b float64) float64 {
	if b == 0 {
		switch {
		case a == 0:
			return math.NaN()
		case a < 0:
			return math.Inf(-1)
		default:
			return math.Inf(1)
		}
	}
	return a / b
}

// WriteText writes the preamble followed by the fixed-layout report.
func WriteText(w io.Writer, c Comparison) error {
	ew := &errWriter{w: w}

	ew.printf("%s", Preamble)
	ew.arm("Bytecode Interpretation", c.Bytecode)
	ew.arm("Direct Interpretation", c.Direct)

	ew.printf("\nComparison:\n")
	ew.printf("Bytecode executed code in %.2fx memory usage and %.2fx execution time compared to Direct interpreter.\n",
		c.MemoryRatio(), c.TimeRatio())
	ew.printf("Bytecode uses less memory but takes slightly more time due to decoding.\n")
	ew.printf("Direct Interpretation is faster but consumes more memory due to verbose command representation.\n")

	return ew.err
}

// errWriter keeps the first write error and skips all later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) arm(title string, a Arm) {
	ew.printf("%s:\n", title)
	ew.printf("  Memory Consumed: %d bytes\n", a.Memory)
	ew.printf("  Execution Time: %d ns\n", a.Elapsed.Nanoseconds())
	ew.printf("  Final Accumulator: %d\n", a.Accumulator)
}
