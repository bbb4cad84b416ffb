package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kmAyush/bytecode-interpreter/pkg/config"
	"github.com/kmAyush/bytecode-interpreter/pkg/program"
)

const defaultWindow = 16

func main() {
	window := defaultWindow
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 1 {
			fmt.Println("Usage: inspect_bytecode [bytes]")
			os.Exit(1)
		}
		window = n
	}

	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %s\n", err)
		os.Exit(1)
	}

	ins, err := program.Bytecode(cfg.Program.BytecodeSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Program error: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Program: %d bytes, blake2b %s\n", len(ins), program.Fingerprint(ins))
	fmt.Println()

	if window > len(ins) {
		window = len(ins)
	}
	fmt.Printf("Head (%d bytes):\n%s", window, ins[:window])

	tail := len(ins) - window
	fmt.Printf("\nTail from %d:\n%s", tail, ins[tail:])
}
