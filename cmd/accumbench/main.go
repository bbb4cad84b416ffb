package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/kmAyush/bytecode-interpreter/pkg/bench"
	"github.com/kmAyush/bytecode-interpreter/pkg/config"
	"github.com/kmAyush/bytecode-interpreter/pkg/logging"
	"github.com/kmAyush/bytecode-interpreter/pkg/report"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "accumbench: %s\n", err)
		os.Exit(1)
	}
}

func run(stdout io.Writer) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	logging.Configure(cfg.Log)

	comparison, err := bench.Run(cfg)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(stdout)
	switch cfg.Report.Format {
	case config.FormatCBOR:
		err = report.WriteCBOR(out, comparison)
	default:
		err = report.WriteText(out, comparison)
	}
	if err != nil {
		return err
	}
	return out.Flush()
}
