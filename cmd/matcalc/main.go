// SPDX-License-Identifier: MIT

// Command matcalc is an interactive calculator for small dense matrices:
// addition, subtraction, multiplication, transpose and determinant.
//
// Usage:
//
//	matcalc [-precision 2] [-pivot-eps 0] [-v]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/matcalc/internal/cli"
)

// exitInterrupted follows the shell convention 128+SIGINT.
const exitInterrupted = 130

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses args, wires the session and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("matcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	precision := fs.Int("precision", 2, "digits printed after the decimal point (0-15)")
	pivotEps := fs.Float64("pivot-eps", 0, "relative pivot tolerance for determinant (0 = exact)")
	verbose := fs.Bool("v", false, "log diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *precision < 0 || *precision > 15 {
		fmt.Fprintln(stderr, "matcalc: -precision must be within [0, 15]")
		return 2
	}
	if *pivotEps < 0 || math.IsNaN(*pivotEps) || math.IsInf(*pivotEps, 0) {
		fmt.Fprintln(stderr, "matcalc: -pivot-eps must be finite and non-negative")
		return 2
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(stderr, "matcalc: ", log.LstdFlags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := cli.NewSession(stdin, stdout,
		cli.WithPrecision(*precision),
		cli.WithPivotTolerance(*pivotEps),
		cli.WithLogger(logger),
	)

	// Reads from a terminal cannot be interrupted, so the session runs on
	// its own goroutine and a signal ends the process without waiting for it.
	done := make(chan error, 1)
	go func() { done <- session.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Printf("session: %v", err)
			fmt.Fprintf(stderr, "matcalc: %v\n", err)
			return 1
		}
		return 0
	case <-ctx.Done():
		fmt.Fprintln(stdout)
		logger.Printf("interrupted")
		return exitInterrupted
	}
}
