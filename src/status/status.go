// Package status prints human-readable progress lines for the pipeline.
// It has no effect on correctness; a quiet printer drops everything.
package status

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	doneMark  = color.New(color.FgGreen).Sprint("[✓]")
	debugMark = color.New(color.FgCyan).Sprint("[debug]")
	errorMark = color.New(color.FgRed, color.Bold).Sprint("[error]")
)

type Printer struct {
	out    io.Writer
	errOut io.Writer
	quiet  bool
}

func NewPrinter(quiet bool) *Printer {
	return &Printer{out: os.Stdout, errOut: os.Stderr, quiet: quiet}
}

// NewTestPrinter writes everything to the given writer, for tests.
func NewTestPrinter(w io.Writer) *Printer {
	return &Printer{out: w, errOut: w}
}

// Step reports the start of a pipeline stage.
func (p *Printer) Step(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Done reports a completed stage.
func (p *Printer) Done(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", doneMark, fmt.Sprintf(format, args...))
}

// Debug reports a detail useful when diagnosing a failed run.
func (p *Printer) Debug(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", debugMark, fmt.Sprintf(format, args...))
}

// Errorf reports a fatal error. Printed even in quiet mode.
func (p *Printer) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(p.errOut, "%s %s\n", errorMark, fmt.Sprintf(format, args...))
}
