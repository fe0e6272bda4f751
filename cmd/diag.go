/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)

*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/gmofishsauce/slip8/pkg/asm"
)

const banner = "SLIP-8 the CHIP-8 Compiler: "

// ANSI attributes
const (
	sgrReset = "\x1b[0m"
	sgrBold  = "\x1b[1m"
	sgrError = "\x1b[31m"
	sgrFile  = "\x1b[1;7m"
	sgrLine  = "\x1b[93;1m"
)

// Attribute and label for each discrepancy.
var discrepancies = map[asm.Kind][2]string{
	asm.NotMemoryLocation: {"\x1b[0;1;42m", "Not a memory location"},
	asm.WrongRegister:     {"\x1b[0;1;36m", "Wrong register"},
	asm.NotEnoughValue:    {"\x1b[0;1;34m", "Not enough values"},
	asm.WrongValue:        {"\x1b[0;1;41m", "Wrong value"},
}

// reportedError marks an error whose diagnostic has been printed.
type reportedError struct {
	err error
}

func (r reportedError) Error() string { return r.err.Error() }
func (r reportedError) Unwrap() error { return r.err }

func isReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

type diagnostics struct {
	w     io.Writer
	color bool
}

// Colour only goes to a terminal.
func newDiagnostics(w io.Writer) *diagnostics {
	f, ok := w.(*os.File)
	return &diagnostics{w: w, color: ok && term.IsTerminal(int(f.Fd()))}
}

func (d *diagnostics) sgr(attr string, text string) string {
	if !d.color {
		return text
	}
	return attr + text + sgrReset
}

// report prints err the way the compiler always has and returns it
// marked as reported.
func (d *diagnostics) report(err error) error {
	fmt.Fprintf(d.w, "%s%s %s\nCompilation terminated.\n",
		d.sgr(sgrBold, banner), d.sgr(sgrBold+sgrError, "Error:"), d.message(err))
	return reportedError{err}
}

func (d *diagnostics) message(err error) string {
	var ae *asm.Error
	var be *asm.BuildError
	switch {
	case errors.As(err, &be):
		kind := asm.KindOf(be.Err)
		line := d.sgr(sgrLine, fmt.Sprint(be.Line))
		if kind == asm.UnknownInstruction {
			return fmt.Sprintf("Unknown instruction at %s", line)
		}
		if dis, ok := discrepancies[kind]; ok {
			return fmt.Sprintf("Detected discrepancy at %s %s", line, d.sgr(dis[0], "("+dis[1]+")"))
		}
		return fmt.Sprintf("%s at %s", be.Err, line)
	case errors.As(err, &ae):
		switch ae.Kind {
		case asm.FileNotExist:
			return fmt.Sprintf("File %s does not exist.", d.sgr(sgrFile, ae.Token))
		case asm.WrongFormat:
			return fmt.Sprintf("File %s is of wrong format, expecting %s file.", d.sgr(sgrFile, ae.Token), asm.SourceExt)
		case asm.EmptyProgram:
			return "No instructions."
		}
	}
	return err.Error()
}
