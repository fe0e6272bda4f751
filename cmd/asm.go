/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)

*/
package cmd

import (
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gmofishsauce/slip8/pkg/asm"
)

var (
	asmStdout bool
	asmOut    string
	asmMode   string
	asmList   bool
)

// asmCmd represents the asm command
var asmCmd = &cobra.Command{
	Use:   "asm sourceFile",
	Short: "Assemble a .c8asm source file",
	Long: `Asm assembles exactly one .c8asm source file. Every line of the file
must be a statement; the file must end with a newline. Assembly stops at
the first line in error and no output is written in that case.

By default the image is written beside the source as NAME.c8x. --out
names the image instead, --stdout prints the bytes rather than writing
them and --mode selects any of binary, stdout, listing or hex.
`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAsm(cmd.OutOrStdout(), newDiagnostics(cmd.ErrOrStderr()), args[0])
	},
}

func runAsm(out io.Writer, diag *diagnostics, sourceFile string) error {
	prog, err := asm.Assemble(sourceFile)
	if err != nil {
		return diag.report(err)
	}
	if strings.TrimSpace(prog.Unterminated) != "" {
		log.Printf("warning: %s: no newline after %q, it was not assembled\n", sourceFile, prog.Unterminated)
	}

	mode := asm.ModeBinary
	if asmStdout {
		mode = asm.ModeStdout
	}
	if asmMode != "" {
		if mode, err = asm.ParseMode(asmMode); err != nil {
			return diag.report(err)
		}
	}

	switch mode {
	case asm.ModeBinary:
		name := asmOut
		if name == "" {
			name = strings.TrimSuffix(sourceFile, filepath.Ext(sourceFile))
		}
		written, err := asm.WriteBinary(name, prog.Image)
		if err != nil {
			return diag.report(err)
		}
		log.Printf("wrote %d bytes to %s\n", len(prog.Image), written)
	case asm.ModeListing:
		err = asm.WriteListing(out, prog.Lines, prog.Image)
	default:
		err = asm.WriteTo(out, mode, prog.Image)
	}
	if err == nil && asmList && mode != asm.ModeListing {
		err = asm.WriteListing(out, prog.Lines, prog.Image)
	}
	if err != nil {
		return diag.report(err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(asmCmd)

	asmCmd.Flags().BoolVar(&asmStdout, "stdout", false, "print the image bytes instead of writing a file")
	asmCmd.Flags().StringVarP(&asmOut, "out", "o", "", "name of the image file, .c8x is added")
	asmCmd.Flags().StringVar(&asmMode, "mode", "", "output mode: binary, stdout, listing or hex")
	asmCmd.Flags().BoolVar(&asmList, "list", false, "also print a listing after a successful build")
}
