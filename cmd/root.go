/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)

*/
package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/gmofishsauce/slip8/pkg/device"
	"github.com/gmofishsauce/slip8/pkg/host"
)

var debugFlag bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slip8",
	Short: "SLIP-8 the CHIP-8 compiler",
	Long: `SLIP-8 translates CHIP-8 assembly language into machine code images
and uploads them to a board that runs them.

Each line of a .c8asm source file holds exactly one statement: a
mnemonic followed by operands separated by single spaces. All numbers
and addresses are written in hex. The image is written to a .c8x file,
the flat big endian machine code the interpreter loads at 0x200.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFlags(log.Lmsgprefix | log.Lmicroseconds)
		log.SetPrefix(cmd.Name() + ": ")
		log.SetOutput(cmd.ErrOrStderr())
		device.SetDebug(debugFlag)
		host.SetDebug(debugFlag)
	},
}

// Execute adds all child commands to the root command and runs it. Errors
// have already been reported when it returns.
func Execute() error {
	cmd, err := rootCmd.ExecuteC()
	if err != nil && !isReported(err) {
		cmd.PrintErrln("Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "trace serial traffic")
}
