/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)

*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gmofishsauce/slip8/pkg/asm"
)

var dumpMode string

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump imageFile",
	Short: "Print a .c8x image",
	Long: `Dump prints an image written by asm, either as a hex dump at the
addresses the interpreter loads it to (--mode hex, the default) or as
the list of byte values (--mode stdout).`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDump(cmd.OutOrStdout(), args[0])
	},
}

func readImage(imageFile string) ([]byte, error) {
	image, err := os.ReadFile(imageFile)
	if err != nil {
		return nil, err
	}
	if len(image)%2 != 0 {
		return nil, fmt.Errorf("%s: odd length %d, not an image", imageFile, len(image))
	}
	return image, nil
}

func runDump(out io.Writer, imageFile string) error {
	mode, err := asm.ParseMode(dumpMode)
	if err != nil {
		return err
	}
	image, err := readImage(imageFile)
	if err != nil {
		return err
	}
	return asm.WriteTo(out, mode, image)
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringVar(&dumpMode, "mode", "hex", "hex or stdout")
}
