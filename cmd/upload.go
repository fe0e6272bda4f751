/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)

*/
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/gmofishsauce/slip8/pkg/config"
	"github.com/gmofishsauce/slip8/pkg/device"
	"github.com/gmofishsauce/slip8/pkg/host"
)

var (
	uploadConfig string
	uploadDevice string
	uploadBaud   int
	uploadRun    bool
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload imageFile",
	Short: "Upload a .c8x image to the board over a serial line",
	Long: `Upload opens the serial line to the board that runs CHIP-8 images,
synchronizes with its firmware, checks the protocol version and writes
the image to memory at the load base (0x200 unless configured).

Settings come from slip8.yaml in the current directory, if present, or
the file named by --config. --device and --baud override the file.
Opening a USB serial port resets most boards, so the upload waits for
the reset before it starts.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(uploadConfig)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("device") {
			cfg.Device = uploadDevice
		}
		if cmd.Flags().Changed("baud") {
			cfg.Baud = uploadBaud
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return runUpload(cfg, args[0])
	},
}

func runUpload(cfg config.Config, imageFile string) error {
	image, err := readImage(imageFile)
	if err != nil {
		return err
	}

	d, err := device.Open(cfg.Device, cfg.Baud, cfg.ResetDelay)
	if err != nil {
		return err
	}
	atexit.Register(func() {
		d.Close()
	})

	if err := host.Upload(d, image, host.OptionsFrom(cfg, uploadRun)); err != nil {
		return err
	}
	log.Printf("%s: %d bytes uploaded to %s\n", imageFile, len(image), d.Name())
	return nil
}

func init() {
	rootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().StringVar(&uploadConfig, "config", "", "YAML settings file (default "+config.DefaultFile+")")
	uploadCmd.Flags().StringVar(&uploadDevice, "device", config.Default().Device, "serial device")
	uploadCmd.Flags().IntVar(&uploadBaud, "baud", config.Default().Baud, "baud rate")
	uploadCmd.Flags().BoolVar(&uploadRun, "run", false, "start the image after it is loaded")
}
