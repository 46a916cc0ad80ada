// Package cli handles command line interface logic
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/fzerodec/internal/car"
	"github.com/retroenv/fzerodec/internal/options"
	"github.com/retroenv/fzerodec/internal/world"
	"github.com/spf13/cobra"
)

// RunFunc is called with the parsed options once the command line is valid.
type RunFunc func(ctx context.Context, opts options.Program) error

// NewCommand returns the root command of the decoder. The version string is
// shown by the --version flag.
func NewCommand(version string, run RunFunc) *cobra.Command {
	var opts options.Program

	cmd := &cobra.Command{
		Use:   "fzerodec [options] <rom file>",
		Short: "Decode game data tables of an F-Zero cartridge image",
		Long: `fzerodec decodes the vehicle statistics and the world map pointer tables
of a headerless or copier headered F-Zero SNES cartridge image.

Example:
  fzerodec --car rom.sfc
  fzerodec --map --world 7 --json -o mute_city.json rom.sfc`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Input = args[0]
			}
			if err := validateOptions(opts); err != nil {
				return err
			}
			return run(cmd.Context(), opts)
		},
	}

	readOptionFlags(cmd, &opts)
	return cmd
}

func readOptionFlags(cmd *cobra.Command, opts *options.Program) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.Input, "file", "i", "", "name of the input ROM file")
	flags.StringVarP(&opts.Output, "output", "o", "", "name of the output file, printed on console if no name given")
	flags.BoolVar(&opts.Car, "car", false, "decode car data")
	flags.BoolVar(&opts.Map, "map", false, "decode map data")
	flags.IntVar(&opts.Vehicle, "vehicle", 0, fmt.Sprintf("only decode the car data of this vehicle (1-%d)", car.Count))
	flags.IntVar(&opts.World, "world", 0, fmt.Sprintf("only decode the map data of this world (1-%d)", world.Count))
	flags.BoolVar(&opts.JSON, "json", false, "output in JSON format")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "perform operations quietly")
}

// validateOptions checks the option combination before any file is opened.
func validateOptions(opts options.Program) error {
	switch {
	case opts.Input == "":
		return errors.New("no input file given")
	case !opts.Car && !opts.Map:
		return errors.New("nothing to decode, pass --car and/or --map")
	case opts.Vehicle < 0 || opts.Vehicle > car.Count:
		return fmt.Errorf("vehicle %d out of range 1-%d", opts.Vehicle, car.Count)
	case opts.World < 0 || opts.World > world.Count:
		return fmt.Errorf("world %d out of range 1-%d", opts.World, world.Count)
	case opts.Vehicle != 0 && !opts.Car:
		return errors.New("--vehicle requires --car")
	case opts.World != 0 && !opts.Map:
		return errors.New("--world requires --map")
	case opts.Debug && opts.Quiet:
		return errors.New("--debug and --quiet can not be combined")
	}
	return nil
}
