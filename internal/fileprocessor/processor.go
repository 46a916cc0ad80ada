// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/fzerodec/internal/car"
	"github.com/retroenv/fzerodec/internal/loader"
	"github.com/retroenv/fzerodec/internal/options"
	"github.com/retroenv/fzerodec/internal/program"
	"github.com/retroenv/fzerodec/internal/rom"
	"github.com/retroenv/fzerodec/internal/verification"
	"github.com/retroenv/fzerodec/internal/world"
	"github.com/retroenv/fzerodec/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	img, err := loader.New(logger).Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading cartridge: %w", err)
	}

	app, err := Decode(ctx, logger, img, opts)
	if err != nil {
		return err
	}

	if opts.Output == "" {
		return writeOutput(app, os.Stdout, opts)
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return writeAndClose(app, file, opts)
}

// Decode identifies the image and decodes the data selected by the options.
// Any decode error aborts the processing, the partial result is discarded.
func Decode(ctx context.Context, logger *log.Logger, img *rom.Image, opts options.Program) (*program.Program, error) {
	region, checksum := verification.IdentifyAndLog(logger, img)

	app := program.New(checksum, region)

	if opts.Car {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := decodeVehicles(logger, img, opts.Vehicle, app); err != nil {
			return nil, fmt.Errorf("getting car stats: %w", err)
		}
	}

	if opts.Map {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := decodeWorlds(logger, img, opts.World, app); err != nil {
			return nil, fmt.Errorf("getting world pointers: %w", err)
		}
	}

	return app, nil
}

// decodeVehicles decodes the selected vehicle or all vehicles if vehicle is 0.
func decodeVehicles(logger *log.Logger, img *rom.Image, vehicle int, app *program.Program) error {
	if vehicle != 0 {
		stats, err := car.Decode(img, vehicle)
		if err != nil {
			return err
		}
		app.AddVehicle(vehicle, stats)
		logger.Debug("Decoded car stats", log.Int("vehicle", vehicle))
		return nil
	}

	all, err := car.DecodeAll(img)
	if err != nil {
		return err
	}
	for i, stats := range all {
		app.AddVehicle(i+1, stats)
	}
	logger.Debug("Decoded car stats", log.Int("vehicles", len(all)))
	return nil
}

// decodeWorlds decodes the selected world or all worlds if number is 0.
func decodeWorlds(logger *log.Logger, img *rom.Image, number int, app *program.Program) error {
	if number != 0 {
		rooms, err := world.Decode(img, number)
		if err != nil {
			return err
		}
		app.AddWorld(number, rooms)
		logger.Debug("Decoded world pointers",
			log.Int("world", number),
			log.String("name", world.Name(number)))
		return nil
	}

	all, err := world.DecodeAll(img)
	if err != nil {
		return err
	}
	for i, rooms := range all {
		app.AddWorld(i+1, rooms)
	}
	logger.Debug("Decoded world pointers", log.Int("worlds", len(all)))
	return nil
}

func writeOutput(app *program.Program, output io.Writer, opts options.Program) error {
	w := writer.New(app, output, writer.Options{JSON: opts.JSON})
	if err := w.Write(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// writeAndClose writes the output and closes the writer. A failed close is
// reported as buffered data of the output file may be lost.
func writeAndClose(app *program.Program, output io.WriteCloser, opts options.Program) error {
	if err := writeOutput(app, output, opts); err != nil {
		_ = output.Close()
		return err
	}
	if err := output.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version string) {
	if opts.Quiet {
		return
	}
	logger.Info("fzerodec", log.String("version", version))
}
