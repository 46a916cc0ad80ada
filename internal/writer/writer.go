// Package writer implements the output of decoded cartridge data.
package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/fzerodec/internal/car"
	"github.com/retroenv/fzerodec/internal/program"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dataBytesPerLine = 16

// nameWidth aligns the values of the text output.
const nameWidth = 18

// Writer writes the decoded data of a program.
type Writer struct {
	app     *program.Program
	options Options
	writer  io.Writer
	printer *message.Printer
}

// Options of the writer.
type Options struct {
	JSON bool // output indented JSON instead of text
}

// New creates a new writer.
func New(app *program.Program, writer io.Writer, options Options) *Writer {
	return &Writer{
		app:     app,
		options: options,
		writer:  writer,
		printer: message.NewPrinter(language.English),
	}
}

// Write outputs all decoded data of the program.
func (w Writer) Write() error {
	if w.options.JSON {
		encoder := json.NewEncoder(w.writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(w.app); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	}

	if err := w.WriteHeader(); err != nil {
		return err
	}
	for _, vehicle := range w.app.Vehicles {
		if err := w.WriteVehicle(vehicle); err != nil {
			return fmt.Errorf("writing vehicle %d: %w", vehicle.Number, err)
		}
	}
	for _, world := range w.app.Worlds {
		if err := w.WriteWorld(world); err != nil {
			return fmt.Errorf("writing world %d: %w", world.Number, err)
		}
	}
	return nil
}

// WriteHeader writes the CRC32 checksum and the detected region.
func (w Writer) WriteHeader() error {
	region := string(w.app.Region)
	if region == "" {
		region = "unknown"
	}
	if _, err := fmt.Fprintf(w.writer, "CRC32 checksum: %08x\nRegion: %s\n", w.app.Checksum, region); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	return nil
}

// WriteVehicle writes the stats of a vehicle, one field per line.
func (w Writer) WriteVehicle(vehicle program.Vehicle) error {
	s := vehicle.Stats
	if _, err := fmt.Fprintf(w.writer, "\nStats for car %d:\n", vehicle.Number); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}

	lines := []struct {
		name  string
		write func(name string) error
	}{
		{car.AcceleData.Name, func(name string) error { return w.writeBytes(name, s.AcceleData[:]) }},
		{car.BrakeData.Name, func(name string) error { return w.writeBytes(name, s.BrakeData[:]) }},
		{car.SlipVector.Name, func(name string) error { return w.writeValue(name, uint16(s.SlipVector), 2) }},
		{car.GripVecspd.Name, func(name string) error { return w.writeValue(name, uint16(s.GripVecspd), 2) }},
		{car.SlipVecspd1.Name, func(name string) error { return w.writeValue(name, uint16(s.SlipVecspd1), 2) }},
		{car.SlipVecspd2.Name, func(name string) error { return w.writeValue(name, uint16(s.SlipVecspd2), 2) }},
		{car.MaximumSpeed.Name, func(name string) error { return w.writeValue(name, s.MaximumSpeed, 4) }},
		{car.SlipSpeed.Name, func(name string) error { return w.writeValue(name, s.SlipSpeed, 4) }},
		{car.GripLimit.Name, func(name string) error { return w.writeValue(name, s.GripLimit, 4) }},
		{car.FrictionData.Name, func(name string) error { return w.writeValue(name, uint16(s.FrictionData), 2) }},
		{car.ReduceData.Name, func(name string) error { return w.writeValue(name, uint16(s.ReduceData), 2) }},
		{"damage_data", func(name string) error { return w.writeDamage(name, s.DamageData) }},
		{car.RepairSpeed.Name, func(name string) error { return w.writeValue(name, s.RepairSpeed, 4) }},
		{car.DamageSpeed.Name, func(name string) error { return w.writeValue(name, s.DamageSpeed, 4) }},
		{car.PowerDownSens.Name, func(name string) error { return w.writeValue(name, s.PowerDownSens, 4) }},
		{car.MycarSpinInit.Name, func(name string) error { return w.writeValue(name, s.MycarSpinInit, 4) }},
		{car.EnemySpinInit.Name, func(name string) error { return w.writeValue(name, s.EnemySpinInit, 4) }},
		{car.DamageTime.Name, func(name string) error { return w.writeValue(name, uint16(s.DamageTime), 2) }},
		{car.HandleData.Name, func(name string) error { return w.writeBytes(name, s.HandleData[:]) }},
		{car.DashHandle.Name, func(name string) error {
			return w.writeBytes(name, append(s.DashHandle[:], s.DashHandleOver))
		}},
		{car.SlideData.Name, func(name string) error { return w.writeBytes(name, s.SlideData[:]) }},
	}

	for _, line := range lines {
		if err := line.write(line.name); err != nil {
			return fmt.Errorf("writing %s: %w", line.name, err)
		}
	}
	return nil
}

// WriteWorld writes the room pointer grid of a world, one row per line.
func (w Writer) WriteWorld(world program.World) error {
	if _, err := fmt.Fprintf(w.writer, "\nWorld %d pointer table (%s):\n", world.Number, world.Name); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	for i, row := range world.Rooms {
		if _, err := fmt.Fprintf(w.writer, "  %02d: %s\n", i, hexBytes(row[:])); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return nil
}

// writeValue writes a scalar value as decimal and hex with the given number of hex digits.
func (w Writer) writeValue(name string, value uint16, digits int) error {
	if _, err := w.printer.Fprintf(w.writer, "  %-*s %d ($%0*X)\n", nameWidth, name, value, digits, value); err != nil {
		return fmt.Errorf("writing value: %w", err)
	}
	return nil
}

func (w Writer) writeDamage(name string, damage [5]byte) error {
	parts := make([]string, len(damage))
	for i, value := range damage {
		parts[i] = fmt.Sprintf("%s=$%02X", car.DamageCauses[i], value)
	}
	if _, err := fmt.Fprintf(w.writer, "  %-*s %s\n", nameWidth, name, strings.Join(parts, ", ")); err != nil {
		return fmt.Errorf("writing damage: %w", err)
	}
	return nil
}

// writeBytes writes a byte array with dataBytesPerLine bytes per line.
func (w Writer) writeBytes(name string, data []byte) error {
	label := name
	for i := 0; i < len(data); i += dataBytesPerLine {
		end := min(i+dataBytesPerLine, len(data))
		if _, err := fmt.Fprintf(w.writer, "  %-*s %s\n", nameWidth, label, hexBytes(data[i:end])); err != nil {
			return fmt.Errorf("writing data line: %w", err)
		}
		label = ""
	}
	return nil
}

func hexBytes(data []byte) string {
	buf := &strings.Builder{}
	for i, b := range data {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%02X", b)
	}
	return buf.String()
}
