// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string // cartridge image to decode
	Output string // output file, printed on console if empty
}

// Flags contains behavior options.
type Flags struct {
	Car     bool // decode the vehicle stats
	Map     bool // decode the world map pointers
	Vehicle int  // only decode this vehicle, 0 for all
	World   int  // only decode this world, 0 for all
	JSON    bool // write JSON instead of text
	Debug   bool
	Quiet   bool
}

// Program options of the decoder.
type Program struct {
	Parameters
	Flags
}
