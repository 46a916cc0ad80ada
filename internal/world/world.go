// Package world decodes the per world map pointer tables of the cartridge image.
package world

import (
	"fmt"

	"github.com/retroenv/fzerodec/internal/rom"
)

// Count is the number of worlds that have map data in the image.
const Count = 8

// Dimensions of the world room grid.
const (
	Rows    = 16
	Columns = 32
)

// Ptr is the grid of room pointer indices of a world.
type Ptr [Rows][Columns]byte

// Decode reads the room pointer grid of the given world from the image.
// Valid world numbers are 1 to Count.
func Decode(img *rom.Image, world int) (Ptr, error) {
	if world < 1 || world > Count {
		return Ptr{}, fmt.Errorf("%w: world %d", rom.ErrInvalidIndex, world)
	}

	table := Tables[world-1][0]

	var p Ptr
	for row := range p {
		if err := img.ReadBytes(table.Start+row*Columns, p[row][:]); err != nil {
			return Ptr{}, fmt.Errorf("decoding world %d row %d: %w", world, row, err)
		}
	}
	return p, nil
}

// DecodeAll reads the room pointer grids of all worlds, the first entry is world 1.
func DecodeAll(img *rom.Image) ([]Ptr, error) {
	all := make([]Ptr, 0, Count)
	for world := 1; world <= Count; world++ {
		p, err := Decode(img, world)
		if err != nil {
			return nil, err
		}
		all = append(all, p)
	}
	return all, nil
}

// Name returns the name of the given world or an empty string for an invalid world number.
func Name(world int) string {
	if world < 1 || world > Count {
		return ""
	}
	return Names[world-1]
}
