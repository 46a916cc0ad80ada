// Package program represents the decoded data of a cartridge image.
package program

import (
	"github.com/retroenv/fzerodec/internal/car"
	"github.com/retroenv/fzerodec/internal/verification"
	"github.com/retroenv/fzerodec/internal/world"
)

// Vehicle is the decoded stats of a single vehicle.
type Vehicle struct {
	Number int       `json:"number"`
	Stats  car.Stats `json:"stats"`
}

// World is the decoded room pointer grid of a single world.
type World struct {
	Number int       `json:"number"`
	Name   string    `json:"name"`
	Rooms  world.Ptr `json:"rooms"`
}

// Program contains all data decoded from a cartridge image.
type Program struct {
	Checksum uint32              `json:"checksum"`
	Region   verification.Region `json:"region,omitempty"`

	Vehicles []Vehicle `json:"vehicles,omitempty"`
	Worlds   []World   `json:"worlds,omitempty"`
}

// New creates a new program for an image with the given checksum and region.
func New(checksum uint32, region verification.Region) *Program {
	return &Program{
		Checksum: checksum,
		Region:   region,
	}
}

// AddVehicle adds the decoded stats of a vehicle.
func (p *Program) AddVehicle(number int, stats car.Stats) {
	p.Vehicles = append(p.Vehicles, Vehicle{Number: number, Stats: stats})
}

// AddWorld adds the decoded room pointer grid of a world.
func (p *Program) AddWorld(number int, rooms world.Ptr) {
	p.Worlds = append(p.Worlds, World{
		Number: number,
		Name:   world.Name(number),
		Rooms:  rooms,
	})
}
