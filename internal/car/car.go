// Package car decodes the vehicle statistics table of the cartridge image.
package car

import (
	"fmt"

	"github.com/retroenv/fzerodec/internal/rom"
)

// Count is the number of vehicles that have stats in the image.
const Count = 4

// Stats contains the decoded statistics of a single vehicle.
type Stats struct {
	AcceleData     [curveSize]byte      `json:"accele_data"`
	BrakeData      [wideCurveSize]byte  `json:"brake_data"` // same for every vehicle
	SlipVector     byte                 `json:"slip_vector"`
	GripVecspd     byte                 `json:"grip_vecspd"`
	SlipVecspd1    byte                 `json:"slip_vecspd1"`
	SlipVecspd2    byte                 `json:"slip_vecspd2"`
	MaximumSpeed   uint16               `json:"maximum_speed"`
	SlipSpeed      uint16               `json:"slip_speed"`
	GripLimit      uint16               `json:"grip_limit"`
	FrictionData   byte                 `json:"friction_data"`
	ReduceData     byte                 `json:"reduce_data"`
	DamageData     [damageDataSize]byte `json:"damage_data"` // indexed like DamageCauses
	RepairSpeed    uint16               `json:"repair_speed"`
	DamageSpeed    uint16               `json:"damage_speed"`
	PowerDownSens  uint16               `json:"power_down_sens"`
	MycarSpinInit  uint16               `json:"mycar_spin_init"`
	EnemySpinInit  uint16               `json:"enemy_spin_init"`
	DamageTime     byte                 `json:"damage_time"` // in frames
	HandleData     [curveSize]byte      `json:"handle_data"`
	DashHandle     [wideCurveSize]byte  `json:"dash_handle"`      // same for every vehicle
	DashHandleOver byte                 `json:"dash_handle_over"` // 33rd byte of the dash handle table
	SlideData      [slideSize]byte      `json:"slide_data"`       // same for every vehicle
}

// Decode reads the stats of the given vehicle from the image.
// Valid vehicle numbers are 1 to Count.
func Decode(img *rom.Image, vehicle int) (Stats, error) {
	if vehicle < 1 || vehicle > Count {
		return Stats{}, fmt.Errorf("%w: vehicle %d", rom.ErrInvalidIndex, vehicle)
	}

	r := reader{img: img, vehicle: vehicle}
	var s Stats

	r.readBytes(AcceleData, s.AcceleData[:])
	r.readBytes(BrakeData, s.BrakeData[:])
	s.SlipVector = r.readByte(SlipVector)
	s.GripVecspd = r.readByte(GripVecspd)
	s.SlipVecspd1 = r.readByte(SlipVecspd1)
	s.SlipVecspd2 = r.readByte(SlipVecspd2)
	s.MaximumSpeed = r.readWord(MaximumSpeed)
	s.SlipSpeed = r.readWord(SlipSpeed)
	s.GripLimit = r.readWord(GripLimit)
	s.FrictionData = r.readByte(FrictionData)
	s.ReduceData = r.readByte(ReduceData)
	for i, field := range DamageFields {
		s.DamageData[i] = r.readByte(field)
	}
	s.RepairSpeed = r.readWord(RepairSpeed)
	s.DamageSpeed = r.readWord(DamageSpeed)
	s.PowerDownSens = r.readWord(PowerDownSens)
	s.MycarSpinInit = r.readWord(MycarSpinInit)
	s.EnemySpinInit = r.readWord(EnemySpinInit)
	s.DamageTime = r.readByte(DamageTime)
	r.readBytes(HandleData, s.HandleData[:])
	r.readBytes(DashHandle, s.DashHandle[:])
	s.DashHandleOver = r.readByte(DashHandleOver)
	r.readBytes(SlideData, s.SlideData[:])

	if r.err != nil {
		return Stats{}, fmt.Errorf("decoding vehicle %d: %w", vehicle, r.err)
	}
	return s, nil
}

// DecodeAll reads the stats of all vehicles, the first entry is vehicle 1.
func DecodeAll(img *rom.Image) ([]Stats, error) {
	all := make([]Stats, 0, Count)
	for vehicle := 1; vehicle <= Count; vehicle++ {
		s, err := Decode(img, vehicle)
		if err != nil {
			return nil, err
		}
		all = append(all, s)
	}
	return all, nil
}

// reader reads fields for one vehicle and keeps the first error that occurred,
// all reads after an error are skipped.
type reader struct {
	img     *rom.Image
	vehicle int
	err     error
}

func (r *reader) readByte(f Field) byte {
	if r.err != nil {
		return 0
	}
	b, err := r.img.ReadByte(f.Offset(r.vehicle))
	if err != nil {
		r.err = fmt.Errorf("reading %s: %w", f.Name, err)
	}
	return b
}

func (r *reader) readWord(f Field) uint16 {
	if r.err != nil {
		return 0
	}
	w, err := r.img.ReadWord(f.Offset(r.vehicle))
	if err != nil {
		r.err = fmt.Errorf("reading %s: %w", f.Name, err)
	}
	return w
}

func (r *reader) readBytes(f Field, dst []byte) {
	if r.err != nil {
		return
	}
	if err := r.img.ReadBytes(f.Offset(r.vehicle), dst); err != nil {
		r.err = fmt.Errorf("reading %s: %w", f.Name, err)
	}
}
