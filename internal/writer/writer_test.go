package writer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/retroenv/fzerodec/internal/car"
	"github.com/retroenv/fzerodec/internal/program"
	"github.com/retroenv/fzerodec/internal/verification"
	"github.com/retroenv/fzerodec/internal/world"
	"github.com/retroenv/retrogolib/assert"
)

func testProgram() *program.Program {
	app := program.New(0xAA0E31DE, verification.RegionUSA)

	var stats car.Stats
	for i := range stats.AcceleData {
		stats.AcceleData[i] = byte(i + 1)
	}
	stats.MaximumSpeed = 1234
	stats.SlipVector = 0x1F
	stats.DamageData = [5]byte{1, 2, 3, 4, 5}
	stats.DashHandleOver = 0xEE
	app.AddVehicle(2, stats)

	var rooms world.Ptr
	rooms[0][0] = 0xAB
	rooms[15][31] = 0xCD
	app.AddWorld(1, rooms)
	return app
}

func TestWriteText(t *testing.T) {
	buf := &bytes.Buffer{}
	assert.NoError(t, New(testProgram(), buf, Options{}).Write())
	out := buf.String()

	assert.Contains(t, out, "CRC32 checksum: aa0e31de")
	assert.Contains(t, out, "Region: U")
	assert.Contains(t, out, "Stats for car 2:")
	assert.Contains(t, out, "01 02 03 04 05 06 07 08 09 0A 0B 0C 0D 0E 0F 10\n")
	assert.Contains(t, out, "11 12 13\n")
	assert.Contains(t, out, "1,234 ($04D2)")
	assert.Contains(t, out, "31 ($1F)")
	assert.Contains(t, out, "crash=$01, graze=$02, on wall=$03, out of course=$04, bomb=$05")
	assert.Contains(t, out, "World 1 pointer table (Big Blue):")
	assert.Contains(t, out, "  00: AB 00")
	assert.True(t, strings.HasSuffix(out, "00 CD\n"))

	// dash handle table is printed with its overflow byte
	dashLines := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasSuffix(line, " EE") {
			dashLines++
		}
	}
	assert.Equal(t, 1, dashLines)
}

func TestWriteUnknownRegion(t *testing.T) {
	buf := &bytes.Buffer{}
	app := program.New(0x12345678, verification.RegionUnknown)
	assert.NoError(t, New(app, buf, Options{}).Write())
	assert.Equal(t, "CRC32 checksum: 12345678\nRegion: unknown\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	assert.NoError(t, New(testProgram(), buf, Options{JSON: true}).Write())

	var decoded struct {
		Checksum uint32 `json:"checksum"`
		Region   string `json:"region"`
		Vehicles []struct {
			Number int `json:"number"`
			Stats  struct {
				MaximumSpeed uint16 `json:"maximum_speed"`
				DamageData   []int  `json:"damage_data"`
			} `json:"stats"`
		} `json:"vehicles"`
		Worlds []struct {
			Name  string  `json:"name"`
			Rooms [][]int `json:"rooms"`
		} `json:"worlds"`
	}
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, uint32(0xAA0E31DE), decoded.Checksum)
	assert.Equal(t, "U", decoded.Region)
	assert.Len(t, decoded.Vehicles, 1)
	assert.Equal(t, 2, decoded.Vehicles[0].Number)
	assert.Equal(t, uint16(1234), decoded.Vehicles[0].Stats.MaximumSpeed)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, decoded.Vehicles[0].Stats.DamageData)
	assert.Len(t, decoded.Worlds, 1)
	assert.Equal(t, "Big Blue", decoded.Worlds[0].Name)
	assert.Len(t, decoded.Worlds[0].Rooms, world.Rows)
	assert.Equal(t, 0xCD, decoded.Worlds[0].Rooms[15][31])
}
