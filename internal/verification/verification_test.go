package verification

import (
	"testing"

	"github.com/retroenv/fzerodec/internal/rom"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestIdentify(t *testing.T) {
	img := rom.New(make([]byte, 0x100))

	region, checksum := Identify(img)
	assert.Equal(t, RegionUnknown, region)
	assert.Equal(t, img.Checksum(), checksum)

	region, checksum = IdentifyAndLog(log.NewTestLogger(t), img)
	assert.Equal(t, RegionUnknown, region)
	assert.Equal(t, img.Checksum(), checksum)
}

func TestKnownChecksums(t *testing.T) {
	assert.Len(t, knownChecksums, 3)
	assert.Equal(t, RegionUSA, knownChecksums[0xAA0E31DE])
	assert.Equal(t, RegionJapan, knownChecksums[0x7681EFC1])
	assert.Equal(t, RegionEurope, knownChecksums[0xF1D8F5DA])
}
