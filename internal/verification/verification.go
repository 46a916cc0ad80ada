// Package verification identifies known cartridge image variants by their checksum.
package verification

import (
	"github.com/retroenv/fzerodec/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

// Region of a known cartridge image release.
type Region string

// Known image regions.
const (
	RegionUSA     Region = "U"
	RegionJapan   Region = "J"
	RegionEurope  Region = "E"
	RegionUnknown Region = ""
)

// knownChecksums maps the CRC32 of unmodified, headerless images to their region.
var knownChecksums = map[uint32]Region{
	0xAA0E31DE: RegionUSA,
	0x7681EFC1: RegionJapan,
	0xF1D8F5DA: RegionEurope,
}

// Identify returns the region of the image and its checksum. An unknown
// checksum results in RegionUnknown.
func Identify(img *rom.Image) (Region, uint32) {
	checksum := img.Checksum()
	return knownChecksums[checksum], checksum
}

// IdentifyAndLog identifies the image and logs the result. An unknown checksum is
// reported as a warning only, decoding can proceed with possibly wrong results.
func IdentifyAndLog(logger *log.Logger, img *rom.Image) (Region, uint32) {
	region, checksum := Identify(img)
	if region == RegionUnknown {
		logger.Warn("Unexpected checksum, results may not be as intended",
			log.Hex("checksum", checksum))
		return region, checksum
	}

	logger.Info("Original ROM detected",
		log.String("region", string(region)),
		log.Hex("checksum", checksum))
	return region, checksum
}
