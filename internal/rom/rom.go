// Package rom provides read-only, bounds-checked access to a loaded cartridge image.
package rom

import (
	"fmt"
	"hash/crc32"
)

// MaxSize is the declared maximum capacity of a cartridge image in bytes.
const MaxSize = 0x80000

// Image is a read-only view of a loaded cartridge image. It is safe to share
// a single Image between goroutines, no method modifies the underlying data.
type Image struct {
	data []byte
}

// New returns an image backed by the given data. The data is not copied, the
// caller must not modify it afterwards.
func New(data []byte) *Image {
	return &Image{data: data}
}

// Checksum returns the CRC32 IEEE checksum of the image data.
func (img *Image) Checksum() uint32 {
	return crc32.ChecksumIEEE(img.data)
}

// ReadByte returns the byte at the given offset.
// The offset is checked against MaxSize and not against the actual length of
// the image, an offset between the image length and MaxSize passes the check and results
// in an index out of range panic.
func (img *Image) ReadByte(offset int) (byte, error) {
	if offset < 0 || offset > MaxSize {
		return 0, fmt.Errorf("%w: byte fetch at offset 0x%X", ErrOutOfRange, offset)
	}
	return img.data[offset], nil
}

// ReadWord returns the little endian 16 bit word at the given offset.
func (img *Image) ReadWord(offset int) (uint16, error) {
	high, err := img.ReadByte(offset + 1)
	if err != nil {
		return 0, err
	}
	low, err := img.ReadByte(offset)
	if err != nil {
		return 0, err
	}
	return uint16(high)<<8 | uint16(low), nil
}

// ReadBytes fills dst with the bytes starting at the given offset.
// dst is left in an undefined state if an error is returned.
func (img *Image) ReadBytes(offset int, dst []byte) error {
	for i := range dst {
		b, err := img.ReadByte(offset + i)
		if err != nil {
			return err
		}
		dst[i] = b
	}
	return nil
}
