// Package loader handles cartridge image loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/fzerodec/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

// CopierHeaderSize is the size of the header that copier devices prepend to a dump.
const CopierHeaderSize = 512

// maxReadSize limits the amount of data read from the input. Anything beyond
// the cartridge capacity is ignored.
const maxReadSize = 2 * rom.MaxSize

// Loader handles loading cartridge images from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new cartridge image loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads the cartridge image from the given file.
func (l *Loader) Load(fileName string) (*rom.Image, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", fileName, err)
	}
	defer func() { _ = file.Close() }()

	img, err := l.LoadReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading file %s: %w", fileName, err)
	}
	return img, nil
}

// LoadReader reads the cartridge image from the given reader.
func (l *Loader) LoadReader(reader io.Reader) (*rom.Image, error) {
	data, err := io.ReadAll(io.LimitReader(reader, maxReadSize))
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	return l.LoadFromBytes(data)
}

// LoadFromBytes creates a cartridge image from the given data.
// A copier header is detected by the data size and stripped. The image must
// hold at least rom.MaxSize bytes, only the first rom.MaxSize bytes are used.
func (l *Loader) LoadFromBytes(data []byte) (*rom.Image, error) {
	if len(data)%1024 == CopierHeaderSize {
		l.logger.Debug("Stripping copier header", log.Int("size", CopierHeaderSize))
		data = data[CopierHeaderSize:]
	}

	if len(data) < rom.MaxSize {
		return nil, fmt.Errorf("%w: size 0x%X, expected 0x%X", ErrImageTooSmall, len(data), rom.MaxSize)
	}
	if len(data) > rom.MaxSize {
		l.logger.Warn("Image is larger than expected, ignoring trailing data",
			log.Hex("size", len(data)),
			log.Hex("expected", rom.MaxSize))
		data = data[:rom.MaxSize]
	}

	return rom.New(data), nil
}
