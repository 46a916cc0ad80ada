package loader

import "errors"

// ErrImageTooSmall is returned when the image holds fewer bytes than the
// declared cartridge capacity.
var ErrImageTooSmall = errors.New("image too small")
