// Package options contains the program options.
package options

import "github.com/retroenv/ihexconv/internal/image"

// Program options of the converter.
type Program struct {
	Filler uint8  // gap filler byte for hex2bin
	Start  uint32 // start address for bin2hex

	Debug bool
	Quiet bool
}

// New returns a new options instance with default options.
func New() Program {
	return Program{
		Filler: image.DefaultFiller,
	}
}
