package converter

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/retroenv/ihexconv/internal/ihex"
	"github.com/retroenv/ihexconv/internal/image"
)

// ErrAddressOverflow indicates a data record whose bytes would extend
// beyond the 32-bit address space.
var ErrAddressOverflow = errors.New("address overflow")

const addressSpaceSize = 1 << 32

// Reconstructor rebuilds a binary image from a sequence of parsed Intel
// HEX records. It tracks the segment and linear address extension state
// and combines them additively with the record address:
// linear*65536 + segment*16 + address. Real-world producers use only one
// of the two mechanisms per file, but the format does not forbid mixing.
type Reconstructor struct {
	img         *image.Image
	segmentBase uint32
	linearUpper uint32
}

// NewReconstructor creates a reconstructor with an empty image and the
// given gap filler byte.
func NewReconstructor(filler byte) *Reconstructor {
	return &Reconstructor{
		img: image.New(filler),
	}
}

// Feed processes one parsed record. It returns true when an end of file
// record is seen, records following it are not consumed.
func (r *Reconstructor) Feed(rec ihex.Record) (bool, error) {
	switch rec.Type {
	case ihex.DataRecord:
		offset := uint64(r.linearUpper)<<16 + uint64(r.segmentBase)*16 + uint64(rec.Address)
		if offset+uint64(len(rec.Data)) > addressSpaceSize {
			return false, fmt.Errorf("%w: %d bytes at offset $%X",
				ErrAddressOverflow, len(rec.Data), offset)
		}
		r.img.Write(uint32(offset), rec.Data)

	case ihex.EndOfFileRecord:
		return true, nil

	case ihex.ExtendedSegmentAddressRecord:
		r.segmentBase = uint32(binary.BigEndian.Uint16(rec.Data))

	case ihex.ExtendedLinearAddressRecord:
		r.linearUpper = uint32(binary.BigEndian.Uint16(rec.Data))

	case ihex.StartSegmentAddressRecord, ihex.StartLinearAddressRecord:
		// entry point records are validated but their values are discarded
	}

	return false, nil
}

// Bytes materializes the contiguous range covered by the fed data
// records, gaps inside the range filled with the filler byte. The result
// is empty if no data record was fed.
func (r *Reconstructor) Bytes() []byte {
	return r.img.Bytes()
}
