// Package image implements a sparse 32-bit address space image.
package image

// DefaultFiller is the default byte value for gaps inside the written range.
const DefaultFiller = 0xFF

// Image is a sparse mapping from absolute 32-bit offsets to byte values.
// It tracks the lowest and highest written offsets to bound the final
// contiguous output. Memory usage is proportional to the written bytes.
type Image struct {
	data    map[uint32]byte
	filler  byte
	lowest  uint32
	highest uint64 // highest written offset plus one
	written bool
}

// New creates an empty image with the given gap filler byte.
func New(filler byte) *Image {
	return &Image{
		data:   map[uint32]byte{},
		filler: filler,
	}
}

// Write stores the given bytes at consecutive offsets starting at offset.
// The caller guarantees that offset+len(buf) does not exceed the 32-bit
// address space.
func (img *Image) Write(offset uint32, buf []byte) {
	if len(buf) == 0 {
		return
	}

	for i, b := range buf {
		img.data[offset+uint32(i)] = b
	}

	if !img.written || offset < img.lowest {
		img.lowest = offset
	}
	if end := uint64(offset) + uint64(len(buf)); end > img.highest {
		img.highest = end
	}
	img.written = true
}

// Range returns the lowest written offset and the highest written offset
// plus one. Both are 0 for an empty image.
func (img *Image) Range() (uint32, uint64) {
	if !img.written {
		return 0, 0
	}
	return img.lowest, img.highest
}

// Bytes materializes the contiguous range from the lowest to the highest
// written offset. Offsets inside the range that were never written are
// filled with the filler byte. The result is empty if nothing was written.
func (img *Image) Bytes() []byte {
	if !img.written {
		return nil
	}

	buf := make([]byte, img.highest-uint64(img.lowest))
	for i := range buf {
		b, ok := img.data[img.lowest+uint32(i)]
		if !ok {
			b = img.filler
		}
		buf[i] = b
	}
	return buf
}
