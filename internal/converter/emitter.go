package converter

import (
	"context"
	"io"

	"github.com/retroenv/ihexconv/internal/ihex"
)

// ChunkSize is the number of data bytes emitted per data record.
const ChunkSize = 16

// Emitter turns a binary byte sequence into Intel HEX records. An
// extended linear address record is emitted whenever the upper 16 bits
// of the current address differ from the previously emitted value,
// including before the first data record.
type Emitter struct {
	w       io.Writer
	address uint32
	upper   int64 // last emitted upper 16 bits, -1 before the first record
}

// NewEmitter creates an emitter writing records for data starting at the
// given address.
func NewEmitter(w io.Writer, startAddress uint32) *Emitter {
	return &Emitter{
		w:       w,
		address: startAddress,
		upper:   -1,
	}
}

// Emit writes the given bytes as data records of up to ChunkSize bytes
// each, interleaved with extended linear address records on 64KiB
// boundary crossings. It can be called multiple times for consecutive
// input chunks.
func (e *Emitter) Emit(ctx context.Context, buf []byte) error {
	for len(buf) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		n := ChunkSize
		if len(buf) < n {
			n = len(buf)
		}

		if err := e.extendAddress(); err != nil {
			return err
		}

		rec := ihex.Record{
			Type:    ihex.DataRecord,
			Address: uint16(e.address),
			Data:    buf[:n],
		}
		if err := rec.Write(e.w); err != nil {
			return err
		}

		e.address += uint32(n)
		buf = buf[n:]
	}

	return nil
}

// extendAddress emits an extended linear address record if the upper
// 16 bits of the current address changed since the last emitted record.
func (e *Emitter) extendAddress() error {
	upper := int64(e.address >> 16)
	if upper == e.upper {
		return nil
	}

	rec := ihex.Record{
		Type: ihex.ExtendedLinearAddressRecord,
		Data: []byte{byte(upper >> 8), byte(upper)},
	}
	if err := rec.Write(e.w); err != nil {
		return err
	}

	e.upper = upper
	return nil
}

// Terminate writes the end of file record. It is emitted exactly once at
// the end of the output, even if no data was emitted.
func (e *Emitter) Terminate() error {
	rec := ihex.Record{
		Type: ihex.EndOfFileRecord,
	}
	return rec.Write(e.w)
}
