package ihex

import (
	"fmt"
	"io"
)

// Write serializes the record as one uppercase hex line terminated by a
// newline and writes it to the given writer. The length field and the
// checksum are recomputed from the payload, caller supplied values are
// not trusted. ParseRecord on the written line yields an equivalent record.
func (r Record) Write(w io.Writer) error {
	r.Length = byte(len(r.Data))
	r.Checksum = r.checksum()

	line := fmt.Sprintf(":%02X%04X%02X%X%02X\n",
		r.Length, r.Address, byte(r.Type), r.Data, r.Checksum)

	if _, err := io.WriteString(w, line); err != nil {
		return fmt.Errorf("writing %s record: %w", r.Type, err)
	}
	return nil
}
