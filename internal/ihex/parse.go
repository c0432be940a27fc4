package ihex

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// minimum line length: start code, length, address, type and checksum fields
const minLineLength = 1 + 2 + 4 + 2 + 2

// ParseRecord parses one line of an Intel HEX file into a record.
// An optional trailing carriage return is stripped before processing,
// hex digits are accepted in either case. The returned error wraps one
// of the sentinel errors of this package and contains the offending
// line content.
func ParseRecord(line string) (Record, error) {
	line = strings.TrimSuffix(line, "\r")

	if len(line) < minLineLength || line[0] != ':' || len(line)%2 == 0 {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	buf, err := hex.DecodeString(line[1:])
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	rec := Record{
		Length:   buf[0],
		Address:  binary.BigEndian.Uint16(buf[1:3]),
		Type:     RecordType(buf[3]),
		Data:     buf[4 : len(buf)-1],
		Checksum: buf[len(buf)-1],
	}

	if rec.Type > StartLinearAddressRecord {
		return Record{}, fmt.Errorf("%w %02X: %q", ErrUnknownRecordType, byte(rec.Type), line)
	}

	switch rec.Type {
	case ExtendedSegmentAddressRecord, ExtendedLinearAddressRecord:
		if rec.Length != 2 {
			return Record{}, fmt.Errorf("%w: %s record with length %d: %q",
				ErrLengthTypeMismatch, rec.Type, rec.Length, line)
		}

	case StartSegmentAddressRecord, StartLinearAddressRecord:
		if rec.Length != 4 {
			return Record{}, fmt.Errorf("%w: %s record with length %d: %q",
				ErrLengthTypeMismatch, rec.Type, rec.Length, line)
		}
	}

	var sum byte
	for _, b := range buf {
		sum += b
	}
	if sum != 0 {
		return Record{}, fmt.Errorf("%w: %q", ErrChecksumMismatch, line)
	}

	if int(rec.Length) != len(rec.Data) {
		return Record{}, fmt.Errorf("%w: declared %d, got %d bytes: %q",
			ErrDataLengthMismatch, rec.Length, len(rec.Data), line)
	}

	return rec, nil
}
