// Package ihex implements the Intel HEX record codec.
package ihex

// RecordType identifies one of the six standard Intel HEX record types.
type RecordType byte

const (
	// DataRecord carries payload bytes at a 16-bit address.
	DataRecord RecordType = 0x00
	// EndOfFileRecord terminates a HEX file.
	EndOfFileRecord RecordType = 0x01
	// ExtendedSegmentAddressRecord sets the segment base added (*16) to
	// subsequent data record addresses.
	ExtendedSegmentAddressRecord RecordType = 0x02
	// StartSegmentAddressRecord carries the CS:IP entry point, parsed but
	// not interpreted.
	StartSegmentAddressRecord RecordType = 0x03
	// ExtendedLinearAddressRecord sets the upper 16 bits of subsequent
	// data record addresses.
	ExtendedLinearAddressRecord RecordType = 0x04
	// StartLinearAddressRecord carries the EIP entry point, parsed but
	// not interpreted.
	StartLinearAddressRecord RecordType = 0x05
)

// String implements the fmt.Stringer interface.
func (t RecordType) String() string {
	switch t {
	case DataRecord:
		return "data"
	case EndOfFileRecord:
		return "end of file"
	case ExtendedSegmentAddressRecord:
		return "extended segment address"
	case StartSegmentAddressRecord:
		return "start segment address"
	case ExtendedLinearAddressRecord:
		return "extended linear address"
	case StartLinearAddressRecord:
		return "start linear address"
	}
	return "unknown"
}

// Record represents one parsed line of an Intel HEX file. The address is
// the 16-bit value as encoded in the line; its real-world meaning depends
// on the record type and the current address extension state.
type Record struct {
	Length   byte
	Address  uint16
	Type     RecordType
	Data     []byte
	Checksum byte
}

// checksum returns the two's complement of the sum of the record header
// and payload bytes, so that summing all record bytes including the
// checksum yields 0 mod 256.
func (r Record) checksum() byte {
	sum := byte(len(r.Data)) + byte(r.Address>>8) + byte(r.Address) + byte(r.Type)
	for _, b := range r.Data {
		sum += b
	}
	return -sum
}
