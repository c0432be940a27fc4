package ihex

import "errors"

var (
	// ErrMalformedLine indicates a line that does not match the record
	// grammar `:LLAAAATT[DD...]CC`.
	ErrMalformedLine = errors.New("malformed line")
	// ErrUnknownRecordType indicates a record type outside 0x00..0x05.
	ErrUnknownRecordType = errors.New("unknown record type")
	// ErrLengthTypeMismatch indicates an address extension or start
	// address record with the wrong payload length.
	ErrLengthTypeMismatch = errors.New("record length does not match record type")
	// ErrChecksumMismatch indicates that the record bytes do not sum to
	// 0 mod 256.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrDataLengthMismatch indicates that the declared length field does
	// not match the decoded payload size.
	ErrDataLengthMismatch = errors.New("data length mismatch")
)
