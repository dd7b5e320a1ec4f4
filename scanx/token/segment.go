package token

import (
	"strconv"

	"github.com/go-faster/errors"
)

// SegmentSize is the length of one encoded payload byte: xor(2) | key(2) | checksum(4).
const SegmentSize = 8

// DecodeSegment decodes one payload segment into a plain byte.
func DecodeSegment(segment, expectedChecksum string) (byte, error) {
	if len(segment) < SegmentSize {
		return 0, ErrTooShort
	}

	if segment[4:SegmentSize] != expectedChecksum {
		return 0, ErrChecksumMismatch
	}

	x, err := parseHexByte(segment[0:2])
	if err != nil {
		return 0, err
	}
	k, err := parseHexByte(segment[2:4])
	if err != nil {
		return 0, err
	}

	return x ^ k, nil
}

// EncodeSegment is the inverse of DecodeSegment for the given mask byte r.
func EncodeSegment(b, r byte, checksum string) string {
	return hexByte(b^r) + hexByte(r) + checksum
}

func parseHexByte(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedHex, "parse %q", s)
	}
	return byte(v), nil
}

const hexDigits = "0123456789abcdef"

func hexByte(b byte) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0x0f]})
}
