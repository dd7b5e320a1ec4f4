package token

import "github.com/go-faster/errors"

var (
	ErrEmptyToken       = errors.New("access token is empty")
	ErrEmptyKey         = errors.New("access token key is empty")
	ErrEmptyPayload     = errors.New("access token payload is empty")
	ErrPayloadTooShort  = errors.New("access token payload too short")
	ErrTooShort         = errors.New("encrypted segment too short")
	ErrChecksumMismatch = errors.New("invalid key or corrupted data")
	ErrMalformedHex     = errors.New("segment field is not hexadecimal")
	ErrInvalidKeyLength = errors.New("key must be exactly 36 bytes")
	ErrChecksumOverflow = errors.New("key checksum does not fit 4 hex digits")
)
