package token

import "strings"

// KeySize is the length of the key prefix of every access token.
const KeySize = 36

// Split separates a token into its key prefix and encrypted payload.
// A token not longer than KeySize yields an empty payload.
func Split(token string) (key, payload string) {
	if len(token) <= KeySize {
		return token, ""
	}
	return token[:KeySize], token[KeySize:]
}

// Decode reverses the payload obfuscation. Decoding is all-or-nothing:
// the first failing segment aborts the whole token.
func Decode(token string) (string, error) {
	key, payload := Split(token)

	if key == "" {
		return "", ErrEmptyKey
	}
	if payload == "" {
		return "", ErrEmptyPayload
	}
	if len(payload) < SegmentSize {
		return "", ErrPayloadTooShort
	}

	return decodePayload(payload, Checksum(key))
}

func decodePayload(payload, checksum string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(payload) / SegmentSize)

	for i := 0; i < len(payload); i += SegmentSize {
		end := min(i+SegmentSize, len(payload))
		b, err := DecodeSegment(payload[i:end], checksum)
		if err != nil {
			return "", err
		}
		sb.WriteByte(b)
	}
	return sb.String(), nil
}
