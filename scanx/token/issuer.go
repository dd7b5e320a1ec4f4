package token

import (
	"crypto/rand"
	"io"
	"strings"
	"time"

	"github.com/go-faster/errors"
)

// Issue builds an access token for date's calendar day under key.
// Mask bytes are drawn from rnd; nil means crypto/rand.
func Issue(key string, date time.Time, rnd io.Reader) (string, error) {
	return Encode(key, FormatDate(date), rnd)
}

// Encode obfuscates an arbitrary plain payload under key.
func Encode(key, plain string, rnd io.Reader) (string, error) {
	if len(key) != KeySize {
		return "", errors.Wrapf(ErrInvalidKeyLength, "got %d", len(key))
	}

	checksum := Checksum(key)
	if len(checksum) != ChecksumWidth {
		return "", errors.Wrapf(ErrChecksumOverflow, "checksum %s", checksum)
	}

	if rnd == nil {
		rnd = rand.Reader
	}

	mask := make([]byte, len(plain))
	if _, err := io.ReadFull(rnd, mask); err != nil {
		return "", errors.Wrap(err, "read mask bytes")
	}

	var sb strings.Builder
	sb.Grow(KeySize + len(plain)*SegmentSize)
	sb.WriteString(key)
	for i := 0; i < len(plain); i++ {
		sb.WriteString(EncodeSegment(plain[i], mask[i], checksum))
	}
	return sb.String(), nil
}
