package token

import (
	"github.com/alapierre/go-scanx/scanx/redact"
	"github.com/alapierre/go-scanx/scanx/status"
	"github.com/go-faster/errors"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "scanx.token")

// Validator classifies access tokens into status codes.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	clock clockwork.Clock
}

func NewValidator(clock clockwork.Clock) *Validator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Validator{clock: clock}
}

var defaultValidator = NewValidator(clockwork.NewRealClock())

// ValidateAccessToken checks token against the host's local date.
func ValidateAccessToken(token string) status.Status {
	return defaultValidator.Validate(token)
}

// Validate returns status.OK only for a well-formed token whose payload is today's date.
func (v *Validator) Validate(token string) (st status.Status) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithField("token", redact.Token(token)).Errorf("unexpected failure: %v", r)
			st = status.InvalidKey
		}
	}()

	log := logger.WithField("token", redact.Token(token))

	if err := checkShape(token); err != nil {
		log.Debugf("rejected: %v", err)
		return status.InvalidKey
	}

	decoded, err := Decode(token)
	if err != nil {
		log.Debugf("decode failed: %v", err)
		return status.DecodeFailed
	}

	if !MatchesDatePattern(decoded) {
		log.Debug("decoded payload is not a date")
		return status.FormatNotSupported
	}

	day, month, year, _ := ParseDate(decoded)

	if !MatchesToday(v.clock, day, month, year) {
		log.Debugf("token date %02d-%02d-%04d is not today", day, month, year)
		return status.Timeout
	}

	return status.OK
}

func checkShape(token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	key, payload := Split(token)
	switch {
	case key == "":
		return ErrEmptyKey
	case payload == "":
		return ErrEmptyPayload
	case len(payload) < SegmentSize:
		return errors.Wrapf(ErrPayloadTooShort, "%d bytes", len(payload))
	}
	return nil
}
