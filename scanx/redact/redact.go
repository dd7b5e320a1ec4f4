// Package redact keeps access tokens and shared keys out of log output.
package redact

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const placeholder = "[REDACTED]"

// sensitiveKeys are matched case-insensitively against log field names.
var sensitiveKeys = []string{"token", "key", "secret", "payload"}

// Token returns a placeholder for s that only reveals its length.
//
//	""                 -> ""
//	"0123456789abcdef" -> "[REDACTED len=16]"
func Token(s string) string {
	if s == "" {
		return ""
	}
	return fmt.Sprintf("[REDACTED len=%d]", len(s))
}

// IsSensitive reports whether a log field with this name must be redacted.
func IsSensitive(field string) bool {
	f := strings.ToLower(field)
	for _, k := range sensitiveKeys {
		if strings.Contains(f, k) {
			return true
		}
	}
	return false
}

// Hook is a logrus hook replacing string values of sensitive fields
// before the entry is formatted.
type Hook struct{}

func NewHook() *Hook {
	return &Hook{}
}

func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *Hook) Fire(e *logrus.Entry) error {
	for k, v := range e.Data {
		if !IsSensitive(k) {
			continue
		}
		switch s := v.(type) {
		case string:
			if !strings.HasPrefix(s, placeholder[:len(placeholder)-1]) {
				e.Data[k] = Token(s)
			}
		case fmt.Stringer:
			e.Data[k] = placeholder
		case []byte:
			e.Data[k] = Token(string(s))
		}
	}
	return nil
}
