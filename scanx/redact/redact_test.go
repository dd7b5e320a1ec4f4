package redact

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestToken(t *testing.T) {
	assert.Equal(t, "", Token(""))
	assert.Equal(t, "[REDACTED len=16]", Token("0123456789abcdef"))
}

func TestIsSensitive(t *testing.T) {
	assert.True(t, IsSensitive("accessToken"))
	assert.True(t, IsSensitive("KEY"))
	assert.True(t, IsSensitive("shared_secret"))
	assert.False(t, IsSensitive("component"))
	assert.False(t, IsSensitive("status"))
}

func TestHook_RedactsSensitiveFields(t *testing.T) {
	var buf bytes.Buffer

	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	log.AddHook(NewHook())

	secret := "abcdefghijklmnopqrstuvwxyz0123456789deadbeef"
	log.WithField("token", secret).WithField("status", 200).Info("checked")

	out := buf.String()
	assert.NotContains(t, out, secret)
	assert.Contains(t, out, "REDACTED len=44")
	assert.Contains(t, out, "status=200")
}

func TestHook_KeepsAlreadyRedactedValue(t *testing.T) {
	var buf bytes.Buffer

	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	log.AddHook(NewHook())

	log.WithField("token", Token("0123456789")).Info("checked")

	assert.Contains(t, buf.String(), "REDACTED len=10")
}
