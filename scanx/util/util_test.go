package util

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestIsDebugEnabled_False(t *testing.T) {
	t.Setenv("SCANX_DEBUG", "")
	assert.False(t, DebugEnabled(), "debug should be false")
}

func TestIsDebugEnabled_Invalid(t *testing.T) {
	t.Setenv("SCANX_DEBUG", "yes please")
	assert.False(t, DebugEnabled(), "unparsable value should disable debug")
}

func TestIsDebugEnabled_True(t *testing.T) {
	t.Setenv("SCANX_DEBUG", "true")
	assert.True(t, DebugEnabled(), "debug should be true")

	ConfigureLogging()
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	t.Setenv("SCANX_DEBUG", "false")
	ConfigureLogging()
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("SCANX_TEST_VALUE", "")
	assert.Equal(t, "fallback", GetEnvOrDefault("SCANX_TEST_VALUE", "fallback"))

	t.Setenv("SCANX_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnvOrDefault("SCANX_TEST_VALUE", "fallback"))
}

func TestGetEnvOrFailed(t *testing.T) {
	t.Setenv("SCANX_TEST_VALUE", "present")
	assert.Equal(t, "present", GetEnvOrFailed("SCANX_TEST_VALUE"))
}
