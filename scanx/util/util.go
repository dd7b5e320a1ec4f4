package util

import (
	"os"
	"strconv"
	"sync"

	"github.com/alapierre/go-scanx/scanx/redact"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "scanx.util")

var hookOnce sync.Once

func DebugEnabled() bool {
	return etb("SCANX_DEBUG")
}

func etb(envName string) bool {
	v, ok := os.LookupEnv(envName)
	if !ok {
		return false
	}

	bv, err := strconv.ParseBool(v)

	return err == nil && bv
}

func GetEnvOrFailed(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		logger.Fatal(key, " environment variable is not set")
	}
	return v
}

func GetEnvOrDefault(key, def string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	return v
}

// ConfigureLogging sets up the standard logrus logger: level from SCANX_DEBUG,
// text output with full timestamps and the token redaction hook.
func ConfigureLogging() {
	if DebugEnabled() {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	hookOnce.Do(func() {
		logrus.AddHook(redact.NewHook())
	})
}
