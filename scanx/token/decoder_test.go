package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	key, payload := Split(testKey + "61000d2c")
	assert.Equal(t, testKey, key)
	assert.Equal(t, "61000d2c", payload)

	key, payload = Split(testKey[:35])
	assert.Equal(t, testKey[:35], key)
	assert.Empty(t, payload)

	key, payload = Split(testKey)
	assert.Equal(t, testKey, key)
	assert.Empty(t, payload)
}

func TestDecode(t *testing.T) {
	got, err := Decode(testKey + "61000d2c" + "9dff0d2c")
	require.NoError(t, err)
	assert.Equal(t, "ab", got)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"empty", "", ErrEmptyKey},
		{"key only", testKey, ErrEmptyPayload},
		{"payload too short", testKey + "6100", ErrPayloadTooShort},
		{"trailing partial segment", testKey + "61000d2c" + "620", ErrTooShort},
		{"wrong key", strings.Repeat("k", KeySize) + "61000d2c", ErrChecksumMismatch},
		{"second segment corrupted", testKey + "61000d2c" + "62000d2d", ErrChecksumMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, got)
		})
	}
}
