package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSerial_Format(t *testing.T) {
	serial, err := GenerateSerial()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(serial, "CERT-"))
	suffix := strings.TrimPrefix(serial, "CERT-")
	assert.Len(t, suffix, serialLength)
	for _, r := range suffix {
		assert.Contains(t, serialAlphabet, string(r))
	}
}

func TestGenerateSerial_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		serial, err := GenerateSerial()
		require.NoError(t, err)
		assert.False(t, seen[serial], "duplicate serial %s", serial)
		seen[serial] = true
	}
}
