package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()

	assert.True(t, strings.HasPrefix(id, "req-"))

	parsed, err := uuid.Parse(strings.TrimPrefix(id, "req-"))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestGenerateDeliveryID(t *testing.T) {
	id := GenerateDeliveryID()

	assert.True(t, strings.HasPrefix(id, "delivery-"))

	parsed, err := uuid.Parse(strings.TrimPrefix(id, "delivery-"))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestGenerateRequestID_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateRequestID()
		assert.False(t, seen[id], "duplicate request ID: %s", id)
		seen[id] = true
	}
}

func TestGenerateDeliveryID_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateDeliveryID()
		assert.False(t, seen[id], "duplicate delivery ID: %s", id)
		seen[id] = true
	}
}
