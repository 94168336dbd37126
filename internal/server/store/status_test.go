package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusCheck(t *testing.T) {
	before := time.Now().UTC()
	check := NewStatusCheck("probe-1")
	after := time.Now().UTC()

	assert.Equal(t, "probe-1", check.ClientName)

	_, err := uuid.Parse(check.ID)
	assert.NoError(t, err, "id must be a standard uuid")

	assert.Equal(t, time.UTC, check.Timestamp.Location())
	assert.False(t, check.Timestamp.Before(before))
	assert.False(t, check.Timestamp.After(after))
}

func TestNewStatusCheckUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		check := NewStatusCheck("probe")
		assert.False(t, seen[check.ID])
		seen[check.ID] = true
	}
}

func TestStatusCheckDocRoundTrip(t *testing.T) {
	check := NewStatusCheck("probe-1")

	doc := check.doc()
	assert.Equal(t, check.ID, doc.ID)
	assert.Equal(t, check.ClientName, doc.ClientName)

	// Stored form is an ISO-8601 string, not a native datetime.
	_, err := time.Parse(time.RFC3339Nano, doc.Timestamp)
	require.NoError(t, err)

	back, err := doc.model()
	require.NoError(t, err)
	assert.Equal(t, check.ID, back.ID)
	assert.Equal(t, check.ClientName, back.ClientName)
	assert.True(t, check.Timestamp.Equal(back.Timestamp),
		"timestamp must survive the string round-trip: %v != %v", check.Timestamp, back.Timestamp)
}

func TestStatusCheckDocSubSecondPrecision(t *testing.T) {
	check := &StatusCheck{
		ID:         uuid.NewString(),
		ClientName: "probe-1",
		Timestamp:  time.Date(2025, 6, 1, 12, 30, 45, 123456789, time.UTC),
	}

	back, err := check.doc().model()
	require.NoError(t, err)
	assert.True(t, check.Timestamp.Equal(back.Timestamp))
}

func TestStatusCheckDocBadTimestamp(t *testing.T) {
	doc := &statusCheckDoc{
		ID:         uuid.NewString(),
		ClientName: "probe-1",
		Timestamp:  "yesterday-ish",
	}

	_, err := doc.model()
	assert.ErrorContains(t, err, "parse timestamp")
}
