package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewContactMessage(t *testing.T) {
	msg := NewContactMessage("Ada", "ada@example.com", "", "", "hello there")

	_, err := uuid.Parse(msg.ID)
	assert.NoError(t, err)

	assert.Equal(t, "Ada", msg.Name)
	assert.Equal(t, "ada@example.com", msg.Email)
	assert.Empty(t, msg.Phone)
	assert.Empty(t, msg.Address)
	assert.Equal(t, "hello there", msg.Comment)
	assert.Equal(t, StatusNew, msg.Status)
	assert.Equal(t, time.UTC, msg.Timestamp.Location())
	assert.WithinDuration(t, time.Now().UTC(), msg.Timestamp, 2*time.Second)
}

func TestContactMessageDoc(t *testing.T) {
	msg := NewContactMessage("Ada", "ada@example.com", "+1 555 0100", "12 Main St", "hello")

	doc := msg.doc()
	assert.Equal(t, msg.ID, doc.ID)
	assert.Equal(t, "Ada", doc.Name)
	assert.Equal(t, "ada@example.com", doc.Email)
	assert.Equal(t, "+1 555 0100", doc.Phone)
	assert.Equal(t, "12 Main St", doc.Address)
	assert.Equal(t, "hello", doc.Comment)
	assert.Equal(t, StatusNew, doc.Status)

	ts, err := time.Parse(time.RFC3339, doc.Timestamp)
	assert.NoError(t, err)
	assert.True(t, msg.Timestamp.Equal(ts))
}
