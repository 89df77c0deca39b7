package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStatusProgress(t *testing.T) {
	want := map[Status]int{
		StatusPending:        20,
		StatusPreparing:      40,
		StatusOutForDelivery: 75,
		StatusDelivered:      100,
	}
	for _, s := range Statuses {
		p, ok := s.Progress()
		assert.True(t, ok, s)
		assert.Equal(t, want[s], p, s)
	}

	_, ok := Status("Cancelled").Progress()
	assert.False(t, ok)
}

func TestStatusTone(t *testing.T) {
	assert.Equal(t, "#ffa502", StatusPending.Tone())
	assert.Equal(t, "#00d9a5", StatusDelivered.Tone())
	assert.Equal(t, ErrorTone, Status("ready").Tone())
}

func TestParseStatus(t *testing.T) {
	s, ok := ParseStatus("out for delivery")
	assert.True(t, ok)
	assert.Equal(t, StatusOutForDelivery, s)

	s, ok = ParseStatus(" PENDING ")
	assert.True(t, ok)
	assert.Equal(t, StatusPending, s)

	_, ok = ParseStatus("ready")
	assert.False(t, ok)
}

func TestStatusIsPending(t *testing.T) {
	assert.True(t, Status("pending").IsPending())
	assert.True(t, StatusPending.IsPending())
	assert.False(t, StatusPreparing.IsPending())
	assert.False(t, Status("").IsPending())
}

func TestDisplayStatusDefaultsToPending(t *testing.T) {
	assert.Equal(t, StatusPending, Order{}.DisplayStatus())
	assert.Equal(t, StatusDelivered, Order{Status: StatusDelivered}.DisplayStatus())
	assert.Equal(t, Status("ready"), Order{Status: "ready"}.DisplayStatus())
}

func TestOrderReferences(t *testing.T) {
	id, err := primitive.ObjectIDFromHex("65f1a2b3c4d5e6f7a8b9c0d1")
	assert.NoError(t, err)

	o := Order{ID: id}
	assert.Equal(t, "FH-B9C0D1", o.ShortID())
	assert.Equal(t, "#65f1a2", o.AdminRef())
}
