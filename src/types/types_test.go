package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBookingStatus(t *testing.T) {
	for _, s := range []string{"pending", "assigned", "confirmed", "completed", "cancelled", "rejected"} {
		parsed, err := ParseBookingStatus(s)
		assert.Nil(t, err)
		assert.Equal(t, BookingStatus(s), parsed)
	}
	_, err := ParseBookingStatus("booked")
	assert.NotNil(t, err)
	_, err = ParseBookingStatus("")
	assert.NotNil(t, err)
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.True(t, BOOKING_COMPLETED.Terminal())
	assert.True(t, BOOKING_CANCELLED.Terminal())
	assert.True(t, BOOKING_REJECTED.Terminal())
	assert.False(t, BOOKING_PENDING.Terminal())
	assert.False(t, BOOKING_ASSIGNED.Terminal())
	assert.False(t, BOOKING_CONFIRMED.Terminal())
}

func TestBookingStatusClaimed(t *testing.T) {
	assert.True(t, BOOKING_ASSIGNED.Claimed())
	assert.True(t, BOOKING_CONFIRMED.Claimed())
	assert.False(t, BOOKING_PENDING.Claimed())
	assert.False(t, BOOKING_COMPLETED.Claimed())
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"customer", "pandit", "admin"} {
		role, err := ParseRole(s)
		assert.Nil(t, err)
		assert.Equal(t, Role(s), role)
	}
	_, err := ParseRole("superuser")
	assert.NotNil(t, err)
}
