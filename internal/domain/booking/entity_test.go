package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/su-physio/clinic-scheduler/internal/httperr"
	"github.com/su-physio/clinic-scheduler/internal/models"
)

func pendingBooking() models.Booking {
	return models.Booking{
		ID:     1,
		Name:   "Aung Aung",
		Phone:  "09123456789",
		Date:   "2025-03-10",
		Time:   "14:00",
		Status: string(StatusPending),
	}
}

func TestConfirm_SetsStatusAndTimestamp(t *testing.T) {
	b := pendingBooking()
	now := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)

	require.NoError(t, Confirm(&b, now))

	assert.Equal(t, string(StatusConfirmed), b.Status)
	require.NotNil(t, b.ConfirmedAt)
	assert.Equal(t, now, *b.ConfirmedAt)
}

func TestConfirm_RejectsNonPending(t *testing.T) {
	b := pendingBooking()
	b.Status = string(StatusConfirmed)

	err := Confirm(&b, time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancel_SetsReasonAndTimestamp(t *testing.T) {
	b := pendingBooking()
	now := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)

	require.NoError(t, Cancel(&b, "  patient request  ", now))

	assert.Equal(t, string(StatusCancelled), b.Status)
	assert.Equal(t, "patient request", b.CancelReason)
	require.NotNil(t, b.CancelledAt)
	assert.Equal(t, now, *b.CancelledAt)
}

func TestCancel_EmptyReasonLeavesRecordUntouched(t *testing.T) {
	b := pendingBooking()

	err := Cancel(&b, "   ", time.Now())

	assert.True(t, httperr.IsBusiness(err, "empty_cancel_reason"))
	assert.Equal(t, string(StatusPending), b.Status)
	assert.Empty(t, b.CancelReason)
	assert.Nil(t, b.CancelledAt)
}

func TestCancel_EmptyReasonWinsOverTerminalState(t *testing.T) {
	// The reason check runs before the state check.
	b := pendingBooking()
	b.Status = string(StatusCompleted)

	err := Cancel(&b, "", time.Now())
	assert.True(t, httperr.IsBusiness(err, "empty_cancel_reason"))
}

func TestCancel_FromConfirmed(t *testing.T) {
	b := pendingBooking()
	require.NoError(t, Confirm(&b, time.Now()))

	require.NoError(t, Cancel(&b, "clinic closed", time.Now()))
	assert.Equal(t, string(StatusCancelled), b.Status)
}

func TestCancel_TerminalStatesRejected(t *testing.T) {
	for _, s := range []Status{StatusCancelled, StatusCompleted} {
		b := pendingBooking()
		b.Status = string(s)

		err := Cancel(&b, "too late", time.Now())
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "cancel from %s", s)
	}
}

func TestComplete_SetsStatusOnly(t *testing.T) {
	b := pendingBooking()

	require.NoError(t, Complete(&b, time.Now()))

	assert.Equal(t, string(StatusCompleted), b.Status)
	assert.Nil(t, b.ConfirmedAt)
	assert.Nil(t, b.CancelledAt)
}

func TestComplete_TerminalStatesRejected(t *testing.T) {
	for _, s := range []Status{StatusCancelled, StatusCompleted} {
		b := pendingBooking()
		b.Status = string(s)

		err := Complete(&b, time.Now())
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "complete from %s", s)
	}
}
