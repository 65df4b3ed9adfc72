package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/su-physio/clinic-scheduler/internal/httperr"
	"github.com/su-physio/clinic-scheduler/internal/models"
	"github.com/su-physio/clinic-scheduler/internal/timezone"
)

type captureNotifier struct {
	mu    sync.Mutex
	texts []string
	err   error
}

func (n *captureNotifier) Send(ctx context.Context, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.texts = append(n.texts, text)
	return nil
}

func (n *captureNotifier) sent() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.texts...)
}

func TestSendDailySummary(t *testing.T) {
	repo, _ := newFixture(t)
	today := timezone.Today()
	seed(t, repo,
		models.Booking{ID: 1, Name: "B", Date: today, Time: "11:00", Status: "confirmed"},
		models.Booking{ID: 2, Name: "A", Date: today, Time: "09:00", Status: "pending"},
		models.Booking{ID: 3, Name: "C", Date: "2020-01-01", Time: "09:00", Status: "pending"},
	)

	sink := &captureNotifier{}
	require.NoError(t, NewSendDailySummary(repo, sink).Execute(context.Background()))

	texts := sink.sent()
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "စုစုပေါင်း:</b> 2 ဦး")
	// Sorted by time, so A comes first.
	assert.Contains(t, texts[0], "1. ⏳ A - 09:00")
	assert.Contains(t, texts[0], "2. ✅ B - 11:00")
	assert.NotContains(t, texts[0], "C")
}

func TestSendDailySummary_DeliveryErrorSurfaces(t *testing.T) {
	repo, _ := newFixture(t)

	sink := &captureNotifier{err: errors.New("telegram: Unauthorized")}
	err := NewSendDailySummary(repo, sink).Execute(context.Background())
	assert.EqualError(t, err, "telegram: Unauthorized")
}

func TestSendUpcomingReminders(t *testing.T) {
	repo, _ := newFixture(t)
	tomorrow := timezone.Tomorrow()
	seed(t, repo,
		models.Booking{ID: 1, Name: "A", Phone: "091", Date: tomorrow, Time: "09:00", Status: "pending"},
		models.Booking{ID: 2, Name: "B", Phone: "092", Date: tomorrow, Time: "10:00", Status: "confirmed"},
		models.Booking{ID: 3, Name: "C", Phone: "093", Date: tomorrow, Time: "11:00", Status: "cancelled"},
		models.Booking{ID: 4, Name: "D", Phone: "094", Date: timezone.Today(), Time: "11:00", Status: "pending"},
	)

	sink := &captureNotifier{}
	count, err := NewSendUpcomingReminders(repo, sink).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	texts := sink.sent()
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "A")
	assert.Contains(t, texts[0], "B")
	assert.NotContains(t, texts[0], "C")
	assert.NotContains(t, texts[0], "D")
}

func TestSendBookingReminder(t *testing.T) {
	repo, d := newFixture(t)
	ctx := context.Background()

	rec, err := NewCreateStaffBooking(repo, d).Execute(ctx, staffInput())
	require.NoError(t, err)

	out, err := NewSendBookingReminder(repo, d).Execute(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, out.ID)
}

func TestSendBookingReminder_TerminalBooking(t *testing.T) {
	repo, d := newFixture(t)
	ctx := context.Background()

	rec, err := NewCreateStaffBooking(repo, d).Execute(ctx, staffInput())
	require.NoError(t, err)
	_, err = NewCancelBooking(repo, d).Execute(ctx, rec.ID, "moved away")
	require.NoError(t, err)

	_, err = NewSendBookingReminder(repo, d).Execute(ctx, rec.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestSendUpcomingReminders_EmptyTomorrowSendsNothing(t *testing.T) {
	repo, _ := newFixture(t)

	sink := &captureNotifier{}
	count, err := NewSendUpcomingReminders(repo, sink).Execute(context.Background())
	require.NoError(t, err)

	assert.Zero(t, count)
	assert.Empty(t, sink.sent())
}
