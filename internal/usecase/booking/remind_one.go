package booking

import (
	"context"

	domain "github.com/su-physio/clinic-scheduler/internal/domain/booking"
	"github.com/su-physio/clinic-scheduler/internal/httperr"
	"github.com/su-physio/clinic-scheduler/internal/models"
	"github.com/su-physio/clinic-scheduler/internal/notify"
)

// SendBookingReminder pushes a reminder for one booking, triggered from the
// staff detail view. Terminal bookings have nothing to remind about.
type SendBookingReminder struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewSendBookingReminder(repo domain.Repository, notify *notify.Dispatcher) *SendBookingReminder {
	return &SendBookingReminder{repo: repo, notify: notify}
}

func (uc *SendBookingReminder) Execute(ctx context.Context, id int64) (*models.Booking, error) {
	rec, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if domain.IsTerminal(domain.Status(rec.Status)) {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	uc.notify.Dispatch(notify.Event{Kind: notify.KindReminder, Booking: *rec})

	return rec, nil
}
