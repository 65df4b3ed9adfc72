package booking

import (
	"context"

	domain "github.com/su-physio/clinic-scheduler/internal/domain/booking"
	"github.com/su-physio/clinic-scheduler/internal/models"
	"github.com/su-physio/clinic-scheduler/internal/notify"
	"github.com/su-physio/clinic-scheduler/internal/timezone"
)

// CancelBooking is the staff-side cancellation, resolved by internal id.
type CancelBooking struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCancelBooking(repo domain.Repository, notify *notify.Dispatcher) *CancelBooking {
	return &CancelBooking{repo: repo, notify: notify}
}

func (uc *CancelBooking) Execute(ctx context.Context, id int64, reason string) (*models.Booking, error) {
	rec, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(rec, reason, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.Replace(ctx, *rec); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{Kind: notify.KindCancelled, Booking: *rec})

	return rec, nil
}
