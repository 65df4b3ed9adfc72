package booking

import (
	"context"

	domain "github.com/su-physio/clinic-scheduler/internal/domain/booking"
	"github.com/su-physio/clinic-scheduler/internal/models"
	"github.com/su-physio/clinic-scheduler/internal/notify"
	"github.com/su-physio/clinic-scheduler/internal/timezone"
)

type CompleteBooking struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCompleteBooking(repo domain.Repository, notify *notify.Dispatcher) *CompleteBooking {
	return &CompleteBooking{repo: repo, notify: notify}
}

func (uc *CompleteBooking) Execute(ctx context.Context, id int64) (*models.Booking, error) {
	rec, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(rec, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.Replace(ctx, *rec); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{Kind: notify.KindStatusUpdate, Booking: *rec})

	return rec, nil
}
