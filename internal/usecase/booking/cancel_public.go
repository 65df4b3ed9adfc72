package booking

import (
	"context"

	domain "github.com/su-physio/clinic-scheduler/internal/domain/booking"
	"github.com/su-physio/clinic-scheduler/internal/models"
	"github.com/su-physio/clinic-scheduler/internal/notify"
	"github.com/su-physio/clinic-scheduler/internal/timezone"
)

// CancelPublicBooking is the self-service cancellation: resolved by the
// (code, phone) pair, and the only mutation that path is allowed.
type CancelPublicBooking struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCancelPublicBooking(repo domain.Repository, notify *notify.Dispatcher) *CancelPublicBooking {
	return &CancelPublicBooking{repo: repo, notify: notify}
}

func (uc *CancelPublicBooking) Execute(ctx context.Context, code, phone, reason string) (*models.Booking, error) {
	rec, err := uc.repo.FindByCodeAndPhone(ctx, code, phone)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(rec, reason, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.Replace(ctx, *rec); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{Kind: notify.KindPublicCancelled, Booking: *rec})

	return rec, nil
}
