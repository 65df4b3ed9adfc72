package booking

import (
	"context"

	domain "github.com/su-physio/clinic-scheduler/internal/domain/booking"
)

// DeleteBooking removes a record for good. No soft-delete, staff-only.
type DeleteBooking struct {
	repo domain.Repository
}

func NewDeleteBooking(repo domain.Repository) *DeleteBooking {
	return &DeleteBooking{repo: repo}
}

func (uc *DeleteBooking) Execute(ctx context.Context, id int64) error {
	return uc.repo.Remove(ctx, id)
}
