package booking

import (
	"context"

	domain "github.com/su-physio/clinic-scheduler/internal/domain/booking"
	"github.com/su-physio/clinic-scheduler/internal/models"
)

// GetBooking is the staff lookup by internal id. Full record, no extra
// credential.
type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(ctx context.Context, id int64) (*models.Booking, error) {
	return uc.repo.FindByID(ctx, id)
}
