package booking

import (
	"context"
	"sort"

	domain "github.com/su-physio/clinic-scheduler/internal/domain/booking"
	"github.com/su-physio/clinic-scheduler/internal/models"
)

// ListBookingsByDate returns one day's bookings ordered by time.
type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(repo domain.Repository) *ListBookingsByDate {
	return &ListBookingsByDate{repo: repo}
}

func (uc *ListBookingsByDate) Execute(ctx context.Context, date string) ([]models.Booking, error) {
	records, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	day := make([]models.Booking, 0)
	for _, rec := range records {
		if rec.Date == date {
			day = append(day, rec)
		}
	}

	sort.Slice(day, func(i, j int) bool {
		return day[i].Time < day[j].Time
	})
	return day, nil
}
