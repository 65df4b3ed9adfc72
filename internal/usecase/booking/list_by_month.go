package booking

import (
	"context"
	"fmt"
	"sort"
	"strings"

	domain "github.com/su-physio/clinic-scheduler/internal/domain/booking"
	"github.com/su-physio/clinic-scheduler/internal/httperr"
	"github.com/su-physio/clinic-scheduler/internal/models"
)

// MonthBookings feeds the calendar grid: the month's records in
// chronological order plus per-day counts.
type MonthBookings struct {
	Year     int              `json:"year"`
	Month    int              `json:"month"`
	Bookings []models.Booking `json:"bookings"`
	ByDay    map[string]int   `json:"byDay"`
}

type ListBookingsByMonth struct {
	repo domain.Repository
}

func NewListBookingsByMonth(repo domain.Repository) *ListBookingsByMonth {
	return &ListBookingsByMonth{repo: repo}
}

func (uc *ListBookingsByMonth) Execute(ctx context.Context, year, month int) (*MonthBookings, error) {
	if year < 2000 || year > 2100 {
		return nil, httperr.ErrBusiness("invalid_year")
	}
	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	records, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	prefix := fmt.Sprintf("%04d-%02d-", year, month)

	out := MonthBookings{
		Year:     year,
		Month:    month,
		Bookings: make([]models.Booking, 0),
		ByDay:    make(map[string]int),
	}

	for _, rec := range records {
		if !strings.HasPrefix(rec.Date, prefix) {
			continue
		}
		out.Bookings = append(out.Bookings, rec)
		out.ByDay[rec.Date]++
	}

	sort.Slice(out.Bookings, func(i, j int) bool {
		return out.Bookings[i].SortKey() < out.Bookings[j].SortKey()
	})
	return &out, nil
}
