package booking

import (
	"context"
	"sort"
	"strings"

	domain "github.com/su-physio/clinic-scheduler/internal/domain/booking"
	"github.com/su-physio/clinic-scheduler/internal/models"
)

// SearchBookings filters on name, phone or date substring. An empty query
// returns the whole set. Newest appointment first, matching the staff table.
type SearchBookings struct {
	repo domain.Repository
}

func NewSearchBookings(repo domain.Repository) *SearchBookings {
	return &SearchBookings{repo: repo}
}

func (uc *SearchBookings) Execute(ctx context.Context, query string) ([]models.Booking, error) {
	records, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))

	matched := make([]models.Booking, 0)
	for _, rec := range records {
		if query == "" ||
			strings.Contains(strings.ToLower(rec.Name), query) ||
			strings.Contains(rec.Phone, query) ||
			strings.Contains(rec.Date, query) {
			matched = append(matched, rec)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].SortKey() > matched[j].SortKey()
	})
	return matched, nil
}
