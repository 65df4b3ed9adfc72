package booking

import (
	"context"

	domain "github.com/su-physio/clinic-scheduler/internal/domain/booking"
	"github.com/su-physio/clinic-scheduler/internal/timezone"
)

// DashboardStats backs the staff landing page counters.
type Stats struct {
	Total   int `json:"total"`
	Today   int `json:"today"`
	Pending int `json:"pending"`
}

type DashboardStats struct {
	repo domain.Repository
}

func NewDashboardStats(repo domain.Repository) *DashboardStats {
	return &DashboardStats{repo: repo}
}

func (uc *DashboardStats) Execute(ctx context.Context) (*Stats, error) {
	records, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	today := timezone.Today()

	stats := Stats{Total: len(records)}
	for _, rec := range records {
		if rec.Date == today {
			stats.Today++
		}
		if rec.Status == string(domain.StatusPending) {
			stats.Pending++
		}
	}
	return &stats, nil
}
