package booking

import (
	"context"
	"sort"

	domain "github.com/su-physio/clinic-scheduler/internal/domain/booking"
	"github.com/su-physio/clinic-scheduler/internal/notify"
	"github.com/su-physio/clinic-scheduler/internal/timezone"
)

// SendDailySummary pushes today's digest to the notification gateway. This
// is an explicit staff action, so delivery failure is reported back instead
// of being swallowed.
type SendDailySummary struct {
	repo     domain.Repository
	notifier notify.Notifier
}

func NewSendDailySummary(repo domain.Repository, notifier notify.Notifier) *SendDailySummary {
	return &SendDailySummary{repo: repo, notifier: notifier}
}

func (uc *SendDailySummary) Execute(ctx context.Context) error {
	today := timezone.Today()

	records, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	todays := records[:0:0]
	for _, rec := range records {
		if rec.Date == today {
			todays = append(todays, rec)
		}
	}
	sort.Slice(todays, func(i, j int) bool {
		return todays[i].Time < todays[j].Time
	})

	return uc.notifier.Send(ctx, notify.BuildDailySummaryMessage(today, todays))
}
