package booking

import (
	"context"
	"sort"

	domain "github.com/su-physio/clinic-scheduler/internal/domain/booking"
	"github.com/su-physio/clinic-scheduler/internal/notify"
	"github.com/su-physio/clinic-scheduler/internal/timezone"
)

// SendUpcomingReminders pushes tomorrow's pending and confirmed bookings as
// one digest. Nothing is sent when tomorrow is empty.
type SendUpcomingReminders struct {
	repo     domain.Repository
	notifier notify.Notifier
}

func NewSendUpcomingReminders(repo domain.Repository, notifier notify.Notifier) *SendUpcomingReminders {
	return &SendUpcomingReminders{repo: repo, notifier: notifier}
}

func (uc *SendUpcomingReminders) Execute(ctx context.Context) (int, error) {
	tomorrow := timezone.Tomorrow()

	records, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return 0, err
	}

	upcoming := records[:0:0]
	for _, rec := range records {
		if rec.Date != tomorrow {
			continue
		}
		switch domain.Status(rec.Status) {
		case domain.StatusPending, domain.StatusConfirmed:
			upcoming = append(upcoming, rec)
		}
	}

	if len(upcoming) == 0 {
		return 0, nil
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].Time < upcoming[j].Time
	})

	if err := uc.notifier.Send(ctx, notify.BuildUpcomingRemindersMessage(tomorrow, upcoming)); err != nil {
		return 0, err
	}
	return len(upcoming), nil
}
