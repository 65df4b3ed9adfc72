package notify

import (
	"context"

	"github.com/su-physio/clinic-scheduler/internal/logger"
	"github.com/su-physio/clinic-scheduler/internal/models"
)

// EventKind selects the message the gateway builds for a booking event.
type EventKind string

const (
	KindNew             EventKind = "new"
	KindPublicNew       EventKind = "public_new"
	KindStatusUpdate    EventKind = "status_update"
	KindCancelled       EventKind = "cancelled"
	KindPublicCancelled EventKind = "public_cancelled"
	KindReminder        EventKind = "reminder"
)

type Event struct {
	Kind    EventKind
	Booking models.Booking
}

// Dispatcher decouples notification delivery from the request path. Events
// are handed to a worker goroutine; a full queue drops the event rather than
// ever blocking a booking operation.
type Dispatcher struct {
	notifier Notifier
	queue    chan Event
}

func NewDispatcher(notifier Notifier) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		text := buildMessage(ev)
		if err := d.notifier.Send(context.Background(), text); err != nil {
			logger.Log.Warn("notification delivery failed",
				"kind", string(ev.Kind), "booking_id", ev.Booking.ID, "err", err)
		}
	}
}

// Dispatch never blocks. The triggering operation has already committed when
// this is called.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		logger.Log.Warn("notification queue full, dropping event",
			"kind", string(ev.Kind), "booking_id", ev.Booking.ID)
	}
}

// Close stops the worker after the queue drains.
func (d *Dispatcher) Close() {
	close(d.queue)
}

func buildMessage(ev Event) string {
	switch ev.Kind {
	case KindNew:
		return BuildNewBookingMessage(ev.Booking)
	case KindPublicNew:
		return BuildPublicBookingMessage(ev.Booking)
	case KindStatusUpdate:
		return BuildStatusUpdateMessage(ev.Booking)
	case KindCancelled:
		return BuildCancelledMessage(ev.Booking)
	case KindPublicCancelled:
		return BuildPublicCancelledMessage(ev.Booking)
	case KindReminder:
		return BuildReminderMessage(ev.Booking)
	default:
		return BuildDefaultMessage(ev.Booking)
	}
}
