// Package notify is the outbound notification gateway. Deliveries are
// best-effort: the booking lifecycle never waits on them and never fails
// because of them.
package notify

import "context"

// Notifier delivers one formatted message. Implementations decide the
// transport (Telegram today; the interface keeps the door open).
type Notifier interface {
	Send(ctx context.Context, text string) error
}
