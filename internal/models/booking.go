package models

import "time"

// Booking statuses. Transitions are enforced by the domain layer.
const (
	SourcePublic = "public"
)

// Booking is the single record the whole system revolves around. The JSON
// layout matches the persisted su_patients array, so a stored set written by
// one version reads back unchanged.
type Booking struct {
	ID int64 `json:"id"`

	// BookingCode is present only on self-service records,
	// format SU-<year>-<9 digits>.
	BookingCode string `json:"bookingCode,omitempty"`

	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`

	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM, 24-hour

	Treatment string `json:"treatment,omitempty"`
	Notes     string `json:"notes,omitempty"`

	Status string `json:"status"`

	// Source is "public" for self-service records; staff records leave it
	// empty.
	Source string `json:"source,omitempty"`

	CreatedAt    time.Time  `json:"createdAt"`
	ConfirmedAt  *time.Time `json:"confirmedAt,omitempty"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`
	CancelReason string     `json:"cancelReason,omitempty"`
}

func (b Booking) IsPublic() bool {
	return b.Source == SourcePublic
}

// SortKey orders bookings chronologically; date and time are both sortable
// strings so plain concatenation is enough.
func (b Booking) SortKey() string {
	return b.Date + " " + b.Time
}
