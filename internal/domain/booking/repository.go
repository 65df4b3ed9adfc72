package booking

import (
	"context"

	"github.com/su-physio/clinic-scheduler/internal/models"
)

// Repository owns the record set. It is a last-writer-wins whole-set store:
// every mutation is load, modify in memory, save-all. No other component
// holds a mutable copy.
type Repository interface {
	// LoadAll returns the full record set. A missing or corrupt backing
	// value degrades to an empty set instead of failing the caller.
	LoadAll(ctx context.Context) ([]models.Booking, error)

	// SaveAll atomically replaces the whole set. A subsequent LoadAll in
	// the same scope returns exactly this set.
	SaveAll(ctx context.Context, records []models.Booking) error

	// FindByID is the staff lookup. No credential beyond the id.
	FindByID(ctx context.Context, id int64) (*models.Booking, error)

	// FindByCodeAndPhone is the public lookup: code case-insensitive,
	// phone exact, both must match the same record. A mismatch on either
	// field is reported identically to a miss.
	FindByCodeAndPhone(ctx context.Context, code, phone string) (*models.Booking, error)

	Append(ctx context.Context, record models.Booking) error

	// Replace overwrites the record matching by id.
	Replace(ctx context.Context, record models.Booking) error

	// Remove deletes by id. Irreversible, staff-only.
	Remove(ctx context.Context, id int64) error
}
