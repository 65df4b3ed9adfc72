package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/su-physio/clinic-scheduler/internal/httperr"
	"github.com/su-physio/clinic-scheduler/internal/kvstore"
	"github.com/su-physio/clinic-scheduler/internal/logger"
	"github.com/su-physio/clinic-scheduler/internal/models"
)

// RecordsKey is the durable key the whole booking set lives under.
const RecordsKey = "su_patients"

// BookingKVRepository persists the record set as one JSON array under a
// single key, preserving the all-or-nothing semantics of the backing store.
type BookingKVRepository struct {
	kv kvstore.Store
}

func NewBookingKVRepository(kv kvstore.Store) *BookingKVRepository {
	return &BookingKVRepository{kv: kv}
}

// --------------------------------------------------
// Whole-set load / save
// --------------------------------------------------

func (r *BookingKVRepository) LoadAll(ctx context.Context) ([]models.Booking, error) {
	raw, err := r.kv.Get(ctx, RecordsKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return []models.Booking{}, nil
	}
	if err != nil {
		return nil, err
	}

	var records []models.Booking
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		// Corrupt payload: reset to empty rather than crash.
		logger.Log.Warn("corrupt booking set, resetting to empty",
			"key", RecordsKey, "err", err)
		return []models.Booking{}, nil
	}
	return records, nil
}

func (r *BookingKVRepository) SaveAll(ctx context.Context, records []models.Booking) error {
	if records == nil {
		records = []models.Booking{}
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, RecordsKey, string(raw))
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

func (r *BookingKVRepository) FindByID(ctx context.Context, id int64) (*models.Booking, error) {
	records, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].ID == id {
			rec := records[i]
			return &rec, nil
		}
	}
	return nil, httperr.ErrBusiness("booking_not_found")
}

func (r *BookingKVRepository) FindByCodeAndPhone(ctx context.Context, code, phone string) (*models.Booking, error) {
	records, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	code = strings.TrimSpace(code)
	for i := range records {
		if records[i].BookingCode == "" {
			continue
		}
		if strings.EqualFold(records[i].BookingCode, code) && records[i].Phone == phone {
			rec := records[i]
			return &rec, nil
		}
	}
	// Same outcome whichever field mismatched.
	return nil, httperr.ErrBusiness("booking_not_found")
}

// --------------------------------------------------
// Mutation
// --------------------------------------------------

func (r *BookingKVRepository) Append(ctx context.Context, record models.Booking) error {
	records, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	records = append(records, record)
	return r.SaveAll(ctx, records)
}

func (r *BookingKVRepository) Replace(ctx context.Context, record models.Booking) error {
	records, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].ID == record.ID {
			records[i] = record
			return r.SaveAll(ctx, records)
		}
	}
	return httperr.ErrBusiness("booking_not_found")
}

func (r *BookingKVRepository) Remove(ctx context.Context, id int64) error {
	records, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec.ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}

	if !found {
		return httperr.ErrBusiness("booking_not_found")
	}
	return r.SaveAll(ctx, kept)
}
