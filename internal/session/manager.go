// Package session implements the public user's continuity pointer: a
// (booking code, phone) pair remembered in a tab-scoped ephemeral store so a
// returning visitor skips the lookup form. The pointer is a hint, never an
// authorization: every resume re-runs the full public lookup.
package session

import (
	"context"
	"errors"

	domain "github.com/su-physio/clinic-scheduler/internal/domain/booking"
	"github.com/su-physio/clinic-scheduler/internal/httperr"
	"github.com/su-physio/clinic-scheduler/internal/kvstore"
	"github.com/su-physio/clinic-scheduler/internal/models"
)

const (
	KeyBookingCode  = "su_booking_code"
	KeyBookingPhone = "su_booking_phone"
)

type Manager struct {
	repo domain.Repository
}

func NewManager(repo domain.Repository) *Manager {
	return &Manager{repo: repo}
}

// Remember writes the pointer after a successful public creation.
func (m *Manager) Remember(ctx context.Context, scope kvstore.Store, code, phone string) error {
	if err := scope.Set(ctx, KeyBookingCode, code); err != nil {
		return err
	}
	return scope.Set(ctx, KeyBookingPhone, phone)
}

// Resume resolves the saved pointer through the public lookup. A stale
// pointer (record gone, credentials no longer matching) is cleared silently
// and reported as a plain miss.
func (m *Manager) Resume(ctx context.Context, scope kvstore.Store) (*models.Booking, error) {
	code, err := scope.Get(ctx, KeyBookingCode)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, httperr.ErrBusiness("no_saved_booking")
	}
	if err != nil {
		return nil, err
	}

	phone, err := scope.Get(ctx, KeyBookingPhone)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, httperr.ErrBusiness("no_saved_booking")
	}
	if err != nil {
		return nil, err
	}

	rec, err := m.repo.FindByCodeAndPhone(ctx, code, phone)
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			m.Forget(ctx, scope)
		}
		return nil, err
	}
	return rec, nil
}

// Forget clears the pointer, either on explicit user action or when it turns
// out stale.
func (m *Manager) Forget(ctx context.Context, scope kvstore.Store) {
	_ = scope.Delete(ctx, KeyBookingCode)
	_ = scope.Delete(ctx, KeyBookingPhone)
}
