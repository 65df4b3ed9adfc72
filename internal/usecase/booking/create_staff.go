package booking

import (
	"context"
	"strings"

	domain "github.com/su-physio/clinic-scheduler/internal/domain/booking"
	"github.com/su-physio/clinic-scheduler/internal/httperr"
	"github.com/su-physio/clinic-scheduler/internal/idgen"
	"github.com/su-physio/clinic-scheduler/internal/models"
	"github.com/su-physio/clinic-scheduler/internal/notify"
	"github.com/su-physio/clinic-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateStaffBookingInput struct {
	Name    string
	Phone   string
	Address string

	Date string // YYYY-MM-DD
	Time string // HH:MM

	Treatment string
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateStaffBooking struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCreateStaffBooking(repo domain.Repository, notify *notify.Dispatcher) *CreateStaffBooking {
	return &CreateStaffBooking{repo: repo, notify: notify}
}

func (uc *CreateStaffBooking) Execute(ctx context.Context, in CreateStaffBookingInput) (*models.Booking, error) {
	if fields := staffIntakeFields(in.Name, in.Phone, in.Date, in.Time); len(fields) > 0 {
		return nil, httperr.ErrValidation(fields...)
	}

	rec := models.Booking{
		ID:        idgen.NewID(),
		Name:      strings.TrimSpace(in.Name),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		Date:      in.Date,
		Time:      in.Time,
		Treatment: in.Treatment,
		Notes:     strings.TrimSpace(in.Notes),
		Status:    string(domain.InitialStatus()),
		CreatedAt: timezone.Now(),
	}

	if err := uc.repo.Append(ctx, rec); err != nil {
		return nil, err
	}

	// Best-effort; the booking is already committed.
	uc.notify.Dispatch(notify.Event{Kind: notify.KindNew, Booking: rec})

	return &rec, nil
}
