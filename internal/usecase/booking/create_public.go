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

type CreatePublicBookingInput struct {
	Name    string
	Phone   string
	Address string

	Date string
	Time string

	Treatment string
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreatePublicBooking struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCreatePublicBooking(repo domain.Repository, notify *notify.Dispatcher) *CreatePublicBooking {
	return &CreatePublicBooking{repo: repo, notify: notify}
}

func (uc *CreatePublicBooking) Execute(ctx context.Context, in CreatePublicBookingInput) (*models.Booking, error) {
	if fields := publicIntakeFields(in.Name, in.Phone, in.Address, in.Date, in.Time, in.Treatment); len(fields) > 0 {
		return nil, httperr.ErrValidation(fields...)
	}

	rec := models.Booking{
		ID:          idgen.NewID(),
		BookingCode: idgen.NewBookingCode(),
		Name:        strings.TrimSpace(in.Name),
		Phone:       strings.TrimSpace(in.Phone),
		Address:     strings.TrimSpace(in.Address),
		Date:        in.Date,
		Time:        in.Time,
		Treatment:   in.Treatment,
		Notes:       strings.TrimSpace(in.Notes),
		Status:      string(domain.InitialStatus()),
		Source:      models.SourcePublic,
		CreatedAt:   timezone.Now(),
	}

	if err := uc.repo.Append(ctx, rec); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{Kind: notify.KindPublicNew, Booking: rec})

	return &rec, nil
}
