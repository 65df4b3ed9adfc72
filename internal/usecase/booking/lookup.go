package booking

import (
	"context"

	domain "github.com/su-physio/clinic-scheduler/internal/domain/booking"
	"github.com/su-physio/clinic-scheduler/internal/models"
)

// PublicBookingView is everything the self-service page may see. The
// internal id never crosses this boundary.
type PublicBookingView struct {
	BookingCode   string `json:"bookingCode"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Treatment     string `json:"treatment"`
	TreatmentName string `json:"treatmentName"`
	Notes         string `json:"notes,omitempty"`
	Status        string `json:"status"`
	CancelReason  string `json:"cancelReason,omitempty"`
}

func NewPublicBookingView(b models.Booking) PublicBookingView {
	return PublicBookingView{
		BookingCode:   b.BookingCode,
		Name:          b.Name,
		Phone:         b.Phone,
		Address:       b.Address,
		Date:          b.Date,
		Time:          b.Time,
		Treatment:     b.Treatment,
		TreatmentName: models.TreatmentName(b.Treatment),
		Notes:         b.Notes,
		Status:        b.Status,
		CancelReason:  b.CancelReason,
	}
}

// LookupBooking resolves the public (code, phone) pair. Read-only.
type LookupBooking struct {
	repo domain.Repository
}

func NewLookupBooking(repo domain.Repository) *LookupBooking {
	return &LookupBooking{repo: repo}
}

func (uc *LookupBooking) Execute(ctx context.Context, code, phone string) (*PublicBookingView, error) {
	rec, err := uc.repo.FindByCodeAndPhone(ctx, code, phone)
	if err != nil {
		return nil, err
	}

	view := NewPublicBookingView(*rec)
	return &view, nil
}
