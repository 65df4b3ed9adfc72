package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/su-physio/clinic-scheduler/internal/httperr"
)

// mapBookingError translates use-case errors into HTTP responses. The public
// lookup deliberately produces the same not-found shape whichever credential
// mismatched.
func mapBookingError(c *gin.Context, err error) {
	if ve, ok := httperr.AsValidation(err); ok {
		httperr.Validation(c, ve)
		return
	}

	switch {
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "The booking cannot change state anymore.")
	case httperr.IsBusiness(err, "empty_cancel_reason"):
		httperr.BadRequest(c, "empty_cancel_reason", "A cancellation reason is required.")
	case httperr.IsBusiness(err, "invalid_year"):
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
	case httperr.IsBusiness(err, "invalid_month"):
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
	case httperr.IsBusiness(err, "no_saved_booking"):
		httperr.NotFound(c, "no_saved_booking", "No saved booking in this session.")
	default:
		httperr.Internal(c, "storage_error", "The booking store is unavailable.")
	}
}
