package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/su-physio/clinic-scheduler/internal/httperr"
	"github.com/su-physio/clinic-scheduler/internal/kvstore"
	"github.com/su-physio/clinic-scheduler/internal/logger"
	"github.com/su-physio/clinic-scheduler/internal/session"
	ucBooking "github.com/su-physio/clinic-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// sessionCookie identifies a browser tab's ephemeral scope. It only carves
// out a namespace in the ephemeral store; authorization always comes from
// the (code, phone) lookup itself.
const sessionCookie = "su_session"

type PublicHandler struct {
	create    *ucBooking.CreatePublicBooking
	lookup    *ucBooking.LookupBooking
	cancel    *ucBooking.CancelPublicBooking
	sessions  *session.Manager
	ephemeral kvstore.Store
}

func NewPublicHandler(
	create *ucBooking.CreatePublicBooking,
	lookup *ucBooking.LookupBooking,
	cancel *ucBooking.CancelPublicBooking,
	sessions *session.Manager,
	ephemeral kvstore.Store,
) *PublicHandler {
	return &PublicHandler{
		create:    create,
		lookup:    lookup,
		cancel:    cancel,
		sessions:  sessions,
		ephemeral: ephemeral,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PublicCreateBookingRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Date      string `json:"date"` // YYYY-MM-DD; the form defaults to tomorrow
	Time      string `json:"time"` // HH:mm
	Treatment string `json:"treatment"`
	Notes     string `json:"notes"`
}

type PublicLookupRequest struct {
	BookingCode string `json:"booking_code"`
	Phone       string `json:"phone"`
}

type PublicCancelRequest struct {
	BookingCode string `json:"booking_code"`
	Phone       string `json:"phone"`
	Reason      string `json:"reason"`
}

// ======================================================
// SESSION SCOPE
// ======================================================

func (h *PublicHandler) scope(c *gin.Context) kvstore.Store {
	sid, err := c.Cookie(sessionCookie)
	if err != nil || sid == "" {
		sid = uuid.NewString()
		c.SetCookie(sessionCookie, sid, 0, "/", "", false, true)
	}
	return kvstore.Scoped(h.ephemeral, "sess:"+sid+":")
}

// ======================================================
// CREATE
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	rec, err := h.create.Execute(c.Request.Context(), ucBooking.CreatePublicBookingInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Address:   req.Address,
		Date:      req.Date,
		Time:      req.Time,
		Treatment: req.Treatment,
		Notes:     req.Notes,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	// Remember the pointer so the next visit auto-resumes. Failure here
	// never fails the booking.
	scope := h.scope(c)
	if err := h.sessions.Remember(c.Request.Context(), scope, rec.BookingCode, rec.Phone); err != nil {
		logger.Log.Warn("failed to remember booking pointer", "err", err)
	}

	c.JSON(http.StatusCreated, ucBooking.NewPublicBookingView(*rec))
}

// ======================================================
// STATUS CHECK
// ======================================================

func (h *PublicHandler) Lookup(c *gin.Context) {
	var req PublicLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}
	if req.BookingCode == "" || req.Phone == "" {
		httperr.BadRequest(c, "missing_credentials", "Booking code and phone are required.")
		return
	}

	view, err := h.lookup.Execute(c.Request.Context(), req.BookingCode, req.Phone)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// ======================================================
// SELF-SERVICE CANCEL
// ======================================================

func (h *PublicHandler) Cancel(c *gin.Context) {
	var req PublicCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}
	if req.BookingCode == "" || req.Phone == "" {
		httperr.BadRequest(c, "missing_credentials", "Booking code and phone are required.")
		return
	}

	rec, err := h.cancel.Execute(c.Request.Context(), req.BookingCode, req.Phone, req.Reason)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ucBooking.NewPublicBookingView(*rec))
}

// ======================================================
// SESSION CONTINUITY
// ======================================================

// ResumeSession resolves the saved pointer. Equivalent to the user typing
// the same credentials into the lookup form; a stale pointer is cleared and
// reported as a miss.
func (h *PublicHandler) ResumeSession(c *gin.Context) {
	rec, err := h.sessions.Resume(c.Request.Context(), h.scope(c))
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ucBooking.NewPublicBookingView(*rec))
}

// ForgetSession is the "switch to a different booking" escape hatch.
func (h *PublicHandler) ForgetSession(c *gin.Context) {
	h.sessions.Forget(c.Request.Context(), h.scope(c))
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
