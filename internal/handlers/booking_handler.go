package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/su-physio/clinic-scheduler/internal/httperr"
	"github.com/su-physio/clinic-scheduler/internal/httpresp"
	ucBooking "github.com/su-physio/clinic-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// BookingHandler is the staff-facing surface: intake, the full status
// workflow, deletion and the dashboard lists.
type BookingHandler struct {
	create    *ucBooking.CreateStaffBooking
	confirm   *ucBooking.ConfirmBooking
	complete  *ucBooking.CompleteBooking
	cancel    *ucBooking.CancelBooking
	get       *ucBooking.GetBooking
	delete    *ucBooking.DeleteBooking
	byDate    *ucBooking.ListBookingsByDate
	byMonth   *ucBooking.ListBookingsByMonth
	search    *ucBooking.SearchBookings
	dashboard *ucBooking.DashboardStats
	remind    *ucBooking.SendBookingReminder
}

func NewBookingHandler(
	create *ucBooking.CreateStaffBooking,
	confirm *ucBooking.ConfirmBooking,
	complete *ucBooking.CompleteBooking,
	cancel *ucBooking.CancelBooking,
	get *ucBooking.GetBooking,
	del *ucBooking.DeleteBooking,
	byDate *ucBooking.ListBookingsByDate,
	byMonth *ucBooking.ListBookingsByMonth,
	search *ucBooking.SearchBookings,
	dashboard *ucBooking.DashboardStats,
	remind *ucBooking.SendBookingReminder,
) *BookingHandler {
	return &BookingHandler{
		create:    create,
		confirm:   confirm,
		complete:  complete,
		cancel:    cancel,
		get:       get,
		delete:    del,
		byDate:    byDate,
		byMonth:   byMonth,
		search:    search,
		dashboard: dashboard,
		remind:    remind,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Treatment string `json:"treatment"`
	Notes     string `json:"notes"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return 0, false
	}
	return id, true
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	rec, err := h.create.Execute(c.Request.Context(), ucBooking.CreateStaffBookingInput{
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

	c.JSON(http.StatusCreated, rec)
}

// ======================================================
// READ
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	rec, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, rec)
}

// List serves both ?date=YYYY-MM-DD (one day, time-ordered) and ?query=
// (search). Without either it returns the whole set, newest first.
func (h *BookingHandler) List(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		records, err := h.byDate.Execute(c.Request.Context(), date)
		if err != nil {
			mapBookingError(c, err)
			return
		}
		httpresp.List(c, records)
		return
	}

	records, err := h.search.Execute(c.Request.Context(), c.Query("query"))
	if err != nil {
		mapBookingError(c, err)
		return
	}
	httpresp.List(c, records)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Year and month are required.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	out, err := h.byMonth.Execute(c.Request.Context(), year, month)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *BookingHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboard.Execute(c.Request.Context())
	if err != nil {
		mapBookingError(c, err)
		return
	}
	httpresp.OK(c, stats)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	rec, err := h.confirm.Execute(c.Request.Context(), id)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, rec)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	rec, err := h.complete.Execute(c.Request.Context(), id)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, rec)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	rec, err := h.cancel.Execute(c.Request.Context(), id, req.Reason)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, rec)
}

// Remind queues a single-booking reminder message.
func (h *BookingHandler) Remind(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	rec, err := h.remind.Execute(c.Request.Context(), id)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, rec)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
