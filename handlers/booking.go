package handlers

import (
	"net/http"

	"thanawyia/models"
	"thanawyia/services/booking"
	"thanawyia/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the session booking endpoints.
type BookingHandler struct {
	BookingService booking.BookingService
}

func NewBookingHandler(bs booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingService: bs}
}

// CreateBookingHandler handles POST /api/bookings. The student is always the caller.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	id, _ := caller(c)
	var req models.BookingRequest
	if !bindJSON(c, &req) {
		return
	}
	req.StudentID = id

	created, err := h.BookingService.Create(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "booking", created)
}

// ListMyBookingsHandler handles GET /api/bookings/mine.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	id, role := caller(c)

	var (
		bookings []models.Booking
		err      error
	)
	switch role {
	case models.RoleTutor:
		bookings, err = h.BookingService.ListByTutor(c.Request.Context(), id)
	case models.RoleAdmin:
		bookings, err = h.BookingService.GetAll(c.Request.Context())
	default:
		bookings, err = h.BookingService.ListByStudent(c.Request.Context(), id)
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "bookings", bookings)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, ok := h.loadParticipantBooking(c)
	if !ok {
		return
	}
	respondOK(c, http.StatusOK, "booking", b)
}

// UpdateStatusHandler handles PATCH /api/bookings/:id/status and its admin twin.
// Tutors may only move their own bookings.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	id, role := caller(c)
	var req models.StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if role != models.RoleAdmin {
		b, err := h.BookingService.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if b.TutorID != id {
			forbidden(c, "Only the booked tutor can change this booking")
			return
		}
	}

	updated, err := h.BookingService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "booking", updated)
}

// CancelBookingHandler handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	var req models.CancelRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	if _, ok := h.loadParticipantBooking(c); !ok {
		return
	}

	updated, err := h.BookingService.Cancel(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "booking", updated)
}

// ListAllBookingsHandler handles GET /api/admin/bookings.
func (h *BookingHandler) ListAllBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingService.GetAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "bookings", bookings)
}

// loadParticipantBooking fetches the :id booking and checks the caller is on it or an admin.
func (h *BookingHandler) loadParticipantBooking(c *gin.Context) (*models.Booking, bool) {
	id, role := caller(c)
	b, err := h.BookingService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return nil, false
	}
	if role != models.RoleAdmin && b.StudentID != id && b.TutorID != id {
		forbidden(c, "You are not a participant of this booking")
		return nil, false
	}
	return b, true
}
