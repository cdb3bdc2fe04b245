package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/irpanzy/sport-area-stp-backend/internal/model"
	"github.com/irpanzy/sport-area-stp-backend/internal/mw"
	"github.com/irpanzy/sport-area-stp-backend/internal/parse"
	"github.com/irpanzy/sport-area-stp-backend/internal/store"
)

type createBookingRequest struct {
	FieldType string `json:"field_type" binding:"required"`
	Date      string `json:"date" binding:"required"`
	TimeSlot  string `json:"time_slot" binding:"required"`
}

// CreateBooking handles POST /api/bookings. The new booking is always
// pending with no approver; the slot must not be held by another active
// booking.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parse.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := parse.ParseSlot(req.TimeSlot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.store.CreateBooking(c.Request.Context(), mw.CurrentUserID(c), req.FieldType, date, req.TimeSlot)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "booking created",
		"booking": toBookingResponse(booking),
	})
}

// listFilter builds a BookingFilter from the recognized query parameters.
func listFilter(c *gin.Context) (store.BookingFilter, bool) {
	filter := store.BookingFilter{
		Status:    model.BookingStatus(c.Query("status")),
		FieldType: c.Query("field_type"),
	}

	if filter.Status != "" && !model.ValidStatus(filter.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status filter"})
		return filter, false
	}
	if raw := c.Query("date"); raw != "" {
		date, err := parse.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return filter, false
		}
		filter.Date = &date
	}
	return filter, true
}

// ListBookings handles GET /api/bookings (admin only): every booking in
// schedule order, optionally filtered by status, field type, and day.
func (h *Handler) ListBookings(c *gin.Context) {
	filter, ok := listFilter(c)
	if !ok {
		return
	}

	bookings, err := h.store.ListBookings(c.Request.Context(), filter, store.OrderBySchedule)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": toBookingResponses(bookings)})
}

// MyBookings handles GET /api/bookings/my: the caller's own bookings,
// most recent first.
func (h *Handler) MyBookings(c *gin.Context) {
	filter := store.BookingFilter{
		UserID: mw.CurrentUserID(c),
		Status: model.BookingStatus(c.Query("status")),
	}
	if filter.Status != "" && !model.ValidStatus(filter.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status filter"})
		return
	}

	bookings, err := h.store.ListBookings(c.Request.Context(), filter, store.OrderByRecent)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": toBookingResponses(bookings)})
}

// GetBooking handles GET /api/bookings/:id; accessible to the booking
// owner or an admin.
func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	booking, err := h.store.BookingByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	if booking.UserID != mw.CurrentUserID(c) && !mw.IsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied: only the booking owner or an admin may view this"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": toBookingResponse(booking)})
}

type updateStatusRequest struct {
	Status model.BookingStatus `json:"status" binding:"required,oneof=approved rejected"`
}

// UpdateBookingStatus handles PATCH /api/bookings/:id/status (admin only).
// Only a pending booking can be decided; approval attributes the caller as
// approver. The owner's subscribed browsers are notified of the decision.
func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.store.UpdateBookingStatus(c.Request.Context(), id, req.Status, mw.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}

	if h.pool != nil {
		h.pool.Dispatch(booking.ID)
	}

	message := "booking rejected"
	if req.Status == model.StatusApproved {
		message = "booking approved"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "booking": toBookingResponse(booking)})
}

type updateBookingRequest struct {
	FieldType *string              `json:"field_type"`
	Date      *string              `json:"date"`
	TimeSlot  *string              `json:"time_slot"`
	Status    *model.BookingStatus `json:"status" binding:"omitempty,oneof=pending approved rejected"`
}

// UpdateBooking handles PUT /api/bookings/:id (admin only). This is a
// trusted override: conflicts are not re-checked.
func (h *Handler) UpdateBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := store.BookingUpdate{
		FieldType: req.FieldType,
		TimeSlot:  req.TimeSlot,
		Status:    req.Status,
	}
	if req.Date != nil {
		date, err := parse.ParseDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		upd.Date = &date
	}
	if req.TimeSlot != nil {
		if _, err := parse.ParseSlot(*req.TimeSlot); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	booking, err := h.store.UpdateBooking(c.Request.Context(), id, upd, mw.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking updated", "booking": toBookingResponse(booking)})
}

// DeleteBooking handles DELETE /api/bookings/:id (admin only).
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteBooking(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

// Availability handles GET /api/availability: the active slot labels
// already taken for one field on one day. Public and cacheable.
func (h *Handler) Availability(c *gin.Context) {
	fieldType := c.Query("field_type")
	if fieldType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "field_type is required"})
		return
	}
	date, err := parse.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	taken, err := h.store.TakenSlots(c.Request.Context(), fieldType, date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"field_type":  fieldType,
		"date":        date.Format("2006-01-02"),
		"taken_slots": taken,
		"checked_at":  time.Now().UTC(),
	})
}
