package api

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/irpanzy/sport-area-stp-backend/internal/model"
	"github.com/irpanzy/sport-area-stp-backend/internal/mw"
	"github.com/irpanzy/sport-area-stp-backend/internal/store"
)

// GenerateReport handles POST /api/bookings/:id/report (admin only).
// Reports exist only for approved bookings, at most one per booking.
func (h *Handler) GenerateReport(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	booking, err := h.store.BookingByID(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}
	if booking.Status != model.StatusApproved {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reports can only be generated for approved bookings"})
		return
	}

	if _, err := h.store.ReportByBookingID(ctx, id); err == nil {
		fail(c, store.ErrReportExists)
		return
	} else if !errors.Is(err, store.ErrReportNotFound) {
		fail(c, err)
		return
	}

	fileName, relPath, err := h.reports.Generate(booking)
	if err != nil {
		fail(c, err)
		return
	}

	rec := model.Report{
		BookingID: booking.ID,
		FileName:  fileName,
		FilePath:  relPath,
	}
	if err := h.store.CreateReport(ctx, &rec); err != nil {
		// Lost a race with a concurrent generation; drop the orphan file.
		_ = h.reports.Remove(relPath)
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "report generated",
		"report":  toReportResponse(&rec, false),
	})
}

// ListReports handles GET /api/reports (admin only), optionally filtered
// by booking_id.
func (h *Handler) ListReports(c *gin.Context) {
	var bookingID *int64
	if raw := c.Query("booking_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking_id"})
			return
		}
		bookingID = &id
	}

	reports, err := h.store.ListReports(c.Request.Context(), bookingID)
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]reportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, toReportResponse(&reports[i], true))
	}
	c.JSON(http.StatusOK, gin.H{"reports": out})
}

// MyReports handles GET /api/reports/my: reports for the caller's own
// bookings with a reduced booking projection.
func (h *Handler) MyReports(c *gin.Context) {
	reports, err := h.store.ReportsByUser(c.Request.Context(), mw.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]reportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, toReportSummary(&reports[i]))
	}
	c.JSON(http.StatusOK, gin.H{"reports": out})
}

// reportForCaller fetches a report and enforces owner-or-admin access.
func (h *Handler) reportForCaller(c *gin.Context) (*model.Report, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}

	rec, err := h.store.ReportByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return nil, false
	}

	if rec.Booking.UserID != mw.CurrentUserID(c) && !mw.IsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied: only the booking owner or an admin may view this"})
		return nil, false
	}
	return rec, true
}

// GetReport handles GET /api/reports/:id.
func (h *Handler) GetReport(c *gin.Context) {
	rec, ok := h.reportForCaller(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": toReportResponse(rec, true)})
}

// DownloadReport handles GET /api/reports/:id/download, streaming the
// stored file as an attachment.
func (h *Handler) DownloadReport(c *gin.Context) {
	rec, ok := h.reportForCaller(c)
	if !ok {
		return
	}

	fullPath := h.reports.FullPath(rec.FilePath)
	if _, err := os.Stat(fullPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report file not found"})
		return
	}
	c.FileAttachment(fullPath, rec.FileName)
}

// DeleteReport handles DELETE /api/reports/:id (admin only). Removes the
// file as well as the record.
func (h *Handler) DeleteReport(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	rec, err := h.store.ReportByID(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.reports.Remove(rec.FilePath); err != nil {
		fail(c, err)
		return
	}
	if err := h.store.DeleteReport(ctx, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "report deleted"})
}
