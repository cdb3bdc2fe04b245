package api

import (
	"errors"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"

	"github.com/irpanzy/sport-area-stp-backend/config"
	"github.com/irpanzy/sport-area-stp-backend/internal/notification"
	"github.com/irpanzy/sport-area-stp-backend/internal/report"
	"github.com/irpanzy/sport-area-stp-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store   store.Store
	cfg     *config.Config
	reports *report.Generator
	pool    *notification.WorkerPool
	webpush *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, cfg *config.Config, pool *notification.WorkerPool, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		store:   s,
		cfg:     cfg,
		reports: report.NewGenerator(cfg.Reports.Dir),
		pool:    pool,
		webpush: webpushOptions,
	}
}

// fail maps a store error onto an HTTP response. Unrecognized errors are
// reported generically; the detail stays in the server log.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrBookingNotFound),
		errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrReportNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrSlotUnavailable),
		errors.Is(err, store.ErrBookingNotPending),
		errors.Is(err, store.ErrEmailTaken),
		errors.Is(err, store.ErrReportExists):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
