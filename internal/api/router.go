package api

import (
	"net/http"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/irpanzy/sport-area-stp-backend/config"
	"github.com/irpanzy/sport-area-stp-backend/internal/mw"
	"github.com/irpanzy/sport-area-stp-backend/internal/notification"
	"github.com/irpanzy/sport-area-stp-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg *config.Config, pool *notification.WorkerPool, webpushOptions *webpush.Options) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, cfg, pool, webpushOptions)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateBurst)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	authed := mw.Auth(cfg.Auth.JWTSecret)
	admin := mw.AdminOnly()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now().UTC()})
	})

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/auth/register", handler.Register)
		api.POST("/auth/login", handler.Login)

		api.GET("/availability", caching, handler.Availability)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)

		users := api.Group("/users", authed)
		{
			users.GET("", admin, handler.ListUsers)
			users.GET("/:id", handler.GetUser)
			users.PUT("/:id", admin, handler.UpdateUser)
			users.DELETE("/:id", admin, handler.DeleteUser)
		}

		bookings := api.Group("/bookings", authed)
		{
			bookings.POST("", handler.CreateBooking)
			bookings.GET("", admin, handler.ListBookings)
			bookings.GET("/my", handler.MyBookings)
			bookings.GET("/:id", handler.GetBooking)
			bookings.PATCH("/:id/status", admin, handler.UpdateBookingStatus)
			bookings.PUT("/:id", admin, handler.UpdateBooking)
			bookings.DELETE("/:id", admin, handler.DeleteBooking)
			bookings.POST("/:id/report", admin, handler.GenerateReport)
		}

		reports := api.Group("/reports", authed)
		{
			reports.GET("", admin, handler.ListReports)
			reports.GET("/my", handler.MyReports)
			reports.GET("/:id", handler.GetReport)
			reports.GET("/:id/download", handler.DownloadReport)
			reports.DELETE("/:id", admin, handler.DeleteReport)
		}

		subscriptions := api.Group("/subscriptions", authed)
		{
			subscriptions.GET("", handler.GetSubscription)
			subscriptions.PUT("", handler.PutSubscription)
			subscriptions.DELETE("", handler.DeleteSubscription)
		}
	}

	return r
}
