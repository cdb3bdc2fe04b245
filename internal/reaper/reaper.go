package reaper

import (
	"context"
	"log"
	"time"

	"github.com/irpanzy/sport-area-stp-backend/config"
	"github.com/irpanzy/sport-area-stp-backend/internal/model"
	"github.com/irpanzy/sport-area-stp-backend/internal/parse"
	"github.com/irpanzy/sport-area-stp-backend/internal/store"
)

// Service periodically deletes bookings whose slot has elapsed, so stale
// records stop blocking the conflict check for new requests. It is a
// fire-and-forget maintenance task: nothing observes its results.
type Service struct {
	cfg   *config.Config
	store store.Store
}

// NewService creates the reaper service.
func NewService(cfg *config.Config, s store.Store) *Service {
	return &Service{cfg: cfg, store: s}
}

// statuses returns the configured reclaimable status set.
func (s *Service) statuses() []model.BookingStatus {
	out := make([]model.BookingStatus, 0, len(s.cfg.Reaper.Statuses))
	for _, raw := range s.cfg.Reaper.Statuses {
		status := model.BookingStatus(raw)
		if !model.ValidStatus(status) {
			log.Printf("Warning: ignoring unknown reaper status %q", raw)
			continue
		}
		out = append(out, status)
	}
	return out
}

// Run starts the reaping process in a loop until the context is cancelled.
func (s *Service) Run(ctx context.Context) {
	if !s.cfg.Reaper.Enabled {
		log.Println("Reaper is disabled. Not starting.")
		return
	}
	log.Println("Starting booking reaper...")

	s.ReapOnce(ctx)

	timer := time.NewTimer(s.cfg.Reaper.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Reaper shutting down.")
			return
		case <-timer.C:
			s.ReapOnce(ctx)
			timer.Reset(s.cfg.Reaper.Interval)
		}
	}
}

// ReapOnce performs a single sweep. A failure fetching the candidate set
// aborts the tick; the next tick retries naturally. A failure deleting one
// record is logged and does not stop the sweep for the remaining candidates.
func (s *Service) ReapOnce(ctx context.Context) {
	now := time.Now().UTC()

	candidates, err := s.store.ExpiredBookings(ctx, now, s.statuses())
	if err != nil {
		log.Printf("Reap tick aborted: %v", err)
		return
	}

	for _, booking := range candidates {
		end, err := parse.SlotEnd(booking.Date, booking.TimeSlot, s.cfg.Booking.SlotDuration)
		if err != nil {
			log.Printf("Warning: booking %d has unparseable time slot %q: %v", booking.ID, booking.TimeSlot, err)
			continue
		}
		if !end.Before(now) {
			continue
		}

		if err := s.store.DeleteBooking(ctx, booking.ID); err != nil {
			log.Printf("Error deleting expired booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Booking %d (%s %s %s) deleted automatically", booking.ID, booking.FieldType, booking.Date.Format("2006-01-02"), booking.TimeSlot)
	}
}
