package api

import (
	"time"

	"github.com/irpanzy/sport-area-stp-backend/internal/model"
)

// userProjection is the owner identity embedded in booking responses.
type userProjection struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// approverProjection is the admin identity embedded in booking responses.
type approverProjection struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type bookingResponse struct {
	ID        int64               `json:"id"`
	FieldType string              `json:"field_type"`
	Date      string              `json:"date"`
	TimeSlot  string              `json:"time_slot"`
	Status    model.BookingStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	User      *userProjection     `json:"user,omitempty"`
	Admin     *approverProjection `json:"admin,omitempty"`
}

func toBookingResponse(b *model.Booking) bookingResponse {
	resp := bookingResponse{
		ID:        b.ID,
		FieldType: b.FieldType,
		Date:      b.Date.Format("2006-01-02"),
		TimeSlot:  b.TimeSlot,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
	if b.User.ID != 0 {
		resp.User = &userProjection{ID: b.User.ID, Name: b.User.Name, Email: b.User.Email}
	}
	if b.Admin != nil {
		resp.Admin = &approverProjection{ID: b.Admin.ID, Name: b.Admin.Name}
	}
	return resp
}

func toBookingResponses(bookings []model.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	return out
}

type userResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *model.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt}
}

// bookingSummary is the reduced booking projection embedded in a user's own
// report listing.
type bookingSummary struct {
	ID        int64               `json:"id"`
	FieldType string              `json:"field_type"`
	Date      string              `json:"date"`
	TimeSlot  string              `json:"time_slot"`
	Status    model.BookingStatus `json:"status"`
}

type reportResponse struct {
	ID          int64            `json:"id"`
	BookingID   int64            `json:"booking_id"`
	FileName    string           `json:"file_name"`
	GeneratedAt time.Time        `json:"generated_at"`
	Booking     *bookingResponse `json:"booking,omitempty"`
	Summary     *bookingSummary  `json:"booking_summary,omitempty"`
}

func toReportResponse(r *model.Report, withBooking bool) reportResponse {
	resp := reportResponse{
		ID:          r.ID,
		BookingID:   r.BookingID,
		FileName:    r.FileName,
		GeneratedAt: r.GeneratedAt,
	}
	if withBooking && r.Booking.ID != 0 {
		b := toBookingResponse(&r.Booking)
		resp.Booking = &b
	}
	return resp
}

func toReportSummary(r *model.Report) reportResponse {
	resp := toReportResponse(r, false)
	if r.Booking.ID != 0 {
		resp.Summary = &bookingSummary{
			ID:        r.Booking.ID,
			FieldType: r.Booking.FieldType,
			Date:      r.Booking.Date.Format("2006-01-02"),
			TimeSlot:  r.Booking.TimeSlot,
			Status:    r.Booking.Status,
		}
	}
	return resp
}
