package request

import (
	"time"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteRequest struct {
	CustomerID     uuid.UUID  `json:"customer_id" binding:"required"`
	LocationID     uuid.UUID  `json:"location_id" binding:"required"`
	SubLocationID  uuid.UUID  `json:"sublocation_id" binding:"required"`
	EventID        *uuid.UUID `json:"event_id"`
	BookingStart   time.Time  `json:"booking_start" binding:"required"`
	BookingEnd     time.Time  `json:"booking_end" binding:"required"`
	Timezone       string     `json:"timezone" binding:"required"`
	IsEventBooking bool       `json:"is_event_booking"`
}

func (r *QuoteRequest) ToParams() queries.QuoteParams {
	return queries.QuoteParams{
		CustomerID:     r.CustomerID,
		LocationID:     r.LocationID,
		SubLocationID:  r.SubLocationID,
		EventID:        r.EventID,
		BookingStart:   r.BookingStart,
		BookingEnd:     r.BookingEnd,
		Timezone:       r.Timezone,
		IsEventBooking: r.IsEventBooking,
	}
}
