package http

import (
	"time"

	"github.com/gearshare/gearshare-backend/internal/booking"
	itemHttp "github.com/gearshare/gearshare-backend/internal/item/http"
	userHttp "github.com/gearshare/gearshare-backend/internal/user/http"
)

type CreateBookingBody struct {
	ItemID string    `json:"item_id" binding:"required,uuid"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

type BookingResponse struct {
	ID        string              `json:"id"`
	Item      itemHttp.ItemTag    `json:"item"`
	Booker    userHttp.UserTag    `json:"booker"`
	Start     time.Time           `json:"start"`
	End       time.Time           `json:"end"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Item:      itemHttp.ItemTag{ID: b.ItemID, Name: b.ItemName},
		Booker:    userHttp.UserTag{ID: b.BookerID, Name: b.BookerName},
		Start:     b.Start,
		End:       b.End,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
