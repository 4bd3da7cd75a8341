package http

import (
	"time"

	"github.com/gearshare/gearshare-backend/internal/booking"
	"github.com/gearshare/gearshare-backend/internal/comment"
	"github.com/gearshare/gearshare-backend/internal/item"
)

// ItemTag holds minimal item info for embedding in other responses.
type ItemTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateItemBody struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Available   *bool   `json:"available" binding:"required"`
	RequestID   *string `json:"request_id" binding:"omitempty,uuid"`
}

type UpdateItemBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateCommentBody struct {
	Text string `json:"text" binding:"required"`
}

type ItemResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	RequestID   *string   `json:"request_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewItemResponse(it *item.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
		CreatedAt:   it.CreatedAt,
	}
}

// BookingTag is the short booking view embedded in the owner's item detail.
type BookingTag struct {
	ID       string    `json:"id"`
	BookerID string    `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

func NewBookingTag(b *booking.Booking) *BookingTag {
	if b == nil {
		return nil
	}
	return &BookingTag{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
	}
}

type CommentResponse struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewCommentResponse(cm *comment.Comment) CommentResponse {
	return CommentResponse{
		ID:         cm.ID,
		AuthorName: cm.AuthorName,
		Text:       cm.Text,
		CreatedAt:  cm.CreatedAt,
	}
}

// ItemDetailResponse is the single-item view: comments for everyone, the
// last/next bookings only for the owner.
type ItemDetailResponse struct {
	ItemResponse
	Comments    []CommentResponse `json:"comments"`
	LastBooking *BookingTag       `json:"last_booking,omitempty"`
	NextBooking *BookingTag       `json:"next_booking,omitempty"`
}
