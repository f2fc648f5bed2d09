package http

import (
	"github.com/itemshare/item-rental-backend/internal/booking"
	"github.com/itemshare/item-rental-backend/internal/pkg/jsontime"
)

type CreateBookingBody struct {
	ItemID string                 `json:"itemId" binding:"required,uuid"`
	Start  jsontime.LocalDateTime `json:"start" binding:"required"`
	End    jsontime.LocalDateTime `json:"end" binding:"required"`
}

// ItemTag is the item slice of a booking representation.
type ItemTag struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
	RequestID   *string `json:"requestId"`
}

// BookerTag is the booker slice of a booking representation.
type BookerTag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingResponse struct {
	ID     string                 `json:"id"`
	Start  jsontime.LocalDateTime `json:"start"`
	End    jsontime.LocalDateTime `json:"end"`
	Item   ItemTag                `json:"item"`
	Booker BookerTag              `json:"booker"`
	Status string                 `json:"status"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:    b.ID,
		Start: jsontime.New(b.Start),
		End:   jsontime.New(b.End),
		Item: ItemTag{
			ID:          b.ItemID,
			Name:        b.ItemName,
			Description: b.ItemDescription,
			Available:   b.ItemAvailable,
			RequestID:   b.ItemRequestID,
		},
		Booker: BookerTag{
			ID:    b.BookerID,
			Name:  b.BookerName,
			Email: b.BookerEmail,
		},
		Status: string(b.Status),
	}
}
