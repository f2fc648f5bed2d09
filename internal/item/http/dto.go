package http

import (
	bookingHttp "github.com/itemshare/item-rental-backend/internal/booking/http"
	"github.com/itemshare/item-rental-backend/internal/item"
	"github.com/itemshare/item-rental-backend/internal/pkg/jsontime"
)

type CreateItemBody struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Available   *bool   `json:"available" binding:"required"`
	RequestID   *string `json:"requestId" binding:"omitempty,uuid"`
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
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
	RequestID   *string `json:"requestId"`
}

func NewItemResponse(it *item.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

type CommentResponse struct {
	ID         string                 `json:"id"`
	Text       string                 `json:"text"`
	AuthorName string                 `json:"authorName"`
	Created    jsontime.LocalDateTime `json:"created"`
}

func NewCommentResponse(cm *item.Comment) CommentResponse {
	return CommentResponse{
		ID:         cm.ID,
		Text:       cm.Text,
		AuthorName: cm.AuthorName,
		Created:    jsontime.New(cm.Created),
	}
}

// ItemDetailsResponse is the detail view: the item plus its booking
// summary and comments. At most one of lastBooking/nextBooking is set.
type ItemDetailsResponse struct {
	ItemResponse
	LastBooking *bookingHttp.BookingResponse `json:"lastBooking"`
	NextBooking *bookingHttp.BookingResponse `json:"nextBooking"`
	Comments    []CommentResponse            `json:"comments"`
}

func NewItemDetailsResponse(d *item.Details) ItemDetailsResponse {
	resp := ItemDetailsResponse{
		ItemResponse: NewItemResponse(&d.Item),
		Comments:     make([]CommentResponse, len(d.Comments)),
	}
	for i, cm := range d.Comments {
		resp.Comments[i] = NewCommentResponse(cm)
	}
	if d.LastBooking != nil {
		last := bookingHttp.NewBookingResponse(d.LastBooking)
		resp.LastBooking = &last
	}
	if d.NextBooking != nil {
		next := bookingHttp.NewBookingResponse(d.NextBooking)
		resp.NextBooking = &next
	}
	return resp
}
