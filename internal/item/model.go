package item

import (
	"net/http"
	"time"

	"github.com/itemshare/item-rental-backend/internal/booking"
	"github.com/itemshare/item-rental-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "item not found")
	ErrNotOwner          = apperror.New(http.StatusBadRequest, "user is not the owner of the item")
	ErrCommentNotAllowed = apperror.New(http.StatusBadRequest, "user has no completed booking of the item")
)

// Item is a thing offered for rental. RequestID links the item to the
// wanted-item request it answers, when there is one.
type Item struct {
	ID          string
	Name        string
	Description string
	Available   bool
	OwnerID     string
	RequestID   *string
}

// Comment is feedback left by a booker who completed a rental of the item.
type Comment struct {
	ID         string
	Text       string
	ItemID     string
	AuthorID   string
	AuthorName string
	Created    time.Time
}

// Details is an item enriched for its detail view: the owner's booking
// summary (at most one of LastBooking/NextBooking is set) and comments.
type Details struct {
	Item
	LastBooking *booking.Booking
	NextBooking *booking.Booking
	Comments    []*Comment
}
