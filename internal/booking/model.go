package booking

import (
	"net/http"
	"time"

	"github.com/itemshare/item-rental-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "invalid date range")
	ErrItemUnavailable  = apperror.New(http.StatusBadRequest, "item not available")
	ErrAccessDenied     = apperror.New(http.StatusForbidden, "access denied")
	ErrNoOwnedItems     = apperror.New(http.StatusBadRequest, "user owns no items")
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	// StatusCanceled is a valid stored value and participates in the
	// booker-side REJECTED bucket, but no operation assigns it.
	StatusCanceled Status = "CANCELED"
)

// Booking is a reservation of an item for a time window. Item and booker
// fields are resolved once at creation and carried by value; the record
// never holds live references into the item or user modules.
type Booking struct {
	ID    string
	Start time.Time
	End   time.Time

	ItemID          string
	ItemName        string
	ItemDescription string
	ItemAvailable   bool
	ItemRequestID   *string
	ItemOwnerID     string

	BookerID    string
	BookerName  string
	BookerEmail string

	Status Status
}
