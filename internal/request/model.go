package request

import (
	"net/http"
	"time"

	"github.com/itemshare/item-rental-backend/internal/item"
	"github.com/itemshare/item-rental-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "request not found")
	ErrInvalidPaging = apperror.New(http.StatusBadRequest, "invalid paging parameters")
)

// Request is a "wanted item" post; other users answer it by listing items
// that carry its id.
type Request struct {
	ID          string
	Description string
	RequesterID string
	Created     time.Time
}

// Details is a request with the items answering it.
type Details struct {
	Request
	Items []*item.Item
}
