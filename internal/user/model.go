package user

import (
	"net/http"

	"github.com/itemshare/item-rental-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed = apperror.New(http.StatusConflict, "email already used")
)

// User represents a registered user. Identity and email uniqueness are
// owned here; the booking engine only resolves users through this module.
type User struct {
	ID    string
	Name  string
	Email string
}
