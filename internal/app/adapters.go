package app

import (
	"context"

	"github.com/itemshare/item-rental-backend/internal/booking"
	"github.com/itemshare/item-rental-backend/internal/item"
	"github.com/itemshare/item-rental-backend/internal/user"
)

// itemCatalog adapts the item service to the booking engine's view of the
// catalog.
type itemCatalog struct {
	items item.Service
}

func (a itemCatalog) GetItem(ctx context.Context, id string) (*booking.ItemRef, error) {
	it, err := a.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &booking.ItemRef{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		OwnerID:     it.OwnerID,
		RequestID:   it.RequestID,
	}, nil
}

func (a itemCatalog) OwnsAnyItem(ctx context.Context, ownerID string) (bool, error) {
	return a.items.OwnsAny(ctx, ownerID)
}

// userDirectory adapts the user service to the booking engine's directory.
type userDirectory struct {
	users user.Service
}

func (a userDirectory) GetUser(ctx context.Context, id string) (*booking.UserRef, error) {
	u, err := a.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &booking.UserRef{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}, nil
}
