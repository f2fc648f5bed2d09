package booking_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itemshare/item-rental-backend/internal/booking"
	"github.com/itemshare/item-rental-backend/internal/pkg/apperror"
)

type catalogStub struct {
	items map[string]*booking.ItemRef
}

func (s catalogStub) GetItem(_ context.Context, id string) (*booking.ItemRef, error) {
	it, ok := s.items[id]
	if !ok {
		return nil, apperror.New(http.StatusNotFound, "item not found")
	}
	return it, nil
}

func (s catalogStub) OwnsAnyItem(_ context.Context, ownerID string) (bool, error) {
	for _, it := range s.items {
		if it.OwnerID == ownerID {
			return true, nil
		}
	}
	return false, nil
}

type directoryStub struct {
	users map[string]*booking.UserRef
}

func (s directoryStub) GetUser(_ context.Context, id string) (*booking.UserRef, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperror.New(http.StatusNotFound, "user not found")
	}
	return u, nil
}

type fixture struct {
	service booking.Service
	repo    *booking.MemoryRepository

	ownerID    string
	bookerID   string
	itemID     string
	closedID   string
	strangerID string
}

func newFixture() *fixture {
	f := &fixture{
		repo:       booking.NewMemoryRepository(),
		ownerID:    uuid.NewString(),
		bookerID:   uuid.NewString(),
		itemID:     uuid.NewString(),
		closedID:   uuid.NewString(),
		strangerID: uuid.NewString(),
	}

	catalog := catalogStub{items: map[string]*booking.ItemRef{
		f.itemID: {
			ID:          f.itemID,
			Name:        "cordless drill",
			Description: "18V drill with two batteries",
			Available:   true,
			OwnerID:     f.ownerID,
		},
		f.closedID: {
			ID:          f.closedID,
			Name:        "broken ladder",
			Description: "do not lend this out",
			Available:   false,
			OwnerID:     f.ownerID,
		},
	}}
	directory := directoryStub{users: map[string]*booking.UserRef{
		f.ownerID:    {ID: f.ownerID, Name: "Olga", Email: "olga@example.com"},
		f.bookerID:   {ID: f.bookerID, Name: "Boris", Email: "boris@example.com"},
		f.strangerID: {ID: f.strangerID, Name: "Sven", Email: "sven@example.com"},
	}}

	f.service = booking.NewService(f.repo, catalog, directory)
	return f
}

func window(fromNow, length time.Duration) (time.Time, time.Time) {
	start := time.Now().Add(fromNow)
	return start, start.Add(length)
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("new booking starts out waiting and carries item and booker", func(t *testing.T) {
		f := newFixture()
		start, end := window(time.Hour, time.Hour)

		b, err := f.service.Create(ctx, f.bookerID, booking.CreateRequest{
			ItemID: f.itemID, Start: start, End: end,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, b.ID)
		assert.Equal(t, booking.StatusWaiting, b.Status)
		assert.Equal(t, f.itemID, b.ItemID)
		assert.Equal(t, "cordless drill", b.ItemName)
		assert.Equal(t, f.ownerID, b.ItemOwnerID)
		assert.Equal(t, f.bookerID, b.BookerID)
		assert.Equal(t, "boris@example.com", b.BookerEmail)

		stored, err := f.repo.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusWaiting, stored.Status)
	})

	t.Run("start must be strictly before end", func(t *testing.T) {
		f := newFixture()
		start := time.Now().Add(time.Hour)

		_, err := f.service.Create(ctx, f.bookerID, booking.CreateRequest{
			ItemID: f.itemID, Start: start, End: start,
		})
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)

		_, err = f.service.Create(ctx, f.bookerID, booking.CreateRequest{
			ItemID: f.itemID, Start: start, End: start.Add(-time.Minute),
		})
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("unavailable item is rejected", func(t *testing.T) {
		f := newFixture()
		start, end := window(time.Hour, time.Hour)

		_, err := f.service.Create(ctx, f.bookerID, booking.CreateRequest{
			ItemID: f.closedID, Start: start, End: end,
		})
		assert.ErrorIs(t, err, booking.ErrItemUnavailable)
	})

	t.Run("unknown booker and unknown item are not found", func(t *testing.T) {
		f := newFixture()
		start, end := window(time.Hour, time.Hour)

		_, err := f.service.Create(ctx, uuid.NewString(), booking.CreateRequest{
			ItemID: f.itemID, Start: start, End: end,
		})
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)

		_, err = f.service.Create(ctx, f.bookerID, booking.CreateRequest{
			ItemID: uuid.NewString(), Start: start, End: end,
		})
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})

	t.Run("owner may book their own item", func(t *testing.T) {
		f := newFixture()
		start, end := window(time.Hour, time.Hour)

		b, err := f.service.Create(ctx, f.ownerID, booking.CreateRequest{
			ItemID: f.itemID, Start: start, End: end,
		})
		require.NoError(t, err)
		assert.Equal(t, f.ownerID, b.BookerID)
		assert.Equal(t, f.ownerID, b.ItemOwnerID)
	})

	t.Run("overlapping windows are not arbitrated", func(t *testing.T) {
		f := newFixture()
		start, end := window(time.Hour, 2*time.Hour)

		first, err := f.service.Create(ctx, f.bookerID, booking.CreateRequest{
			ItemID: f.itemID, Start: start, End: end,
		})
		require.NoError(t, err)
		_, err = f.service.UpdateStatus(ctx, f.ownerID, first.ID, true)
		require.NoError(t, err)

		second, err := f.service.Create(ctx, f.strangerID, booking.CreateRequest{
			ItemID: f.itemID, Start: start.Add(30 * time.Minute), End: end,
		})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusWaiting, second.Status)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("only the item owner decides", func(t *testing.T) {
		f := newFixture()
		start, end := window(time.Hour, time.Hour)
		b, err := f.service.Create(ctx, f.bookerID, booking.CreateRequest{
			ItemID: f.itemID, Start: start, End: end,
		})
		require.NoError(t, err)

		_, err = f.service.UpdateStatus(ctx, f.bookerID, b.ID, true)
		assert.ErrorIs(t, err, booking.ErrAccessDenied)

		_, err = f.service.UpdateStatus(ctx, f.strangerID, b.ID, false)
		assert.ErrorIs(t, err, booking.ErrAccessDenied)
	})

	t.Run("approve and reject", func(t *testing.T) {
		f := newFixture()
		start, end := window(time.Hour, time.Hour)
		b, err := f.service.Create(ctx, f.bookerID, booking.CreateRequest{
			ItemID: f.itemID, Start: start, End: end,
		})
		require.NoError(t, err)

		decided, err := f.service.UpdateStatus(ctx, f.ownerID, b.ID, true)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusApproved, decided.Status)

		decided, err = f.service.UpdateStatus(ctx, f.ownerID, b.ID, false)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusRejected, decided.Status)

		stored, err := f.repo.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusRejected, stored.Status)
	})

	t.Run("unknown booking is not found", func(t *testing.T) {
		f := newFixture()
		_, err := f.service.UpdateStatus(ctx, f.ownerID, uuid.NewString(), true)
		assert.ErrorIs(t, err, booking.ErrNotFound)
	})
}

func TestFindBookingByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	start, end := window(time.Hour, time.Hour)
	b, err := f.service.Create(ctx, f.bookerID, booking.CreateRequest{
		ItemID: f.itemID, Start: start, End: end,
	})
	require.NoError(t, err)

	t.Run("booker and owner see the booking", func(t *testing.T) {
		got, err := f.service.FindByID(ctx, f.bookerID, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)

		got, err = f.service.FindByID(ctx, f.ownerID, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)
	})

	t.Run("anyone else is denied", func(t *testing.T) {
		_, err := f.service.FindByID(ctx, f.strangerID, b.ID)
		assert.ErrorIs(t, err, booking.ErrAccessDenied)
	})

	t.Run("unknown caller is not found before access is checked", func(t *testing.T) {
		_, err := f.service.FindByID(ctx, uuid.NewString(), b.ID)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})

	t.Run("unknown booking is not found", func(t *testing.T) {
		_, err := f.service.FindByID(ctx, f.bookerID, uuid.NewString())
		assert.ErrorIs(t, err, booking.ErrNotFound)
	})
}

func TestListBookings(t *testing.T) {
	ctx := context.Background()

	t.Run("owner listing requires at least one owned item", func(t *testing.T) {
		f := newFixture()
		_, err := f.service.ListByOwner(ctx, f.strangerID, booking.StateAll)
		assert.ErrorIs(t, err, booking.ErrNoOwnedItems)
	})

	t.Run("listings require a known user", func(t *testing.T) {
		f := newFixture()
		_, err := f.service.ListByBooker(ctx, uuid.NewString(), booking.StateAll)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)

		_, err = f.service.ListByOwner(ctx, uuid.NewString(), booking.StateAll)
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})

	t.Run("booker and owner views cover the same bookings", func(t *testing.T) {
		f := newFixture()
		for i := 0; i < 3; i++ {
			start, end := window(time.Duration(i+1)*time.Hour, time.Hour)
			_, err := f.service.Create(ctx, f.bookerID, booking.CreateRequest{
				ItemID: f.itemID, Start: start, End: end,
			})
			require.NoError(t, err)
		}

		byBooker, err := f.service.ListByBooker(ctx, f.bookerID, booking.StateAll)
		require.NoError(t, err)
		byOwner, err := f.service.ListByOwner(ctx, f.ownerID, booking.StateAll)
		require.NoError(t, err)

		assert.Len(t, byBooker, 3)
		assert.Len(t, byOwner, 3)
	})
}
