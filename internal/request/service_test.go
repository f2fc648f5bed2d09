package request_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itemshare/item-rental-backend/internal/item"
	"github.com/itemshare/item-rental-backend/internal/request"
	"github.com/itemshare/item-rental-backend/internal/user"
)

type fixture struct {
	requests request.Service
	users    user.Service
	items    item.Repository

	requester *user.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{items: item.NewMemoryRepository()}
	f.users = user.NewService(user.NewMemoryRepository())
	f.requests = request.NewService(request.NewMemoryRepository(), f.users, f.items)

	var err error
	f.requester, err = f.users.Create(context.Background(), user.CreateRequest{
		Name: "Rita", Email: "rita@example.com",
	})
	require.NoError(t, err)
	return f
}

func TestCreateRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("create stamps requester and creation time", func(t *testing.T) {
		f := newFixture(t)
		req, err := f.requests.Create(ctx, f.requester.ID, "looking for a drill")
		require.NoError(t, err)
		assert.NotEmpty(t, req.ID)
		assert.Equal(t, f.requester.ID, req.RequesterID)
		assert.False(t, req.Created.IsZero())
	})

	t.Run("unknown requester is not found", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.requests.Create(ctx, uuid.NewString(), "looking for a drill")
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestListRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("own requests come newest first", func(t *testing.T) {
		f := newFixture(t)
		for i := 0; i < 3; i++ {
			_, err := f.requests.Create(ctx, f.requester.ID, fmt.Sprintf("request %d", i))
			require.NoError(t, err)
		}

		own, err := f.requests.ListOwn(ctx, f.requester.ID)
		require.NoError(t, err)
		require.Len(t, own, 3)
		for i := 1; i < len(own); i++ {
			assert.False(t, own[i].Created.After(own[i-1].Created))
		}
	})

	t.Run("paging bounds are validated", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.requests.ListAll(ctx, f.requester.ID, -1, 10)
		assert.ErrorIs(t, err, request.ErrInvalidPaging)

		_, err = f.requests.ListAll(ctx, f.requester.ID, 0, 0)
		assert.ErrorIs(t, err, request.ErrInvalidPaging)
	})

	t.Run("paging windows the newest-first order", func(t *testing.T) {
		f := newFixture(t)
		for i := 0; i < 5; i++ {
			_, err := f.requests.Create(ctx, f.requester.ID, fmt.Sprintf("request %d", i))
			require.NoError(t, err)
		}

		page, err := f.requests.ListAll(ctx, f.requester.ID, 1, 2)
		require.NoError(t, err)
		assert.Len(t, page, 2)

		tail, err := f.requests.ListAll(ctx, f.requester.ID, 4, 10)
		require.NoError(t, err)
		assert.Len(t, tail, 1)

		beyond, err := f.requests.ListAll(ctx, f.requester.ID, 50, 10)
		require.NoError(t, err)
		assert.Empty(t, beyond)
	})
}

func TestRequestDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("answering items are attached", func(t *testing.T) {
		f := newFixture(t)
		req, err := f.requests.Create(ctx, f.requester.ID, "looking for a drill")
		require.NoError(t, err)

		offered := &item.Item{
			Name:        "drill",
			Description: "cordless drill",
			Available:   true,
			OwnerID:     uuid.NewString(),
			RequestID:   &req.ID,
		}
		require.NoError(t, f.items.Create(ctx, offered))

		d, err := f.requests.FindByID(ctx, f.requester.ID, req.ID)
		require.NoError(t, err)
		require.Len(t, d.Items, 1)
		assert.Equal(t, offered.ID, d.Items[0].ID)
	})

	t.Run("unknown request is not found", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.requests.FindByID(ctx, f.requester.ID, uuid.NewString())
		assert.ErrorIs(t, err, request.ErrNotFound)
	})
}
