package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itemshare/item-rental-backend/internal/user"
)

func ptr(s string) *string { return &s }

func TestUserLifecycle(t *testing.T) {
	ctx := context.Background()
	service := user.NewService(user.NewMemoryRepository())

	t.Run("create and fetch", func(t *testing.T) {
		created, err := service.Create(ctx, user.CreateRequest{Name: "Anna", Email: "anna@example.com"})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)

		got, err := service.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Anna", got.Name)
		assert.Equal(t, "anna@example.com", got.Email)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := service.Create(ctx, user.CreateRequest{Name: "Another Anna", Email: "anna@example.com"})
		assert.ErrorIs(t, err, user.ErrEmailAlreadyUsed)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		_, err := service.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("delete removes the user", func(t *testing.T) {
		created, err := service.Create(ctx, user.CreateRequest{Name: "Temp", Email: "temp@example.com"})
		require.NoError(t, err)

		require.NoError(t, service.Delete(ctx, created.ID))
		_, err = service.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, user.ErrNotFound)

		assert.ErrorIs(t, service.Delete(ctx, created.ID), user.ErrNotFound)
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	service := user.NewService(user.NewMemoryRepository())

	anna, err := service.Create(ctx, user.CreateRequest{Name: "Anna", Email: "anna@example.com"})
	require.NoError(t, err)
	boris, err := service.Create(ctx, user.CreateRequest{Name: "Boris", Email: "boris@example.com"})
	require.NoError(t, err)

	t.Run("partial update touches only provided fields", func(t *testing.T) {
		updated, err := service.Update(ctx, anna.ID, user.UpdateRequest{Name: ptr("Anya")})
		require.NoError(t, err)
		assert.Equal(t, "Anya", updated.Name)
		assert.Equal(t, "anna@example.com", updated.Email)
	})

	t.Run("updating to a taken email conflicts", func(t *testing.T) {
		_, err := service.Update(ctx, boris.ID, user.UpdateRequest{Email: ptr("anna@example.com")})
		assert.ErrorIs(t, err, user.ErrEmailAlreadyUsed)
	})

	t.Run("resubmitting the own email is fine", func(t *testing.T) {
		updated, err := service.Update(ctx, boris.ID, user.UpdateRequest{Email: ptr("boris@example.com")})
		require.NoError(t, err)
		assert.Equal(t, "boris@example.com", updated.Email)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		_, err := service.Update(ctx, uuid.NewString(), user.UpdateRequest{Name: ptr("Nobody")})
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}
