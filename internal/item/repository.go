package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing items and their comments.
type Repository interface {
	Create(ctx context.Context, it *Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	Update(ctx context.Context, it *Item) error
	ListByOwner(ctx context.Context, ownerID string) ([]*Item, error)
	OwnsAny(ctx context.Context, ownerID string) (bool, error)
	Search(ctx context.Context, text string) ([]*Item, error)
	ListByRequest(ctx context.Context, requestID string) ([]*Item, error)

	CreateComment(ctx context.Context, cm *Comment) error
	ListComments(ctx context.Context, itemID string) ([]*Comment, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, it *Item) error {
	const query = `
		INSERT INTO public.items (name, description, is_available, owner_id, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	if err := r.pool.QueryRow(ctx, query,
		it.Name, it.Description, it.Available, it.OwnerID, it.RequestID,
	).Scan(&it.ID); err != nil {
		return fmt.Errorf("create item failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	const query = `
		SELECT id, name, description, is_available, owner_id, request_id
		FROM public.items
		WHERE id = $1
	`

	var it Item
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item failed: %w", err)
	}
	return &it, nil
}

func (r *pgxRepository) Update(ctx context.Context, it *Item) error {
	const query = `
		UPDATE public.items
		SET name = $1, description = $2, is_available = $3
		WHERE id = $4
	`

	ct, err := r.pool.Exec(ctx, query, it.Name, it.Description, it.Available, it.ID)
	if err != nil {
		return fmt.Errorf("update item failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Item, error) {
	const query = `
		SELECT id, name, description, is_available, owner_id, request_id
		FROM public.items
		WHERE owner_id = $1
		ORDER BY id
	`
	return r.listItems(ctx, query, ownerID)
}

func (r *pgxRepository) OwnsAny(ctx context.Context, ownerID string) (bool, error) {
	const query = `
		SELECT EXISTS (SELECT 1 FROM public.items WHERE owner_id = $1)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, ownerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check owned items failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) Search(ctx context.Context, text string) ([]*Item, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "description", "is_available", "owner_id", "request_id").
		From("public.items").
		Where(squirrel.Eq{"is_available": true}).
		Where(squirrel.Or{
			squirrel.ILike{"name": "%" + text + "%"},
			squirrel.ILike{"description": "%" + text + "%"},
		}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search items query failed: %w", err)
	}
	return r.listItems(ctx, query, args...)
}

func (r *pgxRepository) ListByRequest(ctx context.Context, requestID string) ([]*Item, error) {
	const query = `
		SELECT id, name, description, is_available, owner_id, request_id
		FROM public.items
		WHERE request_id = $1
		ORDER BY id
	`
	return r.listItems(ctx, query, requestID)
}

func (r *pgxRepository) listItems(ctx context.Context, query string, args ...any) ([]*Item, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items failed: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID,
		); err != nil {
			return nil, fmt.Errorf("scan item failed: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *pgxRepository) CreateComment(ctx context.Context, cm *Comment) error {
	const query = `
		INSERT INTO public.comments (text, item_id, author_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := r.pool.QueryRow(ctx, query,
		cm.Text, cm.ItemID, cm.AuthorID, cm.Created,
	).Scan(&cm.ID); err != nil {
		return fmt.Errorf("create comment failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ListComments(ctx context.Context, itemID string) ([]*Comment, error) {
	const query = `
		SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created_at
		FROM public.comments c
		JOIN public.users u ON c.author_id = u.id
		WHERE c.item_id = $1
		ORDER BY c.created_at
	`

	rows, err := r.pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list comments failed: %w", err)
	}
	defer rows.Close()

	var comments []*Comment
	for rows.Next() {
		var cm Comment
		if err := rows.Scan(
			&cm.ID, &cm.Text, &cm.ItemID, &cm.AuthorID, &cm.AuthorName, &cm.Created,
		); err != nil {
			return nil, fmt.Errorf("scan comment failed: %w", err)
		}
		comments = append(comments, &cm)
	}
	return comments, rows.Err()
}
