package request

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing wanted-item requests.
// Listings are ordered by creation time descending.
type Repository interface {
	Create(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, id string) (*Request, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*Request, error)
	ListAll(ctx context.Context, offset, limit int) ([]*Request, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, req *Request) error {
	const query = `
		INSERT INTO public.requests (description, requester_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := r.pool.QueryRow(ctx, query,
		req.Description, req.RequesterID, req.Created,
	).Scan(&req.ID); err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Request, error) {
	const query = `
		SELECT id, description, requester_id, created_at
		FROM public.requests
		WHERE id = $1
	`

	var req Request
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.Description, &req.RequesterID, &req.Created,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get request failed: %w", err)
	}
	return &req, nil
}

func (r *pgxRepository) ListByRequester(ctx context.Context, requesterID string) ([]*Request, error) {
	const query = `
		SELECT id, description, requester_id, created_at
		FROM public.requests
		WHERE requester_id = $1
		ORDER BY created_at DESC
	`
	return r.listRequests(ctx, query, requesterID)
}

func (r *pgxRepository) ListAll(ctx context.Context, offset, limit int) ([]*Request, error) {
	const query = `
		SELECT id, description, requester_id, created_at
		FROM public.requests
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	return r.listRequests(ctx, query, limit, offset)
}

func (r *pgxRepository) listRequests(ctx context.Context, query string, args ...any) ([]*Request, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests failed: %w", err)
	}
	defer rows.Close()

	var requests []*Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(
			&req.ID, &req.Description, &req.RequesterID, &req.Created,
		); err != nil {
			return nil, fmt.Errorf("scan request failed: %w", err)
		}
		requests = append(requests, &req)
	}
	return requests, rows.Err()
}
