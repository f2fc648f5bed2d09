package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the booking record store: keyed storage queryable by
// booker, by item owner, by item, by status and by time predicates.
// Listings are always ordered by start descending.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	Update(ctx context.Context, b *Booking) error
	ListByBooker(ctx context.Context, bookerID string, state State, now time.Time) ([]*Booking, error)
	ListByOwner(ctx context.Context, ownerID string, state State, now time.Time) ([]*Booking, error)

	// HasCompletedBooking reports whether the booker has an approved
	// booking of the item that ended before now. Comment eligibility.
	HasCompletedBooking(ctx context.Context, itemID, bookerID string, now time.Time) (bool, error)
}

type condBuilder func(now time.Time) squirrel.Sqlizer

// Bucket -> SQL condition dispatch tables, one per view. See the
// in-memory predicate tables in state.go for the semantics; the REJECTED
// asymmetry between views is repeated here on purpose.
var bookerConds = map[State]condBuilder{
	StateAll:      func(time.Time) squirrel.Sqlizer { return nil },
	StateCurrent:  currentCond,
	StatePast:     pastCond,
	StateFuture:   futureCond,
	StateWaiting:  statusCond(StatusWaiting),
	StateRejected: statusCond(StatusRejected, StatusCanceled),
}

var ownerConds = map[State]condBuilder{
	StateAll:      func(time.Time) squirrel.Sqlizer { return nil },
	StateCurrent:  currentCond,
	StatePast:     pastCond,
	StateFuture:   futureCond,
	StateWaiting:  statusCond(StatusWaiting),
	StateRejected: statusCond(StatusRejected),
}

func currentCond(now time.Time) squirrel.Sqlizer {
	return squirrel.And{
		squirrel.LtOrEq{"b.start_date": now},
		squirrel.GtOrEq{"b.end_date": now},
	}
}

func pastCond(now time.Time) squirrel.Sqlizer {
	return squirrel.Lt{"b.end_date": now}
}

func futureCond(now time.Time) squirrel.Sqlizer {
	return squirrel.Gt{"b.start_date": now}
}

func statusCond(statuses ...Status) condBuilder {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	return func(time.Time) squirrel.Sqlizer {
		return squirrel.Eq{"b.status": values}
	}
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("item_id", "booker_id", "start_date", "end_date", "status").
		Values(b.ItemID, b.BookerID, b.Start, b.End, b.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("start_date", b.Start).
		Set("end_date", b.End).
		Set("status", b.Status).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListByBooker(ctx context.Context, bookerID string, state State, now time.Time) ([]*Booking, error) {
	build, ok := bookerConds[state]
	if !ok {
		return nil, nil
	}
	return r.list(ctx, squirrel.Eq{"b.booker_id": bookerID}, build(now))
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID string, state State, now time.Time) ([]*Booking, error) {
	build, ok := ownerConds[state]
	if !ok {
		return nil, nil
	}
	return r.list(ctx, squirrel.Eq{"i.owner_id": ownerID}, build(now))
}

func (r *pgxRepository) list(ctx context.Context, scope, cond squirrel.Sqlizer) ([]*Booking, error) {
	builder := selectBookings().Where(scope)
	if cond != nil {
		builder = builder.Where(cond)
	}

	query, args, err := builder.OrderBy("b.start_date DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *pgxRepository) HasCompletedBooking(ctx context.Context, itemID, bookerID string, now time.Time) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sub, args, err := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"item_id": itemID}).
		Where(squirrel.Eq{"booker_id": bookerID}).
		Where(squirrel.Eq{"status": string(StatusApproved)}).
		Where(squirrel.Lt{"end_date": now}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build completed booking query failed: %w", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, "SELECT EXISTS ("+sub+")", args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check completed booking failed: %w", err)
	}
	return exists, nil
}

func selectBookings() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"b.id", "b.start_date", "b.end_date", "b.status",
		"b.item_id", "i.name", "i.description", "i.is_available", "i.request_id", "i.owner_id",
		"b.booker_id", "u.name", "u.email",
	).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Join("public.users u ON b.booker_id = u.id")
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.Start, &b.End, &b.Status,
		&b.ItemID, &b.ItemName, &b.ItemDescription, &b.ItemAvailable, &b.ItemRequestID, &b.ItemOwnerID,
		&b.BookerID, &b.BookerName, &b.BookerEmail,
	); err != nil {
		return nil, err
	}
	return &b, nil
}
