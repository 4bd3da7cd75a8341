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

// Repository defines methods for accessing booking data from storage.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, f Filter) ([]*Booking, int, error)

	// UpdateStatusFrom transitions the booking's status with a compare-and-set
	// against the observed status. It reports false when no row matched, i.e.
	// the booking is gone or a concurrent caller already moved it.
	UpdateStatusFrom(ctx context.Context, id string, from, to Status) (bool, error)

	// LastForItem and NextForItem return the most recent started and the next
	// upcoming booking of an item, or nil when there is none.
	LastForItem(ctx context.Context, itemID string, now time.Time) (*Booking, error)
	NextForItem(ctx context.Context, itemID string, now time.Time) (*Booking, error)

	// LatestEndedForItemByUser returns the booker's most recently ended booking
	// of the item, or nil when there is none. Feeds comment eligibility.
	LatestEndedForItemByUser(ctx context.Context, itemID, bookerID string, now time.Time) (*Booking, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("item_id", "booker_id", "start_time", "end_time", "status").
		Values(b.ItemID, b.BookerID, b.Start, b.End, b.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	q := r.selectBooking().Where(squirrel.Eq{"b.id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	var b Booking
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(
		&b.ID, &b.ItemID, &b.ItemName, &b.OwnerID, &b.BookerID, &b.BookerName,
		&b.Start, &b.End, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

// List translates the filter descriptor into a single SQL query; temporal
// classification never happens in memory.
func (r *pgxRepository) List(ctx context.Context, f Filter) ([]*Booking, int, error) {
	sql, args, err := r.listQuery(f).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.ItemID, &b.ItemName, &b.OwnerID, &b.BookerID, &b.BookerName,
			&b.Start, &b.End, &b.Status, &b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, total, nil
}

// listQuery applies the filter's scope, status and temporal clauses. CURRENT
// is inclusive on both endpoints; PAST and FUTURE are strict. Ordering is
// always start descending.
func (r *pgxRepository) listQuery(f Filter) squirrel.SelectBuilder {
	q := r.selectBookingWithTotal()

	if f.BookerID != "" {
		q = q.Where(squirrel.Eq{"b.booker_id": f.BookerID})
	}
	if f.OwnerID != "" {
		q = q.Where(squirrel.Eq{"i.owner_id": f.OwnerID})
	}
	if f.Status != "" {
		q = q.Where(squirrel.Eq{"b.status": f.Status})
	}
	if f.EndBefore != nil {
		q = q.Where(squirrel.Lt{"b.end_time": *f.EndBefore})
	}
	if f.StartAfter != nil {
		q = q.Where(squirrel.Gt{"b.start_time": *f.StartAfter})
	}
	if f.CurrentAt != nil {
		q = q.Where(squirrel.LtOrEq{"b.start_time": *f.CurrentAt}).
			Where(squirrel.GtOrEq{"b.end_time": *f.CurrentAt})
	}

	q = q.OrderBy("b.start_time DESC")

	if !f.Page.Unbounded() {
		q = q.Limit(f.Page.Limit()).Offset(f.Page.Offset())
	}
	return q
}

func (r *pgxRepository) UpdateStatusFrom(ctx context.Context, id string, from, to Status) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update booking status failed: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

func (r *pgxRepository) LastForItem(ctx context.Context, itemID string, now time.Time) (*Booking, error) {
	q := r.selectBooking().
		Where(squirrel.Eq{"b.item_id": itemID}).
		Where(squirrel.LtOrEq{"b.start_time": now}).
		OrderBy("b.start_time DESC").
		Limit(1)
	return r.topOne(ctx, q)
}

func (r *pgxRepository) NextForItem(ctx context.Context, itemID string, now time.Time) (*Booking, error) {
	q := r.selectBooking().
		Where(squirrel.Eq{"b.item_id": itemID}).
		Where(squirrel.Gt{"b.start_time": now}).
		OrderBy("b.start_time ASC").
		Limit(1)
	return r.topOne(ctx, q)
}

func (r *pgxRepository) LatestEndedForItemByUser(ctx context.Context, itemID, bookerID string, now time.Time) (*Booking, error) {
	q := r.selectBooking().
		Where(squirrel.Eq{"b.item_id": itemID}).
		Where(squirrel.Eq{"b.booker_id": bookerID}).
		Where(squirrel.Lt{"b.end_time": now}).
		OrderBy("b.end_time DESC").
		Limit(1)
	return r.topOne(ctx, q)
}

func (r *pgxRepository) selectBooking() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"b.id", "b.item_id", "i.name", "i.owner_id", "b.booker_id", "u.name",
		"b.start_time", "b.end_time", "b.status", "b.created_at", "b.updated_at",
	).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Join("public.users u ON b.booker_id = u.id")
}

func (r *pgxRepository) selectBookingWithTotal() squirrel.SelectBuilder {
	return r.selectBooking().Column("count(*) OVER() as total_count")
}

func (r *pgxRepository) topOne(ctx context.Context, q squirrel.SelectBuilder) (*Booking, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build booking lookup query failed: %w", err)
	}

	var b Booking
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(
		&b.ID, &b.ItemID, &b.ItemName, &b.OwnerID, &b.BookerID, &b.BookerName,
		&b.Start, &b.End, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("booking lookup failed: %w", err)
	}
	return &b, nil
}
