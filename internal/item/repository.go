package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gearshare/gearshare-backend/internal/pkg/pagination"
)

// Repository defines methods for accessing item data from storage.
type Repository interface {
	Create(ctx context.Context, it *Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	Update(ctx context.Context, it *Item) error
	ListByOwner(ctx context.Context, ownerID string, page pagination.PageSpec) ([]*Item, int, error)
	Search(ctx context.Context, text string, page pagination.PageSpec) ([]*Item, int, error)
	ListByRequest(ctx context.Context, requestID string) ([]*Item, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, it *Item) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.items").
		Columns("owner_id", "name", "description", "available", "request_id").
		Values(it.OwnerID, it.Name, it.Description, it.Available, it.RequestID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create item query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&it.ID, &it.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"i.id", "i.owner_id", "u.name", "i.name", "i.description",
		"i.available", "i.request_id", "i.created_at",
	).
		From("public.items i").
		Join("public.users u ON i.owner_id = u.id").
		Where(squirrel.Eq{"i.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item query failed: %w", err)
	}

	var it Item
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&it.ID, &it.OwnerID, &it.OwnerName, &it.Name, &it.Description,
		&it.Available, &it.RequestID, &it.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item failed: %w", err)
	}
	return &it, nil
}

func (r *pgxRepository) Update(ctx context.Context, it *Item) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.items").
		Set("name", it.Name).
		Set("description", it.Description).
		Set("available", it.Available).
		Where(squirrel.Eq{"id": it.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update item query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update item failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID string, page pagination.PageSpec) ([]*Item, int, error) {
	q := r.selectWithTotal().
		Where(squirrel.Eq{"i.owner_id": ownerID}).
		OrderBy("i.created_at ASC")
	return r.queryItems(ctx, q, page)
}

func (r *pgxRepository) Search(ctx context.Context, text string, page pagination.PageSpec) ([]*Item, int, error) {
	pattern := "%" + text + "%"
	q := r.selectWithTotal().
		Where(squirrel.Eq{"i.available": true}).
		Where(squirrel.Or{
			squirrel.ILike{"i.name": pattern},
			squirrel.ILike{"i.description": pattern},
		}).
		OrderBy("i.created_at ASC")
	return r.queryItems(ctx, q, page)
}

func (r *pgxRepository) ListByRequest(ctx context.Context, requestID string) ([]*Item, error) {
	q := r.selectWithTotal().
		Where(squirrel.Eq{"i.request_id": requestID}).
		OrderBy("i.created_at ASC")
	items, _, err := r.queryItems(ctx, q, pagination.All())
	return items, err
}

func (r *pgxRepository) selectWithTotal() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"i.id", "i.owner_id", "u.name", "i.name", "i.description",
		"i.available", "i.request_id", "i.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.items i").
		Join("public.users u ON i.owner_id = u.id")
}

func (r *pgxRepository) queryItems(ctx context.Context, q squirrel.SelectBuilder, page pagination.PageSpec) ([]*Item, int, error) {
	if !page.Unbounded() {
		q = q.Limit(page.Limit()).Offset(page.Offset())
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list items query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list items failed: %w", err)
	}
	defer rows.Close()

	var items []*Item
	var total int
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID, &it.OwnerID, &it.OwnerName, &it.Name, &it.Description,
			&it.Available, &it.RequestID, &it.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan item failed: %w", err)
		}
		items = append(items, &it)
	}
	return items, total, nil
}
