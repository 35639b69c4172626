package vendors

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing vendor data.
type Repository interface {
	Create(ctx context.Context, v *Vendor) error
	GetByID(ctx context.Context, id int64) (*Vendor, error)
	List(ctx context.Context, filter Filter) ([]*Vendor, int, error)
	Update(ctx context.Context, v *Vendor) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new vendor repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, v *Vendor) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.vendors").
		Columns("name", "is_active").
		Values(v.Name, v.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create vendor query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&v.ID, &v.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Vendor, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "is_active", "created_at").
		From("public.vendors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get vendor query failed: %w", err)
	}

	var v Vendor
	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&v.ID, &v.Name, &v.IsActive, &v.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get vendor failed: %w", err)
	}
	return &v, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Vendor, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	queryBuilder := psql.Select("id", "name", "is_active", "created_at", "count(*) OVER() AS total_count").
		From("public.vendors").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	queryBuilder = queryBuilder.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list vendors query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list vendors failed: %w", err)
	}
	defer rows.Close()

	var vendors []*Vendor
	var total int
	for rows.Next() {
		var v Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.IsActive, &v.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan vendor failed: %w", err)
		}
		vendors = append(vendors, &v)
	}
	return vendors, total, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, v *Vendor) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.vendors").
		Set("name", v.Name).
		Set("is_active", v.IsActive).
		Where(squirrel.Eq{"id": v.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update vendor query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update vendor failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
