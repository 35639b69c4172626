package hotel

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing hotel data.
type Repository interface {
	// NextPublicSeq draws the next value from the hotel id sequence.
	// The sequence is the single allocation authority, so minting a
	// public hotel id never needs a retry.
	NextPublicSeq(ctx context.Context) (int64, error)
	Create(ctx context.Context, h *Hotel) error
	GetByID(ctx context.Context, id int64) (*Hotel, error)
	GetByPublicID(ctx context.Context, publicID string) (*Hotel, error)
	List(ctx context.Context, filter Filter) ([]*Hotel, int, error)
	Update(ctx context.Context, h *Hotel) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new hotel repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) NextPublicSeq(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.pool.QueryRow(ctx, "SELECT nextval('public.hotel_public_id_seq')").Scan(&seq); err != nil {
		return 0, fmt.Errorf("next hotel sequence failed: %w", err)
	}
	return seq, nil
}

func (r *pgxRepository) Create(ctx context.Context, h *Hotel) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.hotels").
		Columns("public_id", "vendor_id", "name", "city", "is_active").
		Values(h.PublicID, h.VendorID, h.Name, h.City, h.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create hotel query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&h.ID, &h.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Hotel, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *pgxRepository) GetByPublicID(ctx context.Context, publicID string) (*Hotel, error) {
	return r.getBy(ctx, squirrel.Eq{"public_id": publicID})
}

func (r *pgxRepository) getBy(ctx context.Context, pred squirrel.Eq) (*Hotel, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "public_id", "vendor_id", "name", "city", "is_active", "created_at").
		From("public.hotels").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get hotel query failed: %w", err)
	}

	var h Hotel
	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&h.ID, &h.PublicID, &h.VendorID, &h.Name, &h.City, &h.IsActive, &h.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get hotel failed: %w", err)
	}
	return &h, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Hotel, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	queryBuilder := psql.Select("id", "public_id", "vendor_id", "name", "city", "is_active", "created_at",
		"count(*) OVER() AS total_count").
		From("public.hotels").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id DESC")

	if filter.VendorID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"vendor_id": *filter.VendorID})
	}

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
		return nil, 0, fmt.Errorf("build list hotels query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list hotels failed: %w", err)
	}
	defer rows.Close()

	var hotels []*Hotel
	var total int
	for rows.Next() {
		var h Hotel
		if err := rows.Scan(&h.ID, &h.PublicID, &h.VendorID, &h.Name, &h.City, &h.IsActive, &h.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan hotel failed: %w", err)
		}
		hotels = append(hotels, &h)
	}
	return hotels, total, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, h *Hotel) error {
	// public_id is immutable once assigned; it is deliberately absent here.
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.hotels").
		Set("name", h.Name).
		Set("city", h.City).
		Set("is_active", h.IsActive).
		Where(squirrel.Eq{"id": h.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update hotel query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update hotel failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
