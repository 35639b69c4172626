package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"hotel-pms-backend/internal/identity"
)

// Repository defines methods for accessing account data.
type Repository interface {
	// NextSequence atomically allocates the next per-(role code, hotel)
	// account sequence. It must never be implemented as read-then-write
	// in application code.
	NextSequence(ctx context.Context, roleCode identity.RoleCode, hotelPublicID string) (int, error)
	Create(ctx context.Context, a *Account) error
	GetByAccountID(ctx context.Context, accountID string) (*Account, error)
	List(ctx context.Context, filter Filter) ([]*Account, int, error)
	Update(ctx context.Context, a *Account) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new account repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// NextSequence relies on the upsert being a single atomic statement, so two
// concurrent allocations for the same (role code, hotel) can never observe
// the same counter value.
func (r *pgxRepository) NextSequence(ctx context.Context, roleCode identity.RoleCode, hotelPublicID string) (int, error) {
	const query = `
		INSERT INTO public.account_sequences (role_code, hotel_public_id, last_seq)
		VALUES ($1, $2, 1)
		ON CONFLICT (role_code, hotel_public_id)
		DO UPDATE SET last_seq = account_sequences.last_seq + 1
		RETURNING last_seq`

	var seq int
	if err := r.pool.QueryRow(ctx, query, string(roleCode), hotelPublicID).Scan(&seq); err != nil {
		return 0, fmt.Errorf("allocate account sequence failed: %w", err)
	}
	return seq, nil
}

func (r *pgxRepository) Create(ctx context.Context, a *Account) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.hotel_accounts").
		Columns("account_id", "role_id", "role_code", "account_type", "hotel_id",
			"sequence", "display_name", "password_hash", "created_by", "is_active").
		Values(a.AccountID, a.RoleID, string(a.RoleCode), int(a.AccountType), a.HotelID,
			a.Sequence, a.DisplayName, a.PasswordHash, a.CreatedBy, a.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create account query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&a.ID, &a.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create account failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByAccountID(ctx context.Context, accountID string) (*Account, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"a.id", "a.account_id", "a.role_id", "a.role_code", "a.account_type",
		"a.hotel_id", "h.public_id", "a.sequence", "a.display_name",
		"a.password_hash", "a.created_by", "a.is_active", "a.created_at",
	).
		From("public.hotel_accounts a").
		Join("public.hotels h ON a.hotel_id = h.id").
		Where(squirrel.Eq{"a.account_id": accountID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get account query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var (
		a           Account
		roleCode    string
		accountType int
	)
	if err := row.Scan(
		&a.ID, &a.AccountID, &a.RoleID, &roleCode, &accountType,
		&a.HotelID, &a.HotelPublicID, &a.Sequence, &a.DisplayName,
		&a.PasswordHash, &a.CreatedBy, &a.IsActive, &a.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get account failed: %w", err)
	}
	a.RoleCode = identity.RoleCode(roleCode)
	a.AccountType = identity.AccountType(accountType)
	return &a, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Account, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	queryBuilder := psql.Select(
		"a.id", "a.account_id", "a.role_id", "a.role_code", "a.account_type",
		"a.hotel_id", "h.public_id", "a.sequence", "a.display_name",
		"a.password_hash", "a.created_by", "a.is_active", "a.created_at",
		"count(*) OVER() AS total_count",
	).
		From("public.hotel_accounts a").
		Join("public.hotels h ON a.hotel_id = h.id").
		Where(squirrel.Eq{"a.hotel_id": filter.HotelID}).
		Where(squirrel.Eq{"a.is_active": true}).
		OrderBy("a.id")

	if filter.RoleCode != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.role_code": filter.RoleCode})
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
		return nil, 0, fmt.Errorf("build list accounts query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list accounts failed: %w", err)
	}
	defer rows.Close()

	var accounts []*Account
	var total int
	for rows.Next() {
		var (
			a           Account
			roleCode    string
			accountType int
		)
		if err := rows.Scan(
			&a.ID, &a.AccountID, &a.RoleID, &roleCode, &accountType,
			&a.HotelID, &a.HotelPublicID, &a.Sequence, &a.DisplayName,
			&a.PasswordHash, &a.CreatedBy, &a.IsActive, &a.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan account failed: %w", err)
		}
		a.RoleCode = identity.RoleCode(roleCode)
		a.AccountType = identity.AccountType(accountType)
		accounts = append(accounts, &a)
	}
	return accounts, total, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, a *Account) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.hotel_accounts").
		Set("display_name", a.DisplayName).
		Set("password_hash", a.PasswordHash).
		Set("is_active", a.IsActive).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update account query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update account failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
