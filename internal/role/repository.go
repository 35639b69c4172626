package role

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hotel-pms-backend/internal/identity"
)

// Repository defines methods for accessing role rows.
type Repository interface {
	ListAll(ctx context.Context) ([]*Role, error)
	GetByID(ctx context.Context, id int64) (*Role, error)
	Create(ctx context.Context, r *Role) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new role repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var roleColumns = []string{
	"id", "name", "role_type", "role_code", "parent_role_id",
	"hierarchy_level", "permissions", "restrictions", "can_create_sub_roles",
	"created_at",
}

func (r *pgxRepository) ListAll(ctx context.Context) ([]*Role, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(roleColumns...).
		From("public.roles").
		OrderBy("hierarchy_level", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list roles query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list roles failed: %w", err)
	}
	defer rows.Close()

	var roles []*Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Role, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(roleColumns...).
		From("public.roles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get role query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get role failed: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("get role failed: %w", err)
		}
		return nil, ErrNotFound
	}
	return scanRole(rows)
}

func (r *pgxRepository) Create(ctx context.Context, role *Role) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.roles").
		Columns("name", "role_type", "role_code", "parent_role_id",
			"hierarchy_level", "permissions", "restrictions", "can_create_sub_roles").
		Values(role.Name, role.Type, role.Code, role.ParentID,
			role.HierarchyLevel, capStrings(role.Permissions), capStrings(role.Restrictions),
			role.CanCreateSubRoles).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create role query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&role.ID, &role.CreatedAt)
}

func scanRole(rows pgx.Rows) (*Role, error) {
	var (
		role         Role
		roleType     string
		roleCode     string
		permissions  []string
		restrictions []string
	)
	if err := rows.Scan(
		&role.ID, &role.Name, &roleType, &roleCode, &role.ParentID,
		&role.HierarchyLevel, &permissions, &restrictions, &role.CanCreateSubRoles,
		&role.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan role failed: %w", err)
	}
	role.Type = RoleType(roleType)
	role.Code = identity.RoleCode(roleCode)
	role.Permissions = capsOf(permissions)
	role.Restrictions = capsOf(restrictions)
	return &role, nil
}

func capStrings(caps []Capability) []string {
	out := make([]string, len(caps))
	for i, c := range caps {
		out[i] = string(c)
	}
	return out
}

func capsOf(tokens []string) []Capability {
	out := make([]Capability, len(tokens))
	for i, t := range tokens {
		out[i] = Capability(t)
	}
	return out
}
