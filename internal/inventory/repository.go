package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing room and bed inventory.
type Repository interface {
	CreateRoom(ctx context.Context, room *Room) error
	GetRoom(ctx context.Context, id int64) (*Room, error)
	ListRooms(ctx context.Context, filter RoomFilter) ([]*Room, int, error)
	UpdateRoomStatus(ctx context.Context, id int64, status UnitStatus) error

	CreateBed(ctx context.Context, bed *Bed) error
	GetBed(ctx context.Context, id int64) (*Bed, error)
	ListBeds(ctx context.Context, roomID int64) ([]*Bed, error)
	UpdateBedStatus(ctx context.Context, id int64, status UnitStatus) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new inventory repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) CreateRoom(ctx context.Context, room *Room) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.rooms").
		Columns("hotel_id", "number", "dormitory", "status").
		Values(room.HotelID, room.Number, room.Dormitory, string(room.Status)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create room query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&room.ID, &room.CreatedAt)
}

func (r *pgxRepository) GetRoom(ctx context.Context, id int64) (*Room, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "hotel_id", "number", "dormitory", "status", "created_at").
		From("public.rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get room query failed: %w", err)
	}

	var (
		room   Room
		status string
	)
	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&room.ID, &room.HotelID, &room.Number, &room.Dormitory, &status, &room.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}
	room.Status = UnitStatus(status)
	return &room, nil
}

func (r *pgxRepository) ListRooms(ctx context.Context, filter RoomFilter) ([]*Room, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	queryBuilder := psql.Select("id", "hotel_id", "number", "dormitory", "status", "created_at",
		"count(*) OVER() AS total_count").
		From("public.rooms").
		Where(squirrel.Eq{"hotel_id": filter.HotelID}).
		OrderBy("number")

	if filter.Status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": filter.Status})
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
		return nil, 0, fmt.Errorf("build list rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	var total int
	for rows.Next() {
		var (
			room   Room
			status string
		)
		if err := rows.Scan(&room.ID, &room.HotelID, &room.Number, &room.Dormitory, &status, &room.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan room failed: %w", err)
		}
		room.Status = UnitStatus(status)
		rooms = append(rooms, &room)
	}
	return rooms, total, rows.Err()
}

func (r *pgxRepository) UpdateRoomStatus(ctx context.Context, id int64, status UnitStatus) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.rooms").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update room status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update room status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (r *pgxRepository) CreateBed(ctx context.Context, bed *Bed) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.beds").
		Columns("room_id", "label", "status").
		Values(bed.RoomID, bed.Label, string(bed.Status)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create bed query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&bed.ID, &bed.CreatedAt)
}

func (r *pgxRepository) GetBed(ctx context.Context, id int64) (*Bed, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "room_id", "label", "status", "created_at").
		From("public.beds").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get bed query failed: %w", err)
	}

	var (
		bed    Bed
		status string
	)
	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&bed.ID, &bed.RoomID, &bed.Label, &status, &bed.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBedNotFound
		}
		return nil, fmt.Errorf("get bed failed: %w", err)
	}
	bed.Status = UnitStatus(status)
	return &bed, nil
}

func (r *pgxRepository) ListBeds(ctx context.Context, roomID int64) ([]*Bed, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "room_id", "label", "status", "created_at").
		From("public.beds").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("label").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list beds query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list beds failed: %w", err)
	}
	defer rows.Close()

	var beds []*Bed
	for rows.Next() {
		var (
			bed    Bed
			status string
		)
		if err := rows.Scan(&bed.ID, &bed.RoomID, &bed.Label, &status, &bed.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bed failed: %w", err)
		}
		bed.Status = UnitStatus(status)
		beds = append(beds, &bed)
	}
	return beds, rows.Err()
}

func (r *pgxRepository) UpdateBedStatus(ctx context.Context, id int64, status UnitStatus) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.beds").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update bed status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update bed status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrBedNotFound
	}
	return nil
}
