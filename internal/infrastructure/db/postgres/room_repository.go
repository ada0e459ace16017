package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
)

var roomColumns = []string{"id", "hotel_id", "type_room", "max_nb_people", "number_of_room", "description", "active", "created_at", "updated_at"}

type RoomRepository struct {
	db      *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	now := time.Now().UTC()
	query, args, err := r.builder.
		Insert("rooms").
		Columns("hotel_id", "type_room", "max_nb_people", "number_of_room", "description", "active", "created_at", "updated_at").
		Values(room.HotelID, room.TypeRoom, room.MaxNbPeople, room.NumberOfRoom, room.Description, room.Active, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&room.ID); err != nil {
		return err
	}
	room.CreatedAt = now
	room.UpdatedAt = now
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id int64) (*domain.Room, error) {
	query, args, err := r.builder.
		Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var room domain.Room
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&room.ID, &room.HotelID, &room.TypeRoom, &room.MaxNbPeople, &room.NumberOfRoom, &room.Description, &room.Active, &room.CreatedAt, &room.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) SearchAndCount(ctx context.Context, filters map[string]string, limit, offset int) ([]domain.Room, int64, error) {
	where := eqFilters(filters)

	countQuery, countArgs, err := r.builder.
		Select("COUNT(*)").
		From("rooms").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query, args, err := r.builder.
		Select(roomColumns...).
		From("rooms").
		Where(where).
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.HotelID, &room.TypeRoom, &room.MaxNbPeople, &room.NumberOfRoom, &room.Description, &room.Active, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, 0, err
		}
		rooms = append(rooms, room)
	}
	return rooms, count, rows.Err()
}

func (r *RoomRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	query, args, err := r.builder.
		Update("rooms").
		SetMap(fields).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, query, args...)
	return err
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.builder.
		Delete("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}
