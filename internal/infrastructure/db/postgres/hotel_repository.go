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

var hotelColumns = []string{"id", "name", "address", "city", "country", "description", "active", "created_at", "updated_at"}

type HotelRepository struct {
	db      *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

func NewHotelRepository(db *pgxpool.Pool) *HotelRepository {
	return &HotelRepository{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	now := time.Now().UTC()
	query, args, err := r.builder.
		Insert("hotels").
		Columns("name", "address", "city", "country", "description", "active", "created_at", "updated_at").
		Values(h.Name, h.Address, h.City, h.Country, h.Description, h.Active, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&h.ID); err != nil {
		return err
	}
	h.CreatedAt = now
	h.UpdatedAt = now
	return nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	query, args, err := r.builder.
		Select(hotelColumns...).
		From("hotels").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var h domain.Hotel
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&h.ID, &h.Name, &h.Address, &h.City, &h.Country, &h.Description, &h.Active, &h.CreatedAt, &h.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrHotelNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HotelRepository) SearchAndCount(ctx context.Context, filters map[string]string, limit, offset int) ([]domain.Hotel, int64, error) {
	where := eqFilters(filters)

	countQuery, countArgs, err := r.builder.
		Select("COUNT(*)").
		From("hotels").
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
		Select(hotelColumns...).
		From("hotels").
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

	hotels := make([]domain.Hotel, 0)
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.City, &h.Country, &h.Description, &h.Active, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, 0, err
		}
		hotels = append(hotels, h)
	}
	return hotels, count, rows.Err()
}

func (r *HotelRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	query, args, err := r.builder.
		Update("hotels").
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

func (r *HotelRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.builder.
		Delete("hotels").
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
		return domain.ErrHotelNotFound
	}
	return nil
}
