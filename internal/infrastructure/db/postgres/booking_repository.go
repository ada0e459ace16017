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

var bookingColumns = []string{"id", "room_id", "user_id", "number_of_people", "date_in", "date_out", "paid", "active", "created_at", "updated_at"}

type BookingRepository struct {
	db      *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	now := time.Now().UTC()
	query, args, err := r.builder.
		Insert("bookings").
		Columns("room_id", "user_id", "number_of_people", "date_in", "date_out", "paid", "active", "created_at", "updated_at").
		Values(b.RoomID, b.UserID, b.NumberOfPeople, b.DateIn, b.DateOut, b.Paid, b.Active, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&b.ID); err != nil {
		return err
	}
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := r.builder.
		Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var b domain.Booking
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&b.ID, &b.RoomID, &b.UserID, &b.NumberOfPeople, &b.DateIn, &b.DateOut, &b.Paid, &b.Active, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) SearchAndCount(ctx context.Context, filters map[string]string, limit, offset int) ([]domain.Booking, int64, error) {
	where := eqFilters(filters)

	countQuery, countArgs, err := r.builder.
		Select("COUNT(*)").
		From("bookings").
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
		Select(bookingColumns...).
		From("bookings").
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

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.RoomID, &b.UserID, &b.NumberOfPeople, &b.DateIn, &b.DateOut, &b.Paid, &b.Active, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, b)
	}
	return bookings, count, rows.Err()
}

func (r *BookingRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	query, args, err := r.builder.
		Update("bookings").
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

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.builder.
		Delete("bookings").
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
		return domain.ErrBookingNotFound
	}
	return nil
}
