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

var userColumns = []string{"id", "email", "pseudo", "password", "name", "surname", "role", "active", "created_at", "updated_at"}

type UserRepository struct {
	db      *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	now := time.Now().UTC()
	query, args, err := r.builder.
		Insert("users").
		Columns("email", "pseudo", "password", "name", "surname", "role", "active", "created_at", "updated_at").
		Values(u.Email, u.Pseudo, u.PasswordHash, u.Name, u.Surname, u.Role, u.Active, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&u.ID); err != nil {
		return err
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, squirrel.Eq{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, squirrel.Eq{"id": id})
}

func (r *UserRepository) findOne(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	query, args, err := r.builder.
		Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}

	var u domain.User
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Email, &u.Pseudo, &u.PasswordHash, &u.Name, &u.Surname, &u.Role, &u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Search(ctx context.Context, filters map[string]string) ([]domain.User, error) {
	query, args, err := r.builder.
		Select(userColumns...).
		From("users").
		Where(eqFilters(filters)).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Pseudo, &u.PasswordHash, &u.Name, &u.Surname, &u.Role, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	query, args, err := r.builder.
		Update("users").
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

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.builder.
		Delete("users").
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
		return domain.ErrUserNotFound
	}
	return nil
}

// eqFilters turns the allowlisted query filters into an equality predicate.
// Values stay in string form; Postgres coerces them to the column types.
func eqFilters(filters map[string]string) squirrel.Eq {
	eq := make(squirrel.Eq, len(filters))
	for k, v := range filters {
		eq[k] = v
	}
	return eq
}
