package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"portal-auth-service/internal/domain"
	xerrors "portal-auth-service/pkg/utils/errors"
)

// DB is the subset of pgxpool.Pool the repository uses. pgxmock satisfies it
// as well, so tests can run without a database.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository is the credential store: one row per unique email, no update
// or delete paths.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type PostgresUserRepository struct {
	db DB
}

func NewPostgresUserRepository(db DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser inserts the user. Email uniqueness is enforced by the database
// constraint, so concurrent signups for the same email cannot both succeed;
// the loser gets ErrEmailAlreadyInUse.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	const q = `
		INSERT INTO users (id, email, phone, password_hash, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	saved := *user
	err := r.db.QueryRow(ctx, q,
		user.ID,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
	).Scan(&saved.CreatedAt)
	if err != nil {
		if xerrors.ParsePGErrorCode(err) == pgerrcode.UniqueViolation {
			return nil, xerrors.ErrEmailAlreadyInUse
		}
		return nil, err
	}

	return &saved, nil
}

// GetUserByEmail does a case-sensitive exact match.
func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
		SELECT id, email, phone, password_hash, first_name, last_name, created_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user domain.User
	err := r.db.QueryRow(ctx, q, email).Scan(
		&user.ID,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}
