package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"myflix/internal/domain"
)

// UserPatch describe una actualización parcial del perfil.
// Los campos nil se dejan intactos.
type UserPatch struct {
	Email        *string
	PasswordHash *string
	Birthday     *time.Time
}

// UserRepository define el contrato de persistencia para usuarios.
// AddFavorite y RemoveFavorite son operaciones atómicas de pertenencia:
// la condición viaja dentro de la misma operación de escritura, nunca
// en una lectura previa del llamador.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	Update(ctx context.Context, username string, patch UserPatch) (domain.User, error)
	Delete(ctx context.Context, username string) error
	AddFavorite(ctx context.Context, username, movieID string) (domain.User, error)
	RemoveFavorite(ctx context.Context, username, movieID string) (domain.User, error)
}

// PgUserRepository implementa UserRepository usando pgxpool.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

const uniqueViolation = "23505"

func (r *PgUserRepository) Create(ctx context.Context, user domain.User) error {
	const query = `
		INSERT INTO users (id, username, password_hash, email, birthday, favorite_movie_ids, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	favorites := user.FavoriteMovieIDs
	if favorites == nil {
		favorites = []string{}
	}
	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.Birthday,
		favorites,
		user.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

const userColumns = `id, username, password_hash, email, birthday, favorite_movie_ids, created_at`

func (r *PgUserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, username))
}

func (r *PgUserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *PgUserRepository) Update(ctx context.Context, username string, patch UserPatch) (domain.User, error) {
	query := `
		UPDATE users SET
			email = COALESCE($2, email),
			password_hash = COALESCE($3, password_hash),
			birthday = COALESCE($4, birthday)
		WHERE username = $1
		RETURNING ` + userColumns
	return r.scanUser(r.pool.QueryRow(ctx, query, username, patch.Email, patch.PasswordHash, patch.Birthday))
}

func (r *PgUserRepository) Delete(ctx context.Context, username string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AddFavorite inserta el id solo si aún no está presente. La condición de
// no-pertenencia forma parte del UPDATE, así dos inserciones concurrentes
// del mismo par (usuario, película) producen exactamente un éxito.
func (r *PgUserRepository) AddFavorite(ctx context.Context, username, movieID string) (domain.User, error) {
	query := `
		UPDATE users
		SET favorite_movie_ids = array_append(favorite_movie_ids, $2)
		WHERE username = $1 AND NOT ($2 = ANY(favorite_movie_ids))
		RETURNING ` + userColumns
	user, err := r.scanUser(r.pool.QueryRow(ctx, query, username, movieID))
	if errors.Is(err, ErrNotFound) {
		return domain.User{}, r.classifyFavoriteMiss(ctx, username, ErrAlreadyFavorite)
	}
	return user, err
}

// RemoveFavorite quita el id solo si está presente.
func (r *PgUserRepository) RemoveFavorite(ctx context.Context, username, movieID string) (domain.User, error) {
	query := `
		UPDATE users
		SET favorite_movie_ids = array_remove(favorite_movie_ids, $2)
		WHERE username = $1 AND $2 = ANY(favorite_movie_ids)
		RETURNING ` + userColumns
	user, err := r.scanUser(r.pool.QueryRow(ctx, query, username, movieID))
	if errors.Is(err, ErrNotFound) {
		return domain.User{}, r.classifyFavoriteMiss(ctx, username, ErrNotFavorite)
	}
	return user, err
}

// classifyFavoriteMiss distingue, tras un UPDATE sin filas, entre usuario
// inexistente y condición de pertenencia no cumplida. Solo clasifica el
// fallo; la decisión atómica ya ocurrió en el UPDATE.
func (r *PgUserRepository) classifyFavoriteMiss(ctx context.Context, username string, membershipErr error) error {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return fmt.Errorf("classify favorite miss: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return membershipErr
}

func (r *PgUserRepository) scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Email,
		&u.Birthday,
		&u.FavoriteMovieIDs,
		&u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("scan user: %w", err)
	}
	if u.FavoriteMovieIDs == nil {
		u.FavoriteMovieIDs = []string{}
	}
	return u, nil
}
