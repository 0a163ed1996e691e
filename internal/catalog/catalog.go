// Package catalog expone el catálogo de películas como colaborador de solo
// lectura. El resto del sistema referencia películas por id y nunca las
// duplica.
package catalog

import (
	"context"
	"errors"

	"myflix/internal/domain"
)

var ErrNotFound = errors.New("movie not found")

// Store define las consultas que el catálogo ofrece al resto del sistema.
type Store interface {
	FindAll(ctx context.Context) ([]domain.Movie, error)
	FindByID(ctx context.Context, id string) (domain.Movie, error)
	FindByTitle(ctx context.Context, title string) (domain.Movie, error)
	FindByGenre(ctx context.Context, name string) ([]domain.Movie, error)
	FindByDirector(ctx context.Context, name string) ([]domain.Movie, error)
	Exists(ctx context.Context, id string) (bool, error)
}
