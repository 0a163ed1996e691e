package catalog

import (
	"context"
	"strings"

	"myflix/internal/domain"
)

// MemoryStore implementa Store sobre un slice fijo. El catálogo es de solo
// lectura, así que no necesita sincronización.
type MemoryStore struct {
	movies []domain.Movie
}

func NewMemoryStore(movies []domain.Movie) *MemoryStore {
	return &MemoryStore{movies: movies}
}

func (s *MemoryStore) FindAll(_ context.Context) ([]domain.Movie, error) {
	return append([]domain.Movie{}, s.movies...), nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (domain.Movie, error) {
	for _, m := range s.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Movie{}, ErrNotFound
}

func (s *MemoryStore) FindByTitle(_ context.Context, title string) (domain.Movie, error) {
	for _, m := range s.movies {
		if strings.EqualFold(m.Title, title) {
			return m, nil
		}
	}
	return domain.Movie{}, ErrNotFound
}

func (s *MemoryStore) FindByGenre(_ context.Context, name string) ([]domain.Movie, error) {
	matches := []domain.Movie{}
	for _, m := range s.movies {
		if strings.EqualFold(m.Genre.Name, name) {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

func (s *MemoryStore) FindByDirector(_ context.Context, name string) ([]domain.Movie, error) {
	matches := []domain.Movie{}
	for _, m := range s.movies {
		if strings.EqualFold(m.Director.Name, name) {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

func (s *MemoryStore) Exists(_ context.Context, id string) (bool, error) {
	for _, m := range s.movies {
		if m.ID == id {
			return true, nil
		}
	}
	return false, nil
}
