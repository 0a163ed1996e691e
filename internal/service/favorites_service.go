package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"myflix/internal/catalog"
	"myflix/internal/domain"
	"myflix/internal/repository"
)

// FavoritesService gestiona la lista de favoritos de un usuario. Cada
// operación exige que el principal sea dueño del recurso; la mutación en sí
// la resuelve el repositorio de forma atómica.
type FavoritesService struct {
	logger *zap.Logger
	users  repository.UserRepository
	movies catalog.Store
}

func NewFavoritesService(logger *zap.Logger, users repository.UserRepository, movies catalog.Store) *FavoritesService {
	return &FavoritesService{
		logger: logger,
		users:  users,
		movies: movies,
	}
}

func (s *FavoritesService) Add(ctx context.Context, principal Principal, username, movieID string) (domain.User, error) {
	if err := s.checkRequest(principal, username, movieID); err != nil {
		return domain.User{}, err
	}

	exists, err := s.movies.Exists(ctx, movieID)
	if err != nil {
		return domain.User{}, err
	}
	if !exists {
		return domain.User{}, ErrMovieNotFound
	}

	user, err := s.users.AddFavorite(ctx, username, movieID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return domain.User{}, ErrUserNotFound
	case errors.Is(err, repository.ErrAlreadyFavorite):
		return domain.User{}, ErrAlreadyFavorite
	case err != nil:
		return domain.User{}, err
	}
	return user, nil
}

func (s *FavoritesService) Remove(ctx context.Context, principal Principal, username, movieID string) (domain.User, error) {
	if err := s.checkRequest(principal, username, movieID); err != nil {
		return domain.User{}, err
	}

	user, err := s.users.RemoveFavorite(ctx, username, movieID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return domain.User{}, ErrUserNotFound
	case errors.Is(err, repository.ErrNotFavorite):
		return domain.User{}, ErrNotFavorite
	case err != nil:
		return domain.User{}, err
	}
	return user, nil
}

// checkRequest aplica la invariante de propiedad antes de cualquier lectura:
// un principal solo muta su propia lista, sin importar la validez del token.
func (s *FavoritesService) checkRequest(principal Principal, username, movieID string) error {
	if principal.Username != username {
		return ErrNotOwner
	}
	if strings.TrimSpace(movieID) == "" {
		ve := newValidationError()
		ve.Fields["movie_id"] = "is required"
		return ve
	}
	return nil
}
