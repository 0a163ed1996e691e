package repository

import (
	"context"
	"sync"

	"myflix/internal/domain"
)

// MemoryUserRepository implementa UserRepository en memoria con el mismo
// contrato de atomicidad que la implementación de Postgres. Pensada para
// tests y ejecución local sin base de datos.
type MemoryUserRepository struct {
	mu      sync.Mutex
	byName  map[string]domain.User
	idIndex map[string]string
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byName:  make(map[string]domain.User),
		idIndex: make(map[string]string),
	}
}

func (r *MemoryUserRepository) Create(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[user.Username]; ok {
		return ErrDuplicateUsername
	}
	if user.FavoriteMovieIDs == nil {
		user.FavoriteMovieIDs = []string{}
	}
	r.byName[user.Username] = user
	r.idIndex[user.ID] = user.Username
	return nil
}

func (r *MemoryUserRepository) GetByUsername(_ context.Context, username string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(username)
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	username, ok := r.idIndex[id]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	return r.get(username)
}

func (r *MemoryUserRepository) Update(_ context.Context, username string, patch UserPatch) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, err := r.get(username)
	if err != nil {
		return domain.User{}, err
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.PasswordHash != nil {
		user.PasswordHash = *patch.PasswordHash
	}
	if patch.Birthday != nil {
		birthday := *patch.Birthday
		user.Birthday = &birthday
	}
	r.byName[username] = user
	return user, nil
}

func (r *MemoryUserRepository) Delete(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byName[username]
	if !ok {
		return ErrNotFound
	}
	delete(r.byName, username)
	delete(r.idIndex, user.ID)
	return nil
}

func (r *MemoryUserRepository) AddFavorite(_ context.Context, username, movieID string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, err := r.get(username)
	if err != nil {
		return domain.User{}, err
	}
	if user.HasFavorite(movieID) {
		return domain.User{}, ErrAlreadyFavorite
	}
	user.FavoriteMovieIDs = append(append([]string{}, user.FavoriteMovieIDs...), movieID)
	r.byName[username] = user
	return user, nil
}

func (r *MemoryUserRepository) RemoveFavorite(_ context.Context, username, movieID string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, err := r.get(username)
	if err != nil {
		return domain.User{}, err
	}
	if !user.HasFavorite(movieID) {
		return domain.User{}, ErrNotFavorite
	}
	kept := make([]string, 0, len(user.FavoriteMovieIDs)-1)
	for _, id := range user.FavoriteMovieIDs {
		if id != movieID {
			kept = append(kept, id)
		}
	}
	user.FavoriteMovieIDs = kept
	r.byName[username] = user
	return user, nil
}

// get asume que el lock ya está tomado.
func (r *MemoryUserRepository) get(username string) (domain.User, error) {
	user, ok := r.byName[username]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	user.FavoriteMovieIDs = append([]string{}, user.FavoriteMovieIDs...)
	return user, nil
}
