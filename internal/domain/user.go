package domain

import "time"

type User struct {
	ID               string     `json:"id"`
	Username         string     `json:"username"`
	PasswordHash     string     `json:"-"`
	Email            string     `json:"email"`
	Birthday         *time.Time `json:"birthday,omitempty"`
	FavoriteMovieIDs []string   `json:"favorite_movie_ids"`
	CreatedAt        time.Time  `json:"created_at"`
}

// HasFavorite indica si el id de película ya está en la lista del usuario.
func (u User) HasFavorite(movieID string) bool {
	for _, id := range u.FavoriteMovieIDs {
		if id == movieID {
			return true
		}
	}
	return false
}
