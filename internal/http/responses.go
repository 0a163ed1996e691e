package http

import (
	"time"

	"myflix/internal/domain"
)

// Formas de respuesta explícitas por endpoint. Las entidades internas nunca
// se serializan directamente; en particular el hash de contraseña no viaja
// en ninguna respuesta.

type UserResponse struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	Birthday         string    `json:"birthday,omitempty"`
	FavoriteMovieIDs []string  `json:"favorite_movie_ids"`
	CreatedAt        time.Time `json:"created_at"`
}

func newUserResponse(u domain.User) UserResponse {
	resp := UserResponse{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		FavoriteMovieIDs: u.FavoriteMovieIDs,
		CreatedAt:        u.CreatedAt,
	}
	if resp.FavoriteMovieIDs == nil {
		resp.FavoriteMovieIDs = []string{}
	}
	if u.Birthday != nil {
		resp.Birthday = u.Birthday.Format("2006-01-02")
	}
	return resp
}

type LoginResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
}

type GenreResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DirectorResponse struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	BirthYear int    `json:"birth_year,omitempty"`
	DeathYear int    `json:"death_year,omitempty"`
}

type MovieResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Genre       GenreResponse    `json:"genre"`
	Director    DirectorResponse `json:"director"`
	ImagePath   string           `json:"image_path,omitempty"`
	Featured    bool             `json:"featured"`
}

func newMovieResponse(m domain.Movie) MovieResponse {
	return MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Genre:       GenreResponse(m.Genre),
		Director:    DirectorResponse(m.Director),
		ImagePath:   m.ImagePath,
		Featured:    m.Featured,
	}
}

func newMovieListResponse(movies []domain.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, newMovieResponse(m))
	}
	return out
}
