package http

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestMovies_RequireToken(t *testing.T) {
	env := setupEnv(nil)

	rec := performRequest(env.router, http.MethodGet, "/movies", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestMovies_List(t *testing.T) {
	env := setupEnv(nil)
	registerAlice(t, env)
	token := loginAlice(t, env)

	rec := performRequest(env.router, http.MethodGet, "/movies", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var movies []MovieResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &movies); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(movies))
	}
}

func TestMovies_GetByTitle(t *testing.T) {
	env := setupEnv(nil)
	registerAlice(t, env)
	token := loginAlice(t, env)

	rec := performRequest(env.router, http.MethodGet, "/movies/Coach%20Carter", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var movie MovieResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &movie); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if movie.ID != "m1" {
		t.Fatalf("unexpected movie %+v", movie)
	}

	rec = performRequest(env.router, http.MethodGet, "/movies/Unknown", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMovies_GenreAndDirector(t *testing.T) {
	env := setupEnv(nil)
	registerAlice(t, env)
	token := loginAlice(t, env)

	rec := performRequest(env.router, http.MethodGet, "/genres/Drama", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var genre GenreResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &genre); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if genre.Name != "Drama" {
		t.Fatalf("unexpected genre %+v", genre)
	}

	rec = performRequest(env.router, http.MethodGet, "/directors/Thomas%20Carter", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = performRequest(env.router, http.MethodGet, "/genres/Western", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
