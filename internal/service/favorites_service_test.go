package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"myflix/internal/catalog"
	"myflix/internal/domain"
	"myflix/internal/repository"
)

func newFavoritesFixture(t *testing.T) (*FavoritesService, Principal) {
	t.Helper()
	repo := repository.NewMemoryUserRepository()
	if err := repo.Create(context.Background(), domain.User{
		ID:        "u1",
		Username:  "alice",
		Email:     "alice@x.com",
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	movies := catalog.NewMemoryStore([]domain.Movie{
		{ID: "m1", Title: "Coach Carter"},
		{ID: "m2", Title: "Another Movie"},
	})
	svc := NewFavoritesService(zap.NewNop(), repo, movies)
	return svc, Principal{UserID: "u1", Username: "alice"}
}

func TestFavoritesService_AddAndRemove(t *testing.T) {
	svc, principal := newFavoritesFixture(t)

	user, err := svc.Add(context.Background(), principal, "alice", "m1")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(user.FavoriteMovieIDs) != 1 || user.FavoriteMovieIDs[0] != "m1" {
		t.Fatalf("unexpected favorites %v", user.FavoriteMovieIDs)
	}

	user, err = svc.Remove(context.Background(), principal, "alice", "m1")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(user.FavoriteMovieIDs) != 0 {
		t.Fatalf("expected empty favorites, got %v", user.FavoriteMovieIDs)
	}
}

func TestFavoritesService_OwnershipEnforced(t *testing.T) {
	svc, _ := newFavoritesFixture(t)
	mallory := Principal{UserID: "u9", Username: "mallory"}

	if _, err := svc.Add(context.Background(), mallory, "alice", "m1"); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner on add, got %v", err)
	}
	if _, err := svc.Remove(context.Background(), mallory, "alice", "m1"); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner on remove, got %v", err)
	}
}

func TestFavoritesService_AddUnknownMovie(t *testing.T) {
	svc, principal := newFavoritesFixture(t)

	if _, err := svc.Add(context.Background(), principal, "alice", "missing"); !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestFavoritesService_AddDuplicate(t *testing.T) {
	svc, principal := newFavoritesFixture(t)

	if _, err := svc.Add(context.Background(), principal, "alice", "m1"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := svc.Add(context.Background(), principal, "alice", "m1"); !errors.Is(err, ErrAlreadyFavorite) {
		t.Fatalf("expected ErrAlreadyFavorite, got %v", err)
	}
}

func TestFavoritesService_RemoveNotFavorite(t *testing.T) {
	svc, principal := newFavoritesFixture(t)

	if _, err := svc.Remove(context.Background(), principal, "alice", "m2"); !errors.Is(err, ErrNotFavorite) {
		t.Fatalf("expected ErrNotFavorite, got %v", err)
	}
}

func TestFavoritesService_EmptyMovieID(t *testing.T) {
	svc, principal := newFavoritesFixture(t)

	_, err := svc.Add(context.Background(), principal, "alice", "  ")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestFavoritesService_ConcurrentAddsOneWinner(t *testing.T) {
	svc, principal := newFavoritesFixture(t)

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Add(context.Background(), principal, "alice", "m1")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes int
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		if !errors.Is(err, ErrAlreadyFavorite) {
			t.Fatalf("unexpected error %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly one successful add, got %d", successes)
	}
}
