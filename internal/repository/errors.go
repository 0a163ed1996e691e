package repository

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrAlreadyFavorite   = errors.New("movie already in favorites")
	ErrNotFavorite       = errors.New("movie not in favorites")
)
