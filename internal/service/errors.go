package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrAlreadyFavorite    = errors.New("movie already in favorites")
	ErrNotFavorite        = errors.New("movie not in favorites")
	ErrNotOwner           = errors.New("principal does not own this resource")
	ErrRateLimited        = errors.New("rate limited")
	ErrJWTInvalid         = errors.New("jwt invalid")
	ErrJWTExpired         = errors.New("jwt expired")
)

// ValidationError agrupa los motivos de rechazo por campo. Los handlers lo
// exponen tal cual; el resto de errores nunca revela detalle interno.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}
