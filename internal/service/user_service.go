package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"myflix/internal/domain"
	"myflix/internal/repository"
)

const (
	minUsernameLength = 5
	minPasswordLength = 8
	birthdayLayout    = "2006-01-02"
)

// UserService coordina reglas de negocio para cuentas de usuario.
type UserService struct {
	logger *zap.Logger
	users  repository.UserRepository
	hasher *PasswordHasher
}

func NewUserService(logger *zap.Logger, users repository.UserRepository, hasher *PasswordHasher) *UserService {
	if hasher == nil {
		hasher = NewPasswordHasher()
	}
	return &UserService{
		logger: logger,
		users:  users,
		hasher: hasher,
	}
}

type RegisterInput struct {
	Username string
	Password string
	Email    string
	Birthday string
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	ve := newValidationError()
	validateUsername(ve, username)
	validatePassword(ve, input.Password)
	validateEmail(ve, email)
	birthday, ok := parseBirthday(ve, input.Birthday)
	if !ok || len(ve.Fields) > 0 {
		return domain.User{}, ve
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:               uuid.NewString(),
		Username:         username,
		PasswordHash:     passwordHash,
		Email:            email,
		Birthday:         birthday,
		FavoriteMovieIDs: []string{},
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}
	return user, nil
}

// Authenticate valida credenciales locales. Usuario inexistente y contraseña
// incorrecta colapsan en el mismo resultado para no permitir enumeración.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, username string) (domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return user, err
}

type UpdateInput struct {
	Email    *string
	Password *string
	Birthday *string
}

func (s *UserService) Update(ctx context.Context, username string, input UpdateInput) (domain.User, error) {
	ve := newValidationError()
	patch := repository.UserPatch{}

	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		validateEmail(ve, email)
		patch.Email = &email
	}
	if input.Password != nil {
		validatePassword(ve, *input.Password)
		if len(ve.Fields) == 0 {
			hash, err := s.hasher.Hash(*input.Password)
			if err != nil {
				return domain.User{}, err
			}
			patch.PasswordHash = &hash
		}
	}
	if input.Birthday != nil {
		birthday, _ := parseBirthday(ve, *input.Birthday)
		patch.Birthday = birthday
	}
	if len(ve.Fields) > 0 {
		return domain.User{}, ve
	}

	user, err := s.users.Update(ctx, username, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return user, err
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	err := s.users.Delete(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	if err == nil && s.logger != nil {
		// El token del usuario sigue siendo válido hasta expirar; ventana
		// conocida, sin lista de revocación.
		s.logger.Info("user deleted", zap.String("username", username))
	}
	return err
}

func validateUsername(ve *ValidationError, username string) {
	if len(username) < minUsernameLength {
		ve.Fields["username"] = "must be at least 5 characters"
		return
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			ve.Fields["username"] = "must be alphanumeric"
			return
		}
	}
}

func validatePassword(ve *ValidationError, password string) {
	if len(password) < minPasswordLength {
		ve.Fields["password"] = "must be at least 8 characters"
	}
}

func validateEmail(ve *ValidationError, email string) {
	if email == "" {
		ve.Fields["email"] = "is required"
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		ve.Fields["email"] = "must be a valid email address"
	}
}

func parseBirthday(ve *ValidationError, raw string) (*time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	birthday, err := time.Parse(birthdayLayout, raw)
	if err != nil {
		ve.Fields["birthday"] = "must be a date in YYYY-MM-DD format"
		return nil, false
	}
	return &birthday, true
}
