package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"myflix/internal/domain"
)

// Principal es la identidad resuelta desde un token verificado. Vive solo
// durante el procesamiento de una request.
type Principal struct {
	UserID   string
	Username string
}

// JWTService emite y valida access tokens JWT. La clave y el TTL se fijan
// al arranque y no cambian durante la vida del proceso.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "myflix",
	}
}

// TTL expone la vigencia configurada de los tokens.
func (s *JWTService) TTL() time.Duration {
	return s.ttl
}

// IssueToken firma un token con subject = username y expiración now + TTL.
func (s *JWTService) IssueToken(user domain.User) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrJWTInvalid
	}
	now := time.Now().UTC()
	claims := Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken valida firma y vigencia y devuelve el principal. Es una función
// pura de (token, clave, reloj): no consulta ningún almacén, así que un token
// aún vigente de una cuenta borrada sigue autenticando hasta expirar.
func (s *JWTService) ParseToken(tokenString string) (Principal, error) {
	if len(s.secret) == 0 {
		return Principal{}, ErrJWTInvalid
	}
	if strings.TrimSpace(tokenString) == "" {
		return Principal{}, ErrJWTInvalid
	}

	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Principal{}, ErrJWTExpired
		}
		return Principal{}, ErrJWTInvalid
	}
	if strings.TrimSpace(claims.Subject) == "" || claims.Issuer != s.issuer {
		return Principal{}, ErrJWTInvalid
	}
	return Principal{UserID: claims.UserID, Username: claims.Subject}, nil
}
