package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ecommerce-backend/internal/domain"
	userrepo "ecommerce-backend/internal/repository/user"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Service authenticates users and issues/verifies bearer tokens.
type Service struct {
	users  userRepo
	secret []byte
	ttl    time.Duration
}

// New creates a Service. ttl is the access token lifetime.
func New(users userrepo.Repository, secret string, ttl time.Duration) *Service {
	return &Service{users: users, secret: []byte(secret), ttl: ttl}
}

type tokenClaims struct {
	UserID int64  `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticate verifies email/password and returns the matching user.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueToken signs a token carrying the user's email, id, and role.
func (s *Service) IssueToken(u *domain.User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: u.ID,
		Role:   string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ResolveCaller verifies a bearer token and decodes the caller identity.
// Expired, malformed, or wrongly signed tokens all map to ErrUnauthorized.
func (s *Service) ResolveCaller(tokenString string) (domain.Caller, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return domain.Caller{}, domain.ErrUnauthorized
	}
	if claims.Subject == "" || claims.UserID == 0 {
		return domain.Caller{}, domain.ErrUnauthorized
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Caller{}, domain.ErrUnauthorized
	}
	return domain.Caller{Email: claims.Subject, ID: claims.UserID, Role: role}, nil
}
