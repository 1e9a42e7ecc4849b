package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/focus-atlas/pkg/adapters"
	"github.com/de-tools/focus-atlas/pkg/models/domain"
	"github.com/de-tools/focus-atlas/pkg/models/store"
	"github.com/de-tools/focus-atlas/pkg/store/sqlite"
	userstore "github.com/de-tools/focus-atlas/pkg/store/sqlite/user"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

// ErrInvalidCredentials covers bad logins and bad tokens alike; callers get
// no hint which part failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Service interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	// Authenticate resolves a bearer token to the user it was issued for.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

type service struct {
	users  userstore.Store
	secret []byte
	now    func() time.Time
}

func NewService(users userstore.Store, secret []byte) Service {
	return &service{users: users, secret: secret, now: time.Now}
}

func (s *service) Register(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if len(username) < 3 || len(username) > 30 {
		return nil, "", domain.Validationf("username must be between 3 and 30 characters")
	}
	if !strings.Contains(email, "@") {
		return nil, "", domain.Validationf("invalid email address")
	}
	if len(password) < 6 {
		return nil, "", domain.Validationf("password must be at least 6 characters")
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, "", domain.Validationf("username already taken")
	} else if !errors.Is(err, sqlite.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	rec := store.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(ctx, rec); err != nil {
		return nil, "", err
	}

	user := adapters.MapUserStoreToDomain(rec)
	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *service) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	rec, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, sqlite.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	user := adapters.MapUserStoreToDomain(*rec)
	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidCredentials
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidCredentials
	}

	rec, err := s.users.GetByID(ctx, claims.Subject)
	if errors.Is(err, sqlite.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	user := adapters.MapUserStoreToDomain(*rec)
	return &user, nil
}

func (s *service) issueToken(userID string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
