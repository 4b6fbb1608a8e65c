package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/footynet/footynet/internal/domain/user"
	idgen "github.com/footynet/footynet/internal/platform/id"
)

type AuthService struct {
	userRepo user.Repository
	idGen    idgen.Generator
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewAuthService(userRepo user.Repository, idGen idgen.Generator, secret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		userRepo: userRepo,
		idGen:    idGen,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (user.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" {
		return user.User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if email == "" {
		return user.User{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(password) < 8 {
		return user.User{}, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	if _, exists, err := s.userRepo.GetByUsername(ctx, username); err != nil {
		return user.User{}, fmt.Errorf("get user by username: %w", err)
	} else if exists {
		return user.User{}, fmt.Errorf("%w: username %q is taken", ErrConflict, username)
	}
	if _, exists, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return user.User{}, fmt.Errorf("get user by email: %w", err)
	} else if exists {
		return user.User{}, fmt.Errorf("%w: email %q is already registered", ErrConflict, email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.idGen.NewID()
	if err != nil {
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}

	item := user.User{
		ID:           userID,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.userRepo.Create(ctx, item); err != nil {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return item, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, user.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", user.User{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", user.User{}, fmt.Errorf("get user by username: %w", err)
	}
	if !exists {
		return "", user.User{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(item.PasswordHash), []byte(password)); err != nil {
		return "", user.User{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub":      item.ID,
		"username": item.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", user.User{}, fmt.Errorf("sign access token: %w", err)
	}

	return token, item, nil
}

// VerifyAccessToken implements the httpapi token verifier.
func (s *AuthService) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return user.Principal{}, fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: invalid token claims", ErrUnauthorized)
	}

	userID, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	if userID == "" {
		return user.Principal{}, fmt.Errorf("%w: token has no subject", ErrUnauthorized)
	}

	if _, exists, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return user.Principal{}, fmt.Errorf("get user by id: %w", err)
	} else if !exists {
		return user.Principal{}, fmt.Errorf("%w: account no longer exists", ErrUnauthorized)
	}

	return user.Principal{UserID: userID, Username: username}, nil
}
