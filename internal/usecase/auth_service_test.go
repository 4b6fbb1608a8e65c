package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAuthService_SignUpAndLogin(t *testing.T) {
	t.Parallel()

	users := newStubUserRepo()
	service := NewAuthService(users, &seqIDGenerator{}, "test-secret", time.Hour)

	created, err := service.SignUp(context.Background(), "alice", "Alice@Example.com", "correct-horse")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if created.Email != "alice@example.com" {
		t.Fatalf("email must be normalized, got %q", created.Email)
	}
	if created.PasswordHash == "correct-horse" {
		t.Fatal("password must not be stored in the clear")
	}

	token, loggedIn, err := service.Login(context.Background(), "alice", "correct-horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || loggedIn.ID != created.ID {
		t.Fatalf("unexpected login result: token=%q user=%+v", token, loggedIn)
	}

	principal, err := service.VerifyAccessToken(context.Background(), token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if principal.UserID != created.ID || principal.Username != "alice" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestAuthService_SignUp_RejectsShortPassword(t *testing.T) {
	t.Parallel()

	service := NewAuthService(newStubUserRepo(), &seqIDGenerator{}, "test-secret", time.Hour)

	_, err := service.SignUp(context.Background(), "alice", "alice@example.com", "short")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_SignUp_RejectsDuplicateUsername(t *testing.T) {
	t.Parallel()

	users := newStubUserRepo()
	service := NewAuthService(users, &seqIDGenerator{}, "test-secret", time.Hour)

	if _, err := service.SignUp(context.Background(), "alice", "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("first sign up: %v", err)
	}
	_, err := service.SignUp(context.Background(), "alice", "other@example.com", "correct-horse")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	users := newStubUserRepo()
	service := NewAuthService(users, &seqIDGenerator{}, "test-secret", time.Hour)

	if _, err := service.SignUp(context.Background(), "alice", "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	_, _, err := service.Login(context.Background(), "alice", "wrong-horse")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_VerifyAccessToken_Expired(t *testing.T) {
	t.Parallel()

	users := newStubUserRepo()
	service := NewAuthService(users, &seqIDGenerator{}, "test-secret", time.Minute)

	if _, err := service.SignUp(context.Background(), "alice", "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	token, _, err := service.Login(context.Background(), "alice", "correct-horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	service.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	if _, err := service.VerifyAccessToken(context.Background(), token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestAuthService_VerifyAccessToken_RejectsTamperedToken(t *testing.T) {
	t.Parallel()

	users := newStubUserRepo()
	service := NewAuthService(users, &seqIDGenerator{}, "test-secret", time.Hour)
	other := NewAuthService(users, &seqIDGenerator{}, "different-secret", time.Hour)

	if _, err := service.SignUp(context.Background(), "alice", "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	token, _, err := other.Login(context.Background(), "alice", "correct-horse")
	if err != nil {
		t.Fatalf("login with other signer: %v", err)
	}
	if _, err := service.VerifyAccessToken(context.Background(), token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for foreign signature, got %v", err)
	}
}
