package auth

import (
	"testing"
	"time"

	"github.com/sweetcrumb/bakeshop/internal/domain/model"
)

func testUser() *model.User {
	return &model.User{ID: 7, Email: "jane@example.com", Role: model.RoleCustomer}
}

func TestJWTStrategyRoundTrip(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})

	token, err := strategy.IssueToken(testUser())
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	claims, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("expected user id 7, got %d", claims.UserID)
	}
	if claims.Email != "jane@example.com" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
	if claims.Role != model.RoleCustomer {
		t.Fatalf("unexpected role %q", claims.Role)
	}
}

func TestJWTStrategyRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTStrategy("secret-a", Options{})
	verifier := NewJWTStrategy("secret-b", Options{})

	token, err := issuer.IssueToken(testUser())
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	if _, err := verifier.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategyRejectsExpired(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: -time.Minute})

	token, err := strategy.IssueToken(testUser())
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTStrategyHonorsLongTTL(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: 24 * time.Hour})

	token, err := strategy.IssueToken(testUser())
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	if _, err := strategy.ParseToken(token); err != nil {
		t.Fatalf("expected token to still be valid, got %v", err)
	}
}

func TestJWTStrategyRejectsGarbage(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestJWTStrategyRejectsUnknownRole(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})

	token, err := strategy.IssueToken(&model.User{ID: 1, Email: "x@example.com", Role: "superuser"})
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for unknown role, got %v", err)
	}
}

func TestJWTStrategyName(t *testing.T) {
	if got := NewJWTStrategy("secret", Options{}).Name(); got != "jwt" {
		t.Fatalf("unexpected strategy name %q", got)
	}
}
