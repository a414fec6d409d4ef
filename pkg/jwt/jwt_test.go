package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID, "dana@example.com", "member")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("unexpected user id %s", claims.UserID)
	}
	if claims.Email != "dana@example.com" || claims.Role != "member" {
		t.Errorf("unexpected claims %+v", claims)
	}
	if claims.Subject != userID.String() {
		t.Errorf("unexpected subject %s", claims.Subject)
	}
}

func TestValidateAccessTokenWrongSecret(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	other := NewManager("other-secret", time.Hour)

	token, _ := other.GenerateAccessToken(uuid.New(), "x@example.com", "member")
	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Fatalf("expected validation failure for wrong secret")
	}
}

func TestValidateAccessTokenExpired(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)

	token, err := manager.GenerateAccessToken(uuid.New(), "x@example.com", "member")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = manager.ValidateAccessToken(token)
	if !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestValidateAccessTokenGarbage(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	if _, err := manager.ValidateAccessToken("not-a-token"); err == nil {
		t.Fatalf("expected failure for malformed token")
	}
}
