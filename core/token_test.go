package core

import (
	"testing"
	"time"
)

func TestDecodeAuthorizationToken_RFC3339CreatedAt(t *testing.T) {
	token, err := DecodeAuthorizationToken(map[string]any{
		"access_token":  "tok1",
		"refresh_token": "ref1",
		"token_type":    "Bearer",
		"created_at":    "2024-01-01T00:00:00Z",
		"expires_in":    float64(3600),
	}, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if token.AccessToken != "tok1" || token.RefreshToken != "ref1" {
		t.Fatalf("unexpected tokens: %+v", token)
	}
	if token.TokenType != "bearer" {
		t.Fatalf("expected normalized token type, got %q", token.TokenType)
	}
	want := time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)
	if !token.ExpiresAt.Equal(want) {
		t.Fatalf("expected expiry %v, got %v", want, token.ExpiresAt)
	}
}

func TestDecodeAuthorizationToken_UnixCreatedAt(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	token, err := DecodeAuthorizationToken(map[string]any{
		"access_token": "tok1",
		"created_at":   float64(createdAt.Unix()),
		"expires_in":   float64(1800),
	}, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !token.CreatedAt.Equal(createdAt) {
		t.Fatalf("expected created at %v, got %v", createdAt, token.CreatedAt)
	}
	if !token.ExpiresAt.Equal(createdAt.Add(30 * time.Minute)) {
		t.Fatalf("unexpected expiry: %v", token.ExpiresAt)
	}
}

func TestDecodeAuthorizationToken_MissingCreatedAtFallsBackToNow(t *testing.T) {
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	token, err := DecodeAuthorizationToken(map[string]any{
		"access_token": "tok1",
		"expires_in":   float64(60),
	}, func() time.Time { return now })
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !token.CreatedAt.Equal(now) {
		t.Fatalf("expected now fallback, got %v", token.CreatedAt)
	}
	if !token.ExpiresAt.Equal(now.Add(time.Minute)) {
		t.Fatalf("unexpected expiry: %v", token.ExpiresAt)
	}
}

func TestDecodeAuthorizationToken_MissingAccessToken(t *testing.T) {
	if _, err := DecodeAuthorizationToken(map[string]any{"token_type": "bearer"}, nil); err == nil {
		t.Fatalf("expected error for missing access_token")
	}
}

func TestDecodeAuthorizationToken_NoExpiryLeavesZero(t *testing.T) {
	token, err := DecodeAuthorizationToken(map[string]any{"access_token": "tok1"}, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !token.ExpiresAt.IsZero() {
		t.Fatalf("expected zero expiry without expires_in, got %v", token.ExpiresAt)
	}
}
