package core

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AuthorizationToken is the immutable result of a token exchange.
// ExpiresAt derives from CreatedAt plus ExpiresIn seconds.
type AuthorizationToken struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	CreatedAt    time.Time
	ExpiresIn    int64
	ExpiresAt    time.Time
}

// DecodeAuthorizationToken builds a token from a decoded exchange payload.
// created_at accepts RFC3339 strings or Unix seconds; a missing created_at
// falls back to now.
func DecodeAuthorizationToken(payload map[string]any, now func() time.Time) (AuthorizationToken, error) {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	accessToken := readAnyString(payload["access_token"])
	if accessToken == "" {
		return AuthorizationToken{}, fmt.Errorf("core: token payload missing access_token")
	}

	tokenType := strings.ToLower(readAnyString(payload["token_type"]))
	if tokenType == "" {
		tokenType = "bearer"
	}
	createdAt := readAnyTime(payload["created_at"])
	if createdAt.IsZero() {
		createdAt = now().UTC()
	}
	expiresIn := readAnyInt64(payload["expires_in"])

	token := AuthorizationToken{
		AccessToken:  accessToken,
		RefreshToken: readAnyString(payload["refresh_token"]),
		TokenType:    tokenType,
		CreatedAt:    createdAt,
		ExpiresIn:    expiresIn,
	}
	if expiresIn > 0 {
		token.ExpiresAt = createdAt.Add(time.Duration(expiresIn) * time.Second)
	}
	return token, nil
}

func readAnyString(value any) string {
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case json.Number:
		return strings.TrimSpace(typed.String())
	case fmt.Stringer:
		return strings.TrimSpace(typed.String())
	default:
		if value == nil {
			return ""
		}
		return strings.TrimSpace(fmt.Sprint(value))
	}
}

func readAnyInt64(value any) int64 {
	switch typed := value.(type) {
	case int:
		return int64(typed)
	case int64:
		return typed
	case float64:
		return int64(typed)
	case json.Number:
		parsed, err := typed.Int64()
		if err == nil {
			return parsed
		}
		floatParsed, floatErr := typed.Float64()
		if floatErr == nil {
			return int64(floatParsed)
		}
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err == nil {
			return parsed
		}
	}
	return 0
}

func readAnyTime(value any) time.Time {
	switch typed := value.(type) {
	case time.Time:
		return typed.UTC()
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return time.Time{}
		}
		if parsed, err := time.Parse(time.RFC3339, trimmed); err == nil {
			return parsed.UTC()
		}
		if seconds, err := strconv.ParseInt(trimmed, 10, 64); err == nil && seconds > 0 {
			return time.Unix(seconds, 0).UTC()
		}
		return time.Time{}
	default:
		if seconds := readAnyInt64(value); seconds > 0 {
			return time.Unix(seconds, 0).UTC()
		}
		return time.Time{}
	}
}
