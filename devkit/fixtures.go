package devkit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/goliatone/go-freshbooks/core"
)

// JSONResponse builds a transport response with a JSON-encoded body.
func JSONResponse(status int, payload any) core.TransportResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		panic(fmt.Sprintf("devkit: encode fixture payload: %v", err))
	}
	return core.TransportResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}

// EntityEnvelope nests an entity under its single wrapper key.
func EntityEnvelope(key string, entity any) map[string]any {
	return map[string]any{key: entity}
}

// ListEnvelope nests items under the list wrapper key next to pagination
// metadata, the way the service shapes list responses.
func ListEnvelope(key string, items any, page, pages, perPage, total int) map[string]any {
	return map[string]any{
		key:        items,
		"page":     page,
		"pages":    pages,
		"per_page": perPage,
		"total":    total,
	}
}

// TokenPayload is a well-formed token endpoint response body.
func TokenPayload(accessToken, refreshToken string, createdAt time.Time, expiresIn int64) map[string]any {
	return map[string]any{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"token_type":    "Bearer",
		"created_at":    createdAt.UTC().Format(time.RFC3339),
		"expires_in":    expiresIn,
	}
}
