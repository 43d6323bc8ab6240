package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-freshbooks/core"
)

const (
	authorizePath = "/oauth/authorize"
	tokenPath     = "/oauth/token"
	identityPath  = "/auth/api/v1/users/me"
)

const (
	GrantAuthorizationCode = "authorization_code"
	GrantRefreshToken      = "refresh_token"
)

// Flow performs the OAuth2 authorization-code and refresh-token exchanges
// and the authenticated identity fetch. A successful exchange installs the
// new credentials on the shared session, so every call issued afterwards
// carries the fresh bearer token.
type Flow struct {
	session   *core.Session
	transport core.Transport
	now       func() time.Time
}

type Config struct {
	Session   *core.Session
	Transport core.Transport
	Now       func() time.Time
}

func NewFlow(cfg Config) *Flow {
	now := cfg.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Flow{
		session:   cfg.Session,
		transport: cfg.Transport,
		now:       now,
	}
}

// AuthorizationURL builds the redirect URL that starts the authorization-code
// grant. No network call happens here.
func (f *Flow) AuthorizationURL(scopes ...string) (string, error) {
	if f == nil || f.session == nil {
		return "", core.ConfigurationError("auth: flow requires a session")
	}
	cfg := f.session.Snapshot()
	if strings.TrimSpace(cfg.RedirectURI) == "" {
		return "", core.ConfigurationError("auth: redirect_uri is required to build an authorization url")
	}

	values := url.Values{}
	values.Set("client_id", cfg.ClientID)
	values.Set("response_type", "code")
	values.Set("redirect_uri", cfg.RedirectURI)
	if joined := strings.TrimSpace(strings.Join(scopes, " ")); joined != "" {
		values.Set("scope", joined)
	}
	return cfg.AuthBaseURL + authorizePath + "?" + values.Encode(), nil
}

// ExchangeCode trades a one-time authorization code for tokens.
func (f *Flow) ExchangeCode(ctx context.Context, code string) (core.AuthorizationToken, error) {
	return f.ExchangeToken(ctx, GrantAuthorizationCode, "code", code)
}

// Refresh trades a refresh token for a new access token. An empty argument
// falls back to the session's stored refresh token.
func (f *Flow) Refresh(ctx context.Context, refreshToken string) (core.AuthorizationToken, error) {
	if f == nil || f.session == nil {
		return core.AuthorizationToken{}, core.ConfigurationError("auth: flow requires a session")
	}
	token := strings.TrimSpace(refreshToken)
	if token == "" {
		token = strings.TrimSpace(f.session.Snapshot().RefreshToken)
	}
	if token == "" {
		return core.AuthorizationToken{}, core.ConfigurationError("auth: refresh token is required and none is stored")
	}
	return f.ExchangeToken(ctx, GrantRefreshToken, "refresh_token", token)
}

// ExchangeToken performs one grant against the token endpoint. On success
// the session snapshot is replaced with the new credentials; on failure the
// session is left untouched.
func (f *Flow) ExchangeToken(
	ctx context.Context,
	grantType string,
	codeParam string,
	codeValue string,
) (core.AuthorizationToken, error) {
	if f == nil || f.session == nil || f.transport == nil {
		return core.AuthorizationToken{}, core.ConfigurationError("auth: flow requires a session and a transport")
	}
	cfg := f.session.Snapshot()
	if strings.TrimSpace(cfg.ClientSecret) == "" {
		return core.AuthorizationToken{}, core.ConfigurationError("auth: client_secret is required for token exchange")
	}
	if strings.TrimSpace(cfg.RedirectURI) == "" {
		return core.AuthorizationToken{}, core.ConfigurationError("auth: redirect_uri is required for token exchange")
	}
	if strings.TrimSpace(codeValue) == "" {
		return core.AuthorizationToken{}, core.ConfigurationError("auth: " + codeParam + " is required for token exchange")
	}

	body, err := json.Marshal(map[string]string{
		"client_id":     cfg.ClientID,
		"client_secret": cfg.ClientSecret,
		"redirect_uri":  cfg.RedirectURI,
		"grant_type":    strings.TrimSpace(grantType),
		codeParam:       strings.TrimSpace(codeValue),
	})
	if err != nil {
		return core.AuthorizationToken{}, core.DecodeError("auth: encode token request", err)
	}

	res, err := f.transport.Do(ctx, core.TransportRequest{
		Method:  http.MethodPost,
		URL:     cfg.AuthBaseURL + tokenPath,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    body,
	})
	if err != nil {
		return core.AuthorizationToken{}, err
	}

	payload := map[string]any{}
	if len(bytes.TrimSpace(res.Body)) > 0 {
		if err := json.Unmarshal(res.Body, &payload); err != nil {
			return core.AuthorizationToken{}, core.AuthenticationError(
				fmt.Sprintf("auth: token endpoint returned a malformed body (status=%d)", res.StatusCode),
				res.StatusCode,
			)
		}
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return core.AuthorizationToken{}, core.AuthenticationError(
			fmt.Sprintf("auth: token exchange rejected (status=%d): %s", res.StatusCode, describeTokenError(payload)),
			res.StatusCode,
		)
	}

	token, err := core.DecodeAuthorizationToken(payload, f.now)
	if err != nil {
		return core.AuthorizationToken{}, core.AuthenticationError(
			fmt.Sprintf("auth: token exchange succeeded with a malformed payload: %s", err.Error()),
			res.StatusCode,
		)
	}

	f.session.ApplyToken(token)
	return token, nil
}

// CurrentIdentity fetches the authenticated user behind the current bearer
// token.
func (f *Flow) CurrentIdentity(ctx context.Context) (core.Identity, error) {
	if f == nil || f.session == nil || f.transport == nil {
		return core.Identity{}, core.ConfigurationError("auth: flow requires a session and a transport")
	}
	cfg := f.session.Snapshot()
	if strings.TrimSpace(cfg.AccessToken) == "" {
		return core.Identity{}, core.ConfigurationError("auth: access token is required to fetch the current identity")
	}

	res, err := f.transport.Do(ctx, core.TransportRequest{
		Method: http.MethodGet,
		URL:    cfg.APIBaseURL + identityPath,
	})
	if err != nil {
		return core.Identity{}, err
	}
	if res.StatusCode == http.StatusUnauthorized {
		return core.Identity{}, core.AuthenticationError(
			"auth: identity fetch rejected: "+serviceMessage(res.Body),
			res.StatusCode,
		)
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return core.Identity{}, core.APIError(
			fmt.Sprintf("auth: identity fetch failed (status=%d): %s", res.StatusCode, serviceMessage(res.Body)),
			res.StatusCode,
		)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(res.Body, &envelope); err != nil {
		return core.Identity{}, core.DecodeError("auth: decode identity response", err)
	}
	raw, ok := envelope["response"]
	if !ok {
		return core.Identity{}, core.DecodeError("auth: identity response is missing the response wrapper", nil)
	}
	if isJSONNull(raw) {
		return core.Identity{}, core.DecodeError("auth: identity response wrapper is null", nil)
	}
	var identity core.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return core.Identity{}, core.DecodeError("auth: decode identity record", err)
	}
	return identity, nil
}

func describeTokenError(payload map[string]any) string {
	if description := strings.TrimSpace(fmt.Sprint(payload["error_description"])); description != "" && description != "<nil>" {
		return description
	}
	if code := strings.TrimSpace(fmt.Sprint(payload["error"])); code != "" && code != "<nil>" {
		return code
	}
	return "unknown error"
}

func serviceMessage(body []byte) string {
	payload := map[string]any{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "unknown error"
	}
	if message := strings.TrimSpace(fmt.Sprint(payload["message"])); message != "" && message != "<nil>" {
		return message
	}
	return describeTokenError(payload)
}

func isJSONNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
