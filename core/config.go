package core

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultAPIBaseURL  = "https://api.freshbooks.com"
	DefaultAuthBaseURL = "https://auth.freshbooks.com"
)

// Config carries the settings shared by the auth flow and resource
// accessors. ClientID is required everywhere; ClientSecret and RedirectURI
// only before a token exchange; AccessToken only before resource calls.
// Those per-operation requirements are enforced at the call sites, not here.
type Config struct {
	ClientID       string    `koanf:"client_id" mapstructure:"client_id"`
	ClientSecret   string    `koanf:"client_secret" mapstructure:"client_secret"`
	RedirectURI    string    `koanf:"redirect_uri" mapstructure:"redirect_uri"`
	AccessToken    string    `koanf:"access_token" mapstructure:"access_token"`
	RefreshToken   string    `koanf:"refresh_token" mapstructure:"refresh_token"`
	TokenExpiresAt time.Time `koanf:"token_expires_at" mapstructure:"token_expires_at"`
	APIBaseURL     string    `koanf:"api_base_url" mapstructure:"api_base_url"`
	AuthBaseURL    string    `koanf:"auth_base_url" mapstructure:"auth_base_url"`
}

func DefaultConfig() Config {
	return Config{
		APIBaseURL:  DefaultAPIBaseURL,
		AuthBaseURL: DefaultAuthBaseURL,
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" {
		return fmt.Errorf("core: client_id is required")
	}
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("core: api_base_url is required")
	}
	if strings.TrimSpace(c.AuthBaseURL) == "" {
		return fmt.Errorf("core: auth_base_url is required")
	}
	return nil
}

// Normalized trims whitespace and trailing slashes so URL joins stay stable.
func (c Config) Normalized() Config {
	c.ClientID = strings.TrimSpace(c.ClientID)
	c.ClientSecret = strings.TrimSpace(c.ClientSecret)
	c.RedirectURI = strings.TrimSpace(c.RedirectURI)
	c.AccessToken = strings.TrimSpace(c.AccessToken)
	c.RefreshToken = strings.TrimSpace(c.RefreshToken)
	c.APIBaseURL = strings.TrimRight(strings.TrimSpace(c.APIBaseURL), "/")
	c.AuthBaseURL = strings.TrimRight(strings.TrimSpace(c.AuthBaseURL), "/")
	return c
}
