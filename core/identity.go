package core

import "strings"

// Identity describes the authenticated user as reported by the
// /auth/api/v1/users/me endpoint. Read-only; never mutated by the SDK.
type Identity struct {
	ID                  int64                `json:"id"`
	FirstName           string               `json:"first_name"`
	LastName            string               `json:"last_name"`
	Email               string               `json:"email"`
	Language            string               `json:"language"`
	ConfirmedAt         string               `json:"confirmed_at"`
	BusinessMemberships []BusinessMembership `json:"business_memberships"`
}

type BusinessMembership struct {
	ID       int64    `json:"id"`
	Role     string   `json:"role"`
	Business Business `json:"business"`
}

// Business identifies a tenant; its ID scopes most resource calls.
type Business struct {
	ID        int64  `json:"id"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
}

func (i Identity) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(i.FirstName) + " " + strings.TrimSpace(i.LastName))
}
