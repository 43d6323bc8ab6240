package core

import (
	"fmt"
	"net/http"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestErrorTaxonomy_PredicatesAndStatus(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		matches func(error) bool
		status  int
	}{
		{"configuration", ConfigurationError("missing redirect_uri"), IsConfiguration, http.StatusBadRequest},
		{"authentication", AuthenticationError("rejected", http.StatusUnauthorized), IsAuthentication, http.StatusUnauthorized},
		{"validation", ValidationError("rejected", http.StatusUnprocessableEntity), IsValidation, http.StatusUnprocessableEntity},
		{"not_found", NotFoundError("invoice not found"), IsNotFound, http.StatusNotFound},
		{"api", APIError("upstream failed", http.StatusBadGateway), IsAPI, http.StatusBadGateway},
		{"decode", DecodeError("bad shape", nil), IsDecode, http.StatusBadGateway},
	}
	for _, tc := range cases {
		if !tc.matches(tc.err) {
			t.Fatalf("%s: predicate did not match %v", tc.name, tc.err)
		}
		if got := StatusCode(tc.err); got != tc.status {
			t.Fatalf("%s: expected status %d, got %d", tc.name, tc.status, got)
		}
	}
}

func TestErrorTaxonomy_PredicatesAreDisjoint(t *testing.T) {
	err := NotFoundError("invoice not found")
	if IsConfiguration(err) || IsAuthentication(err) || IsValidation(err) || IsAPI(err) || IsDecode(err) {
		t.Fatalf("not-found error matched a foreign predicate")
	}
}

func TestErrorTaxonomy_PlainErrorsDoNotMatch(t *testing.T) {
	err := fmt.Errorf("plain failure")
	if IsConfiguration(err) || IsAuthentication(err) || IsNotFound(err) {
		t.Fatalf("plain error matched an SDK predicate")
	}
	if got := StatusCode(err); got != 0 {
		t.Fatalf("expected zero status for plain error, got %d", got)
	}
}

func TestValidationError_CarriesFieldErrors(t *testing.T) {
	err := ValidationError("client rejected", http.StatusUnprocessableEntity,
		goerrors.FieldError{Field: "email", Message: "is invalid"},
		goerrors.FieldError{Field: "fname", Message: "is required"},
	)
	fields := FieldErrors(err)
	if len(fields) != 2 {
		t.Fatalf("expected two field errors, got %d", len(fields))
	}
	if fields[0].Field != "email" {
		t.Fatalf("expected email field first, got %q", fields[0].Field)
	}
}

func TestAuthenticationError_DefaultsStatus(t *testing.T) {
	if got := StatusCode(AuthenticationError("rejected", 0)); got != http.StatusUnauthorized {
		t.Fatalf("expected default 401, got %d", got)
	}
}
