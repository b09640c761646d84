package common

import (
	"strings"
	"testing"
)

func TestGoogleTokenFromArgsExplicit(t *testing.T) {
	t.Setenv(AccessTokenEnvVar, "env-token")

	token, err := GoogleTokenFromArgs(map[string]any{"accessToken": "arg-token"})
	if err != nil {
		t.Fatalf("GoogleTokenFromArgs() error = %v", err)
	}
	if token != "arg-token" {
		t.Errorf("token = %q, want argument token to win", token)
	}
}

func TestGoogleTokenFromArgsEnvFallback(t *testing.T) {
	t.Setenv(AccessTokenEnvVar, "env-token")

	token, err := GoogleTokenFromArgs(map[string]any{})
	if err != nil {
		t.Fatalf("GoogleTokenFromArgs() error = %v", err)
	}
	if token != "env-token" {
		t.Errorf("token = %q", token)
	}
}

func TestGoogleTokenFromArgsEmptyArgIgnored(t *testing.T) {
	t.Setenv(AccessTokenEnvVar, "env-token")

	token, err := GoogleTokenFromArgs(map[string]any{"accessToken": ""})
	if err != nil {
		t.Fatalf("GoogleTokenFromArgs() error = %v", err)
	}
	if token != "env-token" {
		t.Errorf("token = %q", token)
	}
}

func TestGoogleTokenFromArgsMissing(t *testing.T) {
	t.Setenv(AccessTokenEnvVar, "")

	_, err := GoogleTokenFromArgs(map[string]any{})
	if err == nil {
		t.Fatal("expected error when no token is available")
	}
	if !strings.Contains(err.Error(), AccessTokenEnvVar) {
		t.Errorf("error %q does not mention %s", err, AccessTokenEnvVar)
	}
}
