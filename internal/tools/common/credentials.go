package common

import (
	"fmt"
	"os"
)

// AccessTokenEnvVar is the environment variable consulted when a tool call
// does not carry an explicit accessToken argument.
const AccessTokenEnvVar = "ACCESS_TOKEN"

// GoogleTokenFromArgs resolves the Google OAuth access token for a tool call.
// The token from the request arguments wins; the ACCESS_TOKEN environment
// variable is the fallback. The token is resolved per call so a long-running
// server picks up rotated environment tokens without a restart.
func GoogleTokenFromArgs(args map[string]any) (string, error) {
	if token, ok := args["accessToken"].(string); ok && token != "" {
		return token, nil
	}

	if token := os.Getenv(AccessTokenEnvVar); token != "" {
		return token, nil
	}

	return "", fmt.Errorf("no access token provided: pass accessToken or set %s", AccessTokenEnvVar)
}
