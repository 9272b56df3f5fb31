package config

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/deepnoodle-ai/veostudio"
)

// ResolveAPIKey returns the API credential, checking the environment first
// and then prompting interactively on the terminal with echo disabled.
// Resolution happens before any other operation: without a credential the
// caller must not proceed.
func ResolveAPIKey() (string, error) {
	if key := APIKeyFromEnv(); key != "" {
		return key, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("%w: set %s", veostudio.ErrMissingCredential, strings.Join(credentialEnvVars, " or "))
	}
	fmt.Fprint(os.Stderr, "Enter Google API key: ")
	entered, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read api key: %w", err)
	}
	key := strings.TrimSpace(string(entered))
	if key == "" {
		return "", veostudio.ErrMissingCredential
	}
	return key, nil
}
