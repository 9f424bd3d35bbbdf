package cli

import (
	"context"

	"github.com/cforge/cforge/internal/client/api"
)

// Credentials prompts for an API key and secret and installs them on the
// API client. Signed requests unlock the authorized endpoints; the secret
// is read without terminal echo and is never persisted.
func (a *App) Credentials(ctx context.Context) error {
	key, err := GetSimpleText(a.reader, "Enter API key", a.out)
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	secret, err := GetSecret("Enter API secret", a.out)
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	a.apiClient.SetCredentials(api.Credentials{Key: key, Secret: secret})
	printlnFn("API credentials set.")
	return nil
}
