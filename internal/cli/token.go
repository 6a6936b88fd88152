package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/franpass87/bookwidget/internal/keyring"
)

// TokenSetCmd stores the backend API token in the OS keyring, keeping it
// out of the plaintext config file.
type TokenSetCmd struct {
	Token string `arg:"" help:"Backend API token to store."`
}

func (c *TokenSetCmd) Run(ctx *Context) error {
	if err := keyring.SetToken(c.Token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	fmt.Println("✓ Token stored in OS keyring")
	return nil
}

// TokenShowCmd prints a masked version of the stored token.
type TokenShowCmd struct{}

func (c *TokenShowCmd) Run(ctx *Context) error {
	token, err := keyring.GetToken()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no token in keyring; use 'bookwidget token set' to store one")
		}
		return err
	}
	fmt.Println(maskToken(token))
	return nil
}

// TokenClearCmd removes the stored token.
type TokenClearCmd struct{}

func (c *TokenClearCmd) Run(ctx *Context) error {
	if err := keyring.DeleteToken(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no token in keyring")
		}
		return err
	}
	fmt.Println("✓ Token removed from OS keyring")
	return nil
}

func maskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return token[:2] + strings.Repeat("*", len(token)-4) + token[len(token)-2:]
}
