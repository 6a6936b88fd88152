package cli

import (
	"context"
	"fmt"
	"time"
)

// FeatureCmd flips a backend feature flag.
type FeatureCmd struct {
	Key string `arg:"" help:"Feature key to toggle."`
	On  bool   `help:"Enable the feature." xor:"state" required:""`
	Off bool   `help:"Disable the feature." xor:"state"`
}

func (c *FeatureCmd) Run(ctx *Context) error {
	client, _, err := ctx.Client()
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	enabled := c.On && !c.Off
	if err := client.ToggleFeature(reqCtx, c.Key, enabled); err != nil {
		return err
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Printf("✓ Feature %q %s\n", c.Key, state)
	return nil
}

// ResetCmd wipes the backend installation state.
type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt." name:"yes"`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if !c.Yes {
		return fmt.Errorf("reset discards all backend state; re-run with --yes to confirm")
	}

	client, _, err := ctx.Client()
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := client.ResetInstallation(reqCtx); err != nil {
		return err
	}
	fmt.Println("✓ Installation reset; the backend reloads its state")
	return nil
}
