package clipboard

import (
	"context"
	"fmt"

	"github.com/andareed/mini-text/logging"
	"github.com/andareed/mini-text/shell"
)

// helper is one external clipboard program invocation.
type helper struct {
	name string
	args []string
}

// command shells out to the platform clipboard helpers. The per-OS helper
// choice lives in clipboard_<goos>.go.
type command struct {
	runner shell.Runner
	copy   helper
	paste  helper
}

func newCommand(opts Options) (Backend, error) {
	copyCmd, pasteCmd, err := platformHelpers()
	if err != nil {
		return nil, err
	}
	return &command{runner: opts.Runner, copy: copyCmd, paste: pasteCmd}, nil
}

func (c *command) Name() string { return "command" }

func (c *command) WriteText(ctx context.Context, text string) error {
	if _, err := c.runner.Run(ctx, c.copy.name, c.copy.args, text); err != nil {
		logging.Warnf("Clipboard: %s failed: %v", c.copy.name, err)
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	logging.Infof("Clipboard: copied via %s", c.copy.name)
	return nil
}

func (c *command) ReadText(ctx context.Context) (string, bool, error) {
	res, err := c.runner.Run(ctx, c.paste.name, c.paste.args, "")
	if err != nil {
		logging.Warnf("Clipboard: %s failed: %v", c.paste.name, err)
		return "", false, fmt.Errorf("failed to read from clipboard: %w", err)
	}
	return readResult(res.Stdout, nil)
}

// Tools lists the programs the command backend needs on this platform.
func Tools() []string {
	copyCmd, pasteCmd, err := platformHelpers()
	if err != nil {
		return nil
	}
	if copyCmd.name == pasteCmd.name {
		return []string{copyCmd.name}
	}
	return []string{copyCmd.name, pasteCmd.name}
}
