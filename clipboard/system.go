package clipboard

import (
	"context"
	"fmt"

	"github.com/andareed/mini-text/logging"
	"github.com/atotto/clipboard"
)

// system uses atotto/clipboard, which picks xclip/xsel/wl-clipboard,
// pbcopy or the Win32 API depending on the platform.
type system struct{}

func newSystem(Options) (Backend, error) {
	if clipboard.Unsupported {
		return nil, fmt.Errorf("system clipboard: %w (install xclip, xsel or wl-clipboard)", ErrUnsupported)
	}
	return system{}, nil
}

func (system) Name() string { return "system" }

func (system) WriteText(_ context.Context, text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		logging.Warnf("Clipboard: system write failed: %v", err)
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

func (system) ReadText(context.Context) (string, bool, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		logging.Warnf("Clipboard: system read failed: %v", err)
		return "", false, fmt.Errorf("failed to read from clipboard: %w", err)
	}
	return readResult(text, nil)
}
